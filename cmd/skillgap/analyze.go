package main

import (
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/Dharshika-112/Skill-Gap-Analyzer-sub000/internal/observability"
	"github.com/Dharshika-112/Skill-Gap-Analyzer-sub000/internal/schemas"
	"github.com/Dharshika-112/Skill-Gap-Analyzer-sub000/internal/types"
)

var analyzeCommand = &cobra.Command{
	Use:   "analyze",
	Short: "Score candidate skills against a target role",
	Long: `Analyzes the gap between a candidate's skills and a role's required skills.

The role can be given inline (--required-skills, --role-type, --experience)
or as a JSON role spec file (--role-file). The resulting gap artifact is
written as JSON and feeds the roadmap command.`,
	RunE: runAnalyze,
}

var (
	analyzeSkills   []string
	analyzeRequired []string
	analyzeRoleFile string
	analyzeRoleType string
	analyzeLevel    string
	analyzeOutput   string
	analyzeValidate bool
)

func init() {
	analyzeCommand.Flags().StringSliceVarP(&analyzeSkills, "skills", "s", nil, "candidate skills (comma-separated or repeated)")
	analyzeCommand.Flags().StringSliceVarP(&analyzeRequired, "required-skills", "r", nil, "role required skills (mutually exclusive with --role-file)")
	analyzeCommand.Flags().StringVar(&analyzeRoleFile, "role-file", "", "path to a role spec JSON file")
	analyzeCommand.Flags().StringVar(&analyzeRoleType, "role-type", "general", "role family (frontend, backend, mobile, devops, data, ai, fullstack)")
	analyzeCommand.Flags().StringVar(&analyzeLevel, "experience", "fresher", "experience level (fresher, junior, mid, senior)")
	analyzeCommand.Flags().StringVarP(&analyzeOutput, "output", "o", "-", "output path for the gap artifact (default stdout)")
	analyzeCommand.Flags().BoolVar(&analyzeValidate, "validate", false, "validate the written artifact against its JSON schema")

	rootCmd.AddCommand(analyzeCommand)
}

func runAnalyze(cmd *cobra.Command, _ []string) error {
	cfg, log, engine, err := setup()
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	role, err := resolveRole()
	if err != nil {
		return err
	}

	result := engine.AnalyzeGap(analyzeSkills, *role)
	log.Info("gap analysis complete",
		zap.String("analysis_id", result.AnalysisID.String()),
		zap.String("role_type", result.RoleType),
		zap.Float64("overall_score", result.OverallScore),
		zap.String("readiness", result.Readiness.String()),
		zap.Int("missing_skills", len(result.MissingSkills)),
		zap.Bool("insufficient_data", result.InsufficientData),
	)

	var validate func([]byte) error
	if analyzeValidate {
		validate = schemas.ValidateGapResult
	}
	if err := writeArtifact(analyzeOutput, result, validate); err != nil {
		return err
	}

	if cfg.Verbose {
		observability.NewPrinter(os.Stdout).PrintGapResult(&result)
	}
	return nil
}

// resolveRole builds the RoleSpec from either the role file or the inline
// flags, falling back to the configured defaults.
func resolveRole() (*types.RoleSpec, error) {
	if analyzeRoleFile != "" {
		return loadRoleSpec(analyzeRoleFile)
	}

	role := &types.RoleSpec{
		RequiredSkills:  analyzeRequired,
		RoleType:        analyzeRoleType,
		ExperienceLevel: analyzeLevel,
	}
	if err := role.Validate(); err != nil {
		return nil, err
	}
	return role, nil
}
