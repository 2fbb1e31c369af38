package main

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/Dharshika-112/Skill-Gap-Analyzer-sub000/internal/schemas"
	"github.com/Dharshika-112/Skill-Gap-Analyzer-sub000/internal/types"
)

var batchCommand = &cobra.Command{
	Use:   "batch",
	Short: "Analyze one candidate against a directory of role specs",
	Long: `Runs a gap analysis for every *.json role spec in a directory,
using a CPU-bounded worker pool, and writes one gap artifact per role.`,
	RunE: runBatch,
}

var (
	batchSkills   []string
	batchRolesDir string
	batchOutDir   string
	batchValidate bool
)

func init() {
	batchCommand.Flags().StringSliceVarP(&batchSkills, "skills", "s", nil, "candidate skills (comma-separated or repeated)")
	batchCommand.Flags().StringVar(&batchRolesDir, "roles-dir", "", "directory of role spec JSON files (required)")
	batchCommand.Flags().StringVarP(&batchOutDir, "output-dir", "o", ".", "directory for the gap artifacts")
	batchCommand.Flags().BoolVar(&batchValidate, "validate", false, "validate written artifacts against their JSON schema")

	_ = batchCommand.MarkFlagRequired("roles-dir")

	rootCmd.AddCommand(batchCommand)
}

func runBatch(cmd *cobra.Command, _ []string) error {
	_, log, engine, err := setup()
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	names, roles, err := loadRolesDir(batchRolesDir)
	if err != nil {
		return err
	}
	if len(roles) == 0 {
		return fmt.Errorf("no role spec files found in %s", batchRolesDir)
	}

	if err := os.MkdirAll(batchOutDir, 0o755); err != nil {
		return fmt.Errorf("failed to create output directory %s: %w", batchOutDir, err)
	}

	results, err := engine.AnalyzeBatch(cmd.Context(), batchSkills, roles)
	if err != nil {
		return err
	}

	var validate func([]byte) error
	if batchValidate {
		validate = schemas.ValidateGapResult
	}
	for i, result := range results {
		outPath := filepath.Join(batchOutDir, names[i]+".gap.json")
		if err := writeArtifact(outPath, result, validate); err != nil {
			return err
		}
		log.Info("gap analysis written",
			zap.String("role", names[i]),
			zap.String("path", outPath),
			zap.Float64("overall_score", result.OverallScore),
			zap.String("readiness", result.Readiness.String()),
		)
	}
	return nil
}

// loadRolesDir reads every *.json role spec in dir, in sorted name order so
// batch output is reproducible.
func loadRolesDir(dir string) ([]string, []types.RoleSpec, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read roles directory %s: %w", dir, err)
	}

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}
		names = append(names, entry.Name())
	}
	sort.Strings(names)

	baseNames := make([]string, 0, len(names))
	roles := make([]types.RoleSpec, 0, len(names))
	for _, name := range names {
		role, err := loadRoleSpec(filepath.Join(dir, name))
		if err != nil {
			return nil, nil, err
		}
		baseNames = append(baseNames, strings.TrimSuffix(name, ".json"))
		roles = append(roles, *role)
	}
	return baseNames, roles, nil
}
