package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/Dharshika-112/Skill-Gap-Analyzer-sub000/internal/observability"
	"github.com/Dharshika-112/Skill-Gap-Analyzer-sub000/internal/schemas"
	"github.com/Dharshika-112/Skill-Gap-Analyzer-sub000/internal/types"
)

var roadmapCommand = &cobra.Command{
	Use:   "roadmap",
	Short: "Build a learning roadmap from a gap analysis",
	Long: `Turns the missing skills of a previous gap analysis into a
dependency-ordered, week-by-week learning plan with milestones.`,
	RunE: runRoadmap,
}

var (
	roadmapGapFile  string
	roadmapSkills   []string
	roadmapWeeks    int
	roadmapOutput   string
	roadmapValidate bool
)

func init() {
	roadmapCommand.Flags().StringVarP(&roadmapGapFile, "gap", "g", "", "path to a gap analysis artifact (required)")
	roadmapCommand.Flags().StringSliceVarP(&roadmapSkills, "skills", "s", nil, "candidate skills, used to satisfy prerequisites")
	roadmapCommand.Flags().IntVarP(&roadmapWeeks, "weeks", "w", 0, "target week count; 0 keeps the uncompressed plan")
	roadmapCommand.Flags().StringVarP(&roadmapOutput, "output", "o", "-", "output path for the roadmap artifact (default stdout)")
	roadmapCommand.Flags().BoolVar(&roadmapValidate, "validate", false, "validate the written artifact against its JSON schema")

	_ = roadmapCommand.MarkFlagRequired("gap")

	rootCmd.AddCommand(roadmapCommand)
}

func runRoadmap(cmd *cobra.Command, _ []string) error {
	cfg, log, engine, err := setup()
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	data, err := os.ReadFile(roadmapGapFile)
	if err != nil {
		return fmt.Errorf("failed to read gap artifact %s: %w", roadmapGapFile, err)
	}
	var gap types.GapScoreResult
	if err := json.Unmarshal(data, &gap); err != nil {
		return fmt.Errorf("failed to parse gap artifact %s: %w", roadmapGapFile, err)
	}

	weeks := roadmapWeeks
	if weeks == 0 {
		weeks = cfg.TargetWeeks
	}

	plan := engine.BuildRoadmap(gap, roadmapSkills, weeks)
	log.Info("roadmap generated",
		zap.String("analysis_id", gap.AnalysisID.String()),
		zap.Int("weeks", len(plan.Weeks)),
		zap.Float64("total_hours", plan.TotalHours),
		zap.Bool("compressed", plan.Compressed),
	)

	var validate func([]byte) error
	if roadmapValidate {
		validate = schemas.ValidateRoadmapPlan
	}
	if err := writeArtifact(roadmapOutput, plan, validate); err != nil {
		return err
	}

	if cfg.Verbose {
		observability.NewPrinter(os.Stdout).PrintRoadmap(&plan)
	}
	return nil
}
