package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/Dharshika-112/Skill-Gap-Analyzer-sub000/internal/config"
	"github.com/Dharshika-112/Skill-Gap-Analyzer-sub000/internal/logger"
	"github.com/Dharshika-112/Skill-Gap-Analyzer-sub000/internal/pipeline"
	"github.com/Dharshika-112/Skill-Gap-Analyzer-sub000/internal/types"
)

// setup loads the merged configuration and builds the logger and engine
// every subcommand shares.
func setup() (*config.Config, *zap.Logger, *pipeline.Engine, error) {
	cfg, err := config.Load(viper.GetViper())
	if err != nil {
		return nil, nil, nil, err
	}

	log, err := logger.New(cfg.JSONLogs, cfg.Debug)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to build logger: %w", err)
	}

	engine := pipeline.NewEngineWith(pipeline.Options{
		WeeklyStudyHours: cfg.WeeklyStudyHours,
	})
	return cfg, log, engine, nil
}

// loadRoleSpec reads and validates a RoleSpec JSON file.
func loadRoleSpec(path string) (*types.RoleSpec, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read role file %s: %w", path, err)
	}

	var role types.RoleSpec
	if err := json.Unmarshal(data, &role); err != nil {
		return nil, fmt.Errorf("failed to parse role file %s: %w", path, err)
	}
	if err := role.Validate(); err != nil {
		return nil, fmt.Errorf("invalid role spec %s: %w", path, err)
	}
	return &role, nil
}

// writeArtifact marshals v to indented JSON, optionally validates it
// against its schema, and writes it to path ("-" or empty means stdout).
func writeArtifact(path string, v any, validate func([]byte) error) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal artifact: %w", err)
	}

	if validate != nil {
		if err := validate(data); err != nil {
			return fmt.Errorf("artifact failed schema validation: %w", err)
		}
	}

	if path == "" || path == "-" {
		_, err = fmt.Println(string(data))
		return err
	}
	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
