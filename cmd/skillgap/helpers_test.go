package main

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Dharshika-112/Skill-Gap-Analyzer-sub000/internal/types"
)

func writeTempFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadRoleSpec(t *testing.T) {
	path := writeTempFile(t, "role.json", `{
		"required_skills": ["JavaScript", "React", "SQL"],
		"role_type": "frontend",
		"experience_level": "fresher",
		"job_frequency": {"javascript": 0.9}
	}`)

	role, err := loadRoleSpec(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"JavaScript", "React", "SQL"}, role.RequiredSkills)
	assert.Equal(t, "frontend", role.RoleType)
	assert.Equal(t, 0.9, role.JobFrequency["javascript"])
}

func TestLoadRoleSpec_MissingFile(t *testing.T) {
	_, err := loadRoleSpec(filepath.Join(t.TempDir(), "nope.json"))
	assert.Error(t, err)
}

func TestLoadRoleSpec_BadJSON(t *testing.T) {
	path := writeTempFile(t, "role.json", "{not json")
	_, err := loadRoleSpec(path)
	assert.Error(t, err)
}

func TestLoadRoleSpec_InvalidSpec(t *testing.T) {
	path := writeTempFile(t, "role.json", `{"job_frequency": {"javascript": 7.0}}`)
	_, err := loadRoleSpec(path)
	assert.Error(t, err)
}

func TestWriteArtifact_ToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.json")
	role := types.RoleSpec{RoleType: "frontend"}

	require.NoError(t, writeArtifact(path, role, nil))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var decoded types.RoleSpec
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, "frontend", decoded.RoleType)
}

func TestWriteArtifact_ValidationFailureBlocksWrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.json")
	failing := func([]byte) error { return errors.New("schema says no") }

	err := writeArtifact(path, types.RoleSpec{}, failing)
	require.Error(t, err)
	assert.NoFileExists(t, path)
}
