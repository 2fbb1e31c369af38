package types

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMatchKind_JSONRoundTrip(t *testing.T) {
	kinds := []MatchKind{MatchNone, MatchExact, MatchHierarchical, MatchFuzzy}
	for _, kind := range kinds {
		data, err := json.Marshal(kind)
		require.NoError(t, err)

		var decoded MatchKind
		require.NoError(t, json.Unmarshal(data, &decoded))
		assert.Equal(t, kind, decoded)
	}
}

func TestMatchKind_UnmarshalUnknown(t *testing.T) {
	var kind MatchKind
	err := json.Unmarshal([]byte(`"telepathic"`), &kind)
	assert.Error(t, err)
}

func TestReadiness_JSONRoundTrip(t *testing.T) {
	tests := []struct {
		verdict Readiness
		wire    string
	}{
		{ReadinessBeginner, `"Beginner"`},
		{ReadinessInterviewReady, `"Interview-Ready"`},
		{ReadinessJobReady, `"Job-Ready"`},
	}
	for _, tt := range tests {
		data, err := json.Marshal(tt.verdict)
		require.NoError(t, err)
		assert.Equal(t, tt.wire, string(data))

		var decoded Readiness
		require.NoError(t, json.Unmarshal(data, &decoded))
		assert.Equal(t, tt.verdict, decoded)
	}
}

func TestReadiness_UnmarshalUnknown(t *testing.T) {
	var r Readiness
	assert.Error(t, json.Unmarshal([]byte(`"Expert"`), &r))
}

func TestDifficulty_JSONRoundTrip(t *testing.T) {
	for _, d := range []Difficulty{DifficultyEasy, DifficultyMedium, DifficultyHard} {
		data, err := json.Marshal(d)
		require.NoError(t, err)

		var decoded Difficulty
		require.NoError(t, json.Unmarshal(data, &decoded))
		assert.Equal(t, d, decoded)
	}
}

func TestSkillToken_Empty(t *testing.T) {
	assert.True(t, SkillToken("").IsEmpty())
	assert.False(t, SkillToken("go").IsEmpty())
	assert.Equal(t, "go", SkillToken("go").String())
}

func TestRoleSpec_Validate(t *testing.T) {
	spec := RoleSpec{
		RequiredSkills:  []string{"javascript", "react"},
		RoleType:        "frontend",
		ExperienceLevel: "fresher",
		JobFrequency:    map[string]float64{"javascript": 0.9},
	}
	assert.NoError(t, spec.Validate())
}

func TestRoleSpec_ValidateEmptyRequiredIsAllowed(t *testing.T) {
	// roles with no listed requirements degrade downstream, they do not error.
	spec := RoleSpec{RoleType: "frontend"}
	assert.NoError(t, spec.Validate())
}

func TestRoleSpec_ValidateRejectsOversizedSkill(t *testing.T) {
	spec := RoleSpec{RequiredSkills: []string{strings.Repeat("x", 200)}}
	assert.Error(t, spec.Validate())
}

func TestRoleSpec_ValidateRejectsFrequencyOutOfRange(t *testing.T) {
	spec := RoleSpec{JobFrequency: map[string]float64{"javascript": 1.5}}
	assert.Error(t, spec.Validate())
}

func TestAllCategories_CoverWeightsAndCriticals(t *testing.T) {
	seen := make(map[Category]bool, len(AllCategories))
	for _, cat := range AllCategories {
		assert.False(t, seen[cat], "duplicate category %q", cat)
		seen[cat] = true
	}
	for _, crit := range CriticalCategories {
		assert.True(t, seen[crit], "critical category %q missing from AllCategories", crit)
	}
}
