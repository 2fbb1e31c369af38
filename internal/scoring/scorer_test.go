package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Dharshika-112/Skill-Gap-Analyzer-sub000/internal/types"
)

func tokens(ss ...string) []types.SkillToken {
	out := make([]types.SkillToken, len(ss))
	for i, s := range ss {
		out[i] = types.SkillToken(s)
	}
	return out
}

func findCategory(t *testing.T, cats []types.CategoryCoverage, want types.Category) types.CategoryCoverage {
	t.Helper()
	for _, c := range cats {
		if c.Category == want {
			return c
		}
	}
	t.Fatalf("category %q not present in coverage", want)
	return types.CategoryCoverage{}
}

func TestScore_EmptyRequiredIsInsufficientData(t *testing.T) {
	s := Default()

	result := s.Score(tokens("javascript"), nil, "frontend", "fresher", nil)

	assert.True(t, result.InsufficientData)
	assert.Equal(t, 0.0, result.OverallScore)
	assert.Equal(t, types.ReadinessBeginner, result.Readiness)
	assert.Empty(t, result.Categories)
	assert.Empty(t, result.MissingSkills)
}

func TestScore_EmptyCandidates(t *testing.T) {
	s := Default()

	result := s.Score(nil, tokens("python"), "general", "fresher", nil)

	assert.False(t, result.InsufficientData)
	assert.Equal(t, 0.0, result.OverallScore)
	assert.Equal(t, types.ReadinessBeginner, result.Readiness)
	require.Len(t, result.MissingSkills, 1)
	missing := result.MissingSkills[0]
	assert.Equal(t, types.SkillToken("python"), missing.Skill)
	assert.Equal(t, types.CategoryProgramming, missing.Category)
	assert.Equal(t, types.DifficultyMedium, missing.Difficulty)
	assert.Equal(t, "3-6 weeks", missing.LearningTime)
	assert.Greater(t, missing.Weight, 0.0)
}

func TestScore_FullExactCoverage(t *testing.T) {
	s := Default()

	skills := tokens("html", "css", "javascript", "react")
	result := s.Score(skills, skills, "frontend", "fresher", nil)

	assert.InDelta(t, 100.0, result.OverallScore, 1e-9)
	assert.Equal(t, types.ReadinessJobReady, result.Readiness)
	assert.Empty(t, result.MissingSkills)
}

func TestScore_HierarchicalMatchDiscounted(t *testing.T) {
	s := Default()

	// react covers javascript hierarchically: confidence 0.9 x multiplier
	// 0.95 of the full weight, whatever that weight is.
	result := s.Score(tokens("react"), tokens("javascript"), "general", "fresher", nil)

	assert.InDelta(t, 85.5, result.OverallScore, 1e-9)
	assert.Equal(t, types.ReadinessJobReady, result.Readiness)
}

func TestScore_MonotoneInCandidates(t *testing.T) {
	s := Default()

	required := tokens("javascript", "react", "sql")
	prev := -1.0
	for _, candidates := range [][]types.SkillToken{
		nil,
		tokens("javascript"),
		tokens("javascript", "react"),
		tokens("javascript", "react", "sql"),
	} {
		result := s.Score(candidates, required, "frontend", "fresher", nil)
		assert.GreaterOrEqual(t, result.OverallScore, prev)
		prev = result.OverallScore
	}
	assert.InDelta(t, 100.0, prev, 1e-9)
}

func TestScore_CriticalCategoryFloorCapsVerdict(t *testing.T) {
	s := Default()

	// every matched skill is outside the critical categories; the one
	// unmatched skill is the only programming requirement. The overall score
	// clears the fresher Job-Ready bar but programming coverage is 0.
	required := tokens("docker", "kubernetes", "communication", "teamwork", "agile", "git", "python")
	candidates := tokens("docker", "kubernetes", "communication", "teamwork", "agile", "git")

	result := s.Score(candidates, required, "general", "fresher", nil)

	assert.GreaterOrEqual(t, result.OverallScore, 70.0)
	assert.Equal(t, types.ReadinessInterviewReady, result.Readiness)

	programming := findCategory(t, result.Categories, types.CategoryProgramming)
	assert.Equal(t, 0.0, programming.Coverage)
	assert.Equal(t, 1, programming.RequiredCount)
	assert.Equal(t, 0, programming.MatchedCount)
}

func TestScore_CategoryCoverage(t *testing.T) {
	s := Default()

	result := s.Score(
		tokens("javascript", "react"),
		tokens("javascript", "react", "sql"),
		"frontend", "fresher", nil)

	programming := findCategory(t, result.Categories, types.CategoryProgramming)
	assert.InDelta(t, 100.0, programming.Coverage, 1e-9)

	// javascript and react both count toward the shared frontend category.
	frontend := findCategory(t, result.Categories, types.CategoryFrontend)
	assert.Equal(t, 2, frontend.RequiredCount)
	assert.Equal(t, 2, frontend.MatchedCount)

	databases := findCategory(t, result.Categories, types.CategoryDatabases)
	assert.Equal(t, 0.0, databases.Coverage)
	assert.Equal(t, 1, databases.RequiredCount)
	assert.Equal(t, 0, databases.MatchedCount)
}

func TestScore_MissingRankedByWeightThenText(t *testing.T) {
	s := Default()

	result := s.Score(nil, tokens("communication", "javascript", "sql"), "general", "fresher", nil)

	require.Len(t, result.MissingSkills, 3)
	// javascript and sql tie on weight; the tie breaks on token text, and
	// the soft skill ranks last.
	assert.Equal(t, types.SkillToken("javascript"), result.MissingSkills[0].Skill)
	assert.Equal(t, types.SkillToken("sql"), result.MissingSkills[1].Skill)
	assert.Equal(t, types.SkillToken("communication"), result.MissingSkills[2].Skill)
}

func TestScore_FrequencySignalRaisesTier(t *testing.T) {
	s := Default()

	low := s.Score(nil, tokens("docker"), "general", "fresher", nil)
	high := s.Score(nil, tokens("docker"), "general", "fresher", map[string]float64{"docker": 0.9})

	require.Len(t, low.MissingSkills, 1)
	require.Len(t, high.MissingSkills, 1)
	assert.Greater(t, high.MissingSkills[0].Weight, low.MissingSkills[0].Weight)
}

func TestScore_VerdictThresholdsByLevel(t *testing.T) {
	s := Default()

	// javascript matched, sql missing: exactly 50% for a fresher, below the
	// mid-level interview bar once the mid multipliers apply.
	fresher := s.Score(tokens("javascript"), tokens("javascript", "sql"), "general", "fresher", nil)
	assert.Equal(t, types.ReadinessInterviewReady, fresher.Readiness)

	mid := s.Score(tokens("javascript"), tokens("javascript", "sql"), "general", "mid", nil)
	assert.Equal(t, types.ReadinessBeginner, mid.Readiness)
}

func TestScore_NormalizesExperienceLevel(t *testing.T) {
	s := Default()

	assert.Equal(t, "senior", s.Score(nil, tokens("sql"), "general", "  SENIOR ", nil).ExperienceLevel)
	assert.Equal(t, "fresher", s.Score(nil, tokens("sql"), "general", "wizard", nil).ExperienceLevel)
}

func TestTier_CriticalTableBeatsFrequency(t *testing.T) {
	s := Default()

	assert.Equal(t, TierCritical, s.tier("javascript", "frontend", 0.1))
	assert.Equal(t, TierOptional, s.tier("javascript", "general", 0.1))
	assert.Equal(t, TierImportant, s.tier("docker", "general", 0.8))
	assert.Equal(t, TierPreferred, s.tier("docker", "general", 0.5))
}
