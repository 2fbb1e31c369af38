package taxonomy

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Dharshika-112/Skill-Gap-Analyzer-sub000/internal/types"
)

func TestClassify_KnownSkills(t *testing.T) {
	tax := Default()

	tests := []struct {
		token   types.SkillToken
		primary types.Category
	}{
		{"javascript", types.CategoryProgramming},
		{"react", types.CategoryFrameworks},
		{"sql", types.CategoryDatabases},
		{"docker", types.CategoryDevOps},
		{"communication", types.CategorySoftSkills},
		{"machine learning", types.CategoryAIML},
		{"nlp", types.CategoryNLPCV},
		{"git", types.CategoryMethodology},
	}

	for _, tt := range tests {
		t.Run(tt.token.String(), func(t *testing.T) {
			cats := tax.Classify(tt.token)
			require.NotEmpty(t, cats)
			assert.Equal(t, tt.primary, cats[0])
			assert.Equal(t, tt.primary, tax.Primary(tt.token))
		})
	}
}

func TestClassify_SecondaryCategories(t *testing.T) {
	tax := Default()

	cats := tax.Classify("javascript")
	assert.Equal(t, []types.Category{types.CategoryProgramming, types.CategoryFrontend}, cats)
}

func TestClassify_SubstringFallback(t *testing.T) {
	tax := Default()

	assert.Equal(t, types.CategoryDatabases, tax.Primary("advanced sql"))
	assert.Equal(t, types.CategoryFrameworks, tax.Primary("react hooks"))
}

func TestClassify_UnknownLandsInDefaultBucket(t *testing.T) {
	tax := Default()

	assert.Equal(t, []types.Category{types.CategoryUncategorized}, tax.Classify("underwater basket weaving"))
	assert.Equal(t, []types.Category{types.CategoryUncategorized}, tax.Classify(""))
}

func TestClassifyList_GroupsByEveryCategory(t *testing.T) {
	tax := Default()

	grouped := tax.ClassifyList([]types.SkillToken{"javascript", "react", "sql"})

	assert.ElementsMatch(t, []types.SkillToken{"javascript"}, grouped[types.CategoryProgramming])
	assert.ElementsMatch(t, []types.SkillToken{"react"}, grouped[types.CategoryFrameworks])
	assert.ElementsMatch(t, []types.SkillToken{"sql"}, grouped[types.CategoryDatabases])
	// javascript and react both carry frontend as a secondary category.
	assert.ElementsMatch(t, []types.SkillToken{"javascript", "react"}, grouped[types.CategoryFrontend])
}

func TestCategoryWeight_RoleMultipliers(t *testing.T) {
	tax := Default()

	// frontend boosts the frontend category: 0.8 * 1.8, capped at 1.0.
	assert.InDelta(t, 1.0, tax.CategoryWeight(types.CategoryFrontend, "frontend"), 1e-9)
	// frontend dampens ai/ml: 0.85 * 0.5.
	assert.InDelta(t, 0.425, tax.CategoryWeight(types.CategoryAIML, "frontend"), 1e-9)
	// categories absent from the role table keep their base weight.
	assert.InDelta(t, 0.85, tax.CategoryWeight(types.CategoryDatabases, "frontend"), 1e-9)
}

func TestCategoryWeight_UnknownRoleBehavesAsGeneral(t *testing.T) {
	tax := Default()

	for _, role := range []string{"general", "", "astronaut"} {
		assert.InDelta(t, 1.0, tax.CategoryWeight(types.CategoryProgramming, role), 1e-9)
		assert.InDelta(t, 0.5, tax.CategoryWeight(types.CategorySoftSkills, role), 1e-9)
	}
}

func TestCategoryWeight_RoleTypeCaseInsensitive(t *testing.T) {
	tax := Default()

	assert.InDelta(t,
		tax.CategoryWeight(types.CategoryFrontend, "frontend"),
		tax.CategoryWeight(types.CategoryFrontend, "  Frontend  "),
		1e-9)
}

func TestCategoryWeight_UnknownCategoryUsesDefaultBase(t *testing.T) {
	tax := Default()

	assert.InDelta(t, 0.3, tax.CategoryWeight(types.Category("made-up"), "general"), 1e-9)
}

func TestDifficulty_FollowsPrimaryCategory(t *testing.T) {
	tax := Default()

	assert.Equal(t, types.DifficultyEasy, tax.Difficulty("sql"))
	assert.Equal(t, types.DifficultyMedium, tax.Difficulty("javascript"))
	assert.Equal(t, types.DifficultyHard, tax.Difficulty("machine learning"))
	// unknown skills inherit the default bucket's medium difficulty.
	assert.Equal(t, types.DifficultyMedium, tax.Difficulty("underwater basket weaving"))
}
