// Package taxonomy classifies normalized skills into weighted professional
// categories. Weights vary by target-role type.
package taxonomy

import (
	"sort"
	"strings"

	"github.com/Dharshika-112/Skill-Gap-Analyzer-sub000/internal/types"
)

// Taxonomy holds the immutable classification and weighting tables. Load it
// once at process start and share it across all analyses.
type Taxonomy struct {
	categories  map[string][]types.Category
	sortedSkill []string // table keys sorted, for deterministic fuzzy scans
	weights     map[types.Category]float64
	multipliers map[string]map[types.Category]float64
}

// New builds a Taxonomy from explicit tables. Intended for tests; most
// callers want Default.
func New(
	categories map[string][]types.Category,
	weights map[types.Category]float64,
	multipliers map[string]map[types.Category]float64,
) *Taxonomy {
	keys := make([]string, 0, len(categories))
	for k := range categories {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return &Taxonomy{
		categories:  categories,
		sortedSkill: keys,
		weights:     weights,
		multipliers: multipliers,
	}
}

// Default returns the packaged taxonomy.
func Default() *Taxonomy { return defaultTaxonomy }

var defaultTaxonomy = New(skillCategories, baseWeights, roleMultipliers)

// Classify returns the categories of a token, primary category first.
// Unknown tokens land in the low-weight default bucket.
func (t *Taxonomy) Classify(token types.SkillToken) []types.Category {
	if token.IsEmpty() {
		return []types.Category{types.CategoryUncategorized}
	}
	if cats, ok := t.categories[token.String()]; ok {
		return cats
	}

	// Substring fallback: a token like "advanced sql" should still land in
	// databases. Scan in sorted key order for determinism.
	s := token.String()
	for _, key := range t.sortedSkill {
		if len(key) < 3 && key != s {
			continue
		}
		if strings.Contains(s, key) || strings.Contains(key, s) {
			return t.categories[key]
		}
	}

	return []types.Category{types.CategoryUncategorized}
}

// Primary returns the primary (first) category of a token.
func (t *Taxonomy) Primary(token types.SkillToken) types.Category {
	return t.Classify(token)[0]
}

// ClassifyList groups tokens by every category they belong to.
func (t *Taxonomy) ClassifyList(tokens []types.SkillToken) map[types.Category][]types.SkillToken {
	grouped := make(map[types.Category][]types.SkillToken)
	for _, token := range tokens {
		for _, cat := range t.Classify(token) {
			grouped[cat] = append(grouped[cat], token)
		}
	}
	return grouped
}

// Difficulty estimates the learning difficulty of a token from its primary
// category.
func (t *Taxonomy) Difficulty(token types.SkillToken) types.Difficulty {
	return categoryDifficulty[t.Primary(token)]
}

// CategoryWeight returns baseWeight * multiplier(cat, roleType), capped at
// 1.0. Unknown role types behave as "general": multiplier 1.0 everywhere.
func (t *Taxonomy) CategoryWeight(cat types.Category, roleType string) float64 {
	base, ok := t.weights[cat]
	if !ok {
		base = t.weights[types.CategoryUncategorized]
	}

	multiplier := 1.0
	if roleTable, ok := t.multipliers[strings.ToLower(strings.TrimSpace(roleType))]; ok {
		if m, ok := roleTable[cat]; ok {
			multiplier = m
		}
	}

	weight := base * multiplier
	if weight > 1.0 {
		weight = 1.0
	}
	return weight
}
