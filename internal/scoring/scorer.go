// Package scoring computes weighted skill-gap coverage and readiness
// verdicts from match reports and taxonomy weights.
package scoring

import (
	"sort"
	"strings"

	"github.com/Dharshika-112/Skill-Gap-Analyzer-sub000/internal/match"
	"github.com/Dharshika-112/Skill-Gap-Analyzer-sub000/internal/taxonomy"
	"github.com/Dharshika-112/Skill-Gap-Analyzer-sub000/internal/types"
)

// Scorer combines matcher output with taxonomy weights and experience
// context into a GapScoreResult. It holds only immutable tables and is
// safe for concurrent use.
type Scorer struct {
	matcher  *match.Matcher
	taxonomy *taxonomy.Taxonomy
}

// NewScorer creates a Scorer over the given matcher and taxonomy.
func NewScorer(matcher *match.Matcher, tax *taxonomy.Taxonomy) *Scorer {
	return &Scorer{matcher: matcher, taxonomy: tax}
}

// Default returns a Scorer over the packaged tables.
func Default() *Scorer {
	return NewScorer(match.Default(), taxonomy.Default())
}

// Score computes the weighted coverage of required skills by candidate
// skills. Both token lists must already be normalized. The frequency map
// is an optional externally-supplied job-frequency signal keyed by
// required token; absent entries default to 0.5.
//
// Empty inputs never error: an empty required set yields a zero result
// with InsufficientData set so callers can render a graceful state.
func (s *Scorer) Score(
	candidates, required []types.SkillToken,
	roleType, experienceLevel string,
	frequency map[string]float64,
) types.GapScoreResult {
	level := normalizeLevel(experienceLevel)

	result := types.GapScoreResult{
		RoleType:        roleType,
		ExperienceLevel: level,
		Readiness:       types.ReadinessBeginner,
		Categories:      []types.CategoryCoverage{},
		MissingSkills:   []types.MissingSkill{},
	}

	if len(required) == 0 {
		result.InsufficientData = true
		result.Report = s.matcher.MatchAll(candidates, required)
		return result
	}

	report := s.matcher.MatchAll(candidates, required)
	result.Report = report

	// Best claimed match per required token.
	claimedBy := make(map[types.SkillToken]types.SkillMatch, len(report.Matches))
	for _, m := range report.Matches {
		if m.Kind != types.MatchNone {
			claimedBy[m.Required] = m
		}
	}

	weights := make(map[types.SkillToken]float64, len(required))
	totalWeight := 0.0
	achievedWeight := 0.0
	for _, req := range required {
		w := s.skillWeight(req, roleType, level, frequency)
		weights[req] = w
		totalWeight += w
		if m, ok := claimedBy[req]; ok {
			achievedWeight += w * m.Confidence * kindMultipliers[m.Kind]
		}
	}

	if totalWeight > 0 {
		result.OverallScore = achievedWeight / totalWeight * 100
	}

	result.Categories = s.categoryCoverage(required, weights, claimedBy)
	result.MissingSkills = s.rankMissing(report.UnmatchedRequired, weights)
	result.Readiness = verdict(result.OverallScore, level, result.Categories)
	return result
}

// skillWeight derives the composite weight of one required skill:
// importance tier x role-adjusted category weight x experience multiplier
// x frequency multiplier, clamped to [0,1].
func (s *Scorer) skillWeight(
	token types.SkillToken,
	roleType, level string,
	frequency map[string]float64,
) float64 {
	primary := s.taxonomy.Primary(token)
	difficulty := s.taxonomy.Difficulty(token)

	freq := defaultFrequency
	if f, ok := frequency[token.String()]; ok {
		freq = f
	}

	w := tierWeights[s.tier(token, roleType, freq)]
	w *= s.taxonomy.CategoryWeight(primary, roleType)
	w *= experienceMultipliers[level][difficulty]
	w *= 0.5 + freq/2

	if w > 1 {
		w = 1
	}
	if w < 0 {
		w = 0
	}
	return w
}

// tier derives the importance tier of a required skill from the role's
// critical-skill table, falling back to the job-frequency signal.
func (s *Scorer) tier(token types.SkillToken, roleType string, freq float64) ImportanceTier {
	if criticalSkills[strings.ToLower(strings.TrimSpace(roleType))][token.String()] {
		return TierCritical
	}
	switch {
	case freq >= importantFrequency:
		return TierImportant
	case freq >= preferredFrequency:
		return TierPreferred
	default:
		return TierOptional
	}
}

// categoryCoverage computes the weighted coverage of each category that
// holds at least one required token, in stable category order.
func (s *Scorer) categoryCoverage(
	required []types.SkillToken,
	weights map[types.SkillToken]float64,
	claimedBy map[types.SkillToken]types.SkillMatch,
) []types.CategoryCoverage {
	type accum struct {
		total    float64
		achieved float64
		count    int
		matched  int
	}
	perCat := make(map[types.Category]*accum)

	for _, req := range required {
		for _, cat := range s.taxonomy.Classify(req) {
			a := perCat[cat]
			if a == nil {
				a = &accum{}
				perCat[cat] = a
			}
			a.total += weights[req]
			a.count++
			if m, ok := claimedBy[req]; ok {
				a.achieved += weights[req] * m.Confidence * kindMultipliers[m.Kind]
				a.matched++
			}
		}
	}

	coverage := make([]types.CategoryCoverage, 0, len(perCat))
	for _, cat := range types.AllCategories {
		a, ok := perCat[cat]
		if !ok {
			continue
		}
		c := types.CategoryCoverage{
			Category:      cat,
			RequiredCount: a.count,
			MatchedCount:  a.matched,
		}
		if a.total > 0 {
			c.Coverage = a.achieved / a.total * 100
		}
		coverage = append(coverage, c)
	}
	return coverage
}

// rankMissing annotates unmatched required skills and ranks them by weight
// descending, ties broken by token text for reproducibility.
func (s *Scorer) rankMissing(
	unmatched []types.SkillToken,
	weights map[types.SkillToken]float64,
) []types.MissingSkill {
	missing := make([]types.MissingSkill, 0, len(unmatched))
	for _, token := range unmatched {
		primary := s.taxonomy.Primary(token)
		difficulty := s.taxonomy.Difficulty(token)
		missing = append(missing, types.MissingSkill{
			Skill:        token,
			Category:     primary,
			Weight:       weights[token],
			Difficulty:   difficulty,
			LearningTime: learningTimeBuckets[difficulty],
		})
	}

	sort.SliceStable(missing, func(i, j int) bool {
		if missing[i].Weight != missing[j].Weight {
			return missing[i].Weight > missing[j].Weight
		}
		return missing[i].Skill < missing[j].Skill
	})
	return missing
}

// verdict applies the experience-level thresholds and the critical-category
// floor. A candidate is never Job-Ready while any critical category with
// required skills sits below the coverage floor, whatever the overall score.
func verdict(score float64, level string, categories []types.CategoryCoverage) types.Readiness {
	thresholds := verdictThresholds[level]

	criticalOK := true
	for _, c := range categories {
		for _, crit := range types.CriticalCategories {
			if c.Category == crit && c.Coverage < criticalCoverageFloor {
				criticalOK = false
			}
		}
	}

	switch {
	case score >= thresholds[0] && criticalOK:
		return types.ReadinessJobReady
	case score >= thresholds[1]:
		// Also caps candidates whose score clears the Job-Ready bar while a
		// critical category sits below the floor.
		return types.ReadinessInterviewReady
	default:
		return types.ReadinessBeginner
	}
}
