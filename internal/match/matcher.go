// Package match compares candidate skills against role requirements using
// exact/synonym, hierarchical, and fuzzy strategies with confidence scores.
package match

import (
	"fmt"

	"github.com/Dharshika-112/Skill-Gap-Analyzer-sub000/internal/normalize"
	"github.com/Dharshika-112/Skill-Gap-Analyzer-sub000/internal/types"
)

// Strategy thresholds and confidences. Fixed by the matching contract;
// changing them changes every downstream score.
const (
	confExact          = 1.0
	confHierDirect     = 0.9
	confHierSimilar    = 0.8
	prereqSimThreshold = 0.75
	fuzzyThreshold     = 0.85
)

// Matcher compares candidate skills against required skills. It holds only
// immutable tables and is safe for concurrent use.
type Matcher struct {
	synonyms *normalize.SynonymTable
	prereqs  *PrerequisiteGraph
}

// NewMatcher creates a Matcher over the given synonym table and
// prerequisite graph.
func NewMatcher(synonyms *normalize.SynonymTable, prereqs *PrerequisiteGraph) *Matcher {
	return &Matcher{synonyms: synonyms, prereqs: prereqs}
}

// Default returns a Matcher over the packaged tables.
func Default() *Matcher {
	return NewMatcher(normalize.DefaultSynonyms(), DefaultPrerequisites())
}

// MatchOne matches one candidate token against the required set. The three
// strategies run in fixed precedence order and the first success wins:
// exact/synonym (1.0), hierarchical (0.9 direct, 0.8 via prerequisite
// similarity), fuzzy (best similarity >= 0.85). When none succeed the
// result has kind none, confidence 0, and an empty required token.
func (m *Matcher) MatchOne(candidate types.SkillToken, required []types.SkillToken) types.SkillMatch {
	if match, ok := m.matchExact(candidate, required); ok {
		return match
	}
	if match, ok := m.matchHierarchical(candidate, required); ok {
		return match
	}
	if match, ok := m.matchFuzzy(candidate, required); ok {
		return match
	}
	return types.SkillMatch{
		Candidate:  candidate,
		Kind:       types.MatchNone,
		Confidence: 0,
		Reason:     fmt.Sprintf("%q does not cover any required skill", candidate),
	}
}

// MatchAll matches every candidate in input order against the required set.
// Each required token can be claimed at most once; when two candidates
// would claim the same required token, the earlier candidate wins and the
// later one is matched against the remaining requirements only. Required
// tokens left unclaimed are reported as unmatched.
func (m *Matcher) MatchAll(candidates, required []types.SkillToken) types.MatchReport {
	report := types.MatchReport{
		Matches:           make([]types.SkillMatch, 0, len(candidates)),
		MatchedRequired:   []types.SkillToken{},
		UnmatchedRequired: []types.SkillToken{},
		KindCounts: map[string]int{
			types.MatchExact.String():        0,
			types.MatchHierarchical.String(): 0,
			types.MatchFuzzy.String():        0,
			types.MatchNone.String():         0,
		},
	}

	claimed := make(map[types.SkillToken]bool, len(required))
	for _, candidate := range candidates {
		remaining := make([]types.SkillToken, 0, len(required))
		for _, req := range required {
			if !claimed[req] {
				remaining = append(remaining, req)
			}
		}

		result := m.MatchOne(candidate, remaining)
		report.Matches = append(report.Matches, result)
		report.KindCounts[result.Kind.String()]++
		if result.Kind != types.MatchNone {
			claimed[result.Required] = true
			report.MatchedRequired = append(report.MatchedRequired, result.Required)
		}
	}

	for _, req := range required {
		if !claimed[req] {
			report.UnmatchedRequired = append(report.UnmatchedRequired, req)
		}
	}

	if len(required) > 0 {
		report.MatchPercentage = float64(len(report.MatchedRequired)) / float64(len(required)) * 100
	}
	return report
}

// matchExact covers identity and shared synonym groups.
func (m *Matcher) matchExact(candidate types.SkillToken, required []types.SkillToken) (types.SkillMatch, bool) {
	for _, req := range required {
		if candidate == req || m.synonyms.SameGroup(candidate.String(), req.String()) {
			return types.SkillMatch{
				Candidate:  candidate,
				Required:   req,
				Kind:       types.MatchExact,
				Confidence: confExact,
				Reason:     fmt.Sprintf("%q directly satisfies %q", candidate, req),
			}, true
		}
	}
	return types.SkillMatch{}, false
}

// matchHierarchical covers advanced candidate skills whose registered
// prerequisites subsume a required skill. Direct prerequisite equality is
// tried against the whole required set before prerequisite similarity.
func (m *Matcher) matchHierarchical(candidate types.SkillToken, required []types.SkillToken) (types.SkillMatch, bool) {
	prereqs := m.prereqs.Prerequisites(candidate.String())
	if len(prereqs) == 0 {
		return types.SkillMatch{}, false
	}

	for _, req := range required {
		for _, prereq := range prereqs {
			if prereq == req.String() {
				return types.SkillMatch{
					Candidate:  candidate,
					Required:   req,
					Kind:       types.MatchHierarchical,
					Confidence: confHierDirect,
					Reason:     fmt.Sprintf("%q subsumes %q as a prerequisite", candidate, req),
				}, true
			}
		}
	}

	for _, req := range required {
		for _, prereq := range prereqs {
			if Similarity(prereq, req.String()) >= prereqSimThreshold {
				return types.SkillMatch{
					Candidate:  candidate,
					Required:   req,
					Kind:       types.MatchHierarchical,
					Confidence: confHierSimilar,
					Reason:     fmt.Sprintf("%q subsumes a skill similar to %q", candidate, req),
				}, true
			}
		}
	}

	return types.SkillMatch{}, false
}

// matchFuzzy takes the best-scoring required token at or above the fuzzy
// threshold, ties broken by required order.
func (m *Matcher) matchFuzzy(candidate types.SkillToken, required []types.SkillToken) (types.SkillMatch, bool) {
	var best types.SkillToken
	bestScore := 0.0
	for _, req := range required {
		if score := Similarity(candidate.String(), req.String()); score > bestScore {
			bestScore = score
			best = req
		}
	}

	if bestScore < fuzzyThreshold {
		return types.SkillMatch{}, false
	}
	return types.SkillMatch{
		Candidate:  candidate,
		Required:   best,
		Kind:       types.MatchFuzzy,
		Confidence: bestScore,
		Reason:     fmt.Sprintf("%q closely resembles %q", candidate, best),
	}, true
}
