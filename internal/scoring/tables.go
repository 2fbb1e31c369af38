package scoring

import (
	"strings"

	"github.com/Dharshika-112/Skill-Gap-Analyzer-sub000/internal/types"
)

// ImportanceTier grades how much a required skill matters for the role.
type ImportanceTier int

// Importance tiers, most important first.
const (
	TierCritical ImportanceTier = iota
	TierImportant
	TierPreferred
	TierOptional
)

// tierWeights maps each importance tier to its scoring weight.
var tierWeights = map[ImportanceTier]float64{
	TierCritical:  1.0,
	TierImportant: 0.8,
	TierPreferred: 0.6,
	TierOptional:  0.3,
}

// kindMultipliers discount achieved weight by how the skill was matched.
var kindMultipliers = map[types.MatchKind]float64{
	types.MatchExact:        1.0,
	types.MatchHierarchical: 0.95,
	types.MatchFuzzy:        0.85,
	types.MatchNone:         0,
}

// criticalSkills lists, per role type, the canonical skills that are
// non-negotiable for that role. Skills outside this table get their tier
// from the job-frequency signal.
var criticalSkills = map[string]map[string]bool{
	"frontend": {
		"javascript": true,
		"html":       true,
		"css":        true,
		"react":      true,
	},
	"backend": {
		"sql":      true,
		"rest api": true,
		"node.js":  true,
		"python":   true,
		"java":     true,
	},
	"mobile": {
		"flutter":      true,
		"react native": true,
		"kotlin":       true,
		"swift":        true,
	},
	"devops": {
		"docker":     true,
		"kubernetes": true,
		"ci/cd":      true,
		"linux":      true,
	},
	"data": {
		"sql":           true,
		"python":        true,
		"pandas":        true,
		"data analysis": true,
	},
	"ai": {
		"python":           true,
		"machine learning": true,
		"deep learning":    true,
	},
	"fullstack": {
		"javascript": true,
		"sql":        true,
		"react":      true,
		"node.js":    true,
	},
}

// Frequency-signal cut points for deriving a tier when the skill is not in
// the role's critical table. An absent signal defaults to 0.5 (preferred).
const (
	defaultFrequency   = 0.5
	importantFrequency = 0.75
	preferredFrequency = 0.45
)

// experienceMultipliers adjust skill weight by (experience level, skill
// difficulty): freshers are not penalized for missing hard skills as much
// as seniors are, and seniors are expected to have the hard ones.
var experienceMultipliers = map[string]map[types.Difficulty]float64{
	"fresher": {
		types.DifficultyEasy:   1.0,
		types.DifficultyMedium: 0.85,
		types.DifficultyHard:   0.7,
	},
	"junior": {
		types.DifficultyEasy:   1.0,
		types.DifficultyMedium: 0.95,
		types.DifficultyHard:   0.85,
	},
	"mid": {
		types.DifficultyEasy:   0.9,
		types.DifficultyMedium: 1.0,
		types.DifficultyHard:   1.0,
	},
	"senior": {
		types.DifficultyEasy:   0.8,
		types.DifficultyMedium: 1.0,
		types.DifficultyHard:   1.0,
	},
}

// verdictThresholds holds (job-ready, interview-ready) score floors per
// experience level. Unknown levels use the fresher thresholds.
var verdictThresholds = map[string][2]float64{
	"fresher": {70, 50},
	"junior":  {75, 55},
	"mid":     {80, 60},
	"senior":  {80, 60},
}

// criticalCoverageFloor is the per-category coverage every critical
// category must reach before a Job-Ready verdict is allowed.
const criticalCoverageFloor = 40.0

// learningTimeBuckets gives the coarse study-time estimate per difficulty.
var learningTimeBuckets = map[types.Difficulty]string{
	types.DifficultyEasy:   "1-2 weeks",
	types.DifficultyMedium: "3-6 weeks",
	types.DifficultyHard:   "2-4 months",
}

// normalizeLevel lower-cases an experience level and falls back to fresher
// weighting for unknown values.
func normalizeLevel(level string) string {
	switch l := strings.ToLower(strings.TrimSpace(level)); l {
	case "fresher", "junior", "mid", "senior":
		return l
	default:
		return "fresher"
	}
}
