package roadmap

import "github.com/Dharshika-112/Skill-Gap-Analyzer-sub000/internal/types"

// DefaultWeeklyHours is the fixed study budget one roadmap week absorbs.
const DefaultWeeklyHours = 10.0

// skillHours overrides the per-category baseline for skills whose real
// learning effort is well known.
var skillHours = map[string]float64{
	"javascript":       60,
	"typescript":       30,
	"python":           60,
	"java":             70,
	"go":               50,
	"c++":              80,
	"sql":              30,
	"html":             20,
	"css":              30,
	"react":            50,
	"redux":            20,
	"angular":          50,
	"vue":              40,
	"next.js":          30,
	"node.js":          40,
	"express":          20,
	"django":           40,
	"flask":            25,
	"spring":           50,
	"graphql":          20,
	"rest api":         20,
	"mongodb":          25,
	"postgresql":       30,
	"mysql":            25,
	"redis":            15,
	"docker":           25,
	"kubernetes":       50,
	"aws":              60,
	"terraform":        30,
	"ci/cd":            20,
	"git":              10,
	"linux":            30,
	"unit testing":     15,
	"machine learning": 80,
	"deep learning":    90,
	"nlp":              70,
	"computer vision":  70,
	"tensorflow":       40,
	"pytorch":          40,
	"pandas":           20,
	"numpy":            15,
	"data analysis":    40,
	"microservices":    40,
	"system design":    60,
	"flutter":          50,
	"react native":     40,
}

// baselineHours is the fallback estimate per difficulty tier.
var baselineHours = map[types.Difficulty]float64{
	types.DifficultyEasy:   20,
	types.DifficultyMedium: 40,
	types.DifficultyHard:   60,
}

// activityRatios divide a week's hours across theory/practice/project/
// review. The mix shifts with the week's position inside one skill's own
// span: early weeks lean on theory, the last week on project work.
type activityRatios struct {
	theory, practice, project, review float64
}

var (
	ratiosFirst  = activityRatios{0.40, 0.35, 0.15, 0.10}
	ratiosMiddle = activityRatios{0.25, 0.40, 0.25, 0.10}
	ratiosLast   = activityRatios{0.15, 0.30, 0.45, 0.10}
	ratiosSingle = activityRatios{0.30, 0.40, 0.20, 0.10}
)

// ratiosFor picks the activity mix for week index i (0-based) of a skill
// spanning n weeks.
func ratiosFor(i, n int) activityRatios {
	switch {
	case n <= 1:
		return ratiosSingle
	case i == 0:
		return ratiosFirst
	case i == n-1:
		return ratiosLast
	default:
		return ratiosMiddle
	}
}

// split applies the ratios to a week's hour total.
func (r activityRatios) split(hours float64) types.ActivitySplit {
	return types.ActivitySplit{
		Theory:   hours * r.theory,
		Practice: hours * r.practice,
		Project:  hours * r.project,
		Review:   hours * r.review,
	}
}
