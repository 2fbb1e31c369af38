// Package roadmap turns a missing-skill set into a dependency-ordered,
// time-boxed, week-by-week learning plan with milestones.
package roadmap

import (
	"fmt"
	"math"
	"time"

	"github.com/Dharshika-112/Skill-Gap-Analyzer-sub000/internal/match"
	"github.com/Dharshika-112/Skill-Gap-Analyzer-sub000/internal/taxonomy"
	"github.com/Dharshika-112/Skill-Gap-Analyzer-sub000/internal/types"
)

// prereqSatisfiedThreshold is the similarity a learned skill must reach
// against a prerequisite for the prerequisite to count as satisfied.
const prereqSatisfiedThreshold = 0.8

// Generator builds learning roadmaps over immutable prerequisite and
// time-estimate tables. Safe for concurrent use.
type Generator struct {
	prereqs     *match.PrerequisiteGraph
	taxonomy    *taxonomy.Taxonomy
	weeklyHours float64
	now         func() time.Time
}

// NewGenerator creates a Generator with the given tables and weekly study
// budget. A non-positive budget falls back to DefaultWeeklyHours.
func NewGenerator(prereqs *match.PrerequisiteGraph, tax *taxonomy.Taxonomy, weeklyHours float64) *Generator {
	if weeklyHours <= 0 {
		weeklyHours = DefaultWeeklyHours
	}
	return &Generator{
		prereqs:     prereqs,
		taxonomy:    tax,
		weeklyHours: weeklyHours,
		now:         time.Now,
	}
}

// Default returns a Generator over the packaged tables.
func Default() *Generator {
	return NewGenerator(match.DefaultPrerequisites(), taxonomy.Default(), DefaultWeeklyHours)
}

// Generate produces the roadmap for the missing skills, honoring
// prerequisite order. candidateSkills seed the learned set so skills the
// candidate already holds never block a prerequisite. When targetWeeks is
// positive and the naive plan is longer, contiguous weeks are merged; the
// merge is intentionally lossy about per-skill narrative.
func (g *Generator) Generate(missing, candidateSkills []types.SkillToken, targetWeeks int) types.RoadmapPlan {
	plan := types.RoadmapPlan{
		Weeks:      []types.WeekPlan{},
		Milestones: []types.Milestone{},
	}
	if len(missing) == 0 {
		plan.ProjectedEnd = g.now()
		return plan
	}

	ordered := g.order(missing, candidateSkills)
	plan.Weeks = g.scheduleWeeks(ordered)
	for _, w := range plan.Weeks {
		plan.TotalHours += w.Hours
	}

	if targetWeeks > 0 && len(plan.Weeks) > targetWeeks {
		naive := len(plan.Weeks)
		plan.Weeks = compress(plan.Weeks, targetWeeks)
		plan.Compressed = len(plan.Weeks) < naive
	}

	plan.Milestones = milestones(plan.Weeks, ordered)
	plan.ProjectedEnd = g.now().AddDate(0, 0, 7*len(plan.Weeks))
	return plan
}

// order performs a greedy topological ordering of the missing skills.
// A skill is ready when all of its registered prerequisites are satisfied
// by the learned set; among ready skills the easiest goes first, ties
// broken by input order. When nothing is ready the skill with the fewest
// unmet prerequisites is forced, so a cyclic or incomplete graph never
// deadlocks the plan.
func (g *Generator) order(missing, candidateSkills []types.SkillToken) []types.SkillToken {
	learned := make([]string, 0, len(candidateSkills)+len(missing))
	for _, c := range candidateSkills {
		learned = append(learned, c.String())
	}

	remaining := make([]types.SkillToken, len(missing))
	copy(remaining, missing)

	ordered := make([]types.SkillToken, 0, len(missing))
	for len(remaining) > 0 {
		pick := -1
		bestDifficulty := types.DifficultyHard + 1
		for i, skill := range remaining {
			if g.unmetPrereqs(skill, learned) > 0 {
				continue
			}
			if d := g.taxonomy.Difficulty(skill); d < bestDifficulty {
				bestDifficulty = d
				pick = i
			}
		}

		if pick < 0 {
			// Deadlock fallback: fewest unmet prerequisites wins.
			fewest := math.MaxInt
			for i, skill := range remaining {
				if unmet := g.unmetPrereqs(skill, learned); unmet < fewest {
					fewest = unmet
					pick = i
				}
			}
		}

		selected := remaining[pick]
		ordered = append(ordered, selected)
		learned = append(learned, selected.String())
		remaining = append(remaining[:pick], remaining[pick+1:]...)
	}

	return ordered
}

// unmetPrereqs counts registered prerequisites of skill not yet satisfied
// by the learned set.
func (g *Generator) unmetPrereqs(skill types.SkillToken, learned []string) int {
	unmet := 0
	for _, prereq := range g.prereqs.Prerequisites(skill.String()) {
		satisfied := false
		for _, l := range learned {
			if match.Similarity(prereq, l) >= prereqSatisfiedThreshold {
				satisfied = true
				break
			}
		}
		if !satisfied {
			unmet++
		}
	}
	return unmet
}

// hours estimates total study hours for one skill: the static per-skill
// table first, then the difficulty baseline.
func (g *Generator) hours(skill types.SkillToken) float64 {
	if h, ok := skillHours[skill.String()]; ok {
		return h
	}
	return baselineHours[g.taxonomy.Difficulty(skill)]
}

// scheduleWeeks lays the ordered skills onto consecutive weeks, each week
// holding at most the weekly budget, with the activity mix shifting across
// a skill's own span.
func (g *Generator) scheduleWeeks(ordered []types.SkillToken) []types.WeekPlan {
	weeks := make([]types.WeekPlan, 0, len(ordered))
	weekNum := 0
	for _, skill := range ordered {
		total := g.hours(skill)
		span := int(math.Ceil(total / g.weeklyHours))
		if span < 1 {
			span = 1
		}

		remaining := total
		for i := 0; i < span; i++ {
			weekNum++
			h := g.weeklyHours
			if remaining < h {
				h = remaining
			}
			remaining -= h

			weeks = append(weeks, types.WeekPlan{
				Week:     weekNum,
				Skills:   []types.SkillToken{skill},
				Hours:    h,
				Split:    ratiosFor(i, span).split(h),
				Outcomes: []string{outcomeFor(skill, i, span)},
			})
		}
	}
	return weeks
}

// outcomeFor writes the learning outcome for week i (0-based) of a skill
// spanning n weeks.
func outcomeFor(skill types.SkillToken, i, n int) string {
	switch {
	case n <= 1:
		return fmt.Sprintf("Learn %s end to end and apply it in a small exercise", skill)
	case i == 0:
		return fmt.Sprintf("Understand the fundamentals of %s", skill)
	case i == n-1:
		return fmt.Sprintf("Complete a hands-on project with %s", skill)
	default:
		return fmt.Sprintf("Deepen practical experience with %s", skill)
	}
}

// compress merges contiguous groups of weeks using ratio = naive/target
// rounded down. A ratio below 2 leaves the plan untouched even though it
// still exceeds the target; that bound keeps merging predictable rather
// than collapsing everything into the last week.
func compress(weeks []types.WeekPlan, targetWeeks int) []types.WeekPlan {
	ratio := len(weeks) / targetWeeks
	if ratio < 2 {
		return weeks
	}

	merged := make([]types.WeekPlan, 0, targetWeeks+1)
	for start := 0; start < len(weeks); start += ratio {
		end := start + ratio
		if end > len(weeks) {
			end = len(weeks)
		}

		group := types.WeekPlan{Week: len(merged) + 1}
		seen := make(map[types.SkillToken]bool)
		for _, w := range weeks[start:end] {
			group.Hours += w.Hours
			group.Split.Theory += w.Split.Theory
			group.Split.Practice += w.Split.Practice
			group.Split.Project += w.Split.Project
			group.Split.Review += w.Split.Review
			group.Outcomes = append(group.Outcomes, w.Outcomes...)
			for _, s := range w.Skills {
				if !seen[s] {
					seen[s] = true
					group.Skills = append(group.Skills, s)
				}
			}
		}
		merged = append(merged, group)
	}
	return merged
}

// milestones derives skill-completion, progress, and final milestones from
// the (possibly compressed) week layout.
func milestones(weeks []types.WeekPlan, ordered []types.SkillToken) []types.Milestone {
	if len(weeks) == 0 {
		return []types.Milestone{}
	}

	ms := make([]types.Milestone, 0, len(ordered)+4)

	// Final week each skill appears in.
	lastWeek := make(map[types.SkillToken]int, len(ordered))
	for _, w := range weeks {
		for _, s := range w.Skills {
			lastWeek[s] = w.Week
		}
	}
	for _, skill := range ordered {
		ms = append(ms, types.Milestone{
			Week:        lastWeek[skill],
			Kind:        types.MilestoneSkillComplete,
			Description: fmt.Sprintf("%s learned and practiced", skill),
		})
	}

	total := len(weeks)
	for _, pct := range []int{25, 50, 75} {
		week := int(math.Ceil(float64(total) * float64(pct) / 100))
		if week < 1 {
			week = 1
		}
		ms = append(ms, types.Milestone{
			Week:        week,
			Kind:        types.MilestoneProgress,
			Description: fmt.Sprintf("%d%% of the learning plan complete", pct),
		})
	}

	ms = append(ms, types.Milestone{
		Week:        total,
		Kind:        types.MilestoneFinal,
		Description: "Learning plan complete; ready to revisit the gap analysis",
	})
	return ms
}
