package roadmap

import (
	"testing"
	"time"

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

func fixedGenerator(weeklyHours float64) (*Generator, time.Time) {
	now := time.Date(2026, time.March, 2, 9, 0, 0, 0, time.UTC)
	g := Default()
	if weeklyHours > 0 {
		g = NewGenerator(g.prereqs, g.taxonomy, weeklyHours)
	}
	g.now = func() time.Time { return now }
	return g, now
}

func TestGenerate_EmptyMissing(t *testing.T) {
	g, now := fixedGenerator(0)

	plan := g.Generate(nil, nil, 0)

	assert.Empty(t, plan.Weeks)
	assert.Empty(t, plan.Milestones)
	assert.Equal(t, 0.0, plan.TotalHours)
	assert.False(t, plan.Compressed)
	assert.Equal(t, now, plan.ProjectedEnd)
}

func TestOrder_PrerequisitesFirst(t *testing.T) {
	g, _ := fixedGenerator(0)

	// react depends on javascript, html, and css; among the ready skills the
	// easy web-tech ones go before the medium programming one.
	ordered := g.order(tokens("react", "javascript", "html", "css"), nil)

	assert.Equal(t, tokens("html", "css", "javascript", "react"), ordered)
}

func TestOrder_LearnedSkillsSatisfyPrerequisites(t *testing.T) {
	g, _ := fixedGenerator(0)

	// the candidate already knows react, so redux is ready immediately.
	ordered := g.order(tokens("redux"), tokens("react"))

	assert.Equal(t, tokens("redux"), ordered)
}

func TestOrder_DeadlockFallback(t *testing.T) {
	g, _ := fixedGenerator(0)

	// deep learning's prerequisite is not in the plan or the learned set;
	// the fewest-unmet fallback still schedules it.
	ordered := g.order(tokens("deep learning"), nil)

	assert.Equal(t, tokens("deep learning"), ordered)
}

func TestGenerate_WeeklyBudgetAndSplits(t *testing.T) {
	g, now := fixedGenerator(0)

	// redux is a 20-hour skill: two weeks at the 10-hour default budget.
	plan := g.Generate(tokens("redux"), tokens("react"), 0)

	require.Len(t, plan.Weeks, 2)
	assert.Equal(t, 20.0, plan.TotalHours)
	assert.False(t, plan.Compressed)
	assert.Equal(t, now.AddDate(0, 0, 14), plan.ProjectedEnd)

	for i, week := range plan.Weeks {
		assert.Equal(t, i+1, week.Week)
		assert.Equal(t, tokens("redux"), week.Skills)
		assert.Equal(t, 10.0, week.Hours)
		split := week.Split
		assert.InDelta(t, week.Hours, split.Theory+split.Practice+split.Project+split.Review, 1e-9)
		require.Len(t, week.Outcomes, 1)
	}

	// theory front-loaded, project work back-loaded.
	assert.Greater(t, plan.Weeks[0].Split.Theory, plan.Weeks[1].Split.Theory)
	assert.Less(t, plan.Weeks[0].Split.Project, plan.Weeks[1].Split.Project)
}

func TestGenerate_PartialFinalWeek(t *testing.T) {
	g, _ := fixedGenerator(25)

	// javascript is 60 hours: 25 + 25 + 10 at a 25-hour budget.
	plan := g.Generate(tokens("javascript"), nil, 0)

	require.Len(t, plan.Weeks, 3)
	assert.Equal(t, 25.0, plan.Weeks[0].Hours)
	assert.Equal(t, 25.0, plan.Weeks[1].Hours)
	assert.Equal(t, 10.0, plan.Weeks[2].Hours)
	assert.Equal(t, 60.0, plan.TotalHours)
}

func TestGenerate_EachSkillScheduledOnce(t *testing.T) {
	g, _ := fixedGenerator(0)

	missing := tokens("react", "javascript", "html", "css", "sql")
	plan := g.Generate(missing, nil, 0)

	firstSeen := make(map[types.SkillToken]int)
	lastSeen := make(map[types.SkillToken]int)
	for _, week := range plan.Weeks {
		require.Len(t, week.Skills, 1)
		skill := week.Skills[0]
		if _, ok := firstSeen[skill]; !ok {
			firstSeen[skill] = week.Week
		}
		lastSeen[skill] = week.Week
	}

	require.Len(t, firstSeen, len(missing))
	for _, skill := range missing {
		span := lastSeen[skill] - firstSeen[skill] + 1
		assert.Greater(t, span, 0)
	}
	// prerequisite order holds in the schedule itself.
	assert.Less(t, lastSeen["javascript"], firstSeen["react"])
	assert.Less(t, lastSeen["html"], firstSeen["react"])
	assert.Less(t, lastSeen["css"], firstSeen["react"])
}

func TestGenerate_CompressionMergesWeeks(t *testing.T) {
	g, _ := fixedGenerator(0)

	// javascript alone is a 6-week plan; a 3-week target merges pairs.
	plan := g.Generate(tokens("javascript"), nil, 3)

	require.Len(t, plan.Weeks, 3)
	assert.True(t, plan.Compressed)
	assert.Equal(t, 60.0, plan.TotalHours)
	for i, week := range plan.Weeks {
		assert.Equal(t, i+1, week.Week)
		assert.Equal(t, 20.0, week.Hours)
		assert.Equal(t, tokens("javascript"), week.Skills)
		assert.Len(t, week.Outcomes, 2)
	}
}

func TestGenerate_CompressionRatioBelowTwoIsNoop(t *testing.T) {
	g, _ := fixedGenerator(0)

	// 6 naive weeks against a target of 4: ratio rounds down to 1, so the
	// plan keeps its natural length and is not marked compressed.
	plan := g.Generate(tokens("javascript"), nil, 4)

	assert.Len(t, plan.Weeks, 6)
	assert.False(t, plan.Compressed)
}

func TestGenerate_Milestones(t *testing.T) {
	g, _ := fixedGenerator(0)

	plan := g.Generate(tokens("redux"), tokens("react"), 0)

	require.Len(t, plan.Milestones, 5)

	byKind := make(map[types.MilestoneKind][]types.Milestone)
	for _, m := range plan.Milestones {
		byKind[m.Kind] = append(byKind[m.Kind], m)
	}

	require.Len(t, byKind[types.MilestoneSkillComplete], 1)
	assert.Equal(t, 2, byKind[types.MilestoneSkillComplete][0].Week)

	require.Len(t, byKind[types.MilestoneProgress], 3)
	for _, m := range byKind[types.MilestoneProgress] {
		assert.GreaterOrEqual(t, m.Week, 1)
		assert.LessOrEqual(t, m.Week, 2)
	}

	require.Len(t, byKind[types.MilestoneFinal], 1)
	assert.Equal(t, 2, byKind[types.MilestoneFinal][0].Week)
}

func TestHours_TableThenBaseline(t *testing.T) {
	g, _ := fixedGenerator(0)

	assert.Equal(t, 60.0, g.hours("javascript"))
	assert.Equal(t, 20.0, g.hours("redux"))
	// unknown skill falls back to the default bucket's medium baseline.
	assert.Equal(t, 40.0, g.hours("underwater basket weaving"))
}

func TestRatiosFor_PositionInSpan(t *testing.T) {
	assert.Equal(t, ratiosSingle, ratiosFor(0, 1))
	assert.Equal(t, ratiosFirst, ratiosFor(0, 3))
	assert.Equal(t, ratiosMiddle, ratiosFor(1, 3))
	assert.Equal(t, ratiosLast, ratiosFor(2, 3))
}
