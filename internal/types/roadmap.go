package types

import "time"

// ActivitySplit divides one week's study hours across activity types.
// The four fields sum to the week's total hours.
type ActivitySplit struct {
	Theory   float64 `json:"theory"`
	Practice float64 `json:"practice"`
	Project  float64 `json:"project"`
	Review   float64 `json:"review"`
}

// WeekPlan is one week of the learning roadmap. After compression a week
// may carry several skills and outcomes.
type WeekPlan struct {
	Week     int           `json:"week"`
	Skills   []SkillToken  `json:"skills"`
	Hours    float64       `json:"hours"`
	Split    ActivitySplit `json:"split"`
	Outcomes []string      `json:"outcomes"`
}

// MilestoneKind distinguishes the milestone flavors on a roadmap.
type MilestoneKind string

// Milestone kinds.
const (
	MilestoneSkillComplete MilestoneKind = "skill_complete"
	MilestoneProgress      MilestoneKind = "progress"
	MilestoneFinal         MilestoneKind = "final"
)

// Milestone marks a checkpoint on the roadmap timeline.
type Milestone struct {
	Week        int           `json:"week"`
	Kind        MilestoneKind `json:"kind"`
	Description string        `json:"description"`
}

// RoadmapPlan is a dependency-ordered, time-boxed learning plan.
// Built once from a GapScoreResult's missing skills; immutable afterward.
type RoadmapPlan struct {
	Weeks        []WeekPlan  `json:"weeks"`
	Milestones   []Milestone `json:"milestones"`
	TotalHours   float64     `json:"total_hours"`
	ProjectedEnd time.Time   `json:"projected_end"`
	Compressed   bool        `json:"compressed"`
}
