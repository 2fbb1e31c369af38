package types

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Readiness summarizes how severe the skill gap is for the target role.
type Readiness int

const (
	// ReadinessBeginner means the candidate is far from the role requirements.
	ReadinessBeginner Readiness = iota
	// ReadinessInterviewReady means the candidate can start interviewing while closing gaps.
	ReadinessInterviewReady
	// ReadinessJobReady means coverage clears the role threshold and every critical category floor.
	ReadinessJobReady
)

// String returns the display name of the readiness verdict.
func (r Readiness) String() string {
	switch r {
	case ReadinessJobReady:
		return "Job-Ready"
	case ReadinessInterviewReady:
		return "Interview-Ready"
	case ReadinessBeginner:
		return "Beginner"
	default:
		return "Beginner"
	}
}

// MarshalJSON encodes the verdict as its display name.
func (r Readiness) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.String())
}

// UnmarshalJSON decodes a verdict from its display name.
func (r *Readiness) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	switch s {
	case "Job-Ready":
		*r = ReadinessJobReady
	case "Interview-Ready":
		*r = ReadinessInterviewReady
	case "Beginner":
		*r = ReadinessBeginner
	default:
		return fmt.Errorf("unknown readiness verdict %q", s)
	}
	return nil
}

// Difficulty estimates how hard a skill is to pick up.
type Difficulty int

const (
	// DifficultyEasy covers skills typically learned in days to a couple of weeks.
	DifficultyEasy Difficulty = iota
	// DifficultyMedium covers skills needing sustained practice over weeks.
	DifficultyMedium
	// DifficultyHard covers skills needing months of study and project work.
	DifficultyHard
)

// String returns the display name of the difficulty tier.
func (d Difficulty) String() string {
	switch d {
	case DifficultyEasy:
		return "Easy"
	case DifficultyMedium:
		return "Medium"
	case DifficultyHard:
		return "Hard"
	default:
		return "Medium"
	}
}

// MarshalJSON encodes the difficulty as its display name.
func (d Difficulty) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

// UnmarshalJSON decodes a difficulty from its display name.
func (d *Difficulty) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	switch s {
	case "Easy":
		*d = DifficultyEasy
	case "Medium":
		*d = DifficultyMedium
	case "Hard":
		*d = DifficultyHard
	default:
		return fmt.Errorf("unknown difficulty %q", s)
	}
	return nil
}

// CategoryCoverage is the weighted coverage of one category's required skills.
type CategoryCoverage struct {
	Category      Category `json:"category"`
	Coverage      float64  `json:"coverage"`
	RequiredCount int      `json:"required_count"`
	MatchedCount  int      `json:"matched_count"`
}

// MissingSkill is a required skill the candidate does not cover, annotated
// with everything the roadmap generator and UI need to prioritize it.
type MissingSkill struct {
	Skill        SkillToken `json:"skill"`
	Category     Category   `json:"category"`
	Weight       float64    `json:"weight"`
	Difficulty   Difficulty `json:"difficulty"`
	LearningTime string     `json:"learning_time"`
}

// GapScoreResult is the outcome of one gap analysis. It is a plain
// serializable value; nothing mutates it after Score returns.
type GapScoreResult struct {
	AnalysisID       uuid.UUID          `json:"analysis_id"`
	RoleType         string             `json:"role_type"`
	ExperienceLevel  string             `json:"experience_level"`
	OverallScore     float64            `json:"overall_score"`
	Readiness        Readiness          `json:"readiness"`
	Report           MatchReport        `json:"match_report"`
	Categories       []CategoryCoverage `json:"categories"`
	MissingSkills    []MissingSkill     `json:"missing_skills"`
	InsufficientData bool               `json:"insufficient_data"`
	GeneratedAt      time.Time          `json:"generated_at"`
}
