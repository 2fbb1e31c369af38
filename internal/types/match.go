package types

import (
	"encoding/json"
	"fmt"
)

// MatchKind identifies which matching strategy produced a SkillMatch.
type MatchKind int

const (
	// MatchNone means no strategy matched the candidate skill.
	MatchNone MatchKind = iota
	// MatchExact means the candidate equals a required token or shares its synonym group.
	MatchExact
	// MatchHierarchical means an advanced candidate skill subsumes the required one.
	MatchHierarchical
	// MatchFuzzy means string similarity cleared the fuzzy threshold.
	MatchFuzzy
)

// String returns the wire name of the match kind.
func (k MatchKind) String() string {
	switch k {
	case MatchExact:
		return "exact"
	case MatchHierarchical:
		return "hierarchical"
	case MatchFuzzy:
		return "fuzzy"
	case MatchNone:
		return "none"
	default:
		return "none"
	}
}

// MarshalJSON encodes the match kind as its string name.
func (k MatchKind) MarshalJSON() ([]byte, error) {
	return json.Marshal(k.String())
}

// UnmarshalJSON decodes a match kind from its string name.
func (k *MatchKind) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	switch s {
	case "exact":
		*k = MatchExact
	case "hierarchical":
		*k = MatchHierarchical
	case "fuzzy":
		*k = MatchFuzzy
	case "none":
		*k = MatchNone
	default:
		return fmt.Errorf("unknown match kind %q", s)
	}
	return nil
}

// SkillMatch is the result of matching one candidate skill against the
// required set. Required is empty when Kind is MatchNone.
type SkillMatch struct {
	Candidate  SkillToken `json:"candidate"`
	Required   SkillToken `json:"required,omitempty"`
	Kind       MatchKind  `json:"kind"`
	Confidence float64    `json:"confidence"`
	Reason     string     `json:"reason,omitempty"`
}

// MatchReport aggregates all SkillMatch results for one
// (candidate-skills, required-skills) pair.
type MatchReport struct {
	Matches           []SkillMatch   `json:"matches"`
	MatchedRequired   []SkillToken   `json:"matched_required"`
	UnmatchedRequired []SkillToken   `json:"unmatched_required"`
	KindCounts        map[string]int `json:"kind_counts"`
	MatchPercentage   float64        `json:"match_percentage"`
}
