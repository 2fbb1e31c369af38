// Package schemas embeds the JSON Schemas for the analyzer's serialized
// artifacts so validation never depends on the working directory.
package schemas

import _ "embed"

// GapResult is the JSON Schema for a serialized GapScoreResult.
//
//go:embed gap_result.schema.json
var GapResult string

// RoadmapPlan is the JSON Schema for a serialized RoadmapPlan.
//
//go:embed roadmap_plan.schema.json
var RoadmapPlan string
