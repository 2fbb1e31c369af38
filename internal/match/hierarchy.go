package match

// PrerequisiteGraph maps an advanced skill to the basic skills it subsumes.
// Read-only after construction; shared across all analyses.
type PrerequisiteGraph struct {
	prereqs map[string][]string
}

// NewPrerequisiteGraph builds an immutable graph from advanced -> prereqs.
func NewPrerequisiteGraph(prereqs map[string][]string) *PrerequisiteGraph {
	return &PrerequisiteGraph{prereqs: prereqs}
}

// Prerequisites returns the prerequisite skills of an advanced skill, or
// nil when the skill is not registered.
func (g *PrerequisiteGraph) Prerequisites(skill string) []string {
	return g.prereqs[skill]
}

// defaultPrereqs is the packaged advanced-skill -> prerequisites table.
// Keys and values are canonical tokens from the default synonym table.
var defaultPrereqs = map[string][]string{
	"typescript":       {"javascript"},
	"react":            {"javascript", "html", "css"},
	"redux":            {"react"},
	"next.js":          {"react"},
	"angular":          {"typescript", "html", "css"},
	"vue":              {"javascript", "html", "css"},
	"react native":     {"react"},
	"node.js":          {"javascript"},
	"express":          {"node.js"},
	"django":           {"python"},
	"flask":            {"python"},
	"spring":           {"java"},
	"kubernetes":       {"docker"},
	"terraform":        {"aws"},
	"ci/cd":            {"git"},
	"postgresql":       {"sql"},
	"mysql":            {"sql"},
	"mongodb":          {},
	"machine learning": {"python", "numpy"},
	"deep learning":    {"machine learning"},
	"nlp":              {"machine learning"},
	"computer vision":  {"deep learning"},
	"tensorflow":       {"python", "machine learning"},
	"pytorch":          {"python", "machine learning"},
	"scikit-learn":     {"python", "machine learning"},
	"pandas":           {"python"},
	"numpy":            {"python"},
	"data analysis":    {"pandas"},
	"microservices":    {"rest api", "docker"},
	"system design":    {"microservices"},
	"graphql":          {"rest api"},
	"tailwind":         {"css"},
	"bootstrap":        {"css"},
	"flutter":          {},
	"selenium":         {"unit testing"},
	"jest":             {"javascript", "unit testing"},
}

// DefaultPrerequisites returns the packaged prerequisite graph.
func DefaultPrerequisites() *PrerequisiteGraph { return defaultGraph }

var defaultGraph = NewPrerequisiteGraph(defaultPrereqs)
