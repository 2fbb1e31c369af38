package normalize

import "sort"

// SynonymTable maps canonical skill names to their variant spellings.
// It is immutable after construction and safe for concurrent readers.
type SynonymTable struct {
	canonicals []string            // sorted, for deterministic scans
	variants   map[string][]string // canonical -> variants (canonical included)
	lookup     map[string]string   // variant -> canonical
}

// NewSynonymTable builds an immutable table from canonical -> variants groups.
// The canonical name itself is always registered as a variant of its group.
func NewSynonymTable(groups map[string][]string) *SynonymTable {
	t := &SynonymTable{
		canonicals: make([]string, 0, len(groups)),
		variants:   make(map[string][]string, len(groups)),
		lookup:     make(map[string]string),
	}
	for canonical, vars := range groups {
		all := make([]string, 0, len(vars)+1)
		all = append(all, canonical)
		all = append(all, vars...)
		t.canonicals = append(t.canonicals, canonical)
		t.variants[canonical] = all
		for _, v := range all {
			t.lookup[v] = canonical
		}
	}
	sort.Strings(t.canonicals)
	return t
}

// Canonical returns the canonical name for a cleaned variant spelling.
func (t *SynonymTable) Canonical(variant string) (string, bool) {
	canonical, ok := t.lookup[variant]
	return canonical, ok
}

// Canonicals returns the canonical names in sorted order.
func (t *SynonymTable) Canonicals() []string { return t.canonicals }

// Variants returns the variant spellings registered for a canonical name.
func (t *SynonymTable) Variants(canonical string) []string { return t.variants[canonical] }

// SameGroup reports whether two cleaned strings resolve to the same
// synonym group.
func (t *SynonymTable) SameGroup(a, b string) bool {
	ca, oka := t.lookup[a]
	cb, okb := t.lookup[b]
	return oka && okb && ca == cb
}

// defaultGroups is the packaged skill vocabulary: canonical name -> variant
// spellings seen in job postings and resumes.
var defaultGroups = map[string][]string{
	"javascript":       {"js", "java script", "ecmascript", "es6"},
	"typescript":       {"ts"},
	"python":           {"py", "python3"},
	"java":             {},
	"go":               {"golang", "go lang"},
	"c++":              {"cpp", "cplusplus"},
	"c#":               {"csharp", "c sharp"},
	"php":              {},
	"ruby":             {"ruby on rails language"},
	"rust":             {},
	"kotlin":           {},
	"swift":            {},
	"sql":              {"structured query language"},
	"html":             {"html5"},
	"css":              {"css3"},
	"react":            {"react.js", "reactjs", "react js"},
	"redux":            {"redux.js", "reduxjs"},
	"angular":          {"angularjs", "angular.js"},
	"vue":              {"vue.js", "vuejs"},
	"next.js":          {"nextjs", "next js"},
	"node.js":          {"node", "nodejs", "node js"},
	"express":          {"express.js", "expressjs"},
	"django":           {},
	"flask":            {},
	"spring":           {"spring boot", "springboot"},
	"graphql":          {"graph ql"},
	"rest api":         {"rest", "restful api", "restful", "rest apis"},
	"mongodb":          {"mongo", "mongo db"},
	"postgresql":       {"postgres", "psql"},
	"mysql":            {"my sql"},
	"redis":            {},
	"docker":           {},
	"kubernetes":       {"k8s", "kube"},
	"aws":              {"amazon web services"},
	"azure":            {"microsoft azure"},
	"gcp":              {"google cloud", "google cloud platform"},
	"terraform":        {},
	"jenkins":          {},
	"ci/cd":            {"cicd", "ci cd", "continuous integration"},
	"linux":            {"gnu/linux", "unix"},
	"git":              {"version control"},
	"unit testing":     {"unit tests", "unittest"},
	"selenium":         {},
	"jest":             {},
	"machine learning": {"ml"},
	"deep learning":    {"dl", "neural networks"},
	"nlp":              {"natural language processing"},
	"computer vision":  {"cv", "opencv"},
	"tensorflow":       {"tf"},
	"pytorch":          {"torch"},
	"scikit-learn":     {"sklearn", "scikit learn"},
	"pandas":           {},
	"numpy":            {},
	"data analysis":    {"data analytics"},
	"tailwind":         {"tailwindcss", "tailwind css"},
	"bootstrap":        {},
	"flutter":          {},
	"react native":     {"reactnative"},
	"firebase":         {},
	"microservices":    {"micro services", "microservice architecture"},
	"system design":    {"systems design"},
	"agile":            {"agile methodology", "scrum"},
	"communication":    {"communication skills"},
	"leadership":       {},
	"teamwork":         {"team work", "collaboration"},
	"problem solving":  {"problem-solving"},
	"oauth":            {"oauth2", "oauth 2.0"},
}

// DefaultSynonyms returns the packaged synonym table. Built once at init
// and shared read-only across all analyses.
func DefaultSynonyms() *SynonymTable { return defaultTable }

var defaultTable = NewSynonymTable(defaultGroups)
