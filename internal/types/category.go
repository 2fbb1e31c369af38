package types

// Category is a fixed professional skill category. Each category carries a
// base importance weight and per-role-type multipliers (see the taxonomy
// package); the set itself never changes at runtime.
type Category string

// The fixed category set, plus a low-weight default bucket for skills the
// taxonomy table does not know.
const (
	CategoryProgramming   Category = "programming"
	CategoryFrameworks    Category = "frameworks"
	CategoryDatabases     Category = "databases"
	CategoryTesting       Category = "testing"
	CategoryDevOps        Category = "devops_cloud"
	CategoryArchitecture  Category = "architecture"
	CategoryFrontend      Category = "frontend"
	CategoryAIML          Category = "ai_ml_core"
	CategoryNLPCV         Category = "nlp_cv"
	CategorySoftSkills    Category = "soft_skills"
	CategoryMobile        Category = "mobile"
	CategoryWebTech       Category = "web_tech"
	CategoryDataAnalytics Category = "data_analytics"
	CategorySecurity      Category = "security"
	CategoryMethodology   Category = "methodology"
	CategoryUncategorized Category = "uncategorized"
)

// AllCategories lists every category in stable order, default bucket last.
var AllCategories = []Category{
	CategoryProgramming,
	CategoryFrameworks,
	CategoryDatabases,
	CategoryTesting,
	CategoryDevOps,
	CategoryArchitecture,
	CategoryFrontend,
	CategoryAIML,
	CategoryNLPCV,
	CategorySoftSkills,
	CategoryMobile,
	CategoryWebTech,
	CategoryDataAnalytics,
	CategorySecurity,
	CategoryMethodology,
	CategoryUncategorized,
}

// CriticalCategories gate the Job-Ready verdict: each must individually
// reach the coverage floor before a candidate can be called Job-Ready.
var CriticalCategories = []Category{
	CategoryProgramming,
	CategoryFrameworks,
	CategoryDatabases,
}
