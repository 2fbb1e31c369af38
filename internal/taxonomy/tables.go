package taxonomy

import "github.com/Dharshika-112/Skill-Gap-Analyzer-sub000/internal/types"

// baseWeights carries the importance weight (0-1) of each category before
// role-type adjustment. The default bucket is deliberately cheap so unknown
// skills never dominate a score.
var baseWeights = map[types.Category]float64{
	types.CategoryProgramming:   1.0,
	types.CategoryFrameworks:    0.9,
	types.CategoryDatabases:     0.85,
	types.CategoryTesting:       0.7,
	types.CategoryDevOps:        0.8,
	types.CategoryArchitecture:  0.75,
	types.CategoryFrontend:      0.8,
	types.CategoryAIML:          0.85,
	types.CategoryNLPCV:         0.8,
	types.CategorySoftSkills:    0.5,
	types.CategoryMobile:        0.75,
	types.CategoryWebTech:       0.7,
	types.CategoryDataAnalytics: 0.75,
	types.CategorySecurity:      0.7,
	types.CategoryMethodology:   0.55,
	types.CategoryUncategorized: 0.3,
}

// roleMultipliers boosts or dampens category weights per role type.
// Categories absent for a role type use multiplier 1.0; role types absent
// here behave as "general".
var roleMultipliers = map[string]map[types.Category]float64{
	"frontend": {
		types.CategoryFrontend:   1.8,
		types.CategoryWebTech:    1.5,
		types.CategoryFrameworks: 1.3,
		types.CategoryAIML:       0.5,
		types.CategoryNLPCV:      0.4,
		types.CategoryDevOps:     0.7,
	},
	"backend": {
		types.CategoryDatabases:    1.5,
		types.CategoryArchitecture: 1.4,
		types.CategoryProgramming:  1.2,
		types.CategoryDevOps:       1.2,
		types.CategoryFrontend:     0.6,
		types.CategoryMobile:       0.4,
	},
	"mobile": {
		types.CategoryMobile:     1.8,
		types.CategoryFrameworks: 1.2,
		types.CategoryFrontend:   1.1,
		types.CategoryAIML:       0.5,
	},
	"devops": {
		types.CategoryDevOps:       1.8,
		types.CategorySecurity:     1.3,
		types.CategoryArchitecture: 1.2,
		types.CategoryFrontend:     0.4,
		types.CategoryMobile:       0.3,
	},
	"data": {
		types.CategoryDataAnalytics: 1.8,
		types.CategoryDatabases:     1.4,
		types.CategoryAIML:          1.3,
		types.CategoryFrontend:      0.4,
		types.CategoryMobile:        0.3,
	},
	"ai": {
		types.CategoryAIML:          1.8,
		types.CategoryNLPCV:         1.6,
		types.CategoryDataAnalytics: 1.3,
		types.CategoryFrontend:      0.4,
		types.CategoryMobile:        0.3,
	},
	"fullstack": {
		types.CategoryFrontend:   1.3,
		types.CategoryFrameworks: 1.3,
		types.CategoryDatabases:  1.2,
		types.CategoryWebTech:    1.2,
	},
}

// categoryDifficulty estimates how hard skills in a category are to learn.
var categoryDifficulty = map[types.Category]types.Difficulty{
	types.CategoryProgramming:   types.DifficultyMedium,
	types.CategoryFrameworks:    types.DifficultyMedium,
	types.CategoryDatabases:     types.DifficultyEasy,
	types.CategoryTesting:       types.DifficultyEasy,
	types.CategoryDevOps:        types.DifficultyMedium,
	types.CategoryArchitecture:  types.DifficultyHard,
	types.CategoryFrontend:      types.DifficultyMedium,
	types.CategoryAIML:          types.DifficultyHard,
	types.CategoryNLPCV:         types.DifficultyHard,
	types.CategorySoftSkills:    types.DifficultyEasy,
	types.CategoryMobile:        types.DifficultyMedium,
	types.CategoryWebTech:       types.DifficultyEasy,
	types.CategoryDataAnalytics: types.DifficultyMedium,
	types.CategorySecurity:      types.DifficultyHard,
	types.CategoryMethodology:   types.DifficultyEasy,
	types.CategoryUncategorized: types.DifficultyMedium,
}

// skillCategories maps canonical skill tokens to their categories, primary
// category first. Skills absent here fall into the default bucket.
var skillCategories = map[string][]types.Category{
	"javascript": {types.CategoryProgramming, types.CategoryFrontend},
	"typescript": {types.CategoryProgramming, types.CategoryFrontend},
	"python":     {types.CategoryProgramming},
	"java":       {types.CategoryProgramming},
	"go":         {types.CategoryProgramming},
	"c++":        {types.CategoryProgramming},
	"c#":         {types.CategoryProgramming},
	"php":        {types.CategoryProgramming},
	"ruby":       {types.CategoryProgramming},
	"rust":       {types.CategoryProgramming},
	"kotlin":     {types.CategoryProgramming, types.CategoryMobile},
	"swift":      {types.CategoryProgramming, types.CategoryMobile},
	"sql":        {types.CategoryDatabases},

	"html": {types.CategoryWebTech, types.CategoryFrontend},
	"css":  {types.CategoryWebTech, types.CategoryFrontend},

	"react":        {types.CategoryFrameworks, types.CategoryFrontend},
	"redux":        {types.CategoryFrameworks, types.CategoryFrontend},
	"angular":      {types.CategoryFrameworks, types.CategoryFrontend},
	"vue":          {types.CategoryFrameworks, types.CategoryFrontend},
	"next.js":      {types.CategoryFrameworks, types.CategoryFrontend},
	"node.js":      {types.CategoryFrameworks, types.CategoryWebTech},
	"express":      {types.CategoryFrameworks, types.CategoryWebTech},
	"django":       {types.CategoryFrameworks},
	"flask":        {types.CategoryFrameworks},
	"spring":       {types.CategoryFrameworks},
	"graphql":      {types.CategoryWebTech},
	"rest api":     {types.CategoryWebTech, types.CategoryArchitecture},
	"tailwind":     {types.CategoryFrontend, types.CategoryWebTech},
	"bootstrap":    {types.CategoryFrontend, types.CategoryWebTech},
	"flutter":      {types.CategoryMobile, types.CategoryFrameworks},
	"react native": {types.CategoryMobile, types.CategoryFrameworks},
	"firebase":     {types.CategoryDatabases, types.CategoryMobile},

	"mongodb":    {types.CategoryDatabases},
	"postgresql": {types.CategoryDatabases},
	"mysql":      {types.CategoryDatabases},
	"redis":      {types.CategoryDatabases},

	"docker":     {types.CategoryDevOps},
	"kubernetes": {types.CategoryDevOps},
	"aws":        {types.CategoryDevOps},
	"azure":      {types.CategoryDevOps},
	"gcp":        {types.CategoryDevOps},
	"terraform":  {types.CategoryDevOps},
	"jenkins":    {types.CategoryDevOps, types.CategoryTesting},
	"ci/cd":      {types.CategoryDevOps},
	"linux":      {types.CategoryDevOps},
	"git":        {types.CategoryMethodology, types.CategoryDevOps},

	"unit testing": {types.CategoryTesting},
	"selenium":     {types.CategoryTesting},
	"jest":         {types.CategoryTesting, types.CategoryFrontend},

	"machine learning": {types.CategoryAIML},
	"deep learning":    {types.CategoryAIML},
	"nlp":              {types.CategoryNLPCV, types.CategoryAIML},
	"computer vision":  {types.CategoryNLPCV, types.CategoryAIML},
	"tensorflow":       {types.CategoryAIML, types.CategoryFrameworks},
	"pytorch":          {types.CategoryAIML, types.CategoryFrameworks},
	"scikit-learn":     {types.CategoryAIML, types.CategoryDataAnalytics},
	"pandas":           {types.CategoryDataAnalytics},
	"numpy":            {types.CategoryDataAnalytics},
	"data analysis":    {types.CategoryDataAnalytics},

	"microservices": {types.CategoryArchitecture},
	"system design": {types.CategoryArchitecture},
	"oauth":         {types.CategorySecurity, types.CategoryWebTech},

	"agile":           {types.CategoryMethodology},
	"communication":   {types.CategorySoftSkills},
	"leadership":      {types.CategorySoftSkills},
	"teamwork":        {types.CategorySoftSkills},
	"problem solving": {types.CategorySoftSkills},
}
