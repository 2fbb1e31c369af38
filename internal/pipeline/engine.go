// Package pipeline wires the five analysis stages behind the synchronous
// call boundary consumed by the CLI (and any future service layer).
package pipeline

import (
	"context"
	"runtime"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/Dharshika-112/Skill-Gap-Analyzer-sub000/internal/match"
	"github.com/Dharshika-112/Skill-Gap-Analyzer-sub000/internal/normalize"
	"github.com/Dharshika-112/Skill-Gap-Analyzer-sub000/internal/roadmap"
	"github.com/Dharshika-112/Skill-Gap-Analyzer-sub000/internal/scoring"
	"github.com/Dharshika-112/Skill-Gap-Analyzer-sub000/internal/taxonomy"
	"github.com/Dharshika-112/Skill-Gap-Analyzer-sub000/internal/types"
)

// Options tunes the engine. Zero values select the packaged defaults.
type Options struct {
	// WeeklyStudyHours is the study budget one roadmap week absorbs.
	WeeklyStudyHours float64
}

// Engine holds the immutable lookup tables and stage implementations.
// Build one at process start and share it across all requests; every
// analysis is a pure function over its inputs.
type Engine struct {
	normalizer *normalize.Normalizer
	scorer     *scoring.Scorer
	generator  *roadmap.Generator
}

// NewEngine builds an Engine over the packaged tables.
func NewEngine() *Engine {
	return NewEngineWith(Options{})
}

// NewEngineWith builds an Engine with explicit options.
func NewEngineWith(opts Options) *Engine {
	synonyms := normalize.DefaultSynonyms()
	prereqs := match.DefaultPrerequisites()
	tax := taxonomy.Default()
	matcher := match.NewMatcher(synonyms, prereqs)
	return &Engine{
		normalizer: normalize.NewNormalizer(synonyms),
		scorer:     scoring.NewScorer(matcher, tax),
		generator:  roadmap.NewGenerator(prereqs, tax, opts.WeeklyStudyHours),
	}
}

// AnalyzeGap scores a candidate's skills against a target role. It never
// fails for malformed-but-typed input: empty skill lists produce a
// zero-coverage result flagged InsufficientData.
func (e *Engine) AnalyzeGap(candidateSkillsRaw []string, role types.RoleSpec) types.GapScoreResult {
	candidates := e.normalizer.NormalizeList(candidateSkillsRaw)
	required := e.normalizer.NormalizeList(role.RequiredSkills)

	result := e.scorer.Score(
		candidates,
		required,
		role.RoleType,
		role.ExperienceLevel,
		e.normalizeFrequency(role.JobFrequency),
	)
	result.AnalysisID = uuid.New()
	result.GeneratedAt = time.Now().UTC()
	return result
}

// BuildRoadmap turns a gap result's missing skills into a learning plan.
// targetWeeks bounds the plan length; non-positive means uncompressed.
func (e *Engine) BuildRoadmap(gap types.GapScoreResult, candidateSkillsRaw []string, targetWeeks int) types.RoadmapPlan {
	missing := make([]types.SkillToken, 0, len(gap.MissingSkills))
	for _, ms := range gap.MissingSkills {
		missing = append(missing, ms.Skill)
	}
	candidates := e.normalizer.NormalizeList(candidateSkillsRaw)
	return e.generator.Generate(missing, candidates, targetWeeks)
}

// AnalyzeBatch analyzes one candidate against many roles concurrently.
// The worker pool is bounded by available CPU; the work is string-bound,
// not I/O-bound. Results keep the order of the input roles.
func (e *Engine) AnalyzeBatch(ctx context.Context, candidateSkillsRaw []string, roles []types.RoleSpec) ([]types.GapScoreResult, error) {
	results := make([]types.GapScoreResult, len(roles))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())
	for i, role := range roles {
		i, role := i, role
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			results[i] = e.AnalyzeGap(candidateSkillsRaw, role)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// normalizeFrequency re-keys the externally-supplied job-frequency signal
// by canonical token, keeping the highest signal when variants collide.
func (e *Engine) normalizeFrequency(raw map[string]float64) map[string]float64 {
	if len(raw) == 0 {
		return nil
	}
	out := make(map[string]float64, len(raw))
	for name, freq := range raw {
		token := e.normalizer.Normalize(name)
		if token.IsEmpty() {
			continue
		}
		if existing, ok := out[token.String()]; !ok || freq > existing {
			out[token.String()] = freq
		}
	}
	return out
}
