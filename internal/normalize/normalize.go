// Package normalize canonicalizes raw skill strings to a standard vocabulary.
package normalize

import (
	"sort"
	"strings"

	"github.com/Dharshika-112/Skill-Gap-Analyzer-sub000/internal/types"
)

// minContainmentLen guards substring lookups against short variants like
// "js" or "ts" matching inside unrelated words.
const minContainmentLen = 3

// Normalizer canonicalizes raw skill strings against a synonym table.
// It is stateless apart from the immutable table and safe for concurrent use.
type Normalizer struct {
	table *SynonymTable
}

// NewNormalizer creates a Normalizer over the given synonym table.
func NewNormalizer(table *SynonymTable) *Normalizer {
	return &Normalizer{table: table}
}

// Default returns a Normalizer over the packaged synonym table.
func Default() *Normalizer {
	return NewNormalizer(DefaultSynonyms())
}

// Table exposes the underlying synonym table for collaborators that need
// synonym-group checks (the matcher's exact tier).
func (n *Normalizer) Table() *SynonymTable { return n.table }

// Normalize canonicalizes one raw skill string. Blank input yields the
// empty token, which callers must filter out.
//
// Resolution order: clean, exact variant lookup, substring containment
// against every canonical's variant list, else the cleaned string itself
// as a new (unregistered) token.
func (n *Normalizer) Normalize(raw string) types.SkillToken {
	cleaned := Clean(raw)
	if cleaned == "" {
		return ""
	}

	if canonical, ok := n.table.Canonical(cleaned); ok {
		return types.SkillToken(canonical)
	}

	// Substring containment, scanned in sorted canonical order so the
	// fallback is deterministic.
	for _, canonical := range n.table.Canonicals() {
		for _, variant := range n.table.Variants(canonical) {
			if containsEither(cleaned, variant) {
				return types.SkillToken(canonical)
			}
		}
	}

	return types.SkillToken(cleaned)
}

// NormalizeList normalizes a batch of raw skills, drops empties, dedupes by
// normalized value keeping the first occurrence, and stable-sorts by token
// text so downstream order-sensitive matching is reproducible.
func (n *Normalizer) NormalizeList(raw []string) []types.SkillToken {
	seen := make(map[types.SkillToken]bool, len(raw))
	tokens := make([]types.SkillToken, 0, len(raw))
	for _, r := range raw {
		token := n.Normalize(r)
		if token.IsEmpty() || seen[token] {
			continue
		}
		seen[token] = true
		tokens = append(tokens, token)
	}

	sort.SliceStable(tokens, func(i, j int) bool { return tokens[i] < tokens[j] })
	return tokens
}

// Clean lower-cases, strips disallowed punctuation, and collapses
// whitespace. Tech-name characters (+ # . / -) survive so "c++", "c#",
// "node.js" and "ci/cd" keep their identity; trailing dots are dropped.
func Clean(raw string) string {
	var b strings.Builder
	b.Grow(len(raw))
	for _, r := range strings.ToLower(raw) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == '+' || r == '#' || r == '.' || r == '/' || r == '-':
			b.WriteRune(r)
		default:
			b.WriteRune(' ')
		}
	}
	cleaned := strings.Join(strings.Fields(b.String()), " ")
	return strings.TrimRight(cleaned, ".")
}

// containsEither reports substring containment in either direction, with a
// length floor on the shorter string.
func containsEither(cleaned, variant string) bool {
	shorter := variant
	if len(cleaned) < len(variant) {
		shorter = cleaned
	}
	if len(shorter) < minContainmentLen {
		return false
	}
	return strings.Contains(cleaned, variant) || strings.Contains(variant, cleaned)
}
