package match

import "strings"

// Similarity scores how alike two cleaned skill strings are, in [0,1].
// It takes the maximum of three signals: character sequence similarity,
// substring containment, and word-overlap Jaccard. Each signal covers a
// failure mode of the others (typos, prefixed names, reordered words).
func Similarity(a, b string) float64 {
	if a == "" || b == "" {
		return 0
	}
	if a == b {
		return 1
	}

	best := sequenceRatio(a, b)
	if c := containmentScore(a, b); c > best {
		best = c
	}
	if j := wordJaccard(a, b); j > best {
		best = j
	}
	return best
}

// sequenceRatio computes 2*M/T where M is the total length of recursively
// found longest matching blocks and T the combined length of both strings.
func sequenceRatio(a, b string) float64 {
	total := len(a) + len(b)
	if total == 0 {
		return 0
	}
	matched := matchingChars(a, b)
	return 2.0 * float64(matched) / float64(total)
}

// matchingChars finds the longest common substring, then recurses on the
// unmatched prefixes and suffixes around it.
func matchingChars(a, b string) int {
	if a == "" || b == "" {
		return 0
	}

	bestLen, bestA, bestB := 0, 0, 0
	for i := 0; i < len(a); i++ {
		for j := 0; j < len(b); j++ {
			k := 0
			for i+k < len(a) && j+k < len(b) && a[i+k] == b[j+k] {
				k++
			}
			if k > bestLen {
				bestLen, bestA, bestB = k, i, j
			}
		}
	}
	if bestLen == 0 {
		return 0
	}

	return bestLen +
		matchingChars(a[:bestA], b[:bestB]) +
		matchingChars(a[bestA+bestLen:], b[bestB+bestLen:])
}

// containmentScore returns len(shorter)/len(longer) when one string
// contains the other, 0 otherwise.
func containmentScore(a, b string) float64 {
	shorter, longer := a, b
	if len(a) > len(b) {
		shorter, longer = b, a
	}
	if !strings.Contains(longer, shorter) {
		return 0
	}
	return float64(len(shorter)) / float64(len(longer))
}

// wordJaccard computes |intersection| / |union| over whitespace-split words.
func wordJaccard(a, b string) float64 {
	wordsA := strings.Fields(a)
	wordsB := strings.Fields(b)
	if len(wordsA) == 0 || len(wordsB) == 0 {
		return 0
	}

	setA := make(map[string]bool, len(wordsA))
	for _, w := range wordsA {
		setA[w] = true
	}

	union := make(map[string]bool, len(wordsA)+len(wordsB))
	for w := range setA {
		union[w] = true
	}
	matched := make(map[string]bool, len(wordsB))
	inter := 0
	for _, w := range wordsB {
		union[w] = true
		if setA[w] && !matched[w] {
			matched[w] = true
			inter++
		}
	}

	return float64(inter) / float64(len(union))
}
