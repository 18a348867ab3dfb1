package search

import (
	"strings"
	"unicode/utf8"

	"go-talent-backend/internal/domain"
)

// Matcher thresholds. These define observable ranking behavior.
const (
	ExactMatchPoints      = 100
	FuzzyMatchPoints      = 70
	ContainmentRatio      = 0.70
	EditSimilarityMinimum = 0.75
)

// emptyMatch is returned for empty text or keyword input
func emptyMatch() domain.MatchResult {
	return domain.MatchResult{Score: 0, Matches: []domain.Match{}}
}

// MatchText scores text against keywords.
//
// A keyword contained verbatim in the normalized text is an exact match worth
// ExactMatchPoints. Otherwise every token of the keyword is compared against the
// text tokens and the first approximate hit per keyword token is recorded as a
// fuzzy match worth FuzzyMatchPoints. The score is the point sum divided by the
// number of keywords, capped at 100.
func MatchText(text string, keywords []string) domain.MatchResult {
	if text == "" || len(keywords) == 0 {
		return emptyMatch()
	}

	normalized := normalize(text)
	if normalized == "" {
		return emptyMatch()
	}
	textTokens := strings.Fields(normalized)

	matches := []domain.Match{}
	total := 0
	for _, keyword := range keywords {
		kw := normalize(keyword)
		if kw == "" {
			continue
		}

		if strings.Contains(normalized, kw) {
			matches = append(matches, domain.Match{Keyword: keyword, Type: domain.MatchExact, Score: ExactMatchPoints})
			total += ExactMatchPoints
			continue
		}

		for _, kwToken := range strings.Fields(kw) {
			if fuzzyTokenHit(kwToken, textTokens) {
				matches = append(matches, domain.Match{Keyword: keyword, Type: domain.MatchFuzzy, Score: FuzzyMatchPoints})
				total += FuzzyMatchPoints
			}
		}
	}

	score := float64(total) / float64(len(keywords))
	if score > 100 {
		score = 100
	}
	return domain.MatchResult{Score: score, Matches: matches}
}

// fuzzyTokenHit reports whether any text token approximately matches the keyword token
func fuzzyTokenHit(kwToken string, textTokens []string) bool {
	for _, token := range textTokens {
		if token == kwToken {
			return true
		}
		if strings.Contains(token, kwToken) || strings.Contains(kwToken, token) {
			if lengthRatio(token, kwToken) >= ContainmentRatio {
				return true
			}
		}
		if Similarity(token, kwToken) >= EditSimilarityMinimum {
			return true
		}
	}
	return false
}

// normalize lowercases and trims
func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// lengthRatio is the shorter rune length over the longer one
func lengthRatio(a, b string) float64 {
	la, lb := utf8.RuneCountInString(a), utf8.RuneCountInString(b)
	if la == 0 || lb == 0 {
		return 0
	}
	if la > lb {
		la, lb = lb, la
	}
	return float64(la) / float64(lb)
}

// Similarity is 1 - Levenshtein(a, b) / max(len(a), len(b)), in runes.
// Two empty strings are identical.
func Similarity(a, b string) float64 {
	longest := utf8.RuneCountInString(a)
	if lb := utf8.RuneCountInString(b); lb > longest {
		longest = lb
	}
	if longest == 0 {
		return 1
	}
	return 1 - float64(Levenshtein(a, b))/float64(longest)
}

// Levenshtein returns the edit distance between a and b (insert, delete and
// substitute each cost 1), computed over runes with two DP rows.
func Levenshtein(a, b string) int {
	ra, rb := []rune(a), []rune(b)
	if len(ra) == 0 {
		return len(rb)
	}
	if len(rb) == 0 {
		return len(ra)
	}

	prev := make([]int, len(rb)+1)
	curr := make([]int, len(rb)+1)
	for j := range prev {
		prev[j] = j
	}

	for i := 1; i <= len(ra); i++ {
		curr[0] = i
		for j := 1; j <= len(rb); j++ {
			cost := 1
			if ra[i-1] == rb[j-1] {
				cost = 0
			}
			curr[j] = min(prev[j]+1, curr[j-1]+1, prev[j-1]+cost)
		}
		prev, curr = curr, prev
	}
	return prev[len(rb)]
}
