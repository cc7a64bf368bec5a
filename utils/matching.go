package utils

import "strings"

// NormalizeForMatch lowercases and collapses whitespace so that OCR
// output and operator-entered profile values compare on equal footing.
func NormalizeForMatch(s string) string {
	return strings.Join(strings.Fields(strings.ToLower(s)), " ")
}

// Similarity scores how closely two free-form values agree, in [0,1].
// Exact match (after normalization) is 1.0; otherwise the better of a
// bag-of-words overlap ratio and a Levenshtein ratio is used, so both
// reordered words ("SARL TECHNOVISION") and small OCR misreads
// ("TECHN0VISION") score well.
func Similarity(a, b string) float64 {
	na := NormalizeForMatch(a)
	nb := NormalizeForMatch(b)
	if na == "" || nb == "" {
		return 0
	}
	if na == nb {
		return 1
	}

	wordScore := wordOverlap(na, nb)
	editScore := levenshteinRatio(na, nb)
	if wordScore > editScore {
		return wordScore
	}
	return editScore
}

func wordOverlap(a, b string) float64 {
	as := map[string]bool{}
	for _, w := range strings.Fields(a) {
		as[w] = true
	}
	bs := map[string]bool{}
	for _, w := range strings.Fields(b) {
		bs[w] = true
	}
	inter := 0
	for w := range as {
		if bs[w] {
			inter++
		}
	}
	longest := len(as)
	if len(bs) > longest {
		longest = len(bs)
	}
	if longest == 0 {
		return 0
	}
	return float64(inter) / float64(longest)
}

func levenshteinRatio(a, b string) float64 {
	maxLen := len([]rune(a))
	if n := len([]rune(b)); n > maxLen {
		maxLen = n
	}
	if maxLen == 0 {
		return 1
	}
	return 1 - float64(levenshteinDistance(a, b))/float64(maxLen)
}

// levenshteinDistance calculates the edit distance between two strings.
func levenshteinDistance(s1, s2 string) int {
	r1 := []rune(s1)
	r2 := []rune(s2)
	n, m := len(r1), len(r2)

	if n == 0 {
		return m
	}
	if m == 0 {
		return n
	}

	matrix := make([][]int, n+1)
	for i := range matrix {
		matrix[i] = make([]int, m+1)
	}

	for i := 0; i <= n; i++ {
		matrix[i][0] = i
	}
	for j := 0; j <= m; j++ {
		matrix[0][j] = j
	}

	for i := 1; i <= n; i++ {
		for j := 1; j <= m; j++ {
			cost := 0
			if r1[i-1] != r2[j-1] {
				cost = 1
			}
			matrix[i][j] = min(
				matrix[i-1][j]+1,
				matrix[i][j-1]+1,
				matrix[i-1][j-1]+cost,
			)
		}
	}

	return matrix[n][m]
}
