// Package search implements medicine lookup: substring filtering, stable
// name ordering for deterministic listings, LCS-based fuzzy matching, and
// distance ranking of in-stock results.
package search

import (
	"errors"
	"strings"

	"github.com/emsupply/emsupply/internal/domain/pharmacy"
)

// ErrEmptyQuery rejects fuzzy lookups with a blank query. Matching "every
// candidate trivially" on an empty query is a configuration error, not a
// search.
var ErrEmptyQuery = errors.New("query must not be empty")

// FilterByNameSubstring returns the medicines whose name contains term,
// case-insensitively. A blank term matches everything. Relative input order
// is preserved.
func FilterByNameSubstring(inventory []pharmacy.Medicine, term string) []pharmacy.Medicine {
	term = strings.ToLower(strings.TrimSpace(term))

	out := make([]pharmacy.Medicine, 0, len(inventory))
	for _, m := range inventory {
		if term == "" || strings.Contains(strings.ToLower(m.Name), term) {
			out = append(out, m)
		}
	}
	return out
}

// StableSortByName returns a new slice sorted ascending by name with a
// stable merge, so equal names keep their relative input order and repeated
// listings render identically.
func StableSortByName(meds []pharmacy.Medicine) []pharmacy.Medicine {
	out := make([]pharmacy.Medicine, len(meds))
	copy(out, meds)
	mergeSortByName(out)
	return out
}

func mergeSortByName(meds []pharmacy.Medicine) {
	if len(meds) < 2 {
		return
	}
	mid := len(meds) / 2
	left := make([]pharmacy.Medicine, mid)
	right := make([]pharmacy.Medicine, len(meds)-mid)
	copy(left, meds[:mid])
	copy(right, meds[mid:])

	mergeSortByName(left)
	mergeSortByName(right)

	i, j, k := 0, 0, 0
	for i < len(left) && j < len(right) {
		// <= keeps the left (earlier) element on ties: stability.
		if left[i].Name <= right[j].Name {
			meds[k] = left[i]
			i++
		} else {
			meds[k] = right[j]
			j++
		}
		k++
	}
	for i < len(left) {
		meds[k] = left[i]
		i++
		k++
	}
	for j < len(right) {
		meds[k] = right[j]
		j++
		k++
	}
}

// FuzzyBestMatch finds the candidate whose name best matches query by
// longest common subsequence. Only candidates for which query is a full
// subsequence of the name qualify (LCS length == query length); the first
// qualifying candidate in input order wins ties. Returns the index into
// meds, or pharmacy.ErrMedicineNotFound when nothing qualifies.
func FuzzyBestMatch(meds []pharmacy.Medicine, query string) (int, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return -1, ErrEmptyQuery
	}

	best := -1
	bestLen := 0
	for i, m := range meds {
		l := lcsLength(m.Name, query)
		if l == len(query) && l > bestLen {
			best = i
			bestLen = l
		}
	}
	if best < 0 || bestLen == 0 {
		return -1, pharmacy.ErrMedicineNotFound
	}
	return best, nil
}

// lcsLength is the classic O(len(a)*len(b)) dynamic program.
func lcsLength(a, b string) int {
	dp := make([][]int, len(a)+1)
	for i := range dp {
		dp[i] = make([]int, len(b)+1)
	}
	for i := 1; i <= len(a); i++ {
		for j := 1; j <= len(b); j++ {
			if a[i-1] == b[j-1] {
				dp[i][j] = dp[i-1][j-1] + 1
			} else if dp[i-1][j] >= dp[i][j-1] {
				dp[i][j] = dp[i-1][j]
			} else {
				dp[i][j] = dp[i][j-1]
			}
		}
	}
	return dp[len(a)][len(b)]
}
