package wilkinson

import (
	"errors"
	"sort"

	"github.com/basf/rormula/matrix"
)

// errEmptyCategorical is returned by CatToDummy when its input is empty.
var errEmptyCategorical = errors.New("wilkinson: empty categorical column")

// UniqueCats returns the sorted, deduplicated distinct values of c.
func UniqueCats(c []string) []string {
	if len(c) == 0 {
		return nil
	}
	cp := append([]string(nil), c...)
	sort.Strings(cp)
	out := cp[:0]
	first := true
	var prev string
	for _, s := range cp {
		if first || s != prev {
			out = append(out, s)
			prev = s
			first = false
		}
	}
	return out
}

// CatToDummy implements the §4.5 "drop-last" one-hot encoding: the unique
// values of c are sorted, the lexicographically last one is dropped (so the
// intercept column plus the dummies remain full rank), and each row gets a
// 1.0 in the column of its own category unless its category is the dropped
// one, in which case the row is all zero. An empty c is EmptyCategorical.
func CatToDummy(c []string) (*matrix.Dense, error) {
	unique := UniqueCats(c)
	if len(unique) == 0 {
		return nil, errEmptyCategorical
	}
	removed := unique[len(unique)-1]
	unique = unique[:len(unique)-1]
	pos := make(map[string]int, len(unique))
	for i, u := range unique {
		pos[u] = i
	}
	out := matrix.Zeros(len(c), len(unique), matrix.ColumnMajor)
	for r, s := range c {
		if s == removed {
			continue
		}
		out.Set(r, pos[s], 1.0)
	}
	return out, nil
}

// droppedLast returns the sorted unique categories of c without the last
// (sort-max) one, together with that removed one; ok is false when c is
// empty. names.go uses the kept list to build the matching column-name list
// without re-running the full encoding.
func droppedLast(c []string) (unique []string, removed string, ok bool) {
	u := UniqueCats(c)
	if len(u) == 0 {
		return nil, "", false
	}
	return u[:len(u)-1], u[len(u)-1], true
}
