package car

import (
	"sort"
	"strings"
)

// Match applies the text and price filters. Annee is pushed down to the
// repository.
func (q Query) Match(c Car) bool {
	if q.Marque != "" && !containsFold(c.Marque, q.Marque) {
		return false
	}
	if q.MinPrice != nil && c.Prix < *q.MinPrice {
		return false
	}
	if q.MaxPrice != nil && c.Prix > *q.MaxPrice {
		return false
	}
	if q.Search != "" && !containsFold(c.Marque, q.Search) && !containsFold(c.Modele, q.Search) {
		return false
	}
	return true
}

// Apply filters cars and orders them. Newest first unless Sort says otherwise.
func (q Query) Apply(cars []Car) []Car {
	out := make([]Car, 0, len(cars))
	for _, c := range cars {
		if q.Match(c) {
			out = append(out, c)
		}
	}

	var less func(a, b Car) bool
	switch q.Sort {
	case SortPriceAsc:
		less = func(a, b Car) bool { return a.Prix < b.Prix }
	case SortPriceDesc:
		less = func(a, b Car) bool { return a.Prix > b.Prix }
	case SortYearAsc:
		less = func(a, b Car) bool { return a.Annee < b.Annee }
	case SortYearDesc:
		less = func(a, b Car) bool { return a.Annee > b.Annee }
	default:
		less = func(a, b Car) bool { return a.CreatedAt.After(b.CreatedAt) }
	}
	sort.SliceStable(out, func(i, j int) bool { return less(out[i], out[j]) })

	return out
}

func containsFold(s, sub string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(sub))
}
