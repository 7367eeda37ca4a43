package catalog

import "strings"

/*
	Facet filter
	------------
	The storefront fetches the full curtain list and narrows it in memory.
	These predicates are pure; the handler composes them and paginates the
	result afterwards.
*/

// PriceWindow is the user-selected price window. Min is 0 in practice.
type PriceWindow struct {
	Min float64
	Max float64
}

// MatchesPrice decides whether a curtain's price qualifies for the selected
// window. Each tag has its own rule:
//
//   - fixed:    value inside the window
//   - range:    the curtain's [min,max] interval overlaps the window
//     (overlap, not containment)
//   - discount: the discounted price decides; the old price is ignored
//   - contact:  always qualifies, the price is negotiated
//
// An unknown or missing tag never qualifies.
func MatchesPrice(p Price, r PriceWindow) bool {
	switch p.Type {
	case PriceFixed:
		return p.Amount >= r.Min && p.Amount <= r.Max
	case PriceRange:
		return p.Max >= r.Min && p.Min <= r.Max
	case PriceDiscount:
		return p.New >= r.Min && p.New <= r.Max
	case PriceContact:
		return true
	}
	return false
}

// MatchesCategory matches when no category is selected, or when the
// curtain's normalized category id equals the selection.
func MatchesCategory(cu Curtain, categoryID string) bool {
	if categoryID == "" {
		return true
	}
	return cu.CategoryRef() == categoryID
}

// MatchesColor matches when no colors are selected, or when the curtain's
// color name equals any selected name, case-insensitively.
func MatchesColor(cu Curtain, names []string) bool {
	if len(names) == 0 {
		return true
	}
	own := cu.ColorName()
	for _, n := range names {
		if strings.EqualFold(own, n) {
			return true
		}
	}
	return false
}

// MatchesSearch is a case-insensitive substring match on name and
// description. An empty query matches everything.
func MatchesSearch(cu Curtain, query string) bool {
	if query == "" {
		return true
	}
	q := strings.ToLower(query)
	return strings.Contains(strings.ToLower(cu.Name), q) ||
		strings.Contains(strings.ToLower(cu.Description), q)
}

// FilterOptions carries the selected facets. Nil Price means no price
// filter at all (distinct from a zero window).
type FilterOptions struct {
	CategoryID string
	Colors     []string
	Price      *PriceWindow
	Search     string
}

// Filter returns the curtains matching every selected facet, preserving
// input order.
func Filter(curtains []Curtain, opt FilterOptions) []Curtain {
	out := make([]Curtain, 0, len(curtains))
	for _, cu := range curtains {
		if !MatchesCategory(cu, opt.CategoryID) {
			continue
		}
		if !MatchesColor(cu, opt.Colors) {
			continue
		}
		if opt.Price != nil && !MatchesPrice(cu.Price, *opt.Price) {
			continue
		}
		if !MatchesSearch(cu, opt.Search) {
			continue
		}
		out = append(out, cu)
	}
	return out
}
