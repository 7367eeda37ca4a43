package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMatchesPrice(t *testing.T) {
	window := PriceWindow{Min: 0, Max: 1000000}

	tests := []struct {
		name  string
		price Price
		want  bool
	}{
		{"fixed inside window", Price{Type: PriceFixed, Amount: 500000}, true},
		{"fixed on upper bound", Price{Type: PriceFixed, Amount: 1000000}, true},
		{"fixed above window", Price{Type: PriceFixed, Amount: 1000001}, false},
		{"fixed on lower bound", Price{Type: PriceFixed, Amount: 0}, true},

		{"range fully inside", Price{Type: PriceRange, Min: 200000, Max: 800000}, true},
		{"range overlapping upper bound", Price{Type: PriceRange, Min: 800000, Max: 1200000}, true},
		{"range touching upper bound exactly", Price{Type: PriceRange, Min: 1000000, Max: 2000000}, true},
		{"range touching lower bound exactly", Price{Type: PriceRange, Min: -500000, Max: 0}, true},
		{"range entirely above", Price{Type: PriceRange, Min: 1000001, Max: 2000000}, false},

		{"discount new inside, old outside", Price{Type: PriceDiscount, Old: 2000000, New: 900000}, true},
		{"discount new outside, old ignored", Price{Type: PriceDiscount, Old: 500000, New: 1500000}, false},

		{"contact always qualifies", Price{Type: PriceContact}, true},

		{"unknown tag fails closed", Price{Type: "subscription", Amount: 500000}, false},
		{"missing tag fails closed", Price{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, MatchesPrice(tt.price, window))
		})
	}
}

func TestMatchesPriceContactIgnoresWindow(t *testing.T) {
	p := Price{Type: PriceContact}
	assert.True(t, MatchesPrice(p, PriceWindow{Min: 0, Max: 0}))
	assert.True(t, MatchesPrice(p, PriceWindow{Min: 5000000, Max: 1}))
}

func TestMatchesCategory(t *testing.T) {
	id := "2b6d0a52-7c1e-4f5a-9f3d-0c8f1a2b3c4d"

	bare := Curtain{CategoryID: &id}
	embedded := Curtain{Category: &Category{ID: id, Name: "Rèm vải"}}
	other := Curtain{Category: &Category{ID: "00000000-0000-0000-0000-000000000001"}}
	none := Curtain{}

	// Empty selection matches every shape.
	assert.True(t, MatchesCategory(bare, ""))
	assert.True(t, MatchesCategory(embedded, ""))
	assert.True(t, MatchesCategory(none, ""))

	// Selection normalizes bare id vs embedded object.
	assert.True(t, MatchesCategory(bare, id))
	assert.True(t, MatchesCategory(embedded, id))
	assert.False(t, MatchesCategory(other, id))
	assert.False(t, MatchesCategory(none, id))
}

func TestMatchesColor(t *testing.T) {
	beige := Curtain{Color: &Color{Name: "Beige", HexCode: "#f5f5dc"}}
	uncolored := Curtain{}

	assert.True(t, MatchesColor(beige, nil))
	assert.True(t, MatchesColor(uncolored, nil))

	assert.True(t, MatchesColor(beige, []string{"beige"}))
	assert.True(t, MatchesColor(beige, []string{"Xám", "BEIGE"}))
	assert.False(t, MatchesColor(beige, []string{"Xám"}))
	assert.False(t, MatchesColor(uncolored, []string{"Beige"}))
}

func TestMatchesSearch(t *testing.T) {
	cu := Curtain{Name: "Rèm vải cao cấp", Description: "Vải gấm dày, chống nắng tốt"}

	assert.True(t, MatchesSearch(cu, ""))
	assert.True(t, MatchesSearch(cu, "rèm vải"))
	assert.True(t, MatchesSearch(cu, "chống nắng"))
	assert.False(t, MatchesSearch(cu, "rèm cầu vồng"))
}

// The storefront's products page composes all facets over the full list.
func TestFilterCombined(t *testing.T) {
	curtains := []Curtain{
		{Name: "fixed", Price: Price{Type: PriceFixed, Amount: 500000}},
		{Name: "range", Price: Price{Type: PriceRange, Min: 800000, Max: 1200000}},
		{Name: "contact", Price: Price{Type: PriceContact}},
		{Name: "discount", Price: Price{Type: PriceDiscount, Old: 2000000, New: 1500000}},
	}

	got := Filter(curtains, FilterOptions{Price: &PriceWindow{Min: 0, Max: 1000000}})

	names := make([]string, 0, len(got))
	for _, cu := range got {
		names = append(names, cu.Name)
	}
	assert.Equal(t, []string{"fixed", "range", "contact"}, names)
}

func TestFilterNilPriceMeansNoPriceFilter(t *testing.T) {
	curtains := []Curtain{
		{Name: "a", Price: Price{Type: PriceFixed, Amount: 99999999}},
		{Name: "b"},
	}
	got := Filter(curtains, FilterOptions{})
	assert.Len(t, got, 2)
}

func TestFilterIntersectsFacets(t *testing.T) {
	catID := "11111111-1111-1111-1111-111111111111"
	curtains := []Curtain{
		{
			Name:       "match",
			CategoryID: &catID,
			Color:      &Color{Name: "Xám"},
			Price:      Price{Type: PriceFixed, Amount: 300000},
		},
		{
			Name:       "wrong color",
			CategoryID: &catID,
			Color:      &Color{Name: "Beige"},
			Price:      Price{Type: PriceFixed, Amount: 300000},
		},
		{
			Name:  "wrong category",
			Color: &Color{Name: "Xám"},
			Price: Price{Type: PriceFixed, Amount: 300000},
		},
	}

	got := Filter(curtains, FilterOptions{
		CategoryID: catID,
		Colors:     []string{"xám"},
		Price:      &PriceWindow{Min: 0, Max: 500000},
	})

	assert.Len(t, got, 1)
	assert.Equal(t, "match", got[0].Name)
}

// A curtain whose category was deleted keeps its id; it still lists
// unfiltered and still answers to that id as a facet.
func TestDanglingCategoryIDSurvivesFiltering(t *testing.T) {
	gone := "33333333-3333-3333-3333-333333333333"
	cu := Curtain{Name: "orphan", CategoryID: &gone}

	assert.Equal(t, gone, cu.CategoryRef())

	all := Filter([]Curtain{cu}, FilterOptions{})
	assert.Len(t, all, 1)

	byGone := Filter([]Curtain{cu}, FilterOptions{CategoryID: gone})
	assert.Len(t, byGone, 1)
}
