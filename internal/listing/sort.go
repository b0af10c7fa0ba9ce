package listing

import (
	"slices"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/glabrego/storefront-cli/internal/catalog"
)

type SortMode string

const (
	SortNone      SortMode = ""
	SortPriceAsc  SortMode = "price-asc"
	SortPriceDesc SortMode = "price-desc"
	SortNameAsc   SortMode = "name-asc"
	SortNameDesc  SortMode = "name-desc"
)

type SortOption struct {
	Mode  SortMode
	Label string
}

// SortModes lists the selectable modes in selector order.
var SortModes = []SortOption{
	{Mode: SortNone, Label: "Default"},
	{Mode: SortPriceAsc, Label: "Price: low to high"},
	{Mode: SortPriceDesc, Label: "Price: high to low"},
	{Mode: SortNameAsc, Label: "Name: A-Z"},
	{Mode: SortNameDesc, Label: "Name: Z-A"},
}

// ParseSortMode maps unknown values to SortNone.
func ParseSortMode(s string) SortMode {
	for _, opt := range SortModes {
		if string(opt.Mode) == s {
			return opt.Mode
		}
	}
	return SortNone
}

func (m SortMode) Label() string {
	for _, opt := range SortModes {
		if opt.Mode == m {
			return opt.Label
		}
	}
	return SortModes[0].Label
}

// Next cycles forward through SortModes.
func (m SortMode) Next() SortMode {
	return SortModes[(m.index()+1)%len(SortModes)].Mode
}

// Prev cycles backward through SortModes.
func (m SortMode) Prev() SortMode {
	return SortModes[(m.index()+len(SortModes)-1)%len(SortModes)].Mode
}

func (m SortMode) index() int {
	for i, opt := range SortModes {
		if opt.Mode == m {
			return i
		}
	}
	return 0
}

// Sort orders products in place. The sort is stable, and unknown modes leave
// the order untouched.
func Sort(products []catalog.Product, mode SortMode, locale language.Tag) {
	var cmp func(a, b catalog.Product) int
	switch mode {
	case SortPriceAsc:
		cmp = func(a, b catalog.Product) int { return a.Price.Cmp(b.Price) }
	case SortPriceDesc:
		cmp = func(a, b catalog.Product) int { return b.Price.Cmp(a.Price) }
	case SortNameAsc, SortNameDesc:
		col := collate.New(locale)
		if mode == SortNameAsc {
			cmp = func(a, b catalog.Product) int { return col.CompareString(a.Title, b.Title) }
		} else {
			cmp = func(a, b catalog.Product) int { return col.CompareString(b.Title, a.Title) }
		}
	default:
		return
	}
	slices.SortStableFunc(products, cmp)
}
