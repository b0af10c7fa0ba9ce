// Package listing holds the product listing state and the pure
// filter, sort and paginate pipeline that turns it into a view.
package listing

import (
	"strconv"
	"strings"

	"golang.org/x/text/language"

	"github.com/glabrego/storefront-cli/internal/catalog"
)

const DefaultPageSize = 10

// PageSizeOptions are the sizes offered by the page-size selector.
var PageSizeOptions = []int{5, 10, 20, 50}

// State is the input of one render. Update methods return a modified copy;
// the product slice is shared and never mutated.
type State struct {
	Products []catalog.Product
	Page     int
	PageSize int
	Search   string
	Sort     SortMode
	Locale   language.Tag
}

func NewState(pageSize int, locale language.Tag) State {
	if pageSize < 1 {
		pageSize = DefaultPageSize
	}
	return State{Page: 1, PageSize: pageSize, Locale: locale}
}

// WithProducts replaces the collection with a freshly fetched one.
func (s State) WithProducts(products []catalog.Product) State {
	s.Products = products
	return s
}

// WithSearch updates the search term and goes back to the first page.
func (s State) WithSearch(term string) State {
	s.Search = term
	s.Page = 1
	return s
}

// WithPageSize updates the page size and goes back to the first page.
// Non-positive sizes are ignored.
func (s State) WithPageSize(size int) State {
	if size < 1 {
		return s
	}
	s.PageSize = size
	s.Page = 1
	return s
}

// WithPageSizeText parses size as an integer the way the page-size selector
// submits it. Unparseable input leaves the state unchanged.
func (s State) WithPageSizeText(size string) State {
	n, err := strconv.Atoi(strings.TrimSpace(size))
	if err != nil {
		return s
	}
	return s.WithPageSize(n)
}

// WithSort changes the sort mode. The current page is kept.
func (s State) WithSort(mode SortMode) State {
	s.Sort = mode
	return s
}

// WithPage selects a page. It is clamped on the next Apply.
func (s State) WithPage(page int) State {
	s.Page = page
	return s
}

// NextPageSize returns the selector option after the current size.
func (s State) NextPageSize() int {
	for i, n := range PageSizeOptions {
		if n == s.PageSize {
			return PageSizeOptions[(i+1)%len(PageSizeOptions)]
		}
	}
	return PageSizeOptions[0]
}
