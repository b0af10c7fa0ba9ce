package listing

import (
	"github.com/glabrego/storefront-cli/internal/catalog"
)

// View is the visible slice of the listing.
type View struct {
	Items      []catalog.Product
	Page       int
	TotalPages int
	PageSize   int
	Matched    int
}

// Apply runs filter, sort and paginate over the state. The state's product
// slice is left untouched.
func Apply(s State) View {
	filtered := Filter(s.Products, s.Search)
	if s.Sort != SortNone {
		Sort(filtered, s.Sort, s.Locale)
	}
	return Paginate(filtered, s.Page, s.PageSize)
}

// Recompute applies the pipeline and stores the clamped page back into the
// returned state.
func Recompute(s State) (State, View) {
	v := Apply(s)
	s.Page = v.Page
	return s, v
}

// Filter returns a new slice holding the products whose title contains term,
// ignoring case.
func Filter(products []catalog.Product, term string) []catalog.Product {
	out := make([]catalog.Product, 0, len(products))
	for _, p := range products {
		if p.TitleContains(term) {
			out = append(out, p)
		}
	}
	return out
}

// TotalPages is ceil(count/size) with a minimum of one page.
func TotalPages(count, size int) int {
	if size < 1 {
		size = DefaultPageSize
	}
	pages := (count + size - 1) / size
	if pages < 1 {
		return 1
	}
	return pages
}

func ClampPage(page, totalPages int) int {
	if totalPages < 1 {
		totalPages = 1
	}
	if page > totalPages {
		return totalPages
	}
	if page < 1 {
		return 1
	}
	return page
}

func Paginate(items []catalog.Product, page, size int) View {
	if size < 1 {
		size = DefaultPageSize
	}
	total := TotalPages(len(items), size)
	page = ClampPage(page, total)

	start := (page - 1) * size
	end := min(start+size, len(items))
	visible := []catalog.Product{}
	if start < end {
		visible = items[start:end:end]
	}
	return View{
		Items:      visible,
		Page:       page,
		TotalPages: total,
		PageSize:   size,
		Matched:    len(items),
	}
}
