package catalog

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Product is the subset of catalog fields rendered by the app.
type Product struct {
	ID          int64           `json:"id"`
	Title       string          `json:"title"`
	Price       decimal.Decimal `json:"price"`
	Description string          `json:"description"`
	Category    *Category       `json:"category"`
	Images      ImageField      `json:"images"`
}

type Category struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

const uncategorized = "Uncategorized"

// CategoryName returns the category label, or "Uncategorized" when the
// product has no category.
func (p Product) CategoryName() string {
	if p.Category == nil {
		return uncategorized
	}
	return p.Category.Name
}

// PriceLabel formats the price with a dollar prefix.
func (p Product) PriceLabel() string {
	return "$" + p.Price.String()
}

// DisplayImages returns the URLs to show for the product. When nothing
// resolves it returns the placeholder alone and reports true.
func (p Product) DisplayImages() ([]string, bool) {
	urls := p.Images.URLs()
	if len(urls) == 0 {
		return []string{PlaceholderImageURL}, true
	}
	return urls, false
}

// TitleContains reports whether the title contains term, ignoring case.
func (p Product) TitleContains(term string) bool {
	if term == "" {
		return true
	}
	return strings.Contains(strings.ToLower(p.Title), strings.ToLower(term))
}
