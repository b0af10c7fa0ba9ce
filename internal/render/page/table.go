// Package page describes the product listing as an HTML node tree. Nothing
// here touches a live document: callers render or diff the returned nodes.
package page

import (
	"strconv"

	nethtml "golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/glabrego/storefront-cli/internal/catalog"
	"github.com/glabrego/storefront-cli/internal/listing"
)

const (
	TableBodyID  = "tableBody"
	PaginationID = "pagination"

	NoResultsMessage = "No products found."
	LoadErrorMessage = "Unable to load products."

	columnCount = 5
)

// Columns are the table header labels in cell order.
var Columns = []string{"Images", "Title", "Category", "Price", "Description"}

// TableBody describes the rows for the visible page.
func TableBody(v listing.View) *nethtml.Node {
	tbody := element(atom.Tbody, attr("id", TableBodyID))
	if len(v.Items) == 0 {
		return appendAll(tbody, messageRow(NoResultsMessage, "text-align:center"))
	}
	for _, p := range v.Items {
		tbody.AppendChild(productRow(p))
	}
	return tbody
}

// ErrorBody is the table body shown when the catalog could not be loaded.
func ErrorBody() *nethtml.Node {
	tbody := element(atom.Tbody, attr("id", TableBodyID))
	return appendAll(tbody, messageRow(LoadErrorMessage, "color:red; text-align:center"))
}

func messageRow(message, style string) *nethtml.Node {
	td := element(atom.Td, attr("colspan", strconv.Itoa(columnCount)), attr("style", style))
	return appendAll(element(atom.Tr), appendAll(td, text(message)))
}

func productRow(p catalog.Product) *nethtml.Node {
	imageCell := appendAll(element(atom.Td), Gallery(p))
	titleCell := appendAll(element(atom.Td), appendAll(element(atom.Strong), text(p.Title)))
	categoryCell := appendAll(element(atom.Td), text(p.CategoryName()))
	priceCell := appendAll(
		element(atom.Td, attr("style", "color: #e63946; font-weight: bold;")),
		text(p.PriceLabel()),
	)
	descCell := element(atom.Td, attr("class", "desc-cell"))
	rawFragment(descCell, p.Description)

	return appendAll(element(atom.Tr), imageCell, titleCell, categoryCell, priceCell, descCell)
}

// Gallery lays out every resolved image of p, or a single placeholder.
func Gallery(p catalog.Product) *nethtml.Node {
	gallery := element(atom.Div, attr("class", "image-gallery"))
	urls, placeholder := p.DisplayImages()
	if placeholder {
		return appendAll(gallery, element(atom.Img,
			attr("src", catalog.PlaceholderImageURL),
			attr("class", "table-img"),
		))
	}
	for _, u := range urls {
		gallery.AppendChild(element(atom.Img,
			attr("src", u),
			attr("class", "table-img"),
			attr("referrerpolicy", "no-referrer"),
			attr("onerror", "this.src='"+catalog.PlaceholderImageURL+"'"),
		))
	}
	return gallery
}

// Pagination describes one button per page with the current one marked
// active. Buttons carry their page number in data-page.
func Pagination(v listing.View) *nethtml.Node {
	div := element(atom.Div, attr("id", PaginationID))
	for i := 1; i <= v.TotalPages; i++ {
		n := strconv.Itoa(i)
		btn := element(atom.Button, attr("type", "button"), attr("data-page", n))
		if i == v.Page {
			btn.Attr = append(btn.Attr, attr("class", "active"))
		}
		div.AppendChild(appendAll(btn, text(n)))
	}
	return div
}

// EmptyPagination is the control container with no buttons.
func EmptyPagination() *nethtml.Node {
	return element(atom.Div, attr("id", PaginationID))
}
