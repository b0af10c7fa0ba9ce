package page

import (
	"io"
	"strconv"

	nethtml "golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/glabrego/storefront-cli/internal/listing"
)

const stylesheet = `
body { font-family: sans-serif; margin: 2rem; }
.controls { display: flex; gap: 1rem; margin-bottom: 1rem; }
table { border-collapse: collapse; width: 100%; }
th, td { border: 1px solid #ddd; padding: 8px; vertical-align: top; }
.image-gallery { display: flex; flex-direction: row; gap: 4px; overflow-x: auto; }
.table-img { width: 60px; height: 60px; object-fit: cover; }
.desc-cell { max-width: 320px; }
#pagination button { margin: 2px; }
#pagination button.active { background: #e63946; color: #fff; }
`

// Input is everything the page description depends on.
type Input struct {
	State   listing.State
	View    listing.View
	LoadErr error
}

// Document describes the full listing page.
func Document(in Input) *nethtml.Node {
	doc := &nethtml.Node{Type: nethtml.DocumentNode}
	doc.AppendChild(&nethtml.Node{Type: nethtml.DoctypeNode, Data: "html"})

	head := appendAll(element(atom.Head),
		element(atom.Meta, attr("charset", "utf-8")),
		appendAll(element(atom.Title), text("Product catalog")),
		appendAll(element(atom.Style), text(stylesheet)),
	)

	body := appendAll(element(atom.Body),
		appendAll(element(atom.H1), text("Product catalog")),
		controls(in.State),
		table(in),
		pagination(in),
	)

	doc.AppendChild(appendAll(element(atom.Html, attr("lang", "en")), head, body))
	return doc
}

func table(in Input) *nethtml.Node {
	headRow := element(atom.Tr)
	for _, c := range Columns {
		headRow.AppendChild(appendAll(element(atom.Th), text(c)))
	}
	tbody := ErrorBody()
	if in.LoadErr == nil {
		tbody = TableBody(in.View)
	}
	return appendAll(element(atom.Table, attr("id", "productTable")),
		appendAll(element(atom.Thead), headRow),
		tbody,
	)
}

func pagination(in Input) *nethtml.Node {
	if in.LoadErr != nil {
		return EmptyPagination()
	}
	return Pagination(in.View)
}

func controls(s listing.State) *nethtml.Node {
	search := element(atom.Input,
		attr("type", "text"),
		attr("id", "searchInput"),
		attr("placeholder", "Search by name..."),
		attr("value", s.Search),
	)

	sizes := element(atom.Select, attr("id", "pageSizeSelect"))
	for _, n := range listing.PageSizeOptions {
		sizes.AppendChild(option(strconv.Itoa(n), strconv.Itoa(n), n == s.PageSize))
	}

	sorts := element(atom.Select, attr("id", "sortSelect"))
	for _, opt := range listing.SortModes {
		sorts.AppendChild(option(string(opt.Mode), opt.Label, opt.Mode == s.Sort))
	}

	return appendAll(element(atom.Div, attr("class", "controls")), search, sizes, sorts)
}

func option(value, label string, selected bool) *nethtml.Node {
	opt := element(atom.Option, attr("value", value))
	if selected {
		opt.Attr = append(opt.Attr, attr("selected", ""))
	}
	return appendAll(opt, text(label))
}

// Render serializes n as HTML.
func Render(w io.Writer, n *nethtml.Node) error {
	return nethtml.Render(w, n)
}
