package view

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/charmbracelet/x/ansi"

	"github.com/glabrego/storefront-cli/internal/catalog"
	tuitheme "github.com/glabrego/storefront-cli/internal/tui/theme"
)

const (
	NoResultsMessage = "No products found."
	LoadErrorMessage = "Unable to load products."
	LoadingMessage   = "Loading products..."

	imagesWidth   = 12
	titleWidth    = 32
	categoryWidth = 16
	priceWidth    = 12
	minDescWidth  = 12
	// borders and cell padding of a five column table
	tableChrome = 16
)

var Columns = []string{"Images", "Title", "Category", "Price", "Description"}

type TableParams struct {
	Items      []catalog.Product
	Start      int
	End        int
	Cursor     int
	Width      int
	Loading    bool
	LoadFailed bool
}

// RenderTable draws the visible page. Rows outside [Start, End) are skipped so
// a long page can scroll around the cursor.
func RenderTable(p TableParams, th tuitheme.Theme) string {
	descWidth := DescriptionWidth(p.Width)
	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(th.Border).
		Headers(Columns...)

	message := ""
	switch {
	case p.Loading:
		message = th.Muted.Render(LoadingMessage)
	case p.LoadFailed:
		message = th.Error.Render(LoadErrorMessage)
	case len(p.Items) == 0:
		message = th.Muted.Render(NoResultsMessage)
	}

	start, end := p.Start, p.End
	if end > len(p.Items) || end <= start {
		start, end = 0, len(p.Items)
	}
	if message == "" {
		for _, product := range p.Items[start:end] {
			t.Row(ProductCells(product, descWidth)...)
		}
	}

	active := p.Cursor - start
	t.StyleFunc(func(row, col int) lipgloss.Style {
		if row == table.HeaderRow {
			return th.Header
		}
		style := th.RowStyle(row == active)
		if col == 3 {
			return th.Price.Inherit(style).Padding(0, 1)
		}
		return style
	})

	rendered := t.Render()
	if message == "" {
		return rendered
	}
	width := lipgloss.Width(rendered)
	return rendered + "\n" + lipgloss.PlaceHorizontal(width, lipgloss.Center, message)
}

// ProductCells returns the terminal cells for one product in column order.
func ProductCells(p catalog.Product, descWidth int) []string {
	return []string{
		ImageSummary(p),
		truncate(p.Title, titleWidth),
		truncate(p.CategoryName(), categoryWidth),
		truncate(p.PriceLabel(), priceWidth),
		truncate(singleLine(p.Description), descWidth),
	}
}

// ImageSummary describes the image cell: how many images resolved, or that
// the placeholder is shown.
func ImageSummary(p catalog.Product) string {
	urls, placeholder := p.DisplayImages()
	if placeholder {
		return "placeholder"
	}
	if len(urls) == 1 {
		return "1 image"
	}
	return fmt.Sprintf("%d images", len(urls))
}

func DescriptionWidth(width int) int {
	if width <= 0 {
		return 48
	}
	w := width - imagesWidth - titleWidth - categoryWidth - priceWidth - tableChrome
	if w < minDescWidth {
		return minDescWidth
	}
	return w
}

// RenderPagination draws one button per page, wrapping to width.
func RenderPagination(page, totalPages, width int, th tuitheme.Theme) string {
	if totalPages < 1 {
		return ""
	}
	if width <= 0 {
		width = 100
	}
	var lines []string
	var line strings.Builder
	lineWidth := 0
	for i := 1; i <= totalPages; i++ {
		btn := th.PageStyle(i == page).Render(strconv.Itoa(i))
		w := lipgloss.Width(btn)
		if lineWidth > 0 && lineWidth+1+w > width {
			lines = append(lines, line.String())
			line.Reset()
			lineWidth = 0
		}
		if lineWidth > 0 {
			line.WriteString(" ")
			lineWidth++
		}
		line.WriteString(btn)
		lineWidth += w
	}
	lines = append(lines, line.String())
	return strings.Join(lines, "\n")
}

func singleLine(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

func truncate(s string, maxLen int) string {
	if maxLen <= 0 {
		return ""
	}
	if ansi.StringWidth(s) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return strings.Repeat(".", maxLen)
	}
	return ansi.Truncate(s, maxLen, "...")
}
