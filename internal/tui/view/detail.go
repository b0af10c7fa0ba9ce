package view

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"

	"github.com/glabrego/storefront-cli/internal/catalog"
	"github.com/glabrego/storefront-cli/internal/render/description"
)

// MarkdownRenderer renders Markdown for a given wrap width.
type MarkdownRenderer func(markdown string, width int) (string, error)

// GlamourMarkdown returns a renderer using the named glamour style, e.g.
// "dark", "light" or "notty".
func GlamourMarkdown(style string) MarkdownRenderer {
	return func(markdown string, width int) (string, error) {
		r, err := glamour.NewTermRenderer(
			glamour.WithStandardStyle(style),
			glamour.WithWordWrap(width),
		)
		if err != nil {
			return "", fmt.Errorf("create markdown renderer: %w", err)
		}
		out, err := r.Render(markdown)
		if err != nil {
			return "", fmt.Errorf("render markdown: %w", err)
		}
		return strings.Trim(out, "\n"), nil
	}
}

// DetailMarkdown describes one product as Markdown.
func DetailMarkdown(p catalog.Product) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", description.Escape(p.Title))
	fmt.Fprintf(&b, "**%s** in %s\n\n", p.PriceLabel(), description.Escape(p.CategoryName()))

	urls, placeholder := p.DisplayImages()
	if placeholder {
		b.WriteString("No images available.\n\n")
	} else {
		b.WriteString("Images:\n\n")
		for i, u := range urls {
			fmt.Fprintf(&b, "%d. <%s>\n", i+1, u)
		}
		b.WriteString("\n")
	}

	if desc := description.Markdown(p.Description); desc != "" {
		b.WriteString("---\n\n")
		b.WriteString(desc)
		b.WriteString("\n")
	}
	return b.String()
}

// DetailContent renders the detail pane. When rendering fails the Markdown
// source is shown instead.
func DetailContent(p catalog.Product, width int, render MarkdownRenderer) string {
	if width < 20 {
		width = 80
	}
	md := DetailMarkdown(p)
	if render == nil {
		return md
	}
	out, err := render(md, width)
	if err != nil || strings.TrimSpace(out) == "" {
		return md
	}
	return out
}
