package view

import (
	"errors"
	"strings"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/glabrego/storefront-cli/internal/catalog"
)

func detailProduct() catalog.Product {
	return catalog.Product{
		ID:          7,
		Title:       "Linen Shirt",
		Price:       decimal.RequireFromString("42.5"),
		Description: "<p>Breathable <strong>linen</strong>.</p>",
		Category:    &catalog.Category{ID: 1, Name: "Clothes"},
		Images:      catalog.NewImageField("https://i.imgur.com/a.jpeg", "https://i.imgur.com/b.jpeg"),
	}
}

func TestDetailMarkdown(t *testing.T) {
	md := DetailMarkdown(detailProduct())
	for _, want := range []string{
		"# Linen Shirt",
		"**$42.5** in Clothes",
		"1. <https://i.imgur.com/a.jpeg>",
		"2. <https://i.imgur.com/b.jpeg>",
		"Breathable **linen**.",
	} {
		if !strings.Contains(md, want) {
			t.Fatalf("expected %q in markdown:\n%s", want, md)
		}
	}
}

func TestDetailMarkdown_PlaceholderAndNoCategory(t *testing.T) {
	p := catalog.Product{Title: "Mystery", Price: decimal.NewFromInt(3)}
	md := DetailMarkdown(p)
	if !strings.Contains(md, "**$3** in Uncategorized") {
		t.Fatalf("expected uncategorized label, got:\n%s", md)
	}
	if !strings.Contains(md, "No images available.") {
		t.Fatalf("expected placeholder note, got:\n%s", md)
	}
	if strings.Contains(md, "---") {
		t.Fatalf("did not expect separator without description, got:\n%s", md)
	}
}

func TestDetailMarkdown_EscapesTitleAndCategory(t *testing.T) {
	p := detailProduct()
	p.Title = "#1 *Deal*"
	p.Category = &catalog.Category{ID: 2, Name: "Tops_New"}
	md := DetailMarkdown(p)
	for _, want := range []string{"# \\#1 \\*Deal\\*\n", "in Tops\\_New"} {
		if !strings.Contains(md, want) {
			t.Fatalf("expected %q in markdown:\n%s", want, md)
		}
	}

	out := DetailContent(p, 60, GlamourMarkdown("notty"))
	if !strings.Contains(out, "#1 *Deal*") {
		t.Fatalf("expected literal title in rendered detail:\n%s", out)
	}
}

func TestDetailContent_GlamourNoTTY(t *testing.T) {
	out := DetailContent(detailProduct(), 60, GlamourMarkdown("notty"))
	for _, want := range []string{"Linen Shirt", "$42.5", "Clothes", "https://i.imgur.com/a.jpeg", "linen"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in rendered detail:\n%s", want, out)
		}
	}
}

func TestDetailContent_FallsBackToMarkdown(t *testing.T) {
	failing := func(string, int) (string, error) { return "", errors.New("boom") }
	out := DetailContent(detailProduct(), 60, failing)
	if out != DetailMarkdown(detailProduct()) {
		t.Fatalf("expected markdown fallback, got %q", out)
	}
}
