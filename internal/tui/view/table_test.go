package view

import (
	"fmt"
	"strings"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/glabrego/storefront-cli/internal/catalog"
	tuitheme "github.com/glabrego/storefront-cli/internal/tui/theme"
)

func tableProducts(n int) []catalog.Product {
	out := make([]catalog.Product, 0, n)
	for i := 1; i <= n; i++ {
		out = append(out, catalog.Product{
			ID:          int64(i),
			Title:       fmt.Sprintf("Product %02d", i),
			Price:       decimal.NewFromInt(int64(i * 10)),
			Description: "Line one\nline two",
			Category:    &catalog.Category{ID: 1, Name: "Clothes"},
			Images:      catalog.NewImageField(fmt.Sprintf("https://img.example/%d.png", i)),
		})
	}
	return out
}

func TestRenderTable_RowsAndHeader(t *testing.T) {
	got := stripANSI(RenderTable(TableParams{Items: tableProducts(3), End: 3, Width: 140}, tuitheme.Default()))
	for _, col := range Columns {
		if !strings.Contains(got, col) {
			t.Fatalf("expected header %q, got:\n%s", col, got)
		}
	}
	for _, want := range []string{"Product 01", "Product 03", "$30", "Clothes", "1 image", "Line one line two"} {
		if !strings.Contains(got, want) {
			t.Fatalf("expected %q in table, got:\n%s", want, got)
		}
	}
	if strings.Contains(got, NoResultsMessage) {
		t.Fatalf("did not expect no-results row, got:\n%s", got)
	}
}

func TestRenderTable_WindowSkipsRows(t *testing.T) {
	got := stripANSI(RenderTable(TableParams{Items: tableProducts(5), Start: 2, End: 4, Cursor: 3, Width: 140}, tuitheme.Default()))
	if strings.Contains(got, "Product 01") || strings.Contains(got, "Product 05") {
		t.Fatalf("expected rows outside window to be skipped, got:\n%s", got)
	}
	if !strings.Contains(got, "Product 03") || !strings.Contains(got, "Product 04") {
		t.Fatalf("expected window rows, got:\n%s", got)
	}
}

func TestRenderTable_Messages(t *testing.T) {
	th := tuitheme.Default()
	cases := []struct {
		name   string
		params TableParams
		want   string
	}{
		{name: "empty", params: TableParams{}, want: NoResultsMessage},
		{name: "failed", params: TableParams{LoadFailed: true}, want: LoadErrorMessage},
		{name: "loading", params: TableParams{Loading: true}, want: LoadingMessage},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := stripANSI(RenderTable(tc.params, th))
			if !strings.Contains(got, tc.want) {
				t.Fatalf("expected %q, got:\n%s", tc.want, got)
			}
		})
	}
}

func TestImageSummary(t *testing.T) {
	cases := []struct {
		images catalog.ImageField
		want   string
	}{
		{images: catalog.ImageField{}, want: "placeholder"},
		{images: catalog.NewImageField(`["https://a.example/x.png"]`), want: "1 image"},
		{images: catalog.NewImageField("https://a.example/x.png", "https://a.example/y.png"), want: "2 images"},
		{images: catalog.NewImageField(`[]`), want: "placeholder"},
	}
	for _, tc := range cases {
		if got := ImageSummary(catalog.Product{Images: tc.images}); got != tc.want {
			t.Fatalf("ImageSummary(%+v) = %q, want %q", tc.images, got, tc.want)
		}
	}
}

func TestRenderPagination_OneButtonPerPage(t *testing.T) {
	got := stripANSI(RenderPagination(2, 3, 100, tuitheme.Default()))
	if strings.Join(strings.Fields(got), " ") != "1 2 3" {
		t.Fatalf("unexpected pagination: %q", got)
	}
	if RenderPagination(1, 0, 100, tuitheme.Default()) != "" {
		t.Fatal("expected no pagination without pages")
	}
}

func TestRenderPagination_Wraps(t *testing.T) {
	got := stripANSI(RenderPagination(1, 30, 20, tuitheme.Default()))
	lines := strings.Split(got, "\n")
	if len(lines) < 2 {
		t.Fatalf("expected wrapped pagination, got %q", got)
	}
	if len(strings.Fields(got)) != 30 {
		t.Fatalf("expected 30 buttons, got %q", got)
	}
}

func TestDescriptionWidth(t *testing.T) {
	if got := DescriptionWidth(0); got != 48 {
		t.Fatalf("unexpected default width: %d", got)
	}
	if got := DescriptionWidth(40); got != minDescWidth {
		t.Fatalf("expected minimum width, got %d", got)
	}
	if got := DescriptionWidth(200); got != 200-imagesWidth-titleWidth-categoryWidth-priceWidth-tableChrome {
		t.Fatalf("unexpected width: %d", got)
	}
}

func TestTruncate(t *testing.T) {
	if got := truncate("short", 10); got != "short" {
		t.Fatalf("unexpected truncate: %q", got)
	}
	if got := truncate("a very long title indeed", 10); !strings.HasSuffix(got, "...") || len(got) > 10 {
		t.Fatalf("unexpected truncate: %q", got)
	}
	if got := truncate("abcdef", 2); got != ".." {
		t.Fatalf("unexpected truncate: %q", got)
	}
}
