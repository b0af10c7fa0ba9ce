package main

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/text/language"

	"github.com/glabrego/storefront-cli/internal/catalog"
	"github.com/glabrego/storefront-cli/internal/listing"
	"github.com/glabrego/storefront-cli/internal/render/page"
)

type stubLoader struct {
	products []catalog.Product
	err      error
}

func (s stubLoader) Load(context.Context) ([]catalog.Product, error) {
	return s.products, s.err
}

func exportProducts(n int) []catalog.Product {
	out := make([]catalog.Product, 0, n)
	for i := 1; i <= n; i++ {
		out = append(out, catalog.Product{
			ID:     int64(i),
			Title:  fmt.Sprintf("Item %02d", i),
			Price:  decimal.NewFromInt(int64(i)),
			Images: catalog.NewImageField(fmt.Sprintf("https://img.example/%d.png", i)),
		})
	}
	return out
}

func TestExportPage_RendersRequestedPage(t *testing.T) {
	var buf bytes.Buffer
	st := listing.NewState(10, language.English).WithSort(listing.SortPriceDesc).WithPage(2)

	err := exportPage(context.Background(), &buf, stubLoader{products: exportProducts(25)}, st, zap.NewNop())
	require.NoError(t, err)

	out := buf.String()
	assert.True(t, strings.HasPrefix(out, "<!DOCTYPE html>"))
	assert.Contains(t, out, "Item 15")
	assert.Contains(t, out, "Item 06")
	assert.NotContains(t, out, "Item 16")
	assert.Equal(t, 3, strings.Count(out, "data-page="))
	assert.Contains(t, out, `data-page="2" class="active"`)
}

func TestExportPage_LoadFailureWritesErrorRow(t *testing.T) {
	var buf bytes.Buffer
	st := listing.NewState(10, language.English)

	err := exportPage(context.Background(), &buf, stubLoader{err: errors.New("status 500")}, st, zap.NewNop())
	require.Error(t, err)

	out := buf.String()
	assert.Contains(t, out, page.LoadErrorMessage)
	assert.NotContains(t, out, "data-page=")
}

func TestExportCmd_Flags(t *testing.T) {
	cmd := newExportCmd()
	for _, name := range []string{"search", "sort", "page", "page-size", "out"} {
		assert.NotNil(t, cmd.Flags().Lookup(name), "missing flag %s", name)
	}
}
