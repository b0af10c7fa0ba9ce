package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/glabrego/storefront-cli/internal/listing"
	"github.com/glabrego/storefront-cli/internal/render/page"
	"github.com/glabrego/storefront-cli/internal/tui/actions"
)

const exportTimeout = 15 * time.Second

type exportOptions struct {
	search   string
	sort     string
	page     int
	pageSize int
	out      string
}

func newExportCmd() *cobra.Command {
	var opts exportOptions
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the product listing as an HTML page",
		Long: `Fetches the catalog, applies search, sort and pagination, and writes
the resulting page as an HTML document.

Example:
  storefront export --search shirt --sort price-asc --page 2 --out page.html`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := setup()
			if err != nil {
				return err
			}
			defer func() { _ = e.logger.Sync() }()

			st, err := e.initialState()
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("page-size") {
				st = st.WithPageSize(opts.pageSize)
			}
			st = st.WithSearch(opts.search).WithSort(listing.ParseSortMode(opts.sort)).WithPage(opts.page)

			w := cmd.OutOrStdout()
			if opts.out != "" && opts.out != "-" {
				f, err := os.Create(opts.out)
				if err != nil {
					return fmt.Errorf("create output file: %w", err)
				}
				defer f.Close()
				w = f
			}

			ctx, cancel := context.WithTimeout(cmd.Context(), exportTimeout)
			defer cancel()
			return exportPage(ctx, w, e.service, st, e.logger)
		},
	}
	cmd.Flags().StringVar(&opts.search, "search", "", "case-insensitive title filter")
	cmd.Flags().StringVar(&opts.sort, "sort", "", "sort mode: price-asc, price-desc, name-asc or name-desc")
	cmd.Flags().IntVar(&opts.page, "page", 1, "page to render, clamped to the available pages")
	cmd.Flags().IntVar(&opts.pageSize, "page-size", listing.DefaultPageSize, "products per page (5, 10, 20 or 50)")
	cmd.Flags().StringVarP(&opts.out, "out", "o", "", "output file, stdout when empty")
	return cmd
}

// exportPage loads the catalog and writes the page for st. A failed load
// still writes the page with its error row, then reports the error.
func exportPage(ctx context.Context, w io.Writer, loader actions.Loader, st listing.State, logger *zap.Logger) error {
	products, loadErr := loader.Load(ctx)
	if loadErr == nil {
		st = st.WithProducts(products)
	}
	st, view := listing.Recompute(st)

	doc := page.Document(page.Input{State: st, View: view, LoadErr: loadErr})
	if err := page.Render(w, doc); err != nil {
		return fmt.Errorf("write page: %w", err)
	}
	if loadErr != nil {
		return loadErr
	}
	logger.Info("page exported",
		zap.Int("page", view.Page),
		zap.Int("total_pages", view.TotalPages),
		zap.Int("matched", view.Matched),
	)
	return nil
}
