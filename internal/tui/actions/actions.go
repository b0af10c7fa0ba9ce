package actions

import (
	"context"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/glabrego/storefront-cli/internal/catalog"
)

const loadTimeout = 12 * time.Second

type Loader interface {
	Load(ctx context.Context) ([]catalog.Product, error)
}

type LoadSuccessMsg struct {
	Products []catalog.Product
	Duration time.Duration
	Source   string
}

type LoadErrorMsg struct {
	Err      error
	Duration time.Duration
	Source   string
}

type OpenURLSuccessMsg struct {
	Status string
	Opened bool
}

type OpenURLErrorMsg struct {
	Err error
}

type ImagePreviewMsg struct {
	ProductID int64
	URL       string
	Output    string
	Err       error
}

// PreviewFunc renders the image at url for the given width.
type PreviewFunc func(ctx context.Context, url string, width int) (string, error)

// LoadCatalogCmd fetches the catalog once. source tells the model whether the
// load was the startup fetch or a manual reload.
func LoadCatalogCmd(loader Loader, source string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), loadTimeout)
		defer cancel()
		start := time.Now()

		products, err := loader.Load(ctx)
		if err != nil {
			return LoadErrorMsg{Err: err, Duration: time.Since(start), Source: source}
		}
		return LoadSuccessMsg{Products: products, Duration: time.Since(start), Source: source}
	}
}

func OpenURLCmd(url string, openFn, copyFn func(string) error) tea.Cmd {
	return func() tea.Msg {
		if openFn != nil {
			if err := openFn(url); err == nil {
				return OpenURLSuccessMsg{Status: "Opened image in browser", Opened: true}
			}
		}
		if copyFn != nil {
			if err := copyFn(url); err == nil {
				return OpenURLSuccessMsg{Status: "Could not open browser, URL copied to clipboard"}
			}
		}
		return OpenURLErrorMsg{Err: fmt.Errorf("could not open URL or copy to clipboard")}
	}
}

func CopyURLCmd(url string, copyFn func(string) error) tea.Cmd {
	return func() tea.Msg {
		if copyFn != nil {
			if err := copyFn(url); err == nil {
				return OpenURLSuccessMsg{Status: "URL copied to clipboard"}
			}
		}
		return OpenURLErrorMsg{Err: fmt.Errorf("could not copy URL to clipboard")}
	}
}

func ImagePreviewCmd(preview PreviewFunc, productID int64, url string, width int) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), loadTimeout)
		defer cancel()

		out, err := preview(ctx, url, width)
		return ImagePreviewMsg{ProductID: productID, URL: url, Output: out, Err: err}
	}
}
