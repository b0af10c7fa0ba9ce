package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/glabrego/storefront-cli/internal/app"
	"github.com/glabrego/storefront-cli/internal/catalog"
	"github.com/glabrego/storefront-cli/internal/config"
	"github.com/glabrego/storefront-cli/internal/listing"
	"github.com/glabrego/storefront-cli/internal/logging"
	"github.com/glabrego/storefront-cli/internal/tui"
	tuiview "github.com/glabrego/storefront-cli/internal/tui/view"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// env is what every subcommand needs once configuration has been read.
type env struct {
	cfg     config.Config
	logger  *zap.Logger
	service *app.Service
}

func setup() (*env, error) {
	cfg, err := config.LoadFromEnv()
	if err != nil {
		return nil, fmt.Errorf("config error: %w", err)
	}
	logger := logging.New(cfg.LogPath, cfg.Debug)
	client := catalog.NewClient(cfg.APIURL, nil)
	return &env{cfg: cfg, logger: logger, service: app.NewService(client, logger)}, nil
}

func (e *env) initialState() (listing.State, error) {
	tag, err := e.cfg.LanguageTag()
	if err != nil {
		return listing.State{}, err
	}
	return listing.NewState(e.cfg.PageSize, tag), nil
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "storefront",
		Short: "Browse a product catalog in the terminal",
		Long: `storefront fetches the product catalog once and lists it as a table
with title search, sorting by price or name, and pagination.

Configuration is read from STOREFRONT_* environment variables.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := setup()
			if err != nil {
				return err
			}
			defer func() { _ = e.logger.Sync() }()
			return runTUI(e)
		},
	}
	root.AddCommand(newExportCmd())
	return root
}

func runTUI(e *env) error {
	st, err := e.initialState()
	if err != nil {
		return err
	}
	opts := tui.Options{
		Logger:   e.logger,
		Markdown: tuiview.GlamourMarkdown(e.cfg.MarkdownStyle),
	}
	if e.cfg.ImagePreview {
		opts.Preview = tuiview.NewImagePreviewer(nil, nil).Preview
	}

	e.logger.Info("starting tui", zap.String("api_url", e.cfg.APIURL), zap.Int("page_size", e.cfg.PageSize))
	program := tea.NewProgram(tui.NewModel(e.service, st, opts), tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("tui error: %w", err)
	}
	return nil
}
