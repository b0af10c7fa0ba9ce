package view

import (
	"fmt"
	"strings"

	tuitheme "github.com/glabrego/storefront-cli/internal/tui/theme"
)

type FooterParams struct {
	SortLabel  string
	PageSize   int
	Page       int
	TotalPages int
	Matched    int
	Total      int
	Search     string
}

func Footer(p FooterParams, th tuitheme.Theme) string {
	parts := []string{
		th.MetaLabel.Render("sort") + " " + th.MetaValue.Render(p.SortLabel),
		th.MetaLabel.Render("size") + " " + th.MetaValue.Render(fmt.Sprintf("%d", p.PageSize)),
		th.MetaLabel.Render("page") + " " + th.MetaValue.Render(fmt.Sprintf("%d/%d", p.Page, p.TotalPages)),
		th.MetaValue.Render(fmt.Sprintf("%d of %d products", p.Matched, p.Total)),
	}
	if p.Search != "" {
		parts = append(parts, th.MetaLabel.Render("search")+" "+th.MetaValue.Render(fmt.Sprintf("%q", p.Search)))
	}
	return strings.Join(parts, " • ")
}

func Message(loading bool, hasWarning bool, status, warning string, th tuitheme.Theme) string {
	state := "idle"
	if loading {
		state = "loading"
	}
	if hasWarning {
		state = "warning"
	}
	main := "Ready"
	if status != "" {
		main = status
	} else if hasWarning {
		main = warning
	}
	stateLabel := th.StateIdle.Render("state")
	switch state {
	case "warning":
		stateLabel = th.StateWarn.Render("state")
	case "loading":
		stateLabel = th.StateLoad.Render("state")
	}
	return fmt.Sprintf("%s: %s | %s", stateLabel, state, th.MetaValue.Render(main))
}
