package tui

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/glabrego/storefront-cli/internal/catalog"
	"github.com/glabrego/storefront-cli/internal/listing"
	"github.com/glabrego/storefront-cli/internal/tui/actions"
	"github.com/glabrego/storefront-cli/internal/tui/platform"
	tuistate "github.com/glabrego/storefront-cli/internal/tui/state"
	tuitheme "github.com/glabrego/storefront-cli/internal/tui/theme"
	tuiview "github.com/glabrego/storefront-cli/internal/tui/view"
)

const (
	sourceStartup = "startup"
	sourceReload  = "reload"

	statusTTL = 4 * time.Second
)

type clearStatusMsg struct {
	id int
}

// Options wires the side effects of the model. Zero values fall back to the
// platform helpers; a nil Preview disables inline images.
type Options struct {
	Logger   *zap.Logger
	Markdown tuiview.MarkdownRenderer
	Preview  actions.PreviewFunc
	OpenURL  func(string) error
	CopyURL  func(string) error
}

type Model struct {
	loader actions.Loader
	logger *zap.Logger

	listing listing.State
	view    listing.View
	cursor  int

	keys    KeyMap
	help    help.Model
	search  textinput.Model
	jump    textinput.Model
	spinner spinner.Model
	detail  viewport.Model
	theme   tuitheme.Theme

	inDetail   bool
	imageIndex int
	loading    bool
	loadFailed bool
	err        error
	status     string
	statusID   int
	width      int
	height     int

	markdown   tuiview.MarkdownRenderer
	previewFn  actions.PreviewFunc
	preview    map[string]string
	previewErr map[string]error
	openURLFn  func(string) error
	copyURLFn  func(string) error
}

func NewModel(loader actions.Loader, initial listing.State, opts Options) Model {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	openFn := opts.OpenURL
	if openFn == nil {
		openFn = platform.OpenURLInBrowser
	}
	copyFn := opts.CopyURL
	if copyFn == nil {
		copyFn = platform.CopyURLToClipboard
	}
	th := tuitheme.Default()

	search := textinput.New()
	search.Prompt = "/ "
	search.Placeholder = "Search by title"
	search.CharLimit = 120

	jump := textinput.New()
	jump.Prompt = "page: "
	jump.Placeholder = "number"
	jump.CharLimit = 6

	spin := spinner.New(spinner.WithSpinner(spinner.Dot), spinner.WithStyle(th.StateLoad))

	m := Model{
		loader:     loader,
		logger:     logger,
		listing:    initial,
		keys:       DefaultKeyMap(),
		help:       help.New(),
		search:     search,
		jump:       jump,
		spinner:    spin,
		detail:     viewport.New(80, 20),
		theme:      th,
		loading:    loader != nil,
		markdown:   opts.Markdown,
		previewFn:  opts.Preview,
		preview:    make(map[string]string),
		previewErr: make(map[string]error),
		openURLFn:  openFn,
		copyURLFn:  copyFn,
	}
	m.recompute()
	return m
}

func (m Model) Init() tea.Cmd {
	if m.loader == nil {
		return nil
	}
	return tea.Batch(m.spinner.Tick, actions.LoadCatalogCmd(m.loader, sourceStartup))
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.resizeDetail()
		return m, nil
	case spinner.TickMsg:
		if !m.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case actions.LoadSuccessMsg:
		m.loading = false
		m.loadFailed = false
		m.err = nil
		m.inDetail = false
		m.imageIndex = 0
		m.listing = m.listing.WithProducts(msg.Products)
		m.recompute()
		if msg.Source == sourceReload {
			return m.setStatus(fmt.Sprintf("Loaded %d products", len(msg.Products)))
		}
		return m, nil
	case actions.LoadErrorMsg:
		m.loading = false
		m.loadFailed = true
		m.err = msg.Err
		m.inDetail = false
		m.listing = m.listing.WithProducts(nil)
		m.recompute()
		return m, nil
	case actions.OpenURLSuccessMsg:
		m.err = nil
		return m.setStatus(msg.Status)
	case actions.OpenURLErrorMsg:
		m.logger.Warn("image url action failed", zap.Error(msg.Err))
		m.err = msg.Err
		return m, nil
	case actions.ImagePreviewMsg:
		if msg.Err != nil {
			if !errors.Is(msg.Err, tuiview.ErrPreviewUnavailable) {
				m.logger.Debug("image preview failed", zap.String("url", msg.URL), zap.Error(msg.Err))
			}
			m.previewErr[msg.URL] = msg.Err
		} else {
			m.preview[msg.URL] = msg.Output
		}
		m.refreshDetail()
		return m, nil
	case clearStatusMsg:
		if msg.id == m.statusID {
			m.status = ""
		}
		return m, nil
	case tea.KeyMsg:
		if m.search.Focused() {
			return m.updateSearch(msg)
		}
		if m.jump.Focused() {
			return m.updateJump(msg)
		}
		if key.Matches(msg, m.keys.Quit) {
			return m, tea.Quit
		}
		if key.Matches(msg, m.keys.Help) {
			m.help.ShowAll = !m.help.ShowAll
			return m, nil
		}
		if m.inDetail {
			return m.updateDetail(msg)
		}
		return m.updateList(msg)
	}
	return m, nil
}

func (m Model) updateSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEnter:
		m.search.Blur()
		return m, nil
	case tea.KeyEsc:
		m.search.Blur()
		m.search.SetValue("")
		m.applySearch()
		return m, nil
	case tea.KeyCtrlC:
		return m, tea.Quit
	}
	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	m.applySearch()
	return m, cmd
}

// updateJump collects a page number until enter; non-digits are ignored.
func (m Model) updateJump(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEnter:
		n, err := strconv.Atoi(m.jump.Value())
		m.jump.Blur()
		m.jump.SetValue("")
		if err != nil {
			return m, nil
		}
		return m.goToPage(n), nil
	case tea.KeyEsc:
		m.jump.Blur()
		m.jump.SetValue("")
		return m, nil
	case tea.KeyCtrlC:
		return m, tea.Quit
	case tea.KeyRunes:
		for _, r := range msg.Runes {
			if r < '0' || r > '9' {
				return m, nil
			}
		}
	}
	var cmd tea.Cmd
	m.jump, cmd = m.jump.Update(msg)
	return m, cmd
}

func (m Model) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Search):
		cmd := m.search.Focus()
		return m, cmd
	case key.Matches(msg, m.keys.Clear):
		if m.search.Value() != "" {
			m.search.SetValue("")
			m.applySearch()
		}
		return m, nil
	case key.Matches(msg, m.keys.Up):
		m.cursor = tuistate.ClampCursor(m.cursor-1, len(m.view.Items))
		return m, nil
	case key.Matches(msg, m.keys.Down):
		m.cursor = tuistate.ClampCursor(m.cursor+1, len(m.view.Items))
		return m, nil
	case key.Matches(msg, m.keys.PrevPage):
		return m.goToPage(m.view.Page - 1), nil
	case key.Matches(msg, m.keys.NextPage):
		return m.goToPage(m.view.Page + 1), nil
	case key.Matches(msg, m.keys.GoToPage):
		n, err := strconv.Atoi(msg.String())
		if err != nil {
			return m, nil
		}
		return m.goToPage(n), nil
	case key.Matches(msg, m.keys.Jump):
		cmd := m.jump.Focus()
		return m, cmd
	case key.Matches(msg, m.keys.SortNext):
		m.listing = m.listing.WithSort(m.listing.Sort.Next())
		m.recompute()
		return m, nil
	case key.Matches(msg, m.keys.SortPrev):
		m.listing = m.listing.WithSort(m.listing.Sort.Prev())
		m.recompute()
		return m, nil
	case key.Matches(msg, m.keys.PageSize):
		m.listing = m.listing.WithPageSize(m.listing.NextPageSize())
		m.cursor = 0
		m.recompute()
		return m, nil
	case key.Matches(msg, m.keys.Reload):
		if m.loading || m.loader == nil {
			return m, nil
		}
		m.loading = true
		m.err = nil
		m.logger.Info("catalog reload requested")
		return m, tea.Batch(m.spinner.Tick, actions.LoadCatalogCmd(m.loader, sourceReload))
	case key.Matches(msg, m.keys.Detail):
		if _, ok := m.selected(); !ok {
			return m, nil
		}
		m.inDetail = true
		m.imageIndex = 0
		m.refreshDetail()
		m.detail.GotoTop()
		return m, m.previewCmd()
	case key.Matches(msg, m.keys.Open):
		return m.openSelectedImage()
	case key.Matches(msg, m.keys.Copy):
		return m.copySelectedImage()
	}
	return m, nil
}

func (m Model) updateDetail(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Back):
		m.inDetail = false
		return m, nil
	case key.Matches(msg, m.keys.PrevImg):
		return m.moveImage(-1)
	case key.Matches(msg, m.keys.NextImg):
		return m.moveImage(1)
	case key.Matches(msg, m.keys.Open):
		return m.openSelectedImage()
	case key.Matches(msg, m.keys.Copy):
		return m.copySelectedImage()
	}
	var cmd tea.Cmd
	m.detail, cmd = m.detail.Update(msg)
	return m, cmd
}

func (m Model) goToPage(page int) Model {
	m.listing = m.listing.WithPage(page)
	m.cursor = 0
	m.recompute()
	return m
}

func (m *Model) applySearch() {
	term := m.search.Value()
	if term == m.listing.Search {
		return
	}
	m.listing = m.listing.WithSearch(term)
	m.cursor = 0
	m.recompute()
}

// recompute runs the listing pipeline and keeps the cursor on a visible row.
func (m *Model) recompute() {
	m.listing, m.view = listing.Recompute(m.listing)
	m.cursor = tuistate.ClampCursor(m.cursor, len(m.view.Items))
}

func (m Model) selected() (catalog.Product, bool) {
	if len(m.view.Items) == 0 {
		return catalog.Product{}, false
	}
	return m.view.Items[tuistate.ClampCursor(m.cursor, len(m.view.Items))], true
}

func (m Model) selectedImage() (catalog.Product, string, bool) {
	p, ok := m.selected()
	if !ok {
		return catalog.Product{}, "", false
	}
	urls, _ := p.DisplayImages()
	idx := 0
	if m.inDetail {
		idx = tuistate.ClampCursor(m.imageIndex, len(urls))
	}
	return p, urls[idx], true
}

func (m Model) moveImage(delta int) (tea.Model, tea.Cmd) {
	p, ok := m.selected()
	if !ok {
		return m, nil
	}
	urls, _ := p.DisplayImages()
	m.imageIndex = tuistate.ClampCursor(m.imageIndex+delta, len(urls))
	m.refreshDetail()
	return m, m.previewCmd()
}

func (m Model) openSelectedImage() (tea.Model, tea.Cmd) {
	_, raw, ok := m.selectedImage()
	if !ok {
		return m, nil
	}
	u, err := platform.ValidateImageURL(raw)
	if err != nil {
		m.err = err
		return m, nil
	}
	return m, actions.OpenURLCmd(u, m.openURLFn, m.copyURLFn)
}

func (m Model) copySelectedImage() (tea.Model, tea.Cmd) {
	_, raw, ok := m.selectedImage()
	if !ok {
		return m, nil
	}
	u, err := platform.ValidateImageURL(raw)
	if err != nil {
		m.err = err
		return m, nil
	}
	return m, actions.CopyURLCmd(u, m.copyURLFn)
}

func (m Model) previewCmd() tea.Cmd {
	if m.previewFn == nil {
		return nil
	}
	p, u, ok := m.selectedImage()
	if !ok || u == catalog.PlaceholderImageURL {
		return nil
	}
	if _, done := m.preview[u]; done {
		return nil
	}
	if _, failed := m.previewErr[u]; failed {
		return nil
	}
	return actions.ImagePreviewCmd(m.previewFn, p.ID, u, m.contentWidth())
}

func (m Model) setStatus(status string) (tea.Model, tea.Cmd) {
	m.statusID++
	m.status = status
	id := m.statusID
	return m, tea.Tick(statusTTL, func(time.Time) tea.Msg {
		return clearStatusMsg{id: id}
	})
}

func (m *Model) resizeDetail() {
	m.detail.Width = m.contentWidth()
	h := m.height - 6
	if h < 5 {
		h = 5
	}
	m.detail.Height = h
	if m.inDetail {
		m.refreshDetail()
	}
}

func (m *Model) refreshDetail() {
	p, u, ok := m.selectedImage()
	if !ok {
		m.detail.SetContent("")
		return
	}
	content := tuiview.DetailContent(p, m.contentWidth(), m.markdown)
	if m.previewFn != nil {
		urls, _ := p.DisplayImages()
		label := fmt.Sprintf("Image %d/%d", tuistate.ClampCursor(m.imageIndex, len(urls))+1, len(urls))
		block := tuiview.PreviewFallback(u, m.previewErr[u])
		if out, ok := m.preview[u]; ok {
			block = out
		}
		content = m.theme.MetaLabel.Render(label) + "\n" + block + "\n\n" + content
	}
	m.detail.SetContent(content)
}

func (m Model) contentWidth() int {
	if m.width <= 0 {
		return 80
	}
	return max(20, m.width-2)
}

// State exposes the listing state, mainly for tests and export.
func (m Model) State() listing.State {
	return m.listing
}

func (m Model) CurrentView() listing.View {
	return m.view
}

func (m Model) View() string {
	var b strings.Builder
	mode := "list"
	if m.inDetail {
		mode = "detail"
	}
	b.WriteString(m.theme.Title.Render("Storefront"))
	b.WriteString(" ")
	b.WriteString(m.theme.ModePill.Render(mode))
	b.WriteString("\n\n")

	if m.inDetail {
		b.WriteString(m.detail.View())
		b.WriteString("\n\n")
		b.WriteString(m.messagePanel())
		b.WriteString("\n")
		b.WriteString(m.help.View(detailKeyMap{m.keys}))
		return b.String()
	}

	promptVisible := m.jump.Focused() || m.search.Focused() || m.search.Value() != ""
	if m.jump.Focused() {
		b.WriteString(m.theme.SearchBox.Render(m.jump.View()))
		b.WriteString("\n")
	} else if promptVisible {
		b.WriteString(m.theme.SearchBox.Render(m.search.View()))
		b.WriteString("\n")
	}

	budget := tuistate.TableRowBudget(m.height, promptVisible)
	start, end := tuistate.CenteredWindow(len(m.view.Items), m.cursor, budget)
	b.WriteString(tuiview.RenderTable(tuiview.TableParams{
		Items:      m.view.Items,
		Start:      start,
		End:        end,
		Cursor:     m.cursor,
		Width:      m.width,
		Loading:    m.loading && len(m.listing.Products) == 0,
		LoadFailed: m.loadFailed,
	}, m.theme))
	b.WriteString("\n")

	if m.showPagination() {
		b.WriteString(tuiview.RenderPagination(m.view.Page, m.view.TotalPages, m.width, m.theme))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(m.messagePanel())
	b.WriteString("\n")
	b.WriteString(m.footer())
	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))
	return b.String()
}

// showPagination is false while the first load is pending and after a load
// failure; otherwise every page gets a button, even a single empty page.
func (m Model) showPagination() bool {
	if m.loadFailed {
		return false
	}
	return !(m.loading && len(m.listing.Products) == 0)
}

func (m Model) messagePanel() string {
	warning := ""
	if m.err != nil {
		warning = m.err.Error()
	}
	panel := tuiview.Message(m.loading, m.err != nil, m.status, warning, m.theme)
	if m.loading {
		return lipgloss.JoinHorizontal(lipgloss.Top, m.spinner.View(), " ", panel)
	}
	return panel
}

func (m Model) footer() string {
	return tuiview.Footer(tuiview.FooterParams{
		SortLabel:  m.listing.Sort.Label(),
		PageSize:   m.view.PageSize,
		Page:       m.view.Page,
		TotalPages: m.view.TotalPages,
		Matched:    m.view.Matched,
		Total:      len(m.listing.Products),
		Search:     m.listing.Search,
	}, m.theme)
}
