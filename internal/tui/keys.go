package tui

import "github.com/charmbracelet/bubbles/key"

type KeyMap struct {
	Up       key.Binding
	Down     key.Binding
	PrevPage key.Binding
	NextPage key.Binding
	GoToPage key.Binding
	Jump     key.Binding
	Search   key.Binding
	Clear    key.Binding
	SortNext key.Binding
	SortPrev key.Binding
	PageSize key.Binding
	Detail   key.Binding
	PrevImg  key.Binding
	NextImg  key.Binding
	Back     key.Binding
	Open     key.Binding
	Copy     key.Binding
	Reload   key.Binding
	Help     key.Binding
	Quit     key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up:       key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:     key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		PrevPage: key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "prev page")),
		NextPage: key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "next page")),
		GoToPage: key.NewBinding(key.WithKeys("1", "2", "3", "4", "5", "6", "7", "8", "9"), key.WithHelp("1-9", "go to page")),
		Jump:     key.NewBinding(key.WithKeys("g"), key.WithHelp("g", "jump to page")),
		Search:   key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "search")),
		Clear:    key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "clear search")),
		SortNext: key.NewBinding(key.WithKeys("s"), key.WithHelp("s/S", "sort")),
		SortPrev: key.NewBinding(key.WithKeys("S")),
		PageSize: key.NewBinding(key.WithKeys("z"), key.WithHelp("z", "page size")),
		Detail:   key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "details")),
		PrevImg:  key.NewBinding(key.WithKeys("["), key.WithHelp("[", "prev image")),
		NextImg:  key.NewBinding(key.WithKeys("]"), key.WithHelp("]", "next image")),
		Back:     key.NewBinding(key.WithKeys("esc", "backspace"), key.WithHelp("esc", "back")),
		Open:     key.NewBinding(key.WithKeys("o"), key.WithHelp("o", "open image")),
		Copy:     key.NewBinding(key.WithKeys("y"), key.WithHelp("y", "copy image URL")),
		Reload:   key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reload")),
		Help:     key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:     key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Search, k.SortNext, k.PageSize, k.PrevPage, k.NextPage, k.Detail, k.Help, k.Quit}
}

func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.PrevPage, k.NextPage, k.GoToPage, k.Jump},
		{k.Search, k.Clear, k.SortNext, k.PageSize},
		{k.Detail, k.Back, k.PrevImg, k.NextImg, k.Open, k.Copy},
		{k.Reload, k.Help, k.Quit},
	}
}

type detailKeyMap struct {
	KeyMap
}

func (k detailKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.PrevImg, k.NextImg, k.Open, k.Copy, k.Back, k.Quit}
}
