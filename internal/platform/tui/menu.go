package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/planet-defense/internal/core"
	"github.com/vovakirdan/planet-defense/internal/registry"
)

// picker is a cursor over a fixed number of list entries.
type picker struct {
	cursor int
	n      int
}

// move applies an up or down action and reports whether it was one.
func (p *picker) move(a MenuAction) bool {
	switch a {
	case MenuActionUp:
		p.cursor = max(p.cursor-1, 0)
	case MenuActionDown:
		p.cursor = max(min(p.cursor+1, p.n-1), 0)
	default:
		return false
	}
	return true
}

// writeList writes one centered line per entry, highlighting the cursor.
func writeList(b *strings.Builder, lines []string, cursor, width int) {
	for i, line := range lines {
		if i == cursor {
			b.WriteString(centerStyled(cursorStyle, "> "+line, width))
		} else {
			b.WriteString(centerText("  "+line, width))
		}
		b.WriteString("\n")
	}
}

// MenuItem is one game mode offered by the menu.
type MenuItem struct {
	GameID string
	Title  string
	Blurb  string
}

// MenuModel picks the game mode.
type MenuModel struct {
	items      []MenuItem
	pick       picker
	width      int
	height     int
	config     core.RuntimeConfig
	keyMapper  *KeyMapper
	quitting   bool
	selected   *MenuItem
	scoreboard bool
}

// NewMenuModel lists every registered game mode.
func NewMenuModel(cfg core.RuntimeConfig) MenuModel {
	infos := registry.List()
	items := make([]MenuItem, len(infos))
	for i, info := range infos {
		items[i] = MenuItem{GameID: info.ID, Title: info.Title, Blurb: info.Summary}
	}
	return MenuModel{
		items:     items,
		pick:      picker{n: len(items)},
		width:     cfg.ScreenW,
		height:    cfg.ScreenH,
		config:    cfg,
		keyMapper: NewKeyMapper(),
	}
}

// Init implements tea.Model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model. Every terminal choice ends the program with
// tea.Quit; callers read the outcome from the final model.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.config.ScreenW, m.config.ScreenH = msg.Width, msg.Height

	case tea.KeyMsg:
		action := m.keyMapper.MapKeyToMenuAction(msg)
		if m.pick.move(action) {
			return m, nil
		}
		switch action {
		case MenuActionQuit:
			m.quitting = true
			return m, tea.Quit
		case MenuActionScoreboard:
			m.scoreboard = true
			return m, tea.Quit
		case MenuActionSelect:
			if len(m.items) == 0 {
				return m, nil
			}
			item := m.items[m.pick.cursor]
			m.selected = &item
			return m, tea.Quit
		}
	}
	return m, nil
}

// View implements tea.Model.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	titles := make([]string, len(m.items))
	for i, item := range m.items {
		titles[i] = item.Title
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(centerStyled(titleStyle, "P L A N E T   D E F E N S E", m.width))
	b.WriteString("\n\n")
	b.WriteString(centerStyled(subtitleStyle, "Select a mode", m.width))
	b.WriteString("\n\n")
	writeList(&b, titles, m.pick.cursor, m.width)

	if len(m.items) > 0 {
		if blurb := m.items[m.pick.cursor].Blurb; blurb != "" {
			b.WriteString("\n")
			b.WriteString(centerStyled(subtitleStyle, blurb, m.width))
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(centerStyled(hintStyle, "Up/Down: Navigate  |  Enter: Select  |  Tab: Scores  |  Q: Quit", m.width))
	b.WriteString("\n")
	return b.String()
}

// Selected returns the chosen mode, or nil.
func (m MenuModel) Selected() *MenuItem {
	return m.selected
}

// IsQuitting reports whether the user quit from the menu.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// WantsScoreboard reports whether the user asked for the run history.
func (m MenuModel) WantsScoreboard() bool {
	return m.scoreboard
}

// Config returns the runtime config, updated by any resize.
func (m MenuModel) Config() core.RuntimeConfig {
	return m.config
}

func centerText(text string, width int) string {
	return padLeft(text, width) + text
}

// centerStyled styles text after centering so the padding stays plain.
func centerStyled(style lipgloss.Style, text string, width int) string {
	return padLeft(text, width) + style.Render(text)
}

func padLeft(text string, width int) string {
	if w := lipgloss.Width(text); w < width {
		return strings.Repeat(" ", (width-w)/2)
	}
	return ""
}

// MenuResult is the outcome of RunMenu. Exactly one of GameID,
// WantsScoreboard and Quit is set.
type MenuResult struct {
	GameID          string
	Config          core.RuntimeConfig
	WantsScoreboard bool
	Quit            bool
}

// RunMenu shows the mode menu until the user picks something.
func RunMenu(cfg core.RuntimeConfig) (MenuResult, error) {
	final, err := tea.NewProgram(NewMenuModel(cfg), tea.WithAltScreen()).Run()
	if err != nil {
		return MenuResult{Config: cfg}, err
	}

	m, ok := final.(MenuModel)
	if !ok {
		return MenuResult{Config: cfg, Quit: true}, nil
	}

	result := MenuResult{Config: m.Config()}
	switch {
	case m.WantsScoreboard():
		result.WantsScoreboard = true
	case m.Selected() == nil:
		result.Quit = true
	default:
		result.GameID = m.Selected().GameID
	}
	return result, nil
}
