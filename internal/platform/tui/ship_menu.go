package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/planet-defense/internal/config"
	"github.com/vovakirdan/planet-defense/internal/games/defense"
)

var shipBlurbs = [config.ShipClassCount]string{
	config.ShipInterceptor: "fast and agile, fragile hull",
	config.ShipCruiser:     "balanced all-rounder",
	config.ShipJuggernaut:  "slow, armored, heavy guns",
}

// ShipSelectModel lets users choose a ship class before a session starts.
type ShipSelectModel struct {
	classes   []config.ShipClass
	stats     []defense.ShipStats
	pick      picker
	width     int
	height    int
	keyMapper *KeyMapper
	chosen    bool
	quitting  bool
	back      bool
}

// NewShipSelectModel creates the picker with the cursor on initial. Stats
// shown are derived from cfg.
func NewShipSelectModel(cfg config.ShipConfig, initial config.ShipClass, width, height int) ShipSelectModel {
	classes := config.ShipClasses()
	m := ShipSelectModel{
		classes:   classes,
		stats:     make([]defense.ShipStats, len(classes)),
		pick:      picker{n: len(classes)},
		width:     width,
		height:    height,
		keyMapper: NewKeyMapper(),
	}
	for i, c := range classes {
		m.stats[i] = defense.NewShipStats(cfg, c)
		if c == initial {
			m.pick.cursor = i
		}
	}
	return m
}

// Init initializes the model.
func (m ShipSelectModel) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m ShipSelectModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height

	case tea.KeyMsg:
		action := m.keyMapper.MapKeyToMenuAction(msg)
		if m.pick.move(action) {
			return m, nil
		}
		switch action {
		case MenuActionQuit:
			m.quitting = true
			return m, tea.Quit
		case MenuActionSelect:
			m.chosen = true
			return m, tea.Quit
		case MenuActionBack:
			m.back = true
			return m, tea.Quit
		}
	}
	return m, nil
}

// View renders the class list with the stats of each class.
func (m ShipSelectModel) View() string {
	if m.quitting || m.chosen || m.back {
		return ""
	}

	lines := make([]string, len(m.classes))
	for i, c := range m.classes {
		s := m.stats[i]
		lines[i] = fmt.Sprintf("%-12s hp %3d  speed %.2f  reload %2d  dmg %d",
			c, s.MaxHealth, s.MaxSpeed, s.Cooldown, s.Damage)
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(centerStyled(titleStyle, "S E L E C T   S H I P", m.width))
	b.WriteString("\n\n")
	writeList(&b, lines, m.pick.cursor, m.width)
	b.WriteString("\n")
	b.WriteString(centerStyled(subtitleStyle, shipBlurbs[m.Selected()], m.width))
	b.WriteString("\n\n")
	b.WriteString(centerStyled(hintStyle, "Enter: Launch  |  Esc: Back  |  Q: Quit", m.width))
	b.WriteString("\n")
	return b.String()
}

// Selected returns the highlighted class.
func (m ShipSelectModel) Selected() config.ShipClass {
	return m.classes[m.pick.cursor]
}

// Chosen reports whether the user confirmed a class.
func (m ShipSelectModel) Chosen() bool { return m.chosen }

// WentBack reports whether the user asked for the previous menu.
func (m ShipSelectModel) WentBack() bool { return m.back }

// IsQuitting reports whether the user asked to quit.
func (m ShipSelectModel) IsQuitting() bool { return m.quitting }

// ShipSelection is the outcome of RunShipSelect.
type ShipSelection struct {
	Class config.ShipClass
	Back  bool
	Quit  bool
}

// RunShipSelect runs the picker in its own program.
func RunShipSelect(cfg config.ShipConfig, initial config.ShipClass, width, height int) (ShipSelection, error) {
	p := tea.NewProgram(NewShipSelectModel(cfg, initial, width, height), tea.WithAltScreen())
	final, err := p.Run()
	if err != nil {
		return ShipSelection{Quit: true}, err
	}
	m, ok := final.(ShipSelectModel)
	if !ok {
		return ShipSelection{Quit: true}, nil
	}
	return ShipSelection{
		Class: m.Selected(),
		Back:  m.WentBack(),
		Quit:  m.IsQuitting() || (!m.Chosen() && !m.WentBack()),
	}, nil
}
