package tourapp

import (
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/BrianJOC/tourguide/tour"
)

type model struct {
	controller *tour.Controller
	bridge     *uiBridge

	panels []Panel
	start  int

	bar    progress.Model
	width  int
	height int

	statusMsg string
	started   bool
	finished  bool
}

func newModel(cfg Config, start int) (*model, error) {
	bridge := newUIBridge(cfg.Panels)

	controller := tour.New(cfg.TourConfig,
		tour.WithHighlighter(bridge),
		tour.WithResolver(bridge),
		tour.WithMediaPlayer(bridge),
		tour.WithProgressRenderer(bridge),
		tour.WithWatcher(bridge),
		tour.WithObserver(bridge),
	)
	if err := controller.SetSteps(cfg.Steps); err != nil {
		return nil, err
	}
	if controller.Len() == 0 {
		return nil, ErrNoSteps
	}
	if start >= controller.Len() {
		start = 0
	}

	bar := progress.New(progress.WithDefaultGradient())
	bar.ShowPercentage = false

	return &model{
		controller: controller,
		bridge:     bridge,
		panels:     cfg.Panels,
		start:      start,
		bar:        bar,
		width:      100,
		height:     30,
		statusMsg:  "Press s to start the tour",
	}, nil
}

func (m *model) Init() tea.Cmd {
	return waitEventCmd(m.bridge)
}

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.bar.Width = barWidth(m.width, m.controller.Len())
		m.bridge.markMounted()
		m.controller.Refresh()
		if !m.started {
			return m, m.startTour(m.start)
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case repaintMsg:
		return m, waitEventCmd(m.bridge)

	case stepEnteredMsg:
		m.statusMsg = fmt.Sprintf("Step %d of %d", msg.index+1, m.controller.Len())
		return m, waitEventCmd(m.bridge)

	case tourEndedMsg:
		m.finished = true
		m.started = false
		if msg.immediate {
			m.statusMsg = "Tour finished"
		} else {
			m.statusMsg = "Tour closed"
		}
		return m, waitEventCmd(m.bridge)
	}
	return m, nil
}

func (m *model) startTour(index int) tea.Cmd {
	if err := m.controller.StartFrom(index); err != nil {
		m.statusMsg = err.Error()
		return nil
	}
	m.started = true
	m.finished = false
	m.statusMsg = fmt.Sprintf("Step %d of %d", index+1, m.controller.Len())
	return nil
}

func (m *model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC:
		return m, tea.Quit
	case tea.KeyEsc:
		m.controller.HandleKey(tour.KeyEscape)
		return m, nil
	case tea.KeyRight:
		m.controller.HandleKey(tour.KeyArrowRight)
		return m, nil
	case tea.KeyLeft:
		m.controller.HandleKey(tour.KeyArrowLeft)
		return m, nil
	}

	if msg.Type != tea.KeyRunes || len(msg.Runes) != 1 {
		return m, nil
	}
	switch msg.Runes[0] {
	case 'q':
		return m, tea.Quit
	case 's', 'r':
		if !m.started {
			return m, m.startTour(0)
		}
	case 'n':
		m.controller.MoveNext()
	case 'p':
		m.controller.MovePrevious()
	case ' ':
		m.controller.SetAutoplay(!m.controller.AutoplayEnabled())
	case 'c':
		m.copyPopover()
	}
	return m, nil
}

func (m *model) copyPopover() {
	el, ok := m.controller.HighlightedElement()
	if !ok || el.Step.Popover() == nil {
		m.statusMsg = "Nothing to copy"
		return
	}
	pop := el.Step.Popover()
	if err := clipboard.WriteAll(pop.Title + "\n" + pop.Description); err != nil {
		m.statusMsg = "Clipboard unavailable"
		return
	}
	m.statusMsg = "Copied step text"
}

func (m *model) View() string {
	snap := m.bridge.snapshot()

	header := m.renderHeader(snap)
	body := m.renderPanels(snap)
	progressRow := m.renderProgressRow(snap)
	popover := m.renderPopover(snap)
	status := statusBarStyle.Render(m.statusMsg)
	footer := footerStyle.Render("←/→ or n/p move • Space play/pause • c copy • Esc close • q quit")

	return lipgloss.JoinVertical(
		lipgloss.Left,
		header,
		body,
		progressRow,
		popover,
		status,
		footer,
	)
}

func (m *model) renderHeader(snap bridgeSnapshot) string {
	title := titleStyle.Render("Tour Guide")
	mode := "Manual"
	if snap.autoplayOn {
		mode = "Autoplay"
	}
	state := subtitleStyle.Render(fmt.Sprintf(
		"%s • %s", statusDisplay(m.controller.State()), mode))
	return lipgloss.JoinHorizontal(lipgloss.Top, title, "  ", state)
}

func (m *model) renderPanels(snap bridgeSnapshot) string {
	tourActive := snap.highlightedID != ""
	rendered := make([]string, 0, len(m.panels))
	for _, p := range m.panels {
		style := panelStyle
		switch {
		case p.ID == snap.highlightedID:
			style = highlightedPanelStyle
		case tourActive:
			style = dimmedPanelStyle
		}
		content := panelTitleStyle.Render(p.Title) + "\n" + p.Body
		rendered = append(rendered, style.Render(content))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, rendered...)
}

func (m *model) renderProgressRow(snap bridgeSnapshot) string {
	count := m.controller.Len()
	if count == 0 {
		return ""
	}
	bars := make([]string, 0, count)
	for i := 0; i < count; i++ {
		bars = append(bars, m.bar.ViewAs(snap.fills[i]/100))
	}
	return progressRowStyle.Render(strings.Join(bars, " "))
}

func (m *model) renderPopover(snap bridgeSnapshot) string {
	if snap.popover == nil {
		return popoverStyle.Render("No active step")
	}

	var b strings.Builder
	b.WriteString(popoverTitleStyle.Render(snap.popover.Title))
	b.WriteString("\n")
	b.WriteString(snap.popover.Description)

	cursor := m.controller.Cursor()
	if state, ok := snap.mediaState[cursor]; ok && state == "playing" {
		b.WriteString("\n")
		b.WriteString(mediaStyle.Render("♪ narration playing"))
	}
	if snap.popover.ShowButtons {
		b.WriteString("\n")
		b.WriteString(buttonHintStyle.Render("‹ previous   next ›"))
	}
	return popoverStyle.Render(b.String())
}

func barWidth(total, steps int) int {
	if steps == 0 {
		return 10
	}
	w := (total - 2*steps) / steps
	if w < 6 {
		w = 6
	}
	if w > 24 {
		w = 24
	}
	return w
}

var titleCase = cases.Title(language.English)

func statusDisplay(s tour.State) string {
	return titleCase.String(s.String())
}

// ---- Styling helpers ----

var (
	titleStyle            = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#E0AAFF"))
	subtitleStyle         = lipgloss.NewStyle().Foreground(lipgloss.Color("#94A3B8"))
	panelStyle            = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("#4C566A")).Padding(0, 1).Width(28)
	highlightedPanelStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("#A78BFA")).Padding(0, 1).Width(28).Bold(true)
	dimmedPanelStyle      = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("#2E3440")).Padding(0, 1).Width(28).Faint(true)
	panelTitleStyle       = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#FDE047"))
	progressRowStyle      = lipgloss.NewStyle().Padding(0, 1).MarginTop(1)
	popoverStyle          = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("#7C3AED")).Padding(0, 1).MarginTop(1)
	popoverTitleStyle     = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#E0E7FF"))
	mediaStyle            = lipgloss.NewStyle().Foreground(lipgloss.Color("#34D399"))
	buttonHintStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("#94A3B8"))
	statusBarStyle        = lipgloss.NewStyle().Bold(true).Padding(0, 1).Background(lipgloss.Color("#312E81")).Foreground(lipgloss.Color("#E0E7FF"))
	footerStyle           = lipgloss.NewStyle().Foreground(lipgloss.Color("#94A3B8")).Padding(0, 1).MarginTop(1)
)
