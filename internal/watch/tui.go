// Package watch renders a live feed of navigation events collected from
// the panehop event socket.
package watch

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/timvw/panehop/internal/events"
)

type tickMsg struct{}

// TUI runs the interactive navigation-event viewer.
type TUI struct {
	Store           *events.Store
	SocketPath      string
	RefreshInterval time.Duration // 0 disables auto-refresh
	ThemeName       string
}

// model implements tea.Model.
type tuiModel struct {
	store           *events.Store
	socketPath      string
	refreshInterval time.Duration

	rows    []events.Event
	spinner spinner.Model

	themeName string
	styles    styles

	width  int
	height int
}

func (t *TUI) Run(ctx context.Context) error {
	sp := spinner.New()
	sp.Spinner = spinner.Dot

	m := &tuiModel{
		store:           t.Store,
		socketPath:      t.SocketPath,
		refreshInterval: t.RefreshInterval,
		spinner:         sp,
		themeName:       t.ThemeName,
		styles:          newStyles(ThemeByName(t.ThemeName)),
	}
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := p.Run()
	return err
}

func (m *tuiModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.scheduleTick())
}

// scheduleTick returns a tea.Cmd that sends a tickMsg after the refresh
// interval. Returns nil if auto-refresh is disabled (interval <= 0).
func (m *tuiModel) scheduleTick() tea.Cmd {
	if m.refreshInterval <= 0 {
		return nil
	}
	return tea.Tick(m.refreshInterval, func(time.Time) tea.Msg {
		return tickMsg{}
	})
}

func (m *tuiModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tickMsg:
		m.rows = m.store.Snapshot(time.Now())
		return m, m.scheduleTick()

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "t":
			m.toggleTheme()
			return m, nil
		case "r":
			m.rows = m.store.Snapshot(time.Now())
			return m, nil
		}
		return m, nil

	default:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}
}

func (m *tuiModel) toggleTheme() {
	if m.themeName == "light" {
		m.themeName = "dark"
	} else {
		m.themeName = "light"
	}
	m.styles = newStyles(ThemeByName(m.themeName))
}

func (m *tuiModel) View() string {
	var b strings.Builder

	b.WriteString(m.styles.title.Render("panehop watch"))
	b.WriteString(m.styles.dim.Render(fmt.Sprintf("  %s", m.socketPath)))
	b.WriteString("\n\n")

	if len(m.rows) == 0 {
		b.WriteString(m.spinner.View())
		b.WriteString(m.styles.dim.Render(" waiting for navigation events..."))
		b.WriteString("\n")
	} else {
		b.WriteString(m.styles.header.Render(fmt.Sprintf("%-8s  %-10s  %-8s  %-5s  %-9s  %s",
			"TIME", "HOST", "MUX", "DIR", "ROUTE", "FOCUS")))
		b.WriteString("\n")

		limit := m.visibleRows()
		for i, e := range m.rows {
			if i >= limit {
				break
			}
			b.WriteString(m.renderRow(e))
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(m.styles.status.Render(fmt.Sprintf("%d events  •  q quit  t theme  r refresh", len(m.rows))))
	return b.String()
}

// visibleRows returns how many event rows fit in the current height,
// leaving room for the title, header, and status lines.
func (m *tuiModel) visibleRows() int {
	if m.height <= 0 {
		return 20
	}
	rows := m.height - 6
	if rows < 1 {
		rows = 1
	}
	return rows
}

func (m *tuiModel) renderRow(e events.Event) string {
	routeStyle := m.styles.text
	switch e.Route {
	case events.RouteInternal:
		routeStyle = m.styles.internal
	case events.RouteForwarded:
		routeStyle = m.styles.forwarded
	case events.RouteDropped:
		routeStyle = m.styles.dropped
	}

	focus := ""
	if e.From != "" {
		if e.To != "" && e.To != e.From {
			focus = fmt.Sprintf("%s → %s", e.From, e.To)
		} else {
			focus = e.From
		}
	}

	return fmt.Sprintf("%s  %s  %s  %s  %s  %s",
		m.styles.dim.Render(fmt.Sprintf("%-8s", e.TS.Local().Format("15:04:05"))),
		m.styles.text.Render(fmt.Sprintf("%-10s", truncate(e.Host, 10))),
		m.styles.dim.Render(fmt.Sprintf("%-8s", truncate(e.Mux, 8))),
		m.styles.text.Render(fmt.Sprintf("%-5s", directionArrow(e.Direction))),
		routeStyle.Render(fmt.Sprintf("%-9s", e.Route)),
		m.styles.dim.Render(focus),
	)
}

func directionArrow(dir string) string {
	switch dir {
	case "left":
		return "←"
	case "right":
		return "→"
	case "up":
		return "↑"
	case "down":
		return "↓"
	default:
		return dir
	}
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	if n <= 1 {
		return s[:n]
	}
	return s[:n-1] + "…"
}
