// Package ui renders a live progress display for multi-file driver runs
// (§10, ambient stack). It has no bearing on parse/elaborate semantics: it
// only observes driver.FileResult values as they complete.
package ui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"svcore/internal/driver"
	"svcore/internal/langver"
)

// Run drives files through d while rendering a live progress display, and
// returns the same results RunFiles would. It wires d.Progress itself, so
// the caller's Driver must not already have one set.
func Run(ctx context.Context, title string, d *driver.Driver, files []string, version langver.Version) ([]driver.FileResult, error) {
	events := make(chan driver.FileResult, len(files))
	d.Progress = events

	model := NewModel(title, files, events)
	program := tea.NewProgram(model)

	var results []driver.FileResult
	var runErr error
	runDone := make(chan struct{})
	go func() {
		defer close(runDone)
		defer close(events)
		results, runErr = d.RunFiles(ctx, files, version)
	}()

	_, teaErr := program.Run()
	<-runDone
	if runErr != nil {
		return results, runErr
	}
	return results, teaErr
}

type fileItem struct {
	path   string
	status string
}

type resultMsg driver.FileResult
type doneMsg struct{}

// Model is a Bubble Tea model tracking one status line per file plus an
// overall progress bar, fed by a channel of driver.FileResult values.
type Model struct {
	title   string
	results <-chan driver.FileResult
	spinner spinner.Model
	prog    progress.Model
	items   []fileItem
	index   map[string]int
	done    bool
	failed  int
	width   int
}

// NewModel builds a progress model tracking files in the given order,
// fed completion events from results. The channel should be closed once
// every file has reported, which drives the model to completion.
func NewModel(title string, files []string, results <-chan driver.FileResult) *Model {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))

	prog := progress.New(progress.WithDefaultGradient())
	prog.Width = 76

	items := make([]fileItem, 0, len(files))
	index := make(map[string]int, len(files))
	for i, f := range files {
		items = append(items, fileItem{path: f, status: "queued"})
		index[f] = i
	}
	return &Model{
		title:   title,
		results: results,
		spinner: sp,
		prog:    prog,
		items:   items,
		index:   index,
		width:   80,
	}
}

// Failed reports how many files finished with an error-severity diagnostic
// or a hard Err, once the model has observed them.
func (m *Model) Failed() int { return m.failed }

func (m *Model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.listen())
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case resultMsg:
		cmd := m.apply(driver.FileResult(msg))
		return m, tea.Batch(cmd, m.listen())
	case doneMsg:
		m.done = true
		return m, tea.Quit
	case spinner.TickMsg:
		if m.done {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case tea.WindowSizeMsg:
		if msg.Width > 0 {
			m.width = msg.Width
			m.prog.Width = msg.Width - 4
		}
		return m, nil
	case progress.FrameMsg:
		p, cmd := m.prog.Update(msg)
		m.prog = p.(progress.Model)
		return m, cmd
	}
	return m, nil
}

func (m *Model) View() string {
	if len(m.items) == 0 {
		return ""
	}
	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("7"))
	header := m.title
	if m.done {
		header = fmt.Sprintf("done: %s", header)
	} else {
		header = fmt.Sprintf("%s %s", m.spinner.View(), header)
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render(header))
	b.WriteString("\n\n")

	statusWidth := 10
	nameWidth := m.width - statusWidth - 4
	if nameWidth < 20 {
		nameWidth = 20
	}
	for _, item := range m.items {
		name := truncate(item.path, nameWidth)
		status := styleStatus(item.status).Render(fmt.Sprintf("%10s", item.status))
		b.WriteString(fmt.Sprintf("  %s %s\n", status, name))
	}

	b.WriteString("\n")
	if m.done {
		b.WriteString(m.prog.ViewAs(1.0))
	} else {
		b.WriteString(m.prog.View())
	}
	b.WriteString("\n")
	return b.String()
}

func (m *Model) listen() tea.Cmd {
	return func() tea.Msg {
		r, ok := <-m.results
		if !ok {
			return doneMsg{}
		}
		return resultMsg(r)
	}
}

func (m *Model) apply(r driver.FileResult) tea.Cmd {
	idx, ok := m.index[r.Path]
	if !ok {
		return nil
	}
	switch {
	case r.Err != nil || r.HasErrors():
		m.items[idx].status = "error"
		m.failed++
	default:
		m.items[idx].status = "done"
	}

	finished := 0
	for _, item := range m.items {
		if item.status == "done" || item.status == "error" {
			finished++
		}
	}
	pct := float64(finished) / float64(len(m.items))
	return m.prog.SetPercent(pct)
}

func styleStatus(status string) lipgloss.Style {
	switch status {
	case "done":
		return lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	case "error":
		return lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	default:
		return lipgloss.NewStyle().Foreground(lipgloss.Color("7"))
	}
}

func truncate(value string, width int) string {
	if width <= 0 {
		return value
	}
	if runewidth.StringWidth(value) <= width {
		return value
	}
	if width <= 3 {
		return runewidth.Truncate(value, width, "")
	}
	return runewidth.Truncate(value, width-3, "...")
}
