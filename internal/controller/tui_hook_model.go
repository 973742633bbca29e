package controller

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	m "github.com/mouse-blink/gitex/internal/model"
)

type refRow struct {
	ref    string
	span   string
	order  int
	done   bool
	result m.Result
}

// hookModel renders the progress of a pre-receive batch.
type hookModel struct {
	spinner  spinner.Model
	width    int
	threads  int
	total    int
	rows     map[string]*refRow
	summary  []m.Result
	finished bool
}

func newHookModel() hookModel {
	return hookModel{
		spinner: spinner.New(
			spinner.WithSpinner(spinner.Dot),
			spinner.WithStyle(accentStyle),
		),
		rows: make(map[string]*refRow),
	}
}

func (hm hookModel) Init() tea.Cmd {
	return hm.spinner.Tick
}

func (hm hookModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		hm.width = msg.Width
	case spinner.TickMsg:
		var cmd tea.Cmd

		hm.spinner, cmd = hm.spinner.Update(msg)

		return hm, cmd
	case concurrencyMsg:
		hm.threads = msg.threads
		hm.total = msg.count
	case startRefMsg:
		hm.rows[msg.ref] = &refRow{ref: msg.ref, span: msg.span, order: msg.order}
	case completedRefMsg:
		row, ok := hm.rows[msg.result.Ref]
		if !ok {
			row = &refRow{ref: msg.result.Ref, span: formatRange(msg.result.Range), order: len(hm.rows) + 1}
			hm.rows[msg.result.Ref] = row
		}

		row.done = true
		row.result = msg.result
	case summaryMsg:
		hm.summary = msg.results
	case doneMsg:
		hm.finished = true
		return hm, tea.Quit
	}

	return hm, nil
}

func (hm hookModel) completed() int {
	count := 0

	for _, row := range hm.rows {
		if row.done {
			count++
		}
	}

	return count
}

func (hm hookModel) orderedRows() []*refRow {
	rows := make([]*refRow, 0, len(hm.rows))
	for _, row := range hm.rows {
		rows = append(rows, row)
	}

	sort.Slice(rows, func(i, j int) bool { return rows[i].order < rows[j].order })

	return rows
}

func (hm hookModel) View() string {
	lines := []string{
		titleStyle.Render("gitex") + " " + mutedStyle.Render(fmt.Sprintf(
			"verifying %d/%d ref(s) with %d worker(s)", hm.completed(), hm.total, hm.threads,
		)),
	}

	for _, row := range hm.orderedRows() {
		lines = append(lines, hm.renderRow(row))
	}

	if hm.summary != nil {
		lines = append(lines, "", hm.renderSummary())
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...) + "\n"
}

func (hm hookModel) renderRow(row *refRow) string {
	if !row.done {
		return fmt.Sprintf("%s %s %s", hm.spinner.View(), row.ref, mutedStyle.Render(row.span))
	}

	style := statusStyle(row.result.Status)
	prefix := fmt.Sprintf("%s %s %s",
		style.Render(statusIcon(row.result.Status)),
		row.ref,
		mutedStyle.Render(row.span),
	)

	detail := resultDetail(row.result)
	if hm.width > 0 {
		detail = truncateToWidth(detail, max(hm.width-lipgloss.Width(prefix)-1, 1))
	}

	return prefix + " " + detail
}

func (hm hookModel) renderSummary() string {
	passed, failed, errored := countStatuses(hm.summary)

	parts := []string{
		passedStyle.Render(fmt.Sprintf("%d passed", passed)),
		failedStyle.Render(fmt.Sprintf("%d failed", failed)),
		errorStyle.Render(fmt.Sprintf("%d errors", errored)),
	}

	lines := []string{strings.Join(parts, mutedStyle.Render(" • "))}

	for _, result := range hm.summary {
		if result.Status == m.StatusFailed && strings.TrimSpace(result.Hints) != "" {
			lines = append(lines, renderHints(exerciseLabel(result), result.Hints))
		}
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func truncateToWidth(text string, width int) string {
	if width <= 0 {
		return ""
	}

	if lipgloss.Width(text) <= width {
		return text
	}

	const ellipsis = "…"

	maxWidth := width - lipgloss.Width(ellipsis)
	if maxWidth <= 0 {
		return ellipsis
	}

	currentWidth := 0

	result := make([]rune, 0, len(text))
	for _, r := range text {
		rWidth := lipgloss.Width(string(r))
		if currentWidth+rWidth > maxWidth {
			break
		}

		result = append(result, r)
		currentWidth += rWidth
	}

	return string(result) + ellipsis
}
