package controller

import (
	"fmt"
	"io"
	"strings"
	"sync"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	m "github.com/mouse-blink/gitex/internal/model"
)

// TUI implements UI with lipgloss styling and a Bubble Tea program that
// shows live progress of hook runs.
type TUI struct {
	output io.Writer

	mu      sync.Mutex
	program *tea.Program
	done    chan struct{}
	started int
}

// NewTUI creates a new TUI.
func NewTUI(output io.Writer) *TUI {
	return &TUI{output: output}
}

// Start launches the progress program.
func (t *TUI) Start() error {
	return t.startWithModel(newHookModel())
}

func (t *TUI) startWithModel(model tea.Model) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.program != nil {
		return fmt.Errorf("ui already started")
	}

	program := tea.NewProgram(model, tea.WithOutput(t.output), tea.WithInput(nil))
	done := make(chan struct{})

	go func() {
		defer close(done)

		_, _ = program.Run()
	}()

	t.program = program
	t.done = done
	t.started = 0

	return nil
}

// send delivers msg to the running program; it is a no-op when none runs.
func (t *TUI) send(msg tea.Msg) {
	t.mu.Lock()
	program := t.program
	t.mu.Unlock()

	if program != nil {
		program.Send(msg)
	}
}

// Close asks the progress program to render its final view and exit.
func (t *TUI) Close() {
	t.send(doneMsg{})
}

// Wait blocks until the progress program has exited.
func (t *TUI) Wait() {
	t.mu.Lock()
	done := t.done
	t.mu.Unlock()

	if done == nil {
		return
	}

	<-done

	t.mu.Lock()
	t.program = nil
	t.done = nil
	t.mu.Unlock()
}

// DisplayResult renders the outcome of a single verification.
func (t *TUI) DisplayResult(result m.Result) {
	var b strings.Builder

	style := statusStyle(result.Status)
	b.WriteString(style.Render(fmt.Sprintf("%s %s %s", statusIcon(result.Status), exerciseLabel(result), result.Status)))
	b.WriteString("\n")

	if result.ShortInfo != "" {
		b.WriteString(mutedStyle.Render(result.ShortInfo))
		b.WriteString("\n")
	}

	b.WriteString(resultDetail(result))
	b.WriteString("\n")

	if result.Status == m.StatusFailed && strings.TrimSpace(result.Hints) != "" {
		b.WriteString(renderHints(exerciseLabel(result), result.Hints))
		b.WriteString("\n")
	}

	_, _ = fmt.Fprint(t.output, b.String())
}

// DisplayConcurrencyInfo shows how many refs are verified and by how many workers.
func (t *TUI) DisplayConcurrencyInfo(threads int, count int) {
	t.send(concurrencyMsg{threads: threads, count: count})
}

// DisplayStartingRef adds a running row for the ref.
func (t *TUI) DisplayStartingRef(update m.RefUpdate) {
	t.mu.Lock()
	t.started++
	order := t.started
	t.mu.Unlock()

	t.send(startRefMsg{ref: update.Ref, span: formatRange(update.Range()), order: order})
}

// DisplayCompletedRef marks the ref row with its status.
func (t *TUI) DisplayCompletedRef(result m.Result) {
	t.send(completedRefMsg{result: result})
}

// DisplaySummary hands the ordered results to the progress program.
func (t *TUI) DisplaySummary(results []m.Result) {
	t.send(summaryMsg{results: results})
}

// DisplayExercises renders the registered exercises.
func (t *TUI) DisplayExercises(exercises []m.Exercise) error {
	if len(exercises) == 0 {
		_, _ = fmt.Fprintln(t.output, "No exercises registered")
		return nil
	}

	width := 0
	for _, exercise := range exercises {
		width = max(width, lipgloss.Width(exercise.Name))
	}

	nameStyle := accentStyle.Width(width)
	lines := []string{titleStyle.Render(fmt.Sprintf("gitex exercises (%d)", len(exercises)))}

	for _, exercise := range exercises {
		marker := " "
		if exercise.HasHints {
			marker = "?"
		}

		lines = append(lines, fmt.Sprintf("%s %s  %s", mutedStyle.Render(marker), nameStyle.Render(exercise.Name), exercise.ShortInfo))
	}

	lines = append(lines, mutedStyle.Render("? hints available: gitex hints <exercise>"))

	_, _ = fmt.Fprintln(t.output, lipgloss.JoinVertical(lipgloss.Left, lines...))

	return nil
}

// DisplayHints renders the hint text of an exercise.
func (t *TUI) DisplayHints(name string, text string, found bool) {
	if !found {
		_, _ = fmt.Fprintln(t.output, mutedStyle.Render("No hints available for "+name))
		return
	}

	_, _ = fmt.Fprintln(t.output, renderHints(name, text))
}

func renderHints(name, text string) string {
	return hintBoxStyle.Render(
		lipgloss.JoinVertical(lipgloss.Left,
			titleStyle.Render("Hints for "+name),
			strings.TrimRight(text, "\n"),
		),
	)
}
