package controller

import (
	"bytes"
	"fmt"
	"strings"
	"sync"

	m "github.com/mouse-blink/gitex/internal/model"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

// SimpleUI implements UI using cobra Command's output.
type SimpleUI struct {
	cmd *cobra.Command
	mu  sync.Mutex
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command) *SimpleUI {
	return &SimpleUI{cmd: cmd}
}

// Start initializes the UI.
func (s *SimpleUI) Start() error {
	return nil
}

// Close finalizes the UI.
func (s *SimpleUI) Close() {
}

// Wait returns immediately; plain output is written synchronously.
func (s *SimpleUI) Wait() {
}

// DisplayResult prints the outcome of a single verification.
func (s *SimpleUI) DisplayResult(result m.Result) {
	label := exerciseLabel(result)

	switch result.Status {
	case m.StatusPassed:
		s.printf("Exercise %s passed. %s\n", label, resultDetail(result))
	case m.StatusFailed:
		s.printf("Exercise %s failed: %s\n", label, resultDetail(result))
		s.printHints(label, result.Hints)
	default:
		s.printf("Exercise %s could not be verified: %s\n", label, resultDetail(result))
	}

	if result.ShortInfo != "" {
		s.printf("Task: %s\n", result.ShortInfo)
	}
}

// DisplayConcurrencyInfo shows how many refs are verified and by how many workers.
func (s *SimpleUI) DisplayConcurrencyInfo(threads int, count int) {
	s.printf("Verifying %d ref(s) with %d worker(s)\n", count, threads)
}

// DisplayStartingRef announces a ref verification.
func (s *SimpleUI) DisplayStartingRef(update m.RefUpdate) {
	s.printf("Verifying %s (%s)\n", update.Ref, formatRange(update.Range()))
}

// DisplayCompletedRef shows the status a ref ended in.
func (s *SimpleUI) DisplayCompletedRef(result m.Result) {
	s.printf("Completed %s -> %s\n", result.Ref, result.Status)
}

// DisplaySummary prints a table of all hook results followed by hints for failures.
func (s *SimpleUI) DisplaySummary(results []m.Result) {
	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Ref", "Exercise", "Status", "Details"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetAutoWrapText(false)

	for _, result := range results {
		table.Append([]string{result.Ref, result.Exercise, string(result.Status), resultDetail(result)})
	}

	passed, failed, errored := countStatuses(results)
	table.SetFooter([]string{
		fmt.Sprintf("Total %d", len(results)),
		fmt.Sprintf("Passed %d", passed),
		fmt.Sprintf("Failed %d", failed),
		fmt.Sprintf("Errors %d", errored),
	})

	table.Render()
	s.printf("\n%s", tableBuffer.String())

	for _, result := range results {
		if result.Status == m.StatusFailed {
			s.printHints(exerciseLabel(result), result.Hints)
		}
	}
}

// DisplayExercises prints the registered exercises as a table.
func (s *SimpleUI) DisplayExercises(exercises []m.Exercise) error {
	if len(exercises) == 0 {
		s.printf("No exercises registered\n")
		return nil
	}

	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Exercise", "Description", "Hints"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetAutoWrapText(false)
	table.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_LEFT, tablewriter.ALIGN_CENTER})

	for _, exercise := range exercises {
		hints := "no"
		if exercise.HasHints {
			hints = "yes"
		}

		table.Append([]string{exercise.Name, exercise.ShortInfo, hints})
	}

	table.SetFooter([]string{fmt.Sprintf("Total %d", len(exercises)), "", ""})
	table.Render()
	s.printf("%s", tableBuffer.String())

	return nil
}

// DisplayHints prints the hint text of an exercise.
func (s *SimpleUI) DisplayHints(name string, text string, found bool) {
	if !found {
		s.printf("No hints available for %s\n", name)
		return
	}

	s.printHints(name, text)
}

func (s *SimpleUI) printHints(name, text string) {
	if strings.TrimSpace(text) == "" {
		return
	}

	s.printf("Hints for %s:\n%s\n", name, strings.TrimRight(text, "\n"))
}

func (s *SimpleUI) printf(format string, args ...interface{}) {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, _ = fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
}
