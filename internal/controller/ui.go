// Package controller provides output adapters for displaying verification results.
package controller

import (
	m "github.com/mouse-blink/gitex/internal/model"
)

// UI defines how verification progress and results are shown.
// Implementations can use different output methods (simple text, TUI, etc).
// The Display*Ref methods may be called from several goroutines at once.
type UI interface {
	Start() error
	Close()
	Wait() // Wait for the UI to finish rendering
	DisplayResult(result m.Result)
	DisplayConcurrencyInfo(threads int, count int)
	DisplayStartingRef(update m.RefUpdate)
	DisplayCompletedRef(result m.Result)
	DisplaySummary(results []m.Result)
	DisplayExercises(exercises []m.Exercise) error
	DisplayHints(name string, text string, found bool)
}
