package controller

import m "github.com/mouse-blink/gitex/internal/model"

// Message types.
type concurrencyMsg struct {
	threads int
	count   int
}

type startRefMsg struct {
	ref   string
	span  string
	order int
}

type completedRefMsg struct {
	result m.Result
}

type summaryMsg struct {
	results []m.Result
}

type doneMsg struct{}
