package controller

import (
	"fmt"

	m "github.com/mouse-blink/gitex/internal/model"
)

// shortRevision abbreviates full object names and leaves refs untouched.
func shortRevision(rev m.Revision) string {
	if rev.IsZero() {
		return "(new)"
	}

	if len(rev) == 40 {
		return m.CommitID(rev).Short()
	}

	return string(rev)
}

func formatRange(rng m.RevisionRange) string {
	return fmt.Sprintf("%s..%s", shortRevision(rng.Old), shortRevision(rng.New))
}

func exerciseLabel(result m.Result) string {
	if result.Exercise != "" {
		return result.Exercise
	}

	return result.Ref
}

// resultDetail is the one-line explanation of a result.
func resultDetail(result m.Result) string {
	switch result.Status {
	case m.StatusPassed:
		if result.Committer != "" {
			return fmt.Sprintf("Well done, %s!", result.Committer)
		}

		return "Well done!"
	case m.StatusFailed:
		if result.Failure != nil {
			return result.Failure.Render()
		}

		return "verification failed"
	default:
		if result.Err != nil {
			return result.Err.Error()
		}

		return "unknown error"
	}
}

func countStatuses(results []m.Result) (passed, failed, errored int) {
	for _, result := range results {
		switch result.Status {
		case m.StatusPassed:
			passed++
		case m.StatusFailed:
			failed++
		default:
			errored++
		}
	}

	return passed, failed, errored
}
