package domain

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	m "github.com/mouse-blink/gitex/internal/model"
)

// ParseRefUpdates reads git pre-receive input, one "<old> <new> <ref>" per
// line. Blank lines are ignored.
func ParseRefUpdates(r io.Reader) ([]m.RefUpdate, error) {
	var updates []m.RefUpdate

	scanner := bufio.NewScanner(r)
	lineNo := 0

	for scanner.Scan() {
		lineNo++

		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		fields := strings.Fields(line)
		if len(fields) != 3 {
			return nil, fmt.Errorf("line %d: expected \"<old> <new> <ref>\", got %q", lineNo, line)
		}

		updates = append(updates, m.RefUpdate{
			Old: m.Revision(fields[0]),
			New: m.Revision(fields[1]),
			Ref: fields[2],
		})
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read ref updates: %w", err)
	}

	return updates, nil
}
