package controller

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUI(t *testing.T) {
	cmd := &cobra.Command{}
	cmd.SetOut(&bytes.Buffer{})

	_, isTUI := NewUI(cmd, true).(*TUI)
	assert.True(t, isTUI)

	_, isSimple := NewUI(cmd, false).(*SimpleUI)
	assert.True(t, isSimple)
}

func TestIsTTY(t *testing.T) {
	assert.False(t, IsTTY(&bytes.Buffer{}))

	file, err := os.Create(filepath.Join(t.TempDir(), "out"))
	require.NoError(t, err)

	defer file.Close()

	assert.False(t, IsTTY(file))
}
