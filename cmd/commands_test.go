package cmd

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mouse-blink/gitex/internal/config"
	"github.com/mouse-blink/gitex/internal/domain"
	domainmocks "github.com/mouse-blink/gitex/internal/domain/mocks"
	m "github.com/mouse-blink/gitex/internal/model"
)

const (
	oldSha = "1111111111111111111111111111111111111111"
	newSha = "2222222222222222222222222222222222222222"
)

func TestVerifyCmd(t *testing.T) {
	mockWorkflow := domainmocks.NewMockWorkflow(t)
	resetWiring(t, mockWorkflow)

	mockWorkflow.EXPECT().Verify(domain.VerifyArgs{
		Exercise: "fix-typo",
		Old:      m.Revision(oldSha),
		New:      m.Revision(newSha),
	}).Return(nil)

	cmd := newTestRootCmd(newVerifyCmd)
	cmd.SetArgs([]string{"verify", "fix-typo", oldSha, newSha})

	require.NoError(t, cmd.Execute())
}

func TestVerifyCmd_Failure(t *testing.T) {
	mockWorkflow := domainmocks.NewMockWorkflow(t)
	resetWiring(t, mockWorkflow)

	mockWorkflow.EXPECT().Verify(domain.VerifyArgs{
		Exercise: "FixTypo",
		Old:      m.Revision(oldSha),
		New:      m.Revision(newSha),
	}).Return(domain.ErrVerificationFailed)

	cmd := newTestRootCmd(newVerifyCmd)
	cmd.SetArgs([]string{"verify", "FixTypo", oldSha, newSha})

	require.ErrorIs(t, cmd.Execute(), domain.ErrVerificationFailed)
}

func TestVerifyCmd_RequiresRange(t *testing.T) {
	mockWorkflow := domainmocks.NewMockWorkflow(t)
	resetWiring(t, mockWorkflow)

	cmd := newTestRootCmd(newVerifyCmd)
	cmd.SetArgs([]string{"verify", "fix-typo", newSha})

	require.Error(t, cmd.Execute())
}

func TestHookCmd(t *testing.T) {
	input := strings.Join([]string{
		oldSha + " " + newSha + " refs/heads/fix-typo",
		"",
		string(m.ZeroRevision) + " " + newSha + " refs/heads/master",
	}, "\n")

	t.Run("passes parsed updates and flag parallelism", func(t *testing.T) {
		mockWorkflow := domainmocks.NewMockWorkflow(t)
		resetWiring(t, mockWorkflow)

		mockWorkflow.EXPECT().Hook(domain.HookArgs{
			Updates: []m.RefUpdate{
				{Old: oldSha, New: newSha, Ref: "refs/heads/fix-typo"},
				{Old: m.ZeroRevision, New: newSha, Ref: "refs/heads/master"},
			},
			Threads: 3,
		}).Return(nil)

		cmd := newTestRootCmd(newHookCmd)
		cmd.SetIn(strings.NewReader(input))
		cmd.SetArgs([]string{"hook", "--parallel", "3"})

		require.NoError(t, cmd.Execute())
	})

	t.Run("falls back to configured parallelism", func(t *testing.T) {
		mockWorkflow := domainmocks.NewMockWorkflow(t)
		resetWiring(t, mockWorkflow)
		settings = &config.Config{Parallel: 5}

		mockWorkflow.EXPECT().Hook(domain.HookArgs{
			Updates: []m.RefUpdate{{Old: oldSha, New: newSha, Ref: "refs/heads/fix-typo"}},
			Threads: 5,
		}).Return(nil)

		cmd := newTestRootCmd(newHookCmd)
		cmd.SetIn(strings.NewReader(oldSha + " " + newSha + " refs/heads/fix-typo\n"))
		cmd.SetArgs([]string{"hook"})

		require.NoError(t, cmd.Execute())
	})

	t.Run("rejects malformed input", func(t *testing.T) {
		mockWorkflow := domainmocks.NewMockWorkflow(t)
		resetWiring(t, mockWorkflow)

		cmd := newTestRootCmd(newHookCmd)
		cmd.SetIn(strings.NewReader("not a ref update\n"))
		cmd.SetArgs([]string{"hook"})

		err := cmd.Execute()
		require.ErrorContains(t, err, "line 1")
	})
}

func TestListCmd(t *testing.T) {
	mockWorkflow := domainmocks.NewMockWorkflow(t)
	resetWiring(t, mockWorkflow)

	mockWorkflow.EXPECT().List().Return(nil)

	cmd := newTestRootCmd(newListCmd)
	cmd.SetArgs([]string{"list"})

	require.NoError(t, cmd.Execute())
}

func TestHintsCmd(t *testing.T) {
	mockWorkflow := domainmocks.NewMockWorkflow(t)
	resetWiring(t, mockWorkflow)

	mockWorkflow.EXPECT().Hints(domain.HintsArgs{Exercise: "split-commit"}).Return(nil)

	cmd := newTestRootCmd(newHintsCmd)
	cmd.SetArgs([]string{"hints", "split-commit"})

	require.NoError(t, cmd.Execute())
}

func TestNewSubcommands(t *testing.T) {
	assert.Equal(t, "verify <exercise> <old-revision> <new-revision>", newVerifyCmd().Use)
	assert.Equal(t, "hook", newHookCmd().Use)
	assert.Equal(t, "list", newListCmd().Use)
	assert.Equal(t, "hints <exercise>", newHintsCmd().Use)
	assert.NotNil(t, newHookCmd().Flags().Lookup("parallel"))
}
