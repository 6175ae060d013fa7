package cmd

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mouse-blink/aoc2023/internal/config"
	"github.com/mouse-blink/aoc2023/internal/domain"
)

func TestViewCmd_DefaultReportsDir(t *testing.T) {
	cmd, mockWorkflow, _ := newTestRoot(t, newViewCmd())
	mockWorkflow.EXPECT().View(domain.ViewArgs{Reports: config.DefaultReportsDir}).Return(nil)

	cmd.SetArgs([]string{"view"})
	require.NoError(t, cmd.Execute())
}

func TestViewCmd_ReportsFlag(t *testing.T) {
	cmd, mockWorkflow, _ := newTestRoot(t, newViewCmd())
	mockWorkflow.EXPECT().View(domain.ViewArgs{Reports: "custom"}).Return(nil)

	cmd.SetArgs([]string{"view", "--reports", "custom"})
	require.NoError(t, cmd.Execute())
}

func TestViewCmd_PropagatesError(t *testing.T) {
	cmd, mockWorkflow, _ := newTestRoot(t, newViewCmd())
	mockWorkflow.EXPECT().View(domain.ViewArgs{Reports: config.DefaultReportsDir}).Return(errors.New("boom"))

	cmd.SetArgs([]string{"view"})
	assert.Error(t, cmd.Execute())
}

func TestNewViewCmd(t *testing.T) {
	cmd := newViewCmd()

	assert.Equal(t, "view", cmd.Use)
	assert.Equal(t, viewLongDescription, cmd.Long)
	assert.NotNil(t, cmd.Flags().Lookup("reports"))
}
