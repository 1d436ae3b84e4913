package dialogs_test

import (
	"bytes"
	"errors"
	"testing"

	"github.com/sghaida/ovm/dialogs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestConsole_ShowMessage(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	c := dialogs.NewConsole(dialogs.WithWriter(&buf))

	require.NoError(t, c.ShowMessage("Update available", "Version 1.2 is ready to install."))
	out := buf.String()
	assert.Contains(t, out, "Update available")
	assert.Contains(t, out, "Version 1.2 is ready to install.")
}

func TestConsole_ShowError(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	c := dialogs.NewConsole(dialogs.WithWriter(&buf))

	require.NoError(t, c.ShowError("Sync failed", errors.New("network unreachable")))
	out := buf.String()
	assert.Contains(t, out, "Sync failed")
	assert.Contains(t, out, "network unreachable")
}

func TestConsole_MirrorsIntoLogger(t *testing.T) {
	t.Parallel()

	core, logs := observer.New(zap.InfoLevel)
	var buf bytes.Buffer
	c := dialogs.NewConsole(dialogs.WithWriter(&buf), dialogs.WithLogger(zap.New(core)))

	require.NoError(t, c.ShowMessage("Hello", "world"))
	require.NoError(t, c.ShowError("Oops", errors.New("boom")))

	assert.Equal(t, 1, logs.FilterMessage("message shown").Len())
	assert.Equal(t, 1, logs.FilterMessage("error shown").Len())
}
