package logging

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNopLogger(t *testing.T) {
	t.Parallel()

	logger := NewNop()
	require.NotNil(t, logger)

	// All methods must be safe no-ops, including Fatal.
	logger.Debug("debug", "k", "v")
	logger.Info("info")
	logger.Warn("warn", "k")
	logger.Error("error")
	logger.Fatal("fatal")
}
