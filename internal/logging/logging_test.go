package logging

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewDefaults(t *testing.T) {
	logger, err := New(Config{})
	require.NoError(t, err)
	require.NotNil(t, logger)
}

func TestNewJSON(t *testing.T) {
	logger, err := New(Config{Level: "debug", Format: "json"})
	require.NoError(t, err)
	require.NotNil(t, logger)
}

func TestNewInvalidLevel(t *testing.T) {
	_, err := New(Config{Level: "verbose"})
	require.Error(t, err)
}

func TestNewInvalidFormat(t *testing.T) {
	_, err := New(Config{Format: "xml"})
	require.Error(t, err)
}
