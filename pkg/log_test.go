package pkg

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

func TestLogLevelFromString(t *testing.T) {
	level, err := LogLevelFromString("DEBUG")
	require.NoError(t, err)
	require.Equal(t, zerolog.DebugLevel, level)

	_, err = LogLevelFromString("bogus")
	require.Error(t, err)
}

func TestDefaultLogger(t *testing.T) {
	require.Equal(t, zerolog.WarnLevel, DefaultLogger().GetLevel())
}
