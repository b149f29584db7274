package logging

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLogrusAdapter_InvalidLevelFallsBack(t *testing.T) {
	log := NewLogrusAdapter("nonsense", "text")
	require.NotNil(t, log)

	// Must not panic and must keep working after field chaining.
	log.WithField("k", "v").Info("message")
	log.WithError(errors.New("boom")).Warn("warned")
}

func TestMockLogger_CapturesEntries(t *testing.T) {
	mock := NewMockLogger()

	mock.Info("hello", F("count", 3))
	mock.Warn("careful")

	require.Len(t, mock.Entries, 2)
	assert.True(t, mock.HasEntry("INFO", "hello"))
	assert.True(t, mock.HasEntry("WARN", "careful"))
	assert.False(t, mock.HasEntry("ERROR", "hello"))

	infos := mock.EntriesByLevel("INFO")
	require.Len(t, infos, 1)
	require.Len(t, infos[0].Fields, 1)
	assert.Equal(t, "count", infos[0].Fields[0].Key)
}

func TestMockLogger_WithFieldChaining(t *testing.T) {
	mock := NewMockLogger()

	chained := mock.WithField("debt_id", "card").(*MockLogger)
	chained.Debug("processed")

	require.Len(t, chained.Entries, 1)
	assert.Equal(t, "debt_id", chained.Entries[0].Fields[0].Key)
}

func TestNopLogger(t *testing.T) {
	log := NewNop()
	log.Debug("ignored")
	log.WithError(errors.New("x")).Error("also ignored")

	assert.Equal(t, log, OrNop(nil))
	mock := NewMockLogger()
	assert.Equal(t, Logger(mock), OrNop(mock))
}
