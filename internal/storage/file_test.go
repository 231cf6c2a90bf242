package storage

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppendAndLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "transcript.jsonl")
	r, err := NewFileRecorder(path)
	require.NoError(t, err)

	ts := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	require.NoError(t, r.Append(Event{Timestamp: ts, UserID: 42, Direction: DirUserToOperator, Text: "вопрос"}))
	require.NoError(t, r.Append(Event{Timestamp: ts, UserID: 42, Direction: DirOperatorToUser, Text: "ответ"}))

	events, err := r.Load()
	require.NoError(t, err)
	require.Len(t, events, 2)
	assert.Equal(t, DirUserToOperator, events[0].Direction)
	assert.Equal(t, "вопрос", events[0].Text)
	assert.Equal(t, int64(42), events[1].UserID)
}

func TestLoadSkipsMalformedLines(t *testing.T) {
	path := filepath.Join(t.TempDir(), "transcript.jsonl")
	r, err := NewFileRecorder(path)
	require.NoError(t, err)

	require.NoError(t, r.Append(Event{UserID: 1, Direction: DirUserToOperator, Text: "ok"}))
	f, err := os.OpenFile(path, os.O_APPEND|os.O_WRONLY, 0o644)
	require.NoError(t, err)
	_, err = f.WriteString("{broken json\n")
	require.NoError(t, err)
	require.NoError(t, f.Close())
	require.NoError(t, r.Append(Event{UserID: 2, Direction: DirUserToOperator, Text: "still ok"}))

	events, err := r.Load()
	require.NoError(t, err)
	require.Len(t, events, 2)
	assert.Equal(t, int64(2), events[1].UserID)
}
