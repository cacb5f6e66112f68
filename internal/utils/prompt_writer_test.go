package utils_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/temirov/grit/internal/utils"
)

type flushRecordingWriter struct {
	buffer     bytes.Buffer
	flushCount int
}

func (writer *flushRecordingWriter) Write(data []byte) (int, error) {
	return writer.buffer.Write(data)
}

func (writer *flushRecordingWriter) Flush() error {
	writer.flushCount++
	return nil
}

func TestPromptWriterFlushesAfterEveryWrite(testInstance *testing.T) {
	destination := &flushRecordingWriter{}
	promptWriter := utils.NewPromptWriter(destination)

	writtenBytes, writeError := promptWriter.Write([]byte("Delete 2 untracked files? [y/N] "))
	require.NoError(testInstance, writeError)
	require.Equal(testInstance, 32, writtenBytes)
	require.Equal(testInstance, 1, destination.flushCount)

	_, writeError = promptWriter.Write([]byte("Proceed? [y/N] "))
	require.NoError(testInstance, writeError)
	require.Equal(testInstance, 2, destination.flushCount)
	require.Equal(testInstance, "Delete 2 untracked files? [y/N] Proceed? [y/N] ", destination.buffer.String())
}

func TestPromptWriterPassesThroughPlainWriters(testInstance *testing.T) {
	destination := &bytes.Buffer{}
	promptWriter := utils.NewPromptWriter(destination)

	_, writeError := promptWriter.Write([]byte("prompt"))
	require.NoError(testInstance, writeError)
	require.Equal(testInstance, "prompt", destination.String())
}

func TestPromptWriterDoesNotRewrapItself(testInstance *testing.T) {
	destination := &bytes.Buffer{}
	wrappedOnce := utils.NewPromptWriter(destination)
	wrappedTwice := utils.NewPromptWriter(wrappedOnce)
	require.Same(testInstance, wrappedOnce, wrappedTwice)
}

func TestPromptWriterNilDestination(testInstance *testing.T) {
	require.Nil(testInstance, utils.NewPromptWriter(nil))
}
