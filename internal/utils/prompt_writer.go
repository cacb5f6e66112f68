package utils

import (
	"io"
	"sync"
)

type flushable interface{ Flush() error }

// PromptWriter forwards writes to the wrapped writer and flushes it after
// each write when the writer supports flushing. Confirmation prompts go
// through it so the question reaches the terminal before the command blocks
// reading the answer from stdin.
type PromptWriter struct {
	destination io.Writer
	writeMutex  sync.Mutex
}

// NewPromptWriter wraps destination in a PromptWriter. A writer that is
// already a PromptWriter is returned unchanged.
func NewPromptWriter(destination io.Writer) io.Writer {
	if destination == nil {
		return nil
	}
	if _, alreadyWrapped := destination.(*PromptWriter); alreadyWrapped {
		return destination
	}
	return &PromptWriter{destination: destination}
}

// Write sends data to the wrapped writer and flushes it when possible.
func (promptWriter *PromptWriter) Write(data []byte) (int, error) {
	if promptWriter == nil || promptWriter.destination == nil {
		return 0, nil
	}

	promptWriter.writeMutex.Lock()
	defer promptWriter.writeMutex.Unlock()

	writtenBytes, writeError := promptWriter.destination.Write(data)
	if writeError != nil {
		return writtenBytes, writeError
	}
	if flushableDestination, supportsFlush := promptWriter.destination.(flushable); supportsFlush {
		if flushError := flushableDestination.Flush(); flushError != nil {
			return writtenBytes, flushError
		}
	}
	return writtenBytes, nil
}
