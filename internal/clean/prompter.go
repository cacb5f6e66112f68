package clean

import (
	"bufio"
	"io"
	"strings"
)

const (
	shortAffirmativeResponseConstant = "y"
	longAffirmativeResponseConstant  = "yes"
)

// IOConfirmationPrompter reads confirmation responses from an io.Reader.
//
// Responses other than y or yes (case-insensitive) decline the prompt, and a
// closed input stream counts as a decline.
type IOConfirmationPrompter struct {
	reader *bufio.Reader
	writer io.Writer
}

// NewIOConfirmationPrompter constructs a prompter from the provided reader and writer.
func NewIOConfirmationPrompter(input io.Reader, output io.Writer) *IOConfirmationPrompter {
	return &IOConfirmationPrompter{reader: bufio.NewReader(input), writer: output}
}

// Confirm writes the prompt and interprets the next input line.
func (prompter *IOConfirmationPrompter) Confirm(prompt string) (bool, error) {
	if prompter.writer != nil {
		if _, writeError := io.WriteString(prompter.writer, prompt); writeError != nil {
			return false, writeError
		}
	}

	response, readError := prompter.reader.ReadString('\n')
	if readError != nil && readError != io.EOF {
		return false, readError
	}

	switch strings.TrimSpace(strings.ToLower(response)) {
	case shortAffirmativeResponseConstant, longAffirmativeResponseConstant:
		return true, nil
	default:
		return false, nil
	}
}
