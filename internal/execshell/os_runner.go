package execshell

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
)

const environmentEntryTemplateConstant = "%s=%s"

// OSCommandRunner launches git and gh processes through os/exec. A non-zero
// exit from the child is reported through ExecutionResult.ExitCode rather
// than as an error so callers can branch on the code.
type OSCommandRunner struct{}

// NewOSCommandRunner constructs a runner backed by the operating system.
func NewOSCommandRunner() *OSCommandRunner {
	return &OSCommandRunner{}
}

// Run starts the process described by command and waits for it to finish,
// capturing both output streams.
func (runner *OSCommandRunner) Run(executionContext context.Context, command ShellCommand) (ExecutionResult, error) {
	processHandle := exec.CommandContext(executionContext, string(command.Name), command.Details.Arguments...)
	processHandle.Dir = command.Details.WorkingDirectory
	processHandle.Env = mergedProcessEnvironment(command.Details.EnvironmentVariables)

	var standardOutputBuffer bytes.Buffer
	var standardErrorBuffer bytes.Buffer
	processHandle.Stdout = &standardOutputBuffer
	processHandle.Stderr = &standardErrorBuffer
	if len(command.Details.StandardInput) > 0 {
		processHandle.Stdin = bytes.NewReader(command.Details.StandardInput)
	}

	runError := processHandle.Run()
	if runError != nil {
		exitError := &exec.ExitError{}
		if !errors.As(runError, &exitError) {
			return ExecutionResult{}, runError
		}
		return ExecutionResult{
			StandardOutput: standardOutputBuffer.String(),
			StandardError:  standardErrorBuffer.String(),
			ExitCode:       exitError.ExitCode(),
		}, nil
	}

	return ExecutionResult{
		StandardOutput: standardOutputBuffer.String(),
		StandardError:  standardErrorBuffer.String(),
	}, nil
}

// mergedProcessEnvironment overlays the supplied variables on the parent
// environment. A nil map yields nil so os/exec inherits the parent
// environment untouched.
func mergedProcessEnvironment(environmentVariables map[string]string) []string {
	if len(environmentVariables) == 0 {
		return nil
	}
	mergedEnvironment := append([]string{}, os.Environ()...)
	for environmentKey, environmentValue := range environmentVariables {
		mergedEnvironment = append(mergedEnvironment, fmt.Sprintf(environmentEntryTemplateConstant, environmentKey, environmentValue))
	}
	return mergedEnvironment
}
