// Package pathutils normalizes filesystem paths supplied through flags and configuration.
package pathutils

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

const (
	workingDirectoryLookupErrorTemplateConstant  = "unable to determine working directory: %w"
	workingDirectoryResolveErrorTemplateConstant = "unable to resolve directory %q: %w"
)

// WorkingDirectoryResolver normalizes the directory grit commands operate in.
type WorkingDirectoryResolver struct {
	homeExpander *HomeExpander
}

// NewWorkingDirectoryResolver constructs a resolver with operating system home lookup.
func NewWorkingDirectoryResolver() *WorkingDirectoryResolver {
	return NewWorkingDirectoryResolverWithExpander(nil)
}

// NewWorkingDirectoryResolverWithExpander constructs a resolver using the provided expander.
func NewWorkingDirectoryResolverWithExpander(homeExpander *HomeExpander) *WorkingDirectoryResolver {
	resolvedExpander := homeExpander
	if resolvedExpander == nil {
		resolvedExpander = NewHomeExpander()
	}
	return &WorkingDirectoryResolver{homeExpander: resolvedExpander}
}

// Resolve converts the candidate into an absolute directory path.
//
// A blank candidate resolves to the current working directory. A leading
// tilde expands to the user's home directory before the path is cleaned.
func (resolver *WorkingDirectoryResolver) Resolve(candidateDirectory string) (string, error) {
	trimmedCandidate := strings.TrimSpace(candidateDirectory)
	if len(trimmedCandidate) == 0 {
		workingDirectory, workingDirectoryError := os.Getwd()
		if workingDirectoryError != nil {
			return "", fmt.Errorf(workingDirectoryLookupErrorTemplateConstant, workingDirectoryError)
		}
		return workingDirectory, nil
	}

	expandedCandidate := resolver.expander().Expand(trimmedCandidate)
	absolutePath, absoluteError := filepath.Abs(filepath.Clean(expandedCandidate))
	if absoluteError != nil {
		return "", fmt.Errorf(workingDirectoryResolveErrorTemplateConstant, candidateDirectory, absoluteError)
	}

	return absolutePath, nil
}

func (resolver *WorkingDirectoryResolver) expander() *HomeExpander {
	if resolver == nil || resolver.homeExpander == nil {
		return NewHomeExpander()
	}
	return resolver.homeExpander
}
