package flags

import (
	"fmt"
	"strings"
)

const (
	choicePlaceholderPrefixConstant  = "<"
	choicePlaceholderSuffixConstant  = ">"
	choiceSeparatorLiteralConstant   = "|"
	choiceUsageEmptyTemplateConstant = "`%s`"
	choiceUsageFullTemplateConstant  = "`%s` %s"
)

// FormatChoiceUsage builds a usage string where the default option is capitalized inside a placeholder.
func FormatChoiceUsage(defaultChoice string, choices []string, description string) string {
	placeholder := buildChoicePlaceholder(defaultChoice, choices)
	if len(strings.TrimSpace(description)) == 0 {
		return fmt.Sprintf(choiceUsageEmptyTemplateConstant, placeholder)
	}
	return fmt.Sprintf(choiceUsageFullTemplateConstant, placeholder, description)
}

func buildChoicePlaceholder(defaultChoice string, choices []string) string {
	normalizedDefault := strings.ToLower(strings.TrimSpace(defaultChoice))
	displayedChoices := make([]string, 0, len(choices))
	seenChoices := make(map[string]struct{}, len(choices))

	for _, choice := range choices {
		trimmedChoice := strings.TrimSpace(choice)
		if len(trimmedChoice) == 0 {
			continue
		}

		normalizedChoice := strings.ToLower(trimmedChoice)
		if _, alreadySeen := seenChoices[normalizedChoice]; alreadySeen {
			continue
		}
		seenChoices[normalizedChoice] = struct{}{}

		if normalizedChoice == normalizedDefault {
			displayedChoices = append(displayedChoices, strings.ToUpper(trimmedChoice))
			continue
		}
		displayedChoices = append(displayedChoices, trimmedChoice)
	}

	return choicePlaceholderPrefixConstant + strings.Join(displayedChoices, choiceSeparatorLiteralConstant) + choicePlaceholderSuffixConstant
}
