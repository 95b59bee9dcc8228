package domain

import (
	"regexp"
	"strings"
)

const codeFence = "```"

var (
	leadingFence = regexp.MustCompile("^```[\\w+-]*[ \\t]*(?:\\r?\\n|\\r?$)")
	fenceLine    = regexp.MustCompile("(?m)^[ \\t]*```[\\w+-]*[ \\t]*\\r?(?:\\n|$)")
)

// CleanGeneratedCode removes a leading fence line (with optional language tag)
// and a trailing fence line from a generation response. A lone opening fence
// cleans to empty text. Text without fences is returned unchanged apart from
// trailing whitespace.
func CleanGeneratedCode(text string) string {
	trimmed := strings.TrimLeft(text, " \t\r\n")
	if strings.HasPrefix(trimmed, codeFence) {
		if loc := leadingFence.FindStringIndex(trimmed); loc != nil {
			text = trimmed[loc[1]:]
		}
	}

	text = strings.TrimRight(text, " \t\r\n")
	text = strings.TrimSuffix(text, codeFence)

	return strings.TrimRight(text, " \t\r\n")
}

// StripAllFences cleans the response like CleanGeneratedCode, then drops any
// fence lines and markers left inside it.
func StripAllFences(text string) string {
	cleaned := CleanGeneratedCode(text)
	cleaned = fenceLine.ReplaceAllString(cleaned, "")
	cleaned = strings.ReplaceAll(cleaned, codeFence, "")

	return strings.TrimSpace(cleaned)
}

// withTrailingNewline terminates non-empty text with exactly one newline.
func withTrailingNewline(text string) string {
	if text == "" {
		return text
	}

	return strings.TrimRight(text, "\n") + "\n"
}
