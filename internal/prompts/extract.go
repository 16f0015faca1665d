package prompts

import (
	"errors"
	"strings"
)

// ErrNoCodeBlock is returned when a completion carries no fenced code block.
var ErrNoCodeBlock = errors.New("no code block found in model response")

// ExtractCode isolates the first fenced code block from a completion. Model
// replies routinely wrap code in prose; only the block contents are safe to
// hand to the sandbox. Fails cleanly when no block is present.
func ExtractCode(completion string) (string, error) {
	start := strings.Index(completion, "```")
	if start == -1 {
		return "", ErrNoCodeBlock
	}

	rest := completion[start+3:]

	// Drop an optional language tag on the opening fence line.
	if nl := strings.Index(rest, "\n"); nl != -1 {
		tag := strings.TrimSpace(rest[:nl])
		if isLanguageTag(tag) {
			rest = rest[nl+1:]
		}
	}

	end := strings.Index(rest, "```")
	if end == -1 {
		return "", ErrNoCodeBlock
	}

	code := strings.TrimSpace(rest[:end])
	if code == "" {
		return "", ErrNoCodeBlock
	}
	return code, nil
}

func isLanguageTag(s string) bool {
	if s == "" {
		return true
	}
	for _, r := range s {
		if (r < 'a' || r > 'z') && (r < '0' || r > '9') {
			return false
		}
	}
	return true
}
