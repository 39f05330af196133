// Package filter redacts flagged vocabulary from generated text.
package filter

import (
	"regexp"
	"strings"
)

// Mask replaces each flagged token literally; text is never truncated.
const Mask = "$@!#%"

const (
	LevelNone = "none"
	LevelHi   = "hi"
)

// DefaultWords is the built-in flagged vocabulary. The list is policy data
// and can be overridden via configuration.
var DefaultWords = []string{
	"fuck", "shit", "bitch", "asshole", "bastard", "damn", "dick", "cunt",
}

var wordPattern = regexp.MustCompile(`[a-zA-Z']+`)

type Filter struct {
	flagged map[string]struct{}
}

// New builds a filter over the given vocabulary; an empty list falls back to
// DefaultWords.
func New(words []string) *Filter {
	if len(words) == 0 {
		words = DefaultWords
	}
	flagged := make(map[string]struct{}, len(words))
	for _, w := range words {
		flagged[strings.ToLower(strings.TrimSpace(w))] = struct{}{}
	}
	return &Filter{flagged: flagged}
}

// Apply returns text with flagged tokens replaced by Mask. Level "none" is
// the identity; any other recognized level sanitizes.
func (f *Filter) Apply(text, level string) string {
	if level == LevelNone || level == "" {
		return text
	}
	return wordPattern.ReplaceAllStringFunc(text, func(word string) string {
		if _, ok := f.flagged[strings.ToLower(word)]; ok {
			return Mask
		}
		return word
	})
}
