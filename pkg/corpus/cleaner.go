package corpus

import (
	"regexp"
	"strings"
)

// LyricsNotice is the legal boilerplate the lyrics provider appends to every
// lyric body. It never belongs in a corpus.
const LyricsNotice = "******* This Lyrics is NOT for Commercial use *******"

// Matches "Chapter" with any trailing chapter-number text (e.g. "Chapter 12",
// "Chapter 3:"). Surrounding prose is left intact.
var chapterRef = regexp.MustCompile(`Chapter\s*\d*[.:]?`)

// Clean strips known boilerplate and markup from raw acquired text according
// to the corpus kind. It is pure and idempotent: cleaning already-clean text
// is a no-op, and empty input yields an empty string.
func Clean(raw string, kind Kind) string {
	if kind == KindLyrical {
		return cleanLyrical(raw)
	}
	return cleanLiterary(raw)
}

func cleanLyrical(text string) string {
	text = strings.ReplaceAll(text, LyricsNotice, "")
	text = strings.ReplaceAll(text, "...", "")
	return text
}

func cleanLiterary(text string) string {
	text = strings.ReplaceAll(text, "<li>", "")
	text = strings.ReplaceAll(text, "</li>", "")
	text = chapterRef.ReplaceAllString(text, "")
	return text
}
