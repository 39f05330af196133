package corpus

import (
	"regexp"
	"strings"
)

var whitespaceRun = regexp.MustCompile(`\s+`)

// NormalizeSubject converts a caller-supplied subject name into its canonical
// cache-key form: underscores become spaces and runs of whitespace collapse to
// a single space. "Neil_Gaiman" and "Neil Gaiman" address the same entry, and
// only the space form is ever stored or displayed.
func NormalizeSubject(name string) string {
	name = strings.ReplaceAll(name, "_", " ")
	name = whitespaceRun.ReplaceAllString(name, " ")
	return strings.TrimSpace(name)
}
