package llm

import "strings"

var outputReplacer = strings.NewReplacer(
	"[", "",
	"]", "",
	" - ", " : ",
)

// SanitizeOrderOutput removes square brackets and normalizes " - " separators
// to " : " so the message matches the group's format.
func SanitizeOrderOutput(s string) string {
	return strings.TrimSpace(outputReplacer.Replace(s))
}
