package components

import (
	"regexp"
	"strings"
)

var ansiPattern = regexp.MustCompile(`\x1b\[[0-9;]*[a-zA-Z]`)

// plainLines strips styling and splits a view into lines.
func plainLines(view string) []string {
	return strings.Split(ansiPattern.ReplaceAllString(view, ""), "\n")
}

func plain(view string) string {
	return ansiPattern.ReplaceAllString(view, "")
}
