package util

import (
	"github.com/microcosm-cc/bluemonday"
	"html"
	"strings"
)

var sanitizer = bluemonday.StrictPolicy()

// Sanitize : вырезает разметку из пользовательских строк (имена файлов, ФИО)
func Sanitize(input string) string {
	return strings.TrimSpace(html.UnescapeString(sanitizer.Sanitize(input)))
}
