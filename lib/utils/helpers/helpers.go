package helpers

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

var matchFirstCap = regexp.MustCompile("(.)([A-Z][a-z]+)")
var matchAllCap = regexp.MustCompile("([a-z0-9])([A-Z])")

func ToSnakeCase(str string) string {
	snake := matchFirstCap.ReplaceAllString(str, "${1}_${2}")
	snake = matchAllCap.ReplaceAllString(snake, "${1}_${2}")
	return strings.ToLower(snake)
}

// ToCamelCase converts snake_case to camelCase. Leading underscores are kept,
// runs of inner underscores collapse.
func ToCamelCase(str string) string {
	trimmed := strings.TrimLeft(str, "_")
	var b strings.Builder
	b.Grow(len(str))
	b.WriteString(str[:len(str)-len(trimmed)])
	for idx, part := range strings.Split(trimmed, "_") {
		if part == "" {
			continue
		}
		if idx == 0 {
			b.WriteString(part)
			continue
		}
		r, size := utf8.DecodeRuneInString(part)
		b.WriteRune(unicode.ToUpper(r))
		b.WriteString(part[size:])
	}
	return b.String()
}
