package naming

import (
	"regexp"
	"strings"
)

var (
	nonAlnum  = regexp.MustCompile(`[^a-z0-9-]+`)
	multiDash = regexp.MustCompile(`-+`)
)

func sanitizePart(value string) string {
	value = strings.ToLower(strings.TrimSpace(value))
	if value == "" {
		return ""
	}
	value = strings.Trim(value, "{}+")
	value = strings.ReplaceAll(value, "_", "-")
	value = strings.ReplaceAll(value, ".", "-")
	value = nonAlnum.ReplaceAllString(value, "-")
	value = multiDash.ReplaceAllString(value, "-")
	value = strings.Trim(value, "-")
	return value
}

func pascal(value string) string {
	var b strings.Builder
	for _, word := range strings.Split(value, "-") {
		if word == "" {
			continue
		}
		b.WriteString(strings.ToUpper(word[:1]))
		b.WriteString(word[1:])
	}
	return b.String()
}

// ConstructID derives a deterministic construct identifier from a slash
// path. Brace parameters lose their braces; separators become word
// boundaries:
//
//	ConstructID("/") == "Root"
//	ConstructID("/users/{user_id}") == "UsersUserId"
func ConstructID(path string) string {
	var parts []string
	for _, segment := range strings.Split(path, "/") {
		part := sanitizePart(segment)
		if part == "" {
			continue
		}
		parts = append(parts, pascal(part))
	}
	if len(parts) == 0 {
		return "Root"
	}
	return strings.Join(parts, "")
}

// TitleVerb renders an HTTP verb as a single identifier word:
// "GET" -> "Get", "delete" -> "Delete".
func TitleVerb(verb string) string {
	verb = strings.ToLower(strings.TrimSpace(verb))
	if verb == "" {
		return ""
	}
	return strings.ToUpper(verb[:1]) + verb[1:]
}
