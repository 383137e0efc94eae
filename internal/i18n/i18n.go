// Package i18n selects the language of user-facing messages. Messages are
// written in English in the code; other languages register translations
// keyed by the English format string.
package i18n

import (
	"os"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var supported = []language.Tag{language.English, language.French}

var matcher = language.NewMatcher(supported)

func init() {
	for key, msg := range french {
		_ = message.SetString(language.French, key, msg)
	}
}

// Tag maps a locale string such as "fr_FR.UTF-8", "fr" or "en-US" to a
// supported language. Unknown or empty values give English.
func Tag(locale string) language.Tag {
	locale = strings.TrimSpace(locale)
	if i := strings.IndexAny(locale, ".@"); i >= 0 {
		locale = locale[:i]
	}
	locale = strings.ReplaceAll(locale, "_", "-")
	if locale == "" || locale == "C" || locale == "POSIX" {
		return language.English
	}

	parsed, err := language.Parse(locale)
	if err != nil {
		return language.English
	}
	_, idx, conf := matcher.Match(parsed)
	if conf == language.No {
		return language.English
	}
	return supported[idx]
}

// Detect returns the language from the configured value, falling back to
// LC_ALL, LC_MESSAGES and LANG.
func Detect(configured string) language.Tag {
	if configured != "" {
		return Tag(configured)
	}
	for _, env := range []string{"LC_ALL", "LC_MESSAGES", "LANG"} {
		if v := os.Getenv(env); v != "" {
			return Tag(v)
		}
	}
	return language.English
}

// NewPrinter returns a printer for the detected language.
func NewPrinter(configured string) *message.Printer {
	return message.NewPrinter(Detect(configured))
}
