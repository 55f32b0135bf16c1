package i18n

import (
	"os"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
)

// Supported lists the languages with a full catalog, default first.
var Supported = []language.Tag{language.English, language.Spanish, language.French}

var (
	matcher = language.NewMatcher(Supported)
	cat     = buildCatalog()
)

func buildCatalog() *catalog.Builder {
	b := catalog.NewBuilder(catalog.Fallback(language.English))
	for tag, msgs := range map[language.Tag]map[string]string{
		language.English: english,
		language.Spanish: spanish,
		language.French:  french,
	} {
		for key, msg := range msgs {
			// keys are fixed identifiers; SetString only fails on malformed tags
			_ = b.SetString(tag, key, msg)
		}
	}
	return b
}

// Translator formats catalog messages for one language.
type Translator struct {
	tag     language.Tag
	printer *message.Printer
}

// New returns a translator for the best supported match of lang. An empty
// lang is taken from the environment.
func New(lang string) *Translator {
	if lang == "" {
		lang = FromEnv()
	}
	tag := Match(lang)
	return &Translator{tag: tag, printer: message.NewPrinter(tag, message.Catalog(cat))}
}

// Match returns the supported language closest to lang, English if none is.
func Match(lang string) language.Tag {
	requested, _, err := language.ParseAcceptLanguage(lang)
	if err != nil || len(requested) == 0 {
		return language.English
	}
	_, idx, conf := matcher.Match(requested...)
	if conf == language.No {
		return language.English
	}
	return Supported[idx]
}

// FromEnv reads the POSIX locale variables, e.g. "es_ES.UTF-8" → "es-ES".
func FromEnv() string {
	for _, name := range []string{"LC_ALL", "LC_MESSAGES", "LANG"} {
		v := os.Getenv(name)
		if v == "" || v == "C" || v == "POSIX" {
			continue
		}
		if i := strings.IndexAny(v, ".@"); i >= 0 {
			v = v[:i]
		}
		return strings.ReplaceAll(v, "_", "-")
	}
	return ""
}

// Language returns the BCP 47 tag in use.
func (t *Translator) Language() language.Tag {
	return t.tag
}

// T returns the message for key with args substituted. An unknown key is
// returned as is.
func (t *Translator) T(key string, args ...any) string {
	return t.printer.Sprintf(key, args...)
}
