package i18n

import (
	"embed"
	"fmt"
	"io/fs"
	"sort"
	"strings"
	"sync"

	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
	"gopkg.in/yaml.v3"
)

//go:embed locales/*.yaml
var embeddedLocales embed.FS

type catalogFile struct {
	Locale   string            `yaml:"locale"`
	Messages map[string]string `yaml:"messages"`
}

// Translator renders catalog messages with locale-aware number formatting.
type Translator struct {
	messages map[Language]map[string]string
	printers map[Language]*message.Printer
}

var (
	defaultOnce       sync.Once
	defaultTranslator *Translator
)

// Default returns the process-wide translator built from the embedded
// catalogs. A broken embedded catalog is a build defect, so it panics.
func Default() *Translator {
	defaultOnce.Do(func() {
		t, err := LoadFromFS(embeddedLocales)
		if err != nil {
			panic(fmt.Sprintf("i18n: load embedded catalogs: %v", err))
		}
		defaultTranslator = t
	})
	return defaultTranslator
}

// LoadFromFS loads locales/*.yaml from fsys. English must be present; keys
// missing from French fall back to the English message.
func LoadFromFS(fsys fs.FS) (*Translator, error) {
	paths, err := fs.Glob(fsys, "locales/*.yaml")
	if err != nil {
		return nil, fmt.Errorf("glob locale catalogs: %w", err)
	}
	sort.Strings(paths)

	messages := make(map[Language]map[string]string)
	for _, path := range paths {
		data, err := fs.ReadFile(fsys, path)
		if err != nil {
			return nil, fmt.Errorf("read catalog %s: %w", path, err)
		}

		var file catalogFile
		if err := yaml.Unmarshal(data, &file); err != nil {
			return nil, fmt.Errorf("parse catalog %s: %w", path, err)
		}

		lang := Language(strings.TrimSpace(file.Locale))
		if lang != English && lang != French {
			return nil, fmt.Errorf("catalog %s: unsupported locale %q", path, file.Locale)
		}
		if _, exists := messages[lang]; exists {
			return nil, fmt.Errorf("catalog %s: locale %q defined twice", path, lang)
		}
		if len(file.Messages) == 0 {
			return nil, fmt.Errorf("catalog %s: messages map is required", path)
		}
		messages[lang] = file.Messages
	}

	base, ok := messages[English]
	if !ok {
		return nil, fmt.Errorf("base locale %s is not defined in catalogs", English)
	}

	builder := catalog.NewBuilder()
	for _, lang := range Supported {
		msgs := messages[lang]
		if msgs == nil {
			msgs = make(map[string]string, len(base))
			messages[lang] = msgs
		}
		for key, value := range base {
			if _, exists := msgs[key]; !exists {
				msgs[key] = value
			}
		}
		for key, value := range msgs {
			if err := builder.SetString(lang.Tag(), key, value); err != nil {
				return nil, fmt.Errorf("register %s message %q: %w", lang, key, err)
			}
		}
	}

	printers := make(map[Language]*message.Printer, len(Supported))
	for _, lang := range Supported {
		printers[lang] = message.NewPrinter(lang.Tag(), message.Catalog(builder))
	}

	return &Translator{messages: messages, printers: printers}, nil
}

// Label returns the raw message for key, or key itself when unknown.
func (t *Translator) Label(lang Language, key string) string {
	if msg, ok := t.lookup(lang)[key]; ok {
		return msg
	}
	return key
}

// Sprintf formats the message registered under key. Unknown keys render as
// the key so missing labels are visible rather than blank.
func (t *Translator) Sprintf(lang Language, key string, args ...any) string {
	if _, ok := t.lookup(lang)[key]; !ok {
		return key
	}
	return t.printer(lang).Sprintf(key, args...)
}

// Number formats n with the language's digit grouping.
func (t *Translator) Number(lang Language, n any) string {
	return t.printer(lang).Sprint(n)
}

// Has reports whether key is registered.
func (t *Translator) Has(key string) bool {
	_, ok := t.messages[English][key]
	return ok
}

func (t *Translator) lookup(lang Language) map[string]string {
	if msgs, ok := t.messages[lang]; ok {
		return msgs
	}
	return t.messages[English]
}

func (t *Translator) printer(lang Language) *message.Printer {
	if p, ok := t.printers[lang]; ok {
		return p
	}
	return t.printers[English]
}
