// Package annotate rewrites the inline tags embedded in rule text into
// display-ready markup. Output contains literal <strong> emphasis that the
// presentation layer renders as-is.
package annotate

import (
	"strings"

	"github.com/KirkDiggler/rpg-compendium/internal/i18n"
)

// Process rewrites cross-references, checks, damage rolls and inline action
// links in that order, then applies the French lexical corrections when lang
// is French. Each rule scans the output of the previous one exactly once.
// Empty input is returned unchanged and no input ever produces an error.
func Process(text string, lang i18n.Language) string {
	out, _ := run(text, lang, false)
	return out
}

// Tags returns every tag the processor would see for text, in rule order.
func Tags(text string, lang i18n.Language) []Tag {
	_, tags := run(text, lang, true)
	return tags
}

func run(text string, lang i18n.Language, collect bool) (string, []Tag) {
	if text == "" {
		return text, nil
	}

	var tags []Tag
	for _, r := range rules {
		text = replaceAllSubmatchFunc(r, text, func(groups []string) string {
			label, ok := r.render(groups, lang)
			if collect {
				tag := Tag{Kind: r.kind, Source: groups[0], RawArguments: r.args(groups)}
				if ok {
					tag.ResolvedLabel = label
				}
				tags = append(tags, tag)
			}
			if !ok {
				return groups[0]
			}
			return label
		})
	}

	if lang.IsFrench() {
		for _, c := range frenchCorrections {
			text = c.pattern.ReplaceAllLiteralString(text, c.replacement)
		}
	}

	return text, tags
}

// replaceAllSubmatchFunc is regexp.ReplaceAllStringFunc with access to the
// capture groups of each match.
func replaceAllSubmatchFunc(r rule, s string, fn func(groups []string) string) string {
	matches := r.pattern.FindAllStringSubmatchIndex(s, -1)
	if len(matches) == 0 {
		return s
	}

	var b strings.Builder
	b.Grow(len(s))
	last := 0
	for _, m := range matches {
		groups := make([]string, len(m)/2)
		for i := range groups {
			if m[2*i] >= 0 {
				groups[i] = s[m[2*i]:m[2*i+1]]
			}
		}
		b.WriteString(s[last:m[0]])
		b.WriteString(fn(groups))
		last = m[1]
	}
	b.WriteString(s[last:])
	return b.String()
}
