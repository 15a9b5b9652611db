package annotate

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/KirkDiggler/rpg-compendium/internal/i18n"
)

const defaultCheckDC = "15"

// rule rewrites every match of pattern. render returns false to leave the
// matched text as it was.
type rule struct {
	kind    Kind
	pattern *regexp.Regexp
	args    func(groups []string) []string
	render  func(groups []string, lang i18n.Language) (string, bool)
}

var (
	uuidPattern   = regexp.MustCompile(`@UUID\[([^\]]+)\]`)
	checkPattern  = regexp.MustCompile(`@Check\[([^\]]+)\]`)
	damagePattern = regexp.MustCompile(`@Damage\[((?:[^\[\]]|\[[^\[\]]*\])+)\]`)
	actionPattern = regexp.MustCompile(`\[\[/act ([^\]]+)\]\][\s\x{00A0}]*\{([^}]+)\}`)

	dcPattern          = regexp.MustCompile(`dc:(\d+)`)
	damageShapePattern = regexp.MustCompile(`^([^\[]+)\[([^\]]+)\]$`)
)

// conditionLabels maps condition names to their French display labels.
var conditionLabels = map[string]string{
	"Hidden":      "Caché",
	"Observed":    "Observé",
	"Concealed":   "Masqué",
	"Prone":       "À terre",
	"Frightened":  "Effrayé",
	"Stunned":     "Étourdi",
	"Unconscious": "Inconscient",
	"Dying":       "Mourant",
	"Dead":        "Mort",
	"Wounded":     "Blessé",
}

type correction struct {
	pattern     *regexp.Regexp
	replacement string
}

// frenchCorrections fixes known machine translation mistakes. Matching is
// whole word and case insensitive.
var frenchCorrections = []correction{
	{pattern: regexp.MustCompile(`(?i)\bcanard\b`), replacement: "se baisser"},
	{pattern: regexp.MustCompile(`(?i)\bl'orthographe\b`), replacement: "le sort"},
	{pattern: regexp.MustCompile(`(?i)\bchèque\b`), replacement: "check"},
}

var rules = []rule{
	{
		kind:    KindCrossReference,
		pattern: uuidPattern,
		args:    func(groups []string) []string { return []string{groups[1]} },
		render:  renderCrossReference,
	},
	{
		kind:    KindCheck,
		pattern: checkPattern,
		args:    pipeArgs,
		render:  renderCheck,
	},
	{
		kind:    KindDamageRoll,
		pattern: damagePattern,
		args:    pipeArgs,
		render:  renderDamage,
	},
	{
		kind:    KindLinkedAction,
		pattern: actionPattern,
		args:    func(groups []string) []string { return []string{groups[1], groups[2]} },
		render: func(groups []string, _ i18n.Language) (string, bool) {
			return strong(groups[2]), true
		},
	},
}

func pipeArgs(groups []string) []string {
	return strings.Split(groups[1], "|")
}

func strong(s string) string {
	return "<strong>" + s + "</strong>"
}

func renderCrossReference(groups []string, lang i18n.Language) (string, bool) {
	content := groups[1]
	name := content[strings.LastIndex(content, ".")+1:]
	if name == "" {
		name = content
	}

	if lang.IsFrench() {
		if label, ok := conditionLabels[name]; ok {
			return label, true
		}
	}
	return name, true
}

func renderCheck(groups []string, lang i18n.Language) (string, bool) {
	parts := pipeArgs(groups)
	if len(parts) < 2 {
		return "", false
	}

	dc := defaultCheckDC
	if m := dcPattern.FindStringSubmatch(parts[1]); m != nil {
		dc = m[1]
	}

	if lang.IsFrench() {
		return strong(fmt.Sprintf("Jet DD %s", dc)), true
	}
	return strong(fmt.Sprintf("DC %s Check", dc)), true
}

func renderDamage(groups []string, lang i18n.Language) (string, bool) {
	parts := pipeArgs(groups)
	m := damageShapePattern.FindStringSubmatch(parts[0])
	if m == nil {
		return "", false
	}

	label := "damage"
	if lang.IsFrench() {
		label = "dégâts"
	}
	return strong(fmt.Sprintf("%s %s %s", m[1], m[2], label)), true
}
