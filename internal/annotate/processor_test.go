package annotate_test

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/rpg-compendium/internal/annotate"
	"github.com/KirkDiggler/rpg-compendium/internal/i18n"
)

func TestProcess(t *testing.T) {
	testCases := []struct {
		name     string
		input    string
		lang     i18n.Language
		expected string
	}{
		{
			name:     "empty input",
			input:    "",
			lang:     i18n.French,
			expected: "",
		},
		{
			name:     "no tags",
			input:    "You raise your shield.",
			lang:     i18n.English,
			expected: "You raise your shield.",
		},
		{
			name:     "condition in english",
			input:    "You fall @UUID[Compendium.pf2e.conditionitems.Item.Prone].",
			lang:     i18n.English,
			expected: "You fall Prone.",
		},
		{
			name:     "condition in french",
			input:    "Vous êtes @UUID[Compendium.pf2e.conditionitems.Item.Prone].",
			lang:     i18n.French,
			expected: "Vous êtes À terre.",
		},
		{
			name:     "unknown reference degrades to name",
			input:    "@UUID[Compendium.pf2e.spells-srd.Item.Fireball]",
			lang:     i18n.French,
			expected: "Fireball",
		},
		{
			name:     "reference with trailing dot keeps content",
			input:    "@UUID[Compendium.]",
			lang:     i18n.English,
			expected: "Compendium.",
		},
		{
			name:     "check in english",
			input:    "@Check[foo|dc:18]",
			lang:     i18n.English,
			expected: "<strong>DC 18 Check</strong>",
		},
		{
			name:     "check in french",
			input:    "@Check[foo|dc:18]",
			lang:     i18n.French,
			expected: "<strong>Jet DD 18</strong>",
		},
		{
			name:     "check without dc uses default",
			input:    "@Check[reflex|basic]",
			lang:     i18n.English,
			expected: "<strong>DC 15 Check</strong>",
		},
		{
			name:     "check with single segment is untouched",
			input:    "@Check[foo]",
			lang:     i18n.English,
			expected: "@Check[foo]",
		},
		{
			name:     "damage in english",
			input:    "@Damage[2d6[fire]|options]",
			lang:     i18n.English,
			expected: "<strong>2d6 fire damage</strong>",
		},
		{
			name:     "damage in french",
			input:    "@Damage[2d6[fire]|options]",
			lang:     i18n.French,
			expected: "<strong>2d6 fire dégâts</strong>",
		},
		{
			name:     "damage without options",
			input:    "Deals @Damage[1d4[bleed]].",
			lang:     i18n.English,
			expected: "Deals <strong>1d4 bleed damage</strong>.",
		},
		{
			name:     "damage without type is untouched",
			input:    "@Damage[2d6|options]",
			lang:     i18n.English,
			expected: "@Damage[2d6|options]",
		},
		{
			name:     "inline action keeps only the skill",
			input:    "Attempt [[/act demoralize]] {Intimidation} now.",
			lang:     i18n.English,
			expected: "Attempt <strong>Intimidation</strong> now.",
		},
		{
			name:     "inline action before a non-breaking space",
			input:    "Tentez [[/act demoralize]]\u00a0{Intimidation}.",
			lang:     i18n.French,
			expected: "Tentez <strong>Intimidation</strong>.",
		},
		{
			name:     "french corrections are whole word and case insensitive",
			input:    "Canard pour éviter. Lancer l'orthographe. Un CHÈQUE. canardage",
			lang:     i18n.French,
			expected: "se baisser pour éviter. Lancer le sort. Un check. canardage",
		},
		{
			name:     "french corrections skipped in english",
			input:    "canard",
			lang:     i18n.English,
			expected: "canard",
		},
		{
			name:     "every rule in one string",
			input:    "@UUID[a.b.Frightened] @Check[will|dc:22] @Damage[3d8[cold]|x] [[/act seek]] {Perception}",
			lang:     i18n.French,
			expected: "Effrayé <strong>Jet DD 22</strong> <strong>3d8 cold dégâts</strong> <strong>Perception</strong>",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := annotate.Process(tc.input, tc.lang)
			if diff := cmp.Diff(tc.expected, got); diff != "" {
				t.Errorf("Process() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

// The cheque correction yields the English word. This mirrors the shipped
// behavior and is pinned here so any change to it is deliberate.
func TestProcess_ChequeCorrectionProducesEnglishWord(t *testing.T) {
	got := annotate.Process("Faites un chèque de Réflexes.", i18n.French)
	assert.Equal(t, "Faites un check de Réflexes.", got)
}

func TestProcess_MalformedTagsNeverPanic(t *testing.T) {
	inputs := []string{
		"@UUID[",
		"@UUID[]",
		"@Check[",
		"@Check[|]",
		"@Damage[2d6[fire]",
		"@Damage[[]]",
		"@Damage[]",
		"[[/act ]] {",
		"[[/act x]]{}",
		strings.Repeat("@Check[a|dc:1]", 50),
	}

	for _, input := range inputs {
		for _, lang := range i18n.Supported {
			assert.NotPanics(t, func() {
				annotate.Process(input, lang)
			}, "input %q", input)
		}
	}
}

func TestProcess_LaterRulesSeeEarlierRewrites(t *testing.T) {
	// checks are rendered before damage, so the damage tag no longer has a typed formula
	got := annotate.Process("@Damage[@Check[x|dc:2]]", i18n.English)
	assert.Equal(t, "@Damage[<strong>DC 2 Check</strong>]", got)
}

func TestProcess_TextWithoutTagsIsIdentity(t *testing.T) {
	inputs := []string{
		"Strike twice.",
		"A [bracketed] note with | pipes and dc:12.",
		"Un texte en français sans balise.",
	}
	for _, input := range inputs {
		assert.Equal(t, input, annotate.Process(input, i18n.English))
	}
}

func TestTags(t *testing.T) {
	tags := annotate.Tags("@Check[foo] @Check[fortitude|dc:20|basic] @Damage[1d6[acid]] [[/act grapple]] {Athletics}", i18n.English)
	require.Len(t, tags, 4)

	assert.Equal(t, annotate.KindCheck, tags[0].Kind)
	assert.Equal(t, []string{"foo"}, tags[0].RawArguments)
	assert.False(t, tags[0].Resolved())

	assert.Equal(t, annotate.KindCheck, tags[1].Kind)
	assert.Equal(t, []string{"fortitude", "dc:20", "basic"}, tags[1].RawArguments)
	assert.Equal(t, "<strong>DC 20 Check</strong>", tags[1].ResolvedLabel)

	assert.Equal(t, annotate.KindDamageRoll, tags[2].Kind)
	assert.Equal(t, "@Damage[1d6[acid]]", tags[2].Source)

	assert.Equal(t, annotate.KindLinkedAction, tags[3].Kind)
	assert.Equal(t, []string{"grapple", "Athletics"}, tags[3].RawArguments)
	assert.Equal(t, "<strong>Athletics</strong>", tags[3].ResolvedLabel)
}

func TestTags_Empty(t *testing.T) {
	assert.Empty(t, annotate.Tags("", i18n.English))
}
