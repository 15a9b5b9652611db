package refstore

import (
	"strings"

	"github.com/KirkDiggler/rpg-compendium/internal/errors"
)

// MonsterSource groups creature publications.
type MonsterSource string

// Creature source groups
const (
	SourceAll               MonsterSource = ""
	SourceMonsterCore       MonsterSource = "monster-core"
	SourceCore              MonsterSource = "core"
	SourcePathfinderSociety MonsterSource = "pathfinder-society"
	SourceLostOmens         MonsterSource = "lost-omens"
	SourceAdventurePath     MonsterSource = "adventure-path"
	SourceAdventures        MonsterSource = "adventures"
	SourceBountiesQuests    MonsterSource = "bounties-quests"
)

// publicationPatterns are LIKE patterns matched against the publication
// title of each creature.
var publicationPatterns = map[MonsterSource][]string{
	SourceMonsterCore:       {"%Monster Core%"},
	SourceCore:              {"%Bestiary%", "%Player Core%", "%Monster Core%", "%NPC Core%", "%Gamemastery Guide%"},
	SourcePathfinderSociety: {"%Pathfinder Society%"},
	SourceLostOmens:         {"%Lost Omens%"},
	SourceAdventurePath:     {"%Pathfinder #%"},
	SourceAdventures:        {"%Pathfinder Adventure:%"},
	SourceBountiesQuests:    {"%Bounty%", "%Quest%"},
}

// ParseMonsterSource accepts a source group name. "all" and "" mean no
// filter.
func ParseMonsterSource(s string) (MonsterSource, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" || s == "all" {
		return SourceAll, nil
	}
	src := MonsterSource(s)
	if _, ok := publicationPatterns[src]; !ok {
		return "", errors.InvalidArgumentf("unknown monster source %q", s)
	}
	return src, nil
}

// patterns returns the LIKE patterns for src, nil for SourceAll.
func (src MonsterSource) patterns() []string {
	return publicationPatterns[src]
}
