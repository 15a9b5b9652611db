package refstore_test

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/suite"
	_ "modernc.org/sqlite"

	"github.com/KirkDiggler/rpg-compendium/internal/errors"
	"github.com/KirkDiggler/rpg-compendium/internal/i18n"
	"github.com/KirkDiggler/rpg-compendium/internal/refstore"
	"github.com/KirkDiggler/rpg-compendium/internal/tables"
	"github.com/KirkDiggler/rpg-compendium/internal/wealth"
)

const fixtureSchema = `
CREATE TABLE spell (_id TEXT PRIMARY KEY, name TEXT, system TEXT, description TEXT, description_fr TEXT);
CREATE TABLE weapon (_id TEXT PRIMARY KEY, name TEXT, system TEXT, description_fr TEXT);
CREATE TABLE npc (_id TEXT PRIMARY KEY, name TEXT, system TEXT, description_fr TEXT, publicnotes_fr TEXT);
`

type fixtureRow struct {
	table, id, name, system, descriptionFR, extra string
}

var fixtureRows = []fixtureRow{
	{"spell", "sp1", "Fireball", `{"level":{"value":3},"traits":{"rarity":"common","value":["fire","evocation"],"traditions":["arcane","primal"]},"description":{"value":"A burst of @Damage[6d6[fire]|options]."}}`, "Une explosion de flammes.", ""},
	{"spell", "sp2", "Fire Ray", `{"level":{"value":2},"traits":{"value":["fire"],"traditions":["arcane"]},"description":{"value":"A ray."}}`, "", ""},
	{"spell", "sp3", "Heal", `{"level":{"value":1},"traits":{"value":["healing"]},"traditions":{"value":["divine","primal"]},"description":{"value":"Heal."}}`, "Guérison.", ""},
	{"weapon", "w1", "Longsword", `{"level":{"value":0},"price":{"value":{"gp":1}},"traits":{"rarity":"common"},"category":"martial"}`, "", ""},
	{"weapon", "w2", "Flaming Longsword", `{"level":{"value":8},"price":{"value":{"gp":500,"sp":5}},"traits":{"rarity":"uncommon"}}`, "", ""},
	{"npc", "n1", "Goblin Warrior", `{"details":{"level":{"value":-1},"publicNotes":"Small and mean.","publication":{"title":"Pathfinder Monster Core"}},"traits":{"rarity":"common"}}`, "", "Petit et méchant."},
	{"npc", "n2", "Zombie Shambler", `{"details":{"level":{"value":-1},"publication":{"title":"Pathfinder Bestiary"}}}`, "", ""},
	{"npc", "n3", "Aspis Agent", `{"details":{"level":{"value":3},"publication":{"title":"Pathfinder Society Scenario #1"}}}`, "", ""},
}

type SQLiteStoreTestSuite struct {
	suite.Suite
	ctx   context.Context
	store refstore.Store
}

func (s *SQLiteStoreTestSuite) SetupTest() {
	s.ctx = context.Background()
	path := filepath.Join(s.T().TempDir(), "reference.sqlite")

	db, err := sql.Open("sqlite", path)
	s.Require().NoError(err)
	_, err = db.Exec(fixtureSchema)
	s.Require().NoError(err)

	for _, row := range fixtureRows {
		switch row.table {
		case "spell":
			_, err = db.Exec(`INSERT INTO spell VALUES (?, ?, ?, ?, ?)`, row.id, row.name, row.system, "", nullIfEmpty(row.descriptionFR))
		case "weapon":
			_, err = db.Exec(`INSERT INTO weapon VALUES (?, ?, ?, ?)`, row.id, row.name, row.system, nullIfEmpty(row.descriptionFR))
		case "npc":
			_, err = db.Exec(`INSERT INTO npc VALUES (?, ?, ?, ?, ?)`, row.id, row.name, row.system, nullIfEmpty(row.descriptionFR), nullIfEmpty(row.extra))
		}
		s.Require().NoError(err)
	}
	s.Require().NoError(db.Close())

	s.store, err = refstore.NewSQLite(s.ctx, &refstore.SQLiteConfig{Path: path})
	s.Require().NoError(err)
}

func (s *SQLiteStoreTestSuite) TearDownTest() {
	s.Require().NoError(s.store.Close())
}

func nullIfEmpty(v string) any {
	if v == "" {
		return nil
	}
	return v
}

func (s *SQLiteStoreTestSuite) TestNewSQLite_Validation() {
	_, err := refstore.NewSQLite(s.ctx, &refstore.SQLiteConfig{})
	s.True(errors.IsInvalidArgument(err))

	_, err = refstore.NewSQLite(s.ctx, &refstore.SQLiteConfig{Path: filepath.Join(s.T().TempDir(), "missing.sqlite")})
	s.True(errors.IsNotFound(err))
}

func (s *SQLiteStoreTestSuite) TestGet() {
	out, err := s.store.Get(s.ctx, refstore.GetInput{Table: refstore.TableWeapon, ID: "w2"})
	s.Require().NoError(err)

	rec := out.Record
	s.Equal("Flaming Longsword", rec.Name)
	s.Equal("w2", rec.GetID())
	s.Equal("weapon", rec.GetType())
	s.Equal(8, rec.Attributes.Level)
	s.Equal(tables.RarityUncommon, rec.Attributes.Rarity)
	s.Equal(wealth.FromCoins(500, 5, 0), rec.Attributes.Price)
}

func (s *SQLiteStoreTestSuite) TestGet_CreatureLevelFromDetails() {
	out, err := s.store.Get(s.ctx, refstore.GetInput{Table: refstore.TableNPC, ID: "n1"})
	s.Require().NoError(err)
	s.Equal(-1, out.Record.Attributes.Level)
	s.Equal("Pathfinder Monster Core", out.Record.Attributes.Publication)
}

func (s *SQLiteStoreTestSuite) TestGet_Errors() {
	_, err := s.store.Get(s.ctx, refstore.GetInput{Table: refstore.TableSpell, ID: "nope"})
	s.True(errors.IsNotFound(err))

	_, err = s.store.Get(s.ctx, refstore.GetInput{Table: refstore.TableSpell})
	s.True(errors.IsInvalidArgument(err))

	_, err = s.store.Get(s.ctx, refstore.GetInput{Table: "spell; DROP TABLE spell", ID: "sp1"})
	s.True(errors.IsInvalidArgument(err))

	_, err = s.store.Get(s.ctx, refstore.GetInput{Table: refstore.TableFeat, ID: "f1"})
	s.True(errors.IsNotFound(err))
}

func (s *SQLiteStoreTestSuite) TestList_Levels() {
	out, err := s.store.List(s.ctx, refstore.ListInput{Table: refstore.TableSpell, Levels: []int{1, 3}})
	s.Require().NoError(err)
	s.Equal([]string{"Fireball", "Heal"}, names(out.Records))
}

func (s *SQLiteStoreTestSuite) TestList_Traits() {
	out, err := s.store.List(s.ctx, refstore.ListInput{Table: refstore.TableSpell, Traits: []string{"Fire"}})
	s.Require().NoError(err)
	s.Equal([]string{"Fire Ray", "Fireball"}, names(out.Records))
}

func (s *SQLiteStoreTestSuite) TestList_TraditionsBothShapes() {
	out, err := s.store.List(s.ctx, refstore.ListInput{Table: refstore.TableSpell, Traditions: []string{"primal"}})
	s.Require().NoError(err)
	s.Equal([]string{"Fireball", "Heal"}, names(out.Records))
}

func (s *SQLiteStoreTestSuite) TestList_MonsterSource() {
	out, err := s.store.List(s.ctx, refstore.ListInput{Table: refstore.TableNPC, Source: refstore.SourceCore})
	s.Require().NoError(err)
	s.Equal([]string{"Goblin Warrior", "Zombie Shambler"}, names(out.Records))

	out, err = s.store.List(s.ctx, refstore.ListInput{Table: refstore.TableNPC, Source: refstore.SourcePathfinderSociety})
	s.Require().NoError(err)
	s.Equal([]string{"Aspis Agent"}, names(out.Records))
}

func (s *SQLiteStoreTestSuite) TestList_SourceOnlyForCreatures() {
	_, err := s.store.List(s.ctx, refstore.ListInput{Table: refstore.TableSpell, Source: refstore.SourceCore})
	s.True(errors.IsInvalidArgument(err))
}

func (s *SQLiteStoreTestSuite) TestList_Limit() {
	out, err := s.store.List(s.ctx, refstore.ListInput{Table: refstore.TableSpell, Limit: 1})
	s.Require().NoError(err)
	s.Len(out.Records, 1)
}

func (s *SQLiteStoreTestSuite) TestSearch_SkipsMissingTables() {
	out, err := s.store.Search(s.ctx, refstore.SearchInput{Query: "fireball"})
	s.Require().NoError(err)
	s.Equal([]string{"Fireball"}, names(out.Records))
}

func (s *SQLiteStoreTestSuite) TestSearch_RanksBySimilarity() {
	// name order would put Flaming Longsword first
	out, err := s.store.Search(s.ctx, refstore.SearchInput{Query: "long", Tables: []refstore.Table{refstore.TableWeapon}})
	s.Require().NoError(err)
	s.Equal([]string{"Longsword", "Flaming Longsword"}, names(out.Records))
}

func (s *SQLiteStoreTestSuite) TestSearch_MatchesFrenchDescription() {
	out, err := s.store.Search(s.ctx, refstore.SearchInput{Query: "flammes", Tables: []refstore.Table{refstore.TableSpell}})
	s.Require().NoError(err)
	s.Equal([]string{"Fireball"}, names(out.Records))
}

func (s *SQLiteStoreTestSuite) TestSearch_BrowseAllSortedByName() {
	out, err := s.store.Search(s.ctx, refstore.SearchInput{Query: "*", Tables: []refstore.Table{refstore.TableWeapon, refstore.TableSpell}, Limit: 3})
	s.Require().NoError(err)
	s.Equal([]string{"Fire Ray", "Fireball", "Flaming Longsword"}, names(out.Records))
}

func (s *SQLiteStoreTestSuite) TestSearch_EmptyQuery() {
	_, err := s.store.Search(s.ctx, refstore.SearchInput{Query: "  "})
	s.True(errors.IsInvalidArgument(err))
}

func (s *SQLiteStoreTestSuite) TestContent() {
	out, err := s.store.Get(s.ctx, refstore.GetInput{Table: refstore.TableSpell, ID: "sp1"})
	s.Require().NoError(err)
	s.Equal("Une explosion de flammes.", out.Record.Content(i18n.French).Description)
	s.Equal("A burst of @Damage[6d6[fire]|options].", out.Record.Content(i18n.English).Description)

	// untranslated records fall back to English
	out, err = s.store.Get(s.ctx, refstore.GetInput{Table: refstore.TableSpell, ID: "sp2"})
	s.Require().NoError(err)
	s.Equal("A ray.", out.Record.Content(i18n.French).Description)

	// creatures use public notes as the description
	out, err = s.store.Get(s.ctx, refstore.GetInput{Table: refstore.TableNPC, ID: "n1"})
	s.Require().NoError(err)
	s.Equal("Petit et méchant.", out.Record.Content(i18n.French).Description)
	s.Equal("Small and mean.", out.Record.Content(i18n.English).Description)
}

func names(records []*refstore.Record) []string {
	out := make([]string, 0, len(records))
	for _, r := range records {
		out = append(out, r.Name)
	}
	return out
}

func TestSQLiteStoreTestSuite(t *testing.T) {
	suite.Run(t, new(SQLiteStoreTestSuite))
}
