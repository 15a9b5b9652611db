package app_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/rpg-compendium/internal/app"
	"github.com/KirkDiggler/rpg-compendium/internal/config"
	"github.com/KirkDiggler/rpg-compendium/internal/errors"
	"github.com/KirkDiggler/rpg-compendium/internal/i18n"
	"github.com/KirkDiggler/rpg-compendium/internal/orchestrators/campaign"
	"github.com/KirkDiggler/rpg-compendium/internal/orchestrators/loot"
	lootmock "github.com/KirkDiggler/rpg-compendium/internal/orchestrators/loot/mock"
	"github.com/KirkDiggler/rpg-compendium/internal/random"
	"github.com/KirkDiggler/rpg-compendium/internal/refstore"
	refstoremock "github.com/KirkDiggler/rpg-compendium/internal/refstore/mock"
	"github.com/KirkDiggler/rpg-compendium/internal/tables"
	"github.com/KirkDiggler/rpg-compendium/internal/testutils"
)

type AppTestSuite struct {
	suite.Suite
	ctrl      *gomock.Controller
	mockStore *refstoremock.MockStore
	cfg       *config.Config
	ctx       context.Context
}

func (s *AppTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockStore = refstoremock.NewMockStore(s.ctrl)
	s.ctx = context.Background()
	s.cfg = &config.Config{
		DBPath:    "unused.sqlite",
		Language:  "fr",
		PoolLimit: 50,
		CacheTTL:  time.Hour,
		LogLevel:  "info",
	}
}

func (s *AppTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *AppTestSuite) TestNew_InvalidConfig() {
	_, err := app.New(&config.Config{})
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))
}

func (s *AppTestSuite) TestLanguage() {
	a, err := app.New(s.cfg)
	s.Require().NoError(err)
	defer a.Shutdown()

	s.Equal(i18n.French, a.Language())
	s.NotNil(a.Translator())
}

func (s *AppTestSuite) TestLoot_LoadsPoolThroughCache() {
	client, mr := testutils.CreateTestRedisClient(s.T())

	s.mockStore.EXPECT().
		List(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, input refstore.ListInput) (*refstore.ListOutput, error) {
			s.Equal(50, input.Limit)
			if input.Table != refstore.TableWeapon {
				return &refstore.ListOutput{}, nil
			}
			return &refstore.ListOutput{Records: []*refstore.Record{
				refstore.NewRecord(refstore.TableWeapon, "w1", "Dagger", []byte(`{"level":{"value":1},"price":{"value":{"sp":2}}}`), "", "", ""),
			}}, nil
		}).
		Times(len(tables.Categories))

	a, err := app.New(s.cfg,
		app.WithStore(s.mockStore),
		app.WithRedisClient(client),
		app.WithRandom(random.NewSequence(0.1)),
	)
	s.Require().NoError(err)
	defer a.Shutdown()

	svc, err := a.Loot(s.ctx)
	s.Require().NoError(err)

	out, err := svc.GenerateLoot(s.ctx, &loot.GenerateLootInput{PartyLevel: 1, Difficulty: tables.DifficultyLow})
	s.Require().NoError(err)
	s.Require().NotEmpty(out.Items)
	s.Equal("Dagger", out.Items[0].Name)

	s.True(mr.Exists("compendium:itempool:weapon"))

	// A second call reuses the loaded pool without touching the store.
	_, err = a.Loot(s.ctx)
	s.Require().NoError(err)

	removed, err := a.InvalidateItemCache(s.ctx)
	s.Require().NoError(err)
	s.Equal(len(tables.Categories), removed)
}

func (s *AppTestSuite) TestCampaigns_RequireRedis() {
	a, err := app.New(s.cfg)
	s.Require().NoError(err)
	defer a.Shutdown()

	_, err = a.Campaigns(s.ctx)
	s.Require().Error(err)
	s.True(errors.IsFailedPrecondition(err))

	removed, err := a.InvalidateItemCache(s.ctx)
	s.Require().NoError(err)
	s.Zero(removed)
}

func (s *AppTestSuite) TestCampaigns_WithRedis() {
	client, _ := testutils.CreateTestRedisClient(s.T())

	a, err := app.New(s.cfg, app.WithRedisClient(client))
	s.Require().NoError(err)
	defer a.Shutdown()

	svc, err := a.Campaigns(s.ctx)
	s.Require().NoError(err)

	out, err := svc.Create(s.ctx, &campaign.CreateInput{Name: "Outlaws", Level: 2, PlayerCount: 5})
	s.Require().NoError(err)
	s.Contains(out.Campaign.ID, "camp_")

	again, err := a.Campaigns(s.ctx)
	s.Require().NoError(err)
	s.Same(svc, again)
}

func (s *AppTestSuite) TestLoot_InjectedServiceSkipsStore() {
	svc := lootmock.NewMockService(s.ctrl)

	a, err := app.New(s.cfg, app.WithLootService(svc))
	s.Require().NoError(err)
	defer a.Shutdown()

	got, err := a.Loot(s.ctx)
	s.Require().NoError(err)
	s.Same(svc, got)
}

func TestAppTestSuite(t *testing.T) {
	suite.Run(t, new(AppTestSuite))
}
