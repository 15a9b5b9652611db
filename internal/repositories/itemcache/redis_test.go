package itemcache_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/rpg-compendium/internal/errors"
	mockclock "github.com/KirkDiggler/rpg-compendium/internal/pkg/clock/mock"
	"github.com/KirkDiggler/rpg-compendium/internal/refstore"
	"github.com/KirkDiggler/rpg-compendium/internal/repositories/itemcache"
	"github.com/KirkDiggler/rpg-compendium/internal/tables"
	"github.com/KirkDiggler/rpg-compendium/internal/testutils"
	"github.com/KirkDiggler/rpg-compendium/internal/wealth"
)

type RedisRepositoryTestSuite struct {
	suite.Suite
	ctrl      *gomock.Controller
	mockClock *mockclock.MockClock
	mr        *miniredis.Miniredis
	repo      itemcache.Repository
	ctx       context.Context
	now       time.Time
}

func (s *RedisRepositoryTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockClock = mockclock.NewMockClock(s.ctrl)
	s.ctx = context.Background()
	s.now = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

	client, mr := testutils.CreateTestRedisClient(s.T())
	s.mr = mr

	repo, err := itemcache.NewRedis(&itemcache.Config{
		Client: client,
		Clock:  s.mockClock,
		TTL:    time.Hour,
	})
	s.Require().NoError(err)
	s.repo = repo
}

func (s *RedisRepositoryTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *RedisRepositoryTestSuite) sword() *refstore.Record {
	return refstore.NewRecord(refstore.TableWeapon, "w1", "Longsword",
		[]byte(`{"level":{"value":1},"price":{"value":{"gp":2,"sp":5}},"traits":{"rarity":"uncommon"}}`),
		"", "Épée longue", "")
}

func (s *RedisRepositoryTestSuite) TestPutThenGet() {
	s.mockClock.EXPECT().Now().Return(s.now)

	out, err := s.repo.Put(s.ctx, itemcache.PutInput{
		Category: tables.CategoryWeapon,
		Records:  []*refstore.Record{s.sword(), nil},
	})
	s.Require().NoError(err)
	s.Equal(s.now.Add(time.Hour), out.ExpiresAt)

	got, err := s.repo.Get(s.ctx, itemcache.GetInput{Category: tables.CategoryWeapon})
	s.Require().NoError(err)
	s.Require().Len(got.Records, 1)
	s.True(s.now.Equal(got.CachedAt))

	rec := got.Records[0]
	s.Equal("Longsword", rec.Name)
	s.Equal("Épée longue", rec.DescriptionFR)
	s.Equal(1, rec.Attributes.Level)
	s.Equal(tables.RarityUncommon, rec.Attributes.Rarity)
	s.Equal(wealth.FromCoins(2, 5, 0), rec.Attributes.Price)
}

func (s *RedisRepositoryTestSuite) TestGet_Miss() {
	_, err := s.repo.Get(s.ctx, itemcache.GetInput{Category: tables.CategoryArmor})
	s.True(errors.IsNotFound(err))
}

func (s *RedisRepositoryTestSuite) TestGet_Expired() {
	s.mockClock.EXPECT().Now().Return(s.now)

	_, err := s.repo.Put(s.ctx, itemcache.PutInput{Category: tables.CategoryWeapon, Records: []*refstore.Record{s.sword()}})
	s.Require().NoError(err)

	s.mr.FastForward(time.Hour + time.Second)

	_, err = s.repo.Get(s.ctx, itemcache.GetInput{Category: tables.CategoryWeapon})
	s.True(errors.IsNotFound(err))
}

func (s *RedisRepositoryTestSuite) TestUnknownCategory() {
	_, err := s.repo.Get(s.ctx, itemcache.GetInput{Category: "spell"})
	s.True(errors.IsInvalidArgument(err))

	_, err = s.repo.Put(s.ctx, itemcache.PutInput{Category: "spell"})
	s.True(errors.IsInvalidArgument(err))
}

func (s *RedisRepositoryTestSuite) TestInvalidate() {
	s.mockClock.EXPECT().Now().Return(s.now).Times(2)

	for _, category := range []tables.Category{tables.CategoryWeapon, tables.CategoryTreasure} {
		_, err := s.repo.Put(s.ctx, itemcache.PutInput{Category: category, Records: []*refstore.Record{s.sword()}})
		s.Require().NoError(err)
	}

	out, err := s.repo.Invalidate(s.ctx, itemcache.InvalidateInput{})
	s.Require().NoError(err)
	s.Equal(2, out.Removed)
	s.False(s.mr.Exists("compendium:itempool:weapon"))
}

func (s *RedisRepositoryTestSuite) TestGet_CorruptPayload() {
	s.Require().NoError(s.mr.Set("compendium:itempool:weapon", "{not json"))

	_, err := s.repo.Get(s.ctx, itemcache.GetInput{Category: tables.CategoryWeapon})
	s.Require().Error(err)
	s.False(errors.IsNotFound(err))
}

func TestRedisRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(RedisRepositoryTestSuite))
}

func TestNewRedis_Validation(t *testing.T) {
	_, err := itemcache.NewRedis(&itemcache.Config{})
	if !errors.IsInvalidArgument(err) {
		t.Fatalf("expected invalid argument, got %v", err)
	}
}
