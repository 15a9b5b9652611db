package itempool_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.uber.org/goleak"
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/rpg-compendium/internal/errors"
	"github.com/KirkDiggler/rpg-compendium/internal/itempool"
	"github.com/KirkDiggler/rpg-compendium/internal/refstore"
	refstoremock "github.com/KirkDiggler/rpg-compendium/internal/refstore/mock"
	"github.com/KirkDiggler/rpg-compendium/internal/repositories/itemcache"
	itemcachemock "github.com/KirkDiggler/rpg-compendium/internal/repositories/itemcache/mock"
	"github.com/KirkDiggler/rpg-compendium/internal/tables"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

type LoaderTestSuite struct {
	suite.Suite
	ctrl      *gomock.Controller
	mockStore *refstoremock.MockStore
	mockCache *itemcachemock.MockRepository
	ctx       context.Context
}

func (s *LoaderTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockStore = refstoremock.NewMockStore(s.ctrl)
	s.mockCache = itemcachemock.NewMockRepository(s.ctrl)
	s.ctx = context.Background()
}

func (s *LoaderTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func record(category tables.Category, id string) *refstore.Record {
	return refstore.NewRecord(refstore.Table(category), id, id, []byte(`{"level":{"value":1}}`), "", "", "")
}

func (s *LoaderTestSuite) TestWait_LoadsFromStoreAndPopulatesCache() {
	for _, category := range tables.Categories {
		s.mockCache.EXPECT().
			Get(gomock.Any(), itemcache.GetInput{Category: category}).
			Return(nil, errors.NotFound("cache miss"))
		s.mockStore.EXPECT().
			List(gomock.Any(), refstore.ListInput{Table: refstore.Table(category), Limit: 25}).
			Return(&refstore.ListOutput{Records: []*refstore.Record{record(category, string(category)+"-1")}}, nil)
		s.mockCache.EXPECT().
			Put(gomock.Any(), gomock.Any()).
			Return(&itemcache.PutOutput{}, nil)
	}

	loader, err := itempool.NewLoader(&itempool.Config{
		Store: s.mockStore,
		Cache: s.mockCache,
		Limit: 25,
	})
	s.Require().NoError(err)

	pools, err := loader.Wait(s.ctx)
	s.Require().NoError(err)
	s.True(loader.Ready())
	s.Equal(len(tables.Categories), pools.Size())
	for _, category := range tables.Categories {
		s.Require().Len(pools.Category(category), 1)
		s.Equal(string(category)+"-1", pools.Category(category)[0].ID)
	}
}

func (s *LoaderTestSuite) TestWait_CacheHitSkipsStore() {
	for _, category := range tables.Categories {
		s.mockCache.EXPECT().
			Get(gomock.Any(), itemcache.GetInput{Category: category}).
			Return(&itemcache.GetOutput{Records: []*refstore.Record{record(category, "cached")}}, nil)
	}

	loader, err := itempool.NewLoader(&itempool.Config{Store: s.mockStore, Cache: s.mockCache})
	s.Require().NoError(err)

	pools, err := loader.Wait(s.ctx)
	s.Require().NoError(err)
	s.Equal(len(tables.Categories), pools.Size())
}

func (s *LoaderTestSuite) TestWait_CacheErrorsAreNotFatal() {
	for _, category := range tables.Categories {
		s.mockCache.EXPECT().
			Get(gomock.Any(), itemcache.GetInput{Category: category}).
			Return(nil, errors.Unavailable("redis down"))
		s.mockStore.EXPECT().
			List(gomock.Any(), refstore.ListInput{Table: refstore.Table(category), Limit: itempool.DefaultLimit}).
			Return(&refstore.ListOutput{}, nil)
		s.mockCache.EXPECT().
			Put(gomock.Any(), gomock.Any()).
			Return(nil, errors.Unavailable("redis down"))
	}

	loader, err := itempool.NewLoader(&itempool.Config{Store: s.mockStore, Cache: s.mockCache})
	s.Require().NoError(err)

	_, err = loader.Wait(s.ctx)
	s.Require().NoError(err)
	s.True(loader.Ready())
}

func (s *LoaderTestSuite) TestWait_MissingTableGivesEmptyPool() {
	s.mockStore.EXPECT().
		List(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, input refstore.ListInput) (*refstore.ListOutput, error) {
			if input.Table == refstore.TableTreasure {
				return nil, errors.NotFoundf("table %s not found", input.Table)
			}
			return &refstore.ListOutput{Records: []*refstore.Record{record(tables.Category(input.Table), "x")}}, nil
		}).
		Times(len(tables.Categories))

	loader, err := itempool.NewLoader(&itempool.Config{Store: s.mockStore})
	s.Require().NoError(err)

	pools, err := loader.Wait(s.ctx)
	s.Require().NoError(err)
	s.Empty(pools.Category(tables.CategoryTreasure))
	s.Len(pools.Category(tables.CategoryWeapon), 1)
}

func (s *LoaderTestSuite) TestWait_StoreFailureMakesPoolUnavailable() {
	s.mockStore.EXPECT().
		List(gomock.Any(), gomock.Any()).
		Return(nil, errors.Internal("disk error")).
		MinTimes(1).
		MaxTimes(len(tables.Categories))

	loader, err := itempool.NewLoader(&itempool.Config{Store: s.mockStore})
	s.Require().NoError(err)

	_, err = loader.Wait(s.ctx)
	s.Require().Error(err)
	s.True(errors.IsUnavailable(err))
	s.False(loader.Ready())
}

func (s *LoaderTestSuite) TestPools_BeforeLoadIsFailedPrecondition() {
	loader, err := itempool.NewLoader(&itempool.Config{Store: s.mockStore})
	s.Require().NoError(err)

	s.False(loader.Ready())
	_, err = loader.Pools()
	s.Require().Error(err)
	s.True(errors.IsFailedPrecondition(err))
}

func (s *LoaderTestSuite) TestWait_ContextCancelled() {
	release := make(chan struct{})
	s.mockStore.EXPECT().
		List(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, _ refstore.ListInput) (*refstore.ListOutput, error) {
			<-release
			return &refstore.ListOutput{}, nil
		}).
		Times(len(tables.Categories))

	loader, err := itempool.NewLoader(&itempool.Config{Store: s.mockStore})
	s.Require().NoError(err)

	ctx, cancel := context.WithTimeout(s.ctx, 10*time.Millisecond)
	defer cancel()

	_, err = loader.Wait(ctx)
	s.Require().Error(err)
	s.True(errors.IsFailedPrecondition(err))

	close(release)
	_, err = loader.Wait(s.ctx)
	s.Require().NoError(err)
}

func (s *LoaderTestSuite) TestNewLoader_Validation() {
	_, err := itempool.NewLoader(nil)
	s.True(errors.IsInvalidArgument(err))

	_, err = itempool.NewLoader(&itempool.Config{})
	s.True(errors.IsInvalidArgument(err))

	_, err = itempool.NewLoader(&itempool.Config{Store: s.mockStore, Limit: -1})
	s.True(errors.IsInvalidArgument(err))
}

func TestLoaderTestSuite(t *testing.T) {
	suite.Run(t, new(LoaderTestSuite))
}

func TestStatic(t *testing.T) {
	pools := itempool.NewPools(map[tables.Category][]*refstore.Record{
		tables.CategoryWeapon: {record(tables.CategoryWeapon, "w")},
	})
	provider := itempool.NewStatic(pools)

	if !provider.Ready() {
		t.Fatal("static provider should be ready")
	}
	got, err := provider.Pools()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Size() != 1 {
		t.Fatalf("expected 1 record, got %d", got.Size())
	}
}
