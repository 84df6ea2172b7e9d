package useraction

import (
	"context"
	"testing"
	"time"

	"TasteTrail-Backend/domain"
	"TasteTrail-Backend/entities"
	"TasteTrail-Backend/pkg/aggregate"
	"TasteTrail-Backend/pkg/dualwrite"
	"TasteTrail-Backend/pkg/mq"
	"TasteTrail-Backend/pkg/taste"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fakeActionRepo struct {
	collections map[string]*entities.Collection
	likes       map[string]*entities.Like
}

func newFakeActionRepo() *fakeActionRepo {
	return &fakeActionRepo{
		collections: map[string]*entities.Collection{},
		likes:       map[string]*entities.Like{},
	}
}

func (f *fakeActionRepo) FindActiveCollection(ctx context.Context, userID, objectID, objectType string) (*entities.Collection, error) {
	for _, c := range f.collections {
		if c.UserID == userID && c.ObjectID == objectID && c.ObjectType == objectType && !c.IsDeleted() {
			return c, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeActionRepo) FindDeletedCollection(ctx context.Context, userID, objectID, objectType string) (*entities.Collection, error) {
	for _, c := range f.collections {
		if c.UserID == userID && c.ObjectID == objectID && c.ObjectType == objectType && c.IsDeleted() {
			return c, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeActionRepo) CreateCollection(ctx context.Context, collection *entities.Collection) error {
	for _, c := range f.collections {
		if c.UserID == collection.UserID && c.ObjectID == collection.ObjectID && c.ObjectType == collection.ObjectType && !c.IsDeleted() {
			return gorm.ErrDuplicatedKey
		}
	}
	f.collections[collection.ID] = collection
	return nil
}

func (f *fakeActionRepo) SoftDeleteCollection(ctx context.Context, collection *entities.Collection) error {
	collection.DeletedAt = gorm.DeletedAt{Time: time.Now(), Valid: true}
	return nil
}

func (f *fakeActionRepo) RestoreCollection(ctx context.Context, collection *entities.Collection) error {
	collection.DeletedAt = gorm.DeletedAt{}
	return nil
}

func (f *fakeActionRepo) ListCollectedObjectIDs(ctx context.Context, userID string, objectIDs []string, objectType string) ([]string, error) {
	var ids []string
	for _, objectID := range objectIDs {
		for _, c := range f.collections {
			if c.UserID == userID && c.ObjectID == objectID && c.ObjectType == objectType && !c.IsDeleted() {
				ids = append(ids, objectID)
			}
		}
	}
	return ids, nil
}

func (f *fakeActionRepo) FindActiveLike(ctx context.Context, userID, objectID, objectType string) (*entities.Like, error) {
	for _, l := range f.likes {
		if l.UserID == userID && l.ObjectID == objectID && l.ObjectType == objectType && !l.IsDeleted() {
			return l, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeActionRepo) FindDeletedLike(ctx context.Context, userID, objectID, objectType string) (*entities.Like, error) {
	for _, l := range f.likes {
		if l.UserID == userID && l.ObjectID == objectID && l.ObjectType == objectType && l.IsDeleted() {
			return l, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeActionRepo) CreateLike(ctx context.Context, like *entities.Like) error {
	for _, l := range f.likes {
		if l.UserID == like.UserID && l.ObjectID == like.ObjectID && l.ObjectType == like.ObjectType && !l.IsDeleted() {
			return gorm.ErrDuplicatedKey
		}
	}
	f.likes[like.ID] = like
	return nil
}

func (f *fakeActionRepo) SoftDeleteLike(ctx context.Context, like *entities.Like) error {
	like.DeletedAt = gorm.DeletedAt{Time: time.Now(), Valid: true}
	return nil
}

func (f *fakeActionRepo) RestoreLike(ctx context.Context, like *entities.Like) error {
	like.DeletedAt = gorm.DeletedAt{}
	return nil
}

type stubDishRepo struct {
	dishes map[string]*entities.Dish
}

func (s *stubDishRepo) FindActiveByID(ctx context.Context, id string) (*entities.Dish, error) {
	d, ok := s.dishes[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return d, nil
}

func (s *stubDishRepo) FindDeletedByID(ctx context.Context, id string) (*entities.Dish, error) {
	return nil, gorm.ErrRecordNotFound
}

func (s *stubDishRepo) Create(ctx context.Context, dish *entities.Dish) error { return nil }
func (s *stubDishRepo) Update(ctx context.Context, dish *entities.Dish) error { return nil }
func (s *stubDishRepo) SoftDelete(ctx context.Context, id string) error       { return nil }
func (s *stubDishRepo) Restore(ctx context.Context, dish *entities.Dish) error {
	return nil
}

func (s *stubDishRepo) ListByMerchant(ctx context.Context, merchantID string) ([]*entities.Dish, error) {
	var dishes []*entities.Dish
	for _, d := range s.dishes {
		if d.MerchantID == merchantID {
			dishes = append(dishes, d)
		}
	}
	return dishes, nil
}

func (s *stubDishRepo) BulkSoftDelete(ctx context.Context, ids []string, createdBy string) (int64, error) {
	return 0, nil
}

type stubTasteRepo struct {
	tastes map[string]*entities.Taste
}

func (s *stubTasteRepo) FindActiveByID(ctx context.Context, id string) (*entities.Taste, error) {
	t, ok := s.tastes[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return t, nil
}

func (s *stubTasteRepo) FindByIDIncludingDeleted(ctx context.Context, id string) (*entities.Taste, error) {
	return s.FindActiveByID(ctx, id)
}

func (s *stubTasteRepo) FindActiveByUserDish(ctx context.Context, userID, dishID string) (*entities.Taste, error) {
	return nil, gorm.ErrRecordNotFound
}

func (s *stubTasteRepo) FindDeletedByUserDish(ctx context.Context, userID, dishID string) (*entities.Taste, error) {
	return nil, gorm.ErrRecordNotFound
}

func (s *stubTasteRepo) Create(ctx context.Context, taste *entities.Taste) error     { return nil }
func (s *stubTasteRepo) Update(ctx context.Context, taste *entities.Taste) error     { return nil }
func (s *stubTasteRepo) SoftDelete(ctx context.Context, taste *entities.Taste) error { return nil }
func (s *stubTasteRepo) Restore(ctx context.Context, taste *entities.Taste) error    { return nil }

func (s *stubTasteRepo) ListActiveDishIDsByUser(ctx context.Context, userID string, dishIDs []string) ([]string, error) {
	var ids []string
	for _, dishID := range dishIDs {
		for _, t := range s.tastes {
			if t.UserID == userID && t.DishID == dishID && !t.IsDeleted() {
				ids = append(ids, dishID)
			}
		}
	}
	return ids, nil
}

func (s *stubTasteRepo) Transaction(ctx context.Context, fn func(repo taste.TasteRepository, agg aggregate.AggregateRepository) error) error {
	return fn(s, nil)
}

type stubMerchantRepo struct {
	merchants map[string]*entities.Merchant
}

func (s *stubMerchantRepo) FindByID(ctx context.Context, id string) (*entities.Merchant, error) {
	m, ok := s.merchants[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return m, nil
}

func (s *stubMerchantRepo) Update(ctx context.Context, merchant *entities.Merchant) error {
	return nil
}

type stubAggregateService struct {
	tasteRecounts []string
}

func (s *stubAggregateService) RecountDishRecommendations(ctx context.Context, dishID string) error {
	return nil
}

func (s *stubAggregateService) RecountTasteUseful(ctx context.Context, tasteID string) error {
	s.tasteRecounts = append(s.tasteRecounts, tasteID)
	return nil
}

func (s *stubAggregateService) WithRepository(aggregate.AggregateRepository) aggregate.AggregateService {
	return s
}

type collectPublisher struct {
	collectMessages []mq.DishCollectMessage
}

func (c *collectPublisher) PublishTasteCreate(mq.TasteCreateMessage) {}
func (c *collectPublisher) PublishDishCollect(msg mq.DishCollectMessage) {
	c.collectMessages = append(c.collectMessages, msg)
}
func (c *collectPublisher) PublishMediaCreate(mq.MediaCreateMessage)   {}
func (c *collectPublisher) PublishTasteAddDish(mq.TasteAddDishMessage) {}
func (c *collectPublisher) Close() error                               { return nil }

type actionFixture struct {
	service   ActionService
	actions   *fakeActionRepo
	dishes    *stubDishRepo
	tastes    *stubTasteRepo
	merchants *stubMerchantRepo
	aggregate *stubAggregateService
	publisher *collectPublisher
}

func newActionFixture() *actionFixture {
	f := &actionFixture{
		actions:   newFakeActionRepo(),
		dishes:    &stubDishRepo{dishes: map[string]*entities.Dish{}},
		tastes:    &stubTasteRepo{tastes: map[string]*entities.Taste{}},
		merchants: &stubMerchantRepo{merchants: map[string]*entities.Merchant{}},
		aggregate: &stubAggregateService{},
		publisher: &collectPublisher{},
	}
	f.service = NewActionService(
		f.actions,
		f.dishes,
		f.tastes,
		f.merchants,
		f.aggregate,
		dualwrite.NewCoordinator(nil),
		f.publisher,
	)
	return f
}

func TestCollectDishLifecycle(t *testing.T) {
	f := newActionFixture()
	f.dishes.dishes["dish-1"] = &entities.Dish{ID: "dish-1"}
	ctx := context.Background()

	require.NoError(t, f.service.CollectDish(ctx, "user-1", "dish-1"))
	assert.Len(t, f.actions.collections, 1)

	err := f.service.CollectDish(ctx, "user-1", "dish-1")
	assert.ErrorIs(t, err, domain.ErrAlreadyCollected)

	require.NoError(t, f.service.UncollectDish(ctx, "user-1", "dish-1"))

	err = f.service.UncollectDish(ctx, "user-1", "dish-1")
	assert.ErrorIs(t, err, domain.ErrNotCollectedYet)

	// Re-collecting restores the soft-deleted row instead of inserting.
	require.NoError(t, f.service.CollectDish(ctx, "user-1", "dish-1"))
	assert.Len(t, f.actions.collections, 1)

	require.Len(t, f.publisher.collectMessages, 3)
	assert.Equal(t, mq.CollectStateCollect, f.publisher.collectMessages[0].State)
	assert.Equal(t, mq.CollectStateUncollect, f.publisher.collectMessages[1].State)
	assert.Equal(t, mq.CollectStateCollect, f.publisher.collectMessages[2].State)
}

func TestCollectDishUnknownDish(t *testing.T) {
	f := newActionFixture()

	err := f.service.CollectDish(context.Background(), "user-1", "missing")
	assert.ErrorIs(t, err, domain.ErrDishNotFound)
}

func TestCollectDishRequiresUser(t *testing.T) {
	f := newActionFixture()

	err := f.service.CollectDish(context.Background(), "", "dish-1")
	assert.ErrorIs(t, err, domain.ErrUnauthenticated)
}

func TestLikeTasteLifecycle(t *testing.T) {
	f := newActionFixture()
	f.tastes.tastes["taste-1"] = &entities.Taste{ID: "taste-1", UserID: "author", DishID: "dish-1"}
	ctx := context.Background()

	require.NoError(t, f.service.LikeTaste(ctx, "user-1", "taste-1"))
	assert.Len(t, f.actions.likes, 1)

	err := f.service.LikeTaste(ctx, "user-1", "taste-1")
	assert.ErrorIs(t, err, domain.ErrAlreadyLiked)

	require.NoError(t, f.service.UnlikeTaste(ctx, "user-1", "taste-1"))

	err = f.service.UnlikeTaste(ctx, "user-1", "taste-1")
	assert.ErrorIs(t, err, domain.ErrNotLikedYet)

	require.NoError(t, f.service.LikeTaste(ctx, "user-1", "taste-1"))
	assert.Len(t, f.actions.likes, 1)

	// Every like and unlike recomputes the useful counter.
	assert.Equal(t, []string{"taste-1", "taste-1", "taste-1"}, f.aggregate.tasteRecounts)
}

func TestLikeTasteUnknownTaste(t *testing.T) {
	f := newActionFixture()

	err := f.service.LikeTaste(context.Background(), "user-1", "missing")
	assert.ErrorIs(t, err, domain.ErrTasteNotFound)
}

func TestGetUserMerchantItems(t *testing.T) {
	f := newActionFixture()
	ctx := context.Background()

	f.merchants.merchants["m-1"] = &entities.Merchant{ID: "m-1", Name: "Noodle House"}
	f.dishes.dishes["dish-1"] = &entities.Dish{ID: "dish-1", MerchantID: "m-1"}
	f.dishes.dishes["dish-2"] = &entities.Dish{ID: "dish-2", MerchantID: "m-1"}
	f.dishes.dishes["dish-3"] = &entities.Dish{ID: "dish-3", MerchantID: "other"}

	require.NoError(t, f.service.CollectDish(ctx, "user-1", "dish-1"))
	f.tastes.tastes["t-1"] = &entities.Taste{ID: "t-1", UserID: "user-1", DishID: "dish-2"}

	res, err := f.service.GetUserMerchantItems(ctx, "user-1", "m-1")
	require.NoError(t, err)

	assert.Equal(t, "Noodle House", res.Merchant.Name)
	assert.Equal(t, []string{"dish-1"}, res.Collected)
	assert.Equal(t, []string{"dish-2"}, res.Recommended)
}

func TestGetUserMerchantItemsUnknownMerchant(t *testing.T) {
	f := newActionFixture()

	_, err := f.service.GetUserMerchantItems(context.Background(), "user-1", "missing")
	assert.ErrorIs(t, err, domain.ErrMerchantNotFound)
}
