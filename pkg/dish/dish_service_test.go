package dish

import (
	"context"
	"testing"
	"time"

	"TasteTrail-Backend/domain"
	"TasteTrail-Backend/entities"
	"TasteTrail-Backend/pkg/mq"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fakeDishRepo struct {
	dishes map[string]*entities.Dish
}

func newFakeDishRepo() *fakeDishRepo {
	return &fakeDishRepo{dishes: map[string]*entities.Dish{}}
}

func (f *fakeDishRepo) FindActiveByID(ctx context.Context, id string) (*entities.Dish, error) {
	d, ok := f.dishes[id]
	if !ok || d.IsDeleted() {
		return nil, gorm.ErrRecordNotFound
	}
	return d, nil
}

func (f *fakeDishRepo) FindDeletedByID(ctx context.Context, id string) (*entities.Dish, error) {
	d, ok := f.dishes[id]
	if !ok || !d.IsDeleted() {
		return nil, gorm.ErrRecordNotFound
	}
	return d, nil
}

func (f *fakeDishRepo) Create(ctx context.Context, dish *entities.Dish) error {
	f.dishes[dish.ID] = dish
	return nil
}

func (f *fakeDishRepo) Update(ctx context.Context, dish *entities.Dish) error {
	f.dishes[dish.ID] = dish
	return nil
}

func (f *fakeDishRepo) SoftDelete(ctx context.Context, id string) error {
	if d, ok := f.dishes[id]; ok {
		d.DeletedAt = gorm.DeletedAt{Time: time.Now(), Valid: true}
	}
	return nil
}

func (f *fakeDishRepo) Restore(ctx context.Context, dish *entities.Dish) error {
	dish.DeletedAt = gorm.DeletedAt{}
	f.dishes[dish.ID] = dish
	return nil
}

func (f *fakeDishRepo) ListByMerchant(ctx context.Context, merchantID string) ([]*entities.Dish, error) {
	var dishes []*entities.Dish
	for _, d := range f.dishes {
		if d.MerchantID == merchantID && !d.IsDeleted() {
			dishes = append(dishes, d)
		}
	}
	return dishes, nil
}

func (f *fakeDishRepo) BulkSoftDelete(ctx context.Context, ids []string, createdBy string) (int64, error) {
	var n int64
	for _, id := range ids {
		if d, ok := f.dishes[id]; ok && d.CreatedBy == createdBy && !d.IsDeleted() {
			d.DeletedAt = gorm.DeletedAt{Time: time.Now(), Valid: true}
			n++
		}
	}
	return n, nil
}

type fakeMerchantRepo struct {
	merchants map[string]*entities.Merchant
}

func (f *fakeMerchantRepo) FindByID(ctx context.Context, id string) (*entities.Merchant, error) {
	m, ok := f.merchants[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return m, nil
}

func (f *fakeMerchantRepo) Update(ctx context.Context, merchant *entities.Merchant) error {
	f.merchants[merchant.ID] = merchant
	return nil
}

type fakeMediaRepo struct {
	medias map[string]*entities.Media
}

func (f *fakeMediaRepo) Create(ctx context.Context, media *entities.Media) error {
	f.medias[media.ID] = media
	return nil
}

func (f *fakeMediaRepo) FindByID(ctx context.Context, id string) (*entities.Media, error) {
	m, ok := f.medias[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return m, nil
}

func (f *fakeMediaRepo) ListByIDs(ctx context.Context, ids []string) ([]*entities.Media, error) {
	var medias []*entities.Media
	for _, id := range ids {
		if m, ok := f.medias[id]; ok {
			medias = append(medias, m)
		}
	}
	return medias, nil
}

type addDishPublisher struct {
	addDishMessages []mq.TasteAddDishMessage
}

func (p *addDishPublisher) PublishTasteCreate(mq.TasteCreateMessage) {}
func (p *addDishPublisher) PublishDishCollect(mq.DishCollectMessage) {}
func (p *addDishPublisher) PublishMediaCreate(mq.MediaCreateMessage) {}
func (p *addDishPublisher) PublishTasteAddDish(msg mq.TasteAddDishMessage) {
	p.addDishMessages = append(p.addDishMessages, msg)
}
func (p *addDishPublisher) Close() error { return nil }

type dishFixture struct {
	service   DishService
	dishes    *fakeDishRepo
	merchants *fakeMerchantRepo
	medias    *fakeMediaRepo
	publisher *addDishPublisher
}

func newDishFixture() *dishFixture {
	f := &dishFixture{
		dishes: newFakeDishRepo(),
		merchants: &fakeMerchantRepo{merchants: map[string]*entities.Merchant{
			"m-1": {ID: "m-1", Name: "Noodle House", Latitude: 49.2827, Longitude: -123.1207},
		}},
		medias:    &fakeMediaRepo{medias: map[string]*entities.Media{}},
		publisher: &addDishPublisher{},
	}
	f.service = NewDishService(f.dishes, f.merchants, f.medias, f.publisher)
	return f
}

func TestCreateDish(t *testing.T) {
	f := newDishFixture()

	res, err := f.service.CreateDish(context.Background(), domain.CreateDishRequest{
		Title:      "Dan Dan Noodles",
		MerchantID: "m-1",
		Price:      1450,
	}, "user-1")

	require.NoError(t, err)
	assert.NotEmpty(t, res.ID)
	assert.Equal(t, "Dan Dan Noodles", res.Title)

	stored := f.dishes.dishes[res.ID]
	require.NotNil(t, stored)
	assert.Equal(t, "user-1", stored.CreatedBy)

	require.Len(t, f.publisher.addDishMessages, 1)
	assert.Equal(t, res.ID, f.publisher.addDishMessages[0].ID)
}

func TestCreateDishUnknownMerchant(t *testing.T) {
	f := newDishFixture()

	_, err := f.service.CreateDish(context.Background(), domain.CreateDishRequest{
		Title:      "Dan Dan Noodles",
		MerchantID: "missing",
	}, "user-1")
	assert.ErrorIs(t, err, domain.ErrMerchantNotFound)
}

func TestCreateDishRejectsUnknownMedia(t *testing.T) {
	f := newDishFixture()

	_, err := f.service.CreateDish(context.Background(), domain.CreateDishRequest{
		Title:      "Dan Dan Noodles",
		MerchantID: "m-1",
		MediaIDs:   []string{"missing"},
	}, "user-1")
	assert.ErrorIs(t, err, domain.ErrMediaNotFound)
}

func TestUpdateDishOwnership(t *testing.T) {
	f := newDishFixture()
	ctx := context.Background()

	created, err := f.service.CreateDish(ctx, domain.CreateDishRequest{
		Title: "Dan Dan Noodles", MerchantID: "m-1",
	}, "user-1")
	require.NoError(t, err)

	_, err = f.service.UpdateDish(ctx, created.ID, domain.UpdateDishRequest{Title: "Renamed"}, "user-2")
	assert.ErrorIs(t, err, domain.ErrUserNotAllowed)

	updated, err := f.service.UpdateDish(ctx, created.ID, domain.UpdateDishRequest{Title: "Renamed"}, "user-1")
	require.NoError(t, err)
	assert.Equal(t, "Renamed", updated.Title)
}

func TestDeleteAndRestoreDish(t *testing.T) {
	f := newDishFixture()
	ctx := context.Background()

	created, err := f.service.CreateDish(ctx, domain.CreateDishRequest{
		Title: "Dan Dan Noodles", MerchantID: "m-1",
	}, "user-1")
	require.NoError(t, err)

	err = f.service.DeleteDish(ctx, created.ID, "user-2")
	assert.ErrorIs(t, err, domain.ErrUserNotAllowed)

	require.NoError(t, f.service.DeleteDish(ctx, created.ID, "user-1"))
	assert.True(t, f.dishes.dishes[created.ID].IsDeleted())

	// Restoring an active dish is rejected.
	created2, err := f.service.CreateDish(ctx, domain.CreateDishRequest{
		Title: "Wontons", MerchantID: "m-1",
	}, "user-1")
	require.NoError(t, err)
	_, err = f.service.RestoreDish(ctx, created2.ID, "user-1")
	assert.ErrorIs(t, err, domain.ErrDishNotDeleted)

	restored, err := f.service.RestoreDish(ctx, created.ID, "user-1")
	require.NoError(t, err)
	assert.Equal(t, created.ID, restored.ID)
	assert.False(t, f.dishes.dishes[created.ID].IsDeleted())
}

func TestBulkDeleteDishesSkipsForeign(t *testing.T) {
	f := newDishFixture()
	ctx := context.Background()

	mine, err := f.service.CreateDish(ctx, domain.CreateDishRequest{Title: "Mine", MerchantID: "m-1"}, "user-1")
	require.NoError(t, err)
	theirs, err := f.service.CreateDish(ctx, domain.CreateDishRequest{Title: "Theirs", MerchantID: "m-1"}, "user-2")
	require.NoError(t, err)

	res, err := f.service.BulkDeleteDishes(ctx, domain.BulkDeleteDishesRequest{
		DishIDs: []string{mine.ID, theirs.ID},
	}, "user-1")
	require.NoError(t, err)

	assert.Equal(t, int64(1), res.Deleted)
	assert.True(t, f.dishes.dishes[mine.ID].IsDeleted())
	assert.False(t, f.dishes.dishes[theirs.ID].IsDeleted())

	_, err = f.service.BulkDeleteDishes(ctx, domain.BulkDeleteDishesRequest{}, "user-1")
	assert.ErrorIs(t, err, domain.ErrEmptyDishIDs)
}

func TestGetDishOverview(t *testing.T) {
	f := newDishFixture()
	ctx := context.Background()

	created, err := f.service.CreateDish(ctx, domain.CreateDishRequest{
		Title: "Dan Dan Noodles", MerchantID: "m-1",
	}, "user-1")
	require.NoError(t, err)

	overview, err := f.service.GetDishOverview(ctx, created.ID, nil, nil)
	require.NoError(t, err)
	assert.Equal(t, "Noodle House", overview.Merchant.Name)
	assert.Nil(t, overview.DistanceMeters)

	lat, lon := 49.2827, -123.1207
	overview, err = f.service.GetDishOverview(ctx, created.ID, &lat, &lon)
	require.NoError(t, err)
	require.NotNil(t, overview.DistanceMeters)
	assert.InDelta(t, 0, *overview.DistanceMeters, 1)
}
