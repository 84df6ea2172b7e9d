package media

import (
	"context"
	"image"
	"image/color"
	"image/png"
	"net/http"
	"net/http/httptest"
	"testing"

	"TasteTrail-Backend/domain"
	"TasteTrail-Backend/entities"
	"TasteTrail-Backend/pkg/mq"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

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

type fakeS3 struct{}

func (fakeS3) PresignPutURL(ctx context.Context, fileName, contentType string) (string, string, error) {
	return "https://bucket.s3.amazonaws.com/upload?sig=abc", "media/" + fileName, nil
}

func (fakeS3) GetPublicLinkKey(objectKey string) string {
	return "https://bucket.s3.amazonaws.com/" + objectKey
}

func (fakeS3) GetObjectKeyFromLink(link string) string { return link }

func (fakeS3) ContentTypeAllowed(contentType string) bool {
	return contentType == "image/jpeg" || contentType == "image/png"
}

type mediaPublisher struct {
	mediaMessages []mq.MediaCreateMessage
}

func (p *mediaPublisher) PublishTasteCreate(mq.TasteCreateMessage) {}
func (p *mediaPublisher) PublishDishCollect(mq.DishCollectMessage) {}
func (p *mediaPublisher) PublishMediaCreate(msg mq.MediaCreateMessage) {
	p.mediaMessages = append(p.mediaMessages, msg)
}
func (p *mediaPublisher) PublishTasteAddDish(mq.TasteAddDishMessage) {}
func (p *mediaPublisher) Close() error                               { return nil }

func newMediaFixture() (MediaService, *fakeMediaRepo, *mediaPublisher) {
	repo := &fakeMediaRepo{medias: map[string]*entities.Media{}}
	publisher := &mediaPublisher{}
	return NewMediaService(repo, fakeS3{}, publisher), repo, publisher
}

func pngServer(t *testing.T, width, height int) *httptest.Server {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for x := 0; x < width; x++ {
		for y := 0; y < height; y++ {
			img.Set(x, y, color.RGBA{R: uint8(x % 256), G: uint8(y % 256), B: 128, A: 255})
		}
	}
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "image/png")
		require.NoError(t, png.Encode(w, img))
	}))
}

func TestGeneratePresignedURL(t *testing.T) {
	service, _, _ := newMediaFixture()

	res, err := service.GeneratePresignedURL(context.Background(), domain.PresignedURLRequest{
		FileName:    "photo.png",
		ContentType: "image/png",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, res.UploadURL)
	assert.Equal(t, "media/photo.png", res.ObjectKey)
	assert.Equal(t, "https://bucket.s3.amazonaws.com/media/photo.png", res.MediaURL)
}

func TestGeneratePresignedURLRejectsContentType(t *testing.T) {
	service, _, _ := newMediaFixture()

	_, err := service.GeneratePresignedURL(context.Background(), domain.PresignedURLRequest{
		FileName:    "clip.mp4",
		ContentType: "video/mp4",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidContentType)
}

func TestCreateMediaExtractsImageMetadata(t *testing.T) {
	server := pngServer(t, 32, 24)
	defer server.Close()

	service, repo, publisher := newMediaFixture()

	res, err := service.CreateMedia(context.Background(), domain.CreateMediaRequest{
		URL:  server.URL,
		Type: entities.MediaTypeImage,
	}, "user-1")
	require.NoError(t, err)

	assert.Equal(t, entities.MediaStatusProcessed, res.Status)
	assert.Equal(t, 32, res.Width)
	assert.Equal(t, 24, res.Height)
	assert.NotEmpty(t, res.Blurhash)

	stored := repo.medias[res.ID]
	require.NotNil(t, stored)
	assert.Equal(t, entities.MediaSourceUpload, stored.Source)

	require.Len(t, publisher.mediaMessages, 1)
	assert.Equal(t, res.ID, publisher.mediaMessages[0].MediaID)
}

func TestCreateMediaFetchFailureStillRegisters(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	service, repo, _ := newMediaFixture()

	res, err := service.CreateMedia(context.Background(), domain.CreateMediaRequest{
		URL:  server.URL,
		Type: entities.MediaTypeImage,
	}, "user-1")
	require.NoError(t, err)

	assert.Equal(t, entities.MediaStatusFailed, res.Status)
	assert.Contains(t, repo.medias, res.ID)
}

func TestCreateMediaVideoSkipsProcessing(t *testing.T) {
	service, _, _ := newMediaFixture()

	res, err := service.CreateMedia(context.Background(), domain.CreateMediaRequest{
		URL:    "https://cdn.example.com/clip.mp4",
		Type:   entities.MediaTypeVideo,
		Source: entities.MediaSourceInternet,
	}, "user-1")
	require.NoError(t, err)

	assert.Equal(t, entities.MediaStatusProcessed, res.Status)
	assert.Zero(t, res.Width)
}

func TestGetMediaByID(t *testing.T) {
	service, repo, _ := newMediaFixture()
	repo.medias["m-1"] = &entities.Media{ID: "m-1", Type: entities.MediaTypeImage, Status: entities.MediaStatusProcessed}

	res, err := service.GetMediaByID(context.Background(), "m-1")
	require.NoError(t, err)
	assert.Equal(t, "m-1", res.ID)

	_, err = service.GetMediaByID(context.Background(), "missing")
	assert.ErrorIs(t, err, domain.ErrMediaNotFound)
}
