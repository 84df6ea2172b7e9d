package media

import (
	"bytes"
	"context"
	"errors"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"log"
	"net/http"
	"time"

	"TasteTrail-Backend/domain"
	"TasteTrail-Backend/entities"
	"TasteTrail-Backend/internal/utils/storage"
	"TasteTrail-Backend/pkg/mq"

	"github.com/bbrks/go-blurhash"
	"github.com/google/uuid"
	_ "golang.org/x/image/webp"
	"gorm.io/gorm"
)

const maxImageBytes = 10 << 20

type (
	MediaService interface {
		GeneratePresignedURL(ctx context.Context, req domain.PresignedURLRequest) (domain.PresignedURLResponse, error)
		CreateMedia(ctx context.Context, req domain.CreateMediaRequest, userID string) (domain.MediaResponse, error)
		GetMediaByID(ctx context.Context, id string) (domain.MediaResponse, error)
	}

	mediaService struct {
		mediaRepository MediaRepository
		s3              storage.AwsS3
		publisher       mq.Publisher
		httpClient      *http.Client
	}
)

func NewMediaService(mediaRepository MediaRepository, s3 storage.AwsS3, publisher mq.Publisher) MediaService {
	return &mediaService{
		mediaRepository: mediaRepository,
		s3:              s3,
		publisher:       publisher,
		httpClient:      &http.Client{Timeout: 15 * time.Second},
	}
}

func (s *mediaService) GeneratePresignedURL(ctx context.Context, req domain.PresignedURLRequest) (domain.PresignedURLResponse, error) {
	if !s.s3.ContentTypeAllowed(req.ContentType) {
		return domain.PresignedURLResponse{}, domain.ErrInvalidContentType
	}

	uploadURL, objectKey, err := s.s3.PresignPutURL(ctx, req.FileName, req.ContentType)
	if err != nil {
		return domain.PresignedURLResponse{}, err
	}

	return domain.PresignedURLResponse{
		UploadURL: uploadURL,
		MediaURL:  s.s3.GetPublicLinkKey(objectKey),
		ObjectKey: objectKey,
	}, nil
}

// CreateMedia registers an uploaded or imported media. For images the
// bytes are fetched to extract dimensions and a blurhash; a fetch or
// decode failure leaves the record in Failed status but still registered.
func (s *mediaService) CreateMedia(ctx context.Context, req domain.CreateMediaRequest, userID string) (domain.MediaResponse, error) {
	source := req.Source
	if source == "" {
		source = entities.MediaSourceUpload
	}

	media := &entities.Media{
		ID:     uuid.New().String(),
		UserID: userID,
		Type:   req.Type,
		Source: source,
		URL:    req.URL,
		Status: entities.MediaStatusPending,
	}

	if req.Type == entities.MediaTypeImage {
		width, height, hash, err := s.processImageURL(ctx, req.URL)
		if err != nil {
			log.Printf("failed to process image %s: %v", req.URL, err)
			media.Status = entities.MediaStatusFailed
		} else {
			media.Width = width
			media.Height = height
			media.Blurhash = hash
			media.Status = entities.MediaStatusProcessed
		}
	} else {
		media.Status = entities.MediaStatusProcessed
	}

	if err := s.mediaRepository.Create(ctx, media); err != nil {
		return domain.MediaResponse{}, err
	}

	s.publisher.PublishMediaCreate(mq.MediaCreateMessage{
		MediaID: media.ID,
		Type:    media.Type,
		URL:     media.URL,
		Source:  media.Source,
		Width:   media.Width,
		Height:  media.Height,
	})

	return toMediaResponse(media), nil
}

func (s *mediaService) GetMediaByID(ctx context.Context, id string) (domain.MediaResponse, error) {
	media, err := s.mediaRepository.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.MediaResponse{}, domain.ErrMediaNotFound
		}
		return domain.MediaResponse{}, err
	}
	return toMediaResponse(media), nil
}

func (s *mediaService) processImageURL(ctx context.Context, url string) (int, int, string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return 0, 0, "", err
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return 0, 0, "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return 0, 0, "", domain.ErrImageFetchFailed
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxImageBytes))
	if err != nil {
		return 0, 0, "", err
	}

	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return 0, 0, "", err
	}

	hash, err := blurhash.Encode(4, 3, img)
	if err != nil {
		return 0, 0, "", err
	}

	bounds := img.Bounds()
	return bounds.Dx(), bounds.Dy(), hash, nil
}

func toMediaResponse(media *entities.Media) domain.MediaResponse {
	return domain.MediaResponse{
		ID:       media.ID,
		Type:     media.Type,
		URL:      media.URL,
		Blurhash: media.Blurhash,
		Width:    media.Width,
		Height:   media.Height,
		Status:   media.Status,
	}
}
