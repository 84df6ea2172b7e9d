package domain

import (
	"errors"
)

var (
	MessageSuccessPresignedURL = "presigned url generated successfully"
	MessageSuccessCreateMedia  = "media created successfully"
	MessageSuccessGetMedia     = "media retrieved successfully"

	MessageFailedPresignedURL = "failed to generate presigned url"
	MessageFailedCreateMedia  = "failed to create media"
	MessageFailedGetMedia     = "failed to retrieve media"

	ErrInvalidMediaType   = errors.New("invalid media type")
	ErrInvalidContentType = errors.New("invalid content type")
	ErrImageFetchFailed   = errors.New("failed to fetch image")
)

type (
	PresignedURLRequest struct {
		FileName    string `json:"file_name" query:"file_name" validate:"required"`
		ContentType string `json:"content_type" query:"content_type" validate:"required"`
	}

	PresignedURLResponse struct {
		UploadURL string `json:"upload_url"`
		MediaURL  string `json:"media_url"`
		ObjectKey string `json:"object_key"`
	}

	CreateMediaRequest struct {
		URL    string `json:"url" validate:"required,url"`
		Type   string `json:"type" validate:"required,oneof=IMAGE VIDEO"`
		Source string `json:"source" validate:"omitempty,oneof=INTERNET USER_AVATAR UPLOAD"`
	}

	MediaResponse struct {
		ID       string `json:"id"`
		Type     string `json:"type"`
		URL      string `json:"url"`
		Blurhash string `json:"blurhash,omitempty"`
		Width    int    `json:"width"`
		Height   int    `json:"height"`
		Status   string `json:"status"`
	}
)
