package storage

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"TasteTrail-Backend/internal/utils"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// Content types accepted for media uploads.
var AllowImage = []string{"image/jpeg", "image/png", "image/webp", "image/gif"}

type (
	AwsS3 interface {
		PresignPutURL(ctx context.Context, fileName, contentType string) (string, string, error)
		GetPublicLinkKey(objectKey string) string
		GetObjectKeyFromLink(link string) string
		ContentTypeAllowed(contentType string) bool
	}

	awsS3 struct {
		client        *s3.Client
		presignClient *s3.PresignClient
		bucket        string
		region        string
	}
)

func NewAwsS3() AwsS3 {
	region := utils.GetConfig("AWS_S3_REGION")
	cfg, err := awsconfig.LoadDefaultConfig(
		context.Background(),
		awsconfig.WithRegion(region),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			utils.GetConfig("AWS_ACCESS_KEY"),
			utils.GetConfig("AWS_SECRET_KEY"),
			"",
		)),
	)
	if err != nil {
		log.Printf("error loading AWS config: %v", err)
	}

	client := s3.NewFromConfig(cfg)
	return &awsS3{
		client:        client,
		presignClient: s3.NewPresignClient(client),
		bucket:        utils.GetConfig("AWS_S3_BUCKET"),
		region:        region,
	}
}

// PresignPutURL returns a presigned PUT URL plus the object key the client
// must upload to. The URL is valid for 15 minutes.
func (s *awsS3) PresignPutURL(ctx context.Context, fileName, contentType string) (string, string, error) {
	objectKey := fmt.Sprintf("media/%d-%s", time.Now().UnixNano(), fileName)

	req, err := s.presignClient.PresignPutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(objectKey),
		ContentType: aws.String(contentType),
	}, s3.WithPresignExpires(15*time.Minute))
	if err != nil {
		return "", "", err
	}

	return req.URL, objectKey, nil
}

func (s *awsS3) GetPublicLinkKey(objectKey string) string {
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", s.bucket, s.region, objectKey)
}

func (s *awsS3) GetObjectKeyFromLink(link string) string {
	prefix := fmt.Sprintf("https://%s.s3.%s.amazonaws.com/", s.bucket, s.region)
	if !strings.HasPrefix(link, prefix) {
		return ""
	}
	return strings.TrimPrefix(link, prefix)
}

func (s *awsS3) ContentTypeAllowed(contentType string) bool {
	for _, allowed := range AllowImage {
		if contentType == allowed {
			return true
		}
	}
	return false
}
