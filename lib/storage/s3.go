package storage

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/jpeg"
	"io"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/disintegration/imaging"
	"github.com/google/uuid"
)

const thumbnailWidth = 400

// S3Store stores images in an S3-compatible bucket (S3, R2, MinIO)
type S3Store struct {
	client     *s3.Client
	bucket     string
	publicURL  string
	httpClient *http.Client
}

// S3Config holds the settings needed to reach the bucket
type S3Config struct {
	Endpoint        string // empty for plain AWS S3
	Region          string
	AccessKeyID     string
	AccessKeySecret string
	Bucket          string
	PublicURL       string // CDN/public base URL the bucket is served from
}

// NewS3Store creates a store backed by an S3-compatible bucket
func NewS3Store(ctx context.Context, cfg S3Config) (*S3Store, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(cfg.AccessKeyID, cfg.AccessKeySecret, "")),
		awsconfig.WithRegion(cfg.Region),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load storage config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
		}
	})

	return &S3Store{
		client:    client,
		bucket:    cfg.Bucket,
		publicURL: strings.TrimSuffix(cfg.PublicURL, "/"),
		httpClient: &http.Client{
			Timeout: 60 * time.Second,
		},
	}, nil
}

// UploadFromURL downloads the source image, stores the original and a
// thumbnail, and returns the artifact metadata.
func (s *S3Store) UploadFromURL(ctx context.Context, sourceURL, folder string) (*UploadResult, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, sourceURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create download request: %w", err)
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to download source image: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("failed to download source image: status %d", resp.StatusCode)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read source image: %w", err)
	}

	img, err := imaging.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to decode source image: %w", err)
	}
	bounds := img.Bounds()

	key := fmt.Sprintf("%s/%s.jpg", SanitizeFolder(folder), uuid.NewString())

	if err := s.putObject(ctx, key, data); err != nil {
		return nil, err
	}

	// Thumbnail upload is best-effort: a missing thumbnail degrades the UI,
	// it must not fail the intake flow.
	thumbKey := ThumbKey(key)
	if thumbData, err := encodeThumbnail(img); err != nil {
		log.Printf("Warning: failed to encode thumbnail for %s: %v", key, err)
		thumbKey = key
	} else if err := s.putObject(ctx, thumbKey, thumbData); err != nil {
		log.Printf("Warning: failed to upload thumbnail for %s: %v", key, err)
		thumbKey = key
	}

	return &UploadResult{
		URL:          s.publicURL + "/" + key,
		ThumbnailURL: s.publicURL + "/" + thumbKey,
		PublicID:     key,
		Width:        bounds.Dx(),
		Height:       bounds.Dy(),
		Bytes:        int64(len(data)),
	}, nil
}

// Delete removes the original and its thumbnail from the bucket
func (s *S3Store) Delete(ctx context.Context, publicID string) error {
	for _, key := range []string{publicID, ThumbKey(publicID)} {
		_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
			Bucket: aws.String(s.bucket),
			Key:    aws.String(key),
		})
		if err != nil {
			return fmt.Errorf("failed to delete object %s: %w", key, err)
		}
	}
	return nil
}

func (s *S3Store) putObject(ctx context.Context, key string, data []byte) error {
	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String("image/jpeg"),
	})
	if err != nil {
		return fmt.Errorf("failed to upload object %s: %w", key, err)
	}
	return nil
}

func encodeThumbnail(img image.Image) ([]byte, error) {
	thumb := imaging.Resize(img, thumbnailWidth, 0, imaging.Lanczos)

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, thumb, &jpeg.Options{Quality: 85}); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
