// Package storage keeps creator media kits (rate cards, audience screenshots)
// in S3 and serves them through short-lived presigned URLs.
package storage

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/jpeg"
	_ "image/png" // PNG decode support
	"path/filepath"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
	"golang.org/x/image/draw"
	_ "golang.org/x/image/webp" // WebP decode support

	appconfig "github.com/lumina/creatorhub/internal/config"
)

const (
	maxUploadBytes = 10 << 20 // 10 MB
	thumbnailWidth = 300
	jpegQuality    = 85
	presignExpiry  = 15 * time.Minute
)

var supportedTypes = map[string]string{
	"image/jpeg":      ".jpg",
	"image/png":       ".png",
	"image/webp":      ".webp",
	"image/gif":       ".gif",
	"application/pdf": ".pdf",
}

// MediaKit describes one stored media-kit object.
type MediaKit struct {
	Key          string `json:"key"`
	ThumbnailKey string `json:"thumbnail_key,omitempty"`
	ContentType  string `json:"content_type"`
	Size         int64  `json:"size"`
	Width        int    `json:"width,omitempty"`
	Height       int    `json:"height,omitempty"`
}

// Store uploads media kits to S3.
type Store struct {
	client  *s3.Client
	presign *s3.PresignClient
	bucket  string
	region  string
	cdn     string
}

// NewStore creates an S3-backed media-kit store.
func NewStore(ctx context.Context, cfg *appconfig.StorageConfig) (*Store, error) {
	region := cfg.AWSRegion
	if region == "" {
		region = "us-east-1"
	}

	opts := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRegion(region),
	}
	if profile := cfg.GetAWSProfile(); profile != "" {
		opts = append(opts, awsconfig.WithSharedConfigProfile(profile))
	}
	if cfg.AWSAccessKey != "" && cfg.AWSSecretKey != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AWSAccessKey, cfg.AWSSecretKey, "")))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("load AWS config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg)
	return &Store{
		client:  client,
		presign: s3.NewPresignClient(client),
		bucket:  cfg.S3Bucket,
		region:  region,
		cdn:     cfg.CDNDomain,
	}, nil
}

// Upload stores a media-kit file for a user. Image uploads also get a
// thumbnail variant for the dashboard.
func (s *Store) Upload(ctx context.Context, userID, filename, contentType string, data []byte) (*MediaKit, error) {
	ext, ok := supportedTypes[contentType]
	if !ok {
		return nil, fmt.Errorf("unsupported content type %q", contentType)
	}
	if len(data) > maxUploadBytes {
		return nil, fmt.Errorf("file too large: %d bytes (max %d)", len(data), maxUploadBytes)
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("empty upload")
	}

	key := buildKey(userID, filename, ext)
	if err := s.put(ctx, key, data, contentType); err != nil {
		return nil, fmt.Errorf("upload media kit: %w", err)
	}

	kit := &MediaKit{
		Key:         key,
		ContentType: contentType,
		Size:        int64(len(data)),
	}

	if strings.HasPrefix(contentType, "image/") {
		img, _, err := image.Decode(bytes.NewReader(data))
		if err == nil {
			bounds := img.Bounds()
			kit.Width = bounds.Dx()
			kit.Height = bounds.Dy()

			if thumb, err := resize(img, thumbnailWidth); err == nil {
				thumbKey := strings.TrimSuffix(key, ext) + "_thumb.jpg"
				if err := s.put(ctx, thumbKey, thumb, "image/jpeg"); err == nil {
					kit.ThumbnailKey = thumbKey
				}
			}
		}
	}

	return kit, nil
}

// URL returns a presigned GET URL for a stored object, or the CDN URL when
// a CDN domain is configured.
func (s *Store) URL(ctx context.Context, key string) (string, error) {
	if s.cdn != "" {
		return fmt.Sprintf("https://%s/%s", s.cdn, key), nil
	}
	req, err := s.presign.PresignGetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	}, s3.WithPresignExpires(presignExpiry))
	if err != nil {
		return "", fmt.Errorf("presign media kit: %w", err)
	}
	return req.URL, nil
}

// Delete removes a stored object and its thumbnail if present.
func (s *Store) Delete(ctx context.Context, key string) error {
	_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return fmt.Errorf("delete media kit: %w", err)
	}
	return nil
}

func (s *Store) put(ctx context.Context, key string, data []byte, contentType string) error {
	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String(contentType),
	})
	return err
}

func buildKey(userID, filename, ext string) string {
	base := strings.TrimSuffix(filepath.Base(filename), filepath.Ext(filename))
	base = sanitize(base)
	if base == "" {
		base = "mediakit"
	}
	return fmt.Sprintf("mediakits/%s/%s-%s%s", userID, base, uuid.New().String()[:8], ext)
}

func sanitize(name string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(name) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == '-' || r == '_':
			b.WriteRune(r)
		case r == ' ':
			b.WriteRune('-')
		}
	}
	return b.String()
}

// resize scales an image down to maxWidth preserving aspect ratio and
// encodes it as JPEG. Images already narrower are re-encoded as-is.
func resize(img image.Image, maxWidth int) ([]byte, error) {
	bounds := img.Bounds()
	width, height := bounds.Dx(), bounds.Dy()

	dst := img
	if width > maxWidth {
		newHeight := int(float64(height) * float64(maxWidth) / float64(width))
		scaled := image.NewRGBA(image.Rect(0, 0, maxWidth, newHeight))
		draw.CatmullRom.Scale(scaled, scaled.Bounds(), img, bounds, draw.Over, nil)
		dst = scaled
	}

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, dst, &jpeg.Options{Quality: jpegQuality}); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
