// internal/services/storage_service.go
package services

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/aws/aws-sdk-go/service/s3/s3iface"
	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"

	"github.com/javajoker/store-admin/internal/config"
)

var (
	allowedImageTypes = []string{".jpg", ".jpeg", ".png", ".gif", ".webp"}
	allowedMimeTypes  = []string{"image/jpeg", "image/png", "image/gif", "image/webp"}
)

type StorageService struct {
	s3Client s3iface.S3API
	stores   *StoreService
	aws      config.AWSConfig
	storage  config.StorageConfig
}

type UploadResult struct {
	URL      string `json:"url"`
	Key      string `json:"key"`
	Size     int64  `json:"size"`
	MimeType string `json:"mimeType"`
}

// Upload is one image received from the dashboard.
type Upload struct {
	Filename string
	Size     int64
	Body     io.Reader
}

// NewStorageService stores images in S3 when AWS credentials are configured
// and on local disk otherwise.
func NewStorageService(cfg *config.Config, stores *StoreService) (*StorageService, error) {
	s := &StorageService{stores: stores, aws: cfg.AWS, storage: cfg.Storage}
	if cfg.AWS.AccessKeyID == "" {
		return s, nil
	}

	sess, err := session.NewSession(&aws.Config{
		Region: aws.String(cfg.AWS.Region),
		Credentials: credentials.NewStaticCredentials(
			cfg.AWS.AccessKeyID,
			cfg.AWS.SecretAccessKey,
			"",
		),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create AWS session: %w", err)
	}

	s.s3Client = s3.New(sess)
	return s, nil
}

func (s *StorageService) UploadImage(ctx context.Context, userID, storeID string, upload *Upload) (*UploadResult, error) {
	if err := s.stores.check(ctx, mutation{userID: userID, storeID: storeID}); err != nil {
		return nil, err
	}
	if upload == nil || upload.Body == nil {
		return nil, invalid("file is required")
	}

	if s.storage.MaxImageSize > 0 && upload.Size > s.storage.MaxImageSize {
		return nil, invalid(fmt.Sprintf("file size %d bytes exceeds maximum allowed size %d bytes", upload.Size, s.storage.MaxImageSize))
	}

	ext := strings.ToLower(filepath.Ext(upload.Filename))
	if !isAllowedExtension(ext) {
		return nil, invalid(fmt.Sprintf("file type %s is not allowed", ext))
	}

	// Read one byte past the limit so oversized bodies with a lying header are caught.
	limit := s.storage.MaxImageSize
	reader := upload.Body
	if limit > 0 {
		reader = io.LimitReader(upload.Body, limit+1)
	}
	fileBytes, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}
	if limit > 0 && int64(len(fileBytes)) > limit {
		return nil, invalid(fmt.Sprintf("file size exceeds maximum allowed size %d bytes", limit))
	}

	// The declared content type is ignored; the bytes decide.
	detected := mimetype.Detect(fileBytes)
	if !isAllowedMimeType(detected) {
		return nil, invalid("invalid image file")
	}

	key := generateFileName(upload.Filename, storeID)
	if s.s3Client != nil {
		return s.uploadToS3(ctx, fileBytes, key, detected.String())
	}
	return s.uploadToLocal(fileBytes, key, detected.String())
}

func (s *StorageService) uploadToS3(ctx context.Context, fileBytes []byte, key, contentType string) (*UploadResult, error) {
	_, err := s.s3Client.PutObjectWithContext(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(s.aws.S3Bucket),
		Key:           aws.String(key),
		Body:          bytes.NewReader(fileBytes),
		ContentType:   aws.String(contentType),
		ContentLength: aws.Int64(int64(len(fileBytes))),
		ACL:           aws.String("public-read"),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to upload to S3: %w", err)
	}

	return &UploadResult{
		URL:      s.getS3URL(key),
		Key:      key,
		Size:     int64(len(fileBytes)),
		MimeType: contentType,
	}, nil
}

func (s *StorageService) uploadToLocal(fileBytes []byte, key, contentType string) (*UploadResult, error) {
	path := filepath.Join(s.storage.LocalDir, filepath.FromSlash(key))
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create upload directory: %w", err)
	}
	if err := os.WriteFile(path, fileBytes, 0o644); err != nil {
		return nil, fmt.Errorf("failed to write file: %w", err)
	}

	return &UploadResult{
		URL:      strings.TrimRight(s.storage.PublicURL, "/") + "/" + key,
		Key:      key,
		Size:     int64(len(fileBytes)),
		MimeType: contentType,
	}, nil
}

func (s *StorageService) getS3URL(key string) string {
	if s.aws.CloudFrontURL != "" {
		return fmt.Sprintf("%s/%s", s.aws.CloudFrontURL, key)
	}

	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", s.aws.S3Bucket, s.aws.Region, key)
}

func generateFileName(originalName, folder string) string {
	ext := strings.ToLower(filepath.Ext(originalName))
	timestamp := time.Now().Format("20060102")
	filename := fmt.Sprintf("%s_%s%s", timestamp, uuid.NewString()[:8], ext)

	if folder != "" {
		return folder + "/" + filename
	}
	return filename
}

func isAllowedExtension(ext string) bool {
	for _, allowed := range allowedImageTypes {
		if ext == allowed {
			return true
		}
	}
	return false
}

func isAllowedMimeType(detected *mimetype.MIME) bool {
	for _, allowed := range allowedMimeTypes {
		if detected.Is(allowed) {
			return true
		}
	}
	return false
}
