package services

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"path"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"google.golang.org/api/drive/v3"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"

	"shootbook/internal/models/response_models"
	"shootbook/pkg/utils"
)

const MaxUploadBytes = 10 << 20

var allowedImageTypes = []string{
	"image/jpeg",
	"image/png",
	"image/webp",
	"image/heic",
	"image/heif",
}

// FileStore persists an uploaded file and returns its id and a public URL.
type FileStore interface {
	Put(ctx context.Context, name, mimeType string, data []byte) (id, url string, err error)
}

type UploadService interface {
	Upload(ctx context.Context, filename string, r io.Reader) (*response_models.UploadResponse, error)
}

type uploadService struct {
	store  FileStore
	logger *zap.Logger
}

func NewUploadService(store FileStore, logger *zap.Logger) UploadService {
	return &uploadService{store: store, logger: logger}
}

// Upload validates an image and stores it under a random name.
func (s *uploadService) Upload(ctx context.Context, filename string, r io.Reader) (*response_models.UploadResponse, error) {
	if s.store == nil {
		return nil, fmt.Errorf("%w: upload storage", utils.ErrMissingConfig)
	}
	data, mt, err := readImage(r)
	if err != nil {
		return nil, err
	}

	name := uuid.NewString() + mt.Extension()
	id, url, err := s.store.Put(ctx, name, mt.String(), data)
	if err != nil {
		s.logger.Error("upload failed", zap.String("file", name), zap.Error(err))
		return nil, fmt.Errorf("%w: %v", utils.ErrUpstream, err)
	}

	s.logger.Info("file uploaded",
		zap.String("file_id", id),
		zap.String("original", path.Base(utils.SanitizeText(filename, 255))),
		zap.Int("size", len(data)))

	return &response_models.UploadResponse{
		FileID:   id,
		URL:      url,
		Name:     name,
		MimeType: mt.String(),
		Size:     int64(len(data)),
	}, nil
}

// PhotoFromUpload reads an image attached to an order so it can be
// forwarded to the notification channels.
func PhotoFromUpload(filename string, r io.Reader) (Photo, error) {
	data, mt, err := readImage(r)
	if err != nil {
		return Photo{}, err
	}
	name := path.Base(utils.SanitizeText(filename, 255))
	if name == "" || name == "." || name == "/" {
		name = "photo" + mt.Extension()
	}
	return Photo{Name: name, Data: data}, nil
}

// readImage checks the content type from the bytes themselves, never from
// the client supplied header.
func readImage(r io.Reader) ([]byte, *mimetype.MIME, error) {
	data, err := io.ReadAll(io.LimitReader(r, MaxUploadBytes+1))
	if err != nil {
		return nil, nil, utils.NewValidationError("file", "could not be read")
	}
	if len(data) == 0 {
		return nil, nil, utils.NewValidationError("file", "is empty")
	}
	if len(data) > MaxUploadBytes {
		return nil, nil, &utils.DetailedError{Err: utils.ErrFileTooLarge, Message: "File exceeds 10 MiB"}
	}

	mt := mimetype.Detect(data)
	if !mimetype.EqualsAny(mt.String(), allowedImageTypes...) {
		return nil, nil, &utils.DetailedError{
			Err:     utils.ErrUnsupportedMedia,
			Message: "Only JPEG, PNG, WebP and HEIC images are accepted",
			Details: map[string]string{"detected": mt.String()},
		}
	}
	return data, mt, nil
}

type driveStore struct {
	files    *drive.Service
	folderID string
}

// NewDriveStore stores uploads in a Drive folder shared with a service
// account. Files are made readable by link so chat channels can fetch them.
func NewDriveStore(ctx context.Context, credentialsJSON, folderID string, opts ...option.ClientOption) (FileStore, error) {
	if folderID == "" {
		return nil, fmt.Errorf("%w: drive folder id", utils.ErrMissingConfig)
	}
	if credentialsJSON != "" {
		opts = append([]option.ClientOption{option.WithCredentialsJSON([]byte(credentialsJSON))}, opts...)
	}
	opts = append(opts, option.WithScopes(drive.DriveFileScope))
	srv, err := drive.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("drive client: %w", err)
	}
	return &driveStore{files: srv, folderID: folderID}, nil
}

func (d *driveStore) Put(ctx context.Context, name, mimeType string, data []byte) (string, string, error) {
	f, err := d.files.Files.Create(&drive.File{
		Name:     name,
		MimeType: mimeType,
		Parents:  []string{d.folderID},
	}).
		Media(bytes.NewReader(data), googleapi.ContentType(mimeType)).
		Fields("id").
		SupportsAllDrives(true).
		Context(ctx).
		Do()
	if err != nil {
		return "", "", fmt.Errorf("drive create: %w", err)
	}

	_, err = d.files.Permissions.Create(f.Id, &drive.Permission{Type: "anyone", Role: "reader"}).
		SupportsAllDrives(true).
		Context(ctx).
		Do()
	if err != nil {
		return "", "", fmt.Errorf("drive share: %w", err)
	}

	return f.Id, driveViewURL(f.Id), nil
}

func driveViewURL(id string) string {
	return "https://drive.google.com/uc?export=view&id=" + strings.TrimSpace(id)
}
