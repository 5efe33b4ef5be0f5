package document

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/amanaz3/staff-hub-suite-sub001/internal/domain/document"
	"github.com/amanaz3/staff-hub-suite-sub001/internal/domain/employee"
	"github.com/amanaz3/staff-hub-suite-sub001/internal/domain/notification"
	"github.com/amanaz3/staff-hub-suite-sub001/internal/pkg/storage"
)

const maxFileSize = 10 << 20 // 10 MiB

var allowedContentTypes = map[string]bool{
	"application/pdf": true,
	"image/png":       true,
	"image/jpeg":      true,
}

type Service interface {
	Upload(ctx context.Context, req document.UploadRequest, file io.Reader, fileName, contentType string, size int64) (document.Response, error)
	ListByEmployee(ctx context.Context, employeeID string) ([]document.Response, error)
	Download(ctx context.Context, id string) (io.ReadCloser, *document.Document, error)
	Delete(ctx context.Context, id string) error
}

type ServiceImpl struct {
	documentRepo    document.Repository
	employeeRepo    employee.Repository
	fileStorage     storage.FileStorage
	notificationSvc notification.Service
}

func NewDocumentService(
	documentRepo document.Repository,
	employeeRepo employee.Repository,
	fileStorage storage.FileStorage,
	notificationSvc notification.Service,
) Service {
	return &ServiceImpl{
		documentRepo:    documentRepo,
		employeeRepo:    employeeRepo,
		fileStorage:     fileStorage,
		notificationSvc: notificationSvc,
	}
}

func (s *ServiceImpl) Upload(ctx context.Context, req document.UploadRequest, file io.Reader, fileName, contentType string, size int64) (document.Response, error) {
	if err := req.Validate(); err != nil {
		return document.Response{}, err
	}
	if size > maxFileSize {
		return document.Response{}, document.ErrFileTooLarge
	}
	if !allowedContentTypes[contentType] {
		return document.Response{}, document.ErrUnsupportedType
	}

	emp, err := s.employeeRepo.GetByID(ctx, req.EmployeeID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return document.Response{}, employee.ErrEmployeeNotFound
		}
		return document.Response{}, fmt.Errorf("failed to get employee: %w", err)
	}

	uploaderID, err := userIDFromClaims(ctx)
	if err != nil {
		return document.Response{}, err
	}

	objectKey := fmt.Sprintf("documents/%s/%s%s", req.EmployeeID, uuid.New().String(), filepath.Ext(fileName))
	storedPath, err := s.fileStorage.Upload(ctx, file, objectKey, contentType)
	if err != nil {
		return document.Response{}, fmt.Errorf("failed to store file: %w", err)
	}

	doc := document.Document{
		EmployeeID:  req.EmployeeID,
		UploadedBy:  uploaderID,
		Category:    document.Category(req.Category),
		FileName:    fileName,
		FilePath:    storedPath,
		ContentType: contentType,
		SizeBytes:   size,
		Note:        req.Note,
	}
	if err := s.documentRepo.Create(ctx, &doc); err != nil {
		// Orphaned object cleanup; the row is the source of truth.
		_ = s.fileStorage.Delete(ctx, storedPath)
		return document.Response{}, fmt.Errorf("failed to create document: %w", err)
	}

	if s.notificationSvc != nil && emp.UserID != nil {
		_ = s.notificationSvc.QueueNotification(ctx, notification.CreateNotificationRequest{
			RecipientID: *emp.UserID,
			SenderID:    &uploaderID,
			Type:        notification.TypeDocumentShared,
			Title:       "New document on your record",
			Message:     fmt.Sprintf("A %s document was added to your employee record", req.Category),
			Data:        map[string]interface{}{"document_id": doc.ID},
		})
	}

	url, err := s.fileStorage.GetURL(ctx, storedPath, 15*time.Minute)
	if err != nil {
		url = ""
	}
	return document.MapToResponse(doc, url), nil
}

func (s *ServiceImpl) ListByEmployee(ctx context.Context, employeeID string) ([]document.Response, error) {
	docs, err := s.documentRepo.ListByEmployee(ctx, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list documents: %w", err)
	}

	out := make([]document.Response, 0, len(docs))
	for _, doc := range docs {
		url, err := s.fileStorage.GetURL(ctx, doc.FilePath, 15*time.Minute)
		if err != nil {
			url = ""
		}
		out = append(out, document.MapToResponse(doc, url))
	}
	return out, nil
}

func (s *ServiceImpl) Download(ctx context.Context, id string) (io.ReadCloser, *document.Document, error) {
	doc, err := s.documentRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil, document.ErrDocumentNotFound
		}
		return nil, nil, fmt.Errorf("failed to get document: %w", err)
	}

	reader, err := s.fileStorage.Download(ctx, doc.FilePath)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open stored file: %w", err)
	}
	return reader, doc, nil
}

func (s *ServiceImpl) Delete(ctx context.Context, id string) error {
	doc, err := s.documentRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return document.ErrDocumentNotFound
		}
		return fmt.Errorf("failed to get document: %w", err)
	}

	if err := s.documentRepo.SoftDelete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete document: %w", err)
	}
	_ = s.fileStorage.Delete(ctx, doc.FilePath)
	return nil
}

func userIDFromClaims(ctx context.Context) (string, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to extract claims from context: %w", err)
	}
	userID, ok := claims["user_id"].(string)
	if !ok || userID == "" {
		return "", fmt.Errorf("user_id claim is missing or invalid")
	}
	return userID, nil
}
