package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path"

	"sharebrasil-ops/internal/adapters/persistence/models"
	"sharebrasil-ops/internal/adapters/persistence/repositories"
	"sharebrasil-ops/internal/adapters/storage"
	"sharebrasil-ops/internal/core/domain"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// ErrPayrollDocumentNotFound is returned when no document exists for an id
var ErrPayrollDocumentNotFound = errors.New("payroll document not found")

// PayrollService stores payroll documents: metadata in the relational store,
// content in the object store. Documents are scoped to their owner.
type PayrollService struct {
	repo  *repositories.PayrollRepository
	store storage.ObjectStore
	log   *zap.Logger
}

// NewPayrollService creates a new payroll service
func NewPayrollService(repo *repositories.PayrollRepository, store storage.ObjectStore, log *zap.Logger) *PayrollService {
	return &PayrollService{repo: repo, store: store, log: log}
}

// UploadInput represents an incoming payroll document
type UploadInput struct {
	Filename    string `json:"filename" validate:"required"`
	Folder      string `json:"folder,omitempty"`
	ContentType string `json:"content_type,omitempty"`
	SizeBytes   int64  `json:"size_bytes,omitempty"`
}

// Upload writes the content to the object store first, then records the
// metadata. An orphaned object from a failed metadata write is cleaned up
// best-effort.
func (s *PayrollService) Upload(ctx context.Context, actorID uint, input *UploadInput, content io.Reader) (*models.PayrollDocument, error) {
	if actorID == 0 {
		return nil, domain.ErrUnauthenticated
	}
	if input.Filename == "" {
		return nil, fmt.Errorf("%w: filename is required", domain.ErrInvalidInput)
	}

	folder := input.Folder
	if folder == "" {
		folder = "geral"
	}

	key := path.Join("payroll", folder, uuid.NewString()+path.Ext(input.Filename))
	if err := s.store.Put(ctx, key, content, input.ContentType); err != nil {
		return nil, storeErr(err)
	}

	doc := &models.PayrollDocument{
		OwnerID:     actorID,
		Filename:    input.Filename,
		Folder:      folder,
		ContentType: input.ContentType,
		SizeBytes:   input.SizeBytes,
		ObjectKey:   key,
	}
	if err := s.repo.Create(ctx, doc); err != nil {
		if delErr := s.store.Delete(ctx, key); delErr != nil {
			s.log.Warn("orphaned payroll object left in store",
				zap.String("object_key", key), zap.Error(delErr))
		}
		return nil, storeErr(err)
	}
	return doc, nil
}

// Get gets one of the acting user's payroll documents
func (s *PayrollService) Get(ctx context.Context, actorID, docID uint) (*models.PayrollDocument, error) {
	if actorID == 0 {
		return nil, domain.ErrUnauthenticated
	}
	return s.getOwned(ctx, actorID, docID)
}

// Download streams the content of one of the acting user's documents
func (s *PayrollService) Download(ctx context.Context, actorID, docID uint) (*models.PayrollDocument, io.ReadCloser, error) {
	if actorID == 0 {
		return nil, nil, domain.ErrUnauthenticated
	}

	doc, err := s.getOwned(ctx, actorID, docID)
	if err != nil {
		return nil, nil, err
	}

	body, err := s.store.Get(ctx, doc.ObjectKey)
	if err != nil {
		return nil, nil, storeErr(err)
	}
	return doc, body, nil
}

// List lists the acting user's payroll documents, optionally by folder
func (s *PayrollService) List(ctx context.Context, actorID uint, folder string) ([]*models.PayrollDocument, error) {
	if actorID == 0 {
		return nil, domain.ErrUnauthenticated
	}
	docs, err := s.repo.ListByOwner(ctx, actorID, folder)
	if err != nil {
		return nil, storeErr(err)
	}
	return docs, nil
}

// Delete removes a document's metadata and its stored content. The metadata
// row goes first so a half-failed delete never leaves a dangling reference.
func (s *PayrollService) Delete(ctx context.Context, actorID, docID uint) error {
	if actorID == 0 {
		return domain.ErrUnauthenticated
	}

	doc, err := s.getOwned(ctx, actorID, docID)
	if err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, docID); err != nil {
		return storeErr(err)
	}
	if err := s.store.Delete(ctx, doc.ObjectKey); err != nil {
		s.log.Warn("orphaned payroll object left in store",
			zap.String("object_key", doc.ObjectKey), zap.Error(err))
	}
	return nil
}

func (s *PayrollService) getOwned(ctx context.Context, actorID, id uint) (*models.PayrollDocument, error) {
	doc, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPayrollDocumentNotFound
		}
		return nil, storeErr(err)
	}
	if doc.OwnerID != actorID {
		return nil, ErrPayrollDocumentNotFound
	}
	return doc, nil
}
