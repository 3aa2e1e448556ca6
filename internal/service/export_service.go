package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"path"
	"strings"
	"time"

	"github.com/google/uuid"

	"inventory-api/internal/domain"
	"inventory-api/internal/storage"
)

// ExportURLTTL is how long listed download links stay valid.
const ExportURLTTL = 15 * time.Minute

// ExportResult identifies an uploaded snapshot.
type ExportResult struct {
	Key      string
	Location string
}

// ExportObject describes a stored snapshot with a temporary download link.
type ExportObject struct {
	Key          string
	Size         int64
	LastModified *time.Time
	URL          string
}

// ExportService writes point-in-time inventory snapshots to object storage.
type ExportService interface {
	Create(ctx context.Context) (*ExportResult, error)
	List(ctx context.Context) ([]ExportObject, error)
}

type snapshot struct {
	GeneratedAt time.Time          `json:"generatedAt"`
	Categories  []snapshotCategory `json:"categories"`
	Products    []snapshotProduct  `json:"products"`
}

type snapshotCategory struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

type snapshotProduct struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	Description   string  `json:"description"`
	CategoryID    string  `json:"categoryId"`
	CategoryTitle string  `json:"categoryTitle,omitempty"`
	Price         float64 `json:"price"`
}

type exportService struct {
	categories CategoryService
	products   ProductService
	store      storage.Service
	bucket     string
	prefix     string
	now        func() time.Time
}

// NewExportService returns an ExportService. A nil store or empty bucket
// yields a service whose calls fail with storage.ErrNotConfigured.
func NewExportService(categories CategoryService, products ProductService, store storage.Service, bucket, prefix string) ExportService {
	return &exportService{
		categories: categories,
		products:   products,
		store:      store,
		bucket:     bucket,
		prefix:     strings.Trim(prefix, "/"),
		now:        time.Now,
	}
}

func (s *exportService) Create(ctx context.Context) (*ExportResult, error) {
	if s.store == nil || s.bucket == "" {
		return nil, storage.ErrNotConfigured
	}

	categories, err := s.categories.List(ctx)
	if err != nil {
		return nil, err
	}
	products, err := s.products.List(ctx)
	if err != nil {
		return nil, err
	}

	now := s.now().UTC()
	snap := buildSnapshot(now, categories, products)
	body, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode snapshot: %w", err)
	}

	key := path.Join(s.prefix, fmt.Sprintf("%s-%s.json", now.Format("20060102T150405Z"), uuid.NewString()))
	location, err := s.store.PutObject(ctx, bytes.NewReader(body), storage.PutOptions{
		Bucket:      s.bucket,
		Key:         key,
		ContentType: "application/json",
	})
	if err != nil {
		return nil, err
	}
	return &ExportResult{Key: key, Location: location}, nil
}

func (s *exportService) List(ctx context.Context) ([]ExportObject, error) {
	if s.store == nil || s.bucket == "" {
		return nil, storage.ErrNotConfigured
	}

	prefix := s.prefix
	if prefix != "" {
		prefix += "/"
	}
	objects, err := s.store.ListObjects(ctx, s.bucket, prefix)
	if err != nil {
		return nil, err
	}

	out := make([]ExportObject, 0, len(objects))
	for _, obj := range objects {
		url, err := s.store.GetObjectURL(ctx, s.bucket, obj.Key, ExportURLTTL)
		if err != nil {
			return nil, err
		}
		out = append(out, ExportObject{
			Key:          obj.Key,
			Size:         obj.Size,
			LastModified: obj.LastModified,
			URL:          url,
		})
	}
	return out, nil
}

func buildSnapshot(now time.Time, categories []domain.Category, products []domain.ProductView) snapshot {
	snap := snapshot{
		GeneratedAt: now,
		Categories:  make([]snapshotCategory, len(categories)),
		Products:    make([]snapshotProduct, len(products)),
	}
	for i, c := range categories {
		snap.Categories[i] = snapshotCategory{ID: c.ID, Title: c.Title, Description: c.Description}
	}
	for i, p := range products {
		snap.Products[i] = snapshotProduct{
			ID:          p.ID,
			Name:        p.Name,
			Description: p.Description,
			CategoryID:  p.CategoryID,
			Price:       p.Price,
		}
		if p.Category != nil {
			snap.Products[i].CategoryTitle = p.Category.Title
		}
	}
	return snap
}
