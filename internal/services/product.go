package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/upgradehq/upgrade-backend/internal/errs"
	"github.com/upgradehq/upgrade-backend/internal/models"
	"gorm.io/gorm"
)

const (
	DefaultPageSize = 20
	MaxPageSize     = 100
	QueryTimeout    = 30 * time.Second
)

// ProductService handles product listing, lookup and submission. Read
// results are decorated by the aggregation service so every response
// carries counts and the viewer's voted flag.
type ProductService struct {
	db          *gorm.DB
	aggregation *AggregationService
	comments    *CommentService
}

func NewProductService(db *gorm.DB, aggregation *AggregationService, comments *CommentService) *ProductService {
	if db == nil {
		panic("database connection cannot be nil")
	}
	return &ProductService{
		db:          db,
		aggregation: aggregation,
		comments:    comments,
	}
}

type ProductFilter struct {
	Category string `form:"category"`
	Search   string `form:"search"`
	Sort     string `form:"sort"`
	Order    string `form:"order"`
	Page     int    `form:"page"`
	Limit    int    `form:"limit"`
}

type ProductListResponse struct {
	Products []AnnotatedProduct `json:"products"`
	Total    int64              `json:"total"`
	Page     int                `json:"page"`
	Limit    int                `json:"limit"`
	Pages    int                `json:"pages"`
}

// ProductDetail is the full product page: the annotated product plus its
// comment thread.
type ProductDetail struct {
	AnnotatedProduct
	Thread []ThreadNode `json:"thread"`
}

// sortColumns whitelists the ORDER BY targets. "votes" orders by the bulk
// vote count, the only ranking the platform does.
var sortColumns = map[string]string{
	"created_at": "created_at",
	"name":       "name",
	"votes":      "(SELECT COUNT(*) FROM votes v WHERE v.product_id = products.id)",
}

// ValidateAndNormalize validates and normalizes filter parameters.
func (f *ProductFilter) ValidateAndNormalize() error {
	if f.Page <= 0 {
		f.Page = 1
	}
	if f.Limit <= 0 {
		f.Limit = DefaultPageSize
	}
	if f.Limit > MaxPageSize {
		f.Limit = MaxPageSize
	}

	f.Search = strings.TrimSpace(f.Search)
	f.Category = strings.TrimSpace(f.Category)

	if len(f.Search) > 255 {
		return fmt.Errorf("%w: search term too long", errs.ErrValidation)
	}

	if f.Sort == "" {
		f.Sort = "created_at"
	}
	if _, ok := sortColumns[f.Sort]; !ok {
		return fmt.Errorf("%w: unknown sort key %q", errs.ErrValidation, f.Sort)
	}

	switch f.Order {
	case "":
		f.Order = "desc"
	case "asc", "desc":
	default:
		return fmt.Errorf("%w: order must be asc or desc", errs.ErrValidation)
	}

	return nil
}

// List retrieves a filtered page of products annotated for the viewer. An
// empty result is valid, not an error.
func (s *ProductService) List(ctx context.Context, filter ProductFilter, viewerID *uint) (*ProductListResponse, error) {
	if err := filter.ValidateAndNormalize(); err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, QueryTimeout)
	defer cancel()

	var products []models.Product
	var total int64

	query := s.db.WithContext(ctx).Model(&models.Product{})
	query = s.applyFilters(query, filter)

	if err := query.Count(&total).Error; err != nil {
		return nil, fmt.Errorf("failed to count products: %v", err)
	}

	offset := (filter.Page - 1) * filter.Limit
	if err := query.
		Preload("User").
		Offset(offset).
		Limit(filter.Limit).
		Order(sortColumns[filter.Sort] + " " + strings.ToUpper(filter.Order)).
		Find(&products).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch products: %v", err)
	}

	annotated, err := s.aggregation.Annotate(ctx, products, viewerID)
	if err != nil {
		return nil, err
	}

	pages := int(total) / filter.Limit
	if int(total)%filter.Limit > 0 {
		pages++
	}

	return &ProductListResponse{
		Products: annotated,
		Total:    total,
		Page:     filter.Page,
		Limit:    filter.Limit,
		Pages:    pages,
	}, nil
}

// Get retrieves one product with counts, the viewer's voted flag and the
// full comment thread.
func (s *ProductService) Get(ctx context.Context, id uint, viewerID *uint) (*ProductDetail, error) {
	ctx, cancel := context.WithTimeout(ctx, QueryTimeout)
	defer cancel()

	var product models.Product
	if err := s.db.WithContext(ctx).Preload("User").First(&product, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: product %d", errs.ErrNotFound, id)
		}
		return nil, fmt.Errorf("failed to fetch product %d: %v", id, err)
	}

	annotated, err := s.aggregation.AnnotateOne(ctx, product, viewerID)
	if err != nil {
		return nil, err
	}

	thread, err := s.comments.GetThread(ctx, id)
	if err != nil {
		return nil, err
	}

	return &ProductDetail{AnnotatedProduct: *annotated, Thread: thread}, nil
}

// Create submits a new product owned by userID. Ownership never changes
// after this point.
func (s *ProductService) Create(ctx context.Context, userID uint, req models.CreateProductRequest) (*models.Product, error) {
	product := models.Product{
		Name:        strings.TrimSpace(req.Name),
		Tagline:     strings.TrimSpace(req.Tagline),
		Description: req.Description,
		Website:     strings.TrimSpace(req.Website),
		Logo:        req.Logo,
		Images:      req.Images,
		Category:    strings.TrimSpace(req.Category),
		UserID:      userID,
	}

	if product.Name == "" || product.Tagline == "" || product.Description == "" ||
		product.Website == "" || product.Category == "" {
		return nil, fmt.Errorf("%w: name, tagline, description, website and category are required", errs.ErrValidation)
	}

	if err := s.db.WithContext(ctx).Create(&product).Error; err != nil {
		return nil, fmt.Errorf("failed to create product: %v", err)
	}

	if err := s.db.WithContext(ctx).Preload("User").First(&product, product.ID).Error; err != nil {
		return nil, fmt.Errorf("failed to reload product %d: %v", product.ID, err)
	}
	return &product, nil
}

// AttachLogo records an uploaded logo URL on the caller's own product.
func (s *ProductService) AttachLogo(ctx context.Context, userID, productID uint, url string) error {
	var product models.Product
	if err := s.db.WithContext(ctx).First(&product, productID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%w: product %d", errs.ErrNotFound, productID)
		}
		return fmt.Errorf("failed to fetch product %d: %v", productID, err)
	}
	if product.UserID != userID {
		return fmt.Errorf("%w: product %d is not owned by user %d", errs.ErrValidation, productID, userID)
	}

	if err := s.db.WithContext(ctx).Model(&product).Update("logo", url).Error; err != nil {
		return fmt.Errorf("failed to update logo for product %d: %v", productID, err)
	}
	return nil
}

func (s *ProductService) applyFilters(query *gorm.DB, filter ProductFilter) *gorm.DB {
	if filter.Category != "" && filter.Category != "all" {
		query = query.Where("category = ?", filter.Category)
	}

	if filter.Search != "" {
		searchTerm := "%" + strings.ToLower(filter.Search) + "%"
		query = query.Where(
			"LOWER(name) LIKE ? OR LOWER(tagline) LIKE ? OR LOWER(description) LIKE ?",
			searchTerm, searchTerm, searchTerm,
		)
	}

	return query
}

// GetCategories lists the distinct categories in use, for the filter UI.
func (s *ProductService) GetCategories(ctx context.Context) ([]string, error) {
	query := `
		SELECT DISTINCT category
		FROM products
		WHERE category IS NOT NULL AND category != ''
		ORDER BY category
	`

	categories := make([]string, 0)
	if err := s.db.WithContext(ctx).Raw(query).Scan(&categories).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch categories: %v", err)
	}
	return categories, nil
}
