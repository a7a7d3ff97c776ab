// internal/services/product_service.go
package services

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/javajoker/store-admin/internal/database"
	"github.com/javajoker/store-admin/internal/models"
)

type ProductService struct {
	db     *gorm.DB
	stores *StoreService
}

type ImageInput struct {
	URL string `json:"url"`
}

// ProductRequest is the create and update body. Field order is the order in
// which missing fields are reported.
type ProductRequest struct {
	Name       string          `json:"name" validate:"required" msg:"name is required"`
	Images     []ImageInput    `json:"images" validate:"required,min=1" msg:"Images are required"`
	Price      decimal.Decimal `json:"price" validate:"required" msg:"price is required"`
	CategoryID string          `json:"categoryId" validate:"required" msg:"category id is required"`
	ColorID    string          `json:"colorId" validate:"required" msg:"color id is required"`
	SizeID     string          `json:"sizeId" validate:"required" msg:"size id is required"`
	IsFeatured bool            `json:"isFeatured"`
	IsArchived bool            `json:"isArchived"`
}

// ProductFilter narrows a product listing. Empty strings mean no filter.
type ProductFilter struct {
	CategoryID string
	ColorID    string
	SizeID     string
	// FeaturedOnly is set whenever the isFeatured query parameter is present,
	// whatever its value.
	FeaturedOnly bool
}

func NewProductService(db *gorm.DB, stores *StoreService) *ProductService {
	return &ProductService{db: db, stores: stores}
}

func (r *ProductRequest) images() []models.Image {
	images := make([]models.Image, 0, len(r.Images))
	for _, image := range r.Images {
		images = append(images, models.Image{URL: image.URL})
	}
	return images
}

func (s *ProductService) CreateProduct(ctx context.Context, userID, storeID string, req *ProductRequest) (*models.Product, error) {
	if err := s.stores.check(ctx, mutation{userID: userID, storeID: storeID, req: req}); err != nil {
		return nil, err
	}

	product := &models.Product{
		StoreID:    storeID,
		CategoryID: req.CategoryID,
		SizeID:     req.SizeID,
		ColorID:    req.ColorID,
		Name:       req.Name,
		Price:      req.Price,
		IsFeatured: req.IsFeatured,
		IsArchived: req.IsArchived,
		Images:     req.images(),
	}

	// Images are inserted by the same Create through the association.
	if err := s.db.WithContext(ctx).Create(product).Error; err != nil {
		return nil, fmt.Errorf("failed to create product: %w", err)
	}

	return product, nil
}

func (s *ProductService) ListProducts(ctx context.Context, storeID string, filter ProductFilter) ([]models.Product, error) {
	if storeID == "" {
		return nil, invalid("store id is required")
	}

	query := s.db.WithContext(ctx).
		Preload("Images").
		Preload("Category").
		Preload("Color").
		Preload("Size").
		Where("store_id = ?", storeID)

	if filter.CategoryID != "" {
		query = query.Where("category_id = ?", filter.CategoryID)
	}
	if filter.ColorID != "" {
		query = query.Where("color_id = ?", filter.ColorID)
	}
	if filter.SizeID != "" {
		query = query.Where("size_id = ?", filter.SizeID)
	}
	if filter.FeaturedOnly {
		query = query.Where("is_featured = ?", true)
	}

	// Archived products never reach a listing.
	query = query.Where("is_archived = ?", false)

	products := []models.Product{}
	if err := query.Order("created_at desc").Find(&products).Error; err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}

	return products, nil
}

func (s *ProductService) GetProduct(ctx context.Context, storeID, productID string) (*models.Product, error) {
	if productID == "" {
		return nil, invalid("product id is required")
	}

	var product models.Product
	query := s.db.Preload("Images").Preload("Category").Preload("Color").Preload("Size")
	if err := getScoped(ctx, query, &product, storeID, productID); err != nil {
		return nil, err
	}
	return &product, nil
}

// UpdateProduct replaces the scalar fields and the full image set atomically.
func (s *ProductService) UpdateProduct(ctx context.Context, userID, storeID, productID string, req *ProductRequest) (*models.Product, error) {
	if err := s.stores.check(ctx, mutation{userID: userID, storeID: storeID, req: req, idName: "product", id: productID}); err != nil {
		return nil, err
	}

	var product models.Product
	err := database.WithTransaction(s.db.WithContext(ctx), func(tx *gorm.DB) error {
		if err := updateScoped(ctx, tx, &product, storeID, productID, map[string]interface{}{
			"name":        req.Name,
			"price":       req.Price,
			"category_id": req.CategoryID,
			"color_id":    req.ColorID,
			"size_id":     req.SizeID,
			"is_featured": req.IsFeatured,
			"is_archived": req.IsArchived,
		}); err != nil {
			return err
		}

		if err := tx.Where("product_id = ?", productID).Delete(&models.Image{}).Error; err != nil {
			return fmt.Errorf("failed to clear images: %w", err)
		}

		images := req.images()
		for i := range images {
			images[i].ProductID = productID
		}
		if err := tx.Create(&images).Error; err != nil {
			return fmt.Errorf("failed to create images: %w", err)
		}

		product.Images = images
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &product, nil
}

func (s *ProductService) DeleteProduct(ctx context.Context, userID, storeID, productID string) error {
	if err := s.stores.check(ctx, mutation{userID: userID, storeID: storeID, idName: "product", id: productID}); err != nil {
		return err
	}

	return deleteUnreferenced(ctx, s.db, &models.Product{}, storeID, productID,
		reference{model: &models.OrderItem{}, column: "product_id"})
}
