package public

import (
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/haxeuz-store/internal/http/response"
	"github.com/haxeuz-store/internal/models"
	"github.com/haxeuz-store/internal/service"

	"github.com/gin-gonic/gin"
)

// CategoryResponse 分类响应
type CategoryResponse struct {
	ID          uint   `json:"id"`
	Name        string `json:"name"`
	Slug        string `json:"slug"`
	Description string `json:"description"`
}

// ProductListItem 商品列表项（摘要形态）
type ProductListItem struct {
	ID           uint               `json:"id"`
	Name         string             `json:"name"`
	Price        models.Money       `json:"price"`
	FrontImage   string             `json:"front_image"`
	CategoryName string             `json:"category_name"`
	Sizes        models.StringArray `json:"sizes"`
	Stock        int                `json:"stock"`
}

// ProductVariantResponse 尺码变体响应（按尺码的 SKU 与库存）
type ProductVariantResponse struct {
	ID              uint         `json:"id"`
	Size            string       `json:"size"`
	SKU             string       `json:"sku"`
	Stock           int          `json:"stock"`
	PriceAdjustment models.Money `json:"price_adjustment"`
}

// ProductDetail 商品详情（完整形态，含嵌套分类与尺码变体）
type ProductDetail struct {
	ID           uint                     `json:"id"`
	Name         string                   `json:"name"`
	Slug         string                   `json:"slug"`
	Description  string                   `json:"description"`
	Price        models.Money             `json:"price"`
	ComparePrice models.Money             `json:"compare_price"`
	FrontImage   string                   `json:"front_image"`
	BackImage    string                   `json:"back_image"`
	Category     *CategoryResponse        `json:"category"`
	Sizes        models.StringArray       `json:"sizes"`
	Stock        int                      `json:"stock"`
	Variants     []ProductVariantResponse `json:"variants"`
	IsActive     bool                     `json:"is_active"`
	IsFeatured   bool                     `json:"is_featured"`
	CreatedAt    time.Time                `json:"created_at"`
}

func buildVariantList(variants []models.ProductVariant) []ProductVariantResponse {
	items := make([]ProductVariantResponse, 0, len(variants))
	for i := range variants {
		variant := &variants[i]
		items = append(items, ProductVariantResponse{
			ID:              variant.ID,
			Size:            variant.Size,
			SKU:             variant.SKU,
			Stock:           variant.Stock,
			PriceAdjustment: variant.PriceAdjustment,
		})
	}
	return items
}

func buildCategoryResponse(category *models.Category) *CategoryResponse {
	if category == nil {
		return nil
	}
	return &CategoryResponse{
		ID:          category.ID,
		Name:        category.Name,
		Slug:        category.Slug,
		Description: category.Description,
	}
}

func buildProductListItem(product *models.Product) ProductListItem {
	categoryName := ""
	if product.Category != nil {
		categoryName = product.Category.Name
	}
	return ProductListItem{
		ID:           product.ID,
		Name:         product.Name,
		Price:        product.Price,
		FrontImage:   product.FrontImage,
		CategoryName: categoryName,
		Sizes:        product.Sizes,
		Stock:        product.Stock,
	}
}

func buildProductList(products []models.Product) []ProductListItem {
	items := make([]ProductListItem, 0, len(products))
	for i := range products {
		items = append(items, buildProductListItem(&products[i]))
	}
	return items
}

// ListProducts 商品列表，支持搜索、分类、精选与排序过滤
func (h *Handler) ListProducts(c *gin.Context) {
	input := service.ProductListInput{
		Search:       strings.TrimSpace(c.Query("search")),
		CategorySlug: strings.TrimSpace(c.Query("category")),
		Featured:     strings.EqualFold(strings.TrimSpace(c.Query("featured")), "true"),
		Ordering:     strings.TrimSpace(c.Query("ordering")),
	}
	products, _, err := h.ProductService.ListPublic(input)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Failed to fetch products", err)
		return
	}
	response.Success(c, buildProductList(products))
}

// GetProduct 商品详情（仅上架商品）
func (h *Handler) GetProduct(c *gin.Context) {
	rawID := c.Param("id")
	id, err := strconv.ParseUint(rawID, 10, 64)
	if err != nil || id == 0 {
		response.NotFound(c, "Product not found")
		return
	}
	product, err := h.ProductService.GetPublicByID(uint(id))
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			response.NotFound(c, "Product not found")
			return
		}
		respondError(c, http.StatusInternalServerError, "Failed to fetch product", err)
		return
	}
	response.Success(c, ProductDetail{
		ID:           product.ID,
		Name:         product.Name,
		Slug:         product.Slug,
		Description:  product.Description,
		Price:        product.Price,
		ComparePrice: product.ComparePrice,
		FrontImage:   product.FrontImage,
		BackImage:    product.BackImage,
		Category:     buildCategoryResponse(product.Category),
		Sizes:        product.Sizes,
		Stock:        product.Stock,
		Variants:     buildVariantList(product.Variants),
		IsActive:     product.IsActive,
		IsFeatured:   product.IsFeatured,
		CreatedAt:    product.CreatedAt,
	})
}

// ListFeaturedProducts 精选商品，最多返回 4 个
func (h *Handler) ListFeaturedProducts(c *gin.Context) {
	products, err := h.ProductService.ListFeatured()
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Failed to fetch products", err)
		return
	}
	response.Success(c, buildProductList(products))
}

// ListCategories 分类列表
func (h *Handler) ListCategories(c *gin.Context) {
	categories, err := h.CategoryService.List()
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Failed to fetch categories", err)
		return
	}
	items := make([]CategoryResponse, 0, len(categories))
	for i := range categories {
		items = append(items, *buildCategoryResponse(&categories[i]))
	}
	response.Success(c, items)
}
