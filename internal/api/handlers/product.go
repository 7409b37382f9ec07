package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/upgradehq/upgrade-backend/internal/api/middleware"
	"github.com/upgradehq/upgrade-backend/internal/models"
	"github.com/upgradehq/upgrade-backend/internal/services"
	"github.com/upgradehq/upgrade-backend/internal/utils"
)

type ProductHandler struct {
	productService *services.ProductService
	s3Service      *services.S3Service
}

func NewProductHandler(productService *services.ProductService, s3Service *services.S3Service) *ProductHandler {
	return &ProductHandler{
		productService: productService,
		s3Service:      s3Service,
	}
}

func (h *ProductHandler) GetAllProducts(c *gin.Context) {
	page, _ := strconv.Atoi(c.Query("page"))
	limit, _ := strconv.Atoi(c.Query("limit"))
	filter := services.ProductFilter{
		Category: c.Query("category"),
		Search:   c.Query("search"),
		Sort:     c.DefaultQuery("sort", "created_at"),
		Order:    c.DefaultQuery("order", "desc"),
		Page:     page,
		Limit:    limit,
	}

	products, err := h.productService.List(c.Request.Context(), filter, middleware.ViewerID(c))
	if err != nil {
		utils.SendServiceError(c, "Failed to retrieve products", err)
		return
	}

	utils.SendSuccess(c, "Products retrieved successfully", products)
}

func (h *ProductHandler) GetProduct(c *gin.Context) {
	productID, err := parseID(c, "product_id")
	if err != nil {
		utils.SendValidationError(c, "Invalid product ID")
		return
	}

	product, err := h.productService.Get(c.Request.Context(), productID, middleware.ViewerID(c))
	if err != nil {
		utils.SendServiceError(c, "Failed to retrieve product", err)
		return
	}

	utils.SendSuccess(c, "Product retrieved successfully", product)
}

func (h *ProductHandler) CreateProduct(c *gin.Context) {
	userID, _ := middleware.UserID(c)

	var req models.CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.SendValidationError(c, "Invalid request data")
		return
	}

	product, err := h.productService.Create(c.Request.Context(), userID, req)
	if err != nil {
		utils.SendServiceError(c, "Failed to create product", err)
		return
	}

	utils.SendCreated(c, "Product created successfully", product)
}

func (h *ProductHandler) GetCategories(c *gin.Context) {
	categories, err := h.productService.GetCategories(c.Request.Context())
	if err != nil {
		utils.SendServiceError(c, "Failed to retrieve categories", err)
		return
	}

	utils.SendSuccess(c, "Categories retrieved successfully", categories)
}

// UploadLogo stores a logo image on S3 and attaches its URL to the
// caller's product.
func (h *ProductHandler) UploadLogo(c *gin.Context) {
	userID, _ := middleware.UserID(c)

	productID, err := parseID(c, "product_id")
	if err != nil {
		utils.SendValidationError(c, "Invalid product ID")
		return
	}

	file, header, err := c.Request.FormFile("logo")
	if err != nil {
		utils.SendValidationError(c, "Logo file is required")
		return
	}
	defer file.Close()

	result, err := h.s3Service.UploadLogo(file, header)
	if err != nil {
		utils.SendServiceError(c, "Failed to upload logo", err)
		return
	}

	if err := h.productService.AttachLogo(c.Request.Context(), userID, productID, result.URL); err != nil {
		// The product rejected the logo; don't leave the object orphaned.
		_ = h.s3Service.DeleteLogo(result.Key)
		utils.SendServiceError(c, "Failed to attach logo", err)
		return
	}

	utils.SendSuccess(c, "Logo uploaded successfully", result)
}

func parseID(c *gin.Context, param string) (uint, error) {
	id, err := strconv.ParseUint(c.Param(param), 10, 32)
	return uint(id), err
}
