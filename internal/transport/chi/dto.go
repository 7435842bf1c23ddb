package chi

import (
	"github.com/shopspring/decimal"

	"github.com/gemacjr/product-recommender-engine/internal/domain"
)

type productResponse struct {
	ID            int64           `json:"id"`
	Name          string          `json:"name"`
	Description   string          `json:"description"`
	Category      string          `json:"category"`
	Price         decimal.Decimal `json:"price"`
	Brand         string          `json:"brand,omitempty"`
	SKU           string          `json:"sku"`
	Tags          []string        `json:"tags,omitempty"`
	Features      []string        `json:"features,omitempty"`
	StockQuantity int             `json:"stock_quantity"`
	Rating        decimal.Decimal `json:"rating"`
	ReviewCount   int             `json:"review_count"`
	ImageURL      string          `json:"image_url,omitempty"`
	Active        bool            `json:"active"`
	CreatedAt     string          `json:"created_at,omitempty"`
	UpdatedAt     string          `json:"updated_at,omitempty"`
}

type productRequest struct {
	Name          string          `json:"name"`
	Description   string          `json:"description"`
	Category      string          `json:"category"`
	Price         decimal.Decimal `json:"price"`
	Brand         string          `json:"brand"`
	SKU           string          `json:"sku"`
	Tags          []string        `json:"tags"`
	Features      []string        `json:"features"`
	StockQuantity int             `json:"stock_quantity"`
	Rating        decimal.Decimal `json:"rating"`
	ReviewCount   int             `json:"review_count"`
	ImageURL      string          `json:"image_url"`
}

type pageResponse struct {
	Items      []productResponse `json:"items"`
	Page       int               `json:"page"`
	Size       int               `json:"size"`
	Total      int64             `json:"total"`
	TotalPages int64             `json:"total_pages"`
}

type productListResponse struct {
	Items []productResponse `json:"items"`
	Total int               `json:"total"`
}

func productToResponse(p *domain.Product) productResponse {
	resp := productResponse{
		ID:            p.ID,
		Name:          p.Name,
		Description:   p.Description,
		Category:      string(p.Category),
		Price:         p.Price,
		Brand:         p.Brand,
		SKU:           p.SKU,
		Tags:          p.Tags,
		Features:      p.Features,
		StockQuantity: p.StockQuantity,
		Rating:        p.Rating,
		ReviewCount:   p.ReviewCount,
		ImageURL:      p.ImageURL,
		Active:        p.Active,
	}
	if !p.CreatedAt.IsZero() {
		resp.CreatedAt = p.CreatedAt.UTC().Format("2006-01-02T15:04:05Z07:00")
	}
	if !p.UpdatedAt.IsZero() {
		resp.UpdatedAt = p.UpdatedAt.UTC().Format("2006-01-02T15:04:05Z07:00")
	}
	return resp
}

func productFromRequest(req productRequest) domain.Product {
	return domain.Product{
		Name:          req.Name,
		Description:   req.Description,
		Category:      domain.Category(req.Category),
		Price:         req.Price,
		Brand:         req.Brand,
		SKU:           req.SKU,
		Tags:          req.Tags,
		Features:      req.Features,
		StockQuantity: req.StockQuantity,
		Rating:        req.Rating,
		ReviewCount:   req.ReviewCount,
		ImageURL:      req.ImageURL,
	}
}

func productsToList(products []domain.Product) productListResponse {
	items := make([]productResponse, len(products))
	for i := range products {
		items[i] = productToResponse(&products[i])
	}
	return productListResponse{Items: items, Total: len(items)}
}

func pageToResponse(page domain.Page) pageResponse {
	items := make([]productResponse, len(page.Items))
	for i := range page.Items {
		items[i] = productToResponse(&page.Items[i])
	}
	return pageResponse{
		Items:      items,
		Page:       page.Page,
		Size:       page.Size,
		Total:      page.Total,
		TotalPages: page.TotalPages(),
	}
}
