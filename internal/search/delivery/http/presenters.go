package http

import (
	"time"

	"search-srv/internal/model"
	"search-srv/internal/search"
)

type imageResp struct {
	URL      string `json:"url"`
	Position int    `json:"position"`
}

type priceResp struct {
	Amount      float64 `json:"amount"`
	DiscountPct float64 `json:"discount_pct,omitempty"`
}

type brandResp struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type categoryResp struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type productResp struct {
	ID             int64         `json:"id"`
	Name           string        `json:"name"`
	OfferPrice     float64       `json:"offer_price"`
	Price          *priceResp    `json:"price,omitempty"`
	Images         []imageResp   `json:"images"`
	Brand          *brandResp    `json:"brand,omitempty"`
	Category       *categoryResp `json:"category,omitempty"`
	AverageRating  int           `json:"average_rating"`
	ReviewCount    int           `json:"review_count"`
	IsWishlisted   bool          `json:"is_wishlisted"`
	RelevanceScore float64       `json:"relevance_score"`
	CreatedAt      time.Time     `json:"created_at"`
}

type searchResp struct {
	Success        bool                   `json:"success"`
	Message        string                 `json:"message"`
	Data           []productResp          `json:"data"`
	TotalCount     int64                  `json:"total_count"`
	AutoCorrection *search.AutoCorrection `json:"auto_correction,omitempty"`
	DidYouMean     string                 `json:"did_you_mean,omitempty"`
}

type suggestResp struct {
	Products   []string `json:"products"`
	Categories []string `json:"categories"`
	Popular    []string `json:"popular"`
	Recent     []string `json:"recent"`
}

type expandResp struct {
	Terms []string `json:"terms"`
}

func newProductResp(p model.Product) productResp {
	resp := productResp{
		ID:             p.ID,
		Name:           p.Name,
		OfferPrice:     p.OfferPrice,
		Images:         []imageResp{},
		AverageRating:  p.AverageRating,
		ReviewCount:    p.ReviewCount,
		IsWishlisted:   p.IsWishlisted,
		RelevanceScore: p.RelevanceScore,
		CreatedAt:      p.CreatedAt,
	}
	for _, img := range p.Images {
		resp.Images = append(resp.Images, imageResp{URL: img.URL, Position: img.Position})
	}
	if p.Price != nil {
		resp.Price = &priceResp{Amount: p.Price.Amount, DiscountPct: p.Price.DiscountPct}
	}
	if p.Brand != nil {
		resp.Brand = &brandResp{ID: p.Brand.ID, Name: p.Brand.Name}
	}
	if p.Category != nil {
		resp.Category = &categoryResp{ID: p.Category.ID, Name: p.Category.Name}
	}
	return resp
}

func newSearchResp(out search.SearchOutput) searchResp {
	resp := searchResp{
		Success:        out.Success,
		Message:        out.Message,
		Data:           []productResp{},
		TotalCount:     out.TotalCount,
		AutoCorrection: out.AutoCorrection,
		DidYouMean:     out.DidYouMean,
	}
	for _, p := range out.Products {
		resp.Data = append(resp.Data, newProductResp(p))
	}
	return resp
}

func newSuggestResp(out search.SuggestOutput) suggestResp {
	resp := suggestResp{
		Products:   out.Products,
		Categories: out.Categories,
		Popular:    out.Popular,
		Recent:     out.Recent,
	}
	if resp.Products == nil {
		resp.Products = []string{}
	}
	if resp.Categories == nil {
		resp.Categories = []string{}
	}
	if resp.Popular == nil {
		resp.Popular = []string{}
	}
	if resp.Recent == nil {
		resp.Recent = []string{}
	}
	return resp
}

func newExpandResp(out search.ExpandOutput) expandResp {
	resp := expandResp{Terms: out.Terms}
	if resp.Terms == nil {
		resp.Terms = []string{}
	}
	return resp
}
