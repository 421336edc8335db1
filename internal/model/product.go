package model

import "time"

// ProductStatus is the lifecycle status of a product.
type ProductStatus string

const (
	ProductStatusActive   ProductStatus = "ACTIVE"
	ProductStatusInactive ProductStatus = "INACTIVE"
)

// PriceTypeNormalSell is the only price type that makes a product sellable
// through search. Ask-for-price and custom quote rows do not qualify.
const PriceTypeNormalSell = "NORMAL_SELL"

// SellableProductTypes is the set of product types that may appear in
// search results.
var SellableProductTypes = []string{"PHYSICAL", "DIGITAL", "SERVICE"}

// Product is a catalog product as returned by search hydration.
// The relations are filled by the hydrator, not by the candidate query.
type Product struct {
	ID         int64
	Name       string
	Status     ProductStatus
	Type       string
	CategoryID int64
	BrandID    int64
	OwnerID    int64
	OfferPrice float64
	CreatedAt  time.Time

	// Hydrated relations.
	Images        []ProductImage
	Price         *ProductPrice
	Brand         *Brand
	Category      *Category
	AverageRating int
	ReviewCount   int
	IsWishlisted  bool

	// RelevanceScore is the score assigned by the search pipeline for the
	// request that produced this product. Never persisted.
	RelevanceScore float64
}

// ProductImage is a single product image.
type ProductImage struct {
	ID        int64
	ProductID int64
	URL       string
	Position  int
}

// ProductPrice is a single price row. Search hydration returns the
// cheapest eligible row per product.
type ProductPrice struct {
	ID            int64
	ProductID     int64
	Amount        float64
	Status        string
	PriceType     string
	IsAskForPrice bool
	IsCustom      bool
	DiscountPct   float64
}

// Brand is a product brand.
type Brand struct {
	ID   int64
	Name string
}

// Category is a product category.
type Category struct {
	ID   int64
	Name string
}

// Tag is a semantic tag linked to one or more categories.
type Tag struct {
	ID   int64
	Name string
}
