package console

import (
	"strconv"
	"time"

	"product-console/internal/model"
)

const (
	PlaceholderName = "Unnamed Product"
	PlaceholderNA   = "N/A"
)

// PageView is everything a renderer needs to draw the page
type PageView struct {
	Form        Form
	Banner      *Banner
	BannerTTL   time.Duration
	Submitting  bool
	SubmitLabel string
	Loading     bool
	// Placeholder is set instead of Products when there is nothing to list.
	Placeholder string
	Products    []ProductView
}

// BannerTTLMillis is the transient banner lifetime in milliseconds, or 0
func (v PageView) BannerTTLMillis() int64 {
	return v.BannerTTL.Milliseconds()
}

// ProductView is one record with placeholders substituted for missing values
type ProductView struct {
	ID       string
	Name     string
	Category string
	Price    string
	Stock    string
}

// NewProductView formats a record for display
func NewProductView(p model.Product) ProductView {
	v := ProductView{
		ID:       formatNumber(p.ID),
		Name:     p.Name,
		Category: p.Category,
		Price:    PlaceholderNA,
		Stock:    PlaceholderNA,
	}
	if v.Name == "" {
		v.Name = PlaceholderName
	}
	if v.Category == "" {
		v.Category = PlaceholderNA
	}
	if p.Price != 0 {
		v.Price = "$" + formatNumber(p.Price)
	}
	if p.Stock != 0 {
		v.Stock = formatNumber(p.Stock)
	}
	return v
}

func formatNumber(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// SubmittingLabel is the label the trigger takes while a create is in flight
func (v PageView) SubmittingLabel() string {
	return SubmittingLabel
}
