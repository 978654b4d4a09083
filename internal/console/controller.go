package console

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"product-console/internal/model"
	"product-console/prometheus"

	"go.uber.org/zap"
)

const (
	SubmitLabel     = "Add Product"
	SubmittingLabel = "Adding..."

	// SuccessBannerTTL is how long a success banner stays visible
	SuccessBannerTTL = 3 * time.Second

	MsgInvalidID  = "Product ID must be a valid number"
	MsgLoadFailed = "Failed to fetch products. Please check your API configuration."
	MsgAddFailed  = "Failed to add product. Please try again."
	MsgAdded      = "Product added successfully!"

	EmptyNoProducts = "No products found"
	EmptyLoadFailed = "Failed to load products"
	LoadingProducts = "Loading products..."
)

// ProductAPI is the subset of the API client the controller needs
type ProductAPI interface {
	ListProducts(ctx context.Context) ([]model.Product, error)
	CreateProduct(ctx context.Context, product model.Product) (json.RawMessage, error)
}

// BannerKind is the style of the banner
type BannerKind string

const (
	BannerError   BannerKind = "error"
	BannerSuccess BannerKind = "success"
)

// Banner is the single message region shown above the form
type Banner struct {
	Kind      BannerKind
	Message   string
	Transient bool
	// Seq identifies this banner so a late expiry cannot clear a newer one.
	Seq int
}

// Controller holds the state of one product page: the form, the loaded list,
// the banner and the submit trigger. It is not safe for concurrent use.
type Controller struct {
	api ProductAPI
	log *zap.Logger

	form       Form
	products   []model.Product
	loading    bool
	loadFailed bool
	banner     *Banner
	bannerSeq  int
	submitting bool
}

// NewController creates a controller for a fresh page
func NewController(api ProductAPI, log *zap.Logger) *Controller {
	if log == nil {
		log = zap.NewNop()
	}
	return &Controller{api: api, log: log}
}

// Form returns the current form contents
func (c *Controller) Form() Form {
	return c.form
}

// SetForm replaces the form contents
func (c *Controller) SetForm(f Form) {
	c.form = f
}

// Banner returns the visible banner, or nil
func (c *Controller) Banner() *Banner {
	return c.banner
}

// Products returns the last loaded list
func (c *Controller) Products() []model.Product {
	return c.products
}

// Submitting reports whether the trigger is disabled by an in-flight create
func (c *Controller) Submitting() bool {
	return c.submitting
}

// SubmitLabel returns the trigger's current label
func (c *Controller) SubmitLabel() string {
	if c.submitting {
		return SubmittingLabel
	}
	return SubmitLabel
}

// Load fetches the list and applies the result
func (c *Controller) Load(ctx context.Context) {
	c.StartLoad()
	products, err := c.api.ListProducts(ctx)
	c.ApplyLoad(products, err)
}

// StartLoad marks the list as loading
func (c *Controller) StartLoad() {
	c.loading = true
}

// ApplyLoad stores a list result. A failure empties the list and raises the
// error banner.
func (c *Controller) ApplyLoad(products []model.Product, err error) {
	c.loading = false
	if err != nil {
		c.products = nil
		c.loadFailed = true
		c.showBanner(BannerError, MsgLoadFailed, false)
		c.log.Error("Load products error", zap.Error(err))
		return
	}
	c.products = products
	c.loadFailed = false
	c.log.Debug("Products loaded", zap.Int("count", len(products)))
}

// Submit runs the whole submit flow synchronously. It returns ErrInvalidID
// when validation blocks the request, or the create error.
func (c *Controller) Submit(ctx context.Context) error {
	product, err := c.BeginSubmit()
	if err != nil {
		return err
	}
	_, createErr := c.api.CreateProduct(ctx, product)
	if c.CompleteSubmit(createErr) {
		c.Load(ctx)
	}
	return createErr
}

// ErrSubmitInFlight is returned by BeginSubmit while the trigger is disabled
var ErrSubmitInFlight = errors.New("a submission is already in progress")

// BeginSubmit clears the banner, validates the form and disables the trigger.
// On success the caller must send the returned product and then call
// CompleteSubmit with the outcome.
func (c *Controller) BeginSubmit() (model.Product, error) {
	if c.submitting {
		return model.Product{}, ErrSubmitInFlight
	}

	c.ClearBanner()

	product, err := c.form.Product()
	if err != nil {
		c.showBanner(BannerError, MsgInvalidID, false)
		prometheus.ObserveSubmission("invalid")
		c.log.Info("Submission blocked by validation", zap.String("id", c.form.ID))
		return product, err
	}

	c.submitting = true
	return product, nil
}

// CompleteSubmit applies the create outcome and re-enables the trigger. It
// reports whether the list should be reloaded.
func (c *Controller) CompleteSubmit(err error) bool {
	c.submitting = false

	if err != nil {
		c.showBanner(BannerError, MsgAddFailed, false)
		prometheus.ObserveSubmission("failed")
		c.log.Error("Add product error", zap.Error(err))
		return false
	}

	c.showBanner(BannerSuccess, MsgAdded, true)
	c.form = Form{}
	prometheus.ObserveSubmission("created")
	return true
}

// ShowAdded raises the transient success banner for a create that completed
// on an earlier request
func (c *Controller) ShowAdded() {
	c.showBanner(BannerSuccess, MsgAdded, true)
}

// ClearBanner removes any visible banner
func (c *Controller) ClearBanner() {
	c.banner = nil
}

// ExpireBanner removes the banner with the given sequence number if it is
// still visible and transient
func (c *Controller) ExpireBanner(seq int) {
	if c.banner != nil && c.banner.Transient && c.banner.Seq == seq {
		c.banner = nil
	}
}

func (c *Controller) showBanner(kind BannerKind, message string, transient bool) {
	c.bannerSeq++
	c.banner = &Banner{Kind: kind, Message: message, Transient: transient, Seq: c.bannerSeq}
}

// View snapshots the controller state for rendering
func (c *Controller) View() PageView {
	v := PageView{
		Form:        c.form,
		Banner:      c.banner,
		Submitting:  c.submitting,
		SubmitLabel: c.SubmitLabel(),
		Loading:     c.loading,
		Products:    make([]ProductView, 0, len(c.products)),
	}

	switch {
	case c.loading:
		v.Placeholder = LoadingProducts
	case c.loadFailed:
		v.Placeholder = EmptyLoadFailed
	case len(c.products) == 0:
		v.Placeholder = EmptyNoProducts
	}

	if !c.loading && !c.loadFailed {
		for _, p := range c.products {
			v.Products = append(v.Products, NewProductView(p))
		}
	}
	if v.Banner != nil && v.Banner.Transient {
		v.BannerTTL = SuccessBannerTTL
	}
	return v
}
