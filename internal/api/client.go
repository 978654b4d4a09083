package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"product-console/internal/model"
	"product-console/pkg/logger"
	"product-console/prometheus"

	"go.uber.org/zap"
)

const (
	opListProducts  = "list_products"
	opCreateProduct = "create_product"
)

// StatusError reports a non-2xx response from the product API
type StatusError struct {
	Op         string
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s: HTTP error! status: %d", e.Op, e.StatusCode)
}

// TokenSource returns a bearer token to attach to each request
type TokenSource func() (string, error)

// Client talks to the records and uploads endpoints
type Client struct {
	RecordsURL string
	UploadsURL string
	HTTPClient *http.Client
	Logger     *zap.Logger
	Token      TokenSource
}

// NewClient creates a client for the two endpoints. A zero timeout leaves
// requests bounded only by their context.
func NewClient(recordsURL, uploadsURL string, timeout time.Duration, log *zap.Logger) *Client {
	if log == nil {
		log = zap.NewNop()
	}
	return &Client{
		RecordsURL: recordsURL,
		UploadsURL: uploadsURL,
		HTTPClient: &http.Client{Timeout: timeout},
		Logger:     log,
	}
}

// ListProducts fetches every product record from the records endpoint
func (c *Client) ListProducts(ctx context.Context) ([]model.Product, error) {
	body, err := c.do(ctx, opListProducts, http.MethodGet, c.RecordsURL, nil)
	if err != nil {
		return nil, err
	}

	var products []model.Product
	if err := json.Unmarshal(body, &products); err != nil {
		c.log(ctx).Error("Failed to parse product list", zap.Error(err))
		return nil, fmt.Errorf("%s: decode response: %w", opListProducts, err)
	}

	c.log(ctx).Debug("Products fetched", zap.Int("count", len(products)))
	return products, nil
}

// CreateProduct sends a new product record to the uploads endpoint and
// returns the raw JSON response
func (c *Client) CreateProduct(ctx context.Context, product model.Product) (json.RawMessage, error) {
	payload, err := json.Marshal(product)
	if err != nil {
		return nil, fmt.Errorf("%s: encode request: %w", opCreateProduct, err)
	}

	body, err := c.do(ctx, opCreateProduct, http.MethodPost, c.UploadsURL, payload)
	if err != nil {
		return nil, err
	}

	if !json.Valid(body) {
		c.log(ctx).Error("Create product returned a non-JSON body", zap.String("response", string(body)))
		return nil, fmt.Errorf("%s: decode response: invalid JSON", opCreateProduct)
	}

	c.log(ctx).Info("Product created", zap.Float64("id", product.ID), zap.String("name", product.Name))
	return json.RawMessage(body), nil
}

// log prefers the request-scoped logger carried by ctx
func (c *Client) log(ctx context.Context) *zap.Logger {
	if l, ok := logger.Lookup(ctx); ok {
		return l
	}
	return c.Logger
}

func (c *Client) do(ctx context.Context, op, method, url string, payload []byte) ([]byte, error) {
	log := c.log(ctx).With(zap.String("operation", op), zap.String("method", method), zap.String("url", url))

	var reqBody io.Reader
	if payload != nil {
		reqBody = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, reqBody)
	if err != nil {
		log.Error("Failed to create request", zap.Error(err))
		return nil, fmt.Errorf("%s: create request: %w", op, err)
	}
	req.Header.Set("Content-Type", "application/json")

	if c.Token != nil {
		token, err := c.Token()
		if err != nil {
			log.Error("Failed to issue service token", zap.Error(err))
			return nil, fmt.Errorf("%s: issue token: %w", op, err)
		}
		req.Header.Set("Authorization", "Bearer "+token)
	}

	start := time.Now()
	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		prometheus.ObserveUpstream(op, 0, time.Since(start))
		log.Error("API request failed", zap.Error(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	prometheus.ObserveUpstream(op, resp.StatusCode, time.Since(start))
	if err != nil {
		log.Error("Failed to read response body", zap.Error(err))
		return nil, fmt.Errorf("%s: read response: %w", op, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		log.Warn("API request returned error status",
			zap.Int("status", resp.StatusCode),
			zap.String("response", string(respBody)))
		return nil, &StatusError{Op: op, StatusCode: resp.StatusCode, Body: string(respBody)}
	}

	log.Debug("API call successful", zap.Int("status", resp.StatusCode), zap.Duration("latency", time.Since(start)))
	return respBody, nil
}
