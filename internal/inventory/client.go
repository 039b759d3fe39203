package inventory

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/pkg/errors"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/rogerio-castellano/rocketshoes-cart/internal/models"
)

const maxBodyBytes = 1 << 20

var tracer = otel.Tracer("github.com/rogerio-castellano/rocketshoes-cart/internal/inventory")

// HTTPClient talks to the stock service over its REST surface.
type HTTPClient struct {
	base *url.URL
	http *http.Client
}

// NewHTTPClient returns a client for the stock service rooted at baseURL.
func NewHTTPClient(baseURL string, timeout time.Duration) (*HTTPClient, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, errors.Wrap(err, "parse inventory base url")
	}
	if !strings.HasSuffix(u.Path, "/") {
		u.Path += "/"
	}
	return &HTTPClient{
		base: u,
		http: &http.Client{Timeout: timeout},
	}, nil
}

// GetStock fetches the available quantity of a product.
func (c *HTTPClient) GetStock(ctx context.Context, productID int) (models.Stock, error) {
	var stock models.Stock
	if err := c.get(ctx, "getStock", fmt.Sprintf("stock/%d", productID), productID, &stock); err != nil {
		return models.Stock{}, err
	}
	if stock.ProductID == 0 {
		stock.ProductID = productID
	}
	return stock, nil
}

// GetProduct fetches the catalog metadata of a product.
func (c *HTTPClient) GetProduct(ctx context.Context, productID int) (models.ProductMetadata, error) {
	var product models.ProductMetadata
	if err := c.get(ctx, "getProduct", fmt.Sprintf("products/%d", productID), productID, &product); err != nil {
		return models.ProductMetadata{}, err
	}
	return product, nil
}

func (c *HTTPClient) get(ctx context.Context, op, path string, productID int, out any) (err error) {
	ctx, span := tracer.Start(ctx, "inventory."+op)
	span.SetAttributes(attribute.Int("product.id", productID))
	defer func() {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()
	}()

	target := c.base.ResolveReference(&url.URL{Path: path})
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target.String(), nil)
	if err != nil {
		return &TransportError{Op: op, Err: err}
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return &TransportError{Op: op, Err: err}
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return errors.Wrapf(ErrNotFound, "%s %d", op, productID)
	case resp.StatusCode < 200 || resp.StatusCode > 299:
		return &TransportError{Op: op, StatusCode: resp.StatusCode}
	}

	dec := json.NewDecoder(io.LimitReader(resp.Body, maxBodyBytes))
	if err := dec.Decode(out); err != nil {
		return &TransportError{Op: op, Err: errors.Wrap(err, "decode response")}
	}
	return nil
}
