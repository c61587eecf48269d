package catalog

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
)

// Client resolves products against the catalog service over HTTP.
type Client struct {
	http    *resty.Client
	baseURL string
}

func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		http:    resty.New().SetTimeout(timeout),
		baseURL: baseURL,
	}
}

type productPayload struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	MOQ   int    `json:"moq"`
	Price int64  `json:"price"`
	Image string `json:"image"`
}

func (c *Client) Resolve(ctx context.Context, productID string) (*Product, error) {
	var payload productPayload

	resp, err := c.http.R().
		SetContext(ctx).
		SetResult(&payload).
		Get(c.baseURL + "/api/products/" + productID)
	if err != nil {
		return nil, fmt.Errorf("requesting product %s: %w", productID, err)
	}

	switch resp.StatusCode() {
	case http.StatusOK:
		return &Product{
			ID:    payload.ID,
			Name:  payload.Name,
			MOQ:   payload.MOQ,
			Price: payload.Price,
			Image: payload.Image,
		}, nil
	case http.StatusNotFound:
		return nil, ErrNotFound
	default:
		return nil, fmt.Errorf("catalog request status: %d", resp.StatusCode())
	}
}
