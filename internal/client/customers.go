// Package client is the HTTP mirror of customer CRUD against a remote
// backend, used when the shop runs without local persistence.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/optivision/optivision/internal/model"
)

// CustomerAPI talks JSON to the backend's /api/customers endpoints. Any
// non-2xx response is one generic failure: the backend's error bodies are
// not parsed, and there is no retry.
type CustomerAPI struct {
	BaseURL string
	HTTP    *http.Client
}

func New(baseURL string) *CustomerAPI {
	return &CustomerAPI{BaseURL: baseURL, HTTP: http.DefaultClient}
}

// Create submits a customer without id/timestamps; the server assigns
// them and returns the stored record.
func (c *CustomerAPI) Create(ctx context.Context, in model.Customer) (model.Customer, error) {
	var out model.Customer
	err := c.do(ctx, http.MethodPost, "/api/customers", in, &out)
	if err != nil {
		return model.Customer{}, fmt.Errorf("create customer: %w", err)
	}
	return out, nil
}

func (c *CustomerAPI) List(ctx context.Context) ([]model.Customer, error) {
	var out []model.Customer
	if err := c.do(ctx, http.MethodGet, "/api/customers", nil, &out); err != nil {
		return nil, fmt.Errorf("list customers: %w", err)
	}
	return out, nil
}

// Update sends the full record including its id and returns the updated
// copy from the server.
func (c *CustomerAPI) Update(ctx context.Context, in model.Customer) (model.Customer, error) {
	var out model.Customer
	err := c.do(ctx, http.MethodPut, "/api/customers/"+in.ID, in, &out)
	if err != nil {
		return model.Customer{}, fmt.Errorf("update customer: %w", err)
	}
	return out, nil
}

func (c *CustomerAPI) Delete(ctx context.Context, id string) error {
	if err := c.do(ctx, http.MethodDelete, "/api/customers/"+id, nil, nil); err != nil {
		return fmt.Errorf("delete customer: %w", err)
	}
	return nil
}

func (c *CustomerAPI) do(ctx context.Context, method, path string, in, out any) error {
	var body *bytes.Reader
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return err
		}
		body = bytes.NewReader(b)
	} else {
		body = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path, body)
	if err != nil {
		return err
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("%s %s: unexpected status %d", method, path, resp.StatusCode)
	}
	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
