package docapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/fluxcrew/lifecycle/internal/domain"
	"github.com/fluxcrew/lifecycle/internal/platform/httpclient"
	"github.com/fluxcrew/lifecycle/internal/ports"
)

// Compile-time interface check.
var _ ports.DocumentStore = (*Client)(nil)

// Client is the outbound adapter for the remote document API. It implements
// [ports.DocumentStore]:
//
//	GET    /api/v1/collections/{collection}/documents          list, ordered by name
//	GET    /api/v1/collections/{collection}/documents/{name}   find
//	POST   /api/v1/collections/{collection}/documents          insert (409 on duplicate)
//	PUT    /api/v1/collections/{collection}/documents/{name}   replace (404 if missing)
//	DELETE /api/v1/collections/{collection}/documents/{name}   delete
//
// The underlying [httpclient.Client] provides circuit breaking, retry with
// exponential backoff, rate limiting and OpenTelemetry tracing for every
// call. Retries happen there and nowhere else.
type Client struct {
	req    *Requester
	logger *slog.Logger
}

// NewClient creates a Client that sends requests through the given
// [httpclient.Client]. The client's BaseURL should point to the document
// API root.
func NewClient(client *httpclient.Client, logger *slog.Logger) *Client {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Client{
		req:    NewRequester(client, logger),
		logger: logger,
	}
}

func collectionPath(collection string) string {
	return "/api/v1/collections/" + url.PathEscape(collection) + "/documents"
}

func documentPath(collection, name string) string {
	return collectionPath(collection) + "/" + url.PathEscape(name)
}

// Find fetches one document. Returns [domain.ErrNotFound] on 404.
func (c *Client) Find(ctx context.Context, collection, name string) (json.RawMessage, error) {
	var doc json.RawMessage
	if err := c.req.Do(ctx, http.MethodGet, documentPath(collection, name), http.StatusOK, nil, &doc); err != nil {
		return nil, fmt.Errorf("%s/%s: %w", collection, name, err)
	}
	return doc, nil
}

// Insert creates a document. Returns [domain.ErrConflict] on 409.
func (c *Client) Insert(ctx context.Context, collection, name string, doc json.RawMessage) error {
	body := documentDTO{Name: name, Document: doc}
	if err := c.req.Do(ctx, http.MethodPost, collectionPath(collection), http.StatusCreated, body, nil); err != nil {
		return fmt.Errorf("%s/%s: %w", collection, name, err)
	}
	return nil
}

// Update replaces a document. Returns [domain.ErrNotFound] on 404.
func (c *Client) Update(ctx context.Context, collection, name string, doc json.RawMessage) error {
	if err := c.req.Do(ctx, http.MethodPut, documentPath(collection, name), http.StatusNoContent, doc, nil); err != nil {
		return fmt.Errorf("%s/%s: %w", collection, name, err)
	}
	return nil
}

// Delete removes a document. A 404 is treated as success.
func (c *Client) Delete(ctx context.Context, collection, name string) error {
	err := c.req.Do(ctx, http.MethodDelete, documentPath(collection, name), http.StatusNoContent, nil, nil)
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return fmt.Errorf("%s/%s: %w", collection, name, err)
	}
	return nil
}

// FindAll lists a collection. A collection the API has never seen is empty.
func (c *Client) FindAll(ctx context.Context, collection string) ([]json.RawMessage, error) {
	var dto documentListDTO
	err := c.req.Do(ctx, http.MethodGet, collectionPath(collection), http.StatusOK, nil, &dto)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", collection, err)
	}
	return toDocuments(dto), nil
}
