// Package notion implements the remote document store over the Notion REST API.
package notion

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/bnema/kb-summarizer/internal/domain"
	"github.com/bnema/kb-summarizer/internal/ports"
)

const (
	DefaultBaseURL = "https://api.notion.com"
	DefaultVersion = "2022-06-28"

	maxResponseBytes = 1 << 20
	// Notion accepts at most this many children per create or append call.
	maxBlocksPerRequest = 100
	searchPageSize      = 100
	maxSearchPages      = 10
)

var _ ports.DocumentStore = (*Client)(nil)

// APIError is a non-2xx answer from the API.
type APIError struct {
	Status  int
	Code    string
	Message string
}

func (e *APIError) Error() string {
	if e.Code == "" {
		return fmt.Sprintf("status %d: %s", e.Status, e.Message)
	}

	return fmt.Sprintf("status %d: %s: %s", e.Status, e.Code, e.Message)
}

type Client struct {
	BaseURL        string
	Token          string
	Version        string
	HTTPClient     *http.Client
	RequestTimeout time.Duration
}

func NewClient(baseURL, token, version string) *Client {
	return &Client{BaseURL: baseURL, Token: token, Version: version}
}

type searchRequest struct {
	Query       string       `json:"query"`
	Filter      searchFilter `json:"filter"`
	PageSize    int          `json:"page_size"`
	StartCursor string       `json:"start_cursor,omitempty"`
}

type searchFilter struct {
	Value    string `json:"value"`
	Property string `json:"property"`
}

type searchResponse struct {
	Results    []searchResult `json:"results"`
	HasMore    bool           `json:"has_more"`
	NextCursor string         `json:"next_cursor"`
}

type searchResult struct {
	Object     string                    `json:"object"`
	ID         string                    `json:"id"`
	Parent     parentRef                 `json:"parent"`
	Title      []plainText               `json:"title"`
	Properties map[string]searchProperty `json:"properties"`
}

type parentRef struct {
	Type       string `json:"type"`
	PageID     string `json:"page_id,omitempty"`
	DatabaseID string `json:"database_id,omitempty"`
}

type searchProperty struct {
	Type  string      `json:"type"`
	Title []plainText `json:"title"`
}

type plainText struct {
	PlainText string `json:"plain_text"`
}

type objectResponse struct {
	ID string `json:"id"`
}

func (c *Client) Search(ctx context.Context, query string, kind domain.ObjectKind) ([]domain.RemoteObject, error) {
	var objects []domain.RemoteObject
	cursor := ""

	for range maxSearchPages {
		var resp searchResponse
		err := c.do(ctx, http.MethodPost, "/v1/search", searchRequest{
			Query:       query,
			Filter:      searchFilter{Value: string(kind), Property: "object"},
			PageSize:    searchPageSize,
			StartCursor: cursor,
		}, &resp)
		if err != nil {
			return nil, fmt.Errorf("search %s %q: %w", kind, query, err)
		}

		for _, result := range resp.Results {
			objects = append(objects, result.toRemoteObject())
		}

		if !resp.HasMore || resp.NextCursor == "" {
			break
		}
		cursor = resp.NextCursor
	}

	return objects, nil
}

func (r searchResult) toRemoteObject() domain.RemoteObject {
	object := domain.RemoteObject{
		ID:       r.ID,
		Kind:     domain.ObjectKind(r.Object),
		ParentID: r.Parent.PageID,
	}

	switch object.Kind {
	case domain.ObjectKindDatabase:
		object.Title = joinPlainText(r.Title)
	default:
		for _, property := range r.Properties {
			if property.Type == "title" {
				object.Title = joinPlainText(property.Title)
				break
			}
		}
	}

	return object
}

func joinPlainText(parts []plainText) string {
	var b strings.Builder
	for _, part := range parts {
		b.WriteString(part.PlainText)
	}

	return b.String()
}

func (c *Client) RetrieveDatabase(ctx context.Context, databaseID string) error {
	if strings.TrimSpace(databaseID) == "" {
		return errors.New("database id is required")
	}

	if err := c.do(ctx, http.MethodGet, "/v1/databases/"+url.PathEscape(databaseID), nil, nil); err != nil {
		return fmt.Errorf("retrieve database %s: %w", databaseID, err)
	}

	return nil
}

// CreatePage creates a page under parentPageID. Blocks that do not fit in the create
// request, by count or because a nested child list exceeds the request limit, are
// appended after creation.
func (c *Client) CreatePage(ctx context.Context, parentPageID string, title string, blocks []domain.Block) (string, error) {
	if strings.TrimSpace(parentPageID) == "" {
		return "", errors.New("parent page id is required")
	}

	inline, deferred := splitInline(blocks)
	body := map[string]any{
		"parent": parentRef{Type: "page_id", PageID: parentPageID},
		"properties": map[string]any{
			"title": map[string]any{"title": richTextSegments(title)},
		},
		"children": encodeBlocks(inline),
	}

	var created objectResponse
	if err := c.do(ctx, http.MethodPost, "/v1/pages", body, &created); err != nil {
		return "", fmt.Errorf("create page %q: %w", title, err)
	}

	if err := c.appendTree(ctx, created.ID, deferred); err != nil {
		return "", err
	}

	return created.ID, nil
}

// splitInline returns the leading blocks that can go in a single create request and
// the rest.
func splitInline(blocks []domain.Block) ([]domain.Block, []domain.Block) {
	n := 0
	for n < len(blocks) && n < maxBlocksPerRequest && fitsInline(blocks[n]) {
		n++
	}

	return blocks[:n], blocks[n:]
}

// appendTree appends blocks under parentID in batches. A block whose subtree does not
// fit inline is sent without children, which are then appended to the new block.
func (c *Client) appendTree(ctx context.Context, parentID string, blocks []domain.Block) error {
	for len(blocks) > 0 {
		n := min(len(blocks), maxBlocksPerRequest)
		batch := blocks[:n]
		blocks = blocks[n:]

		encoded := make([]map[string]any, 0, len(batch))
		for _, block := range batch {
			encoded = append(encoded, encodeBlock(block, fitsInline(block)))
		}

		ids, err := c.appendChildren(ctx, parentID, encoded)
		if err != nil {
			return err
		}

		for i, block := range batch {
			if fitsInline(block) {
				continue
			}
			if i >= len(ids) {
				return fmt.Errorf("append %d blocks to %s: response listed only %d", len(batch), parentID, len(ids))
			}
			if err := c.appendTree(ctx, ids[i], childrenOf(block)); err != nil {
				return err
			}
		}
	}

	return nil
}

type appendResponse struct {
	Results []objectResponse `json:"results"`
}

// appendChildren returns the ids of the created blocks in request order.
func (c *Client) appendChildren(ctx context.Context, blockID string, children []map[string]any) ([]string, error) {
	body := map[string]any{"children": children}

	var resp appendResponse
	if err := c.do(ctx, http.MethodPatch, "/v1/blocks/"+url.PathEscape(blockID)+"/children", body, &resp); err != nil {
		return nil, fmt.Errorf("append %d blocks to %s: %w", len(children), blockID, err)
	}

	ids := make([]string, 0, len(resp.Results))
	for _, result := range resp.Results {
		ids = append(ids, result.ID)
	}

	return ids, nil
}

func (c *Client) CreateDatabase(ctx context.Context, parentPageID string, title string, columns []domain.Column) (string, error) {
	if strings.TrimSpace(parentPageID) == "" {
		return "", errors.New("parent page id is required")
	}

	schema, err := encodeSchema(columns)
	if err != nil {
		return "", err
	}

	body := map[string]any{
		"parent":     parentRef{Type: "page_id", PageID: parentPageID},
		"title":      richTextSegments(title),
		"properties": schema,
	}

	var created objectResponse
	if err := c.do(ctx, http.MethodPost, "/v1/databases", body, &created); err != nil {
		return "", fmt.Errorf("create database %q: %w", title, err)
	}

	return created.ID, nil
}

func (c *Client) CreateDatabaseRow(ctx context.Context, databaseID string, values []domain.PropertyValue) (string, error) {
	if strings.TrimSpace(databaseID) == "" {
		return "", errors.New("database id is required")
	}

	properties, err := encodeProperties(values)
	if err != nil {
		return "", err
	}

	body := map[string]any{
		"parent":     parentRef{Type: "database_id", DatabaseID: databaseID},
		"properties": properties,
	}

	var created objectResponse
	if err := c.do(ctx, http.MethodPost, "/v1/pages", body, &created); err != nil {
		return "", fmt.Errorf("create row in database %s: %w", databaseID, err)
	}

	return created.ID, nil
}

func (c *Client) do(ctx context.Context, method, path string, payload any, out any) error {
	endpoint, err := buildAPIURL(c.BaseURL, path)
	if err != nil {
		return err
	}

	var body io.Reader
	if payload != nil {
		encoded, err := json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		body = bytes.NewReader(encoded)
	}

	reqCtx, cancel := c.requestContext(ctx)
	defer cancel()

	req, err := http.NewRequestWithContext(reqCtx, method, endpoint, body)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.Token)
	req.Header.Set("Notion-Version", c.version())
	req.Header.Set("Accept", "application/json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient().Do(req)
	if err != nil {
		return fmt.Errorf("send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return decodeAPIError(resp)
	}

	if out == nil {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxResponseBytes))
		return nil
	}

	if err := json.NewDecoder(io.LimitReader(resp.Body, maxResponseBytes)).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}

	return nil
}

func decodeAPIError(resp *http.Response) error {
	raw, _ := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))

	var payload struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(raw, &payload); err != nil || payload.Message == "" {
		return &APIError{Status: resp.StatusCode, Message: strings.TrimSpace(string(raw))}
	}

	return &APIError{Status: resp.StatusCode, Code: payload.Code, Message: payload.Message}
}

func (c *Client) version() string {
	if c.Version == "" {
		return DefaultVersion
	}

	return c.Version
}

func (c *Client) httpClient() *http.Client {
	if c.HTTPClient != nil {
		return c.HTTPClient
	}
	return http.DefaultClient
}

func (c *Client) requestContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if _, hasDeadline := ctx.Deadline(); hasDeadline {
		return ctx, func() {}
	}

	requestTimeout := c.RequestTimeout
	if requestTimeout <= 0 {
		requestTimeout = 30 * time.Second
	}

	return context.WithTimeout(ctx, requestTimeout)
}

func buildAPIURL(baseURL string, path string) (string, error) {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	parsed, err := url.Parse(baseURL)
	if err != nil {
		return "", fmt.Errorf("parse api base url: %w", err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return "", errors.New("api base url must use http or https")
	}
	if parsed.Host == "" {
		return "", errors.New("api base url host is required")
	}

	return strings.TrimRight(parsed.String(), "/") + path, nil
}
