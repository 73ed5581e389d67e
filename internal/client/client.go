package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const defaultTimeout = 10 * time.Second

type Config struct {
	BaseURL string
	Timeout time.Duration
	Logger  *zap.Logger
}

// Client talks to the quiz backend's JSON API.
type Client struct {
	baseURL string
	http    *http.Client
	log     *zap.Logger
}

func New(cfg Config) *Client {
	if cfg.Timeout == 0 {
		cfg.Timeout = defaultTimeout
	}
	log := cfg.Logger
	if log == nil {
		log = zap.NewNop()
	}
	return &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		http:    &http.Client{Timeout: cfg.Timeout},
		log:     log,
	}
}

// GenerateQuiz asks the backend to generate questions for a document. A 409
// means the document already has a quiz; IsConflict on the APIError tells
// callers apart from other failures.
func (c *Client) GenerateQuiz(ctx context.Context, documentID string) (GenerateResponse, error) {
	var out GenerateResponse
	path := "/api/quizzes/generate?document_id=" + url.QueryEscape(documentID)
	err := c.do(ctx, http.MethodPost, path, nil, "", &out)
	return out, err
}

// SaveResults persists a completed session. Single attempt, no retry; the
// response is only interesting for diagnostics.
func (c *Client) SaveResults(ctx context.Context, req SaveRequest) (SaveResponse, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return SaveResponse{}, fmt.Errorf("encode save request: %w", err)
	}

	var out SaveResponse
	if err := c.do(ctx, http.MethodPost, "/api/results/save", bytes.NewReader(body), "application/json", &out); err != nil {
		return SaveResponse{}, err
	}
	return out, nil
}

// ResultsData fetches the play-history series for a document. An empty slice
// means the document has no recorded plays.
func (c *Client) ResultsData(ctx context.Context, documentID string) ([]ResultPoint, error) {
	path := "/api/results/data?document_id=" + url.QueryEscape(documentID)
	points := make([]ResultPoint, 0)
	if err := c.do(ctx, http.MethodGet, path, nil, "", &points); err != nil {
		return nil, err
	}
	return points, nil
}

// UploadDocument sends a file as the multipart "file" field.
func (c *Client) UploadDocument(ctx context.Context, path string) (UploadResponse, error) {
	f, err := os.Open(path)
	if err != nil {
		return UploadResponse{}, fmt.Errorf("open document: %w", err)
	}
	defer f.Close()

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	part, err := mw.CreateFormFile("file", filepath.Base(path))
	if err != nil {
		return UploadResponse{}, err
	}
	if _, err := io.Copy(part, f); err != nil {
		return UploadResponse{}, fmt.Errorf("read document: %w", err)
	}
	if err := mw.Close(); err != nil {
		return UploadResponse{}, err
	}

	var out UploadResponse
	if err := c.do(ctx, http.MethodPost, "/api/documents/upload", &buf, mw.FormDataContentType(), &out); err != nil {
		return UploadResponse{}, err
	}
	return out, nil
}

func (c *Client) DeleteDocument(ctx context.Context, documentID string) (DeleteResponse, error) {
	var out DeleteResponse
	err := c.do(ctx, http.MethodDelete, "/api/documents/"+url.PathEscape(documentID), nil, "", &out)
	return out, err
}

func (c *Client) do(ctx context.Context, method, path string, body io.Reader, contentType string, out any) error {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return err
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	requestID := uuid.NewString()
	req.Header.Set("X-Request-ID", requestID)

	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Warn("api request failed",
			zap.String("method", method),
			zap.String("path", path),
			zap.String("request_id", requestID),
			zap.Error(err),
		)
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := &APIError{Status: resp.StatusCode}
		var envelope struct {
			Error string `json:"error"`
		}
		if err := json.NewDecoder(resp.Body).Decode(&envelope); err == nil {
			apiErr.Message = envelope.Error
		}
		c.log.Warn("api request rejected",
			zap.String("method", method),
			zap.String("path", path),
			zap.String("request_id", requestID),
			zap.Int("status", resp.StatusCode),
			zap.String("message", apiErr.Message),
		)
		return apiErr
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("decode response: %w", err)
		}
	}

	c.log.Debug("api request done",
		zap.String("method", method),
		zap.String("path", path),
		zap.String("request_id", requestID),
		zap.Int("status", resp.StatusCode),
	)
	return nil
}
