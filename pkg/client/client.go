// Package client is a Go client for the drfriend HTTP API.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime"
	"mime/multipart"
	"net/http"
	"net/url"
	"time"

	"github.com/iudanet/drfriend/pkg/api"
)

// ErrNotFound matches errors for unknown records, trash entries and categories
var ErrNotFound = errors.New("not found")

// Error is a non-2xx response of the API
type Error struct {
	StatusCode int
	Message    string
}

func (e *Error) Error() string {
	return fmt.Sprintf("server error (%d): %s", e.StatusCode, e.Message)
}

// Is reports 404 responses as ErrNotFound
func (e *Error) Is(target error) bool {
	return target == ErrNotFound && e.StatusCode == http.StatusNotFound
}

// Client представляет HTTP клиент для локального API drfriend
type Client struct {
	httpClient *http.Client
	baseURL    string
}

// NewClient создает новый API клиент, например NewClient("http://127.0.0.1:8080")
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// Download содержит скачанный файл
type Download struct {
	Data        []byte
	ContentType string
	FileName    string
}

// Health проверяет доступность сервера
func (c *Client) Health(ctx context.Context) error {
	if err := c.doJSON(ctx, http.MethodGet, "/health", nil, nil); err != nil {
		return fmt.Errorf("health request failed: %w", err)
	}
	return nil
}

// Counts возвращает количество записей по категориям
func (c *Client) Counts(ctx context.Context) (*api.CountsResponse, error) {
	var resp api.CountsResponse
	if err := c.doJSON(ctx, http.MethodGet, "/api/v1/counts", nil, &resp); err != nil {
		return nil, fmt.Errorf("counts request failed: %w", err)
	}
	return &resp, nil
}

// Records возвращает записи категории в порядке загрузки
func (c *Client) Records(ctx context.Context, category string) ([]api.RecordInfo, error) {
	var resp api.RecordListResponse
	if err := c.doJSON(ctx, http.MethodGet, "/api/v1/records/"+url.PathEscape(category), nil, &resp); err != nil {
		return nil, fmt.Errorf("list records request failed: %w", err)
	}
	return resp.Records, nil
}

// Upload загружает файл в категорию. name может быть пустым, тогда
// используется fileName.
func (c *Client) Upload(ctx context.Context, category, name, fileName string, content io.Reader) (*api.RecordInfo, error) {
	var body bytes.Buffer
	mw := multipart.NewWriter(&body)

	part, err := mw.CreateFormFile("file", fileName)
	if err != nil {
		return nil, fmt.Errorf("failed to create form file: %w", err)
	}
	if _, err := io.Copy(part, content); err != nil {
		return nil, fmt.Errorf("failed to read upload content: %w", err)
	}
	if name != "" {
		if err := mw.WriteField("name", name); err != nil {
			return nil, fmt.Errorf("failed to write name field: %w", err)
		}
	}
	if err := mw.Close(); err != nil {
		return nil, fmt.Errorf("failed to finish form: %w", err)
	}

	var resp api.RecordInfo
	path := "/api/v1/records/" + url.PathEscape(category)
	if err := c.do(ctx, http.MethodPost, path, &body, mw.FormDataContentType(), &resp); err != nil {
		return nil, fmt.Errorf("upload request failed: %w", err)
	}
	return &resp, nil
}

// Download скачивает содержимое записи
func (c *Client) Download(ctx context.Context, category, id string) (*Download, error) {
	path := fmt.Sprintf("/api/v1/records/%s/%s/download", url.PathEscape(category), url.PathEscape(id))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("download request failed: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}
	if err := checkStatus(resp.StatusCode, data); err != nil {
		return nil, fmt.Errorf("download request failed: %w", err)
	}

	d := &Download{
		Data:        data,
		ContentType: resp.Header.Get("Content-Type"),
	}
	if _, params, err := mime.ParseMediaType(resp.Header.Get("Content-Disposition")); err == nil {
		d.FileName = params["filename"]
	}
	return d, nil
}

// Delete перемещает запись в корзину
func (c *Client) Delete(ctx context.Context, category, id string) (*api.RecordInfo, error) {
	var resp api.RecordInfo
	path := fmt.Sprintf("/api/v1/records/%s/%s", url.PathEscape(category), url.PathEscape(id))
	if err := c.doJSON(ctx, http.MethodDelete, path, nil, &resp); err != nil {
		return nil, fmt.Errorf("delete request failed: %w", err)
	}
	return &resp, nil
}

// Trash возвращает содержимое корзины, новые записи первыми
func (c *Client) Trash(ctx context.Context) ([]api.RecordInfo, error) {
	var resp api.TrashListResponse
	if err := c.doJSON(ctx, http.MethodGet, "/api/v1/trash", nil, &resp); err != nil {
		return nil, fmt.Errorf("trash request failed: %w", err)
	}
	return resp.Entries, nil
}

// Restore возвращает запись из корзины в исходную категорию
func (c *Client) Restore(ctx context.Context, id string) (*api.RecordInfo, error) {
	var resp api.RecordInfo
	if err := c.doJSON(ctx, http.MethodPost, "/api/v1/trash/"+url.PathEscape(id)+"/restore", nil, &resp); err != nil {
		return nil, fmt.Errorf("restore request failed: %w", err)
	}
	return &resp, nil
}

// Purge окончательно удаляет запись из корзины
func (c *Client) Purge(ctx context.Context, id string) error {
	if err := c.doJSON(ctx, http.MethodDelete, "/api/v1/trash/"+url.PathEscape(id), nil, nil); err != nil {
		return fmt.Errorf("purge request failed: %w", err)
	}
	return nil
}

// Profile возвращает профиль пользователя
func (c *Client) Profile(ctx context.Context) (*api.Profile, error) {
	var resp api.Profile
	if err := c.doJSON(ctx, http.MethodGet, "/api/v1/profile", nil, &resp); err != nil {
		return nil, fmt.Errorf("profile request failed: %w", err)
	}
	return &resp, nil
}

// SaveProfile перезаписывает профиль пользователя
func (c *Client) SaveProfile(ctx context.Context, p api.Profile) error {
	if err := c.doJSON(ctx, http.MethodPut, "/api/v1/profile", p, nil); err != nil {
		return fmt.Errorf("save profile request failed: %w", err)
	}
	return nil
}

// ClearProfile удаляет профиль пользователя
func (c *Client) ClearProfile(ctx context.Context) error {
	if err := c.doJSON(ctx, http.MethodDelete, "/api/v1/profile", nil, nil); err != nil {
		return fmt.Errorf("clear profile request failed: %w", err)
	}
	return nil
}

// Chat отправляет сообщение помощнику и возвращает ответ
func (c *Client) Chat(ctx context.Context, message string) (string, error) {
	var resp api.ChatResponse
	if err := c.doJSON(ctx, http.MethodPost, "/api/v1/chat", api.ChatRequest{Message: message}, &resp); err != nil {
		return "", fmt.Errorf("chat request failed: %w", err)
	}
	return resp.Reply, nil
}

// doJSON выполняет запрос с JSON телом
func (c *Client) doJSON(ctx context.Context, method, path string, body, result any) error {
	var (
		bodyReader  io.Reader
		contentType string
	)
	if body != nil {
		jsonData, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request body: %w", err)
		}
		bodyReader = bytes.NewReader(jsonData)
		contentType = "application/json"
	}
	return c.do(ctx, method, path, bodyReader, contentType, result)
}

// do выполняет HTTP запрос и декодирует JSON ответ в result
func (c *Client) do(ctx context.Context, method, path string, body io.Reader, contentType string, result any) error {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	if err := checkStatus(resp.StatusCode, respBody); err != nil {
		return err
	}

	if result != nil && len(respBody) > 0 {
		if err := json.Unmarshal(respBody, result); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}
	return nil
}

// checkStatus превращает не-2xx ответ в *Error
func checkStatus(statusCode int, body []byte) error {
	if statusCode >= 200 && statusCode < 300 {
		return nil
	}

	var errResp api.ErrorResponse
	if err := json.Unmarshal(body, &errResp); err == nil && errResp.Message != "" {
		return &Error{StatusCode: statusCode, Message: errResp.Message}
	}
	return &Error{StatusCode: statusCode, Message: string(bytes.TrimSpace(body))}
}
