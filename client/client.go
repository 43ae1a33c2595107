// Package client is the Go counterpart of the web client's non-UI
// layer: a typed API client, local settings persistence and an
// editing session wiring the editor to debounced saves.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/Swapnil-DevGeek/note-taker/dto"
	"github.com/Swapnil-DevGeek/note-taker/model"
)

// APIError carries the server's {"error": message} body and status.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error %d: %s", e.Status, e.Message)
}

// AuthResponse is the register/login payload. The user record comes
// back verbatim, password hash included — the server's contract, not
// ours to sanitize here.
type AuthResponse struct {
	Message string     `json:"message"`
	Token   string     `json:"token"`
	User    model.User `json:"user"`
}

// Client talks to the note-taker REST API. The token is sent verbatim
// in the Authorization header, no scheme prefix.
type Client struct {
	baseURL string
	http    *http.Client
	token   string
}

func New(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: 30 * time.Second},
	}
}

func (c *Client) SetToken(token string) { c.token = token }

func (c *Client) Token() string { return c.token }

func (c *Client) Register(ctx context.Context, req dto.RegisterRequest) (*AuthResponse, error) {
	var resp AuthResponse
	if err := c.do(ctx, http.MethodPost, "/api/register", req, &resp); err != nil {
		return nil, err
	}
	c.token = resp.Token
	return &resp, nil
}

func (c *Client) Login(ctx context.Context, req dto.LoginRequest) (*AuthResponse, error) {
	var resp AuthResponse
	if err := c.do(ctx, http.MethodPost, "/api/login", req, &resp); err != nil {
		return nil, err
	}
	c.token = resp.Token
	return &resp, nil
}

// CurrentUser restores the session user from the stored token.
func (c *Client) CurrentUser(ctx context.Context) (*model.User, error) {
	var resp struct {
		User model.User `json:"user"`
	}
	if err := c.do(ctx, http.MethodGet, "/api/user", nil, &resp); err != nil {
		return nil, err
	}
	return &resp.User, nil
}

// Notes lists the caller's notes, most recently updated first.
func (c *Client) Notes(ctx context.Context) ([]model.Note, error) {
	var notes []model.Note
	if err := c.do(ctx, http.MethodGet, "/api/notes", nil, &notes); err != nil {
		return nil, err
	}
	return notes, nil
}

func (c *Client) Note(ctx context.Context, id string) (*model.Note, error) {
	var note model.Note
	if err := c.do(ctx, http.MethodGet, "/api/notes/"+id, nil, &note); err != nil {
		return nil, err
	}
	return &note, nil
}

func (c *Client) CreateNote(ctx context.Context, title, content string) (*model.Note, error) {
	var note model.Note
	req := dto.CreateNoteRequest{Title: title, Content: content}
	if err := c.do(ctx, http.MethodPost, "/api/notes", req, &note); err != nil {
		return nil, err
	}
	return &note, nil
}

func (c *Client) UpdateNote(ctx context.Context, id, title, content string) (*model.Note, error) {
	var note model.Note
	req := dto.UpdateNoteRequest{Title: title, Content: content}
	if err := c.do(ctx, http.MethodPut, "/api/notes/"+id, req, &note); err != nil {
		return nil, err
	}
	return &note, nil
}

func (c *Client) DeleteNote(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/notes/"+id, nil, nil)
}

// ExportNote fetches the server-rendered markdown for a note.
func (c *Client) ExportNote(ctx context.Context, id string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/api/notes/"+id+"/export", nil)
	if err != nil {
		return "", err
	}
	if c.token != "" {
		req.Header.Set("Authorization", c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}
	if resp.StatusCode >= 400 {
		return "", decodeAPIError(resp.StatusCode, body)
	}
	return string(body), nil
}

func (c *Client) do(ctx context.Context, method, path string, in, out interface{}) error {
	var body io.Reader
	if in != nil {
		payload, err := json.Marshal(in)
		if err != nil {
			return err
		}
		body = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return err
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	if resp.StatusCode >= 400 {
		return decodeAPIError(resp.StatusCode, raw)
	}
	if out == nil {
		return nil
	}
	return json.Unmarshal(raw, out)
}

func decodeAPIError(status int, body []byte) error {
	var parsed struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(body, &parsed); err == nil && parsed.Error != "" {
		return &APIError{Status: status, Message: parsed.Error}
	}
	return &APIError{Status: status, Message: http.StatusText(status)}
}
