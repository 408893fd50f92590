package feed

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"sync"

	"github.com/SHAIK-RUMEENA/PostBloging/models"
)

// Client talks to the Post API. All methods issue a single request and map
// non-2xx responses to an *APIError carrying the server's error message.
// Methods are safe for concurrent use.
type Client struct {
	baseURL    string
	httpClient *http.Client

	mu      sync.Mutex // guards session
	session *Session
}

func NewClient(baseURL string) *Client {
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{},
	}
}

// APIError is a non-2xx answer from the Post API.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error: status=%d, message=%s", e.StatusCode, e.Message)
}

// IsNotFound reports whether err is the API telling us the target is gone.
func IsNotFound(err error) bool {
	apiErr, ok := err.(*APIError)
	return ok && apiErr.StatusCode == http.StatusNotFound
}

// ImageAttachment is a newly chosen image file for a draft. A nil attachment
// on update means the stored image stays untouched.
type ImageAttachment struct {
	Filename string
	Data     []byte
}

// Draft is the in-progress post form state.
type Draft struct {
	Title    string
	Author   string
	Content  string
	Category string
	Image    *ImageAttachment
}

// FetchPosts retrieves all posts, most recent first. The ordering is the
// API's contract, the client never re-sorts.
func (c *Client) FetchPosts(ctx context.Context) ([]models.Post, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/posts", nil)
	if err != nil {
		return nil, fmt.Errorf("error creating request: %v", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("error fetching posts: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, decodeAPIError(resp)
	}

	var posts []models.Post
	if err := json.NewDecoder(resp.Body).Decode(&posts); err != nil {
		return nil, fmt.Errorf("error decoding posts: %v", err)
	}
	return posts, nil
}

// CreatePost submits a new post as a multipart form.
func (c *Client) CreatePost(ctx context.Context, draft Draft) (*models.Post, error) {
	return c.submitForm(ctx, http.MethodPost, c.baseURL+"/posts", draft, http.StatusCreated)
}

// UpdatePost updates an existing post. Only the draft fields that are set are
// changed server-side; when draft.Image is nil the stored image is kept.
func (c *Client) UpdatePost(ctx context.Context, postID string, draft Draft) (*models.Post, error) {
	return c.submitForm(ctx, http.MethodPut, c.baseURL+"/posts/"+postID, draft, http.StatusOK)
}

// LikePost increments the like counter of a post by one.
func (c *Client) LikePost(ctx context.Context, postID string) (*models.Post, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/posts/"+postID+"/like", nil)
	if err != nil {
		return nil, fmt.Errorf("error creating request: %v", err)
	}
	c.authorize(req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("error liking post: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, decodeAPIError(resp)
	}

	var post models.Post
	if err := json.NewDecoder(resp.Body).Decode(&post); err != nil {
		return nil, fmt.Errorf("error decoding post: %v", err)
	}
	return &post, nil
}

// DeletePost permanently deletes a post.
func (c *Client) DeletePost(ctx context.Context, postID string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, c.baseURL+"/posts/"+postID, nil)
	if err != nil {
		return fmt.Errorf("error creating request: %v", err)
	}
	c.authorize(req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("error deleting post: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return decodeAPIError(resp)
	}
	return nil
}

func (c *Client) submitForm(ctx context.Context, method, url string, draft Draft, wantStatus int) (*models.Post, error) {
	var body bytes.Buffer
	writer := multipart.NewWriter(&body)

	// Fixed field order keeps request bodies byte-for-byte reproducible.
	fields := []struct{ name, value string }{
		{"title", draft.Title},
		{"author", draft.Author},
		{"content", draft.Content},
		{"category", draft.Category},
	}
	for _, field := range fields {
		if err := writer.WriteField(field.name, field.value); err != nil {
			return nil, fmt.Errorf("error writing form field %s: %v", field.name, err)
		}
	}

	if draft.Image != nil {
		part, err := writer.CreateFormFile("image", draft.Image.Filename)
		if err != nil {
			return nil, fmt.Errorf("error attaching image: %v", err)
		}
		if _, err := part.Write(draft.Image.Data); err != nil {
			return nil, fmt.Errorf("error writing image: %v", err)
		}
	}

	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("error finalizing form: %v", err)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, &body)
	if err != nil {
		return nil, fmt.Errorf("error creating request: %v", err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())
	c.authorize(req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("error submitting post: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != wantStatus {
		return nil, decodeAPIError(resp)
	}

	var post models.Post
	if err := json.NewDecoder(resp.Body).Decode(&post); err != nil {
		return nil, fmt.Errorf("error decoding post: %v", err)
	}
	return &post, nil
}

func decodeAPIError(resp *http.Response) error {
	apiErr := &APIError{StatusCode: resp.StatusCode}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return apiErr
	}

	var payload struct {
		Error   string `json:"error"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		apiErr.Message = string(body)
		return apiErr
	}

	apiErr.Message = payload.Error
	if apiErr.Message == "" {
		apiErr.Message = payload.Message
	}
	return apiErr
}
