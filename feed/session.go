package feed

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
)

// Session is the authenticated viewer: installed by Login, torn down by
// Logout, and attached as a bearer credential to every mutating request.
type Session struct {
	Token string
	Name  string
}

// Session returns the active session, or nil when logged out.
func (c *Client) Session() *Session {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.session
}

// Register creates an account. It does not log the user in.
func (c *Client) Register(ctx context.Context, name, email, password string) error {
	payload := map[string]string{
		"name":     name,
		"email":    email,
		"password": password,
	}

	if _, err := c.postJSON(ctx, "/auth/register", payload, http.StatusCreated); err != nil {
		return err
	}
	return nil
}

// Login exchanges credentials for a token and installs the session on the
// client.
func (c *Client) Login(ctx context.Context, email, password string) (*Session, error) {
	payload := map[string]string{
		"email":    email,
		"password": password,
	}

	body, err := c.postJSON(ctx, "/auth/login", payload, http.StatusOK)
	if err != nil {
		return nil, err
	}

	var result struct {
		Token string `json:"token"`
		Name  string `json:"name"`
	}
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, fmt.Errorf("error decoding login response: %v", err)
	}

	session := &Session{Token: result.Token, Name: result.Name}
	c.mu.Lock()
	c.session = session
	c.mu.Unlock()
	return session, nil
}

// Logout tears the session down. Subsequent mutating requests go out without
// credentials and will be rejected by the API.
func (c *Client) Logout() {
	c.mu.Lock()
	c.session = nil
	c.mu.Unlock()
}

func (c *Client) authorize(req *http.Request) {
	c.mu.Lock()
	session := c.session
	c.mu.Unlock()

	if session != nil && session.Token != "" {
		req.Header.Set("Authorization", "Bearer "+session.Token)
	}
}

func (c *Client) postJSON(ctx context.Context, path string, payload interface{}, wantStatus int) ([]byte, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("error encoding request: %v", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("error creating request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("error making request: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != wantStatus {
		return nil, decodeAPIError(resp)
	}

	var buf bytes.Buffer
	if _, err := buf.ReadFrom(resp.Body); err != nil {
		return nil, fmt.Errorf("error reading response: %v", err)
	}
	return buf.Bytes(), nil
}
