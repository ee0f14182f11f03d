package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"

	"github.com/dmitrijs2005/userdesk/internal/client/models"
	"github.com/dmitrijs2005/userdesk/internal/common"
	"github.com/dmitrijs2005/userdesk/internal/logging"
)

type httpDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// HTTPClient talks to a reqres-style API rooted at baseURL.
type HTTPClient struct {
	client  httpDoer
	baseURL url.URL
	apiKey  string
	logger  logging.Logger
}

// NewHTTPClient builds an HTTPClient. An empty apiKey disables the
// credential header; a nil logger discards log output.
func NewHTTPClient(doer httpDoer, baseURL url.URL, apiKey string, logger logging.Logger) *HTTPClient {
	if logger == nil {
		logger = logging.Discard()
	}
	return &HTTPClient{
		client:  doer,
		baseURL: baseURL,
		apiKey:  apiKey,
		logger:  logger.With("component", "http-client"),
	}
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token string `json:"token"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func (c *HTTPClient) Login(ctx context.Context, email, password string) (string, error) {
	var resp loginResponse
	err := c.roundTrip(ctx, http.MethodPost, c.baseURL.JoinPath("login"), loginRequest{Email: email, Password: password}, &resp)
	if err != nil {
		msg := "Login failed"
		var se *statusError
		if errors.As(err, &se) && se.Message != "" {
			msg = se.Message
		}
		_, cause := describe(err)
		return "", &AuthError{Message: msg, Err: cause}
	}
	if resp.Token == "" {
		return "", &AuthError{Message: "Login failed", Err: errors.New("empty token in response")}
	}
	return resp.Token, nil
}

func (c *HTTPClient) ListUsers(ctx context.Context, page int) (models.Page, error) {
	u := c.baseURL.JoinPath("users")
	q := u.Query()
	q.Set("page", strconv.Itoa(page))
	u.RawQuery = q.Encode()

	var p models.Page
	if err := c.roundTrip(ctx, http.MethodGet, u, nil, &p); err != nil {
		msg, cause := describe(err)
		return models.Page{}, &FetchError{Message: msg, Err: cause}
	}
	return p, nil
}

func (c *HTTPClient) CreateUser(ctx context.Context, fields models.UserFields) (models.Created, error) {
	var created models.Created
	if err := c.roundTrip(ctx, http.MethodPost, c.baseURL.JoinPath("users"), fields, &created); err != nil {
		msg, cause := describe(err)
		return models.Created{}, &WriteError{Message: msg, Err: cause}
	}
	return created, nil
}

func (c *HTTPClient) UpdateUser(ctx context.Context, id models.ID, fields models.UserFields) error {
	if err := c.roundTrip(ctx, http.MethodPut, c.baseURL.JoinPath("users", id.String()), fields, nil); err != nil {
		msg, cause := describe(err)
		return &WriteError{Message: msg, Err: cause}
	}
	return nil
}

func (c *HTTPClient) DeleteUser(ctx context.Context, id models.ID) error {
	if err := c.roundTrip(ctx, http.MethodDelete, c.baseURL.JoinPath("users", id.String()), nil, nil); err != nil {
		msg, cause := describe(err)
		return &WriteError{Message: msg, Err: cause}
	}
	return nil
}

// roundTrip sends in as a JSON body (when non-nil) and decodes a 2xx answer
// into out (when non-nil). Any other status comes back as *statusError.
func (c *HTTPClient) roundTrip(ctx context.Context, method string, u *url.URL, in, out any) error {
	var body io.Reader
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, u.String(), body)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.apiKey != "" {
		req.Header.Set(common.APIKeyHeaderName, c.apiKey)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		c.logger.Warn(ctx, "request failed", "method", method, "url", u.Redacted(), "error", err)
		return err
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	c.logger.Debug(ctx, "request settled", "method", method, "url", u.Redacted(), "status", resp.StatusCode)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		se := &statusError{Code: resp.StatusCode}
		var er errorResponse
		if err := json.NewDecoder(resp.Body).Decode(&er); err == nil {
			se.Message = er.Error
		}
		return se
	}

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
