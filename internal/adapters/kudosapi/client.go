// Package kudosapi is the client side kudos repository; it reads the wall through the HTTP API
package kudosapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"kudoswall/internal/core/pagination"
	perr "kudoswall/internal/platform/errors"
	"kudoswall/internal/platform/logger"
	"kudoswall/internal/services/api/kudos/domain"
)

const (
	defaultTimeout = 10 * time.Second
	defaultUA      = "kudoswall-client"
	apiBase        = "/api/v1"
	maxBody        = 4 << 20
)

// TokenSource yields the bearer token for the next request; an empty token sends none
type TokenSource interface {
	Token(ctx context.Context) (string, error)
}

// StaticToken is a TokenSource that always returns the same token
type StaticToken string

// Token implements TokenSource
func (s StaticToken) Token(context.Context) (string, error) { return string(s), nil }

// Options configures the Client
type Options struct {
	BaseURL   string
	UserAgent string
	Timeout   time.Duration
	Tokens    TokenSource

	// HTTP overrides the transport client, mostly for tests
	HTTP *http.Client
}

// Client implements domain.Repository over /api/v1/kudos
type Client struct {
	http   *http.Client
	base   string
	ua     string
	tokens TokenSource
	log    logger.Logger
	now    func() time.Time
}

var _ domain.Repository = (*Client)(nil)

// New validates the base url and fills defaults
func New(o Options) (*Client, error) {
	u, err := url.Parse(strings.TrimSpace(o.BaseURL))
	if err != nil || u.Scheme == "" || u.Host == "" {
		return nil, perr.InvalidArgf("kudosapi: base url must be absolute, got %q", o.BaseURL)
	}
	if o.Timeout <= 0 {
		o.Timeout = defaultTimeout
	}
	if o.UserAgent == "" {
		o.UserAgent = defaultUA
	}
	hc := o.HTTP
	if hc == nil {
		hc = &http.Client{Timeout: o.Timeout}
	}
	return &Client{
		http:   hc,
		base:   strings.TrimRight(u.String(), "/"),
		ua:     o.UserAgent,
		tokens: o.Tokens,
		log:    *logger.Named("kudosapi"),
		now:    time.Now,
	}, nil
}

// GetAll posts the filter and page to /kudos/list
func (c *Client) GetAll(ctx context.Context, f domain.Filter, p pagination.Params) (pagination.Result[domain.Kudos], error) {
	body := domain.ListInput{
		Recipient: f.Recipient,
		Team:      string(f.Team),
		Category:  string(f.Category),
		Search:    f.Search,
		From:      f.From,
		To:        f.To,
		Page:      p.Page,
		Limit:     p.Limit,
	}
	var out pagination.Result[domain.Kudos]
	if err := c.do(ctx, http.MethodPost, "/kudos/list", body, &out); err != nil {
		return pagination.Result[domain.Kudos]{}, err
	}
	return normalize(out), nil
}

// GetByUser posts to /kudos/by-user
func (c *Client) GetByUser(ctx context.Context, userID string, t domain.UserKudosType, p pagination.Params) (pagination.Result[domain.Kudos], error) {
	body := domain.ByUserInput{UserID: userID, Type: string(t), Page: p.Page, Limit: p.Limit}
	var out pagination.Result[domain.Kudos]
	if err := c.do(ctx, http.MethodPost, "/kudos/by-user", body, &out); err != nil {
		return pagination.Result[domain.Kudos]{}, err
	}
	return normalize(out), nil
}

// Get fetches a single kudos by id
func (c *Client) Get(ctx context.Context, id string) (domain.Kudos, error) {
	var out domain.Kudos
	if err := c.do(ctx, http.MethodGet, "/kudos/"+url.PathEscape(id), nil, &out); err != nil {
		return domain.Kudos{}, err
	}
	return out, nil
}

func normalize(r pagination.Result[domain.Kudos]) pagination.Result[domain.Kudos] {
	if r.Data == nil {
		r.Data = []domain.Kudos{}
	}
	return r
}

// envelope mirrors the server response wrapper with data left raw
type envelope struct {
	StatusCode int             `json:"status_code"`
	Status     string          `json:"status"`
	Code       perr.ErrorCode  `json:"code"`
	Error      string          `json:"error"`
	Field      string          `json:"field"`
	RequestID  string          `json:"request_id"`
	Data       json.RawMessage `json:"data"`
}

// do sends one request and decodes the envelope data into out
func (c *Client) do(ctx context.Context, method, path string, in any, out any) error {
	var rdr io.Reader
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return perr.Wrap(err, perr.ErrorCodeJSON, "kudosapi encode request")
		}
		rdr = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.base+apiBase+path, rdr)
	if err != nil {
		return perr.Wrapf(err, perr.ErrorCodeUnknown, "kudosapi new request failed")
	}
	req.Header.Set("User-Agent", c.ua)
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.tokens != nil {
		tok, err := c.tokens.Token(ctx)
		if err != nil {
			return perr.Wrap(err, perr.ErrorCodeUnauthorized, "kudosapi token unavailable")
		}
		if tok != "" {
			req.Header.Set("Authorization", "Bearer "+tok)
		}
	}

	start := c.now()
	resp, err := c.http.Do(req)
	if err != nil {
		return perr.Wrapf(err, perr.ErrorCodeNetwork, "kudosapi %s %s failed", method, path)
	}
	defer func() { _ = resp.Body.Close() }()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxBody))
	if err != nil {
		return perr.Wrapf(err, perr.ErrorCodeNetwork, "kudosapi read %s", path)
	}

	c.log.Debug().
		Str("method", method).
		Str("path", path).
		Int("status", resp.StatusCode).
		Dur("latency", c.now().Sub(start)).
		Int("bytes", len(raw)).
		Msg("kudosapi response")

	var env envelope
	decErr := json.Unmarshal(raw, &env)

	if resp.StatusCode == http.StatusUnauthorized {
		msg := "unauthorized"
		if decErr == nil && env.Error != "" {
			msg = env.Error
		}
		return perr.Unauthorizedf("%s", msg)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		if decErr == nil && env.Error != "" {
			return perr.WithField(perr.New(env.Code, env.Error), env.Field)
		}
		return perr.Internalf("kudosapi %s %s: unexpected status %d", method, path, resp.StatusCode)
	}
	if decErr != nil {
		return perr.Wrap(decErr, perr.ErrorCodeUnknown, "kudosapi decode envelope")
	}
	if len(env.Data) == 0 || string(env.Data) == "null" {
		return nil
	}
	if err := json.Unmarshal(env.Data, out); err != nil {
		return perr.Wrap(err, perr.ErrorCodeUnknown, fmt.Sprintf("kudosapi decode %s", path))
	}
	return nil
}
