package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/go-portfolio/internal/config"
	"github.com/MKhiriev/go-portfolio/internal/logger"
	"github.com/MKhiriev/go-portfolio/internal/utils"
)

// AdminPathPrefix marks the request paths that require a bearer token.
const AdminPathPrefix = "/api/admin"

// TraceIDHeader carries the site request trace id to the backend.
const TraceIDHeader = "X-Trace-ID"

type httpBackendAdapter struct {
	client  *utils.HTTPClient
	baseURL string
	tokens  TokenSource
	logger  *logger.Logger
}

// NewHTTPBackendAdapter constructs the REST implementation of
// [BackendAdapter]. tokens may be nil for anonymous-only use (the public
// site); admin paths are then sent without an Authorization header.
//
// Returns an error if cfg.BaseURL is empty or is not an absolute URL.
func NewHTTPBackendAdapter(cfg config.BackendAdapter, tokens TokenSource, logger *logger.Logger) (BackendAdapter, error) {
	baseURL, err := normalizeBaseURL(cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid backend base url: %w", err)
	}

	h := &httpBackendAdapter{
		client:  utils.NewHTTPClient(baseURL, cfg.RequestTimeout),
		baseURL: baseURL,
		tokens:  tokens,
		logger:  logger,
	}
	h.client.OnBeforeRequest(h.attachBearer)
	h.client.OnBeforeRequest(propagateTraceID)

	return h, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// attachBearer runs before every request. It adds the Authorization header
// to admin-prefixed paths when the token source yields a token.
func (h *httpBackendAdapter) attachBearer(_ *resty.Client, r *resty.Request) error {
	if h.tokens == nil || !isAdminPath(h.baseURL, r.URL) {
		return nil
	}

	if token := h.tokens.Token(r.Context()); token != "" {
		r.SetAuthToken(token)
	}
	return nil
}

// propagateTraceID forwards the trace id of the incoming site request so the
// backend logs can be correlated with ours.
func propagateTraceID(_ *resty.Client, r *resty.Request) error {
	if traceID, ok := utils.GetTraceIDFromContext(r.Context()); ok && traceID != "" {
		r.SetHeader(TraceIDHeader, traceID)
	}
	return nil
}

func isAdminPath(baseURL, rawURL string) bool {
	path := strings.TrimPrefix(rawURL, baseURL)
	if u, err := url.Parse(path); err == nil && u.Path != "" {
		path = u.Path
	}
	return strings.HasPrefix(path, AdminPathPrefix)
}

// send issues one request and decodes a 2xx JSON body into T.
func send[T any](ctx context.Context, h *httpBackendAdapter, method, op, path string, body any, query url.Values) (T, error) {
	var out T

	req := h.client.R().SetContext(ctx).SetResult(&out)
	if body != nil {
		req.SetHeader("Content-Type", "application/json").SetBody(body)
	}
	if len(query) > 0 {
		req.SetQueryParamsFromValues(query)
	}

	resp, err := req.Execute(method, path)
	if err != nil {
		logger.FromContext(ctx).Debug().Err(err).Str("func", "httpBackendAdapter."+op).Msg("backend request failed")
		return out, fmt.Errorf("%s request: %w", op, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return out, err
	}

	return out, nil
}

func exec(ctx context.Context, h *httpBackendAdapter, method, op, path string) error {
	_, err := send[struct{}](ctx, h, method, op, path, nil, nil)
	return err
}

func idPath(prefix string, id int64, suffix ...string) string {
	p := prefix + "/" + strconv.FormatInt(id, 10)
	for _, s := range suffix {
		p += "/" + s
	}
	return p
}

func pageQuery(page, size int, search string) url.Values {
	q := url.Values{}
	if size > 0 {
		q.Set("page", strconv.Itoa(page))
		q.Set("size", strconv.Itoa(size))
	}
	if s := strings.TrimSpace(search); s != "" {
		q.Set("search", s)
	}
	return q
}
