package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

// TokenSource fornece o bearer token da sessão. É lido a cada requisição.
type TokenSource interface {
	Token() string
}

type tokenKey struct{}

// bearerTransport é o interceptor compartilhado: anexa o token da
// sessão que originou a requisição.
type bearerTransport struct {
	next http.RoundTripper
}

func (t *bearerTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	ts, _ := req.Context().Value(tokenKey{}).(TokenSource)
	if ts == nil || ts.Token() == "" {
		return t.next.RoundTrip(req)
	}
	r := req.Clone(req.Context())
	r.Header.Set("Authorization", "Bearer "+ts.Token())
	return t.next.RoundTrip(r)
}

// Client fala com a API REST do salão. Sem retry e sem timeout próprio:
// prazo e cancelamento vêm do contexto de quem chama.
type Client struct {
	baseURL string
	http    *http.Client
}

type Option func(*Client)

func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.http = hc
	}
}

func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http: &http.Client{
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
	}
	for _, opt := range opts {
		opt(c)
	}

	next := c.http.Transport
	if next == nil {
		next = http.DefaultTransport
	}
	hc := *c.http
	hc.Transport = &bearerTransport{next: next}
	c.http = &hc
	return c
}

func (c *Client) BaseURL() string {
	return c.baseURL
}

// API agrupa os recursos do backend para uma sessão. ts pode ser nil
// para chamadas anônimas (login).
type API struct {
	c  *Client
	ts TokenSource

	Clients        *ClientService
	Professionals  *ProfessionalService
	Appointments   *AppointmentService
	Finance        *FinanceService
	Payments       *PaymentService
	Users          *UserService
	Reconciliation *ReconciliationService
}

func (c *Client) For(ts TokenSource) *API {
	a := &API{c: c, ts: ts}
	a.Clients = &ClientService{api: a}
	a.Professionals = &ProfessionalService{api: a}
	a.Appointments = &AppointmentService{api: a}
	a.Finance = &FinanceService{api: a}
	a.Payments = &PaymentService{api: a}
	a.Users = &UserService{api: a}
	a.Reconciliation = &ReconciliationService{api: a}
	return a
}

func (a *API) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode %s %s: %w", method, path, err)
		}
		reader = bytes.NewReader(buf)
	}

	if a.ts != nil {
		ctx = context.WithValue(ctx, tokenKey{}, a.ts)
	}

	req, err := http.NewRequestWithContext(ctx, method, a.c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("build %s %s: %w", method, path, err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := a.c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return newError(method, path, resp)
	}

	if out == nil || resp.StatusCode == http.StatusNoContent {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read %s %s: %w", method, path, err)
	}
	if len(bytes.TrimSpace(raw)) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("decode %s %s: %w", method, path, err)
	}
	return nil
}

func resourcePath(base, id string) string {
	return base + "/" + url.PathEscape(id)
}
