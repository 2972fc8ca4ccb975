// Package retailcrm implementa ports.CRMClient sobre la API HTTP de RetailCRM.
package retailcrm

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

	"github.com/jhoicas/crm-gateway/internal/application/ports"
	"github.com/jhoicas/crm-gateway/internal/domain"
	"github.com/jhoicas/crm-gateway/internal/infrastructure/metrics"
	"github.com/jhoicas/crm-gateway/pkg/logger"
)

// Verificar en tiempo de compilación que Client implementa CRMClient.
var _ ports.CRMClient = (*Client)(nil)

// maxResponseSize tamaño máximo de respuesta leído del CRM (10 MiB).
const maxResponseSize = 10 * 1024 * 1024

// apiKeyParam nombre del parámetro de query con el que el CRM autentica cada llamada.
const apiKeyParam = "apiKey"

// Client cliente HTTP del CRM. No guarda estado por petición: una instancia se comparte
// entre todas las peticiones concurrentes del gateway.
// Sin reintentos ni timeout propio; la cancelación llega por el contexto.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	log        *logger.Logger
	metrics    *metrics.CRMMetrics
}

// Option configura el Client.
type Option func(*Client)

// WithHTTPClient reemplaza el *http.Client (por defecto uno sin timeout).
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// WithMetrics activa las métricas Prometheus de las llamadas.
func WithMetrics(m *metrics.CRMMetrics) Option {
	return func(c *Client) { c.metrics = m }
}

// NewClient construye el cliente. baseURL incluye la versión de la API (ej. https://x.retailcrm.ru/api/v5).
func NewClient(baseURL, apiKey string, log *logger.Logger, opts ...Option) (*Client, error) {
	if baseURL == "" || apiKey == "" {
		return nil, domain.ErrCRMNotConfigured
	}
	if log == nil {
		log = logger.Nop()
	}
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		apiKey:     apiKey,
		httpClient: &http.Client{},
		log:        log.With("retailcrm"),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// Get hace GET a path añadiendo apiKey a los parámetros. params no se modifica.
func (c *Client) Get(ctx context.Context, path string, params url.Values) (any, error) {
	query := cloneValues(params)
	query.Set(apiKeyParam, c.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint(path, query), nil)
	if err != nil {
		return nil, fmt.Errorf("retailcrm: crear request GET %s: %w", path, err)
	}
	return c.do(req, path)
}

// PostForm hace POST a path con form codificado como x-www-form-urlencoded.
// apiKey va en la query, nunca en el cuerpo.
func (c *Client) PostForm(ctx context.Context, path string, form url.Values) (any, error) {
	query := url.Values{}
	query.Set(apiKeyParam, c.apiKey)

	body := strings.NewReader(form.Encode())
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint(path, query), body)
	if err != nil {
		return nil, fmt.Errorf("retailcrm: crear request POST %s: %w", path, err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return c.do(req, path)
}

func (c *Client) endpoint(path string, query url.Values) string {
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	return c.baseURL + path + "?" + query.Encode()
}

// do ejecuta la petición y decodifica el cuerpo JSON tal cual, sin mirar el status.
func (c *Client) do(req *http.Request, path string) (any, error) {
	method := req.Method
	start := time.Now()

	resp, err := c.httpClient.Do(req)
	if err != nil {
		err = c.redact(err, path)
		c.metrics.ObserveTransportError(method, path)
		c.log.Error().Err(err).Str("method", method).Str("path", path).Msg("llamada al CRM fallida")
		return nil, fmt.Errorf("%w: %s %s: %w", domain.ErrTransport, method, path, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	elapsed := time.Since(start)
	if err != nil {
		c.metrics.ObserveTransportError(method, path)
		return nil, fmt.Errorf("%w: leer respuesta %s %s: %w", domain.ErrTransport, method, path, err)
	}

	c.metrics.ObserveRequest(method, path, resp.StatusCode, elapsed)
	c.log.Info().
		Str("method", method).
		Str("path", path).
		Int("status", resp.StatusCode).
		Dur("elapsed", elapsed).
		Bytes("body", raw).
		Msg("CRM")

	out, err := decode(raw)
	if err != nil {
		c.metrics.ObserveTransportError(method, path)
		return nil, fmt.Errorf("%w: respuesta no JSON de %s %s (HTTP %d): %w", domain.ErrTransport, method, path, resp.StatusCode, err)
	}
	return out, nil
}

// redact quita la query (con apiKey) de la URL que net/http incluye en sus errores.
func (c *Client) redact(err error, path string) error {
	var uerr *url.Error
	if errors.As(err, &uerr) {
		uerr.URL = c.baseURL + path
	}
	return err
}

// decode decodifica un único valor JSON conservando los números como json.Number.
func decode(raw []byte) (any, error) {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	var out any
	if err := dec.Decode(&out); err != nil {
		return nil, err
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, errors.New("datos extra después del JSON")
	}
	return out, nil
}

func cloneValues(v url.Values) url.Values {
	out := make(url.Values, len(v)+1)
	for k, vals := range v {
		out[k] = append([]string(nil), vals...)
	}
	return out
}
