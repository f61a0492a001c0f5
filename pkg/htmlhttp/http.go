package htmlhttp

import (
	"bytes"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/vango-dev/el/pkg/markup"
	"github.com/vango-dev/el/pkg/render"
)

// ContentType is the Content-Type of every successful response.
const ContentType = "text/html; charset=utf-8"

const defaultTracerName = "github.com/vango-dev/el/pkg/htmlhttp"

// Render kinds, used as metric label values and span attributes.
const (
	KindDocument = "document"
	KindFragment = "fragment"
)

// PageFunc produces the document for a request.
type PageFunc func(r *http.Request) (render.Document, error)

// FragmentFunc produces a fragment for a request.
type FragmentFunc func(r *http.Request) (markup.Content, error)

// Write renders doc and writes it as a 200 response. If rendering fails
// nothing of the document is sent: the response is a 500 carrying the
// error text and the error is returned. An error writing the body to the
// client is returned as well.
func Write(w http.ResponseWriter, doc render.Document) error {
	_, err := writeBuffered(w, doc.Render)
	return err
}

// WriteFragment is like Write for fragment content.
func WriteFragment(w http.ResponseWriter, n markup.Node) error {
	_, err := writeBuffered(w, func(out io.Writer) error {
		return render.Render(out, n)
	})
	return err
}

func writeBuffered(w http.ResponseWriter, fn func(io.Writer) error) (int64, error) {
	var buf bytes.Buffer
	if err := fn(&buf); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return 0, err
	}
	h := w.Header()
	h.Set("Content-Type", ContentType)
	h.Set("Content-Length", strconv.Itoa(buf.Len()))
	w.WriteHeader(http.StatusOK)
	return buf.WriteTo(w)
}

// Option configures a handler.
type Option func(*config)

type config struct {
	logger    *slog.Logger
	metrics   *Metrics
	tracer    trace.Tracer
	streaming bool
}

func newConfig(opts []Option) config {
	c := config{
		logger: slog.Default().With("component", "htmlhttp"),
		tracer: otel.Tracer(defaultTracerName),
	}
	for _, opt := range opts {
		opt(&c)
	}
	return c
}

// WithLogger sets the logger used for failures.
func WithLogger(logger *slog.Logger) Option {
	return func(c *config) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithMetrics records every render in m.
func WithMetrics(m *Metrics) Option {
	return func(c *config) {
		c.metrics = m
	}
}

// WithTracer sets the tracer. By default the global provider is used.
func WithTracer(tracer trace.Tracer) Option {
	return func(c *config) {
		if tracer != nil {
			c.tracer = tracer
		}
	}
}

// WithStreaming renders straight into the response instead of buffering.
// The 200 status is committed before rendering starts, so a render error
// leaves a truncated body; it is logged and recorded but cannot change the
// status.
func WithStreaming() Option {
	return func(c *config) {
		c.streaming = true
	}
}

// Handler serves the document produced by fn.
func Handler(fn PageFunc, opts ...Option) http.Handler {
	return &handler{
		cfg:  newConfig(opts),
		kind: KindDocument,
		build: func(r *http.Request) (func(io.Writer) error, error) {
			doc, err := fn(r)
			if err != nil {
				return nil, err
			}
			return doc.Render, nil
		},
	}
}

// FragmentHandler serves the fragment produced by fn.
func FragmentHandler(fn FragmentFunc, opts ...Option) http.Handler {
	return &handler{
		cfg:  newConfig(opts),
		kind: KindFragment,
		build: func(r *http.Request) (func(io.Writer) error, error) {
			c, err := fn(r)
			if err != nil {
				return nil, err
			}
			return func(w io.Writer) error { return render.Render(w, c) }, nil
		},
	}
}

// Mount registers a GET route serving the document produced by fn.
func Mount(r chi.Router, pattern string, fn PageFunc, opts ...Option) {
	r.Method(http.MethodGet, pattern, Handler(fn, opts...))
}

// MountFragment registers a GET route serving the fragment produced by fn.
func MountFragment(r chi.Router, pattern string, fn FragmentFunc, opts ...Option) {
	r.Method(http.MethodGet, pattern, FragmentHandler(fn, opts...))
}

type handler struct {
	cfg   config
	kind  string
	build func(*http.Request) (func(io.Writer) error, error)
}

func (h *handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	route := routePattern(r)
	ctx, span := h.cfg.tracer.Start(r.Context(), "render "+h.kind,
		trace.WithSpanKind(trace.SpanKindServer),
		trace.WithAttributes(
			attribute.String("http.route", route),
			attribute.String("render.kind", h.kind),
		),
	)
	defer span.End()

	start := time.Now()
	renderFn, err := h.build(r.WithContext(ctx))
	if err != nil {
		h.cfg.logger.Error("page function failed", "route", route, "error", err)
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		h.cfg.metrics.observe(h.kind, statusError, time.Since(start), 0)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	var n int64
	if h.cfg.streaming {
		n, err = writeStreaming(w, renderFn)
	} else {
		n, err = writeBuffered(w, renderFn)
	}
	if err != nil {
		if render.IsStructural(err) {
			h.cfg.logger.Error("render failed", "route", route, "kind", h.kind, "error", err)
		} else {
			h.cfg.logger.Warn("writing response failed", "route", route, "kind", h.kind, "bytes", n, "error", err)
		}
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		h.cfg.metrics.observe(h.kind, statusError, time.Since(start), n)
		return
	}

	span.SetAttributes(attribute.Int64("render.bytes", n))
	span.SetStatus(codes.Ok, "")
	h.cfg.metrics.observe(h.kind, statusSuccess, time.Since(start), n)
}

func writeStreaming(w http.ResponseWriter, fn func(io.Writer) error) (int64, error) {
	w.Header().Set("Content-Type", ContentType)
	w.WriteHeader(http.StatusOK)
	cw := &countingWriter{w: w}
	err := fn(cw)
	if f, ok := w.(http.Flusher); ok {
		f.Flush()
	}
	return cw.n, err
}

type countingWriter struct {
	w io.Writer
	n int64
}

func (c *countingWriter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	c.n += int64(n)
	return n, err
}

// routePattern returns the chi route pattern when the request was routed by
// chi, the URL path otherwise.
func routePattern(r *http.Request) string {
	if rctx := chi.RouteContext(r.Context()); rctx != nil {
		if p := rctx.RoutePattern(); p != "" {
			return p
		}
	}
	if r.URL.Path == "" {
		return "/"
	}
	return r.URL.Path
}
