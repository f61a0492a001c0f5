// Package htmlhttp serves rendered markup over net/http.
//
// Write and WriteFragment render into a buffer before touching the
// response, so a render failure turns into a 500 instead of a truncated
// page. Handler and FragmentHandler wrap a page function into an
// http.Handler with optional logging, Prometheus metrics and
// OpenTelemetry tracing; Mount registers them on a chi router.
//
//	r := chi.NewRouter()
//	m := htmlhttp.NewMetrics(htmlhttp.WithNamespace("site"))
//	htmlhttp.Mount(r, "/", func(*http.Request) (render.Document, error) {
//	    return render.IntoDocument(el.Html(el.Body(el.H1(el.Text("Hello"))))), nil
//	}, htmlhttp.WithMetrics(m))
package htmlhttp
