// Package http implements the public portfolio site.
//
// It renders the landing page from embedded templates, serves the
// testimonial partial polled by the page, runs the two-step contact flow and
// exposes the aggregated landing data as JSON. Request tracing, access
// logging and response compression are handled by middlewares before
// requests reach the handlers.
package http
