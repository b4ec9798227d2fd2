// Package http implements the browser-facing transport of the diary.
//
// It serves server-rendered HTML pages for the feed, the per-category
// history and the login/signup forms, a small JSON endpoint for record
// details, and the uploaded images. Cookie sessions, request tracing,
// access logging and response compression are handled by middleware before
// requests are delegated to the service layer.
package http
