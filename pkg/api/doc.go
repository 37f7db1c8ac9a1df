// Package api exposes the axis pipeline over HTTP.
//
// Routes:
//
//	GET  /healthz              liveness probe with build version
//	POST /v1/layout            lay out an axis document, respond with layout JSON
//	POST /v1/render/{format}   lay out and render one artifact (svg, png, pdf, json)
//
// Request bodies are [pipeline.Options] encoded as JSON. Every response
// carries an X-Request-ID header, taken from the request when present.
// Errors are reported as {"code", "message", "request_id"} with the
// status derived from the error code.
//
// The render route accepts an optional filename query parameter. When set,
// it must be a relative path and the response is sent as an attachment
// named after its base name.
package api
