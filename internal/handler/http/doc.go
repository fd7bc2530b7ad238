// Package http implements the REST transport of the vote-monitor API.
//
// It wires the chi router, request handlers and middleware. Request tracing,
// access logging, metrics, panic recovery, CORS and bearer authentication are
// handled here before requests are delegated to the service layer.
package http
