// Package http implements the HTTP transport layer of the application.
//
// It exposes route wiring, request handlers, and middleware for the e-reader
// facing API. Devices authenticate with the token embedded in their API base
// URL. Cross-cutting concerns such as request tracing, access logging and
// response compression are handled in this package before requests are
// delegated to the service layer or relayed to the vendor store API.
package http
