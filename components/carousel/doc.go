// Package carousel exposes the carousel selector over HTTP: a small net/http
// handler returning the visible window of a named item list as JSON, for
// client-side enhancement of the server-rendered carousel.
//
// The handler responds to GET and HEAD requests on {RoutePath} with the query
// parameters start (current window start), action (next or prev) and size
// (window size).
package carousel
