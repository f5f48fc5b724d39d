// Package middleware groups the Fiber middleware shared by every route.
//
// # Components
//
//   - cors: writes the fixed Access-Control-Allow-* headers on every response,
//     whether or not the request carried an Origin header.
//   - rayid: tags each request with an X-Ray-ID (generated with uuid when the
//     client did not send one) and keeps it in the context locals for logging.
//
// rayid is installed on the app in cmd/start.go; cors is installed by the
// registry feature so it only wraps registry responses.
package middleware
