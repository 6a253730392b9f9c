// Package auth implements API-key authentication for the fraudwatch HTTP API.
//
// Middleware(mode, header, key, next) wraps a handler:
//   - mode != "apikey" or an empty key → all requests pass through,
//   - otherwise the request header must carry exactly the configured key;
//     a missing or wrong key yields 401 with a JSON error body.
package auth
