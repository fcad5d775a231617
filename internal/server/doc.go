// Package server exposes icon rendering over HTTP.
//
// Routes
//
//   - GET /healthz         liveness probe
//   - GET /sizes           the size-category table
//   - GET /icon/:seed      composed image JSON for the seed
//
// Icon responses carry a strong ETag derived from the body, so repeat
// clients can revalidate with If-None-Match and get 304s. Invalid query
// parameters and unresolvable sizes answer 400; everything else that fails
// answers 500.
package server
