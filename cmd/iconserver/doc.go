// Package main runs the HTTP icon service.
//
// HTTP API
//
//	GET /healthz
//	    Liveness probe; answers {"status":"ok"}.
//
//	GET /sizes
//	    Return the size-category table as JSON.
//
//	GET /icon/{seed}?size=small&px=64&circular=true
//	    Compose and return the image description for {seed}. px overrides
//	    size when present; circular adds the clip circle and border ring.
//
// Behaviour
//
//   - Rendering is pure and memoized in a bounded in-memory cache; all
//     state is lost on process exit.
//   - Responses are JSON. Icon responses carry a strong ETag; clients can
//     revalidate with If-None-Match and receive 304.
//   - A structured access log records request id, method, path, status,
//     bytes and duration for each request.
//   - Configuration comes from HASHICON_ADDR, HASHICON_LOG_LEVEL,
//     HASHICON_LOG_DEV and HASHICON_CACHE_CAPACITY. The default listen
//     address is :8080.
package main
