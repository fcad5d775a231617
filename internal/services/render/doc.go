// Package render exposes the public icon-rendering entry point.
//
// It resolves the requested size against the injected size-token table (an
// explicit custom pixel size wins), memoizes composed images through the
// configured cache, and delegates the actual work to internal/icon.
package render
