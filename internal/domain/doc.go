// Package domain defines core data models and interfaces shared across the app.
// It contains plain value types (image/geometry/config) and contracts
// (interfaces) only.
package domain
