// Package authority implements the Content Authority HTTP API, the canonical
// source of truth for all Kambel content. Singleton configuration endpoints
// substitute the shared fallback defaults when no row exists, so consumers
// always receive a complete payload.
package authority
