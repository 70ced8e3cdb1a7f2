// Package proxy implements the Presentation Proxy: the browser-facing
// HTTP layer that fetches canonical content from the authority, reshapes
// it for the front-end, and fails open to registered defaults when the
// authority is unreachable. Form submissions are validated locally,
// forwarded upstream, and appended to a JSONL fallback log during
// outages so nothing a visitor sent is lost.
package proxy
