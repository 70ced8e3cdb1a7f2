// Package content defines the wire types shared by the Content Authority and
// the Presentation Proxy, together with the fallback-defaults registry that
// both consult: the authority when a singleton row is absent, the proxy when
// the authority is unreachable. Keeping defaults in one registry guarantees
// every read surface substitutes the same payloads.
package content
