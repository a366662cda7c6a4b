// Package nethttp provides the default transport engine, backed by the
// standard library HTTP client.
package nethttp
