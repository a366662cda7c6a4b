// Package restyhttp provides a transport engine backed by
// github.com/go-resty/resty/v2, as an alternative to the default
// net/http engine.
package restyhttp
