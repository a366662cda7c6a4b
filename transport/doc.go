// Package transport defines the seam between the canonical client and a
// pluggable asynchronous transport engine, plus the engine-native
// request/response representations exchanged across it.
//
// Engines perform the actual network I/O. The rest of the system treats
// the native types as opaque except at the two translators in package
// translate. Subpackages provide engines backed by net/http and resty,
// and a scripted engine for tests.
package transport
