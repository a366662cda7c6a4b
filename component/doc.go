// Package component defines the lifecycle interface implemented by
// managed pieces of infrastructure, such as the HTTP client component.
// Hosts start and stop components and poll their health.
package component
