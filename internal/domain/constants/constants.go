// Package constants holds domain-wide constant values.
package constants

// Pub/Sub provider names accepted in configuration.
const (
	// PubSubProviderLocal publishes over HTTP to a local endpoint for development.
	PubSubProviderLocal = "local"
	// PubSubProviderGoogle publishes to Google Cloud Pub/Sub.
	PubSubProviderGoogle = "google"
)
