// Package constants holds shared domain-level constant values.
package constants

const (
	// PubSubProviderLocal selects the in-process change broker only.
	PubSubProviderLocal = "local"
	// PubSubProviderGoogle selects Google Cloud Pub/Sub for cross-instance fan-out.
	PubSubProviderGoogle = "google"

	// EnvDevelop is the development environment name.
	EnvDevelop = "develop"
)
