// Package constants holds shared application-level constant values.
package constants

// Pub/Sub provider selection.
const (
	PubSubProviderGoogle = "google"
	PubSubProviderLocal  = "local"
	PubSubProviderNoop   = "noop"
)

// Deployment environments.
const (
	EnvDevelop    = "develop"
	EnvProduction = "production"
)

// Pub/Sub event types, carried in the event_type message attribute.
const (
	EventTypeMessage    = "message_sent"
	EventTypeModeration = "listing_moderated"
)
