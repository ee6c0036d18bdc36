// Package constants defines shared domain constants.
package constants

const (
	// EnvDevelop marks a local development deployment.
	EnvDevelop = "develop"
	// EnvProduction marks a production deployment.
	EnvProduction = "production"
)

// Pub/Sub provider selection for the notification fan-out pipeline.
const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)

// Defaults applied when a first-contact registration omits preference fields.
const (
	DefaultLanguage = "id"
	DefaultRegion   = "0000"
)
