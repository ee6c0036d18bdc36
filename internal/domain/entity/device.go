// Package entity contains the core business objects of the project.
package entity

import "time"

// Device represents one physical or virtual installation of the mobile app.
// The pair (AccountID, UUID) is unique: one row per device per account. The
// row also owns the current token-rotation state for that device's session.
type Device struct {
	ID        int64  // Numeric identifier generated by the store.
	AccountID *int64 // Owning account; nil until the device is claimed.
	UUID      string // Stable client-generated device identifier.

	Manufacturer string // Hardware vendor reported by the client.
	Model        string // Device model reported by the client.
	OS           string // Operating system name.
	OSVersion    string // Operating system version.
	IsVirtual    bool   // True for emulators/simulators.
	AppVersion   string // Installed application version.
	LastIP       string // Last IP observed server-side, never client-supplied.
	PushToken    string // FCM registration token, empty when push is unavailable.

	AccessToken           string     // Most recently issued signed access token.
	RefreshToken          string     // Current opaque refresh token; overwritten on every rotation.
	RefreshTokenExpiresAt *time.Time // Server-side expiry of the refresh token.

	FirstSeenAt time.Time // When the UUID was first registered.
	LastSeenAt  time.Time // Updated on every re-authentication or profile sync.
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TokenPair is the credential set returned by every successful
// registration or refresh: a short-lived signed access token and a
// long-lived single-use refresh token.
type TokenPair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}
