// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"
)

// --- Input DTOs ---

// RegisterInput defines the data a device submits on anonymous registration.
// LastIP is filled server-side from the connection, never from the body.
type RegisterInput struct {
	UUID         string `json:"uuid" validate:"required,max=64"`
	Manufacturer string `json:"manufacturer" validate:"max=100"`
	DeviceModel  string `json:"device_model" validate:"max=100"`
	OS           string `json:"os" validate:"max=50"`
	OSVersion    string `json:"os_version" validate:"max=50"`
	IsVirtual    bool   `json:"is_virtual"`
	AppVersion   string `json:"app_version" validate:"max=50"`
	PushToken    string `json:"fcm_token"`

	Email      *string `json:"email" validate:"omitempty,email"`
	Name       string  `json:"name" validate:"max=100"`
	SignUpType string  `json:"sign_up_type" validate:"max=50"`

	Lang           *string `json:"lang" validate:"omitempty,max=8"`
	Domain         *string `json:"domain" validate:"omitempty,len=4"`
	TopicSelection *bool   `json:"topic_selection"`

	LastIP string `json:"-"`
}

// RefreshInput defines the data required to rotate a session.
type RefreshInput struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
	UUID         string `json:"uuid" validate:"required,max=64"`

	LastIP string `json:"-"`
}

// --- Output DTOs ---

// RegisterOutput returns the fresh credential pair plus the effective
// preference values after defaults were applied.
type RegisterOutput struct {
	AccessToken    string `json:"access_token"`
	RefreshToken   string `json:"refresh_token"`
	Lang           string `json:"lang"`
	Domain         string `json:"domain"`
	TopicSelection bool   `json:"topic_selection"`
}

// RefreshOutput returns the rotated credential pair.
type RefreshOutput struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

// AuthUsecase defines the interface for device authentication operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type AuthUsecase interface {
	// Register performs first-contact or repeat anonymous registration for a
	// device UUID: the account is created or updated atomically with the
	// device row, and a fresh token pair is issued.
	Register(ctx context.Context, input *RegisterInput) (*RegisterOutput, error)

	// Refresh rotates the session identified by the presented refresh token
	// and device UUID. The presented token is single-use: it stops working
	// the moment the rotation commits.
	Refresh(ctx context.Context, input *RefreshInput) (*RefreshOutput, error)
}
