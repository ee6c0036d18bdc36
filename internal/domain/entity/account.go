// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import "time"

// Account is the core identity record. One account can own many devices;
// guest accounts are created implicitly on first device contact and may
// later be claimed with an email sign-up.
type Account struct {
	ID         int64     // Numeric identifier generated by the store.
	Email      *string   // Optional contact email; unique when present.
	Name       string    // Display name supplied by the client, may be empty for guests.
	SignUpType string    // How the account was established, e.g. "anonymous", "google".
	CreatedAt  time.Time // Timestamp of when this account was created.
	UpdatedAt  time.Time // Timestamp of the last modification.
}

// Preference holds the per-account settings row, one-to-one with Account.
// Created with defaults alongside the account and patched on demand.
type Preference struct {
	AccountID      int64     // Owning account.
	Lang           string    // UI language code, defaults to "id".
	Domain         string    // Fixed-width region code, defaults to "0000".
	TopicSelection bool      // Whether the user completed the topic picker.
	UpdatedAt      time.Time // Timestamp of the last modification.
}

// PreferencePatch carries an explicit partial update. Nil fields are left
// untouched so an absent value in the request never overwrites stored state.
type PreferencePatch struct {
	Lang           *string
	Domain         *string
	TopicSelection *bool
}

// IsEmpty reports whether the patch would change nothing.
func (p *PreferencePatch) IsEmpty() bool {
	return p == nil || (p.Lang == nil && p.Domain == nil && p.TopicSelection == nil)
}
