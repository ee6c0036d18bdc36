package service

import "context"

// PushService defines the contract with the push-delivery gateway.
// The gateway accepts token-addressed batches and reports per-token outcome;
// pruning invalid tokens is the caller's responsibility.
type PushService interface {
	// SendBatch sends a push notification to up to 500 device tokens.
	// Returns success count, failure count and the tokens the gateway
	// flagged as invalid or unregistered.
	SendBatch(ctx context.Context, tokens []string, title, body string, data map[string]string) (successCount, failureCount int, invalidTokens []string, err error)

	// SendSingle sends a push notification to a single device token.
	SendSingle(ctx context.Context, token, title, body string, data map[string]string) error
}
