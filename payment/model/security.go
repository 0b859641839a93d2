package model

import "time"

// ProviderSecurityConfig holds per-provider credentials and security
// thresholds. The source of truth is an external config store; instances are
// cached in-process with a short TTL and must pass validation before use.
type ProviderSecurityConfig struct {
	Provider   string `json:"provider" validate:"required,alphanum"`
	AppID      string `json:"app_id" validate:"required,alphanum,min=8,max=32"`
	MerchantID string `json:"merchant_id" validate:"required,numeric,min=8,max=32"`

	// PublicKeyPEM is the platform public key used for RSA verification.
	// When empty, APISecret must be set and the legacy HMAC scheme is used.
	PublicKeyPEM string `json:"-"`
	APISecret    string `json:"-"`

	NotifyURL string `json:"notify_url" validate:"required,url"`
	SignType  string `json:"sign_type" validate:"omitempty,oneof=RSA RSA2 HMAC-SHA256"`
	Sandbox   bool   `json:"sandbox"`

	// MaxCallbackDelay bounds |now - callback timestamp| (replay window).
	MaxCallbackDelay time.Duration `json:"max_callback_delay" validate:"required,min=1s,max=1h"`

	// AmountThresholdCents triggers order-amount cross-checking for
	// callbacks at or above this amount. Zero disables the check.
	AmountThresholdCents int64 `json:"amount_threshold_cents" validate:"min=0"`

	IPAllowlist []string `json:"ip_allowlist" validate:"omitempty,dive,ip"`

	LoadedAt time.Time `json:"-"`
}

// SecurityTokenClaims is what a security token binds together. Tokens are
// ephemeral and never persisted; timestamp and nonce are embedded so
// verification needs no external state.
type SecurityTokenClaims struct {
	OrderID     string
	AmountCents int64
	IssuedAt    time.Time
	Nonce       string
}
