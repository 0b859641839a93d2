package security

import (
	"context"
	"encoding/pem"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"encore.dev/rlog"

	"encore.app/payment/model"
)

// GetConfig returns the cached config when younger than ConfigTTL, else
// reloads and re-validates before publishing it.
func (b *business) GetConfig(ctx context.Context, provider string) (*model.ProviderSecurityConfig, error) {
	b.mu.RLock()
	cached, ok := b.cache[provider]
	b.mu.RUnlock()
	if ok && b.now().Sub(cached.LoadedAt) < ConfigTTL {
		return cached, nil
	}
	return b.reload(ctx, provider)
}

// Refresh forces a reload of all provider configs. A provider failing
// validation stays blocked but does not prevent the others from refreshing.
func (b *business) Refresh(ctx context.Context) error {
	var failed []string
	for _, provider := range b.source.Providers() {
		if _, err := b.reload(ctx, provider); err != nil {
			rlog.Error("provider config refresh failed", "provider", provider, "error", err)
			failed = append(failed, provider)
		}
	}
	if len(failed) > 0 {
		return fmt.Errorf("config refresh failed for providers: %s", strings.Join(failed, ", "))
	}
	return nil
}

// AutoRefresh periodically refreshes all configs until ctx is cancelled.
// Concurrent lazy reloads are safe: each reload validates before publishing.
func (b *business) AutoRefresh(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := b.Refresh(ctx); err != nil {
				rlog.Warn("periodic config refresh incomplete", "error", err)
			}
		}
	}
}

func (b *business) reload(ctx context.Context, provider string) (*model.ProviderSecurityConfig, error) {
	raw, err := b.source.Load(ctx, provider)
	if err != nil {
		return nil, fmt.Errorf("load config for provider %s: %w", provider, err)
	}

	cfg, err := b.buildAndValidate(provider, raw)
	if err != nil {
		return nil, err
	}

	b.mu.Lock()
	b.cache[provider] = cfg
	b.mu.Unlock()

	rlog.Info("provider security config loaded", "provider", provider, "sign_type", cfg.SignType, "sandbox", cfg.Sandbox)
	return cfg, nil
}

// buildAndValidate converts a raw key/value map into a validated config.
// Every missing or malformed field is reported; security-critical fields
// never fall back to silent defaults.
func (b *business) buildAndValidate(provider string, raw map[string]string) (*model.ProviderSecurityConfig, error) {
	var fields []string

	cfg := &model.ProviderSecurityConfig{
		Provider:     provider,
		AppID:        raw[KeyAppID],
		MerchantID:   raw[KeyMerchantID],
		PublicKeyPEM: raw[KeyPublicKey],
		APISecret:    raw[KeyAPISecret],
		NotifyURL:    raw[KeyNotifyURL],
		SignType:     raw[KeySignType],
		Sandbox:      raw[KeySandbox] == "true",
		LoadedAt:     b.now(),
	}

	cfg.MaxCallbackDelay = 300 * time.Second
	if v := raw[KeyCallbackDelay]; v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			fields = append(fields, KeyCallbackDelay+": not a duration")
		} else {
			cfg.MaxCallbackDelay = d
		}
	}

	if v := raw[KeyAmountThreshold]; v != "" {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			fields = append(fields, KeyAmountThreshold+": not an integer")
		} else {
			cfg.AmountThresholdCents = n
		}
	}

	if v := raw[KeyIPAllowlist]; v != "" {
		for _, ip := range strings.Split(v, ",") {
			cfg.IPAllowlist = append(cfg.IPAllowlist, strings.TrimSpace(ip))
		}
	}

	if err := b.validate.Struct(cfg); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			for _, fe := range verrs {
				fields = append(fields, fmt.Sprintf("%s: failed %s", fe.Field(), fe.Tag()))
			}
		} else {
			fields = append(fields, err.Error())
		}
	}

	fields = append(fields, validateKeyMaterial(cfg)...)

	if len(fields) > 0 {
		return nil, &ConfigurationError{Provider: provider, Fields: fields}
	}
	return cfg, nil
}

// validateKeyMaterial checks key markers and exact secret length. These are
// beyond what struct tags express.
func validateKeyMaterial(cfg *model.ProviderSecurityConfig) []string {
	var fields []string

	if cfg.PublicKeyPEM == "" && cfg.APISecret == "" {
		fields = append(fields, "public_key/api_secret: at least one must be set")
	}

	if cfg.PublicKeyPEM != "" {
		block, _ := pem.Decode([]byte(cfg.PublicKeyPEM))
		if block == nil || !strings.Contains(cfg.PublicKeyPEM, "BEGIN") {
			fields = append(fields, "public_key: not PEM-encoded key material")
		}
	}

	// HMAC shared secrets are exactly 32 bytes.
	if cfg.APISecret != "" && len(cfg.APISecret) != 32 {
		fields = append(fields, "api_secret: must be exactly 32 bytes")
	}

	switch cfg.SignType {
	case "RSA", "RSA2":
		if cfg.PublicKeyPEM == "" {
			fields = append(fields, "public_key: required for sign_type "+cfg.SignType)
		}
	case "HMAC-SHA256":
		if cfg.APISecret == "" {
			fields = append(fields, "api_secret: required for sign_type HMAC-SHA256")
		}
	}

	return fields
}
