package security

import (
	"context"
	"os"
	"strings"
)

// Source loads raw per-provider config key/value maps from the external
// config store.
type Source interface {
	Load(ctx context.Context, provider string) (map[string]string, error)
	Providers() []string
}

// Raw config map keys.
const (
	KeyAppID           = "app_id"
	KeyMerchantID      = "merchant_id"
	KeyPublicKey       = "public_key"
	KeyAPISecret       = "api_secret"
	KeyNotifyURL       = "notify_url"
	KeySignType        = "sign_type"
	KeySandbox         = "sandbox"
	KeyCallbackDelay   = "max_callback_delay"
	KeyAmountThreshold = "amount_threshold_cents"
	KeyIPAllowlist     = "ip_allowlist"
)

// EnvSource reads provider config from environment variables named
// <prefix>_<PROVIDER>_<KEY>, e.g. PAYMENT_ALIPAY_APP_ID.
type EnvSource struct {
	Prefix string
	Names  []string
}

// NewEnvSource creates an environment-backed config source for the given
// providers.
func NewEnvSource(prefix string, providers []string) *EnvSource {
	return &EnvSource{Prefix: prefix, Names: providers}
}

func (s *EnvSource) Load(_ context.Context, provider string) (map[string]string, error) {
	keys := []string{
		KeyAppID, KeyMerchantID, KeyPublicKey, KeyAPISecret, KeyNotifyURL,
		KeySignType, KeySandbox, KeyCallbackDelay, KeyAmountThreshold, KeyIPAllowlist,
	}
	values := make(map[string]string, len(keys))
	for _, key := range keys {
		envName := strings.ToUpper(s.Prefix + "_" + provider + "_" + key)
		if v, ok := os.LookupEnv(envName); ok {
			values[key] = v
		}
	}
	return values, nil
}

func (s *EnvSource) Providers() []string {
	return s.Names
}
