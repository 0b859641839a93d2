package signature

import (
	"crypto"
	"crypto/subtle"
	"strings"

	_ "crypto/sha1" // RSA sign type
	_ "crypto/sha256"

	"encore.app/payment/model"
)

// ParamVerifier validates parameter-signed callbacks: the signature covers
// the sorted `key=value&...` canonical string of all signable params and is
// carried in the `sign` param, with the algorithm named by `sign_type`.
type ParamVerifier struct {
	cfg *model.ProviderSecurityConfig
}

// NewParamVerifier creates a verifier for one provider's configuration.
func NewParamVerifier(cfg *model.ProviderSecurityConfig) *ParamVerifier {
	return &ParamVerifier{cfg: cfg}
}

// Verify checks the `sign` param against the canonical string. The
// transmitted sign_type must match the configured one: a signature produced
// under one algorithm never verifies under another.
func (v *ParamVerifier) Verify(params map[string]string) bool {
	sig := params["sign"]
	if sig == "" {
		return false
	}
	signType := params["sign_type"]
	if signType == "" || signType != v.cfg.SignType {
		return false
	}

	canonical := BuildCanonical(params)

	switch signType {
	case "RSA":
		return verifyRSA(v.cfg.PublicKeyPEM, crypto.SHA1, []byte(canonical), sig)
	case "RSA2":
		return verifyRSA(v.cfg.PublicKeyPEM, crypto.SHA256, []byte(canonical), sig)
	case "HMAC-SHA256":
		if v.cfg.APISecret == "" {
			return false
		}
		expected := legacyHMAC(params, v.cfg.APISecret)
		return subtle.ConstantTimeCompare([]byte(expected), []byte(strings.ToUpper(sig))) == 1
	default:
		return false
	}
}
