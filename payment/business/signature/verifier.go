package signature

import (
	"crypto"
	"crypto/hmac"
	"crypto/rsa"
	"crypto/sha256"
	"crypto/subtle"
	"crypto/x509"
	"encoding/base64"
	"encoding/hex"
	"encoding/pem"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"encore.app/payment/model"
)

// Header names used by the header-signed provider's callbacks.
const (
	HeaderSignature = "Payment-Signature"
	HeaderTimestamp = "Payment-Timestamp"
	HeaderNonce     = "Payment-Nonce"
	HeaderSerial    = "Payment-Serial"
)

// DefaultReplayWindow bounds |now - callback timestamp| when the provider
// config does not set its own.
const DefaultReplayWindow = 300 * time.Second

// NotifyVerifier validates callbacks signed with the timestamp+nonce header
// scheme. Verification is pure: malformed input of any kind is a rejection,
// never an error.
type NotifyVerifier struct {
	cfg *model.ProviderSecurityConfig
	now func() time.Time
}

// NewNotifyVerifier creates a verifier for one provider's configuration.
func NewNotifyVerifier(cfg *model.ProviderSecurityConfig) *NotifyVerifier {
	return &NotifyVerifier{cfg: cfg, now: time.Now}
}

// Verify checks the callback signature over
// timestamp + "\n" + nonce + "\n" + body + "\n". It verifies RSA-SHA256
// against the platform public key, falling back to the legacy HMAC scheme
// over the form-decoded body when no public key is configured.
func (v *NotifyVerifier) Verify(headers http.Header, body []byte) bool {
	sig := headers.Get(HeaderSignature)
	timestamp := headers.Get(HeaderTimestamp)
	nonce := headers.Get(HeaderNonce)
	if sig == "" || timestamp == "" || nonce == "" {
		return false
	}

	ts, err := strconv.ParseInt(timestamp, 10, 64)
	if err != nil {
		return false
	}
	if !v.withinReplayWindow(time.Unix(ts, 0)) {
		return false
	}

	if v.cfg.PublicKeyPEM != "" {
		message := timestamp + "\n" + nonce + "\n" + string(body) + "\n"
		return verifyRSA(v.cfg.PublicKeyPEM, crypto.SHA256, []byte(message), sig)
	}
	return v.verifyLegacyBody(body, sig)
}

func (v *NotifyVerifier) withinReplayWindow(ts time.Time) bool {
	window := v.cfg.MaxCallbackDelay
	if window <= 0 {
		window = DefaultReplayWindow
	}
	drift := v.now().Sub(ts)
	if drift < 0 {
		drift = -drift
	}
	return drift <= window
}

// verifyLegacyBody recomputes the legacy HMAC over the form-decoded body and
// compares it to the transmitted signature.
func (v *NotifyVerifier) verifyLegacyBody(body []byte, sig string) bool {
	if v.cfg.APISecret == "" {
		return false
	}
	values, err := url.ParseQuery(string(body))
	if err != nil {
		return false
	}
	params := make(map[string]string, len(values))
	for k := range values {
		params[k] = values.Get(k)
	}
	expected := legacyHMAC(params, v.cfg.APISecret)
	return subtle.ConstantTimeCompare([]byte(expected), []byte(strings.ToUpper(sig))) == 1
}

// legacyHMAC computes the legacy signature: canonical key=value string with
// `&key=<secret>` appended, HMAC-SHA256 keyed by the shared secret,
// uppercase hex.
func legacyHMAC(params map[string]string, secret string) string {
	message := BuildCanonical(params) + "&key=" + secret
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(message))
	return strings.ToUpper(hex.EncodeToString(mac.Sum(nil)))
}

// verifyRSA verifies a base64 PKCS#1 v1.5 signature over message with the
// given digest algorithm.
func verifyRSA(publicKeyPEM string, hash crypto.Hash, message []byte, sig string) bool {
	pub := parsePublicKey(publicKeyPEM)
	if pub == nil {
		return false
	}
	raw, err := base64.StdEncoding.DecodeString(sig)
	if err != nil {
		return false
	}
	h := hash.New()
	h.Write(message)
	return rsa.VerifyPKCS1v15(pub, hash, h.Sum(nil), raw) == nil
}

func parsePublicKey(publicKeyPEM string) *rsa.PublicKey {
	block, _ := pem.Decode([]byte(publicKeyPEM))
	if block == nil {
		return nil
	}
	if key, err := x509.ParsePKIXPublicKey(block.Bytes); err == nil {
		if pub, ok := key.(*rsa.PublicKey); ok {
			return pub
		}
		return nil
	}
	if pub, err := x509.ParsePKCS1PublicKey(block.Bytes); err == nil {
		return pub
	}
	return nil
}
