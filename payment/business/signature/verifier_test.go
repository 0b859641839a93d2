package signature

import (
	"crypto"
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/base64"
	"encoding/pem"
	"fmt"
	"net/http"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"encore.app/payment/model"
)

func generateKey(t *testing.T) (*rsa.PrivateKey, string) {
	t.Helper()
	key, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)

	der, err := x509.MarshalPKIXPublicKey(&key.PublicKey)
	require.NoError(t, err)
	pemBytes := pem.EncodeToMemory(&pem.Block{Type: "PUBLIC KEY", Bytes: der})
	return key, string(pemBytes)
}

func signMessage(t *testing.T, key *rsa.PrivateKey, hash crypto.Hash, message string) string {
	t.Helper()
	h := hash.New()
	h.Write([]byte(message))
	sig, err := rsa.SignPKCS1v15(rand.Reader, key, hash, h.Sum(nil))
	require.NoError(t, err)
	return base64.StdEncoding.EncodeToString(sig)
}

func notifyHeaders(sig, timestamp, nonce string) http.Header {
	h := http.Header{}
	if sig != "" {
		h.Set(HeaderSignature, sig)
	}
	if timestamp != "" {
		h.Set(HeaderTimestamp, timestamp)
	}
	if nonce != "" {
		h.Set(HeaderNonce, nonce)
	}
	h.Set(HeaderSerial, "CERT-SERIAL-001")
	return h
}

func TestNotifyVerifierRSA(t *testing.T) {
	key, pubPEM := generateKey(t)
	now := time.Now()

	body := []byte(`{"order_id":"O1","amount_cents":300,"trade_state":"SUCCESS"}`)
	timestamp := fmt.Sprint(now.Unix())
	nonce := "abc123nonce"
	message := timestamp + "\n" + nonce + "\n" + string(body) + "\n"
	validSig := signMessage(t, key, crypto.SHA256, message)

	staleTS := fmt.Sprint(now.Add(-400 * time.Second).Unix())
	staleMessage := staleTS + "\n" + nonce + "\n" + string(body) + "\n"
	staleSig := signMessage(t, key, crypto.SHA256, staleMessage)

	testCases := []struct {
		name     string
		headers  http.Header
		body     []byte
		expected bool
	}{
		{
			name:     "valid_signature",
			headers:  notifyHeaders(validSig, timestamp, nonce),
			body:     body,
			expected: true,
		},
		{
			name:     "mutated_body_byte",
			headers:  notifyHeaders(validSig, timestamp, nonce),
			body:     []byte(`{"order_id":"O2","amount_cents":300,"trade_state":"SUCCESS"}`),
			expected: false,
		},
		{
			name:     "missing_signature",
			headers:  notifyHeaders("", timestamp, nonce),
			body:     body,
			expected: false,
		},
		{
			name:     "missing_timestamp",
			headers:  notifyHeaders(validSig, "", nonce),
			body:     body,
			expected: false,
		},
		{
			name:     "missing_nonce",
			headers:  notifyHeaders(validSig, timestamp, ""),
			body:     body,
			expected: false,
		},
		{
			name:     "non_numeric_timestamp",
			headers:  notifyHeaders(validSig, "not-a-number", nonce),
			body:     body,
			expected: false,
		},
		{
			// The signature itself is valid, but the timestamp is outside
			// the replay window.
			name:     "stale_timestamp_valid_signature",
			headers:  notifyHeaders(staleSig, staleTS, nonce),
			body:     body,
			expected: false,
		},
		{
			name:     "garbage_base64_signature",
			headers:  notifyHeaders("%%%not-base64%%%", timestamp, nonce),
			body:     body,
			expected: false,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			verifier := NewNotifyVerifier(&model.ProviderSecurityConfig{
				Provider:         "wechat",
				PublicKeyPEM:     pubPEM,
				MaxCallbackDelay: 300 * time.Second,
			})
			verifier.now = func() time.Time { return now }

			assert.Equal(t, tc.expected, verifier.Verify(tc.headers, tc.body))
		})
	}
}

func TestNotifyVerifierLegacyHMAC(t *testing.T) {
	secret := "0123456789abcdef0123456789abcdef"
	now := time.Now()
	timestamp := fmt.Sprint(now.Unix())

	params := map[string]string{
		"out_trade_no": "T1",
		"total_fee":    "300",
		"result_code":  "SUCCESS",
	}
	body := url.Values{
		"out_trade_no": {"T1"},
		"total_fee":    {"300"},
		"result_code":  {"SUCCESS"},
	}.Encode()

	validSig := legacyHMAC(params, secret)

	cfg := &model.ProviderSecurityConfig{
		Provider:         "wechat",
		APISecret:        secret,
		MaxCallbackDelay: 300 * time.Second,
	}

	t.Run("valid_hmac", func(t *testing.T) {
		verifier := NewNotifyVerifier(cfg)
		verifier.now = func() time.Time { return now }
		assert.True(t, verifier.Verify(notifyHeaders(validSig, timestamp, "n1"), []byte(body)))
	})

	t.Run("wrong_secret", func(t *testing.T) {
		verifier := NewNotifyVerifier(&model.ProviderSecurityConfig{
			Provider:         "wechat",
			APISecret:        "ffffffffffffffffffffffffffffffff",
			MaxCallbackDelay: 300 * time.Second,
		})
		verifier.now = func() time.Time { return now }
		assert.False(t, verifier.Verify(notifyHeaders(validSig, timestamp, "n1"), []byte(body)))
	})

	t.Run("tampered_body", func(t *testing.T) {
		verifier := NewNotifyVerifier(cfg)
		verifier.now = func() time.Time { return now }
		tampered := url.Values{
			"out_trade_no": {"T1"},
			"total_fee":    {"999"},
			"result_code":  {"SUCCESS"},
		}.Encode()
		assert.False(t, verifier.Verify(notifyHeaders(validSig, timestamp, "n1"), []byte(tampered)))
	})

	t.Run("no_key_material_at_all", func(t *testing.T) {
		verifier := NewNotifyVerifier(&model.ProviderSecurityConfig{
			Provider:         "wechat",
			MaxCallbackDelay: 300 * time.Second,
		})
		verifier.now = func() time.Time { return now }
		assert.False(t, verifier.Verify(notifyHeaders(validSig, timestamp, "n1"), []byte(body)))
	})
}

func TestBuildCanonical(t *testing.T) {
	canonical := BuildCanonical(map[string]string{
		"b":         "2",
		"a":         "1",
		"sign":      "should-be-dropped",
		"sign_type": "RSA2",
		"empty":     "",
		"c":         "3",
	})
	assert.Equal(t, "a=1&b=2&c=3", canonical)
}
