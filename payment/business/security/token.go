package security

import (
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"
)

// IssueToken issues a token binding orderID and amountCents so internal
// calls cannot be tampered with. The payload embeds timestamp and nonce;
// verification needs no external state.
func (b *business) IssueToken(orderID string, amountCents int64) (string, error) {
	if orderID == "" || amountCents <= 0 {
		return "", fmt.Errorf("token requires an order id and a positive amount")
	}
	// The payload is colon-delimited; a colon in the order id would issue a
	// token that can never verify.
	if strings.Contains(orderID, ":") {
		return "", fmt.Errorf("order id must not contain ':'")
	}

	nonce := make([]byte, 16)
	if _, err := rand.Read(nonce); err != nil {
		return "", fmt.Errorf("generate token nonce: %w", err)
	}

	payload := fmt.Sprintf("%s:%d:%d:%s", orderID, amountCents, b.now().Unix(), hex.EncodeToString(nonce))
	mac := b.sign(payload)

	return base64.RawURLEncoding.EncodeToString([]byte(payload + ":" + mac)), nil
}

// VerifyToken recomputes the HMAC and checks the order/amount binding and
// the embedded timestamp's freshness. Any malformed token is a rejection.
func (b *business) VerifyToken(token, orderID string, amountCents int64) bool {
	decoded, err := base64.RawURLEncoding.DecodeString(token)
	if err != nil {
		return false
	}

	parts := strings.Split(string(decoded), ":")
	if len(parts) != 5 {
		return false
	}
	tokenOrderID, tokenAmount, tokenTS, nonce, mac := parts[0], parts[1], parts[2], parts[3], parts[4]

	if tokenOrderID != orderID {
		return false
	}
	amount, err := strconv.ParseInt(tokenAmount, 10, 64)
	if err != nil || amount != amountCents {
		return false
	}

	issued, err := strconv.ParseInt(tokenTS, 10, 64)
	if err != nil {
		return false
	}
	age := b.now().Unix() - issued
	if age < 0 || age > int64(TokenTTL.Seconds()) {
		return false
	}

	payload := fmt.Sprintf("%s:%s:%s:%s", tokenOrderID, tokenAmount, tokenTS, nonce)
	expected := b.sign(payload)
	return hmac.Equal([]byte(expected), []byte(mac))
}

func (b *business) sign(payload string) string {
	mac := hmac.New(sha256.New, b.tokenSecret)
	mac.Write([]byte(payload))
	return hex.EncodeToString(mac.Sum(nil))
}
