package security

import (
	"testing"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"encore.app/payment/model"
)

func newTokenBusiness(secret string, now time.Time) (*business, *time.Time) {
	clock := now
	return &business{
		validate:    validator.New(),
		tokenSecret: []byte(secret),
		cache:       make(map[string]*model.ProviderSecurityConfig),
		now:         func() time.Time { return clock },
	}, &clock
}

func TestIssueAndVerifyToken(t *testing.T) {
	b, _ := newTokenBusiness("0123456789abcdef0123456789abcdef", time.Now())

	token, err := b.IssueToken("O-1001", 2500)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	assert.True(t, b.VerifyToken(token, "O-1001", 2500))
	assert.False(t, b.VerifyToken(token, "O-1001", 2501), "amount binding")
	assert.False(t, b.VerifyToken(token, "O-1002", 2500), "order binding")
}

func TestVerifyTokenFreshness(t *testing.T) {
	b, clock := newTokenBusiness("0123456789abcdef0123456789abcdef", time.Now())

	token, err := b.IssueToken("O-1001", 2500)
	require.NoError(t, err)

	*clock = clock.Add(TokenTTL)
	assert.True(t, b.VerifyToken(token, "O-1001", 2500), "token at exactly the TTL boundary is still fresh")

	*clock = clock.Add(time.Second)
	assert.False(t, b.VerifyToken(token, "O-1001", 2500), "expired token")

	*clock = clock.Add(-TokenTTL - 10*time.Second)
	assert.False(t, b.VerifyToken(token, "O-1001", 2500), "token issued in the future")
}

func TestVerifyTokenRejectsForgeries(t *testing.T) {
	b, _ := newTokenBusiness("0123456789abcdef0123456789abcdef", time.Now())
	other, _ := newTokenBusiness("ffffffffffffffffffffffffffffffff", time.Now())

	forged, err := other.IssueToken("O-1001", 2500)
	require.NoError(t, err)

	testCases := []struct {
		name  string
		token string
	}{
		{name: "empty", token: ""},
		{name: "not_base64url", token: "!!!!"},
		{name: "wrong_shape", token: "b3JkZXI6MTAw"},
		{name: "signed_with_other_secret", token: forged},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.False(t, b.VerifyToken(tc.token, "O-1001", 2500))
		})
	}
}

func TestIssueTokenRejectsBadInput(t *testing.T) {
	b, _ := newTokenBusiness("0123456789abcdef0123456789abcdef", time.Now())

	_, err := b.IssueToken("", 2500)
	assert.Error(t, err)

	_, err = b.IssueToken("O-1001", 0)
	assert.Error(t, err)

	_, err = b.IssueToken("O:1001", 2500)
	assert.Error(t, err, "a colon would corrupt the token payload delimiting")
}
