package security

import (
	"context"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"

	"encore.app/payment/model"
)

// ConfigTTL is how long a validated provider config is served from cache
// before being reloaded.
const ConfigTTL = 5 * time.Minute

// TokenTTL bounds how old an accepted security token may be.
const TokenTTL = 300 * time.Second

type Business interface {
	// GetConfig returns the provider's validated security config, from
	// cache when fresh, reloading and re-validating otherwise.
	GetConfig(ctx context.Context, provider string) (*model.ProviderSecurityConfig, error)

	// Refresh forces a reload of every known provider config. Safe to race
	// with lazy reloads: every reload independently re-validates before
	// publishing, last write wins.
	Refresh(ctx context.Context) error

	// AutoRefresh reloads all configs on the given interval until ctx is
	// cancelled.
	AutoRefresh(ctx context.Context, interval time.Duration)

	// IssueToken issues a short-lived token binding an order and amount.
	IssueToken(orderID string, amountCents int64) (string, error)

	// VerifyToken reports whether token is an authentic, fresh binding of
	// orderID and amountCents. Malformed input is a rejection, never an
	// error.
	VerifyToken(token, orderID string, amountCents int64) bool
}

type business struct {
	source      Source
	validate    *validator.Validate
	tokenSecret []byte

	mu    sync.RWMutex
	cache map[string]*model.ProviderSecurityConfig

	now func() time.Time
}

// NewSecurityBusiness creates the config manager and token issuer.
func NewSecurityBusiness(source Source, validate *validator.Validate, tokenSecret []byte) Business {
	return &business{
		source:      source,
		validate:    validate,
		tokenSecret: tokenSecret,
		cache:       make(map[string]*model.ProviderSecurityConfig),
		now:         time.Now,
	}
}
