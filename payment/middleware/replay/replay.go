package replay

import (
	"context"

	"encore.dev/rlog"
)

// ClaimNonce reports whether this is the first sighting of the nonce within
// the window. Cache errors do not reject the callback; the signature check
// still stands on its own.
func ClaimNonce(ctx context.Context, provider, nonce string) bool {
	count, err := seenNonces.Increment(ctx, NonceKey{Provider: provider, Nonce: nonce}, 1)
	if err != nil {
		rlog.Warn("nonce replay check unavailable", "provider", provider, "error", err)
		return true
	}
	if count > 1 {
		rlog.Warn("replayed notify nonce rejected", "provider", provider)
		return false
	}
	return true
}
