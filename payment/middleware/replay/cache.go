package replay

import (
	"time"

	"encore.dev/storage/cache"
)

// ReplayCluster is the cache cluster for webhook nonce tracking
var ReplayCluster = cache.NewCluster("notify-replay-cluster", cache.ClusterConfig{
	EvictionPolicy: cache.AllKeysLRU,
})

// NonceKey identifies one provider nonce
type NonceKey struct {
	Provider string
	Nonce    string
}

// seenNonces counts sightings of each nonce; entries expire with the replay
// window so storage stays bounded.
var seenNonces = cache.NewIntKeyspace[NonceKey](ReplayCluster, cache.KeyspaceConfig{
	KeyPattern:    "notify-nonce/:Provider/:Nonce",
	DefaultExpiry: cache.ExpireIn(10 * time.Minute),
})
