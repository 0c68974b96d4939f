package addresscodec

import lru "github.com/hashicorp/golang-lru/v2"

// Transaction sets with many Paths steps or SendMax/LimitAmount issuers
// tend to repeat the same handful of addresses; caching spares the
// base58/checksum work on every repeat.
const addressCacheSize = 4096

var (
	encodeCache = mustNewCache[string, string](addressCacheSize)
	decodeCache = mustNewCache[string, [20]byte](addressCacheSize)
)

func mustNewCache[K comparable, V any](size int) *lru.Cache[K, V] {
	c, err := lru.New[K, V](size)
	if err != nil {
		panic(err)
	}
	return c
}
