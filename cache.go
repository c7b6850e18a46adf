package sitechat

// CacheKey identifies a generated answer by the pair it was generated from.
// It is comparable, so two keys are equal exactly when both fields are.
type CacheKey struct {
	Context string
	Query   string
}

// NewCacheKey returns the key for a (website context, query) pair.
func NewCacheKey(websiteContext, query string) CacheKey {
	return CacheKey{Context: websiteContext, Query: query}
}

// ResponseCache stores generated answers for a limited time.
type ResponseCache interface {
	// Lookup returns the answer stored under key, if present and not expired.
	Lookup(key CacheKey) (string, bool)

	// Store saves answer under key and restarts the key's expiry countdown.
	Store(key CacheKey, answer string)
}
