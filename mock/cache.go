package mock

import "github.com/fwojciec/sitechat"

var _ sitechat.ResponseCache = (*ResponseCache)(nil)

// ResponseCache is a mock implementation of sitechat.ResponseCache.
type ResponseCache struct {
	LookupFn func(key sitechat.CacheKey) (string, bool)
	StoreFn  func(key sitechat.CacheKey, answer string)
}

func (c *ResponseCache) Lookup(key sitechat.CacheKey) (string, bool) {
	return c.LookupFn(key)
}

func (c *ResponseCache) Store(key sitechat.CacheKey, answer string) {
	c.StoreFn(key, answer)
}
