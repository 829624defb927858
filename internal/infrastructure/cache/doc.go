// Package cache provides the Redis-backed implementations of the catalog
// cache, the cart session store and the rate limit counter. All of them share
// one Redis connection; the rest-api binary treats Redis as optional and
// degrades when it is absent.
package cache
