// Package ratelimiter throttles requests with a token bucket.
//
// A Bucket holds Capacity tokens and regains RefillRate tokens every
// RefillInterval. Each request takes one token; a request that finds too few
// tokens is denied without consuming anything. State lives in a Store:
// MemoryStore for a single process, RedisStore when several daemons share
// one Redis.
//
//	store := ratelimiter.NewMemoryStore()
//	defer store.Close()
//	bucket, err := ratelimiter.NewBucket(store, ratelimiter.Config{
//	    Capacity:       20,
//	    RefillRate:     10,
//	    RefillInterval: time.Second,
//	})
//	r.Use(ratelimiter.Middleware(bucket, clientip.GetIP))
package ratelimiter
