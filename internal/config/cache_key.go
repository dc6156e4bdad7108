package config

import "fmt"

type CacheKeyStruct struct{}

func NewCacheKeyStruct() *CacheKeyStruct {
	return &CacheKeyStruct{}
}

// TopCGPAKey returns the cache key for the global top-N CGPA board.
func (r *CacheKeyStruct) TopCGPAKey(limit int) string {
	return fmt.Sprintf("leaderboard:cgpa:top:%d", limit)
}

// TopSGPAKey returns the cache key for the global top-N SGPA board.
func (r *CacheKeyStruct) TopSGPAKey(limit int) string {
	return fmt.Sprintf("leaderboard:sgpa:top:%d", limit)
}

var CacheKey = NewCacheKeyStruct()
