package weather

import (
	"testing"
	"time"

	"github.com/nick-riduck/bike-course-simulator/internal/model"
)

func TestCacheKeyRoundsToTheHour(t *testing.T) {
	a := time.Date(2026, 7, 1, 14, 5, 0, 0, time.UTC)
	b := time.Date(2026, 7, 1, 14, 55, 0, 0, time.UTC)
	if CacheKey(37.5, -122.3, a) != CacheKey(37.5, -122.3, b) {
		t.Error("expected timestamps within the same hour to produce the same cache key")
	}
}

func TestCacheKeyDiffersByLocation(t *testing.T) {
	at := time.Now()
	k1 := CacheKey(37.5, -122.3, at)
	k2 := CacheKey(38.0, -122.3, at)
	if k1 == k2 {
		t.Error("expected different coordinates to produce different cache keys")
	}
}

func TestResponseCacheGetSetRoundTrip(t *testing.T) {
	c := &ResponseCache{store: make(map[string]cacheEntry), ttl: time.Hour}
	env := model.EnvironmentVector{WindSpeedMps: 4.2, WindDirDeg: 180}
	c.Set("k", env)

	got, ok := c.Get("k")
	if !ok {
		t.Fatal("expected cache hit after Set")
	}
	if got != env {
		t.Errorf("expected %v, got %v", env, got)
	}
}

func TestResponseCacheExpires(t *testing.T) {
	c := &ResponseCache{store: make(map[string]cacheEntry), ttl: -time.Second}
	c.Set("k", model.EnvironmentVector{WindSpeedMps: 1})
	if _, ok := c.Get("k"); ok {
		t.Error("expected cache entry to have already expired")
	}
}

func TestResponseCacheNilIsSafe(t *testing.T) {
	var c *ResponseCache
	c.Set("k", model.EnvironmentVector{WindSpeedMps: 1})
	if _, ok := c.Get("k"); ok {
		t.Error("expected a nil cache to always miss")
	}
}
