package storage

import (
	"bytes"
	"testing"
	"time"
)

func TestBoltCacheStoresAndExpiresSnapshots(t *testing.T) {
	dir := t.TempDir()
	opts := Options{
		SnapshotTTL:     1 * time.Second,
		CleanupInterval: 1 * time.Second,
	}

	cacheRaw, err := openBolt(dir+"/ddragon.db", opts)
	if err != nil {
		t.Fatalf("openBolt: %v", err)
	}
	cache := cacheRaw.(*boltCache)
	defer cache.Close()

	if _, ok, err := cache.Get("https://example.test/versions.json"); err != nil || ok {
		t.Fatalf("expected empty cache, ok=%v err=%v", ok, err)
	}

	payload := []byte(`["14.3.1"]`)
	if err := cache.Put("https://example.test/versions.json", payload); err != nil {
		t.Fatalf("Put: %v", err)
	}

	got, ok, err := cache.Get("https://example.test/versions.json")
	if err != nil || !ok {
		t.Fatalf("expected cache hit, ok=%v err=%v", ok, err)
	}
	if !bytes.Equal(got, payload) {
		t.Fatalf("payload mismatch: %q", got)
	}

	// Fast-forward cleanup cadence and trigger expiry.
	cache.lastCleanup.Store(time.Now().Add(-2 * time.Second).Unix())
	time.Sleep(1100 * time.Millisecond)

	if _, ok, err := cache.Get("https://example.test/versions.json"); err != nil {
		t.Fatalf("Get after expiry: %v", err)
	} else if ok {
		t.Fatalf("expected snapshot to expire and be removed")
	}
}

func TestNewCacheSupportsNoop(t *testing.T) {
	cache, err := NewCache("none", "", Options{})
	if err != nil {
		t.Fatalf("NewCache none: %v", err)
	}
	if err := cache.Put("k", []byte("v")); err != nil {
		t.Fatalf("noop cache Put: %v", err)
	}
	if _, ok, err := cache.Get("k"); err != nil || ok {
		t.Fatalf("noop cache must never hit, ok=%v err=%v", ok, err)
	}
}

func TestNewCacheRejectsUnknownType(t *testing.T) {
	if _, err := NewCache("redis", "", Options{}); err == nil {
		t.Fatalf("expected error for unsupported cache type")
	}
}
