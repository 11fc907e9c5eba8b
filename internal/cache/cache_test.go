package cache

import (
	"testing"
	"time"
)

func TestCacheRoundTrip(t *testing.T) {
	c := New(true)
	c.Set("matches|all", []int{1, 2}, 1, time.Minute)

	v, seq, ok := c.Get("matches|all")
	if !ok {
		t.Fatal("expected hit")
	}
	if seq != 1 {
		t.Errorf("seq = %d, want 1", seq)
	}
	if got := v.([]int); len(got) != 2 {
		t.Errorf("value = %v", got)
	}
}

func TestCacheStaleWriteDiscarded(t *testing.T) {
	c := New(true)
	if !c.Set("k", "new", 5, time.Minute) {
		t.Fatal("first write should land")
	}
	// A slow response from an older fetch arrives after a newer one.
	if c.Set("k", "old", 3, time.Minute) {
		t.Error("older sequence must not overwrite newer snapshot")
	}
	v, _, _ := c.Get("k")
	if v != "new" {
		t.Errorf("value = %v, want new", v)
	}
}

func TestCacheExpiry(t *testing.T) {
	c := New(true)
	c.Set("k", "v", 1, -time.Second) // already expired
	if _, _, ok := c.Get("k"); ok {
		t.Error("expired entry must miss")
	}
}

func TestCacheDisabled(t *testing.T) {
	c := New(false)
	c.Set("k", "v", 1, time.Minute)
	if _, _, ok := c.Get("k"); ok {
		t.Error("disabled cache must always miss")
	}
}

func TestCacheDelete(t *testing.T) {
	c := New(true)
	c.Set("k", "v", 1, time.Minute)
	c.Delete("k")
	if _, _, ok := c.Get("k"); ok {
		t.Error("deleted entry must miss")
	}
}
