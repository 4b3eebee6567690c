package nonce

import (
	"strconv"
	"sync"
	"testing"
	"time"
)

func TestNonce_GetString(t *testing.T) {
	ng := NewMillisecondNonce(time.Now())

	nonceStr := ng.GetString()
	if len(nonceStr) == 0 {
		t.Errorf("expected non-empty nonce string, got empty string")
	}

	_, err := strconv.ParseInt(nonceStr, 10, 64)
	if err != nil {
		t.Errorf("expected valid integer nonce string, got error: %v", err)
	}
}

func TestNonce_GetInt64(t *testing.T) {
	ng := NewMillisecondNonce(time.Now())

	nonce := ng.GetInt64()
	if nonce <= 0 {
		t.Errorf("expected positive nonce, got %d", nonce)
	}
}

func TestNonce_Monotonic(t *testing.T) {
	ng := NewMillisecondNonce(time.Now())

	prev := ng.GetInt64()
	for i := 0; i < 1000; i++ {
		n := ng.GetInt64()
		if n <= prev {
			t.Fatalf("nonce went backwards: %d after %d", n, prev)
		}
		prev = n
	}
}

func TestNonce_Concurrency(t *testing.T) {
	ng := NewMillisecondNonce(time.Now())
	var wg sync.WaitGroup
	nonces := sync.Map{}

	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			n := ng.GetInt64()
			nonces.Store(n, true)
		}()
	}

	wg.Wait()

	uniqueCount := 0
	nonces.Range(func(key, value any) bool {
		uniqueCount++
		return true
	})

	if uniqueCount != 100 {
		t.Errorf("expected 100 unique nonces, got %d", uniqueCount)
	}
}
