// Package tokenlimiter bounds how many requests a key may have in flight.
package tokenlimiter

import "sync"

type Limiter struct {
	maxTokens int

	mu       sync.Mutex
	inFlight map[string]int
}

// New returns a limiter allowing maxTokens requests per key.
// Non-positive maxTokens returns nil, and a nil limiter never limits.
func New(maxTokens int) *Limiter {
	if maxTokens <= 0 {
		return nil
	}
	return &Limiter{
		maxTokens: maxTokens,
		inFlight:  make(map[string]int),
	}
}

// Acquire takes a token of key. It returns false when all tokens are taken.
func (l *Limiter) Acquire(key string) bool {
	if l == nil {
		return true
	}
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.inFlight[key] >= l.maxTokens {
		return false
	}
	l.inFlight[key]++
	return true
}

// Release returns a token of key. Keys without taken tokens are forgotten.
func (l *Limiter) Release(key string) {
	if l == nil {
		return
	}
	l.mu.Lock()
	defer l.mu.Unlock()

	n, ok := l.inFlight[key]
	if !ok {
		return
	}
	if n <= 1 {
		delete(l.inFlight, key)
		return
	}
	l.inFlight[key] = n - 1
}

func (l *Limiter) InFlight(key string) int {
	if l == nil {
		return 0
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.inFlight[key]
}
