package locks

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKeyedMutex_SerializesSameKey(t *testing.T) {
	km := New()

	const n = 50
	counter := 0

	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			km.Lock("lead:1:42")
			counter++
			km.Unlock("lead:1:42")
		}()
	}
	wg.Wait()

	assert.Equal(t, n, counter)
}

func TestKeyedMutex_IndependentKeys(t *testing.T) {
	km := New()

	km.Lock("lead:1:1")
	done := make(chan struct{})
	go func() {
		// A different key must not block.
		km.Lock("lead:1:2")
		km.Unlock("lead:1:2")
		close(done)
	}()
	<-done
	km.Unlock("lead:1:1")
}

func TestKeyedMutex_EntryCleanup(t *testing.T) {
	km := New()

	km.Lock("campaign:1:7")
	km.Unlock("campaign:1:7")

	km.mu.Lock()
	defer km.mu.Unlock()
	assert.Empty(t, km.locks)
}
