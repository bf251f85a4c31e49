package throttle

import (
	"anonpair/domain"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestGuard_MaySend(t *testing.T) {
	req := require.New(t)
	alice := domain.ParticipantID("alice")
	bob := domain.ParticipantID("bob")

	t.Run("should always allow the first send", func(t *testing.T) {
		guard := NewGuard(time.Hour)
		req.True(guard.MaySend(alice))
	})

	t.Run("should deny a second send inside the interval", func(t *testing.T) {
		guard := NewGuard(time.Hour)
		req.True(guard.MaySend(alice))
		req.False(guard.MaySend(alice))
	})

	t.Run("should allow again once the interval elapsed", func(t *testing.T) {
		guard := NewGuard(30 * time.Millisecond)
		req.True(guard.MaySend(alice))
		req.False(guard.MaySend(alice))

		time.Sleep(40 * time.Millisecond)
		req.True(guard.MaySend(alice))
	})

	t.Run("should throttle participants independently", func(t *testing.T) {
		guard := NewGuard(time.Hour)
		req.True(guard.MaySend(alice))
		req.True(guard.MaySend(bob))
		req.False(guard.MaySend(alice))
		req.False(guard.MaySend(bob))
	})
}

// A denied call must not consume the pending slot or push it further out.
func TestGuard_DeniedCallDoesNotMutate(t *testing.T) {
	req := require.New(t)
	guard := NewGuard(50 * time.Millisecond)
	alice := domain.ParticipantID("alice")

	req.True(guard.MaySend(alice))
	for i := 0; i < 5; i++ {
		req.False(guard.MaySend(alice))
		time.Sleep(5 * time.Millisecond)
	}
	time.Sleep(50 * time.Millisecond)
	req.True(guard.MaySend(alice))
}

func TestGuard_ConcurrentAccess(t *testing.T) {
	req := require.New(t)
	guard := NewGuard(time.Hour)
	alice := domain.ParticipantID("alice")

	const callers = 16
	allowed := make(chan bool, callers)
	var wg sync.WaitGroup
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			allowed <- guard.MaySend(alice)
		}()
	}
	wg.Wait()
	close(allowed)

	wins := 0
	for ok := range allowed {
		if ok {
			wins++
		}
	}
	req.Equal(1, wins)
}
