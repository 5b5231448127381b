package oneshot_test

import (
	"sync"
	"sync/atomic"
	"testing"

	"github.com/creachadair/mds/value"
	"github.com/creachadair/oneshot"
	"pgregory.net/rapid"
)

// Property: for any number of racing handles, exactly one Take per slot
// succeeds, and none succeed if the slot was drained before the race began.
func TestExactlyOneWinner(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		racers := rapid.IntRange(2, 32).Draw(t, "racers")
		predrain := rapid.Bool().Draw(t, "predrain")

		h := oneshot.New("prize")
		if predrain {
			if _, ok := h.Take(); !ok {
				t.Fatal("pre-drain Take: got absent, want present")
			}
		}

		var wins atomic.Int32
		var wg sync.WaitGroup
		for range racers {
			c := h.Clone()
			wg.Add(1)
			go func() {
				defer wg.Done()
				if _, ok := c.Take(); ok {
					wins.Add(1)
				}
			}()
		}
		wg.Wait()

		want := value.Cond[int32](predrain, 0, 1)
		if got := wins.Load(); got != want {
			t.Errorf("winners: got %d, want %d", got, want)
		}
	})
}
