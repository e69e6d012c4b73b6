package notify_test

import (
	"sync"
	"testing"

	"github.com/for-hk/linkup-auth/internal/notify"
)

func TestRecorder_CumulativeCount(t *testing.T) {
	t.Parallel()
	rec := notify.NewRecorder()

	rec.SendWelcome(1)
	if got, want := rec.Count(), 1; got != want {
		t.Errorf("rec.Count() = %d, want: %d", got, want)
	}

	rec.SendPasswordReset(1)
	if got, want := rec.Count(), 2; got != want {
		t.Errorf("rec.Count() = %d, want: %d", got, want)
	}

	deliveries := rec.Deliveries()
	wantKinds := []notify.Kind{notify.KindWelcome, notify.KindPasswordReset}
	for i, want := range wantKinds {
		if deliveries[i].Kind != want {
			t.Errorf("deliveries[%d].Kind = %q, want: %q", i, deliveries[i].Kind, want)
		}
	}
}

func TestRecorder_ConcurrentSends(t *testing.T) {
	t.Parallel()
	rec := notify.NewRecorder()

	const sends = 100
	var wg sync.WaitGroup
	for i := range sends {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if i%2 == 0 {
				rec.SendWelcome(int64(i))
			} else {
				rec.SendPasswordReset(int64(i))
			}
		}()
	}
	wg.Wait()

	if got, want := rec.Count(), sends; got != want {
		t.Errorf("rec.Count() = %d, want: %d", got, want)
	}
}
