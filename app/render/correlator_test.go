package render

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestRegisterAndDispatch(t *testing.T) {
	c := newCorrelatorNoJanitor(time.Minute, testLogger())

	var mu sync.Mutex
	var got []Outcome
	action := func(_ context.Context, outcome Outcome) {
		mu.Lock()
		got = append(got, outcome)
		mu.Unlock()
	}

	if err := c.Register(42, action); err != nil {
		t.Fatalf("Register() error = %v", err)
	}
	if c.Pending() != 1 {
		t.Errorf("Pending() = %d, want 1", c.Pending())
	}

	c.Dispatch(context.Background(), Outcome{RenderID: 42, VideoURL: "https://example.test/render.mp4"})

	if len(got) != 1 {
		t.Fatalf("action invoked %d times, want 1", len(got))
	}
	if got[0].VideoURL != "https://example.test/render.mp4" {
		t.Errorf("outcome VideoURL = %q", got[0].VideoURL)
	}
	if c.Pending() != 0 {
		t.Errorf("Pending() = %d after dispatch, want 0", c.Pending())
	}
}

func TestDispatchIsExactlyOnce(t *testing.T) {
	c := newCorrelatorNoJanitor(time.Minute, testLogger())

	calls := 0
	if err := c.Register(7, func(context.Context, Outcome) { calls++ }); err != nil {
		t.Fatalf("Register() error = %v", err)
	}

	outcome := Outcome{RenderID: 7, VideoURL: "https://example.test/v.mp4"}
	c.Dispatch(context.Background(), outcome)
	c.Dispatch(context.Background(), outcome) // duplicate event

	if calls != 1 {
		t.Errorf("action invoked %d times, want exactly 1", calls)
	}
}

func TestDispatchUnknownRenderIDIsDropped(t *testing.T) {
	c := newCorrelatorNoJanitor(time.Minute, testLogger())

	// Must not panic and must not disturb other tickets.
	called := false
	if err := c.Register(1, func(context.Context, Outcome) { called = true }); err != nil {
		t.Fatalf("Register() error = %v", err)
	}

	c.Dispatch(context.Background(), Outcome{RenderID: 999})

	if called {
		t.Error("unrelated ticket action was invoked")
	}
	if c.Pending() != 1 {
		t.Errorf("Pending() = %d, want 1", c.Pending())
	}
}

func TestRegisterDuplicateRenderID(t *testing.T) {
	c := newCorrelatorNoJanitor(time.Minute, testLogger())

	if err := c.Register(5, func(context.Context, Outcome) {}); err != nil {
		t.Fatalf("first Register() error = %v", err)
	}

	err := c.Register(5, func(context.Context, Outcome) {})
	if !errors.Is(err, ErrDuplicateTicket) {
		t.Errorf("second Register() error = %v, want ErrDuplicateTicket", err)
	}
	if c.Pending() != 1 {
		t.Errorf("Pending() = %d, want 1", c.Pending())
	}
}

func TestExpire(t *testing.T) {
	c := newCorrelatorNoJanitor(time.Minute, testLogger())

	called := false
	if err := c.Register(3, func(context.Context, Outcome) { called = true }); err != nil {
		t.Fatalf("Register() error = %v", err)
	}

	if !c.Expire(3) {
		t.Error("Expire() = false for a live ticket, want true")
	}
	if c.Expire(3) {
		t.Error("Expire() = true for a removed ticket, want false")
	}
	if called {
		t.Error("Expire() invoked the completion action")
	}

	// A late event for the expired ticket is dropped.
	c.Dispatch(context.Background(), Outcome{RenderID: 3})
	if called {
		t.Error("dispatch after expiry invoked the completion action")
	}
}

func TestSweepSynthesizesTimeout(t *testing.T) {
	c := newCorrelatorNoJanitor(-time.Second, testLogger()) // already overdue

	var got *Outcome
	if err := c.Register(11, func(_ context.Context, outcome Outcome) { got = &outcome }); err != nil {
		t.Fatalf("Register() error = %v", err)
	}

	c.sweepExpired(context.Background())

	if got == nil {
		t.Fatal("sweep did not invoke the completion action")
	}
	if !got.TimedOut {
		t.Error("synthesized outcome TimedOut = false, want true")
	}
	if got.RenderID != 11 {
		t.Errorf("synthesized outcome RenderID = %d, want 11", got.RenderID)
	}
	if c.Pending() != 0 {
		t.Errorf("Pending() = %d after sweep, want 0", c.Pending())
	}

	// A completion arriving after the sweep is a drop, not a second action.
	c.Dispatch(context.Background(), Outcome{RenderID: 11, VideoURL: "late"})
	if got.VideoURL != "" {
		t.Error("late dispatch overwrote the timed-out outcome")
	}
}

func TestSweepLeavesFreshTickets(t *testing.T) {
	c := newCorrelatorNoJanitor(time.Minute, testLogger())

	called := false
	if err := c.Register(21, func(context.Context, Outcome) { called = true }); err != nil {
		t.Fatalf("Register() error = %v", err)
	}

	c.sweepExpired(context.Background())

	if called {
		t.Error("sweep expired a ticket that was not overdue")
	}
	if c.Pending() != 1 {
		t.Errorf("Pending() = %d, want 1", c.Pending())
	}
}

func TestTicketsAreIndependent(t *testing.T) {
	c := newCorrelatorNoJanitor(time.Minute, testLogger())

	const n = 50
	var wg sync.WaitGroup
	results := make([]int64, n)

	for i := int64(0); i < int64(n); i++ {
		id := i + 1
		if err := c.Register(id, func(_ context.Context, outcome Outcome) {
			results[id-1] = outcome.RenderID
		}); err != nil {
			t.Fatalf("Register(%d) error = %v", id, err)
		}
	}

	// Dispatch the even half concurrently.
	for i := int64(2); i <= n; i += 2 {
		i := i
		wg.Add(1)
		go func() {
			defer wg.Done()
			c.Dispatch(context.Background(), Outcome{RenderID: i})
		}()
	}
	wg.Wait()

	if c.Pending() != n/2 {
		t.Errorf("Pending() = %d, want %d", c.Pending(), n/2)
	}
	for i := int64(1); i <= n; i++ {
		dispatched := results[i-1] != 0
		if i%2 == 0 && !dispatched {
			t.Errorf("ticket %d was dispatched but its action did not run", i)
		}
		if i%2 == 1 && dispatched {
			t.Errorf("ticket %d was not dispatched but its action ran", i)
		}
	}
}

func TestJanitorExpiresTickets(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// ttl/10 is clamped to a 1s sweep interval.
	c := NewCorrelator(ctx, 50*time.Millisecond, testLogger())

	done := make(chan Outcome, 1)
	if err := c.Register(99, func(_ context.Context, outcome Outcome) { done <- outcome }); err != nil {
		t.Fatalf("Register() error = %v", err)
	}

	select {
	case outcome := <-done:
		if !outcome.TimedOut {
			t.Error("janitor outcome TimedOut = false, want true")
		}
	case <-time.After(3 * time.Second):
		t.Fatal("janitor never expired the ticket")
	}
}
