package z80

import "testing"

func TestQueueFIFOOrder(t *testing.T) {
	var q tstateQueue
	q.add(tstate{signals: signalWord(M1)})
	q.add(tstate{signals: signalWord(MREQ)})
	q.add(tstate{signals: signalWord(RFSH)})

	want := []signalWord{signalWord(M1), signalWord(MREQ), signalWord(RFSH)}
	for _, w := range want {
		if q.empty() {
			t.Fatalf("queue unexpectedly empty, expected %v", w)
		}
		if got := q.get().signals; got != w {
			t.Fatalf("q.get().signals = %v, want %v", got, w)
		}
		q.pop()
	}
	if !q.empty() {
		t.Fatalf("queue not empty after draining all entries")
	}
}

func TestQueueOverflowPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic on queue overflow")
		}
	}()

	var q tstateQueue
	for i := 0; i < queueCapacity; i++ {
		q.add(tstate{})
	}
}

func TestQueueWrapsAroundRingBuffer(t *testing.T) {
	var q tstateQueue
	for i := 0; i < queueCapacity-1; i++ {
		q.add(tstate{})
		q.pop()
	}

	// The head/tail indices now both sit at the last slot of the backing
	// array, so this add wraps tail back to 0; confirm add/get still behave
	// correctly.
	q.add(tstate{signals: signalWord(HALT)})
	if q.empty() {
		t.Fatalf("queue empty after add following wraparound")
	}
	if got := q.get().signals; got != signalWord(HALT) {
		t.Fatalf("q.get().signals = %v, want HALT", got)
	}
}
