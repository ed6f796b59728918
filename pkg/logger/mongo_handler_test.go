package logger

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func newDrainHandler() *MongoHandler {
	// No client/collection: the empty queue means flush never runs an
	// insert, so the drain ordering can be exercised in isolation.
	return &MongoHandler{
		queue:   make(chan LogDocument, 4),
		done:    make(chan struct{}),
		flushed: make(chan struct{}),
	}
}

func TestCloseWaitsForFinalFlush(t *testing.T) {
	h := newDrainHandler()
	go h.drainLoop()

	closed := make(chan struct{})
	go func() {
		h.Close()
		close(closed)
	}()

	select {
	case <-closed:
	case <-time.After(2 * time.Second):
		t.Fatal("Close did not return")
	}

	// By the time Close returns, the drain goroutine must have finished
	// its final flush.
	select {
	case <-h.flushed:
	default:
		t.Fatal("Close returned before the drain goroutine flushed")
	}
}

func TestCloseIsIdempotent(t *testing.T) {
	h := newDrainHandler()
	go h.drainLoop()

	assert.NotPanics(t, func() {
		h.Close()
		h.Close()
	})
}
