package main

import (
	"testing"
	"time"
)

func TestAwaitPipelineStop(t *testing.T) {
	pipeDone := make(chan error)

	// An exit already consumed from the channel must not trigger a second
	// wait; nothing will ever arrive on pipeDone again.
	if !awaitPipelineStop(pipeDone, true, 10*time.Millisecond) {
		t.Error("already-exited pipeline reported as stuck")
	}

	// A pipeline still winding down is awaited.
	go func() { pipeDone <- nil }()
	if !awaitPipelineStop(pipeDone, false, 2*time.Second) {
		t.Error("exiting pipeline reported as stuck")
	}

	// A pipeline that never exits times out.
	if awaitPipelineStop(pipeDone, false, 10*time.Millisecond) {
		t.Error("stuck pipeline reported as stopped")
	}
}
