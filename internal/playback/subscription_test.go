package playback

import (
	"testing"
	"testing/synctest"

	"github.com/llehouerou/tracknav/internal/library"
)

func TestSubscription_ChannelReadable(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		sub := NewSubscription()

		sub.Send(StateChanged{Previous: StateStopped, Current: StatePlaying})
		sub.Send(TrackEnded{Track: library.Track{Title: "a"}})

		e := <-sub.Events
		sc, ok := e.(StateChanged)
		if !ok || sc.Current != StatePlaying {
			t.Errorf("first event = %#v, want StateChanged to Playing", e)
		}

		e = <-sub.Events
		if te, ok := e.(TrackEnded); !ok || te.Track.Title != "a" {
			t.Errorf("second event = %#v, want TrackEnded for a", e)
		}
	})
}

func TestSubscription_TryNext(t *testing.T) {
	sub := NewSubscription()

	if e, ok := sub.TryNext(); ok {
		t.Fatalf("TryNext() on empty = %#v, true; want nothing", e)
	}

	sub.Send(TrackStarted{Track: library.Track{Title: "x"}})
	e, ok := sub.TryNext()
	if !ok {
		t.Fatal("TryNext() = false, want pending event")
	}
	if _, isStart := e.(TrackStarted); !isStart {
		t.Errorf("TryNext() = %#v, want TrackStarted", e)
	}

	if _, ok := sub.TryNext(); ok {
		t.Error("TryNext() returned an event twice")
	}
}

func TestSubscription_Close_SignalsDone(t *testing.T) {
	synctest.Test(t, func(_ *testing.T) {
		sub := NewSubscription()
		sub.Close()
		<-sub.Done
	})
}

func TestSubscription_NonBlocking_DropsWhenFull(t *testing.T) {
	sub := NewSubscription()

	for range eventBufferSize + 5 {
		sub.Send(StateChanged{})
	}

	count := 0
	for {
		if _, ok := sub.TryNext(); !ok {
			break
		}
		count++
	}
	if count != eventBufferSize {
		t.Errorf("received %d events, want %d (buffer size)", count, eventBufferSize)
	}
}
