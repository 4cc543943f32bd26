package pipeline_test

import (
	"sync"
	"testing"

	"soare/internal/pipeline"
)

func TestChannelSink(t *testing.T) {
	ch := make(chan pipeline.Event, 2)
	sink := pipeline.ChannelSink{Ch: ch}
	pipeline.Emit(sink, pipeline.Event{File: "a.soare", Stage: pipeline.StageLoad, Status: pipeline.StatusWorking})
	pipeline.Emit(nil, pipeline.Event{File: "ignored"})
	close(ch)

	var got []pipeline.Event
	for ev := range ch {
		got = append(got, ev)
	}
	if len(got) != 1 || got[0].File != "a.soare" {
		t.Fatalf("events = %+v", got)
	}

	pipeline.ChannelSink{}.OnEvent(pipeline.Event{})
}

func TestRecorderLast(t *testing.T) {
	var rec pipeline.Recorder
	var wg sync.WaitGroup
	for _, f := range []string{"a", "b", "c"} {
		wg.Add(1)
		go func() {
			defer wg.Done()
			rec.OnEvent(pipeline.Event{File: f, Stage: pipeline.StageTokenize, Status: pipeline.StatusWorking})
			rec.OnEvent(pipeline.Event{File: f, Status: pipeline.StatusDone})
		}()
	}
	wg.Wait()

	if n := len(rec.Events()); n != 6 {
		t.Fatalf("recorded %d events, want 6", n)
	}
	last, ok := rec.Last("b")
	if !ok || !last.Terminal() {
		t.Fatalf("last event for b = %+v", last)
	}
	if _, ok := rec.Last("zzz"); ok {
		t.Fatal("unexpected event for unknown file")
	}
}
