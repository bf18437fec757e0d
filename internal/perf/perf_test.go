package perf

import (
	"testing"
	"time"
)

func TestComputeP95(t *testing.T) {
	samples := []time.Duration{
		1 * time.Millisecond,
		2 * time.Millisecond,
		3 * time.Millisecond,
		4 * time.Millisecond,
		5 * time.Millisecond,
	}
	if got := computeP95(samples, len(samples), true); got != 5*time.Millisecond {
		t.Fatalf("expected p95=5ms, got %s", got)
	}

	partial := []time.Duration{9 * time.Millisecond, 1 * time.Millisecond, 5 * time.Millisecond, 0}
	if got := computeP95(partial, 3, false); got != 9*time.Millisecond {
		t.Fatalf("expected p95=9ms for partial window, got %s", got)
	}
	if got := computeP95(nil, 0, false); got != 0 {
		t.Fatalf("expected 0 for empty window, got %s", got)
	}
}

func TestSnapshotAndReset(t *testing.T) {
	defer EnableForTest()()

	Record("view", 50*time.Millisecond)
	Record("frame", 10*time.Millisecond)
	Record("view", 150*time.Millisecond)
	Count("drag_frame", 2)

	statList, counterList := Snapshot()
	if len(statList) != 2 || statList[0].Name != "frame" || statList[1].Name != "view" {
		t.Fatalf("unexpected stats: %+v", statList)
	}
	view := statList[1]
	if view.Count != 2 || view.Avg != 100*time.Millisecond || view.Min != 50*time.Millisecond || view.Max != 150*time.Millisecond {
		t.Fatalf("unexpected view stat: %+v", view)
	}
	if len(counterList) != 1 || counterList[0].Value != 2 {
		t.Fatalf("unexpected counters: %+v", counterList)
	}

	statList, counterList = Snapshot()
	if len(statList) != 0 || len(counterList) != 0 {
		t.Fatalf("expected reset after snapshot, got %+v %+v", statList, counterList)
	}
}

func TestDisabledIsNoop(t *testing.T) {
	restore := EnableForTest()
	enabled.Store(false)
	defer restore()

	Time("view")()
	Count("drag_frame", 1)
	statList, counterList := Snapshot()
	if len(statList) != 0 || len(counterList) != 0 {
		t.Fatalf("expected nothing recorded while disabled")
	}
}
