package feedback

import (
	"strings"
	"testing"

	"github.com/KazukiMatoba/venue-layout-editor-sub001/pkg/boundary"
	"github.com/KazukiMatoba/venue-layout-editor-sub001/pkg/geometry"
	"github.com/KazukiMatoba/venue-layout-editor-sub001/pkg/overlap"
)

func TestPlacementAccepted(t *testing.T) {
	fb := PlacementAccepted(geometry.Point{X: 400, Y: 300})
	if fb.Severity != SeveritySuccess || fb.Type != TypePlacementAccepted {
		t.Errorf("unexpected feedback %+v", fb)
	}
	if fb.Duration != DurationShort {
		t.Errorf("success feedback should be short-lived, got %v", fb.Duration)
	}
	if !strings.Contains(fb.Message, "400.0") {
		t.Errorf("message missing position: %q", fb.Message)
	}
}

func TestPlacementRejectedBoundary(t *testing.T) {
	br := boundary.Result{
		Valid: false,
		Violations: []boundary.Violation{
			{Side: boundary.SideLeft, Severity: boundary.SeverityError, MagnitudeMm: 60},
		},
	}
	suggested := &geometry.Point{X: 50, Y: 300}
	fb := PlacementRejected(br, overlap.Result{Valid: true}, suggested)

	if fb.Severity != SeverityError {
		t.Errorf("Severity = %v, want error", fb.Severity)
	}
	if fb.Duration != DurationLong {
		t.Errorf("error feedback should linger, got %v", fb.Duration)
	}
	if fb.SuggestedPosition == nil || *fb.SuggestedPosition != *suggested {
		t.Errorf("SuggestedPosition = %v, want %v", fb.SuggestedPosition, suggested)
	}
	for _, part := range []string{"left", "60.0 mm", "50.0, 300.0"} {
		if !strings.Contains(fb.Message, part) {
			t.Errorf("message %q missing %q", fb.Message, part)
		}
	}
}

func TestPlacementRejectedOverlap(t *testing.T) {
	or := overlap.Result{
		Valid: false,
		Overlaps: []overlap.Overlap{
			{OtherID: "table-3", Percent: 42.5, Severity: overlap.SeverityError},
		},
	}
	fb := PlacementRejected(boundary.Result{Valid: true}, or, nil)

	if !strings.Contains(fb.Message, "table-3") || !strings.Contains(fb.Message, "42.5%") {
		t.Errorf("message %q should name the colliding object and percentage", fb.Message)
	}
	if fb.SuggestedPosition != nil {
		t.Errorf("no suggestion expected, got %v", fb.SuggestedPosition)
	}
}

func TestBoundaryLimited(t *testing.T) {
	fb := BoundaryLimited([]string{"x", "y"})
	if fb.Severity != SeverityWarning {
		t.Errorf("Severity = %v, want warning", fb.Severity)
	}
	if !strings.Contains(fb.Message, "x and y") {
		t.Errorf("message %q should list both axes", fb.Message)
	}
}

func TestProximity(t *testing.T) {
	fb := Proximity(12)
	if fb.Severity != SeverityInfo || fb.Type != TypeProximityWarning {
		t.Errorf("unexpected feedback %+v", fb)
	}
	if !strings.Contains(fb.Message, "12 mm") {
		t.Errorf("message %q missing distance", fb.Message)
	}
}

func TestSnapBack(t *testing.T) {
	br := boundary.Result{
		Valid: false,
		Violations: []boundary.Violation{
			{Side: boundary.SideRight, Severity: boundary.SeverityError, MagnitudeMm: 10},
			{Side: boundary.SideBottom, Severity: boundary.SeverityError, MagnitudeMm: 5},
		},
	}
	fb := SnapBack(br, overlap.Result{Valid: true}, nil)
	if fb.Type != TypeSnapBack || fb.Severity != SeverityError {
		t.Errorf("unexpected feedback %+v", fb)
	}
	if !strings.Contains(fb.Message, "right") || !strings.Contains(fb.Message, "bottom") {
		t.Errorf("message %q should name both sides", fb.Message)
	}
}

func TestMoveCommitted(t *testing.T) {
	fb := MoveCommitted(123.45)
	if !strings.Contains(fb.Message, "123.5 mm") {
		t.Errorf("message %q missing rounded distance", fb.Message)
	}
	if fb.Severity != SeveritySuccess {
		t.Errorf("Severity = %v, want success", fb.Severity)
	}
}

func TestOverlapWarning(t *testing.T) {
	or := overlap.Result{
		Valid: true,
		Overlaps: []overlap.Overlap{
			{OtherID: "chair-9", Percent: 3.2, Severity: overlap.SeverityWarning},
		},
	}
	fb := OverlapWarning(or)
	if fb.Severity != SeverityWarning {
		t.Errorf("Severity = %v, want warning", fb.Severity)
	}
	if !strings.Contains(fb.Message, "chair-9") {
		t.Errorf("message %q missing the other object", fb.Message)
	}
}

func TestNopNotifier(t *testing.T) {
	var n Notifier = NopNotifier{}
	n.Show("id", DragCanceled())
	n.Hide("id")
}
