package boundary

import (
	"testing"

	"github.com/KazukiMatoba/venue-layout-editor-sub001/pkg/geometry"
	"github.com/KazukiMatoba/venue-layout-editor-sub001/pkg/object"
)

var venue800x600 = geometry.BoundingBox{MinX: 0, MinY: 0, MaxX: 800, MaxY: 600}

func rect100x60(pos geometry.Point) *object.Object {
	return &object.Object{
		ID:       "r",
		Position: pos,
		Size:     object.RectangleParams{WidthMm: 100, HeightMm: 60},
	}
}

func TestCheckDisabledAlwaysValid(t *testing.T) {
	c := Constraints{Enabled: false, MarginMm: 50, WarnDistanceMm: 30}
	// Far outside the venue, still valid with constraints off.
	b := geometry.BoxAround(geometry.Point{X: -1000, Y: -1000}, 50, 30)

	res := Check(b, venue800x600, c)
	if !res.Valid {
		t.Error("Check() with disabled constraints must be valid")
	}
	if len(res.Violations) != 0 {
		t.Errorf("Check() with disabled constraints returned %d violations", len(res.Violations))
	}
}

func TestCheckInsideIsValid(t *testing.T) {
	b := geometry.BoxAround(geometry.Point{X: 400, Y: 300}, 50, 30)
	res := Check(b, venue800x600, DefaultConstraints())
	if !res.Valid {
		t.Errorf("Check() = %+v, want valid", res)
	}
	if len(res.Violations) != 0 {
		t.Errorf("centered object produced violations: %+v", res.Violations)
	}
}

func TestCheckCrossingIsError(t *testing.T) {
	tests := []struct {
		name     string
		center   geometry.Point
		wantSide Side
		wantMag  float64
	}{
		{name: "left crossing", center: geometry.Point{X: -10, Y: 300}, wantSide: SideLeft, wantMag: 60},
		{name: "top crossing", center: geometry.Point{X: 400, Y: -10}, wantSide: SideTop, wantMag: 40},
		{name: "right crossing", center: geometry.Point{X: 850, Y: 300}, wantSide: SideRight, wantMag: 100},
		{name: "bottom crossing", center: geometry.Point{X: 400, Y: 620}, wantSide: SideBottom, wantMag: 50},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := geometry.BoxAround(tt.center, 50, 30)
			res := Check(b, venue800x600, DefaultConstraints())
			if res.Valid {
				t.Fatalf("Check() = valid, want invalid")
			}
			errs := res.Errors()
			if len(errs) != 1 {
				t.Fatalf("Errors() = %+v, want exactly one", errs)
			}
			if errs[0].Side != tt.wantSide {
				t.Errorf("Side = %v, want %v", errs[0].Side, tt.wantSide)
			}
			if errs[0].MagnitudeMm != tt.wantMag {
				t.Errorf("MagnitudeMm = %v, want %v", errs[0].MagnitudeMm, tt.wantMag)
			}
		})
	}
}

func TestCheckFlushEdgeIsValidWarning(t *testing.T) {
	// Left edge exactly at x=0: valid, but a zero-distance warning.
	b := geometry.BoxAround(geometry.Point{X: 50, Y: 300}, 50, 30)
	res := Check(b, venue800x600, DefaultConstraints())

	if !res.Valid {
		t.Fatalf("flush placement must be valid, got %+v", res)
	}
	warns := res.Warnings()
	if len(warns) != 1 || warns[0].Side != SideLeft {
		t.Fatalf("Warnings() = %+v, want single left warning", warns)
	}
	if warns[0].MagnitudeMm != 0 {
		t.Errorf("flush warning magnitude = %v, want 0", warns[0].MagnitudeMm)
	}
}

func TestCheckProximityWarning(t *testing.T) {
	// Left edge at x=20, inside the 30mm warning band.
	b := geometry.BoxAround(geometry.Point{X: 70, Y: 300}, 50, 30)
	res := Check(b, venue800x600, DefaultConstraints())

	if !res.Valid {
		t.Fatalf("object within warning band must be valid, got %+v", res)
	}
	warns := res.Warnings()
	if len(warns) != 1 || warns[0].MagnitudeMm != 20 {
		t.Fatalf("Warnings() = %+v, want left warning at 20mm", warns)
	}
	if got := res.NearestEdgeDistanceMm(); got != 20 {
		t.Errorf("NearestEdgeDistanceMm() = %v, want 20", got)
	}

	// Just past the band: no warning.
	b = geometry.BoxAround(geometry.Point{X: 81, Y: 300}, 50, 30)
	res = Check(b, venue800x600, DefaultConstraints())
	if len(res.Violations) != 0 {
		t.Errorf("object outside warning band produced %+v", res.Violations)
	}
	if got := res.NearestEdgeDistanceMm(); got != -1 {
		t.Errorf("NearestEdgeDistanceMm() = %v, want -1", got)
	}
}

func TestCheckMarginShiftsErrorLine(t *testing.T) {
	c := Constraints{Enabled: true, MarginMm: 20, WarnDistanceMm: 10}

	// Left edge at 10mm: inside the venue but inside the 20mm margin.
	b := geometry.BoxAround(geometry.Point{X: 60, Y: 300}, 50, 30)
	res := Check(b, venue800x600, c)
	if res.Valid {
		t.Fatalf("placement inside margin must be invalid, got %+v", res)
	}
	errs := res.Errors()
	if len(errs) != 1 || errs[0].MagnitudeMm != 10 {
		t.Fatalf("Errors() = %+v, want left error of 10mm past margin", errs)
	}

	// Left edge at 20mm: flush with the margin line, valid with warning.
	b = geometry.BoxAround(geometry.Point{X: 70, Y: 300}, 50, 30)
	res = Check(b, venue800x600, c)
	if !res.Valid {
		t.Fatalf("placement flush with margin must be valid, got %+v", res)
	}
}

func TestCheckZeroSizeObject(t *testing.T) {
	// Degenerate box must not throw, just degrade gracefully.
	b := geometry.BoxAround(geometry.Point{X: 400, Y: 300}, 0, 0)
	res := Check(b, venue800x600, DefaultConstraints())
	if !res.Valid {
		t.Errorf("zero-size object at center = %+v, want valid", res)
	}

	b = geometry.BoxAround(geometry.Point{X: -5, Y: 300}, 0, 0)
	res = Check(b, venue800x600, DefaultConstraints())
	if res.Valid {
		t.Errorf("zero-size object outside venue must be invalid")
	}
}

// The literal scenarios from the interaction design review.

func TestEnforceRealTimeLimitsScenarios(t *testing.T) {
	tests := []struct {
		name        string
		obj         *object.Object
		proposed    geometry.Point
		wantPos     geometry.Point
		wantLimited bool
		wantAxes    []string
	}{
		{
			name:        "rectangle pushed past left edge",
			obj:         rect100x60(geometry.Point{}),
			proposed:    geometry.Point{X: -10, Y: 300},
			wantPos:     geometry.Point{X: 50, Y: 300},
			wantLimited: true,
			wantAxes:    []string{"x"},
		},
		{
			name:        "rectangle pushed past top edge",
			obj:         rect100x60(geometry.Point{}),
			proposed:    geometry.Point{X: 400, Y: -10},
			wantPos:     geometry.Point{X: 400, Y: 30},
			wantLimited: true,
			wantAxes:    []string{"y"},
		},
		{
			name:        "rectangle pushed past right edge",
			obj:         rect100x60(geometry.Point{}),
			proposed:    geometry.Point{X: 850, Y: 300},
			wantPos:     geometry.Point{X: 750, Y: 300},
			wantLimited: true,
			wantAxes:    []string{"x"},
		},
		{
			name: "circle pushed past left edge",
			obj: &object.Object{
				ID:   "c",
				Size: object.CircleParams{RadiusMm: 50},
			},
			proposed:    geometry.Point{X: -10, Y: 300},
			wantPos:     geometry.Point{X: 50, Y: 300},
			wantLimited: true,
			wantAxes:    []string{"x"},
		},
		{
			name:        "fully inside is untouched",
			obj:         rect100x60(geometry.Point{}),
			proposed:    geometry.Point{X: 400, Y: 300},
			wantPos:     geometry.Point{X: 400, Y: 300},
			wantLimited: false,
		},
		{
			name:        "both axes out",
			obj:         rect100x60(geometry.Point{}),
			proposed:    geometry.Point{X: -10, Y: -10},
			wantPos:     geometry.Point{X: 50, Y: 30},
			wantLimited: true,
			wantAxes:    []string{"x", "y"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := EnforceRealTimeLimits(tt.obj, tt.proposed, venue800x600, DefaultConstraints())
			if err != nil {
				t.Fatalf("EnforceRealTimeLimits() error = %v", err)
			}
			if res.LimitedPosition != tt.wantPos {
				t.Errorf("LimitedPosition = %+v, want %+v", res.LimitedPosition, tt.wantPos)
			}
			if res.WasLimited != tt.wantLimited {
				t.Errorf("WasLimited = %v, want %v", res.WasLimited, tt.wantLimited)
			}
			if len(res.LimitedAxes) != len(tt.wantAxes) {
				t.Fatalf("LimitedAxes = %v, want %v", res.LimitedAxes, tt.wantAxes)
			}
			for i, a := range tt.wantAxes {
				if res.LimitedAxes[i] != a {
					t.Errorf("LimitedAxes = %v, want %v", res.LimitedAxes, tt.wantAxes)
				}
			}
		})
	}
}

func TestConstrainIdempotent(t *testing.T) {
	o := rect100x60(geometry.Point{})
	positions := []geometry.Point{
		{X: -100, Y: -100},
		{X: 400, Y: 300},
		{X: 10000, Y: 10000},
		{X: 0, Y: 0},
		{X: 799.9, Y: 0.1},
	}

	for _, p := range positions {
		once, err := Constrain(o, p, venue800x600, DefaultConstraints())
		if err != nil {
			t.Fatalf("Constrain() error = %v", err)
		}
		twice, err := Constrain(o, once, venue800x600, DefaultConstraints())
		if err != nil {
			t.Fatalf("Constrain() error = %v", err)
		}
		if once != twice {
			t.Errorf("Constrain not idempotent at %+v: %+v then %+v", p, once, twice)
		}

		// The constrained position must itself be valid.
		b, err := o.BoundsAt(once)
		if err != nil {
			t.Fatalf("BoundsAt() error = %v", err)
		}
		if res := Check(b, venue800x600, DefaultConstraints()); !res.Valid {
			t.Errorf("Constrain(%+v) = %+v is still invalid: %+v", p, once, res)
		}
	}
}

func TestConstrainDisabledReturnsInput(t *testing.T) {
	o := rect100x60(geometry.Point{})
	p := geometry.Point{X: -500, Y: 9000}
	got, err := Constrain(o, p, venue800x600, Constraints{Enabled: false})
	if err != nil {
		t.Fatalf("Constrain() error = %v", err)
	}
	if got != p {
		t.Errorf("Constrain() with disabled constraints = %+v, want %+v", got, p)
	}
}

func TestConstrainOversizedCollapsesToCenter(t *testing.T) {
	// 500x400 object in a 400x300 venue: no valid position on either axis,
	// clamp collapses to the venue center.
	small := geometry.BoundingBox{MinX: 0, MinY: 0, MaxX: 400, MaxY: 300}
	o := &object.Object{
		ID:   "big",
		Size: object.RectangleParams{WidthMm: 500, HeightMm: 400},
	}

	got, err := Constrain(o, geometry.Point{X: 10, Y: 10}, small, DefaultConstraints())
	if err != nil {
		t.Fatalf("Constrain() error = %v", err)
	}
	want := geometry.Point{X: 200, Y: 150}
	if got != want {
		t.Errorf("Constrain() oversized = %+v, want venue center %+v", got, want)
	}
}

func TestConstrainRespectsMargin(t *testing.T) {
	c := Constraints{Enabled: true, MarginMm: 25, WarnDistanceMm: 0}
	o := rect100x60(geometry.Point{})

	got, err := Constrain(o, geometry.Point{X: 0, Y: 300}, venue800x600, c)
	if err != nil {
		t.Fatalf("Constrain() error = %v", err)
	}
	// Half width 50 + margin 25.
	if got.X != 75 {
		t.Errorf("Constrain().X = %v, want 75", got.X)
	}
}

func TestCheckObjectUnknownKind(t *testing.T) {
	o := &object.Object{ID: "x"} // nil Size is an unknown kind
	_, err := CheckObject(o, geometry.Point{}, venue800x600, DefaultConstraints())
	if err == nil {
		t.Fatal("CheckObject() with unknown kind must fail loudly")
	}
}
