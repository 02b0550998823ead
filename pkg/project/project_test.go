package project

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/KazukiMatoba/venue-layout-editor-sub001/pkg/errors"
	"github.com/KazukiMatoba/venue-layout-editor-sub001/pkg/geometry"
	"github.com/KazukiMatoba/venue-layout-editor-sub001/pkg/object"
	"github.com/KazukiMatoba/venue-layout-editor-sub001/pkg/venue"
)

func sampleProject(t *testing.T) *Project {
	t.Helper()
	p, err := New("Main Hall", venue.Outline{WidthMm: 800, HeightMm: 600})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	p.Objects = []*object.Object{
		{
			ID:       "table-1",
			Position: geometry.Point{X: 200, Y: 150},
			Size:     object.RectangleParams{WidthMm: 100, HeightMm: 60},
		},
		{
			ID:       "pillar-1",
			Position: geometry.Point{X: 500, Y: 300},
			Size:     object.CircleParams{RadiusMm: 40},
		},
	}
	return p
}

func TestNewRejectsBadInput(t *testing.T) {
	if _, err := New("", venue.Outline{WidthMm: 800, HeightMm: 600}); err == nil {
		t.Error("New() with empty name must fail")
	}
	if _, err := New("ok", venue.Outline{WidthMm: 0, HeightMm: 600}); err == nil {
		t.Error("New() with invalid outline must fail")
	}
}

func TestWriteReadRoundTrip(t *testing.T) {
	p := sampleProject(t)

	var buf bytes.Buffer
	if err := WriteJSON(p, &buf); err != nil {
		t.Fatalf("WriteJSON() error = %v", err)
	}

	got, err := ReadJSON(&buf)
	if err != nil {
		t.Fatalf("ReadJSON() error = %v", err)
	}
	if got.Name != p.Name || got.Venue != p.Venue {
		t.Errorf("round trip changed header: %+v", got)
	}
	if len(got.Objects) != 2 {
		t.Fatalf("round trip returned %d objects, want 2", len(got.Objects))
	}
	if got.Objects[0].ID != "table-1" || got.Objects[0].Position != (geometry.Point{X: 200, Y: 150}) {
		t.Errorf("object 0 = %+v", got.Objects[0])
	}
	if _, ok := got.Objects[1].Size.(object.CircleParams); !ok {
		t.Errorf("object 1 size type = %T, want CircleParams", got.Objects[1].Size)
	}
}

func TestReadJSONRejectsNewerSchema(t *testing.T) {
	in := `{"version": 99, "project": {"name": "x", "venue": {"width": 1, "height": 1}}}`
	if _, err := ReadJSON(strings.NewReader(in)); !errors.Is(err, errors.ErrCodeUnsupported) {
		t.Fatalf("ReadJSON() error = %v, want UNSUPPORTED", err)
	}
}

func TestReadJSONRejectsDuplicateIDs(t *testing.T) {
	p := sampleProject(t)
	p.Objects[1].ID = p.Objects[0].ID

	var buf bytes.Buffer
	if err := WriteJSON(p, &buf); err != nil {
		t.Fatalf("WriteJSON() error = %v", err)
	}
	if _, err := ReadJSON(&buf); !errors.Is(err, errors.ErrCodeDuplicateID) {
		t.Fatalf("ReadJSON() error = %v, want DUPLICATE_ID", err)
	}
}

func TestReadJSONRejectsInvalidVenue(t *testing.T) {
	in := `{"version": 1, "project": {"name": "x", "venue": {"width": -5, "height": 100}}}`
	if _, err := ReadJSON(strings.NewReader(in)); err == nil {
		t.Fatal("ReadJSON() with negative venue width must fail")
	}
}

func TestSaveLoad(t *testing.T) {
	p := sampleProject(t)
	path := filepath.Join(t.TempDir(), "hall.json")

	if err := Save(p, path); err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	if p.UpdatedAt.IsZero() {
		t.Error("Save() must stamp UpdatedAt")
	}

	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if got.Name != p.Name || len(got.Objects) != len(p.Objects) {
		t.Errorf("Load() = %+v", got)
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.json"))
	if !errors.Is(err, errors.ErrCodeFileNotFound) {
		t.Fatalf("Load() error = %v, want FILE_NOT_FOUND", err)
	}
}

func TestObjectListAndSync(t *testing.T) {
	p := sampleProject(t)

	list, err := p.ObjectList()
	if err != nil {
		t.Fatalf("ObjectList() error = %v", err)
	}
	if list.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", list.Len())
	}

	if err := list.SetPosition("table-1", geometry.Point{X: 300, Y: 200}); err != nil {
		t.Fatalf("SetPosition() error = %v", err)
	}
	p.SyncObjects(list)

	var found bool
	for _, o := range p.Objects {
		if o.ID == "table-1" {
			found = true
			if o.Position != (geometry.Point{X: 300, Y: 200}) {
				t.Errorf("synced position = %+v", o.Position)
			}
		}
	}
	if !found {
		t.Fatal("table-1 missing after sync")
	}
}
