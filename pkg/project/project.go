// Package project provides JSON persistence for venue layouts.
//
// A project file bundles everything needed to reopen an editing session:
// the venue outline, the placed objects, and the per-project boundary
// constraints. The format is plain indented JSON so it diffs cleanly under
// version control and external tools can produce or consume it.
package project

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/KazukiMatoba/venue-layout-editor-sub001/pkg/boundary"
	"github.com/KazukiMatoba/venue-layout-editor-sub001/pkg/errors"
	"github.com/KazukiMatoba/venue-layout-editor-sub001/pkg/object"
	"github.com/KazukiMatoba/venue-layout-editor-sub001/pkg/observability"
	"github.com/KazukiMatoba/venue-layout-editor-sub001/pkg/venue"
)

// SchemaVersion is written to every project file. Readers reject files with
// a newer major version than they understand.
const SchemaVersion = 1

// Project is one venue layout: the outline, the placed objects, and the
// constraint settings the layout was edited under.
type Project struct {
	Name  string        `json:"name"`
	Venue venue.Outline `json:"venue"`

	// Constraints is the per-project boundary policy. Nil means the file
	// carries none and the opening session falls back to its config; a
	// non-nil value is authoritative, even when it disables checking.
	Constraints *boundary.Constraints `json:"constraints,omitempty"`

	Objects   []*object.Object `json:"objects"`
	UpdatedAt time.Time        `json:"updated_at"`
}

// file is the persisted shape, with the schema version on the outside so it
// can be checked before the rest is interpreted.
type file struct {
	Version int     `json:"version"`
	Project Project `json:"project"`
}

// New creates an empty project for the given venue.
func New(name string, outline venue.Outline) (*Project, error) {
	if err := errors.ValidateProjectName(name); err != nil {
		return nil, err
	}
	if err := outline.Validate(); err != nil {
		return nil, err
	}
	c := boundary.DefaultConstraints()
	return &Project{Name: name, Venue: outline, Constraints: &c}, nil
}

// ObjectList builds a live object list from the project's objects.
// Duplicate ids in the file surface as an error here rather than as
// undefined behavior later.
func (p *Project) ObjectList() (*object.List, error) {
	list := object.NewList()
	for _, o := range p.Objects {
		if err := list.Add(o); err != nil {
			return nil, err
		}
	}
	return list, nil
}

// SyncObjects copies the live object list back into the project before a
// save.
func (p *Project) SyncObjects(list *object.List) {
	p.Objects = list.All()
}

// WriteJSON encodes the project as indented JSON and writes it to w.
func WriteJSON(p *Project, w io.Writer) error {
	out := file{Version: SchemaVersion, Project: *p}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

// ReadJSON decodes a project from r and validates it.
func ReadJSON(r io.Reader) (*Project, error) {
	var in file
	if err := json.NewDecoder(r).Decode(&in); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidProject, err, "decode project")
	}
	if in.Version > SchemaVersion {
		return nil, errors.New(errors.ErrCodeUnsupported, "project schema version %d is newer than supported version %d", in.Version, SchemaVersion)
	}

	p := in.Project
	if err := p.Venue.Validate(); err != nil {
		return nil, err
	}
	// Catch duplicate ids at read time.
	if _, err := p.ObjectList(); err != nil {
		return nil, err
	}
	return &p, nil
}

// Save writes the project to a JSON file at path, stamping UpdatedAt.
func Save(p *Project, path string) error {
	start := time.Now()
	p.UpdatedAt = start.UTC()

	f, err := os.Create(path)
	if err != nil {
		err = fmt.Errorf("create %s: %w", path, err)
		observability.Store().OnProjectSave(path, time.Since(start), err)
		return err
	}
	defer f.Close()

	if err := WriteJSON(p, f); err != nil {
		observability.Store().OnProjectSave(path, time.Since(start), err)
		return err
	}
	observability.Store().OnProjectSave(path, time.Since(start), nil)
	return nil
}

// Load reads a project from a JSON file at path.
func Load(path string) (*Project, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			err = errors.New(errors.ErrCodeFileNotFound, "project file not found: %s", path)
		} else {
			err = fmt.Errorf("open %s: %w", path, err)
		}
		observability.Store().OnProjectLoad(path, 0, err)
		return nil, err
	}
	defer f.Close()

	p, err := ReadJSON(f)
	if err != nil {
		observability.Store().OnProjectLoad(path, 0, err)
		return nil, err
	}
	observability.Store().OnProjectLoad(path, len(p.Objects), nil)
	return p, nil
}
