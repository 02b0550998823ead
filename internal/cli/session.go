package cli

import (
	"context"

	"github.com/KazukiMatoba/venue-layout-editor-sub001/pkg/config"
	"github.com/KazukiMatoba/venue-layout-editor-sub001/pkg/engine"
	"github.com/KazukiMatoba/venue-layout-editor-sub001/pkg/project"
)

// defaultConfigPath is where commands look for a config file unless
// --config points somewhere else. A missing file means defaults.
const defaultConfigPath = "venueplan.toml"

// editSession bundles a loaded project with the engine built over it.
// Commands that mutate the layout run through the engine, sync the object
// list back, and save.
type editSession struct {
	cfg     config.Config
	project *project.Project
	engine  *engine.Engine
	path    string
}

// openSession loads the config and project files and builds the engine.
// Per-project constraints stored in the project file win over the config
// file's defaults, so a layout validates the same on every machine.
func openSession(ctx context.Context, projectPath, configPath string) (*editSession, error) {
	logger := loggerFromContext(ctx)

	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}

	p, err := project.Load(projectPath)
	if err != nil {
		return nil, err
	}

	constraints := p.Constraints
	if constraints == nil {
		c := cfg.Boundary
		constraints = &c
	}

	list, err := p.ObjectList()
	if err != nil {
		return nil, err
	}

	eng, err := engine.New(p.Venue, list, engine.Options{
		Constraints:        constraints,
		OverlapWarnPercent: cfg.Overlap.WarnPercent,
		MinDragMm:          cfg.Drag.MinDistanceMm,
		Logger:             logger,
	})
	if err != nil {
		return nil, err
	}

	logger.Debug("project opened", "path", projectPath, "objects", list.Len())
	return &editSession{cfg: cfg, project: p, engine: eng, path: projectPath}, nil
}

// save syncs the engine's object list into the project and writes it back.
func (s *editSession) save() error {
	s.project.SyncObjects(s.engine.Objects())
	return project.Save(s.project, s.path)
}
