package cli

import (
	"fmt"
	"sort"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/KazukiMatoba/venue-layout-editor-sub001/pkg/config"
	"github.com/KazukiMatoba/venue-layout-editor-sub001/pkg/engine"
	"github.com/KazukiMatoba/venue-layout-editor-sub001/pkg/feedback"
	"github.com/KazukiMatoba/venue-layout-editor-sub001/pkg/geometry"
	"github.com/KazukiMatoba/venue-layout-editor-sub001/pkg/project"
)

// List styles
var (
	listSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	listNormalStyle   = lipgloss.NewStyle().Foreground(colorWhite)
	listDimStyle      = lipgloss.NewStyle().Foreground(colorDim)
)

// editOpts holds the command-line flags for the edit command.
type editOpts struct {
	config  string  // config file path
	step    float64 // nudge distance per keypress in millimeters
	recover bool    // load the newest autosave snapshot instead
}

// newEditCmd creates the edit command: a terminal editor that moves objects
// with the same drag engine the browser front end uses. Arrow keys nudge the
// grabbed object, Enter commits, Escape snaps back.
func newEditCmd() *cobra.Command {
	opts := editOpts{step: 10}

	cmd := &cobra.Command{
		Use:   "edit <project>",
		Short: "Edit the layout interactively in the terminal",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEdit(cmd, args[0], opts)
		},
	}

	cmd.Flags().StringVar(&opts.config, "config", defaultConfigPath, "config file path")
	cmd.Flags().Float64Var(&opts.step, "step", 10, "nudge distance per keypress in millimeters")
	cmd.Flags().BoolVar(&opts.recover, "recover", false, "load the newest autosave snapshot instead of the project file")

	return cmd
}

func runEdit(cmd *cobra.Command, projectPath string, opts editOpts) error {
	logger := loggerFromContext(cmd.Context())

	cfg, err := config.Load(opts.config)
	if err != nil {
		return err
	}

	p, err := project.Load(projectPath)
	if err != nil {
		return err
	}
	if opts.recover {
		store, err := project.NewSnapshotStore("", cfg.Autosave.Keep)
		if err != nil {
			return err
		}
		snap, err := store.Recover(p.Name)
		if err != nil {
			return err
		}
		if snap == nil {
			printWarning("no autosave snapshot for %s, using the project file", p.Name)
		} else {
			p = snap
			logger.Info("recovered from autosave", "updated_at", p.UpdatedAt)
		}
	}

	list, err := p.ObjectList()
	if err != nil {
		return err
	}

	constraints := p.Constraints
	if constraints == nil {
		c := cfg.Boundary
		constraints = &c
	}

	notifier := &captureNotifier{}
	eng, err := engine.New(p.Venue, list, engine.Options{
		Constraints:        constraints,
		OverlapWarnPercent: cfg.Overlap.WarnPercent,
		MinDragMm:          cfg.Drag.MinDistanceMm,
		Notifier:           notifier,
		Logger:             logger,
	})
	if err != nil {
		return err
	}

	model := newEditorModel(p, eng, notifier, projectPath, opts.step)
	final, err := tea.NewProgram(model).Run()
	if err != nil {
		return err
	}

	m, ok := final.(editorModel)
	if !ok || !m.dirty {
		return nil
	}
	p.SyncObjects(eng.Objects())
	if err := project.Save(p, projectPath); err != nil {
		return err
	}
	printSuccess("Saved %s", projectPath)
	return nil
}

// captureNotifier retains the engine's latest feedback for the status line.
type captureNotifier struct {
	current *feedback.Feedback
}

func (n *captureNotifier) Show(_ string, fb feedback.Feedback) { n.current = &fb }
func (n *captureNotifier) Hide(string)                         { n.current = nil }

// =============================================================================
// editorModel - Interactive layout editing
// =============================================================================

// editorModel is the bubbletea model for the layout editor. Navigation mode
// selects an object from the list; grab mode holds a drag session on it and
// nudges it with the arrow keys.
type editorModel struct {
	project  *project.Project
	engine   *engine.Engine
	notifier *captureNotifier
	path     string
	step     float64

	cursor   int
	grabbing bool
	dirty    bool
	status   string
}

func newEditorModel(p *project.Project, eng *engine.Engine, n *captureNotifier, path string, step float64) editorModel {
	return editorModel{project: p, engine: eng, notifier: n, path: path, step: step}
}

func (m editorModel) Init() tea.Cmd {
	return nil
}

// ids returns the object ids in stable display order.
func (m editorModel) ids() []string {
	all := m.engine.Objects().All()
	ids := make([]string, len(all))
	for i, o := range all {
		ids[i] = o.ID
	}
	sort.Strings(ids)
	return ids
}

func (m editorModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	if m.grabbing {
		return m.updateGrabbing(key)
	}
	return m.updateNavigating(key)
}

func (m editorModel) updateNavigating(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	ids := m.ids()
	switch key.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(ids)-1 {
			m.cursor++
		}
	case "enter", " ":
		if len(ids) == 0 {
			return m, nil
		}
		if err := m.engine.StartDrag(ids[m.cursor]); err != nil {
			m.status = err.Error()
			return m, nil
		}
		m.grabbing = true
		m.status = ""
	case "s":
		m.project.SyncObjects(m.engine.Objects())
		if err := project.Save(m.project, m.path); err != nil {
			m.status = err.Error()
		} else {
			m.dirty = false
			m.status = "saved"
		}
	case "d":
		if len(ids) == 0 {
			return m, nil
		}
		if err := m.engine.Objects().Remove(ids[m.cursor]); err != nil {
			m.status = err.Error()
			return m, nil
		}
		if m.cursor >= len(ids)-1 && m.cursor > 0 {
			m.cursor--
		}
		m.dirty = true
	}
	return m, nil
}

func (m editorModel) updateGrabbing(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	id, _ := m.engine.Dragging()
	o, err := m.engine.Objects().Get(id)
	if err != nil {
		m.status = err.Error()
		m.grabbing = false
		return m, nil
	}

	var delta geometry.Point
	switch key.String() {
	case "up", "k":
		delta.Y = -m.step
	case "down", "j":
		delta.Y = m.step
	case "left", "h":
		delta.X = -m.step
	case "right", "l":
		delta.X = m.step
	case "enter", " ":
		res, err := m.engine.EndDrag()
		if err != nil {
			m.status = err.Error()
		} else if res.Committed {
			m.dirty = true
		}
		m.grabbing = false
		return m, nil
	case "esc":
		if err := m.engine.CancelDrag(); err != nil {
			m.status = err.Error()
		}
		m.grabbing = false
		return m, nil
	case "q", "ctrl+c":
		_ = m.engine.CancelDrag()
		return m, tea.Quit
	default:
		return m, nil
	}

	target := geometry.Point{X: o.Position.X + delta.X, Y: o.Position.Y + delta.Y}
	if _, err := m.engine.MoveDrag(target); err != nil {
		m.status = err.Error()
	}
	return m, nil
}

func (m editorModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render(fmt.Sprintf("%s · %.0f × %.0f mm", m.project.Name, m.project.Venue.WidthMm, m.project.Venue.HeightMm)))
	b.WriteString("\n")
	if m.grabbing {
		b.WriteString(listDimStyle.Render("←↑↓→ nudge  ⏎ commit  esc snap back  q quit"))
	} else {
		b.WriteString(listDimStyle.Render("↑/↓ navigate  ⏎ grab  d delete  s save  q quit"))
	}
	b.WriteString("\n\n")

	ids := m.ids()
	if len(ids) == 0 {
		b.WriteString(listDimStyle.Render("  no objects placed"))
		b.WriteString("\n")
	}
	for i, id := range ids {
		o, err := m.engine.Objects().Get(id)
		if err != nil {
			continue
		}

		cursor := "  "
		style := listNormalStyle
		if i == m.cursor {
			style = listSelectedStyle
			cursor = "▸ "
			if m.grabbing {
				cursor = "✥ "
			}
		}

		line := fmt.Sprintf("%s%-10s %-28s (%7.1f, %7.1f)", cursor, o.Kind(), id, o.Position.X, o.Position.Y)
		b.WriteString(style.Render(line))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	switch {
	case m.notifier.current != nil:
		fb := m.notifier.current
		style := StyleDim
		switch fb.Severity {
		case feedback.SeverityWarning:
			style = StyleWarning
		case feedback.SeverityError:
			style = StyleError
		case feedback.SeveritySuccess:
			style = StyleSuccess
		}
		b.WriteString(style.Render(fb.Message))
		b.WriteString("\n")
	case m.status != "":
		b.WriteString(StyleDim.Render(m.status))
		b.WriteString("\n")
	}

	return b.String()
}
