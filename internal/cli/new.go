package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/KazukiMatoba/venue-layout-editor-sub001/pkg/project"
	"github.com/KazukiMatoba/venue-layout-editor-sub001/pkg/venue"
)

// newOpts holds the command-line flags for the new command.
type newOpts struct {
	size   string // venue dimensions as WxH in millimeters
	svg    string // SVG drawing to take the dimensions from
	output string // project file path
}

// newNewCmd creates the new command. The venue outline comes either from
// explicit dimensions (--size 800x600) or from an SVG drawing (--svg
// floor.svg), whose width/height or viewBox is read as millimeters.
func newNewCmd() *cobra.Command {
	var opts newOpts

	cmd := &cobra.Command{
		Use:   "new <name>",
		Short: "Create a venue layout project",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runNew(cmd, args[0], opts)
		},
	}

	cmd.Flags().StringVar(&opts.size, "size", "", "venue dimensions as WxH in millimeters")
	cmd.Flags().StringVar(&opts.svg, "svg", "", "SVG drawing to read the venue dimensions from")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "project file path (defaults to <name>.json)")

	return cmd
}

func runNew(cmd *cobra.Command, name string, opts newOpts) error {
	logger := loggerFromContext(cmd.Context())

	var outline venue.Outline
	switch {
	case opts.svg != "" && opts.size != "":
		return fmt.Errorf("--size and --svg are mutually exclusive")
	case opts.svg != "":
		o, err := venue.LoadSVG(opts.svg)
		if err != nil {
			return err
		}
		outline = o
		logger.Debug("venue dimensions from svg", "path", opts.svg, "width_mm", o.WidthMm, "height_mm", o.HeightMm)
	case opts.size != "":
		w, h, err := parseDims(opts.size)
		if err != nil {
			return err
		}
		outline = venue.Outline{WidthMm: w, HeightMm: h}
	default:
		return fmt.Errorf("either --size or --svg is required")
	}

	p, err := project.New(name, outline)
	if err != nil {
		return err
	}

	path := opts.output
	if path == "" {
		path = name + ".json"
	}
	if err := project.Save(p, path); err != nil {
		return err
	}

	printSuccess("Created project %s (%.0f × %.0f mm)", StyleHighlight.Render(name), outline.WidthMm, outline.HeightMm)
	printFile(path)
	printNextStep("Place an object", fmt.Sprintf("venueplan place %s rectangle --size 1800x750 --at 2000,1500", path))
	return nil
}
