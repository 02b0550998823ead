package cli

import (
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/KazukiMatoba/venue-layout-editor-sub001/pkg/render"
)

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	output   string  // output file path (stdout if empty)
	validate bool    // color objects by validation result
	labels   bool    // draw object ids
	margin   bool    // draw the margin guide
	scale    float64 // pixels per millimeter
	config   string  // config file path
}

// newRenderCmd creates the render command, which draws the layout as SVG.
// One SVG user unit is one millimeter.
func newRenderCmd() *cobra.Command {
	opts := renderOpts{scale: 1}

	cmd := &cobra.Command{
		Use:   "render <project>",
		Short: "Render the layout as an SVG floor plan",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(cmd, args[0], opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (stdout if omitted)")
	cmd.Flags().BoolVar(&opts.validate, "validate", false, "color objects by validation result")
	cmd.Flags().BoolVar(&opts.labels, "labels", false, "draw object ids")
	cmd.Flags().BoolVar(&opts.margin, "margin", false, "draw the boundary margin guide")
	cmd.Flags().Float64Var(&opts.scale, "scale", 1, "output pixels per millimeter")
	cmd.Flags().StringVar(&opts.config, "config", defaultConfigPath, "config file path")

	return cmd
}

func runRender(cmd *cobra.Command, projectPath string, opts renderOpts) error {
	sess, err := openSession(cmd.Context(), projectPath, opts.config)
	if err != nil {
		return err
	}

	svgOpts := []render.SVGOption{render.WithScale(opts.scale)}
	if opts.labels {
		svgOpts = append(svgOpts, render.WithLabels())
	}
	if opts.margin {
		svgOpts = append(svgOpts, render.WithMarginGuide(sess.engine.Constraints()))
	}
	if opts.validate {
		checks, err := sess.engine.ValidateAll()
		if err != nil {
			return err
		}
		svgOpts = append(svgOpts, render.WithValidation(checks))
	}

	out := render.RenderSVG(sess.project.Venue, sess.engine.Objects(), svgOpts...)

	if opts.output == "" {
		_, err := cmd.OutOrStdout().Write(out)
		return err
	}
	if !strings.HasSuffix(opts.output, ".svg") {
		opts.output += ".svg"
	}
	if err := os.WriteFile(opts.output, out, 0o644); err != nil {
		return err
	}
	printSuccess("Rendered %d objects", sess.engine.Objects().Len())
	printFile(opts.output)
	return nil
}
