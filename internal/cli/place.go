package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/KazukiMatoba/venue-layout-editor-sub001/pkg/engine"
	"github.com/KazukiMatoba/venue-layout-editor-sub001/pkg/object"
)

// placeOpts holds the command-line flags for the place command.
type placeOpts struct {
	at       string  // target position as X,Y in millimeters
	size     string  // object dimensions as WxH
	radius   float64 // circle radius
	rotation float64 // rectangle rotation in degrees
	text     string  // text box content
	config   string  // config file path
	fill     string  // fill color
	stroke   string  // stroke color
}

// newPlaceCmd creates the place command. Placement runs the same validation
// as an interactive click: the position is rejected when the object would
// cross the venue boundary or overlap another object beyond the tolerance,
// and the nearest valid position is suggested instead.
func newPlaceCmd() *cobra.Command {
	var opts placeOpts

	cmd := &cobra.Command{
		Use:   "place <project> <kind>",
		Short: "Place an object on the floor plan",
		Long: `Place an object on the floor plan at a given position.

Kinds and their shape flags:
  rectangle  --size WxH [--rotation DEG]
  circle     --radius R
  text       --size WxH [--text STRING]

All lengths are millimeters. Positions are object centers.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPlace(cmd, args[0], args[1], opts)
		},
	}

	cmd.Flags().StringVar(&opts.at, "at", "", "position as X,Y in millimeters (required)")
	cmd.Flags().StringVar(&opts.size, "size", "", "object dimensions as WxH in millimeters")
	cmd.Flags().Float64Var(&opts.radius, "radius", 0, "circle radius in millimeters")
	cmd.Flags().Float64Var(&opts.rotation, "rotation", 0, "rectangle rotation in degrees")
	cmd.Flags().StringVar(&opts.text, "text", "", "text box content")
	cmd.Flags().StringVar(&opts.config, "config", defaultConfigPath, "config file path")
	cmd.Flags().StringVar(&opts.fill, "fill", "", "fill color")
	cmd.Flags().StringVar(&opts.stroke, "stroke", "", "stroke color")
	_ = cmd.MarkFlagRequired("at")

	return cmd
}

func runPlace(cmd *cobra.Command, projectPath, kind string, opts placeOpts) error {
	pos, err := parsePoint(opts.at)
	if err != nil {
		return err
	}
	size, err := parseSizeParams(kind, opts.size, opts.text, opts.radius, opts.rotation)
	if err != nil {
		return err
	}

	sess, err := openSession(cmd.Context(), projectPath, opts.config)
	if err != nil {
		return err
	}

	res, err := sess.engine.PlaceObject(engine.PlacementRequest{
		Size:  size,
		Style: object.Style{Fill: opts.fill, Stroke: opts.stroke},
	}, pos)
	if err != nil {
		return err
	}

	if res.Placed == nil {
		printError("%s", res.Feedback.Message)
		if res.Feedback.SuggestedPosition != nil {
			s := res.Feedback.SuggestedPosition
			printNextStep("Nearest valid position", fmt.Sprintf("--at %g,%g", s.X, s.Y))
		}
		return fmt.Errorf("placement rejected")
	}

	if err := sess.save(); err != nil {
		return err
	}

	printSuccess("Placed %s %s at (%g, %g)", kind, StyleHighlight.Render(res.Placed.ID), res.Placed.Position.X, res.Placed.Position.Y)
	for _, w := range res.Check.Boundary.Warnings() {
		printWarning("%.1f mm from the %s edge", w.MagnitudeMm, w.Side)
	}
	for _, o := range res.Check.Overlap.Overlaps {
		printWarning("overlaps %s by %.1f%%", o.OtherID, o.Percent)
	}
	return nil
}
