package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// moveOpts holds the command-line flags for the move command.
type moveOpts struct {
	to     string // target position as X,Y in millimeters
	config string // config file path
}

// newMoveCmd creates the move command. A move runs the full drag lifecycle
// against the target position: the position is clamped to the boundary, and
// the commit is rejected (the object stays put) when it would overlap
// another object beyond the tolerance.
func newMoveCmd() *cobra.Command {
	var opts moveOpts

	cmd := &cobra.Command{
		Use:   "move <project> <object-id>",
		Short: "Move a placed object",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMove(cmd, args[0], args[1], opts)
		},
	}

	cmd.Flags().StringVar(&opts.to, "to", "", "target position as X,Y in millimeters (required)")
	cmd.Flags().StringVar(&opts.config, "config", defaultConfigPath, "config file path")
	_ = cmd.MarkFlagRequired("to")

	return cmd
}

func runMove(cmd *cobra.Command, projectPath, id string, opts moveOpts) error {
	target, err := parsePoint(opts.to)
	if err != nil {
		return err
	}

	sess, err := openSession(cmd.Context(), projectPath, opts.config)
	if err != nil {
		return err
	}

	if err := sess.engine.StartDrag(id); err != nil {
		return err
	}
	moveRes, err := sess.engine.MoveDrag(target)
	if err != nil {
		_ = sess.engine.CancelDrag()
		return err
	}
	endRes, err := sess.engine.EndDrag()
	if err != nil {
		return err
	}

	if !endRes.Committed {
		if endRes.Feedback != nil {
			printError("%s", endRes.Feedback.Message)
			if endRes.Feedback.SuggestedPosition != nil {
				s := endRes.Feedback.SuggestedPosition
				printNextStep("Nearest valid position", fmt.Sprintf("--to %g,%g", s.X, s.Y))
			}
		} else {
			printInfo("Move too small, object left at (%g, %g)", endRes.Position.X, endRes.Position.Y)
		}
		if endRes.Feedback != nil {
			return fmt.Errorf("move rejected")
		}
		return nil
	}

	if err := sess.save(); err != nil {
		return err
	}

	printSuccess("Moved %s to (%g, %g)", StyleHighlight.Render(id), endRes.Position.X, endRes.Position.Y)
	if moveRes.Limited {
		printWarning("position was limited by the venue boundary on %v", moveRes.LimitedAxes)
	}
	return nil
}
