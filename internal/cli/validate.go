package cli

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"
)

// newValidateCmd creates the validate command. It re-checks every placed
// object against the venue boundary and against the other objects, and exits
// non-zero when any object is in violation. Useful after hand-editing a
// project file or changing the constraints.
func newValidateCmd() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "validate <project>",
		Short: "Validate every object in a layout",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(cmd, args[0], configPath)
		},
	}

	cmd.Flags().StringVar(&configPath, "config", defaultConfigPath, "config file path")
	return cmd
}

func runValidate(cmd *cobra.Command, projectPath, configPath string) error {
	logger := loggerFromContext(cmd.Context())
	prog := newProgress(logger)

	sess, err := openSession(cmd.Context(), projectPath, configPath)
	if err != nil {
		return err
	}

	checks, err := sess.engine.ValidateAll()
	if err != nil {
		return err
	}

	ids := make([]string, 0, len(checks))
	for id := range checks {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	var warnings, violations, invalid int
	for _, id := range ids {
		check := checks[id]
		if !check.Valid {
			invalid++
		}
		for _, v := range check.Boundary.Errors() {
			violations++
			printError("%s crosses the %s boundary by %.1f mm", id, v.Side, v.MagnitudeMm)
		}
		for _, v := range check.Boundary.Warnings() {
			warnings++
			printWarning("%s is %.1f mm from the %s edge", id, v.MagnitudeMm, v.Side)
		}
		for _, o := range check.Overlap.Overlaps {
			if o.Percent > sess.cfg.Overlap.WarnPercent {
				violations++
				printError("%s overlaps %s by %.1f%%", id, o.OtherID, o.Percent)
			} else {
				warnings++
				printWarning("%s overlaps %s by %.1f%%", id, o.OtherID, o.Percent)
			}
		}
	}

	printStats(len(checks), warnings, violations)
	prog.done(fmt.Sprintf("Validated %d objects", len(checks)))

	if invalid > 0 {
		return fmt.Errorf("%d objects in violation", invalid)
	}
	printSuccess("Layout is valid")
	return nil
}
