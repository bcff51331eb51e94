package cli

import (
	"github.com/spf13/cobra"
)

// checkCmd verifies the destination is current without rewriting it
var checkCmd = &cobra.Command{
	Use:   "check <source> <destination>",
	Short: "Check whether generated types are up to date",
	Long: `Check regenerates the types in memory and compares them with the
destination file, without writing anything. Useful in CI to catch a
schema change that was not followed by a regeneration.

Exit codes:
  0 - destination matches the source
  1 - destination is missing or out of date, or the check failed`,
	Args: cobra.ExactArgs(2),
	RunE: runCheck,
}

func runCheck(cmd *cobra.Command, args []string) error {
	cmd.SilenceUsage = true

	runner, err := buildRunner()
	if err != nil {
		return err
	}

	runner.diagnostics.Section("Checking generated types...")
	return runner.Check(args[0], args[1])
}
