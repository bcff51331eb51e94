package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/achuchra/ts-types-from-strapi/internal/version"
)

// versionCmd prints build information
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println(version.Get().String())
	},
}
