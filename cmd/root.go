package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "coursetable",
	Short: "coursetable builds and checks university course timetables",
	Long: `Coursetable loads a course catalog, assembles timetables for a
semester, and reports whether they are free of conflicts and structurally
sound. It can run as a one-off command or serve an api`,
}

func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func catalogFlag(cmd *cobra.Command) {
	cmd.Flags().StringP("catalog", "c", "", "directory of course catalog json files")
}
