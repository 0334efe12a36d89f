package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/neurodemon/neurodemon/internal/ui"
	"github.com/neurodemon/neurodemon/internal/version"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Long:  `Print detailed version information about neurodemon.`,
	Run: func(cmd *cobra.Command, args []string) {
		info := version.Resolve()
		fmt.Println(ui.Banner())
		fmt.Printf("Version:     %s\n", info.Version)
		fmt.Printf("Commit:      %s\n", info.Commit)
		fmt.Printf("Build Date:  %s\n", info.BuildDate)
		fmt.Printf("Disclaimer:  %s\n", info.Disclaimer)
		fmt.Printf("Go Version:  %s\n", info.GoVersion)
		fmt.Printf("OS/Arch:     %s\n", info.Platform)
	},
}
