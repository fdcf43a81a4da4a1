package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/splashlog/splash/internal/app"
)

func init() {
	rootCmd.AddCommand(cmdPlugins)
	cmdPlugins.AddCommand(cmdPluginsList, cmdPluginsDiscover, cmdPluginsFind)
}

var cmdPlugins = &cobra.Command{
	Use:   "plugins",
	Short: "Inspect registered and discoverable format plugins",
}

var cmdPluginsList = &cobra.Command{
	Use:   "list",
	Short: "List registered format plugins",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return app.ListPlugins(os.Stdout, rootOptions())
	},
}

var cmdPluginsDiscover = &cobra.Command{
	Use:   "discover",
	Short: "Scan the search paths for candidate plugin files",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return app.Discover(os.Stdout, rootOptions())
	},
}

var cmdPluginsFind = &cobra.Command{
	Use:   "find <name>",
	Short: "Locate a candidate plugin file by name",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return app.Find(os.Stdout, rootOptions(), args[0])
	},
}
