package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/example/gridview"
)

// defaultSettingsPath returns the settings file location under the
// user's config directory.
func defaultSettingsPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		dir = "."
	}
	return filepath.Join(dir, "gridview", "settings.yaml")
}

// ConfigCmd returns the command reading and writing the two persisted
// presentation settings.
func ConfigCmd() *cobra.Command {
	var settingsPath string

	cmd := &cobra.Command{
		Use:   "config",
		Short: "Read or write presentation settings",
	}
	cmd.PersistentFlags().StringVar(&settingsPath, "settings", defaultSettingsPath(), "settings file path")

	get := &cobra.Command{
		Use:   "get",
		Short: "Print the current settings",
		RunE: func(cmd *cobra.Command, _ []string) error {
			settings, err := gridview.NewSettingsStore(settingsPath).Load()
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "theme: %s\nfont_family: %s\n", settings.Theme, settings.FontFamily)
			return nil
		},
	}

	set := &cobra.Command{
		Use:   "set <theme|font_family> <value>",
		Short: "Update one setting",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			key, value := args[0], args[1]
			if key != "theme" && key != "font_family" {
				return fmt.Errorf("unknown setting %q", key)
			}
			_, err := gridview.NewSettingsStore(settingsPath).Update(func(s *gridview.Settings) {
				if key == "theme" {
					s.Theme = value
				} else {
					s.FontFamily = value
				}
			})
			return err
		},
	}

	cmd.AddCommand(get, set)
	return cmd
}
