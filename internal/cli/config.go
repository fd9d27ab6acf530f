package cli

import (
	"fmt"
	"os"
	"os/exec"

	"github.com/spf13/cobra"

	"github.com/howells/stacksheet/internal/config"
)

// NewConfigCmd creates the config command.
func NewConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage stacksheet configuration",
		Long:  `Open the configuration file in your editor, print its path, or generate the JSON schema.`,
		RunE:  openConfig,
	}

	cmd.Flags().Bool("path", false, "Print the full path of the config file")
	cmd.Flags().Bool("schema", false, "Write the JSON schema next to the config file and print its path")

	return cmd
}

// openConfig opens the config file in the user's editor or prints its path.
func openConfig(cmd *cobra.Command, _ []string) error {
	if genSchema, _ := cmd.Flags().GetBool("schema"); genSchema {
		path, err := config.GenerateSchemaFile()
		if err != nil {
			return fmt.Errorf("failed to generate schema: %w", err)
		}
		fmt.Println(path)
		return nil
	}

	manager, err := config.NewManager()
	if err != nil {
		return fmt.Errorf("failed to initialize config: %w", err)
	}
	configPath, err := manager.GetConfigFile()
	if err != nil {
		return fmt.Errorf("failed to get config file path: %w", err)
	}

	if printPath, _ := cmd.Flags().GetBool("path"); printPath {
		fmt.Println(configPath)
		return nil
	}

	editor := os.Getenv("VISUAL")
	if editor == "" {
		editor = os.Getenv("EDITOR")
	}
	if editor == "" {
		return fmt.Errorf("no editor defined: set $VISUAL or $EDITOR environment variable")
	}

	editorCmd := exec.Command(editor, configPath)
	editorCmd.Stdin = os.Stdin
	editorCmd.Stdout = os.Stdout
	editorCmd.Stderr = os.Stderr

	if err := editorCmd.Run(); err != nil {
		return fmt.Errorf("failed to open editor: %w", err)
	}

	return nil
}
