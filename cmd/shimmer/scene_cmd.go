package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newSceneCmd(root *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "scene",
		Short: "Print the effective scene as YAML",
		Long: `Prints the scene after flag overrides. Redirect the output to a file to
start a custom scene from the built-in one.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			scene, err := root.loadScene(cmd)
			if err != nil {
				return err
			}
			_, err = fmt.Fprint(cmd.OutOrStdout(), scene.String())
			return err
		},
	}
}
