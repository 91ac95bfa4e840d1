package cmd

import (
	"fmt"

	"github.com/jsphweid/pngme/constants"
	"github.com/jsphweid/pngme/file"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(removeCmd)
}

var removeCmd = &cobra.Command{
	Use:   "remove FILE TYPE",
	Short: "Removes a chunk",
	Long:  `Removes the first chunk of the given TYPE and writes FILE back.`,
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return remove(cmd, args[0], args[1])
	},
}

func remove(cmd *cobra.Command, path, typeText string) error {
	ctx := cmd.Context()
	data, err := file.Read(ctx, path)
	if err != nil {
		return err
	}

	res, removed, err := Remove(data, typeText)
	if err != nil {
		return err
	}
	if err := file.Write(ctx, path, res); err != nil {
		return err
	}
	logger.Debug("removed chunk", "type", typeText, "length", removed.Length())

	// stdout carries the file itself when writing to "-"
	out := cmd.OutOrStdout()
	if path == constants.StdioLocation {
		out = cmd.ErrOrStderr()
	}
	fmt.Fprintf(out, "removed %s\n", removed)
	return nil
}
