package cmd

import (
	"fmt"

	"github.com/jsphweid/pngme/file"
	"github.com/spf13/cobra"
)

var (
	decodePassphrase string
	decodeRaw        bool
)

func init() {
	decodeCmd.Flags().StringVarP(&decodePassphrase, "passphrase", "p", "", "open a sealed message with this passphrase (default $PNGME_PASSPHRASE)")
	decodeCmd.Flags().BoolVar(&decodeRaw, "raw", false, "write the payload bytes unchanged")
	rootCmd.AddCommand(decodeCmd)
}

var decodeCmd = &cobra.Command{
	Use:   "decode FILE TYPE",
	Short: "Prints a message chunk",
	Long:  `Prints the message in the first chunk of the given TYPE.`,
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return decode(cmd, args[0], args[1])
	},
}

func decode(cmd *cobra.Command, input, typeText string) error {
	data, err := file.Read(cmd.Context(), input)
	if err != nil {
		return err
	}

	if decodeRaw {
		c, err := Find(data, typeText)
		if err != nil {
			return err
		}
		_, err = cmd.OutOrStdout().Write(c.Payload())
		return err
	}

	message, err := DecodeMessage(data, typeText, passphraseOrEnv(decodePassphrase))
	if err != nil {
		return err
	}
	logger.Debug("decoded message", "type", typeText, "chars", len(message))
	fmt.Fprintln(cmd.OutOrStdout(), message)
	return nil
}
