package cmd

import (
	"github.com/jsphweid/pngme/constants"
	"github.com/jsphweid/pngme/file"
	"github.com/spf13/cobra"
)

var encodePassphrase string

func init() {
	encodeCmd.Flags().StringVarP(&encodePassphrase, "passphrase", "p", "", "seal the message with this passphrase (default $PNGME_PASSPHRASE)")
	rootCmd.AddCommand(encodeCmd)
}

var encodeCmd = &cobra.Command{
	Use:   "encode FILE TYPE MESSAGE [OUTPUT]",
	Short: "Adds a message chunk",
	Long: `Appends a chunk of the given 4-letter TYPE carrying MESSAGE. The
result is written to OUTPUT, or back to FILE when OUTPUT is omitted.`,
	Args: cobra.RangeArgs(3, 4),
	RunE: func(cmd *cobra.Command, args []string) error {
		output := args[0]
		if len(args) == 4 {
			output = args[3]
		}
		return encode(cmd, args[0], args[1], args[2], output)
	},
}

func encode(cmd *cobra.Command, input, typeText, message, output string) error {
	ctx := cmd.Context()
	data, err := file.Read(ctx, input)
	if err != nil {
		return err
	}

	passphrase := passphraseOrEnv(encodePassphrase)
	res, err := Encode(data, typeText, []byte(message), passphrase)
	if err != nil {
		return err
	}
	logger.Debug("encoded message",
		"type", typeText,
		"bytes", len(message),
		"sealed", passphrase != "",
		"output", output,
	)
	return file.Write(ctx, output, res)
}

func passphraseOrEnv(flag string) string {
	if flag != "" {
		return flag
	}
	return constants.GetPassphrase()
}
