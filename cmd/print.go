package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/fxamacker/cbor/v2"
	"github.com/jsphweid/pngme/file"
	"github.com/jsphweid/pngme/model"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var printFormat string

func init() {
	printCmd.Flags().StringVarP(&printFormat, "format", "f", "text", "output format: text, json, yaml or cbor")
	rootCmd.AddCommand(printCmd)
}

var printCmd = &cobra.Command{
	Use:   "print FILE",
	Short: "Lists every chunk",
	Long:  `Lists every chunk in FILE with its type flags, length and CRC.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := file.Read(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		overview, err := Overview(data)
		if err != nil {
			return err
		}
		return writeOverview(cmd.OutOrStdout(), overview, printFormat)
	},
}

func writeOverview(w io.Writer, o model.ContainerOverview, format string) error {
	switch format {
	case "text":
		return writeOverviewText(w, o)
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(o)
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(o); err != nil {
			return err
		}
		return enc.Close()
	case "cbor":
		b, err := cbor.Marshal(o)
		if err != nil {
			return err
		}
		_, err = w.Write(b)
		return err
	}
	return fmt.Errorf("unknown format %q", format)
}

func writeOverviewText(w io.Writer, o model.ContainerOverview) error {
	fmt.Fprintf(w, "size: %d bytes\nblake3: %s\n\n", o.Size, o.Digest)
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "#\tTYPE\tLENGTH\tCRC\tFLAGS")
	for _, c := range o.Chunks {
		fmt.Fprintf(tw, "%d\t%s\t%d\t%08x\t%s\n", c.Index, c.Type, c.Length, c.CRC, flags(c))
	}
	return tw.Flush()
}

func flags(c model.ChunkOverview) string {
	res := []byte("----")
	if c.Critical {
		res[0] = 'C'
	}
	if c.Public {
		res[1] = 'P'
	}
	if c.Valid {
		res[2] = 'R'
	}
	if c.SafeToCopy {
		res[3] = 'S'
	}
	return string(res)
}
