package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/jsphweid/pngme/chunk"
	"github.com/jsphweid/pngme/png"
)

func testingPNGBytes(t *testing.T) []byte {
	t.Helper()
	var chunks []*chunk.Chunk
	for _, c := range []struct{ code, data string }{
		{"IHDR", "\x00\x00\x00\x01\x00\x00\x00\x01\x08\x02\x00\x00\x00"},
		{"IDAT", "\x78\x9c\x63\x60\x60\x60\x00\x00\x00\x04\x00\x01"},
		{"IEND", ""},
	} {
		typ, err := chunk.ParseType(c.code)
		if err != nil {
			t.Fatal(err)
		}
		chunks = append(chunks, chunk.New(typ, []byte(c.data)))
	}
	return png.New(chunks...).Bytes()
}

func writeTestingPNG(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "in.png")
	if err := os.WriteFile(path, testingPNGBytes(t), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

// runCommand executes the root command with args and returns its stdout.
func runCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	encodePassphrase, decodePassphrase, decodeRaw, printFormat = "", "", false, "text"

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}
