package cmd

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/fxamacker/cbor/v2"
	"github.com/jsphweid/pngme/model"
	"github.com/stretchr/testify/assert"
	"gopkg.in/yaml.v3"
)

func TestEncodeDecodeRemoveCommands(t *testing.T) {
	path := writeTestingPNG(t)
	assert := assert.New(t)

	_, err := runCommand(t, "encode", path, "RuSt", "a secret")
	assert.NoError(err)

	out, err := runCommand(t, "decode", path, "RuSt")
	assert.NoError(err)
	assert.Equal("a secret\n", out)

	out, err = runCommand(t, "remove", path, "RuSt")
	assert.NoError(err)
	assert.Contains(out, "removed RuSt length=8")

	_, err = runCommand(t, "decode", path, "RuSt")
	assert.ErrorIs(err, model.ErrChunkNotFound)

	data, err := os.ReadFile(path)
	assert.NoError(err)
	assert.Equal(testingPNGBytes(t), data)
}

func TestEncodeToOutputLeavesInput(t *testing.T) {
	path := writeTestingPNG(t)
	output := filepath.Join(t.TempDir(), "out.png")

	_, err := runCommand(t, "encode", path, "RuSt", "elsewhere", output)

	assert := assert.New(t)
	assert.NoError(err)

	data, err := os.ReadFile(path)
	assert.NoError(err)
	assert.Equal(testingPNGBytes(t), data)

	out, err := runCommand(t, "decode", output, "RuSt")
	assert.NoError(err)
	assert.Equal("elsewhere\n", out)
}

func TestDecodeRaw(t *testing.T) {
	path := writeTestingPNG(t)
	_, err := runCommand(t, "encode", path, "RuSt", "naïve")
	assert.NoError(t, err)

	out, err := runCommand(t, "decode", "--raw", path, "RuSt")
	assert.NoError(t, err)
	assert.Equal(t, "naïve", out)
}

func TestEncodeRejectsBadType(t *testing.T) {
	path := writeTestingPNG(t)
	_, err := runCommand(t, "encode", path, "Ru1t", "x")
	assert.ErrorIs(t, err, model.ErrInvalidTypeCode)
}

func TestEncodeWrongArgCount(t *testing.T) {
	_, err := runCommand(t, "encode", "only-a-file")
	assert.Error(t, err)
}

func TestPrintText(t *testing.T) {
	out, err := runCommand(t, "print", writeTestingPNG(t))

	assert := assert.New(t)
	assert.NoError(err)
	assert.Contains(out, "blake3: ")
	assert.Contains(out, "IHDR")
	assert.Contains(out, "IEND")
	assert.Contains(out, "ae426082")
	assert.Contains(out, "CPR-")
}

func TestPrintFormats(t *testing.T) {
	path := writeTestingPNG(t)
	want, err := Overview(testingPNGBytes(t))
	assert.NoError(t, err)

	decoders := map[string]func([]byte, any) error{
		"json": json.Unmarshal,
		"yaml": yaml.Unmarshal,
		"cbor": cbor.Unmarshal,
	}
	for format, unmarshal := range decoders {
		t.Run(format, func(t *testing.T) {
			out, err := runCommand(t, "print", "--format", format, path)
			assert.NoError(t, err)

			var got model.ContainerOverview
			assert.NoError(t, unmarshal([]byte(out), &got))
			assert.Equal(t, want, got)
		})
	}
}

func TestPrintUnknownFormat(t *testing.T) {
	_, err := runCommand(t, "print", "--format", "xml", writeTestingPNG(t))
	assert.Error(t, err)
}

func TestPrintNotAPNG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "notes.txt")
	assert.NoError(t, os.WriteFile(path, []byte("just some text"), 0644))

	_, err := runCommand(t, "print", path)
	assert.ErrorIs(t, err, model.ErrBadPreamble)
}
