package seal

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func init() {
	// keep scrypt fast in tests
	workFactor = 10
}

func TestSealOpen(t *testing.T) {
	sealed, err := Seal([]byte("meet at noon"), "hunter2")

	assert := assert.New(t)
	assert.NoError(err)
	assert.False(bytes.Contains(sealed, []byte("meet at noon")))

	opened, err := Open(sealed, "hunter2")
	assert.NoError(err)
	assert.Equal([]byte("meet at noon"), opened)
}

func TestOpenWrongPassphrase(t *testing.T) {
	sealed, err := Seal([]byte("meet at noon"), "hunter2")
	assert.NoError(t, err)

	_, err = Open(sealed, "hunter3")
	assert.ErrorIs(t, err, ErrCannotOpen)
}

func TestEmptyPassphrase(t *testing.T) {
	_, err := Seal([]byte("x"), "")
	assert.ErrorIs(t, err, ErrNoPassphrase)

	_, err = Open([]byte("x"), "")
	assert.ErrorIs(t, err, ErrNoPassphrase)
}

func TestOpenGarbage(t *testing.T) {
	_, err := Open([]byte("not an age file"), "hunter2")
	assert.ErrorIs(t, err, ErrCannotOpen)
}
