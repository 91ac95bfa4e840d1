package chunk

import (
	"encoding/binary"
	"fmt"
	"hash/crc32"
	"strings"

	"github.com/jsphweid/pngme/model"
	"golang.org/x/exp/slices"
)

// MaxLength is the largest payload a chunk may declare.
const MaxLength = 1<<31 - 1

// 4 for length, 4 for type, 4 for crc
const overhead = 12

// Chunk is a length-prefixed, typed, CRC-checked record. It is immutable
// once built and its checksum always matches its type and payload.
type Chunk struct {
	typ     Type
	payload []byte
	crc     uint32
}

// New builds a chunk and computes its checksum. The chunk takes ownership of
// payload; the caller must not modify it afterwards.
func New(t Type, payload []byte) *Chunk {
	return &Chunk{
		typ:     t,
		payload: payload,
		crc:     checksum(t, payload),
	}
}

// Parse reads one chunk from the start of b. Bytes after the checksum are
// ignored.
func Parse(b []byte) (*Chunk, error) {
	c, _, err := ParsePrefix(b)
	return c, err
}

// ParsePrefix reads one chunk from the start of b and returns it together
// with the number of bytes it occupied.
func ParsePrefix(b []byte) (*Chunk, int, error) {
	if len(b) < 8 {
		return nil, 0, fmt.Errorf("chunk header needs 8 bytes, have %d: %w", len(b), model.ErrTruncatedInput)
	}
	length := binary.BigEndian.Uint32(b[0:4])

	var code [4]byte
	copy(code[:], b[4:8])
	t, err := TypeFromBytes(code)
	if err != nil {
		return nil, 0, err
	}

	if length > MaxLength {
		return nil, 0, fmt.Errorf("%s declares %d bytes: %w", t, length, model.ErrLengthTooLarge)
	}

	n := int(length)
	size := overhead + n
	if len(b) < size {
		return nil, 0, fmt.Errorf("%s needs %d bytes, have %d: %w", t, size, len(b), model.ErrTruncatedInput)
	}

	payload := slices.Clone(b[8 : 8+n])
	stored := binary.BigEndian.Uint32(b[8+n : size])
	computed := checksum(t, payload)
	if stored != computed {
		return nil, 0, fmt.Errorf("%s stored %08x, computed %08x: %w", t, stored, computed, model.ErrChecksumMismatch)
	}

	return &Chunk{typ: t, payload: payload, crc: stored}, size, nil
}

func (c *Chunk) Length() uint32 {
	return uint32(len(c.payload))
}

func (c *Chunk) Type() Type {
	return c.typ
}

// Payload returns a copy of the chunk's data.
func (c *Chunk) Payload() []byte {
	return slices.Clone(c.payload)
}

func (c *Chunk) Checksum() uint32 {
	return c.crc
}

// PayloadText maps every payload byte to the code point of the same value
// (Latin-1), so arbitrary binary payloads always produce a string.
// Non-ASCII bytes come out as two-byte UTF-8 sequences.
func (c *Chunk) PayloadText() string {
	var sb strings.Builder
	sb.Grow(len(c.payload))
	for _, b := range c.payload {
		sb.WriteRune(rune(b))
	}
	return sb.String()
}

// Bytes serializes the chunk as length, type, payload, crc.
func (c *Chunk) Bytes() []byte {
	out := make([]byte, overhead+len(c.payload))
	binary.BigEndian.PutUint32(out[0:4], c.Length())
	code := c.typ.Bytes()
	copy(out[4:8], code[:])
	copy(out[8:], c.payload)
	binary.BigEndian.PutUint32(out[8+len(c.payload):], c.crc)
	return out
}

func (c *Chunk) String() string {
	return fmt.Sprintf("%s length=%d crc=%08x", c.typ, c.Length(), c.crc)
}

// checksum is CRC-32 (ISO-HDLC) over the type code followed by the payload.
func checksum(t Type, payload []byte) uint32 {
	h := crc32.NewIEEE()
	code := t.Bytes()
	h.Write(code[:])
	h.Write(payload)
	return h.Sum32()
}
