package png

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/jsphweid/pngme/chunk"
	"github.com/jsphweid/pngme/model"
	"golang.org/x/exp/slices"
)

// Header is the fixed signature every serialized container starts with.
var Header = [8]byte{137, 80, 78, 71, 13, 10, 26, 10}

// PNG is an ordered list of chunks. Chunk types need not be unique; lookups
// and removals act on the first match in order.
type PNG struct {
	chunks []*chunk.Chunk
}

func New(chunks ...*chunk.Chunk) *PNG {
	return &PNG{chunks: slices.Clone(chunks)}
}

// Parse checks the header and reads chunks back to back until b is used up.
// The first malformed chunk fails the whole parse.
func Parse(b []byte) (*PNG, error) {
	if len(b) < len(Header) || !bytes.Equal(b[:len(Header)], Header[:]) {
		return nil, fmt.Errorf("first %d bytes are not the PNG signature: %w", len(Header), model.ErrBadPreamble)
	}

	p := &PNG{}
	rest := b[len(Header):]
	offset := len(Header)
	for len(rest) > 0 {
		c, n, err := chunk.ParsePrefix(rest)
		if err != nil {
			return nil, fmt.Errorf("chunk %d at offset %d: %w", len(p.chunks), offset, err)
		}
		p.chunks = append(p.chunks, c)
		rest = rest[n:]
		offset += n
	}
	return p, nil
}

func (p *PNG) AppendChunk(c *chunk.Chunk) {
	p.chunks = append(p.chunks, c)
}

// ChunkByType returns the first chunk whose type is typeText, or nil. An
// invalid type code is reported as not found.
func (p *PNG) ChunkByType(typeText string) *chunk.Chunk {
	i := p.index(typeText)
	if i < 0 {
		return nil
	}
	return p.chunks[i]
}

// RemoveChunk removes and returns the first chunk whose type is typeText.
func (p *PNG) RemoveChunk(typeText string) (*chunk.Chunk, error) {
	i := p.index(typeText)
	if i < 0 {
		return nil, fmt.Errorf("%q: %w", typeText, model.ErrChunkNotFound)
	}
	c := p.chunks[i]
	p.chunks = slices.Delete(p.chunks, i, i+1)
	return c, nil
}

// Chunks returns the chunks in order. The slice is a copy; the chunks are
// shared.
func (p *PNG) Chunks() []*chunk.Chunk {
	return slices.Clone(p.chunks)
}

func (p *PNG) Bytes() []byte {
	size := len(Header)
	for _, c := range p.chunks {
		size += 12 + int(c.Length())
	}
	out := make([]byte, 0, size)
	out = append(out, Header[:]...)
	for _, c := range p.chunks {
		out = append(out, c.Bytes()...)
	}
	return out
}

func (p *PNG) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "PNG with %d chunks\n", len(p.chunks))
	for i, c := range p.chunks {
		fmt.Fprintf(&sb, "%4d  %s\n", i, c)
	}
	return sb.String()
}

func (p *PNG) index(typeText string) int {
	t, err := chunk.ParseType(typeText)
	if err != nil {
		return -1
	}
	return slices.IndexFunc(p.chunks, func(c *chunk.Chunk) bool {
		return c.Type() == t
	})
}
