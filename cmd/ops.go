package cmd

import (
	"encoding/hex"
	"fmt"

	"github.com/jsphweid/pngme/chunk"
	"github.com/jsphweid/pngme/model"
	"github.com/jsphweid/pngme/png"
	"github.com/jsphweid/pngme/seal"
	"github.com/zeebo/blake3"
)

// Encode appends a chunk of type typeText holding message to the container
// in data. A non-empty passphrase seals the message first.
func Encode(data []byte, typeText string, message []byte, passphrase string) ([]byte, error) {
	typ, err := chunk.ParseType(typeText)
	if err != nil {
		return nil, err
	}
	if !typ.IsValid() {
		return nil, fmt.Errorf("%s has a lowercase reserved bit: %w", typ, model.ErrInvalidTypeCode)
	}

	p, err := png.Parse(data)
	if err != nil {
		return nil, err
	}

	payload := message
	if passphrase != "" {
		payload, err = seal.Seal(message, passphrase)
		if err != nil {
			return nil, err
		}
	}
	if len(payload) > chunk.MaxLength {
		return nil, fmt.Errorf("message is %d bytes: %w", len(payload), model.ErrLengthTooLarge)
	}

	p.AppendChunk(chunk.New(typ, payload))
	return p.Bytes(), nil
}

// Find returns the first chunk of type typeText in the container.
func Find(data []byte, typeText string) (*chunk.Chunk, error) {
	p, err := png.Parse(data)
	if err != nil {
		return nil, err
	}
	c := p.ChunkByType(typeText)
	if c == nil {
		return nil, fmt.Errorf("%q: %w", typeText, model.ErrChunkNotFound)
	}
	return c, nil
}

// DecodeMessage returns the message held by the first chunk of type
// typeText. Unsealed payloads are read one byte per character.
func DecodeMessage(data []byte, typeText string, passphrase string) (string, error) {
	c, err := Find(data, typeText)
	if err != nil {
		return "", err
	}
	if passphrase == "" {
		return c.PayloadText(), nil
	}
	plaintext, err := seal.Open(c.Payload(), passphrase)
	if err != nil {
		return "", err
	}
	return string(plaintext), nil
}

// Remove drops the first chunk of type typeText and returns the new
// container bytes along with the removed chunk.
func Remove(data []byte, typeText string) ([]byte, *chunk.Chunk, error) {
	p, err := png.Parse(data)
	if err != nil {
		return nil, nil, err
	}
	removed, err := p.RemoveChunk(typeText)
	if err != nil {
		return nil, nil, err
	}
	return p.Bytes(), removed, nil
}

func Overview(data []byte) (model.ContainerOverview, error) {
	p, err := png.Parse(data)
	if err != nil {
		return model.ContainerOverview{}, err
	}
	digest := blake3.Sum256(data)
	res := model.ContainerOverview{
		Size:   len(data),
		Digest: hex.EncodeToString(digest[:]),
		Chunks: make([]model.ChunkOverview, 0, len(p.Chunks())),
	}
	for i, c := range p.Chunks() {
		res.Chunks = append(res.Chunks, chunkOverview(i, c))
	}
	return res, nil
}

func chunkOverview(index int, c *chunk.Chunk) model.ChunkOverview {
	t := c.Type()
	return model.ChunkOverview{
		Index:      index,
		Type:       t.String(),
		Length:     c.Length(),
		CRC:        c.Checksum(),
		Critical:   t.IsCritical(),
		Public:     t.IsPublic(),
		SafeToCopy: t.IsSafeToCopy(),
		Valid:      t.IsValid(),
	}
}
