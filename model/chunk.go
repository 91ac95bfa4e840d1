package model

// ChunkOverview is the printable summary of one chunk inside a container.
type ChunkOverview struct {
	Index      int    `json:"index" yaml:"index" cbor:"index"`
	Type       string `json:"type" yaml:"type" cbor:"type"`
	Length     uint32 `json:"length" yaml:"length" cbor:"length"`
	CRC        uint32 `json:"crc" yaml:"crc" cbor:"crc"`
	Critical   bool   `json:"critical" yaml:"critical" cbor:"critical"`
	Public     bool   `json:"public" yaml:"public" cbor:"public"`
	SafeToCopy bool   `json:"safe_to_copy" yaml:"safe_to_copy" cbor:"safe_to_copy"`
	Valid      bool   `json:"valid" yaml:"valid" cbor:"valid"`
}

type ContainerOverview struct {
	Size   int             `json:"size" yaml:"size" cbor:"size"`
	Digest string          `json:"blake3" yaml:"blake3" cbor:"blake3"`
	Chunks []ChunkOverview `json:"chunks" yaml:"chunks" cbor:"chunks"`
}
