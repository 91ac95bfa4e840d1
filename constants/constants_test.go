package constants

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaults(t *testing.T) {
	t.Setenv("PNGME_ADDR", "")
	t.Setenv("PNGME_S3_REGION", "")
	t.Setenv("PNGME_MAX_BODY", "")

	assert := assert.New(t)
	assert.Equal(":8080", GetListenAddr())
	assert.Equal("us-east-1", GetS3Region())
	assert.Equal(int64(DefaultMaxBodySize), GetMaxBodySize())
}

func TestOverrides(t *testing.T) {
	t.Setenv("PNGME_ADDR", "127.0.0.1:9000")
	t.Setenv("PNGME_S3_REGION", "eu-west-1")
	t.Setenv("PNGME_MAX_BODY", "1024")

	assert := assert.New(t)
	assert.Equal("127.0.0.1:9000", GetListenAddr())
	assert.Equal("eu-west-1", GetS3Region())
	assert.Equal(int64(1024), GetMaxBodySize())
}

func TestBadMaxBodyFallsBack(t *testing.T) {
	t.Setenv("PNGME_MAX_BODY", "lots")
	assert.Equal(t, int64(DefaultMaxBodySize), GetMaxBodySize())
}
