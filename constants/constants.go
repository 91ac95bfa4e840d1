package constants

import (
	"os"
	"strconv"
)

func GetLogLevel() string {
	return os.Getenv("PNGME_LOG_LEVEL")
}

func GetListenAddr() string {
	addr := os.Getenv("PNGME_ADDR")
	if addr != "" {
		return addr
	}
	return ":8080"
}

// GetS3Endpoint is empty unless talking to something other than AWS
// (minio, localstack).
func GetS3Endpoint() string {
	return os.Getenv("PNGME_S3_ENDPOINT")
}

func GetS3Region() string {
	region := os.Getenv("PNGME_S3_REGION")
	if region != "" {
		return region
	}
	return "us-east-1"
}

func GetPassphrase() string {
	return os.Getenv("PNGME_PASSPHRASE")
}

// GetMaxBodySize caps request bodies accepted by serve.
func GetMaxBodySize() int64 {
	size, err := strconv.ParseInt(os.Getenv("PNGME_MAX_BODY"), 10, 64)
	if err != nil || size <= 0 {
		return DefaultMaxBodySize
	}
	return size
}

const DefaultMaxBodySize = 32 * 1024 * 1024

const StdioLocation = "-"
