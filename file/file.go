package file

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/jsphweid/pngme/constants"
)

// Read loads the whole object at location. A location is a local path,
// "-" for stdin, or s3://bucket/key.
func Read(ctx context.Context, location string) ([]byte, error) {
	switch {
	case location == constants.StdioLocation:
		return io.ReadAll(os.Stdin)
	case isS3(location):
		return readS3(ctx, location)
	}
	data, err := os.ReadFile(location)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", location, err)
	}
	return data, nil
}

// Write replaces the object at location with data. Local files are written
// to a temporary sibling first and renamed into place.
func Write(ctx context.Context, location string, data []byte) error {
	switch {
	case location == constants.StdioLocation:
		_, err := os.Stdout.Write(data)
		return err
	case isS3(location):
		return writeS3(ctx, location, data)
	}
	return writeLocal(location, data)
}

func writeLocal(path string, data []byte) error {
	mode := os.FileMode(0644)
	if info, err := os.Stat(path); err == nil {
		mode = info.Mode().Perm()
	}

	tmp := filepath.Join(filepath.Dir(path), "."+filepath.Base(path)+"."+uuid.New().String()+".tmp")
	if err := os.WriteFile(tmp, data, mode); err != nil {
		return fmt.Errorf("writing %s: %w", tmp, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("replacing %s: %w", path, err)
	}
	return nil
}

func isS3(location string) bool {
	return strings.HasPrefix(location, "s3://")
}
