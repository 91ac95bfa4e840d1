package file

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/jsphweid/pngme/constants"
)

func parseS3(location string) (bucket string, key string, err error) {
	rest := strings.TrimPrefix(location, "s3://")
	bucket, key, ok := strings.Cut(rest, "/")
	if !ok || bucket == "" || key == "" {
		return "", "", fmt.Errorf("%q is not of the form s3://bucket/key", location)
	}
	return bucket, key, nil
}

func newS3Client() (*s3.S3, error) {
	config := &aws.Config{
		Region: aws.String(constants.GetS3Region()),
	}
	if endpoint := constants.GetS3Endpoint(); endpoint != "" {
		config.Endpoint = aws.String(endpoint)
		config.S3ForcePathStyle = aws.Bool(true)
	}
	sess, err := session.NewSession(config)
	if err != nil {
		return nil, fmt.Errorf("creating S3 session: %w", err)
	}
	return s3.New(sess), nil
}

func readS3(ctx context.Context, location string) ([]byte, error) {
	bucket, key, err := parseS3(location)
	if err != nil {
		return nil, err
	}
	client, err := newS3Client()
	if err != nil {
		return nil, err
	}
	out, err := client.GetObjectWithContext(ctx, &s3.GetObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return nil, fmt.Errorf("fetching %s: %w", location, err)
	}
	defer out.Body.Close()

	data, err := io.ReadAll(out.Body)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", location, err)
	}
	return data, nil
}

func writeS3(ctx context.Context, location string, data []byte) error {
	bucket, key, err := parseS3(location)
	if err != nil {
		return err
	}
	client, err := newS3Client()
	if err != nil {
		return err
	}
	_, err = client.PutObjectWithContext(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String("image/png"),
	})
	if err != nil {
		return fmt.Errorf("uploading %s: %w", location, err)
	}
	return nil
}
