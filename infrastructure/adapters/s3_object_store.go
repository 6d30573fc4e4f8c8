package adapters

import (
	"bytes"
	"context"
	"io"
	"strings"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/service/s3"

	"vocalize-lambda/application/ports/outbound"
)

type s3ObjectStore struct {
	s3Svc  *s3.S3
	logger outbound.LoggerPort
}

func NewS3ObjectStore(s3Svc *s3.S3, logger outbound.LoggerPort) outbound.ObjectStorePort {
	return &s3ObjectStore{
		s3Svc:  s3Svc,
		logger: logger,
	}
}

func (s *s3ObjectStore) Fetch(ctx context.Context, bucket string, key string) ([]byte, error) {
	getInput := &s3.GetObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
	}

	out, err := s.s3Svc.GetObjectWithContext(ctx, getInput)
	if err != nil {
		s.logger.ErrorWithFields(err, "Failed to get object from S3", map[string]interface{}{
			"bucket": bucket,
			"key":    key,
		})
		return nil, err
	}

	defer func(body io.ReadCloser) {
		closeErr := body.Close()
		if closeErr != nil {
			s.logger.Error(closeErr, "Failed to close S3 object body")
		}
	}(out.Body)

	payload, err := io.ReadAll(out.Body)
	if err != nil {
		s.logger.ErrorWithFields(err, "Failed to read S3 object body", map[string]interface{}{
			"bucket": bucket,
			"key":    key,
		})
		return nil, err
	}

	return payload, nil
}

func (s *s3ObjectStore) Store(ctx context.Context, bucket string, key string, body []byte) error {
	putInput := &s3.PutObjectInput{
		Bucket:        aws.String(bucket),
		Key:           aws.String(key),
		Body:          bytes.NewReader(body),
		ContentLength: aws.Int64(int64(len(body))),
	}

	_, err := s.s3Svc.PutObjectWithContext(ctx, putInput)
	if err != nil {
		s.logger.ErrorWithFields(err, "Failed to upload object to S3", map[string]interface{}{
			"bucket": bucket,
			"key":    key,
		})
		return err
	}

	s.logger.DebugWithFields("Uploaded object to S3", map[string]interface{}{
		"bucket": bucket,
		"key":    key,
		"bytes":  len(body),
	})

	return nil
}

func (s *s3ObjectStore) ListKeys(ctx context.Context, bucket string, prefix string, suffix string) ([]string, error) {
	listInput := &s3.ListObjectsV2Input{
		Bucket: aws.String(bucket),
		Prefix: aws.String(prefix),
	}

	var keys []string
	err := s.s3Svc.ListObjectsV2PagesWithContext(ctx, listInput, func(page *s3.ListObjectsV2Output, _ bool) bool {
		for _, object := range page.Contents {
			key := aws.StringValue(object.Key)
			if strings.HasSuffix(key, suffix) {
				keys = append(keys, key)
			}
		}
		return true
	})
	if err != nil {
		s.logger.ErrorWithFields(err, "Failed to list objects in S3", map[string]interface{}{
			"bucket": bucket,
			"prefix": prefix,
		})
		return nil, err
	}

	return keys, nil
}
