package config

import (
	"fmt"
	"os"
)

type BucketConfig struct {
	SourceBucket      string
	DestinationBucket string
}

func GetBucketConfig() (*BucketConfig, error) {
	sourceBucket := os.Getenv("SOURCE_BUCKET")
	if sourceBucket == "" {
		return nil, fmt.Errorf("SOURCE_BUCKET must be set")
	}

	destinationBucket := os.Getenv("DESTINATION_BUCKET")
	if destinationBucket == "" {
		return nil, fmt.Errorf("DESTINATION_BUCKET must be set")
	}

	return &BucketConfig{
		SourceBucket:      sourceBucket,
		DestinationBucket: destinationBucket,
	}, nil
}
