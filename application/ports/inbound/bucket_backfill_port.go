package inbound

import "context"

type BackfillParams struct {
	Prefix string
}

type BackfillSummary struct {
	RunID     string
	Converted int
	Failed    int
}

// BucketBackfillPort re-converts every text object already sitting in the
// source bucket, for deployments created after objects were uploaded.
type BucketBackfillPort interface {
	Run(ctx context.Context, params BackfillParams) (*BackfillSummary, error)
}
