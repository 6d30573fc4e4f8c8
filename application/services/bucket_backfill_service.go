package services

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"vocalize-lambda/application/ports/inbound"
	"vocalize-lambda/application/ports/outbound"
	"vocalize-lambda/channel_utils"
	"vocalize-lambda/config"
	"vocalize-lambda/domain"
)

const backfillWorkers = 8

type bucketBackfillService struct {
	logger       outbound.LoggerPort
	converter    inbound.TextConverterPort
	objectStore  outbound.ObjectStorePort
	workerPool   outbound.TaskDispatcher
	bucketConfig *config.BucketConfig
}

func NewBucketBackfillService(
	logger outbound.LoggerPort,
	converter inbound.TextConverterPort,
	objectStore outbound.ObjectStorePort,
	workerPool outbound.TaskDispatcher,
	bucketConfig *config.BucketConfig,
) inbound.BucketBackfillPort {
	return &bucketBackfillService{
		logger:       logger,
		converter:    converter,
		objectStore:  objectStore,
		workerPool:   workerPool,
		bucketConfig: bucketConfig,
	}
}

// Run converts every text object in the source bucket through the same path
// the event handler uses. Per-key failures are counted, not fatal; the run
// only aborts when the bucket listing itself fails.
func (s *bucketBackfillService) Run(ctx context.Context, params inbound.BackfillParams) (*inbound.BackfillSummary, error) {
	runID := uuid.NewString()

	keys, err := s.objectStore.ListKeys(ctx, s.bucketConfig.SourceBucket, params.Prefix, domain.TextKeySuffix)
	if err != nil {
		s.logger.ErrorWithFields(err, "Failed to list text objects", map[string]interface{}{
			"bucket": s.bucketConfig.SourceBucket,
			"prefix": params.Prefix,
			"run_id": runID,
		})
		return nil, err
	}

	s.logger.InfoWithFields("Starting bucket backfill", map[string]interface{}{
		"bucket": s.bucketConfig.SourceBucket,
		"keys":   len(keys),
		"run_id": runID,
	})

	keyCh := make(chan string)
	errChannels := make([]<-chan error, 0, backfillWorkers)
	var wg sync.WaitGroup

	for i := 0; i < backfillWorkers; i++ {
		workerErrCh := make(chan error)
		errChannels = append(errChannels, workerErrCh)

		wg.Add(1)
		err = s.workerPool.Submit(func() {
			defer wg.Done()
			defer close(workerErrCh)

			for key := range keyCh {
				_, convertErr := s.converter.Convert(ctx, inbound.ConvertTextParams{TextKey: key})
				if convertErr != nil {
					workerErrCh <- convertErr
				}
			}
		})
		if err != nil {
			wg.Done()
			close(workerErrCh)
			close(keyCh)
			return nil, err
		}
	}

	mergedErrCh, err := channel_utils.MergeChannels(s.workerPool, errChannels...)
	if err != nil {
		close(keyCh)
		return nil, err
	}

	err = s.workerPool.Submit(func() {
		defer close(keyCh)
		for _, key := range keys {
			select {
			case <-ctx.Done():
				return
			case keyCh <- key:
			}
		}
	})
	if err != nil {
		close(keyCh)
		return nil, err
	}

	failed := 0
	for range mergedErrCh {
		failed++
	}
	wg.Wait()

	summary := &inbound.BackfillSummary{
		RunID:     runID,
		Converted: len(keys) - failed,
		Failed:    failed,
	}

	s.logger.InfoWithFields("Bucket backfill complete", map[string]interface{}{
		"run_id":    summary.RunID,
		"converted": summary.Converted,
		"failed":    summary.Failed,
	})

	return summary, nil
}
