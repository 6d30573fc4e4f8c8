package main

import (
	"context"
	"fmt"
	"os"

	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/dynamodb"
	"github.com/aws/aws-sdk-go/service/polly"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/panjf2000/ants/v2"
	"github.com/rs/zerolog/log"

	"vocalize-lambda/application/ports/inbound"
	"vocalize-lambda/application/ports/outbound"
	"vocalize-lambda/application/services"
	"vocalize-lambda/config"
	"vocalize-lambda/infrastructure/adapters"
)

const workerPoolSize = 32

// Backfill converts every text object already in the source bucket, for
// buckets that were populated before the event notification was wired up.
// An optional key prefix can be passed as the first argument.
func main() {
	prefix := ""
	if len(os.Args) > 1 {
		prefix = os.Args[1]
	}

	sess := session.Must(session.NewSessionWithOptions(session.Options{
		SharedConfigState: session.SharedConfigEnable,
	}))

	bucketConfig, err := config.GetBucketConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to get bucket config")
	}

	synthesisConfig, err := config.GetSynthesisConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to get synthesis config")
	}

	auditConfig, err := config.GetAuditConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to get audit config")
	}

	zeroLogger := adapters.NewZerologWrapper()

	panicHandler := func(p interface{}) {
		zeroLogger.Error(fmt.Errorf("%v", p), "Panic in worker pool")
	}

	workerPool, err := ants.NewPool(workerPoolSize, ants.WithPanicHandler(panicHandler))
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to create worker pool")
	}
	defer workerPool.Release()

	objectStore := adapters.NewS3ObjectStore(s3.New(sess), zeroLogger)
	synthesizer := adapters.NewPollySynthesizer(polly.New(sess), zeroLogger)

	var audit outbound.ConversionAuditPort
	if auditConfig != nil {
		audit = adapters.NewDynamoConversionAudit(zeroLogger, dynamodb.New(sess), auditConfig)
	} else {
		audit = adapters.NewNoopConversionAudit()
	}

	converter := services.NewTextConversionService(zeroLogger, objectStore, synthesizer, audit, bucketConfig, synthesisConfig)

	backfill := services.NewBucketBackfillService(zeroLogger, converter, objectStore, workerPool, bucketConfig)

	summary, err := backfill.Run(context.Background(), inbound.BackfillParams{Prefix: prefix})
	if err != nil {
		log.Fatal().Err(err).Msg("Backfill run failed")
	}

	if summary.Failed > 0 {
		os.Exit(1)
	}
}
