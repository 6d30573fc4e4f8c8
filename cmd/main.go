package main

import (
	"github.com/aws/aws-lambda-go/lambda"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/dynamodb"
	"github.com/aws/aws-sdk-go/service/polly"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/rs/zerolog/log"

	"vocalize-lambda/application/ports/outbound"
	"vocalize-lambda/application/services"
	"vocalize-lambda/config"
	"vocalize-lambda/infrastructure/adapters"
	"vocalize-lambda/infrastructure/lambda_interface/handlers"
)

func main() {
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

	s3Client := s3.New(sess)
	pollyClient := polly.New(sess)

	objectStore := adapters.NewS3ObjectStore(s3Client, zeroLogger)
	synthesizer := adapters.NewPollySynthesizer(pollyClient, zeroLogger)

	var audit outbound.ConversionAuditPort
	if auditConfig != nil {
		audit = adapters.NewDynamoConversionAudit(zeroLogger, dynamodb.New(sess), auditConfig)
	} else {
		audit = adapters.NewNoopConversionAudit()
	}

	converter := services.NewTextConversionService(zeroLogger, objectStore, synthesizer, audit, bucketConfig, synthesisConfig)

	handler := handlers.NewS3EventHandler(zeroLogger, converter)

	lambda.Start(handler.Handle)
}
