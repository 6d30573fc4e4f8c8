package main

import (
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/polly"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"

	"vocalize-lambda/application/ports/outbound"
	"vocalize-lambda/application/services"
	"vocalize-lambda/config"
	"vocalize-lambda/infrastructure/adapters"
	"vocalize-lambda/infrastructure/gin_interface/controllers"
	"vocalize-lambda/middleware"
	mock "vocalize-lambda/mock"
)

// Local harness: the lambda's conversion path behind a plain HTTP endpoint.
// With DRY_RUN set the AWS collaborators are swapped for in-memory ones.
func main() {
	// Missing .env is fine; the environment may already be populated.
	_ = godotenv.Load()

	bucketConfig, err := config.GetBucketConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to get bucket config")
	}

	synthesisConfig, err := config.GetSynthesisConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to get synthesis config")
	}

	harnessConfig, err := config.GetHarnessConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to get harness config")
	}

	zeroLogger := adapters.NewZerologWrapper()

	var objectStore outbound.ObjectStorePort
	var synthesizer outbound.SpeechSynthesizerPort

	if harnessConfig.DryRun {
		memoryStore := mock.NewInMemoryObjectStore()
		memoryStore.Seed(bucketConfig.SourceBucket, "hello.txt", []byte("Hello world"))
		objectStore = memoryStore
		synthesizer = mock.NewScriptedSynthesizer([]byte("not-really-mp3"))
	} else {
		sess := session.Must(session.NewSessionWithOptions(session.Options{
			SharedConfigState: session.SharedConfigEnable,
		}))
		objectStore = adapters.NewS3ObjectStore(s3.New(sess), zeroLogger)
		synthesizer = adapters.NewPollySynthesizer(polly.New(sess), zeroLogger)
	}

	converter := services.NewTextConversionService(zeroLogger, objectStore, synthesizer, adapters.NewNoopConversionAudit(), bucketConfig, synthesisConfig)

	router := gin.Default()

	err = router.SetTrustedProxies(nil)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to set trusted proxies!")
	}

	router.Use(middleware.RequestLogger(zeroLogger))

	conversionController := controllers.NewConversionController(zeroLogger, converter)
	conversionController.RegisterRoutes(router)

	err = router.Run(harnessConfig.ListenAddr)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to start server!")
	}
}
