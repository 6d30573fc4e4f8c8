package adapters

import (
	"context"
	"time"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/service/dynamodb"
	"github.com/aws/aws-sdk-go/service/dynamodb/dynamodbattribute"
	"github.com/google/uuid"

	"vocalize-lambda/application/ports/outbound"
	"vocalize-lambda/config"
)

type dynamoConversionItem struct {
	ConversionId string  `dynamodbav:"conversion_id"`
	TextKey      string  `dynamodbav:"text_key"`
	AudioKey     string  `dynamodbav:"audio_key"`
	AudioBytes   int     `dynamodbav:"audio_bytes"`
	Outcome      string  `dynamodbav:"outcome"`
	DurationMs   float64 `dynamodbav:"duration_ms"`
	TTL          int64   `dynamodbav:"ttl"`
}

type dynamoConversionAudit struct {
	logger      outbound.LoggerPort
	dynamoSvc   *dynamodb.DynamoDB
	auditConfig *config.AuditConfig
}

func NewDynamoConversionAudit(logger outbound.LoggerPort, dynamoSvc *dynamodb.DynamoDB, auditConfig *config.AuditConfig) outbound.ConversionAuditPort {
	return &dynamoConversionAudit{
		logger:      logger,
		dynamoSvc:   dynamoSvc,
		auditConfig: auditConfig,
	}
}

func (a *dynamoConversionAudit) Record(ctx context.Context, record outbound.ConversionRecord) error {
	item := dynamoConversionItem{
		ConversionId: uuid.NewString(),
		TextKey:      record.TextKey,
		AudioKey:     record.AudioKey,
		AudioBytes:   record.AudioBytes,
		Outcome:      record.Outcome,
		DurationMs:   float64(record.Duration.Microseconds()) / 1000,
		TTL:          time.Now().Add(time.Duration(a.auditConfig.TTLMinutes) * time.Minute).Unix(),
	}

	av, err := dynamodbattribute.MarshalMap(item)
	if err != nil {
		a.logger.ErrorWithFields(err, "Failed to marshal conversion audit item", map[string]interface{}{
			"text_key": record.TextKey,
		})
		return err
	}

	input := &dynamodb.PutItemInput{
		Item:      av,
		TableName: aws.String(a.auditConfig.TableName),
	}

	_, err = a.dynamoSvc.PutItemWithContext(ctx, input)
	if err != nil {
		a.logger.ErrorWithFields(err, "Failed to save conversion audit item", map[string]interface{}{
			"text_key": record.TextKey,
			"table":    a.auditConfig.TableName,
		})
		return err
	}

	return nil
}
