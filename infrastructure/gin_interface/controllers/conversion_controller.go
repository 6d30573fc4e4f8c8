package controllers

import (
	"context"

	"github.com/gin-gonic/gin"

	"vocalize-lambda/application/ports/inbound"
	"vocalize-lambda/application/ports/outbound"
	"vocalize-lambda/domain"
	"vocalize-lambda/infrastructure/gin_interface/dto"
)

// ConversionController exposes the lambda's conversion path over HTTP for
// local runs; the response mirrors the lambda result contract.
type ConversionController interface {
	Convert(c *gin.Context)
	Health(c *gin.Context)
	RegisterRoutes(g *gin.Engine)
}

type conversionController struct {
	logger    outbound.LoggerPort
	converter inbound.TextConverterPort
}

func NewConversionController(logger outbound.LoggerPort, converter inbound.TextConverterPort) ConversionController {
	return &conversionController{
		logger:    logger,
		converter: converter,
	}
}

func (cc *conversionController) Convert(c *gin.Context) {
	var convertRequest dto.ConvertRequest
	newCtx, cancel := context.WithCancel(c)
	defer cancel()
	if err := c.ShouldBindJSON(&convertRequest); err != nil {
		err = c.AbortWithError(400, err)
		if err != nil {
			cc.logger.Error(err, "failed to abort with error")
		}
		return
	}

	report, err := cc.converter.Convert(newCtx, inbound.ConvertTextParams{
		TextKey: convertRequest.Key,
	})
	if err != nil {
		cc.logger.ErrorWithFields(err, "conversion failed", map[string]interface{}{
			"key":  convertRequest.Key,
			"kind": string(domain.KindOf(err)),
		})
		c.JSON(500, dto.ConvertResponse{
			TextKey: convertRequest.Key,
			Message: domain.FailureMessage,
		})
		return
	}

	c.JSON(200, dto.ConvertResponse{
		TextKey:    report.TextKey,
		AudioKey:   report.AudioKey,
		AudioBytes: report.AudioBytes,
		Message:    domain.SuccessMessage,
	})
}

func (cc *conversionController) Health(c *gin.Context) {
	c.JSON(200, gin.H{"status": "ok"})
}

func (cc *conversionController) RegisterRoutes(g *gin.Engine) {
	g.POST("/convert", cc.Convert)
	g.GET("/health", cc.Health)
}
