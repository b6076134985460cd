// Package main runs a local HTTP server around the glossary lookup handler.
// It reproduces the gateway's proxy event shape so the exact Lambda code
// path can be exercised without deploying.
package main

import (
	"context"
	"encoding/json"
	"io"
	"time"

	"github.com/aws/aws-lambda-go/events"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/termbase/glossary-lookup/internal/config"
	"github.com/termbase/glossary-lookup/internal/handler"
	"github.com/termbase/glossary-lookup/internal/store"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logrus.Fatalf("failed to load configuration: %v", err)
	}

	log := logrus.New()
	log.SetLevel(cfg.LogLevel)

	glossary, err := store.NewDynamo(context.Background(), cfg.TableName)
	if err != nil {
		log.Fatalf("failed to create glossary store: %v", err)
	}

	lookup := handler.New(glossary, log)

	if cfg.Environment != "dev" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery(), requestLogger(log))

	router.GET("/glossary", invoke(lookup))
	router.POST("/glossary", invoke(lookup))
	router.GET("/glossary/:term", invoke(lookup))

	log.Infof("glossary lookup listening on :%s (table %s)", cfg.Port, cfg.TableName)
	if err := router.Run(":" + cfg.Port); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}

// invoke converts the HTTP request into the gateway event shape, runs the
// Lambda handler, and relays the envelope back.
func invoke(lookup *handler.Handler) gin.HandlerFunc {
	return func(c *gin.Context) {
		event := events.APIGatewayProxyRequest{
			HTTPMethod: c.Request.Method,
			Path:       c.Request.URL.Path,
		}

		if query := c.Request.URL.Query(); len(query) > 0 {
			event.QueryStringParameters = make(map[string]string, len(query))
			for k, v := range query {
				if len(v) > 0 {
					event.QueryStringParameters[k] = v[0]
				}
			}
		}

		if term := c.Param("term"); term != "" {
			event.PathParameters = map[string]string{"term": term}
		}

		if body, err := io.ReadAll(c.Request.Body); err == nil && len(body) > 0 {
			event.Body = string(body)
		}

		raw, err := json.Marshal(event)
		if err != nil {
			c.JSON(500, gin.H{"error": "Internal server error", "message": err.Error()})
			return
		}

		resp := lookup.Handle(c.Request.Context(), raw)
		for k, v := range resp.Headers {
			c.Header(k, v)
		}
		c.String(resp.StatusCode, resp.Body)
	}
}

// requestLogger logs one structured line per request with a request ID,
// mirroring what CloudWatch gives us in the deployed function.
func requestLogger(log *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader("X-Request-ID")
		if requestID == "" {
			requestID = uuid.New().String()
		}
		c.Header("X-Request-ID", requestID)

		start := time.Now()
		c.Next()

		log.WithFields(logrus.Fields{
			"request_id": requestID,
			"method":     c.Request.Method,
			"path":       c.Request.URL.Path,
			"status":     c.Writer.Status(),
			"duration":   time.Since(start).String(),
		}).Info("request completed")
	}
}
