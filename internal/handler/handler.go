// Package handler implements the glossary lookup request handler.
package handler

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/sirupsen/logrus"

	"github.com/termbase/glossary-lookup/internal/domain"
	"github.com/termbase/glossary-lookup/internal/store"
)

// Response is the envelope returned for every invocation, shaped like an
// API Gateway proxy response so the gateway can relay it directly.
type Response struct {
	StatusCode int               `json:"statusCode"`
	Headers    map[string]string `json:"headers"`
	Body       string            `json:"body"`
}

// Handler resolves glossary lookups against an injected store.
type Handler struct {
	store store.Store
	log   *logrus.Logger
}

// New creates a Handler.
func New(s store.Store, log *logrus.Logger) *Handler {
	return &Handler{store: s, log: log}
}

// Handle processes one invocation payload and always produces a well-formed
// envelope: 200 on a hit, 404 on a miss, 400 when no term could be
// extracted, 500 for everything else. Faults never escape to the runtime.
func (h *Handler) Handle(ctx context.Context, raw json.RawMessage) (resp Response) {
	defer func() {
		if r := recover(); r != nil {
			resp = h.errorResponse(fmt.Sprintf("panic: %v", r))
		}
	}()

	event := ParseEvent(raw)
	term := ExtractTerm(event)

	h.log.WithFields(logrus.Fields{
		"event": string(raw),
		"term":  term,
	}).Info("glossary lookup requested")

	if term == "" {
		return h.badRequestResponse(event)
	}

	definition, err := h.store.GetDefinition(ctx, term)
	if errors.Is(err, store.ErrNotFound) {
		return h.notFoundResponse(term)
	}
	if err != nil {
		h.log.WithError(err).Error("glossary lookup failed")
		return h.errorResponse(err.Error())
	}

	return h.successResponse(term, definition)
}

// responseHeaders returns the fixed header set carried by every response.
// The permissive CORS values are deliberate: the glossary is public and the
// browser frontend calls it unauthenticated from any origin.
func responseHeaders() map[string]string {
	return map[string]string{
		"Content-Type":                 "application/json",
		"Access-Control-Allow-Origin":  "*",
		"Access-Control-Allow-Methods": "OPTIONS,GET,POST",
		"Access-Control-Allow-Headers": "Content-Type",
	}
}

func (h *Handler) successResponse(term, definition string) Response {
	return h.respond(http.StatusOK, domain.LookupResult{
		Term:       term,
		Definition: definition,
	})
}

func (h *Handler) notFoundResponse(term string) Response {
	return h.respond(http.StatusNotFound, domain.NotFoundBody{
		Message: fmt.Sprintf("Term %q not found", term),
	})
}

func (h *Handler) badRequestResponse(event Event) Response {
	return h.respond(http.StatusBadRequest, domain.BadRequestBody{
		Message: "Term parameter is required",
		Debug: domain.RequestDebug{
			QueryParams: event.QueryStringParameters,
			PathParams:  event.PathParameters,
			Body:        event.Body,
			HTTPMethod:  event.HTTPMethod,
			EventKeys:   event.Keys,
		},
	})
}

func (h *Handler) errorResponse(message string) Response {
	return h.respond(http.StatusInternalServerError, domain.ErrorBody{
		Error:   "Internal server error",
		Message: message,
	})
}

// respond serializes body into a fresh envelope. Marshalling a tagged
// struct cannot fail, but a fault here still must not escape, so it is
// downgraded to a plain 500.
func (h *Handler) respond(status int, body interface{}) Response {
	serialized, err := json.Marshal(body)
	if err != nil {
		status = http.StatusInternalServerError
		serialized = []byte(`{"error":"Internal server error","message":"failed to serialize response"}`)
	}

	return Response{
		StatusCode: status,
		Headers:    responseHeaders(),
		Body:       string(serialized),
	}
}
