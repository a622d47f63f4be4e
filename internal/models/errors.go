package models

import "errors"

var (
	// ErrConfiguration aborts the process before any request is attempted.
	ErrConfiguration = errors.New("configuration error")

	// ErrUpstream covers completion calls that failed or timed out.
	ErrUpstream = errors.New("upstream error")

	// ErrSchemaViolation is returned when model output does not match the requested schema.
	ErrSchemaViolation = errors.New("schema violation")

	ErrUnknownSpecialist = errors.New("unknown specialist")

	// ErrRoutingAmbiguity is returned when routing names no specialist or one outside the registry.
	ErrRoutingAmbiguity = errors.New("routing ambiguity")

	ErrEmptyInput = errors.New("empty user input")
)
