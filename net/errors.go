// Package net defines the Net data model: places, transitions, the I/O
// incidence matrices and the initial marking, plus a PNML loader and a
// programmatic builder.
package net

import "errors"

// Sentinel errors returned by Load, Validate and the Builder. Callers should
// use errors.Is to branch on semantics; string contents are not part of the
// contract.
var (
	// ErrInputNotFound is returned when a PNML path does not resolve.
	ErrInputNotFound = errors.New("net: input file not found")

	// ErrMalformedPNML is returned for missing required elements,
	// unparseable integers, or dangling arc endpoints.
	ErrMalformedPNML = errors.New("net: malformed PNML")

	// ErrValidation is returned by Validate for duplicate ids or a negative
	// initial marking. Shape mismatches are reported as ErrOrientation.
	ErrValidation = errors.New("net: validation failed")

	// ErrOrientation is returned when I, O cannot be reconciled with the
	// declared places and transitions in canonical P x T orientation.
	ErrOrientation = errors.New("net: matrix orientation error")
)
