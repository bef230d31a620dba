package parser

import (
	"errors"
	"fmt"
)

// ErrMarkerNotFound indicates the Monday marker was not found in the scan window.
var ErrMarkerNotFound = errors.New("weekday marker not found")

// LayoutError reports that a sheet does not have the expected structure.
type LayoutError struct {
	Column string
	From   int
	To     int
	Err    error
}

func (e *LayoutError) Error() string {
	return fmt.Sprintf("layout error: %v in %s%d:%s%d", e.Err, e.Column, e.From, e.Column, e.To)
}

func (e *LayoutError) Unwrap() error {
	return e.Err
}

// WarningKind classifies non-fatal findings made during extraction.
type WarningKind string

const (
	// MissingFieldWarning: a slot has data but an empty lesson name, so no fact is emitted.
	MissingFieldWarning WarningKind = "missing_field"
	// UnrecognizedDayToken: the weekday label is outside the six known days.
	UnrecognizedDayToken WarningKind = "unrecognized_day"
	// MisalignedVariantWarning: odd and even variants do not share the same rows.
	MisalignedVariantWarning WarningKind = "misaligned_variant"
)

// Warning is a non-fatal finding tied to a sheet position.
type Warning struct {
	Kind    WarningKind `json:"kind"`
	Day     int         `json:"day"`
	Row     int         `json:"row"`
	Variant string      `json:"variant,omitempty"`
	Detail  string      `json:"detail,omitempty"`
}

func (w Warning) String() string {
	s := fmt.Sprintf("%s at row %d (day %d)", w.Kind, w.Row, w.Day)
	if w.Variant != "" {
		s += ", " + w.Variant
	}
	if w.Detail != "" {
		s += ": " + w.Detail
	}
	return s
}
