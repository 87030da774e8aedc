// Package radarcore decompresses, parses, and renders a single NOAA MRMS
// RALA GRIB2 product into a geo-aligned PNG overlay plus metadata.
//
// Basic usage:
//
//	compressed, err := os.ReadFile("rala.grib2.gz")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	png, meta, err := radarcore.Process(compressed)
//	if err != nil {
//	    log.Fatal(err)
//	}
package radarcore

import (
	"fmt"

	"github.com/pkg/errors"
)

// InvalidFormatError indicates the input is not a well-formed GRIB2 message:
// the "GRIB" magic number is missing, the "7777" end marker is absent, the
// declared message length does not match the data, or a section is
// truncated or malformed.
type InvalidFormatError struct {
	Offset  int
	Message string
	cause   error
}

func (e *InvalidFormatError) Error() string {
	return fmt.Sprintf("invalid GRIB2 format at offset %d: %s", e.Offset, e.Message)
}

// Unwrap allows errors.Is/errors.As to reach a wrapped cause.
func (e *InvalidFormatError) Unwrap() error { return e.cause }

// UnsupportedEditionError indicates a GRIB edition other than 2.
type UnsupportedEditionError struct {
	Edition uint8
}

func (e *UnsupportedEditionError) Error() string {
	return fmt.Sprintf("unsupported GRIB edition %d, only edition 2 is supported", e.Edition)
}

// MissingSectionError indicates a required section was not found by the
// forward scan.
type MissingSectionError struct {
	Section int
}

func (e *MissingSectionError) Error() string {
	return fmt.Sprintf("required section %d not found", e.Section)
}

// UnsupportedGridTemplateError indicates Section 3 used a grid definition
// template outside {0, 30}.
type UnsupportedGridTemplateError struct {
	TemplateNumber int
	cause          error
}

func (e *UnsupportedGridTemplateError) Error() string {
	return fmt.Sprintf("unsupported grid definition template %d", e.TemplateNumber)
}

func (e *UnsupportedGridTemplateError) Unwrap() error { return e.cause }

// UnsupportedPackingError indicates Section 5 used a data representation
// template outside {0, 40, 41, 200}.
type UnsupportedPackingError struct {
	TemplateNumber int
	cause          error
}

func (e *UnsupportedPackingError) Error() string {
	return fmt.Sprintf("unsupported data representation template %d", e.TemplateNumber)
}

func (e *UnsupportedPackingError) Unwrap() error { return e.cause }

// DecompressionFailedError indicates the gzip stream failed to decode. An
// embedded PNG (Template 5.41) that fails to decode does not produce this
// error: that decoder falls back to raw bytes instead.
type DecompressionFailedError struct {
	Message string
	cause   error
}

func (e *DecompressionFailedError) Error() string {
	return fmt.Sprintf("decompression failed: %s", e.Message)
}

func (e *DecompressionFailedError) Unwrap() error { return e.cause }

// RenderFailedError indicates the PNG encoder rejected the rendered pixel
// buffer.
type RenderFailedError struct {
	Message string
	cause   error
}

func (e *RenderFailedError) Error() string {
	return fmt.Sprintf("render failed: %s", e.Message)
}

func (e *RenderFailedError) Unwrap() error { return e.cause }

// wrapInvalidFormat builds an InvalidFormatError wrapping cause with
// errors.Wrap for stack context.
func wrapInvalidFormat(offset int, message string, cause error) *InvalidFormatError {
	var wrapped error
	if cause != nil {
		wrapped = errors.Wrapf(cause, "offset %d: %s", offset, message)
	}
	return &InvalidFormatError{Offset: offset, Message: message, cause: wrapped}
}

// wrapUnsupportedGridTemplate builds an UnsupportedGridTemplateError
// wrapping cause with errors.Wrap.
func wrapUnsupportedGridTemplate(templateNumber int, cause error) *UnsupportedGridTemplateError {
	var wrapped error
	if cause != nil {
		wrapped = errors.Wrapf(cause, "grid template %d", templateNumber)
	}
	return &UnsupportedGridTemplateError{TemplateNumber: templateNumber, cause: wrapped}
}

// wrapUnsupportedPacking builds an UnsupportedPackingError wrapping cause
// with errors.Wrap.
func wrapUnsupportedPacking(templateNumber int, cause error) *UnsupportedPackingError {
	var wrapped error
	if cause != nil {
		wrapped = errors.Wrapf(cause, "packing template %d", templateNumber)
	}
	return &UnsupportedPackingError{TemplateNumber: templateNumber, cause: wrapped}
}

// wrapDecompressionFailed builds a DecompressionFailedError wrapping cause
// with errors.Wrap.
func wrapDecompressionFailed(message string, cause error) *DecompressionFailedError {
	return &DecompressionFailedError{Message: message, cause: errors.Wrap(cause, message)}
}

// wrapRenderFailed builds a RenderFailedError wrapping cause with
// errors.Wrap.
func wrapRenderFailed(message string, cause error) *RenderFailedError {
	return &RenderFailedError{Message: message, cause: errors.Wrap(cause, message)}
}
