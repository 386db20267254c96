package domain

import "go.trai.ch/zerr"

var (
	// ErrConfig is returned for missing or invalid build configuration
	// settings.
	ErrConfig = zerr.New("configuration error")

	// ErrUnknownBuildTarget is returned when a task name matches no
	// registered build target.
	ErrUnknownBuildTarget = zerr.New("unknown build target")

	// ErrAmbiguousBuildTarget is returned when a task name matches more than
	// one registered build target with equal specificity.
	ErrAmbiguousBuildTarget = zerr.New("ambiguous build target request")

	// ErrProductConflict is returned when two build targets declare a build
	// product under the same key.
	ErrProductConflict = zerr.New("conflicting build product key")

	// ErrTableRow is returned when an input table row violates a column or
	// value constraint.
	ErrTableRow = zerr.New("invalid table row")

	// ErrColumnMissing is returned when a required column is absent from an
	// input table.
	ErrColumnMissing = zerr.New("required column missing")

	// ErrUnsupportedFormat is returned when an input table file has an
	// unrecognized extension.
	ErrUnsupportedFormat = zerr.New("unsupported input file format")

	// ErrNotFound is returned when a remote ontology resource answers with
	// HTTP 404.
	ErrNotFound = zerr.New("remote resource not found")

	// ErrConnectionFailed is returned when a remote ontology resource cannot
	// be reached after the fixed retry budget is exhausted.
	ErrConnectionFailed = zerr.New("connection failed")

	// ErrIRIMappingConflict is returned when an ontology IRI is mapped to two
	// different document IRIs.
	ErrIRIMappingConflict = zerr.New("conflicting ontology IRI mapping")
)
