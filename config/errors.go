package config

import "errors"

// Configuration validation errors returned by Config.Validate.
var (
	// ErrNoTarget is returned when neither a URL nor a URL file is given.
	ErrNoTarget = errors.New("specify URL")

	// ErrTargetAndFile is returned when a URL is combined with --file.
	ErrTargetAndFile = errors.New("if you specify a file, URL can not be specified")

	// ErrInvalidInterval is returned when the probe interval is negative.
	ErrInvalidInterval = errors.New("invalid interval: must be non-negative")

	// ErrInvalidTimeout is returned when the request timeout is not positive.
	ErrInvalidTimeout = errors.New("invalid timeout: must be positive")

	// ErrInvalidMaxBodySize is returned when the body size limit is not positive.
	ErrInvalidMaxBodySize = errors.New("invalid max body size: must be positive")

	// ErrUnknownUserAgent is returned when --user-agent names no table entry.
	ErrUnknownUserAgent = errors.New("unknown user agent (see --show-user-agent)")

	// ErrUnknownFormat is returned for an unsupported --format value.
	ErrUnknownFormat = errors.New("unknown output format (want tsv, json, csv or markdown)")
)
