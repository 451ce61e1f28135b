package types

import "errors"

// Store lifecycle errors.
var (
	ErrStoreClosed = errors.New("store is closed")
	ErrAlreadyOpen = errors.New("store is already open")
	ErrNotFound    = errors.New("entity not found")
	ErrInvalidID   = errors.New("invalid entity ID")
	ErrInvalidData = errors.New("invalid entity data")
)

// Configuration errors.
var (
	ErrBackendEmpty      = errors.New("backend must not be empty")
	ErrBackendUnknown    = errors.New("unknown backend")
	ErrSchemaKeyEmpty    = errors.New("schema key must not be empty")
	ErrSchemaKeyUnknown  = errors.New("unknown schema key")
	ErrScopeEmpty        = errors.New("post_type must not be empty")
	ErrAuthorTypeInvalid = errors.New("authorType must be Person or Organization")
	ErrMetaMapEmpty      = errors.New("meta_map must not be empty")
)
