package models

import "fmt"

// RemoteFetchError represents a failed fetch from the upstream API. It covers
// transport failures, non-2xx responses and application-level rejections
// (envelope with success=false).
type RemoteFetchError struct {
	Endpoint   string
	StatusCode int // 0 when the request never produced an HTTP response
	Message    string
	Err        error
}

// Error implements the error interface
func (e *RemoteFetchError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("remote fetch %s failed: %v", e.Endpoint, e.Err)
	}
	if e.Message != "" {
		return fmt.Sprintf("remote fetch %s failed (status %d): %s", e.Endpoint, e.StatusCode, e.Message)
	}
	return fmt.Sprintf("remote fetch %s failed (status %d)", e.Endpoint, e.StatusCode)
}

// Unwrap returns the underlying transport error, if any
func (e *RemoteFetchError) Unwrap() error {
	return e.Err
}

// StorageError represents a serialization or persistence failure in the
// key-value store layer.
type StorageError struct {
	Op  string // "get", "set", "remove", "list"
	Key string
	Err error
}

// Error implements the error interface
func (e *StorageError) Error() string {
	return fmt.Sprintf("storage %s %q failed: %v", e.Op, e.Key, e.Err)
}

// Unwrap returns the underlying error
func (e *StorageError) Unwrap() error {
	return e.Err
}
