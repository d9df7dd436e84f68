package gateway

import (
	"errors"
	"fmt"
)

const (
	codeNotFound       = "gateway.not_found"
	codeEmptyPath      = "gateway.empty_path"
	codeInvalidSegment = "gateway.invalid_segment"
	codeBadCreator     = "gateway.bad_creator"
	codeBadManifest    = "gateway.bad_manifest"
)

// Error is a coded configuration error surfaced by the registry. Platform
// validation failures (duplicate methods, malformed resources) are not
// translated into this type; they propagate unchanged and abort the pass.
type Error struct {
	Code    string
	Path    string
	Message string
}

func (e *Error) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("%s: %s (path %q)", e.Code, e.Message, e.Path)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func newNotFound(path string) *Error {
	return &Error{Code: codeNotFound, Path: path, Message: "path was never resolved"}
}

func newEmptyPath(path string) *Error {
	return &Error{Code: codeEmptyPath, Path: path, Message: "path has no usable segments"}
}

func newInvalidSegment(path, segment string) *Error {
	return &Error{Code: codeInvalidSegment, Path: path, Message: fmt.Sprintf("invalid path segment %q", segment)}
}

func newBadManifest(message string) *Error {
	return &Error{Code: codeBadManifest, Message: message}
}

func errorCode(err error) string {
	var gwErr *Error
	if errors.As(err, &gwErr) {
		return gwErr.Code
	}
	return ""
}

// IsNotFound reports whether err is a URL lookup miss. Callers can recover
// by resolving the path first.
func IsNotFound(err error) bool {
	return errorCode(err) == codeNotFound
}

// IsEmptyPath reports whether err came from a path with no usable segments.
func IsEmptyPath(err error) bool {
	return errorCode(err) == codeEmptyPath
}
