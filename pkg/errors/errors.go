// Package errors provides the structured error taxonomy used throughout the
// module: a small hierarchy of domain error types, all sharing a common
// baseError for message/code/cause/detail handling, plus helpers for
// classifying raw OS errors into the taxonomy at the point they cross into
// this library from the file system.
package errors

import (
	stdErrors "errors"
	"os"
	"syscall"
)

// IsIOError reports whether err is (or wraps) an IOError.
func IsIOError(err error) bool {
	var e *IOError
	return stdErrors.As(err, &e)
}

// IsPathError reports whether err is (or wraps) a PathError.
func IsPathError(err error) bool {
	var e *PathError
	return stdErrors.As(err, &e)
}

// IsCodecError reports whether err is (or wraps) a CodecError.
func IsCodecError(err error) bool {
	var e *CodecError
	return stdErrors.As(err, &e)
}

// AsIOError extracts an *IOError from an error chain.
func AsIOError(err error) (*IOError, bool) {
	var e *IOError
	if stdErrors.As(err, &e) {
		return e, true
	}
	return nil, false
}

// AsPathError extracts a *PathError from an error chain.
func AsPathError(err error) (*PathError, bool) {
	var e *PathError
	if stdErrors.As(err, &e) {
		return e, true
	}
	return nil, false
}

// AsCodecError extracts a *CodecError from an error chain.
func AsCodecError(err error) (*CodecError, bool) {
	var e *CodecError
	if stdErrors.As(err, &e) {
		return e, true
	}
	return nil, false
}

// GetErrorCode extracts the error code from any error in the taxonomy, or
// returns ErrorCodeInternal for errors that don't carry one.
func GetErrorCode(err error) ErrorCode {
	if e, ok := AsIOError(err); ok {
		return e.Code()
	}
	if e, ok := AsPathError(err); ok {
		return e.Code()
	}
	if e, ok := AsCodecError(err); ok {
		return e.Code()
	}
	var se *IllegalStateError
	if stdErrors.As(err, &se) {
		return se.Code()
	}
	return ErrorCodeInternal
}

// ClassifyOpenError inspects the error returned from opening a file or
// directory and attaches the most specific IOError code it can determine
// from the underlying syscall errno, falling back to a generic I/O failure.
func ClassifyOpenError(err error, filePath, fileName string) error {
	if os.IsPermission(err) {
		return NewIOError(err, ErrorCodePermissionDenied, "insufficient permissions to open file").
			WithPath(filePath).
			WithFileName(fileName)
	}
	if os.IsNotExist(err) {
		return NewIOError(err, ErrorCodeFileNotFound, "file does not exist").
			WithPath(filePath).
			WithFileName(fileName)
	}
	if os.IsExist(err) {
		return NewIOError(err, ErrorCodeAlreadyExists, "file already exists").
			WithPath(filePath).
			WithFileName(fileName)
	}

	if pathErr, ok := err.(*os.PathError); ok {
		if errno, ok := pathErr.Err.(syscall.Errno); ok {
			switch errno {
			case syscall.ENOSPC:
				return NewIOError(err, ErrorCodeDiskFull, "insufficient disk space to open file").
					WithPath(filePath).WithFileName(fileName)
			case syscall.EROFS:
				return NewIOError(err, ErrorCodeFilesystemReadonly, "cannot open file on read-only filesystem").
					WithPath(filePath).WithFileName(fileName)
			}
		}
	}

	return NewIOError(err, ErrorCodeIO, "failed to open file").
		WithPath(filePath).
		WithFileName(fileName)
}

// ClassifyDirectoryError inspects a directory-creation failure and attaches
// the most specific IOError code it can determine.
func ClassifyDirectoryError(err error, path string) error {
	if os.IsPermission(err) {
		return NewIOError(err, ErrorCodePermissionDenied, "insufficient permissions to create directory").
			WithPath(path)
	}

	if pathErr, ok := err.(*os.PathError); ok {
		if errno, ok := pathErr.Err.(syscall.Errno); ok {
			switch errno {
			case syscall.ENOSPC:
				return NewIOError(err, ErrorCodeDiskFull, "insufficient disk space to create directory").WithPath(path)
			case syscall.EROFS:
				return NewIOError(err, ErrorCodeFilesystemReadonly, "cannot create directory on read-only filesystem").WithPath(path)
			}
		}
	}

	return NewIOError(err, ErrorCodeIO, "failed to create directory").WithPath(path)
}
