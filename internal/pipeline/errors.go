package pipeline

import "errors"

var (
	ErrBuild               = errors.New("build failed")
	ErrPackage             = errors.New("packaging failed")
	ErrArchive             = errors.New("archive failed")
	ErrFileSystemOperation = errors.New("file system operation failed")
)
