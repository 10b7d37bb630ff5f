package errcode

import (
	"github.com/gnames/gn"
)

const (
	UnknownError gn.ErrorCode = iota

	// File System errors
	CreateDirError
	ReadFileError
	CopyFileError
	RemoveFileError

	// Logging errors
	CreateLogFileError

	// Network errors
	TransportError
	RemoteStatusError
	DecodeError

	// Checklist errors
	ChecklistMissingError
	ChecklistDownloadError
	ChecklistColumnError

	// Checkpoint errors
	CheckpointEncodeError
	CheckpointWriteError
	CheckpointReadError

	// Pipeline errors
	TableWriteError
	SourcesConfigError
)
