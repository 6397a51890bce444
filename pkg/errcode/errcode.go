package errcode

import (
	"github.com/gnames/gn"
)

const (
	UnknownError gn.ErrorCode = iota

	// File System errors
	CreateDirError
	WriteDefaultFileError
	ReadConfigError
	DecodeConfigError

	// Logging errors
	CreateLogFileError
	OpenLogFileError

	// Release registry errors
	ReleasesConfigError
	UnknownReleaseError
	DatasetNotFoundError

	// Corpus file errors
	CorpusFileReadError
	CorpusParseError

	// Record builder errors
	EntityFormatError
	MissingKeyError
	MissingEntityMapError

	// Query errors
	NoFilterSpecifiedError
	EmptySelectionError

	// Export errors
	ExportFormatError
	ExportWriteError
	ExportSQLiteError
)
