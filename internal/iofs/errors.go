package iofs

import (
	"fmt"
	"path/filepath"
	"runtime"

	"github.com/gnames/gn"
	"github.com/gnames/webnlg/pkg/errcode"
)

// caller names the function that called an error constructor.
func caller() string {
	pc, _, _, _ := runtime.Caller(2)
	return runtime.FuncForPC(pc).Name()
}

// CreateDirError is returned when one of webnlg directories (config,
// cache, data or logs) cannot be created.
func CreateDirError(dir string, err error) error {
	return &gn.Error{
		Code: errcode.CreateDirError,
		Msg:  "Cannot create directory <em>%s</em>",
		Vars: []any{dir},
		Err:  fmt.Errorf("from %s: cannot create directory %s: %w", caller(), dir, err),
	}
}

// WriteDefaultFileError is returned when a default config.yaml or
// releases.yaml cannot be written to the config directory.
func WriteDefaultFileError(path string, err error) error {
	name := filepath.Base(path)
	return &gn.Error{
		Code: errcode.WriteDefaultFileError,
		Msg:  "Cannot write default <em>%s</em> to %s",
		Vars: []any{name, filepath.Dir(path)},
		Err:  fmt.Errorf("from %s: cannot write %s: %w", caller(), path, err),
	}
}

// ReadConfigError is returned when config.yaml exists but cannot be read
// or is not valid YAML.
func ReadConfigError(path string, err error) error {
	return &gn.Error{
		Code: errcode.ReadConfigError,
		Msg:  "Cannot read config file <em>%s</em>",
		Vars: []any{path},
		Err:  fmt.Errorf("from %s: cannot read %s: %w", caller(), path, err),
	}
}

// DecodeConfigError is returned when settings from config.yaml and
// WEBNLG_* environment variables do not fit the Config fields, for
// example a seed that is not a number.
func DecodeConfigError(path string, err error) error {
	return &gn.Error{
		Code: errcode.DecodeConfigError,
		Msg:  "Cannot decode settings of <em>%s</em> and WEBNLG_* variables",
		Vars: []any{path},
		Err:  fmt.Errorf("from %s: cannot decode config %s: %w", caller(), path, err),
	}
}
