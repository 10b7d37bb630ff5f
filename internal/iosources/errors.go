package iosources

import (
	"fmt"
	"runtime"

	"github.com/gnames/gn"
	"github.com/herbdata/herbario/pkg/errcode"
)

func SourcesConfigError(path string, err error) error {
	msg := "Cannot load sources config <em>%s</em>"
	vars := []any{path}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.SourcesConfigError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("from %s: cannot load sources config %s: %w",
			fn, path, err),
	}
}
