package iocheckpoint

import (
	"fmt"
	"runtime"

	"github.com/gnames/gn"
	"github.com/herbdata/herbario/pkg/errcode"
)

func CreateDirError(dir string, err error) error {
	msg := "Cannot create %s"
	vars := []any{dir}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.CreateDirError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("from %s: cannot create directory: %w",
			fn, err),
	}
}

func EncodeError(stage Stage, err error) error {
	msg := "Cannot serialize <em>%s</em> checkpoint"
	vars := []any{string(stage)}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.CheckpointEncodeError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("from %s: cannot serialize stage %s: %w",
			fn, stage, err),
	}
}

func WriteError(path string, err error) error {
	msg := "Cannot write checkpoint <em>%s</em>"
	vars := []any{path}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.CheckpointWriteError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("from %s: cannot write checkpoint %s: %w",
			fn, path, err),
	}
}

func ReadError(path string, err error) error {
	msg := "Cannot read checkpoint <em>%s</em>"
	vars := []any{path}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.CheckpointReadError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("from %s: cannot read checkpoint %s: %w",
			fn, path, err),
	}
}
