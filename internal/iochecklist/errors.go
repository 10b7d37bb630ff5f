package iochecklist

import (
	"fmt"
	"runtime"

	"github.com/gnames/gn"
	"github.com/herbdata/herbario/pkg/errcode"
)

func MissingError(path string) error {
	msg := "Checklist <em>%s</em> has not been downloaded yet"
	vars := []any{path}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.ChecklistMissingError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("from %s: checklist %s is not materialized",
			fn, path),
	}
}

func DownloadError(url string, err error) error {
	msg := "Cannot download checklist from <em>%s</em>"
	vars := []any{url}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.ChecklistDownloadError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("from %s: cannot download checklist from %s: %w",
			fn, url, err),
	}
}

func StatusError(url string, status int) error {
	msg := "Checklist host answered with status %d"
	vars := []any{status}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.RemoteStatusError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("from %s: %s answered with status %d",
			fn, url, status),
	}
}

func WriteError(path string, err error) error {
	msg := "Cannot write checklist to <em>%s</em>"
	vars := []any{path}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.CopyFileError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("from %s: cannot write checklist to %s: %w",
			fn, path, err),
	}
}

func ReadError(path string, err error) error {
	msg := "Cannot read checklist <em>%s</em>"
	vars := []any{path}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.ReadFileError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("from %s: cannot read checklist %s: %w",
			fn, path, err),
	}
}

func ColumnError(path, column string) error {
	msg := "Checklist <em>%s</em> has no <em>%s</em> column"
	vars := []any{path, column}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.ChecklistColumnError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("from %s: checklist %s has no column %s",
			fn, path, column),
	}
}
