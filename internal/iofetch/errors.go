package iofetch

import (
	"fmt"
	"runtime"

	"github.com/gnames/gn"
	"github.com/herbdata/herbario/pkg/errcode"
)

func TransportError(url string, err error) error {
	msg := "Cannot reach <em>%s</em>"
	vars := []any{url}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.TransportError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("from %s: cannot reach %s: %w",
			fn, url, err),
	}
}

func RemoteStatusError(url string, status int) error {
	msg := "Remote answered with status %d"
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

func DecodeError(url string, err error) error {
	msg := "Cannot decode response from <em>%s</em>"
	vars := []any{url}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.DecodeError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("from %s: cannot decode response from %s: %w",
			fn, url, err),
	}
}

func ParseURLError(url string, err error) error {
	msg := "Cannot parse URL <em>%s</em>"
	vars := []any{url}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.UnknownError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("from %s: cannot parse URL %s: %w",
			fn, url, err),
	}
}
