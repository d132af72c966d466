package core

import (
	"path/filepath"
	"runtime"
	"strings"
)

// SourceLocation identifies the call site of a log entry. It is supplied
// per call and never retained beyond one encode operation.
type SourceLocation struct {
	File     string
	Line     uint
	Function string
}

// Here captures the location of a stack frame. skip is the number of
// frames to ascend, with 1 identifying the caller of Here.
func Here(skip int) SourceLocation {
	pc, file, line, ok := runtime.Caller(skip)
	if !ok {
		return SourceLocation{}
	}

	var funcName string
	if fn := runtime.FuncForPC(pc); fn != nil {
		funcName = shortFuncName(fn.Name())
	}

	if line < 0 {
		line = 0
	}

	return SourceLocation{
		File:     filepath.Base(file),
		Line:     uint(line),
		Function: funcName,
	}
}

// shortFuncName strips the package path and package name from a fully
// qualified function name so it stands a chance of fitting the narrow
// function header field.
func shortFuncName(name string) string {
	if i := strings.LastIndexByte(name, '/'); i >= 0 {
		name = name[i+1:]
	}
	if i := strings.IndexByte(name, '.'); i >= 0 {
		name = name[i+1:]
	}
	return name
}
