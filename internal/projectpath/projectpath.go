package projectpath

import (
	"path/filepath"
	"runtime"
)

var (
	_, b, _, _ = runtime.Caller(0)

	// Root is the absolute path of the project root directory.
	Root = filepath.Join(filepath.Dir(b), "../..")
)
