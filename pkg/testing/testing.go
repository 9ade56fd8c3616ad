// Package testing moves the working directory to the repository root so that
// tests share one logs/ directory and relative paths such as the sqlite file.
//
//	import (
//	  _ "liyu1981.xyz/vitals-monitor-service/pkg/testing"
//	)
package testing

import (
	"os"
	"path"
	"runtime"
)

func init() {
	_, filename, _, _ := runtime.Caller(0)
	root := path.Join(path.Dir(filename), "..", "..")
	if err := os.Chdir(root); err != nil {
		panic(err)
	}
}
