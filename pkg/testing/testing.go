package testing

import (
	"os"
	"path"
	"runtime"
)

func init() {
	// cd to the project root so relative paths (logs/, *.db) land in one place during tests
	// usage is
	//
	//   in some_test.go,
	//   import (
	//     _ "liyu1981.xyz/glucose-tracker/pkg/testing"
	//   )

	_, filename, _, _ := runtime.Caller(0)
	dir := path.Join(path.Dir(filename), "..", "..")
	if err := os.Chdir(dir); err != nil {
		panic(err)
	}

	// tests never pop real desktop notifications
	_ = os.Setenv("HEALTH_NOTIFICATIONS", "false")
}
