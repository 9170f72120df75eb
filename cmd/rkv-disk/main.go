// rkv-disk runs one command against a log file. After every write it stores a
// copy of the index in the log under the "+index" key, and get reads through
// that copy instead of the index rebuilt at startup.
package main

import (
	"os"
	"path/filepath"

	"github.com/cqkv/rkv/internal/cli"
)

func main() {
	cli.SetupLogger(os.Stderr, os.Getenv("RKV_DEBUG") != "")
	os.Exit(cli.Main(filepath.Base(os.Args[0]), os.Args[1:], cli.DiskIndex, os.Stdout, os.Stderr))
}
