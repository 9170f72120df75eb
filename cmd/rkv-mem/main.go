// rkv-mem runs one command against a log file, rebuilding the index from the
// log every time it starts.
package main

import (
	"os"
	"path/filepath"

	"github.com/cqkv/rkv/internal/cli"
)

func main() {
	cli.SetupLogger(os.Stderr, os.Getenv("RKV_DEBUG") != "")
	os.Exit(cli.Main(filepath.Base(os.Args[0]), os.Args[1:], cli.MemIndex, os.Stdout, os.Stderr))
}
