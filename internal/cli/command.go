// Package cli holds what the rkv-mem and rkv-disk front ends share:
// argument parsing, usage text and command dispatch.
package cli

import (
	"errors"
	"fmt"
	"strings"
)

const (
	VerbGet    = "get"
	VerbDelete = "delete"
	VerbInsert = "insert"
	VerbUpdate = "update"
)

var ErrUsage = errors.New("usage error")

type Command struct {
	Path  string
	Verb  string
	Key   []byte
	Value []byte
}

// Usage return the usage text for the program name prog
func Usage(prog string) string {
	var sb strings.Builder
	sb.WriteString("Usage:\n")
	for _, line := range []string{
		"<FILE> get <key>",
		"<FILE> delete <key>",
		"<FILE> insert <key> <value>",
		"<FILE> update <key> <value>",
	} {
		fmt.Fprintf(&sb, "  %s %s\n", prog, line)
	}
	return sb.String()
}

// Parse parses the arguments following the program name
func Parse(args []string) (*Command, error) {
	if len(args) < 3 {
		return nil, fmt.Errorf("%w: missing arguments", ErrUsage)
	}

	cmd := &Command{
		Path: args[0],
		Verb: args[1],
		Key:  []byte(args[2]),
	}

	want := 3
	switch cmd.Verb {
	case VerbGet, VerbDelete:
	case VerbInsert, VerbUpdate:
		want = 4
		if len(args) < want {
			return nil, fmt.Errorf("%w: %s needs a value", ErrUsage, cmd.Verb)
		}
		cmd.Value = []byte(args[3])
	default:
		return nil, fmt.Errorf("%w: unknown command %q", ErrUsage, cmd.Verb)
	}

	if len(args) > want {
		return nil, fmt.Errorf("%w: too many arguments for %s", ErrUsage, cmd.Verb)
	}
	return cmd, nil
}
