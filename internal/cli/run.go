package cli

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/cqkv/rkv"
	"github.com/cqkv/rkv/snapshot"
	"github.com/phuslu/log"
)

type Mode int8

const (
	// MemIndex rebuilds the index from the log on every run and uses it for reads
	MemIndex Mode = iota
	// DiskIndex saves the index into the log after every write and reads through that copy
	DiskIndex
)

var ErrReservedKey = errors.New("key is reserved for the index snapshot")

type Runner struct {
	Mode    Mode
	Out     io.Writer
	Options []rkv.Option
}

// Run opens the store, replays it and executes cmd
func (r *Runner) Run(cmd *Command) error {
	if r.Mode == DiskIndex && bytes.Equal(cmd.Key, snapshot.DefaultKey) {
		return fmt.Errorf("%w: %q", ErrReservedKey, cmd.Key)
	}

	store, err := rkv.Open(cmd.Path, r.Options...)
	if err != nil {
		return err
	}
	defer store.Close()

	if err = store.Load(); err != nil {
		return fmt.Errorf("load %s: %w", cmd.Path, err)
	}
	log.Debug().Str("path", cmd.Path).Int("keys", store.Len()).Msg("store loaded")

	sn := snapshot.New(store, nil)

	switch cmd.Verb {
	case VerbGet:
		var (
			value []byte
			found bool
		)
		if r.Mode == DiskIndex {
			value, found, err = sn.Get(cmd.Key)
		} else {
			value, found, err = store.Get(cmd.Key)
		}
		if err != nil {
			return err
		}
		if !found {
			_, err = fmt.Fprintf(r.Out, "key %q not found\n", cmd.Key)
			return err
		}
		_, err = fmt.Fprintf(r.Out, "%s\n", value)
		return err
	case VerbDelete:
		err = store.Delete(cmd.Key)
	case VerbInsert:
		err = store.Insert(cmd.Key, cmd.Value)
	case VerbUpdate:
		err = store.Update(cmd.Key, cmd.Value)
	default:
		return fmt.Errorf("%w: unknown command %q", ErrUsage, cmd.Verb)
	}
	if err != nil {
		return err
	}
	log.Debug().Str("verb", cmd.Verb).Str("key", string(cmd.Key)).Msg("record appended")

	if r.Mode == DiskIndex {
		return sn.Save()
	}
	return store.Sync()
}

// Main is the whole front end, it returns the process exit code
func Main(prog string, args []string, mode Mode, stdout, stderr io.Writer) int {
	cmd, err := Parse(args)
	if err != nil {
		fmt.Fprintf(stderr, "%v\n%s", err, Usage(prog))
		return 2
	}

	runner := &Runner{Mode: mode, Out: stdout}
	if err = runner.Run(cmd); err != nil {
		log.Error().Err(err).Str("path", cmd.Path).Str("command", cmd.Verb).Msg("command failed")
		return 1
	}
	return 0
}

// SetupLogger send diagnostics to w, debug enables debug level
func SetupLogger(w io.Writer, debug bool) {
	level := log.InfoLevel
	if debug {
		level = log.DebugLevel
	}
	log.DefaultLogger = log.Logger{
		Level:  level,
		Writer: &log.ConsoleWriter{Writer: w},
	}
}
