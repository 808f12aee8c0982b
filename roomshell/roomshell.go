// Command roomshell is an interactive prompt for looking at single room
// descriptors: type one in and it shows the checksum it should have and
// what the name decrypts to.
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/cespare/roomcheck/room"
	"github.com/chzyer/readline"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

func main() {
	var (
		n     int
		terms []string
	)
	cmd := &cobra.Command{
		Use:          "roomshell",
		Short:        "Inspect room descriptors interactively",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if _, err := room.Checksum("", n); err != nil {
				return err
			}
			return shell(n, room.NewDetector(terms...))
		},
	}
	cmd.Flags().IntVarP(&n, "checksum-len", "n", room.DefaultChecksumLen, "checksum length")
	cmd.Flags().StringArrayVarP(&terms, "term", "t", nil, "storage room search `term` (repeatable)")
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func shell(n int, det *room.Detector) error {
	cfg := &readline.Config{
		Prompt:          "room> ",
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	}
	if home, err := os.UserHomeDir(); err == nil {
		cfg.HistoryFile = filepath.Join(home, ".roomshell_history")
	}
	l, err := readline.NewEx(cfg)
	if err != nil {
		return err
	}
	defer l.Close()

	log := zerolog.New(zerolog.ConsoleWriter{Out: l.Stderr(), NoColor: true}).
		Level(zerolog.WarnLevel)
	for {
		line, err := l.Readline()
		switch err {
		case nil:
		case readline.ErrInterrupt:
			continue
		case io.EOF:
			return nil
		default:
			log.Warn().Err(err).Msg("readline")
			continue
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		inspect(l.Stdout(), line, n, det)
	}
}

// inspect writes what is known about the descriptor line to w.
func inspect(w io.Writer, line string, n int, det *room.Detector) {
	r, err := room.Parse(line)
	if err != nil {
		fmt.Fprintln(w, err)
		return
	}
	sum, ok, err := r.Verify(n)
	if err != nil {
		fmt.Fprintln(w, err)
		return
	}
	plain := room.Decrypt(r.Name, r.SID)
	fmt.Fprintf(w, "name:     %s\n", r.Name)
	fmt.Fprintf(w, "sid:      %d\n", r.SID)
	fmt.Fprintf(w, "checksum: %s (computed %s)\n", r.Checksum, sum)
	if ok {
		fmt.Fprintln(w, "valid:    yes")
	} else {
		fmt.Fprintln(w, "valid:    no")
	}
	fmt.Fprintf(w, "plain:    %s\n", plain)
	if det.Match(plain) {
		fmt.Fprintln(w, "storage:  yes")
	}
}
