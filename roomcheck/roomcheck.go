// Command roomcheck sums the sector ids of the real rooms in a list of
// encrypted room descriptors and finds the room where the North Pole
// objects are stored.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/cespare/roomcheck/room"
	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	cmd := newCommand()
	if args == nil {
		// cobra falls back to os.Args for a nil slice.
		args = []string{}
	}
	cmd.SetArgs(args)
	cmd.SetIn(stdin)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	if err := cmd.Execute(); err != nil {
		return 1
	}
	return 0
}

type flags struct {
	cfgFile     string
	verbose     int
	quiet       bool
	checksumLen int
	terms       []string
	match       string
	keepGoing   bool
}

func newCommand() *cobra.Command {
	var f flags
	cmd := &cobra.Command{
		Use:   "roomcheck [flags] FILE",
		Short: "Validate and decrypt room descriptors",
		Long: `roomcheck reads one name-sid[checksum] descriptor per line from FILE
(or standard input if FILE is -), prints the sum of the sector ids of
the rooms whose checksum is right, and the sector id of the room whose
decrypted name mentions the North Pole objects (-1 if there is none).`,
		SilenceUsage:          true,
		SilenceErrors:         true,
		DisableFlagsInUseLine: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				return nil
			}
			err := fmt.Errorf("expected 1 argument, got %d", len(args))
			usageError(cmd, err)
			return err
		},
		PreRunE: func(cmd *cobra.Command, _ []string) error {
			fl := cmd.Flags()
			if fl.Changed("verbose") && fl.Changed("quiet") {
				err := errors.New("--verbose and --quiet cannot be used together")
				usageError(cmd, err)
				return err
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return solve(cmd, &f, args[0])
		},
	}
	cmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		usageError(cmd, err)
		return err
	})

	fl := cmd.Flags()
	fl.StringVarP(&f.cfgFile, "config", "c", "", "INI configuration `file`")
	fl.CountVarP(&f.verbose, "verbose", "v", "more log output (repeat for debug)")
	fl.BoolVarP(&f.quiet, "quiet", "q", false, "only log errors")
	fl.IntVarP(&f.checksumLen, "checksum-len", "n", room.DefaultChecksumLen, "checksum length")
	fl.StringArrayVarP(&f.terms, "term", "t", nil, "storage room search `term` (repeatable; default north, pole, object)")
	fl.StringVar(&f.match, "match", "last", "which storage room wins if several match: first or last")
	fl.BoolVarP(&f.keepGoing, "keep-going", "k", false, "report every unparsable line before failing")
	return cmd
}

func usageError(cmd *cobra.Command, err error) {
	w := cmd.ErrOrStderr()
	fmt.Fprintln(w, "Error:", err)
	fmt.Fprint(w, cmd.UsageString())
}

// effectiveConfig layers the config file and the flags that were set
// explicitly over the defaults.
func effectiveConfig(cmd *cobra.Command, f *flags) (config, error) {
	c := defaultConfig()
	if f.cfgFile != "" {
		file, err := os.Open(f.cfgFile)
		if err != nil {
			return c, err
		}
		defer file.Close()
		if err := c.load(file); err != nil {
			return c, fmt.Errorf("%s: %w", f.cfgFile, err)
		}
	}

	fl := cmd.Flags()
	if fl.Changed("verbose") || fl.Changed("quiet") {
		c.level = verbosityLevel(f.quiet, f.verbose)
	}
	if fl.Changed("checksum-len") {
		if err := checkChecksumLen(f.checksumLen); err != nil {
			return c, fmt.Errorf("--checksum-len: %s", err)
		}
		c.checksumLen = f.checksumLen
	}
	if fl.Changed("term") {
		for _, term := range f.terms {
			if term == "" {
				return c, errors.New("--term: empty search term")
			}
		}
		c.terms = f.terms
	}
	if fl.Changed("match") {
		p, err := room.ParsePolicy(f.match)
		if err != nil {
			return c, err
		}
		c.policy = p
	}
	c.keepGoing = f.keepGoing
	return c, nil
}

func solve(cmd *cobra.Command, f *flags, path string) error {
	c, err := effectiveConfig(cmd, f)
	if err != nil {
		log := newLogger(cmd.ErrOrStderr(), verbosityLevel(f.quiet, f.verbose))
		log.Error().Err(err).Msg("cannot load configuration")
		return err
	}
	log := newLogger(cmd.ErrOrStderr(), c.level)
	det := room.NewDetector(c.terms...)
	log.Debug().
		Str("input", path).
		Int("checksum_len", c.checksumLen).
		Strs("terms", det.Terms()).
		Stringer("match", c.policy).
		Msg("configuration")

	var r io.Reader = cmd.InOrStdin()
	if path != "-" {
		file, err := os.Open(path)
		if err != nil {
			log.Error().Err(err).Msg("cannot open input")
			return err
		}
		defer file.Close()
		r = file
	}

	s := &room.Solver{
		Log:         log,
		ChecksumLen: c.checksumLen,
		Detector:    det,
		Policy:      c.policy,
		KeepGoing:   c.keepGoing,
	}
	res, err := s.Solve(r)
	if err != nil {
		errs := []error{err}
		if joined, ok := err.(interface{ Unwrap() []error }); ok {
			errs = joined.Unwrap()
		}
		for _, err := range errs {
			log.Error().Err(err).Msg("cannot solve")
		}
		return err
	}

	log.Info().
		Str("read", humanize.Bytes(uint64(res.Bytes))).
		Str("rooms", humanize.Comma(int64(res.Rooms))).
		Str("valid", humanize.Comma(int64(res.Valid))).
		Str("skipped", humanize.Comma(int64(res.Skipped))).
		Msg("done")

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Part 1: %d\n", res.Sum)
	fmt.Fprintf(out, "Part 2: %d\n", res.SID)
	return nil
}
