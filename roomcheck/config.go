package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/cespare/roomcheck/room"
	"github.com/rs/zerolog"
	"github.com/vaughan0/go-ini"
)

// config is the effective configuration after defaults, the config file
// and the command line flags have been applied, in that order.
type config struct {
	checksumLen int
	terms       []string
	policy      room.MatchPolicy
	level       zerolog.Level
	keepGoing   bool
}

func defaultConfig() config {
	return config{
		checksumLen: room.DefaultChecksumLen,
		terms:       room.DefaultTerms,
		policy:      room.MatchLast,
		level:       zerolog.WarnLevel,
	}
}

// load reads an INI file such as
//
//	[room]
//	checksum_len = 5
//	terms = north, pole, object
//	match = last
//
//	[log]
//	level = warn
//
// into c. Keys that are absent leave c unchanged.
func (c *config) load(r io.Reader) error {
	file, err := ini.Load(r)
	if err != nil {
		return err
	}
	if s, ok := file.Get("room", "checksum_len"); ok {
		n, err := strconv.Atoi(strings.TrimSpace(s))
		if err != nil {
			return fmt.Errorf("room.checksum_len: %s", err)
		}
		if err := checkChecksumLen(n); err != nil {
			return fmt.Errorf("room.checksum_len: %s", err)
		}
		c.checksumLen = n
	}
	if s, ok := file.Get("room", "terms"); ok {
		terms := splitTerms(s)
		if len(terms) == 0 {
			return fmt.Errorf("room.terms: no terms in %q", s)
		}
		c.terms = terms
	}
	if s, ok := file.Get("room", "match"); ok {
		p, err := room.ParsePolicy(s)
		if err != nil {
			return fmt.Errorf("room.match: %s", err)
		}
		c.policy = p
	}
	if s, ok := file.Get("log", "level"); ok {
		level, err := parseLevel(s)
		if err != nil {
			return fmt.Errorf("log.level: %s", err)
		}
		c.level = level
	}
	return nil
}

// checkChecksumLen rejects lengths the alphabet cannot fill. Zero is not
// let through to room.Solver, which would read it as the default.
func checkChecksumLen(n int) error {
	if n < 1 || n > 26 {
		return &room.ChecksumLengthError{N: n}
	}
	return nil
}

func splitTerms(s string) []string {
	var terms []string
	for _, term := range strings.Split(s, ",") {
		if term = strings.TrimSpace(term); term != "" {
			terms = append(terms, term)
		}
	}
	return terms
}

func parseLevel(s string) (zerolog.Level, error) {
	switch level := strings.ToLower(strings.TrimSpace(s)); level {
	case "error", "warn", "info", "debug":
		return zerolog.ParseLevel(level)
	case "warning":
		return zerolog.WarnLevel, nil
	}
	return zerolog.NoLevel, fmt.Errorf("unknown level %q", s)
}

// verbosityLevel maps -q and the number of -v flags to a log level.
func verbosityLevel(quiet bool, verbose int) zerolog.Level {
	switch {
	case quiet:
		return zerolog.ErrorLevel
	case verbose == 0:
		return zerolog.WarnLevel
	case verbose == 1:
		return zerolog.InfoLevel
	default:
		return zerolog.DebugLevel
	}
}
