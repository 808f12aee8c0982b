package room

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/rs/zerolog"
)

// A MatchPolicy decides which storage room wins when several match.
type MatchPolicy int

const (
	MatchLast MatchPolicy = iota
	MatchFirst
)

func (p MatchPolicy) String() string {
	switch p {
	case MatchLast:
		return "last"
	case MatchFirst:
		return "first"
	default:
		return fmt.Sprintf("MatchPolicy(%d)", int(p))
	}
}

// ParsePolicy parses "first" or "last".
func ParsePolicy(s string) (MatchPolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "last", "":
		return MatchLast, nil
	case "first":
		return MatchFirst, nil
	}
	return 0, fmt.Errorf("unknown match policy %q (want first or last)", s)
}

// An IOError is returned by Solve when the input cannot be read.
type IOError struct {
	Err error
}

func (e *IOError) Error() string { return "reading rooms: " + e.Err.Error() }
func (e *IOError) Unwrap() error { return e.Err }

// A Candidate is a valid room whose decrypted name matched the Detector.
type Candidate struct {
	Line int
	SID  int
	Name string // decrypted
}

// Result holds the answers and some counters for one input.
type Result struct {
	Sum        int // sum of the sids of all valid rooms
	SID        int // sid of the storage room, or -1
	Candidates []Candidate

	Rooms   int   // descriptors parsed
	Valid   int   // descriptors with a matching checksum
	Skipped int   // descriptors with a wrong checksum
	Bytes   int64 // bytes read
}

// A Solver runs the parse/verify/decrypt pipeline over an input.
// The zero value is ready to use.
type Solver struct {
	Log         zerolog.Logger
	ChecksumLen int       // 0 means DefaultChecksumLen
	Detector    *Detector // nil means NewDetector()
	Policy      MatchPolicy

	// KeepGoing makes Solve return every unparsable line at the end,
	// joined with errors.Join, instead of stopping at the first one.
	KeepGoing bool
}

type countingReader struct {
	r io.Reader
	n int64
}

func (cr *countingReader) Read(p []byte) (int, error) {
	n, err := cr.r.Read(p)
	cr.n += int64(n)
	return n, err
}

// Solve reads one descriptor per line from r. Blank lines are skipped.
// Descriptors with a wrong checksum are logged and skipped; any other
// failure is returned with a nil Result.
func (s *Solver) Solve(r io.Reader) (*Result, error) {
	n := s.ChecksumLen
	if n == 0 {
		n = DefaultChecksumLen
	}
	if n < 1 || n > 26 {
		return nil, &ChecksumLengthError{N: n}
	}
	det := s.Detector
	if det == nil {
		det = NewDetector()
	}

	cr := &countingReader{r: r}
	scanner := bufio.NewScanner(cr)
	res := &Result{SID: -1}
	var parseErrs []error
	lineno := 0
	for scanner.Scan() {
		lineno++
		line := strings.TrimSpace(scanner.Text())
		s.Log.Debug().Int("line", lineno).Str("text", line).Msg("read line")
		if line == "" {
			s.Log.Debug().Int("line", lineno).Msg("skipping blank line")
			continue
		}

		rm, err := Parse(line)
		if err != nil {
			var perr *ParseError
			if errors.As(err, &perr) {
				perr.Line = lineno
			}
			if !s.KeepGoing {
				return nil, err
			}
			parseErrs = append(parseErrs, err)
			continue
		}
		res.Rooms++

		sum, ok, err := rm.Verify(n)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineno, err)
		}
		if !ok {
			s.Log.Warn().
				Int("line", lineno).
				Str("name", rm.Name).
				Str("got", rm.Checksum).
				Str("want", sum).
				Msg("invalid checksum")
			res.Skipped++
			continue
		}
		res.Valid++
		res.Sum += rm.SID

		plain := Decrypt(rm.Name, rm.SID)
		s.Log.Debug().Int("line", lineno).Int("sid", rm.SID).Str("plain", plain).Msg("decrypted")
		if !det.Match(plain) {
			continue
		}
		s.Log.Info().Int("line", lineno).Int("sid", rm.SID).Str("name", plain).Msg("found storage candidate")
		res.Candidates = append(res.Candidates, Candidate{Line: lineno, SID: rm.SID, Name: plain})
		if s.Policy == MatchLast || len(res.Candidates) == 1 {
			res.SID = rm.SID
		}
	}
	res.Bytes = cr.n
	if err := scanner.Err(); err != nil {
		return nil, &IOError{Err: err}
	}
	if len(parseErrs) > 0 {
		return nil, errors.Join(parseErrs...)
	}

	if len(res.Candidates) > 1 {
		sids := make([]int, len(res.Candidates))
		for i, c := range res.Candidates {
			sids[i] = c.SID
		}
		s.Log.Warn().
			Ints("sids", sids).
			Stringer("policy", s.Policy).
			Int("chosen", res.SID).
			Msg("more than one storage candidate")
	}
	return res, nil
}
