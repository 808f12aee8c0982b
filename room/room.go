// Package room validates and decrypts room descriptors of the form
// name-sid[checksum].
package room

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
)

// A Room is one parsed room descriptor.
type Room struct {
	Name     string // encrypted name: lowercase letters and hyphens
	SID      int    // sector id, also the rotation amount
	Checksum string // checksum as given in the descriptor
}

func (r Room) String() string {
	return fmt.Sprintf("%s-%d[%s]", r.Name, r.SID, r.Checksum)
}

var roomPattern = regexp.MustCompile(`^([-a-z]+)-(\d+)\[([a-z]+)\]$`)

// ErrNoMatch is wrapped by a ParseError when a line does not have the
// name-sid[checksum] shape.
var ErrNoMatch = errors.New("line does not match name-sid[checksum]")

// A ParseError records a line that could not be turned into a Room.
type ParseError struct {
	Line int // 1-based; 0 if unknown
	Text string
	Err  error
}

func (e *ParseError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("line %d: cannot parse %q: %s", e.Line, e.Text, e.Err)
	}
	return fmt.Sprintf("cannot parse %q: %s", e.Text, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// Parse parses a single descriptor such as "aaaaa-bbb-z-y-x-123[abxyz]".
func Parse(line string) (Room, error) {
	m := roomPattern.FindStringSubmatch(line)
	if len(m) != 4 {
		return Room{}, &ParseError{Text: line, Err: ErrNoMatch}
	}
	sid, err := strconv.Atoi(m[2])
	if err != nil {
		return Room{}, &ParseError{Text: line, Err: err}
	}
	return Room{Name: m[1], SID: sid, Checksum: m[3]}, nil
}
