package room

import "strings"

// Decrypt rotates every letter of name forward by n places (wrapping
// around z) and turns hyphens into spaces. Other bytes are kept as is.
func Decrypt(name string, n int) string {
	n %= 26
	if n < 0 {
		n += 26
	}
	var b strings.Builder
	b.Grow(len(name))
	for i := 0; i < len(name); i++ {
		c := name[i]
		switch {
		case c == '-':
			c = ' '
		case c >= 'a' && c <= 'z':
			c = 'a' + (c-'a'+byte(n))%26
		}
		b.WriteByte(c)
	}
	return b.String()
}

// DefaultTerms are the words that mark the room where the North Pole
// objects are stored.
var DefaultTerms = []string{"north", "pole", "object"}

// A Detector finds storage rooms among decrypted names.
type Detector struct {
	terms []string
}

// NewDetector returns a Detector looking for any of terms, or for
// DefaultTerms if none are given. Empty terms are dropped since they
// would match every name.
func NewDetector(terms ...string) *Detector {
	var d Detector
	for _, term := range terms {
		if term != "" {
			d.terms = append(d.terms, term)
		}
	}
	if len(d.terms) == 0 {
		d.terms = append(d.terms, DefaultTerms...)
	}
	return &d
}

// Terms returns the search terms of d.
func (d *Detector) Terms() []string {
	return append([]string(nil), d.terms...)
}

// Match reports whether plaintext contains any of d's terms.
func (d *Detector) Match(plaintext string) bool {
	for _, term := range d.terms {
		if strings.Contains(plaintext, term) {
			return true
		}
	}
	return false
}
