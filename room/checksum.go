package room

import "fmt"

// DefaultChecksumLen is the checksum length used by real descriptors.
const DefaultChecksumLen = 5

// A ChecksumLengthError is returned by Checksum for a length that the
// 26-letter alphabet cannot fill.
type ChecksumLengthError struct {
	N int
}

func (e *ChecksumLengthError) Error() string {
	return fmt.Sprintf("checksum length %d out of range [1, 26]", e.N)
}

// Checksum computes the n most common letters of name, most common first,
// with ties broken alphabetically. Characters other than a-z are ignored.
// If name has fewer than n distinct letters the rest of the checksum is
// made of the unused letters in alphabetical order.
func Checksum(name string, n int) (string, error) {
	if n < 1 || n > 26 {
		return "", &ChecksumLengthError{N: n}
	}

	var counts [26]int
	top := 0
	for i := 0; i < len(name); i++ {
		c := name[i]
		if c < 'a' || c > 'z' {
			continue
		}
		counts[c-'a']++
		if counts[c-'a'] > top {
			top = counts[c-'a']
		}
	}

	sum := make([]byte, 0, n)
	for len(sum) < n {
		// A consumed letter is -1, so next stays at 0 once only
		// zero-count letters remain and those fill the next tier.
		next := 0
		for i, count := range counts {
			if count == top {
				sum = append(sum, byte('a'+i))
				counts[i] = -1
				if len(sum) == n {
					break
				}
				continue
			}
			if count < top && count > next {
				next = count
			}
		}
		top = next
	}
	return string(sum), nil
}

// Verify computes the n-letter checksum of r's name and reports whether
// it equals r.Checksum. The computed checksum is returned either way.
func (r Room) Verify(n int) (sum string, ok bool, err error) {
	sum, err = Checksum(r.Name, n)
	if err != nil {
		return "", false, err
	}
	return sum, sum == r.Checksum, nil
}
