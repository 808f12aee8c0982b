package room

import "testing"

func TestDecrypt(t *testing.T) {
	for _, tt := range []struct {
		name string
		n    int
		want string
	}{
		{"qzmt-zixmtkozy-ivhz", 343, "very encrypted name"},
		{"abc", 0, "abc"},
		{"abc", 1, "bcd"},
		{"xyz", 3, "abc"},
		{"abc", 26, "abc"},
		{"abc", -1, "zab"},
		{"abc", -27, "zab"},
		{"a-b", 13, "n o"},
		{"--", 5, "  "},
		{"a.b", 1, "b.c"},
		{"", 99, ""},
	} {
		got := Decrypt(tt.name, tt.n)
		if got != tt.want {
			t.Errorf("Decrypt(%q, %d): got %q; want %q", tt.name, tt.n, got, tt.want)
		}
	}
}

func TestDecryptInverse(t *testing.T) {
	const text = "abcdefghijklmnopqrstuvwxyz"
	for n := 0; n < 26; n++ {
		got := Decrypt(Decrypt(text, n), 26-n)
		if got != text {
			t.Errorf("Decrypt(Decrypt(text, %d), %d): got %q", n, 26-n, got)
		}
	}
}

func TestDecryptHyphen(t *testing.T) {
	for n := 0; n < 60; n++ {
		got := Decrypt("a-b", n)
		if len(got) != 3 || got[1] != ' ' {
			t.Errorf("Decrypt(a-b, %d) = %q", n, got)
		}
	}
}

func TestDetector(t *testing.T) {
	d := NewDetector()
	for _, tt := range []struct {
		text string
		want bool
	}{
		{"northpole object storage", true},
		{"north", true},
		{"pole", true},
		{"objects", true},
		{"very encrypted name", false},
		{"North Pole", false},
		{"", false},
	} {
		if got := d.Match(tt.text); got != tt.want {
			t.Errorf("Match(%q): got %t; want %t", tt.text, got, tt.want)
		}
	}

	custom := NewDetector("encrypted")
	if !custom.Match("very encrypted name") {
		t.Error("custom detector missed its term")
	}
	if custom.Match("northpole object storage") {
		t.Error("custom detector matched a default term")
	}
}

func TestDetectorEmptyTerm(t *testing.T) {
	d := NewDetector("", "encrypted")
	if d.Match("ttttt uuu s r q") {
		t.Error("empty term matched an unrelated name")
	}
	if !d.Match("very encrypted name") {
		t.Error("detector missed its non-empty term")
	}
	if got := d.Terms(); len(got) != 1 || got[0] != "encrypted" {
		t.Errorf("got terms %q; want [encrypted]", got)
	}

	d = NewDetector("")
	if d.Match("ttttt uuu s r q") {
		t.Error("detector with only an empty term matched an unrelated name")
	}
	if got := d.Terms(); len(got) != len(DefaultTerms) {
		t.Errorf("got terms %q; want the defaults", got)
	}
}

func TestDetectorTermsCopy(t *testing.T) {
	d := NewDetector()
	terms := d.Terms()
	terms[0] = "changed"
	if got := d.Terms()[0]; got != "north" {
		t.Errorf("Terms()[0] = %q after modifying a copy", got)
	}
	if DefaultTerms[0] != "north" {
		t.Errorf("DefaultTerms modified: %v", DefaultTerms)
	}
}
