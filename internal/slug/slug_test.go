package slug

import "testing"

func TestGenerate(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Hello, World!", "hello-world"},
		{"Weekend Projects 2026", "weekend-projects-2026"},
		{"  leading and trailing  ", "leading-and-trailing"},
		{"Multiple---hyphens", "multiple-hyphens"},
		{"a  b", "a-b"},
		{"", ""},
		{"!!!", ""},
		{"already-a-slug", "already-a-slug"},
	}

	for _, c := range cases {
		if got := Generate(c.in); got != c.want {
			t.Errorf("Generate(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}
