package cmd

import "testing"

func TestBalanced(t *testing.T) {
	cases := []struct {
		src  string
		want bool
	}{
		{"(+ 1 2)", true},
		{"(+ 1 2", false},
		{"(+ 1 2))", true},
		{`(display "(")`, true},
		{`(display "\"(")`, true},
		{"", true},
		{"42", true},
		{"(let ((x 1))", false},
	}
	for _, c := range cases {
		if got := balanced(c.src); got != c.want {
			t.Errorf("balanced(%q) = %v, want %v", c.src, got, c.want)
		}
	}
}
