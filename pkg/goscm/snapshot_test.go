package goscm

import (
	"testing"

	"github.com/gkampitakis/go-snaps/snaps"
)

// Snapshot-tests a handful of representative programs end to end through
// the façade, mirroring the teacher's fixture-driven snapshot approach
// (internal/interp/fixture_test.go) at a much smaller scale.
func TestEvalSnapshots(t *testing.T) {
	programs := map[string]string{
		"arithmetic":   "(+ 1 (* 2 3) (- 10 4))",
		"list-building": "(map (lambda (x) (* x x)) '(1 2 3 4 5))",
		"tail-recursive-sum": `
			(define (sum-to n acc)
			  (if (= n 0) acc (sum-to (- n 1) (+ acc n))))
			(sum-to 1000 0)
		`,
		"quasiquote": "(let ((x 2) (y 3)) `(sum is ,(+ x y)))",
	}

	for name, src := range programs {
		t.Run(name, func(t *testing.T) {
			interp := New()
			got, err := interp.Eval(src)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			snaps.MatchSnapshot(t, got)
		})
	}
}
