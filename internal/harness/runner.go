package harness

import (
	"context"
	"fmt"
	"io"
)

// Result is the outcome of replaying one Case.
type Result struct {
	Case
	Got    string
	Passed bool
}

// Report collects the results of a run in fixture order.
type Report struct {
	Results []Result
	Passed  int
	Failed  int
}

// Total is the number of rows that were run.
func (r Report) Total() int {
	return r.Passed + r.Failed
}

// PassRate returns the share of passing rows in percent, 0 for an empty run.
func (r Report) PassRate() float64 {
	if r.Total() == 0 {
		return 0
	}
	return float64(r.Passed) * 100 / float64(r.Total())
}

// OK reports whether every row passed.
func (r Report) OK() bool {
	return r.Failed == 0
}

// Run feeds every case through convert. It stops early, returning the partial
// report and the context error, if ctx is cancelled.
func Run(ctx context.Context, cases []Case, convert func(string) string) (Report, error) {
	report := Report{Results: make([]Result, 0, len(cases))}
	for _, c := range cases {
		if err := ctx.Err(); err != nil {
			return report, err
		}
		got := convert(c.Input)
		res := Result{Case: c, Got: got, Passed: got == c.Expected}
		if res.Passed {
			report.Passed++
		} else {
			report.Failed++
		}
		report.Results = append(report.Results, res)
	}
	return report, nil
}

// Write prints one PASS/FAIL line per row followed by the summary.
func (r Report) Write(w io.Writer) error {
	for _, res := range r.Results {
		var err error
		if res.Passed {
			_, err = fmt.Fprintf(w, "PASS line %d: %q -> %s\n", res.Line, res.Input, res.Got)
		} else {
			_, err = fmt.Fprintf(w, "FAIL line %d: %q\n    expected: %s\n    got:      %s\n", res.Line, res.Input, res.Expected, res.Got)
		}
		if err != nil {
			return err
		}
	}
	_, err := fmt.Fprintf(w, "%d/%d passed (%.1f%%)\n", r.Passed, r.Total(), r.PassRate())
	return err
}
