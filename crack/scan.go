package crack

import (
	"errors"
	"runtime"
	"strings"

	"github.com/PurpleSec/logx"

	"knivets.com/xorcrack/english"
)

// ErrNoCandidates is returned by Scan when no line could be solved.
var ErrNoCandidates = errors.New("no decodable lines in corpus")

// LineResult is the best candidate for one corpus line. Line is the 1-based
// position of the line in the input. Lines that failed to decode carry Err
// and a candidate scored english.MinScore.
type LineResult struct {
	Line      int
	Input     string
	Candidate Candidate
	Err       error
}

// Scanner runs a Solver over every line of a corpus.
type Scanner struct {
	Solver  *Solver
	Workers int
	// Log may be nil.
	Log logx.Log
}

// NewScanner returns a Scanner with the default solver and one worker per
// CPU.
func NewScanner(log logx.Log) *Scanner {
	return &Scanner{Solver: NewSolver(), Workers: runtime.NumCPU(), Log: log}
}

// TakeHighestScoreStr returns the best line of strs using a default Scanner.
func TakeHighestScoreStr(strs []string) (LineResult, error) {
	return NewScanner(nil).Scan(strs)
}

// ScanAll solves every non-blank line independently and returns the results
// in input order.
func (s *Scanner) ScanAll(lines []string) []LineResult {
	solver := s.Solver
	if solver == nil {
		solver = defaultSolver
	}
	workers := s.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	var res []LineResult
	for i, line := range lines {
		if line = strings.TrimSpace(line); line != "" {
			res = append(res, LineResult{Line: i + 1, Input: line})
		}
	}
	forEach(len(res), workers, func(i int) {
		c, err := solver.Solve(res[i].Input)
		if err != nil {
			c = Candidate{Score: english.MinScore}
		}
		res[i].Candidate, res[i].Err = c, err
	})
	if s.Log != nil {
		for _, r := range res {
			if r.Err != nil {
				s.Log.Warning("Skipping corpus line %d: %s", r.Line, r.Err)
				continue
			}
			s.Log.Trace("Line %d: key %q scored %d.", r.Line, r.Candidate.Key, r.Candidate.Score)
		}
	}
	return res
}

// Scan returns the line with the highest scoring candidate. Lines that fail
// to decode never win; the first line wins a tie.
func (s *Scanner) Scan(lines []string) (LineResult, error) {
	all := s.ScanAll(lines)
	ok := make([]LineResult, 0, len(all))
	for _, r := range all {
		if r.Err == nil {
			ok = append(ok, r)
		}
	}
	if len(ok) == 0 {
		return LineResult{}, ErrNoCandidates
	}
	win := ok[best(len(ok), func(i int) int { return ok[i].Candidate.Score })]
	if s.Log != nil {
		s.Log.Debug("Scanned %d lines (%d skipped), line %d won with score %d.", len(all), len(all)-len(ok), win.Line, win.Candidate.Score)
	}
	return win, nil
}
