// Package crack recovers single-byte XOR keys by brute force, scoring every
// candidate plaintext for how English it looks, and picks the one encrypted
// line out of a corpus of candidates.
package crack

import (
	"fmt"
	"sync"

	"knivets.com/xorcrack/bitops"
	"knivets.com/xorcrack/codec"
	"knivets.com/xorcrack/english"
)

// Scorer rates a candidate plaintext; higher is better.
type Scorer interface {
	Score([]byte) int
}

// Candidate is the result of one brute-force trial.
type Candidate struct {
	Score     int
	Key       byte
	Plaintext []byte
}

// Text returns the plaintext as a string.
func (c Candidate) Text() string {
	return string(c.Plaintext)
}

// Solver searches a keyspace for the single-byte key that yields the most
// English plaintext.
type Solver struct {
	Scorer  Scorer
	Keys    Keyspace
	Workers int
}

// NewSolver returns a Solver using the default English scorer over the
// printable keyspace.
func NewSolver() *Solver {
	return &Solver{Scorer: english.DefaultConfig(), Keys: Printable(), Workers: 1}
}

var defaultSolver = NewSolver()

// SolveSingleCharXOR breaks ct with the default solver.
func SolveSingleCharXOR(ct []byte) Candidate {
	res, _ := defaultSolver.SolveBytes(ct)
	return res
}

// Solve decodes a hex ciphertext and breaks it. Malformed hex fails with
// codec.ErrInvalidEncoding before any key is tried.
func (s *Solver) Solve(hx string) (Candidate, error) {
	ct, err := codec.HexToBytes(hx)
	if err != nil {
		return Candidate{}, fmt.Errorf("decoding ciphertext: %w", err)
	}
	return s.SolveBytes(ct)
}

// SolveBytes tries every key in the keyspace against ct and returns the
// highest scoring candidate.
func (s *Solver) SolveBytes(ct []byte) (Candidate, error) {
	if len(s.Keys) == 0 {
		return Candidate{}, ErrEmptyKeyspace
	}
	res := make([]Candidate, len(s.Keys))
	forEach(len(s.Keys), s.Workers, func(i int) {
		res[i] = s.try(ct, s.Keys[i])
	})
	return res[best(len(res), func(i int) int { return res[i].Score })], nil
}

func (s *Solver) try(ct []byte, bt byte) Candidate {
	// The operands always have equal length.
	pt, _ := bitops.XOR(ct, bitops.GenSingleByteSlice(bt, len(ct)))
	return Candidate{Score: s.Scorer.Score(pt), Key: bt, Plaintext: pt}
}

// forEach calls fn for every index in [0, n) on up to workers goroutines
// and returns once all calls are done. Each index is handled exactly once.
func forEach(n, workers int, fn func(int)) {
	if workers > n {
		workers = n
	}
	if workers <= 1 {
		for i := 0; i < n; i++ {
			fn(i)
		}
		return
	}
	var wg sync.WaitGroup
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func(w int) {
			defer wg.Done()
			for i := w; i < n; i += workers {
				fn(i)
			}
		}(w)
	}
	wg.Wait()
}

// best returns the index with the highest score, the lowest index winning
// ties. n must be positive.
func best(n int, score func(int) int) int {
	idx := 0
	for i := 1; i < n; i++ {
		if score(i) > score(idx) {
			idx = i
		}
	}
	return idx
}
