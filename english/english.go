// Package english scores byte buffers by how much they look like English
// prose. Scores are only comparable within one search; they are not
// normalised to any range.
package english

import (
	"math"
	"unicode"
	"unicode/utf8"
)

// MinScore is the score of a buffer that is not valid UTF-8.
const MinScore = math.MinInt32

// Config holds the weights and thresholds of the scorer. A Config must not
// be modified once it is in use; it is shared between goroutines.
type Config struct {
	// Frequencies maps lowercase letters to their share of English letters.
	Frequencies map[byte]float64

	VowelLow           float64
	VowelMid           float64
	VowelHigh          float64
	VowelLowScore      int
	VowelMidScore      int
	VowelHighScore     int
	MaxWordLength      float64
	WordLengthScore    int
	FrequencyTolerance float64
	FrequencyScore     int
	MaxRelativeDiff    float64
	// MaxLetterBonus caps the per-letter floor(1/diff) term.
	MaxLetterBonus     int
	UnknownLetterFreq  float64
	UnknownLetterScore int
}

// DefaultConfig returns the stock weights.
func DefaultConfig() *Config {
	return &Config{
		Frequencies: map[byte]float64{
			'e': 0.1202,
			't': 0.091,
			'a': 0.0812,
			'o': 0.0768,
			'i': 0.0731,
			'n': 0.0695,
			's': 0.0628,
			'r': 0.0602,
			'h': 0.0592,
		},
		VowelLow:           0.15,
		VowelMid:           0.20,
		VowelHigh:          0.30,
		VowelLowScore:      -10,
		VowelMidScore:      20,
		VowelHighScore:     50,
		MaxWordLength:      12,
		WordLengthScore:    50,
		FrequencyTolerance: 0.01,
		FrequencyScore:     10,
		MaxRelativeDiff:    0.5,
		MaxLetterBonus:     1000,
		UnknownLetterFreq:  0.1,
		UnknownLetterScore: -5,
	}
}

var defaultConfig = DefaultConfig()

// Score rates buf with the default config.
func Score(buf []byte) int {
	return defaultConfig.Score(buf)
}

type counts struct {
	letters [26]int
	spaces  int
	vowels  int
}

func count(buf []byte) counts {
	var c counts
	for _, r := range string(buf) {
		if r == ' ' {
			c.spaces++
			continue
		}
		r = unicode.ToLower(r)
		if r < 'a' || r > 'z' {
			continue
		}
		c.letters[r-'a']++
		switch r {
		case 'a', 'e', 'i', 'o', 'u':
			c.vowels++
		}
	}
	return c
}

// Score rates buf. Invalid UTF-8 gets MinScore.
func (c *Config) Score(buf []byte) int {
	if !utf8.Valid(buf) {
		return MinScore
	}
	var (
		cnt   = count(buf)
		total = len(buf)
		rest  = float64(total - cnt.spaces)
		score int
	)
	if rest > 0 {
		score += c.vowelScore(float64(cnt.vowels) / rest)
	}
	if cnt.spaces > 0 && float64(total)/float64(cnt.spaces) < c.MaxWordLength {
		score += c.WordLengthScore
	}
	if rest <= 0 {
		return score
	}
	for i, n := range cnt.letters {
		if n == 0 {
			continue
		}
		freq := float64(n) / rest
		ref, ok := c.Frequencies[byte('a'+i)]
		if !ok {
			if freq > c.UnknownLetterFreq {
				score += c.UnknownLetterScore
			}
			continue
		}
		if freq > ref-c.FrequencyTolerance {
			score += c.FrequencyScore
		}
		diff := math.Abs(ref-freq) / ref
		if diff < c.MaxRelativeDiff {
			score += c.letterBonus(diff)
		} else {
			score -= c.letterBonus(diff)
		}
	}
	return score
}

func (c *Config) vowelScore(ratio float64) int {
	switch {
	case ratio < c.VowelLow:
		return c.VowelLowScore
	case ratio > c.VowelHigh:
		return c.VowelHighScore
	case ratio > c.VowelMid:
		return c.VowelMidScore
	}
	return 0
}

// letterBonus is floor(1/diff), capped so an exact match does not divide
// by zero.
func (c *Config) letterBonus(diff float64) int {
	if diff == 0 {
		return c.MaxLetterBonus
	}
	if b := math.Floor(1 / diff); b < float64(c.MaxLetterBonus) {
		return int(b)
	}
	return c.MaxLetterBonus
}
