package engine

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// VerdictStatus is the outcome of a Judge lookup.
type VerdictStatus uint8

const (
	StatusInvalid VerdictStatus = iota
	StatusValid
	StatusObjectionable
)

func (s VerdictStatus) String() string {
	switch s {
	case StatusValid:
		return "Valid"
	case StatusObjectionable:
		return "Objectionable"
	default:
		return "Invalid"
	}
}

// Verdict is what the Judge returns for a word. Score is the
// "extensibility" heuristic from the dictionary file — exposed for
// tooling (hints, UI) but never consulted by the rules engine itself.
type Verdict struct {
	Status VerdictStatus
	Score  int
	Freq   float64
}

// IsValid reports whether the rules engine should treat this verdict as
// a valid word. Objectionable words are present in the list but count
// as invalid for rules purposes by default (spec §4.3, §9 open
// question (c)).
func (v Verdict) IsValid() bool {
	return v.Status == StatusValid
}

type dictEntry struct {
	score         int
	freq          float64
	objectionable bool
}

// Judge is the read-only wordlist oracle (spec §4.3). Once constructed
// it is safe to share across threads and across game instances: all
// lookups are pure, in-memory map reads.
type Judge struct {
	entries map[string]dictEntry
}

// NewJudge loads a Judge from the dictionary format of spec §6: one word
// per line, "word score freq", with an optional leading '*' marking the
// word objectionable. Words are stored lowercase.
func NewJudge(r io.Reader) (*Judge, error) {
	j := &Judge{entries: make(map[string]dictEntry)}

	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		objectionable := false
		if strings.HasPrefix(line, "*") {
			objectionable = true
			line = line[1:]
		}

		fields := strings.Fields(line)
		if len(fields) != 3 {
			return nil, fmt.Errorf("dictionary line %d: want 3 fields, got %d", lineNo, len(fields))
		}

		word := strings.ToLower(fields[0])
		score, err := strconv.Atoi(fields[1])
		if err != nil {
			return nil, fmt.Errorf("dictionary line %d: bad score: %w", lineNo, err)
		}
		freq, err := strconv.ParseFloat(fields[2], 64)
		if err != nil {
			return nil, fmt.Errorf("dictionary line %d: bad freq: %w", lineNo, err)
		}

		j.entries[word] = dictEntry{score: score, freq: freq, objectionable: objectionable}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return j, nil
}

// Lookup returns the verdict for word. The query is lowercased before
// matching; single-letter words are always Invalid regardless of list
// content, matching spec §4.3.
func (j *Judge) Lookup(word string) Verdict {
	word = strings.ToLower(word)
	if len(word) <= 1 {
		return Verdict{Status: StatusInvalid}
	}

	entry, ok := j.entries[word]
	if !ok {
		return Verdict{Status: StatusInvalid}
	}
	if entry.objectionable {
		return Verdict{Status: StatusObjectionable, Score: entry.score, Freq: entry.freq}
	}
	return Verdict{Status: StatusValid, Score: entry.score, Freq: entry.freq}
}

// Len returns the number of entries loaded, mostly useful for tests and
// diagnostics.
func (j *Judge) Len() int {
	return len(j.entries)
}
