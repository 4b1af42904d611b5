package alignment

import "fmt"

// LengthMismatchError is returned when the two sequences handed to Compare
// differ in length. No comparison is performed in that case.
type LengthMismatchError struct {
	RefLen   int
	QueryLen int
}

func (e *LengthMismatchError) Error() string {
	return fmt.Sprintf("sequences must be of the same length: reference is %d, query is %d", e.RefLen, e.QueryLen)
}

// Position is one aligned column: the reference symbol, the query symbol,
// and whether they agree.
type Position struct {
	Ref   byte
	Query byte
	Match bool
}

// CompareResult holds the per-position classification of a query sequence
// against its reference. It is immutable once built.
type CompareResult struct {
	Positions []Position
}

// Compare classifies query against ref position by position. It fails only
// on a length mismatch; zero-length inputs produce an empty, valid result.
func Compare(ref, query Sequence) (*CompareResult, error) {
	if len(ref) != len(query) {
		return nil, &LengthMismatchError{RefLen: len(ref), QueryLen: len(query)}
	}
	positions := make([]Position, len(ref))
	for i := 0; i < len(ref); i++ {
		positions[i] = Position{
			Ref:   ref[i],
			Query: query[i],
			Match: ref[i] == query[i],
		}
	}
	return &CompareResult{Positions: positions}, nil
}

// Len returns the number of aligned columns.
func (r *CompareResult) Len() int {
	return len(r.Positions)
}

// Mismatches counts the positions where query and reference disagree.
func (r *CompareResult) Mismatches() int {
	n := 0
	for _, p := range r.Positions {
		if !p.Match {
			n++
		}
	}
	return n
}

// Identity returns the fraction of matching positions, or 0 for an empty
// result.
func (r *CompareResult) Identity() float64 {
	if len(r.Positions) == 0 {
		return 0
	}
	return float64(len(r.Positions)-r.Mismatches()) / float64(len(r.Positions))
}
