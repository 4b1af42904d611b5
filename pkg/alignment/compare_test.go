package alignment

import (
	"errors"
	"testing"
)

func TestCompareMatchFlags(t *testing.T) {
	res, err := Compare("ARNDC", "ARNEC")
	if err != nil {
		t.Fatalf("Compare failed: %v", err)
	}
	if res.Len() != 5 {
		t.Fatalf("Len() = %d, want 5", res.Len())
	}
	wantMatch := []bool{true, true, true, false, true}
	for i, p := range res.Positions {
		if p.Match != wantMatch[i] {
			t.Errorf("position %d: Match = %v, want %v", i, p.Match, wantMatch[i])
		}
	}
	if res.Positions[3].Ref != 'D' || res.Positions[3].Query != 'E' {
		t.Errorf("position 3 = %q/%q, want D/E", res.Positions[3].Ref, res.Positions[3].Query)
	}
}

func TestCompareFlagEqualsEquality(t *testing.T) {
	ref := Sequence("GAVLIK-MRS")
	query := Sequence("GAVQIK-MTS")
	res, err := Compare(ref, query)
	if err != nil {
		t.Fatalf("Compare failed: %v", err)
	}
	for i, p := range res.Positions {
		if p.Match != (ref[i] == query[i]) {
			t.Errorf("position %d: Match = %v, want %v", i, p.Match, ref[i] == query[i])
		}
	}
}

func TestCompareLengthMismatch(t *testing.T) {
	res, err := Compare("AR", "ARN")
	if res != nil {
		t.Errorf("expected no partial result, got %+v", res)
	}
	var lenErr *LengthMismatchError
	if !errors.As(err, &lenErr) {
		t.Fatalf("expected *LengthMismatchError, got %v", err)
	}
	if lenErr.RefLen != 2 || lenErr.QueryLen != 3 {
		t.Errorf("lengths = %d/%d, want 2/3", lenErr.RefLen, lenErr.QueryLen)
	}
}

func TestCompareEmptySequences(t *testing.T) {
	res, err := Compare("", "")
	if err != nil {
		t.Fatalf("empty sequences should compare cleanly: %v", err)
	}
	if res == nil || res.Len() != 0 {
		t.Errorf("expected empty non-nil result, got %+v", res)
	}
}

func TestCompareStats(t *testing.T) {
	res, err := Compare("ARNDC", "ARNEC")
	if err != nil {
		t.Fatalf("Compare failed: %v", err)
	}
	if got := res.Mismatches(); got != 1 {
		t.Errorf("Mismatches() = %d, want 1", got)
	}
	if got := res.Identity(); got != 0.8 {
		t.Errorf("Identity() = %v, want 0.8", got)
	}

	empty := &CompareResult{}
	if got := empty.Identity(); got != 0 {
		t.Errorf("empty Identity() = %v, want 0", got)
	}
}
