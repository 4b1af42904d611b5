package alignment

import "testing"

func TestClassifyCoversWholeAlphabet(t *testing.T) {
	alphabet := "ACDEFGHIKLMNPQRSTVWY-"
	if len(alphabet) != 21 {
		t.Fatalf("expected 21 alphabet symbols, got %d", len(alphabet))
	}
	for i := 0; i < len(alphabet); i++ {
		sym := alphabet[i]
		if Classify(sym) == CategoryNone {
			t.Errorf("Classify(%q) = CategoryNone, want a real category", sym)
		}
		if !Valid(sym) {
			t.Errorf("Valid(%q) = false, want true", sym)
		}
	}
}

func TestClassifyDeterministic(t *testing.T) {
	for _, sym := range []byte{'A', 'G', 'C', 'D', 'K', 'S', '-'} {
		first := Classify(sym)
		second := Classify(sym)
		if first != second {
			t.Errorf("Classify(%q) not deterministic: %v then %v", sym, first, second)
		}
	}
}

func TestClassifyCategories(t *testing.T) {
	tests := []struct {
		sym  byte
		want ColorCategory
	}{
		{'A', CategoryHydrophobic},
		{'W', CategoryHydrophobic},
		{'S', CategoryPolar},
		{'Q', CategoryPolar},
		{'D', CategoryAcidic},
		{'E', CategoryAcidic},
		{'K', CategoryBasic},
		{'H', CategoryBasic},
		{'G', CategorySpecialSmall},
		{'C', CategorySpecialThiol},
		{'-', CategoryGap},
	}
	for _, tt := range tests {
		if got := Classify(tt.sym); got != tt.want {
			t.Errorf("Classify(%q) = %v, want %v", tt.sym, got, tt.want)
		}
	}
}

func TestClassifyRejectsNonAlphabet(t *testing.T) {
	for _, sym := range []byte{'B', 'J', 'O', 'U', 'X', 'Z', '1', ' ', 'a'} {
		if Classify(sym) != CategoryNone {
			t.Errorf("Classify(%q) should be CategoryNone", sym)
		}
		if Valid(sym) {
			t.Errorf("Valid(%q) = true, want false", sym)
		}
	}
}

func TestCategoryString(t *testing.T) {
	if got := CategorySpecialThiol.String(); got != "special-thiol" {
		t.Errorf("String() = %q, want %q", got, "special-thiol")
	}
	if got := CategoryNone.String(); got != "none" {
		t.Errorf("String() = %q, want %q", got, "none")
	}
}
