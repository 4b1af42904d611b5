package alignment

// Gap is the alignment gap marker, the only non-residue symbol in the
// alphabet.
const Gap = '-'

// ColorCategory is the biochemical class used to pick a display fill color
// for a symbol. Every alphabet member maps to exactly one category.
type ColorCategory int

const (
	CategoryNone ColorCategory = iota // outside the alphabet
	CategoryHydrophobic
	CategoryPolar
	CategoryAcidic
	CategoryBasic
	CategorySpecialSmall // glycine
	CategorySpecialThiol // cysteine
	CategoryGap
)

// categories maps the 20 standard amino-acid one-letter codes plus the gap
// marker to their class. Entries left at zero are not part of the alphabet.
var categories [256]ColorCategory

func init() {
	set := func(class ColorCategory, symbols string) {
		for i := 0; i < len(symbols); i++ {
			categories[symbols[i]] = class
		}
	}
	set(CategoryHydrophobic, "AVLIPFMW")
	set(CategoryPolar, "STYNQ")
	set(CategoryAcidic, "DE")
	set(CategoryBasic, "KRH")
	set(CategorySpecialSmall, "G")
	set(CategorySpecialThiol, "C")
	set(CategoryGap, "-")
}

// Classify returns the biochemical class of sym. It is total over the
// alphabet; symbols outside it return CategoryNone, but the validator keeps
// those from ever reaching rendering.
func Classify(sym byte) ColorCategory {
	return categories[sym]
}

// Valid reports whether sym belongs to the alphabet.
func Valid(sym byte) bool {
	return categories[sym] != CategoryNone
}

// String returns a short stable name for the category, used by the stats
// output and theme settings keys.
func (c ColorCategory) String() string {
	switch c {
	case CategoryHydrophobic:
		return "hydrophobic"
	case CategoryPolar:
		return "polar"
	case CategoryAcidic:
		return "acidic"
	case CategoryBasic:
		return "basic"
	case CategorySpecialSmall:
		return "special-small"
	case CategorySpecialThiol:
		return "special-thiol"
	case CategoryGap:
		return "gap"
	default:
		return "none"
	}
}
