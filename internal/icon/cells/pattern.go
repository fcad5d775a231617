package cells

import "hashicon/internal/domain"

// patternOrder is the fixed selection list; SelectPattern indexes it by
// fp mod 5.
var patternOrder = [...]domain.PatternType{
	domain.PatternTriangles,
	domain.PatternCircles,
	domain.PatternBlocks,
	domain.PatternDiamonds,
	domain.PatternStripes,
}

// SelectPattern maps a fingerprint to one of the five pattern families.
func SelectPattern(fp domain.Fingerprint) domain.PatternType {
	return patternOrder[int(fp)%len(patternOrder)]
}
