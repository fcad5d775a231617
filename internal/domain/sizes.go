package domain

// SizeCategory names an entry in the caller's size-token table.
type SizeCategory string

const (
	SizeExtraSmall    SizeCategory = "extra-small"
	SizeSmall         SizeCategory = "small"
	SizeMedium        SizeCategory = "medium"
	SizeLarge         SizeCategory = "large"
	SizeExtraLarge    SizeCategory = "extra-large"
	SizeTwoExtraLarge SizeCategory = "two-extra-large"
)

// SizeTable maps size categories to pixel dimensions. The core treats this as
// injected configuration, not as its own concern.
type SizeTable map[SizeCategory]int

// DefaultSizes returns the built-in size-token table.
func DefaultSizes() SizeTable {
	return SizeTable{
		SizeExtraSmall:    24,
		SizeSmall:         32,
		SizeMedium:        40,
		SizeLarge:         48,
		SizeExtraLarge:    64,
		SizeTwoExtraLarge: 80,
	}
}
