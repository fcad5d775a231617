package render

import (
	"fmt"
	"strconv"

	"hashicon/internal/domain"
	"hashicon/internal/icon"
)

// Service renders icons for seeds using a size table and an optional cache.
type Service struct {
	sizes domain.SizeTable
	cache domain.IconCache
}

// New returns a render service. cache may be nil to disable memoization.
func New(sizes domain.SizeTable, cache domain.IconCache) *Service {
	return &Service{sizes: sizes, cache: cache}
}

// Render resolves the pixel size from opts and returns the composed image,
// consulting the cache first when one is configured.
func (s *Service) Render(seed string, opts domain.Options) (domain.Image, error) {
	px, err := s.resolveSize(opts)
	if err != nil {
		return domain.Image{}, err
	}

	key := cacheKey(seed, px, opts.Circular)
	if s.cache != nil {
		if img, ok := s.cache.Get(key); ok {
			return img, nil
		}
	}

	img, err := icon.Compose(seed, px, opts.Circular)
	if err != nil {
		return domain.Image{}, err
	}
	if s.cache != nil {
		s.cache.Put(key, img)
	}
	return img, nil
}

// resolveSize applies the precedence rule: a positive CustomSize wins, else
// the size category is looked up in the table.
func (s *Service) resolveSize(opts domain.Options) (int, error) {
	if opts.CustomSize > 0 {
		return opts.CustomSize, nil
	}
	if opts.CustomSize < 0 {
		return 0, fmt.Errorf("custom size %d: %w", opts.CustomSize, domain.ErrInvalidArgument)
	}
	if px, ok := s.sizes[opts.Size]; ok {
		return px, nil
	}
	return 0, fmt.Errorf("unknown size %q and no custom size: %w", opts.Size, domain.ErrInvalidArgument)
}

func cacheKey(seed string, px int, circular bool) string {
	return seed + "|" + strconv.Itoa(px) + "|" + strconv.FormatBool(circular)
}

var _ domain.IconService = (*Service)(nil)
