package usecase

import (
	"fmt"

	"talent-match/internal/ranking"
)

const (
	defaultPageLimit = 20
	maxPageLimit     = 50
)

type Page struct {
	Limit  int
	Offset int
}

type PageConfig struct {
	DefaultLimit int
	MaxLimit     int
}

func (c PageConfig) withDefaults() PageConfig {
	if c.DefaultLimit <= 0 {
		c.DefaultLimit = defaultPageLimit
	}
	if c.MaxLimit <= 0 {
		c.MaxLimit = maxPageLimit
	}
	if c.DefaultLimit > c.MaxLimit {
		c.DefaultLimit = c.MaxLimit
	}
	return c
}

// normalize maps a zero limit to the default and clamps it to the maximum.
func (c PageConfig) normalize(p Page) (ranking.Page, error) {
	c = c.withDefaults()
	if p.Limit < 0 {
		return ranking.Page{}, fmt.Errorf("%w: limit %d", ErrInvalidInput, p.Limit)
	}
	if p.Offset < 0 {
		return ranking.Page{}, fmt.Errorf("%w: offset %d", ErrInvalidInput, p.Offset)
	}
	limit := p.Limit
	if limit == 0 {
		limit = c.DefaultLimit
	}
	if limit > c.MaxLimit {
		limit = c.MaxLimit
	}
	return ranking.Page{Limit: limit, Offset: p.Offset}, nil
}
