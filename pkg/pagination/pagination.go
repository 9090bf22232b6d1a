package pagination

import (
	"encoding/base64"
	"fmt"
	"strconv"
	"strings"
)

const (
	// DefaultLimit is the standard page size when a limit is not provided.
	DefaultLimit = 24
	// MaxLimit caps how many products a single page can return.
	MaxLimit = 100

	cursorPrefix = "off:"
)

// Params holds cursor pagination inputs from controllers.
type Params struct {
	Limit  int
	Cursor string
}

// Page describes one window over an ordered result set.
type Page struct {
	Offset     int
	Limit      int
	Total      int
	NextCursor string
}

// NormalizeLimit enforces the configured default and maximum limits.
func NormalizeLimit(limit int) int {
	if limit <= 0 {
		return DefaultLimit
	}
	if limit > MaxLimit {
		return MaxLimit
	}
	return limit
}

// EncodeCursor builds an opaque cursor pointing at the given offset.
func EncodeCursor(offset int) string {
	return base64.RawURLEncoding.EncodeToString([]byte(cursorPrefix + strconv.Itoa(offset)))
}

// ParseCursor decodes a cursor produced by EncodeCursor. An empty cursor means offset zero.
func ParseCursor(value string) (int, error) {
	if strings.TrimSpace(value) == "" {
		return 0, nil
	}

	decoded, err := base64.RawURLEncoding.DecodeString(value)
	if err != nil {
		return 0, fmt.Errorf("decode cursor: %w", err)
	}
	raw, ok := strings.CutPrefix(string(decoded), cursorPrefix)
	if !ok {
		return 0, fmt.Errorf("invalid cursor format")
	}
	offset, err := strconv.Atoi(raw)
	if err != nil || offset < 0 {
		return 0, fmt.Errorf("invalid cursor offset")
	}
	return offset, nil
}

// Window computes the slice bounds for params over a result set of size total.
func Window(params Params, total int) (Page, error) {
	offset, err := ParseCursor(params.Cursor)
	if err != nil {
		return Page{}, err
	}
	limit := NormalizeLimit(params.Limit)
	if offset > total {
		offset = total
	}
	page := Page{Offset: offset, Limit: limit, Total: total}
	if end := offset + limit; end < total {
		page.NextCursor = EncodeCursor(end)
	}
	return page, nil
}

// End returns the exclusive upper bound of the page.
func (p Page) End() int {
	end := p.Offset + p.Limit
	if end > p.Total {
		return p.Total
	}
	return end
}
