// Package catalog holds the course, e-book and video catalog.
//
// The catalog lives in memory only. Every process starts from the embedded
// seed and items added at runtime are gone on restart.
package catalog

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/dmitrijs2005/devlearn/internal/models"
	"github.com/google/uuid"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

//go:embed seed.json
var seedJSON []byte

// SortOrder selects how List orders items.
type SortOrder string

const (
	// SortInsertion keeps seed items first, then additions in order.
	SortInsertion SortOrder = ""
	// SortAlphabetical orders by title, ignoring case.
	SortAlphabetical SortOrder = "alphabetical"
	// SortCategory orders by category, then by title ignoring case.
	SortCategory SortOrder = "category"
)

var ErrUnknownSortOrder = errors.New("unknown sort order")

func ParseSortOrder(s string) (SortOrder, error) {
	switch SortOrder(strings.ToLower(strings.TrimSpace(s))) {
	case SortInsertion, "default":
		return SortInsertion, nil
	case SortAlphabetical, "alpha", "name":
		return SortAlphabetical, nil
	case SortCategory:
		return SortCategory, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownSortOrder, s)
}

type Catalog struct {
	mu    sync.RWMutex
	items []models.ContentItem
	newID func() string
}

// New returns a catalog holding the embedded seed.
func New() (*Catalog, error) {
	var envs []models.Envelope
	if err := json.Unmarshal(seedJSON, &envs); err != nil {
		return nil, fmt.Errorf("decode catalog seed: %w", err)
	}
	return FromEnvelopes(envs)
}

// FromEnvelopes returns a catalog holding envs in order.
func FromEnvelopes(envs []models.Envelope) (*Catalog, error) {
	c := &Catalog{newID: uuid.NewString}
	for _, e := range envs {
		item, err := e.Unwrap()
		if err != nil {
			return nil, fmt.Errorf("catalog item %q: %w", e.ID, err)
		}
		c.items = append(c.items, item)
	}
	return c, nil
}

// Add appends item, assigning an id when it has none.
func (c *Catalog) Add(item models.ContentItem) (models.ContentItem, error) {
	if item.Payload == nil {
		return models.ContentItem{}, models.ErrUnknownContentKind
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if item.ID == "" {
		item.ID = c.newID()
	}
	c.items = append(c.items, item)
	return item, nil
}

// List returns the items of kind in the requested order.
func (c *Catalog) List(kind models.ContentKind, order SortOrder) []models.ContentItem {
	c.mu.RLock()
	out := make([]models.ContentItem, 0, len(c.items))
	for _, it := range c.items {
		if it.Kind() == kind {
			out = append(out, it)
		}
	}
	c.mu.RUnlock()

	coll := collate.New(language.English)
	byTitle := func(a, b models.ContentItem) int {
		return coll.CompareString(a.Title, b.Title)
	}
	switch order {
	case SortAlphabetical:
		slices.SortStableFunc(out, byTitle)
	case SortCategory:
		slices.SortStableFunc(out, func(a, b models.ContentItem) int {
			if d := coll.CompareString(a.Category, b.Category); d != 0 {
				return d
			}
			return byTitle(a, b)
		})
	}
	return out
}

// Find returns the item of kind whose id or title (ignoring case) is key.
func (c *Catalog) Find(kind models.ContentKind, key string) (models.ContentItem, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	for _, it := range c.items {
		if it.Kind() == kind && (it.ID == key || strings.EqualFold(it.Title, key)) {
			return it, true
		}
	}
	return models.ContentItem{}, false
}
