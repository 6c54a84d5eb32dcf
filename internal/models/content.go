package models

import (
	"encoding/json"
	"errors"
	"fmt"
)

// ContentKind classifies a catalog item.
type ContentKind string

const (
	ContentKindCourse ContentKind = "course"
	ContentKindEbook  ContentKind = "ebook"
	ContentKindVideo  ContentKind = "video"
)

var ErrUnknownContentKind = errors.New("unknown content kind")

// ParseContentKind accepts both singular and plural forms ("courses").
func ParseContentKind(s string) (ContentKind, error) {
	switch s {
	case "course", "courses":
		return ContentKindCourse, nil
	case "ebook", "ebooks", "e-book", "e-books":
		return ContentKindEbook, nil
	case "video", "videos":
		return ContentKindVideo, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownContentKind, s)
}

// Envelope is the stored form of a catalog item: shared fields plus the
// kind-specific payload as raw JSON.
type Envelope struct {
	ID          string          `json:"id"`
	Kind        ContentKind     `json:"kind"`
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Category    string          `json:"category"`
	Details     json.RawMessage `json:"details"`
}

// ContentItem is a decoded catalog item.
type ContentItem struct {
	ID          string
	Title       string
	Description string
	Category    string
	Payload     TypedContent
}

func (c ContentItem) Kind() ContentKind { return c.Payload.GetKind() }

// TypedContent is implemented by every kind-specific payload.
type TypedContent interface {
	GetKind() ContentKind
}

type Course struct {
	Price float64 `json:"price"`
	Level string  `json:"level"`
	Icon  string  `json:"icon"`
}

func (Course) GetKind() ContentKind { return ContentKindCourse }

type Ebook struct {
	URL  string `json:"url"`
	Icon string `json:"icon"`
}

func (Ebook) GetKind() ContentKind { return ContentKindEbook }

// Video duration is in minutes.
type Video struct {
	URL      string `json:"url"`
	Duration int    `json:"duration"`
}

func (Video) GetKind() ContentKind { return ContentKindVideo }

// Unwrap decodes the payload selected by e.Kind.
func (e Envelope) Unwrap() (ContentItem, error) {
	item := ContentItem{ID: e.ID, Title: e.Title, Description: e.Description, Category: e.Category}

	var err error
	switch e.Kind {
	case ContentKindCourse:
		var v Course
		err = json.Unmarshal(e.Details, &v)
		item.Payload = v
	case ContentKindEbook:
		var v Ebook
		err = json.Unmarshal(e.Details, &v)
		item.Payload = v
	case ContentKindVideo:
		var v Video
		err = json.Unmarshal(e.Details, &v)
		item.Payload = v
	default:
		return ContentItem{}, fmt.Errorf("%w: %q", ErrUnknownContentKind, e.Kind)
	}
	if err != nil {
		return ContentItem{}, fmt.Errorf("decode %s details: %w", e.Kind, err)
	}
	return item, nil
}
