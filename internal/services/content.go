package services

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/devlearn/internal/common"
	"github.com/dmitrijs2005/devlearn/internal/models"
	"github.com/dmitrijs2005/devlearn/internal/repositories/activities"
	"github.com/dmitrijs2005/devlearn/internal/repositories/catalog"
	"github.com/dmitrijs2005/devlearn/internal/session"
	"github.com/dmitrijs2005/devlearn/internal/validation"
)

const (
	defaultCourseIcon = "📚"
	defaultEbookIcon  = "📖"
)

// ContentService authors and browses catalog items on behalf of the
// signed-in user. Every mutation requires a session and is written to the
// user's activity log.
type ContentService struct {
	catalog    *catalog.Catalog
	sessions   *session.Manager
	activities activities.Logger
}

func NewContentService(c *catalog.Catalog, sessions *session.Manager, activities activities.Logger) *ContentService {
	return &ContentService{catalog: c, sessions: sessions, activities: activities}
}

func (s *ContentService) List(kind models.ContentKind, order catalog.SortOrder) []models.ContentItem {
	return s.catalog.List(kind, order)
}

// Find looks an item up by id or case-insensitive title.
func (s *ContentService) Find(kind models.ContentKind, key string) (models.ContentItem, bool) {
	return s.catalog.Find(kind, key)
}

func (s *ContentService) currentUserID(ctx context.Context) (string, error) {
	cur, err := s.sessions.Current(ctx)
	if err != nil {
		return "", err
	}
	if cur == nil {
		return "", common.ErrNotAuthenticated
	}
	return cur.ID, nil
}

func (s *ContentService) add(ctx context.Context, item models.ContentItem, activity string) (models.ContentItem, error) {
	uid, err := s.currentUserID(ctx)
	if err != nil {
		return models.ContentItem{}, err
	}
	added, err := s.catalog.Add(item)
	if err != nil {
		return models.ContentItem{}, err
	}
	s.activities.Log(ctx, uid, fmt.Sprintf(activity, added.Title))
	return added, nil
}

func (s *ContentService) CreateCourse(ctx context.Context, form validation.CourseForm) (models.ContentItem, error) {
	if err := form.Validate(); err != nil {
		return models.ContentItem{}, err
	}
	form = form.Clean()

	icon := form.Icon
	if icon == "" {
		icon = defaultCourseIcon
	}
	return s.add(ctx, models.ContentItem{
		Title:       form.Title,
		Description: form.Description,
		Category:    form.Category,
		Payload:     models.Course{Price: form.PriceValue(), Level: form.Level, Icon: icon},
	}, "Created new course: %s")
}

func (s *ContentService) CreateEbook(ctx context.Context, form validation.EbookForm) (models.ContentItem, error) {
	if err := form.Validate(); err != nil {
		return models.ContentItem{}, err
	}
	form = form.Clean()

	icon := form.Icon
	if icon == "" {
		icon = defaultEbookIcon
	}
	return s.add(ctx, models.ContentItem{
		Title:       form.Title,
		Description: form.Description,
		Category:    form.Category,
		Payload:     models.Ebook{URL: form.URL, Icon: icon},
	}, "Added new e-book: %s")
}

func (s *ContentService) CreateVideo(ctx context.Context, form validation.VideoForm) (models.ContentItem, error) {
	if err := form.Validate(); err != nil {
		return models.ContentItem{}, err
	}
	form = form.Clean()

	return s.add(ctx, models.ContentItem{
		Title:       form.Title,
		Description: form.Description,
		Category:    form.Category,
		Payload:     models.Video{URL: form.URL, Duration: form.DurationValue()},
	}, "Added new video: %s")
}

func (s *ContentService) record(ctx context.Context, kind models.ContentKind, key, activity string) (models.ContentItem, error) {
	uid, err := s.currentUserID(ctx)
	if err != nil {
		return models.ContentItem{}, err
	}
	item, ok := s.catalog.Find(kind, key)
	if !ok {
		return models.ContentItem{}, fmt.Errorf("%s %q: %w", kind, key, common.ErrorNotFound)
	}
	s.activities.Log(ctx, uid, fmt.Sprintf(activity, item.Title))
	return item, nil
}

// RecordInterest logs that the user opened a course.
func (s *ContentService) RecordInterest(ctx context.Context, course string) (models.ContentItem, error) {
	return s.record(ctx, models.ContentKindCourse, course, "Showed interest in course: %s")
}

// RecordDownload logs an e-book download.
func (s *ContentService) RecordDownload(ctx context.Context, ebook string) (models.ContentItem, error) {
	return s.record(ctx, models.ContentKindEbook, ebook, "Downloaded e-book: %s")
}

// RecordVideoLoad logs that a video was played.
func (s *ContentService) RecordVideoLoad(ctx context.Context, video string) (models.ContentItem, error) {
	return s.record(ctx, models.ContentKindVideo, video, "Loaded video: %s")
}
