package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/dmitrijs2005/devlearn/internal/models"
	"github.com/dmitrijs2005/devlearn/internal/repositories/catalog"
	"github.com/dmitrijs2005/devlearn/internal/validation"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// downloadDelay simulates the e-book transfer.
var downloadDelay = 1500 * time.Millisecond

// List prints one catalog section. order may be empty, "alphabetical" or
// "category".
func (a *App) List(ctx context.Context, kind, order string) error {
	if _, ok, err := a.requireSession(ctx); err != nil || !ok {
		return err
	}

	k, err := models.ParseContentKind(kind)
	if err != nil {
		fmt.Fprintln(a.out, err)
		return err
	}
	o, err := catalog.ParseSortOrder(order)
	if err != nil {
		fmt.Fprintln(a.out, "Sort by: alphabetical or category")
		return err
	}

	items := a.contentService.List(k, o)
	if len(items) == 0 {
		fmt.Fprintln(a.out, "Nothing here yet.")
		return nil
	}
	for _, it := range items {
		fmt.Fprintln(a.out, formatItem(it))
	}
	return nil
}

func formatItem(it models.ContentItem) string {
	switch p := it.Payload.(type) {
	case models.Course:
		return fmt.Sprintf("%s %s [%s, %s] %s\n    %s", p.Icon, it.Title, it.Category, p.Level, formatPrice(p.Price), it.Description)
	case models.Ebook:
		return fmt.Sprintf("%s %s [%s]\n    %s\n    %s", p.Icon, it.Title, it.Category, it.Description, p.URL)
	case models.Video:
		return fmt.Sprintf("▶ %s [%s, %d min]\n    %s\n    %s", it.Title, it.Category, p.Duration, it.Description, p.URL)
	}
	return it.Title
}

// formatPrice renders a naira amount with thousands separators.
func formatPrice(v float64) string {
	p := message.NewPrinter(language.English)
	return "₦" + p.Sprint(number.Decimal(v, number.MaxFractionDigits(2)))
}

// AddCourse prompts for a new course and adds it to the catalog.
func (a *App) AddCourse(ctx context.Context) error {
	if _, ok, err := a.requireSession(ctx); err != nil || !ok {
		return err
	}

	var f validation.CourseForm
	steps := []struct {
		field, prompt string
		dst           *string
	}{
		{validation.FieldCourseTitle, "Title", &f.Title},
		{validation.FieldCourseDescription, "Description", &f.Description},
		{validation.FieldCourseLevel, "Level (Beginner, Intermediate, Advanced)", &f.Level},
		{validation.FieldCourseCategory, "Category", &f.Category},
		{validation.FieldCoursePrice, "Price", &f.Price},
		{"", "Icon (optional)", &f.Icon},
	}
	for _, s := range steps {
		v, err := a.ask(s.field, s.prompt, "")
		if err != nil {
			return a.inputError(ctx, err)
		}
		*s.dst = v
	}

	item, err := a.contentService.CreateCourse(ctx, f)
	if err != nil {
		return a.report(ctx, err, "")
	}
	fmt.Fprintf(a.out, "Course %q added.\n", item.Title)
	return nil
}

// AddEbook prompts for a new e-book and adds it to the catalog.
func (a *App) AddEbook(ctx context.Context) error {
	if _, ok, err := a.requireSession(ctx); err != nil || !ok {
		return err
	}

	var f validation.EbookForm
	var err error
	if f.Title, err = a.ask(validation.FieldEbookTitle, "Title", ""); err != nil {
		return a.inputError(ctx, err)
	}
	if f.Description, err = a.askMultiline(validation.FieldEbookDescription, "Description", ""); err != nil {
		return a.inputError(ctx, err)
	}
	if f.Category, err = a.ask(validation.FieldEbookCategory, "Category", ""); err != nil {
		return a.inputError(ctx, err)
	}
	if f.URL, err = a.ask(validation.FieldEbookURL, "PDF URL", ""); err != nil {
		return a.inputError(ctx, err)
	}
	if f.Icon, err = a.ask("", "Icon (optional)", ""); err != nil {
		return a.inputError(ctx, err)
	}

	item, err := a.contentService.CreateEbook(ctx, f)
	if err != nil {
		return a.report(ctx, err, "")
	}
	fmt.Fprintf(a.out, "E-book %q added.\n", item.Title)
	return nil
}

// AddVideo prompts for a new video and adds it to the catalog.
func (a *App) AddVideo(ctx context.Context) error {
	if _, ok, err := a.requireSession(ctx); err != nil || !ok {
		return err
	}

	var f validation.VideoForm
	var err error
	if f.Title, err = a.ask(validation.FieldVideoTitle, "Title", ""); err != nil {
		return a.inputError(ctx, err)
	}
	if f.Description, err = a.askMultiline(validation.FieldVideoDescription, "Description", ""); err != nil {
		return a.inputError(ctx, err)
	}
	if f.Category, err = a.ask(validation.FieldVideoCategory, "Category", ""); err != nil {
		return a.inputError(ctx, err)
	}
	if f.Duration, err = a.ask(validation.FieldVideoDuration, "Duration (minutes)", ""); err != nil {
		return a.inputError(ctx, err)
	}
	if f.URL, err = a.ask(validation.FieldVideoURL, "Video URL", ""); err != nil {
		return a.inputError(ctx, err)
	}

	item, err := a.contentService.CreateVideo(ctx, f)
	if err != nil {
		return a.report(ctx, err, "")
	}
	fmt.Fprintf(a.out, "Video %q added.\n", item.Title)
	return nil
}

// Interest shows a course's price and, once confirmed, records the
// interest.
func (a *App) Interest(ctx context.Context, course string) error {
	if _, ok, err := a.requireSession(ctx); err != nil || !ok {
		return err
	}
	item, ok := a.lookup(models.ContentKindCourse, course)
	if !ok {
		return nil
	}

	price := ""
	if c, ok := item.Payload.(models.Course); ok {
		price = formatPrice(c.Price)
	}
	if !a.confirm(fmt.Sprintf("Would you like to learn more about %s? (Price: %s)", item.Title, price)) {
		return nil
	}
	if _, err := a.contentService.RecordInterest(ctx, item.ID); err != nil {
		return a.report(ctx, err, "")
	}
	fmt.Fprintln(a.out, "Course information would be displayed here. This is a demo version.")
	return nil
}

// Download simulates fetching an e-book and records it.
func (a *App) Download(ctx context.Context, ebook string) error {
	if _, ok, err := a.requireSession(ctx); err != nil || !ok {
		return err
	}
	item, ok := a.lookup(models.ContentKindEbook, ebook)
	if !ok {
		return nil
	}

	fmt.Fprintln(a.out, "Downloading...")
	select {
	case <-time.After(downloadDelay):
	case <-ctx.Done():
		return a.report(ctx, ctx.Err(), "")
	}
	if _, err := a.contentService.RecordDownload(ctx, item.ID); err != nil {
		return a.report(ctx, err, "")
	}
	fmt.Fprintln(a.out, "Downloaded!")
	return nil
}

// Watch prints the video link and records the play.
func (a *App) Watch(ctx context.Context, video string) error {
	if _, ok, err := a.requireSession(ctx); err != nil || !ok {
		return err
	}
	item, ok := a.lookup(models.ContentKindVideo, video)
	if !ok {
		return nil
	}
	if _, err := a.contentService.RecordVideoLoad(ctx, item.ID); err != nil {
		return a.report(ctx, err, "")
	}
	if v, ok := item.Payload.(models.Video); ok {
		fmt.Fprintf(a.out, "Playing %s: %s\n", item.Title, v.URL)
	}
	return nil
}

func (a *App) lookup(kind models.ContentKind, key string) (models.ContentItem, bool) {
	key = strings.TrimSpace(key)
	if key == "" {
		fmt.Fprintf(a.out, "Which %s? Give its title or id.\n", kind)
		return models.ContentItem{}, false
	}
	item, ok := a.contentService.Find(kind, key)
	if !ok {
		fmt.Fprintf(a.out, "No %s named %q.\n", kind, key)
	}
	return item, ok
}
