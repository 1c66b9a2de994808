package normalize

import (
	"strings"

	"github.com/verdante/import-service/internal/types"
)

const (
	// ExcerptLength is the number of characters taken from content when no excerpt is given
	ExcerptLength = 200
	// WordsPerMinute is the reading speed used for reading time estimates
	WordsPerMinute = 200
)

// Excerpt returns the first ExcerptLength characters of content
func Excerpt(content string) string {
	runes := []rune(content)
	if len(runes) <= ExcerptLength {
		return content
	}
	return string(runes[:ExcerptLength])
}

// ReadingTime estimates minutes to read content: ceil(words / 200), at least 1.
// Words are whitespace-separated runs, so unsegmented scripts count as few words.
func ReadingTime(content string) int {
	words := len(strings.Fields(content))
	minutes := (words + WordsPerMinute - 1) / WordsPerMinute
	if minutes < 1 {
		return 1
	}
	return minutes
}

// BlogStatus maps a WordPress status to a publication state
func BlogStatus(raw string) types.BlogStatus {
	if strings.TrimSpace(raw) == "publish" {
		return types.BlogStatusPublished
	}
	return types.BlogStatusDraft
}

// BlogFields holds the raw values extracted from one export item
type BlogFields struct {
	Title      string
	Content    string
	Excerpt    string
	Slug       string
	Date       string
	Author     string
	Status     string
	Categories []string
	Tags       []string
}

// BlogPost converts extracted fields into a canonical post.
// It returns false when the title is empty and the item must be dropped.
func BlogPost(f BlogFields) (types.BlogRecord, bool) {
	title := strings.TrimSpace(f.Title)
	if title == "" {
		return types.BlogRecord{}, false
	}

	excerpt := strings.TrimSpace(f.Excerpt)
	if excerpt == "" {
		excerpt = Excerpt(f.Content)
	}

	slug := strings.TrimSpace(f.Slug)
	if slug == "" {
		slug = Slugify(title)
	}

	categories := f.Categories
	if categories == nil {
		categories = []string{}
	}
	tags := f.Tags
	if tags == nil {
		tags = []string{}
	}

	return types.BlogRecord{
		Title:         title,
		Content:       f.Content,
		Excerpt:       excerpt,
		Slug:          slug,
		PublishedDate: strings.TrimSpace(f.Date),
		Author:        strings.TrimSpace(f.Author),
		Categories:    categories,
		Tags:          tags,
		Status:        BlogStatus(f.Status),
		ReadingTime:   ReadingTime(f.Content),
	}, true
}
