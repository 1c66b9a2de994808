package normalize

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/verdante/import-service/internal/types"
)

func TestReadingTime(t *testing.T) {
	assert.Equal(t, 1, ReadingTime(""))
	assert.Equal(t, 1, ReadingTime("one two three"))
	assert.Equal(t, 1, ReadingTime(strings.Repeat("word ", 200)))
	assert.Equal(t, 2, ReadingTime(strings.Repeat("word ", 201)))
	assert.Equal(t, 3, ReadingTime(strings.Repeat("word\n\t", 450)))
}

func TestExcerpt(t *testing.T) {
	short := "Short post."
	assert.Equal(t, short, Excerpt(short))

	long := strings.Repeat("ن", 250)
	got := Excerpt(long)
	assert.Equal(t, 200, len([]rune(got)))
}

func TestBlogStatus(t *testing.T) {
	assert.Equal(t, types.BlogStatusPublished, BlogStatus("publish"))
	for _, s := range []string{"draft", "pending", "private", "future", ""} {
		assert.Equal(t, types.BlogStatusDraft, BlogStatus(s), s)
	}
}

func TestBlogPost(t *testing.T) {
	t.Run("drops empty title", func(t *testing.T) {
		_, ok := BlogPost(BlogFields{Title: "  ", Content: "body"})
		assert.False(t, ok)
	})

	t.Run("fallbacks", func(t *testing.T) {
		content := strings.Repeat("a", 300)
		post, ok := BlogPost(BlogFields{Title: "Repotting 101", Content: content, Status: "draft"})
		require.True(t, ok)
		assert.Equal(t, "repotting-101", post.Slug)
		assert.Equal(t, content[:200], post.Excerpt)
		assert.Equal(t, types.BlogStatusDraft, post.Status)
		assert.Equal(t, []string{}, post.Categories)
		assert.Equal(t, []string{}, post.Tags)
		assert.Equal(t, 1, post.ReadingTime)
	})

	t.Run("explicit values win", func(t *testing.T) {
		post, ok := BlogPost(BlogFields{
			Title:      "Light Guide",
			Content:    "Bright indirect light.",
			Excerpt:    "Where to put plants.",
			Slug:       "light-guide-2024",
			Date:       "2024-05-01 10:00:00",
			Author:     "maya",
			Status:     "publish",
			Categories: []string{"Care"},
			Tags:       []string{"light"},
		})
		require.True(t, ok)
		assert.Equal(t, "light-guide-2024", post.Slug)
		assert.Equal(t, "Where to put plants.", post.Excerpt)
		assert.Equal(t, "2024-05-01 10:00:00", post.PublishedDate)
		assert.Equal(t, "maya", post.Author)
		assert.Equal(t, types.BlogStatusPublished, post.Status)
		assert.Equal(t, []string{"Care"}, post.Categories)
		assert.Equal(t, []string{"light"}, post.Tags)
	})
}
