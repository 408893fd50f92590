package feed

import (
	"fmt"
	"strings"
	"time"

	"github.com/SHAIK-RUMEENA/PostBloging/models"
)

// CategoryAll is the filter sentinel meaning no category restriction.
const CategoryAll = "All"

const wordsPerMinute = 200

// ApplyFilter derives the displayed subset of posts from the current category
// filter and search term. The category filter keeps posts whose category
// matches exactly, unless the All sentinel is active. A non-empty search term
// then keeps posts containing it (case-insensitive) in the title, content or
// author. The relative order of the input is preserved.
func ApplyFilter(posts []models.Post, filterCategory, searchTerm string) []models.Post {
	result := posts

	if filterCategory != CategoryAll {
		kept := make([]models.Post, 0, len(result))
		for _, post := range result {
			if post.Category == filterCategory {
				kept = append(kept, post)
			}
		}
		result = kept
	}

	if searchTerm != "" {
		term := strings.ToLower(searchTerm)
		kept := make([]models.Post, 0, len(result))
		for _, post := range result {
			if strings.Contains(strings.ToLower(post.Title), term) ||
				strings.Contains(strings.ToLower(post.Content), term) ||
				strings.Contains(strings.ToLower(post.Author), term) {
				kept = append(kept, post)
			}
		}
		result = kept
	}

	return result
}

// EstimateReadTime labels how long a post takes to read at 200 words per
// minute, rounded up. Anything below a minute, including empty content,
// reads as one minute.
func EstimateReadTime(content string) string {
	words := len(strings.Fields(content))
	minutes := (words + wordsPerMinute - 1) / wordsPerMinute
	if minutes < 1 {
		minutes = 1
	}
	return fmt.Sprintf("%d min read", minutes)
}

// FormatDisplayDate renders a timestamp as a short human-readable date,
// e.g. "Jan 5, 2024", in the viewer's local calendar.
func FormatDisplayDate(t time.Time) string {
	return t.Local().Format("Jan 2, 2006")
}
