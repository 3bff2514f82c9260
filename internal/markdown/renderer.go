package markdown

import (
	"fmt"
	"strings"

	"github.com/jeonck/tutoria/internal/entities"
	"github.com/jeonck/tutoria/internal/utils"
)

// Render produces the markdown file for a tutorial. Imported tutorials return
// their original file content byte for byte; everything else gets front
// matter generated from the entity fields.
func Render(tutorial *entities.Tutorial) string {
	if tutorial.IsImportedFromMarkdown && tutorial.OriginalMarkdownContent != "" {
		return tutorial.OriginalMarkdownContent
	}

	quoted := make([]string, len(tutorial.Tags))
	for i, tag := range tutorial.Tags {
		quoted[i] = fmt.Sprintf("%q", tag)
	}

	var b strings.Builder
	b.WriteString("---\n")
	fmt.Fprintf(&b, "title: %q\n", tutorial.Title)
	fmt.Fprintf(&b, "description: %q\n", tutorial.Description)
	fmt.Fprintf(&b, "category: %q\n", tutorial.Category)
	fmt.Fprintf(&b, "difficulty: %q\n", string(tutorial.Difficulty))
	fmt.Fprintf(&b, "duration: %d\n", tutorial.Duration)
	fmt.Fprintf(&b, "tags: [%s]\n", strings.Join(quoted, ", "))
	b.WriteString("---\n\n")
	b.WriteString(tutorial.Content)
	return b.String()
}

// Filename derives a safe markdown filename from the tutorial title. Imported
// tutorials keep their original filename.
func Filename(tutorial *entities.Tutorial) string {
	if tutorial.IsImportedFromMarkdown && tutorial.OriginalFileName != "" {
		return utils.SanitizeFilename(tutorial.OriginalFileName)
	}

	name := strings.ToLower(tutorial.Title)
	var b strings.Builder
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == ' ', r == '-', r == '_':
			b.WriteRune('-')
		}
	}
	slug := strings.Trim(b.String(), "-")
	if slug == "" {
		slug = "tutorial"
	}
	return slug + ".md"
}
