// Package markdown converts between tutorial entities and markdown files
// with YAML-style front matter. Parsing is forgiving: missing front matter
// fields fall back to heuristics over the content and filename, so any
// markdown file yields a usable tutorial.
package markdown

import (
	"strconv"
	"strings"

	"github.com/jeonck/tutoria/internal/entities"
)

const (
	defaultDuration    = 30
	defaultDescription = "Imported from markdown file"
	maxDescriptionLen  = 200
)

// categoryByFilenameHint maps filename substrings to categories, checked in
// order.
var categoryByFilenameHint = []struct {
	hint     string
	category string
}{
	{"react", "React"},
	{"javascript", "JavaScript"},
	{"js", "JavaScript"},
	{"typescript", "TypeScript"},
	{"ts", "TypeScript"},
	{"css", "CSS"},
	{"html", "HTML"},
	{"node", "Node.js"},
	{"python", "Python"},
	{"spring", "Spring Boot"},
}

// wellKnownTags are probed against the file content when front matter
// declares no tags.
var wellKnownTags = []string{
	"react", "javascript", "typescript", "css", "html",
	"node", "python", "spring-boot", "tutorial", "guide",
}

// Parse converts a markdown file into a tutorial. The original filename and
// content are preserved in the provenance fields and IsImportedFromMarkdown
// is set.
func Parse(content, filename string) *entities.Tutorial {
	lines := strings.Split(content, "\n")

	tutorial := &entities.Tutorial{
		Difficulty:              entities.DifficultyBeginner,
		Duration:                defaultDuration,
		OriginalFileName:        filename,
		OriginalMarkdownContent: content,
		IsImportedFromMarkdown:  true,
	}

	contentStart := 0
	if len(lines) > 0 && strings.TrimSpace(lines[0]) == "---" {
		contentStart = parseFrontMatter(lines, tutorial)
	}

	tutorial.Content = strings.TrimSpace(strings.Join(lines[contentStart:], "\n"))

	if tutorial.Title == "" {
		tutorial.Title = titleFromContent(lines, filename)
	}
	if tutorial.Description == "" {
		tutorial.Description = descriptionFromContent(tutorial.Content)
	}
	if tutorial.Description == "" {
		tutorial.Description = defaultDescription
	}
	if tutorial.Category == "" {
		tutorial.Category = categoryFromFilename(filename)
	}
	if len(tutorial.Tags) == 0 {
		tutorial.Tags = tagsFromContent(content, tutorial.Category)
	}

	return tutorial
}

// parseFrontMatter reads the block between the opening and closing "---" and
// returns the index of the first content line. Unknown keys are ignored;
// malformed values keep their defaults.
func parseFrontMatter(lines []string, tutorial *entities.Tutorial) int {
	contentStart := 1
	for i := 1; i < len(lines); i++ {
		line := strings.TrimSpace(lines[i])
		if line == "---" {
			return i + 1
		}
		contentStart = i + 1

		key, value, found := strings.Cut(line, ":")
		if !found {
			continue
		}
		value = unquote(strings.TrimSpace(value))

		switch strings.TrimSpace(key) {
		case "title":
			tutorial.Title = value
		case "description":
			tutorial.Description = value
		case "category":
			tutorial.Category = value
		case "difficulty":
			if entities.ValidDifficulty(value) {
				tutorial.Difficulty = entities.Difficulty(value)
			}
		case "duration":
			if d, err := strconv.Atoi(value); err == nil && d > 0 {
				tutorial.Duration = d
			}
		case "tags":
			tutorial.Tags = parseTagList(value)
		}
	}
	return contentStart
}

func parseTagList(value string) entities.StringList {
	value = strings.TrimPrefix(value, "[")
	value = strings.TrimSuffix(value, "]")

	var tags entities.StringList
	for _, raw := range strings.Split(value, ",") {
		tag := unquote(strings.TrimSpace(raw))
		if tag != "" {
			tags = append(tags, tag)
		}
	}
	return tags
}

func unquote(s string) string {
	s = strings.ReplaceAll(s, `"`, "")
	return strings.ReplaceAll(s, "'", "")
}

// titleFromContent uses the first level-1 heading, falling back to the
// filename without its extension.
func titleFromContent(lines []string, filename string) string {
	for _, line := range lines {
		if strings.HasPrefix(line, "# ") {
			return strings.TrimSpace(strings.TrimPrefix(line, "# "))
		}
	}
	return strings.TrimSuffix(filename, ".md")
}

// descriptionFromContent takes the first substantial non-heading paragraph,
// truncated with an ellipsis.
func descriptionFromContent(content string) string {
	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") || len(line) <= 20 {
			continue
		}
		if len(line) > maxDescriptionLen {
			return line[:maxDescriptionLen] + "..."
		}
		return line
	}
	return ""
}

func categoryFromFilename(filename string) string {
	lower := strings.ToLower(filename)
	for _, entry := range categoryByFilenameHint {
		if strings.Contains(lower, entry.hint) {
			return entry.category
		}
	}
	return "General"
}

func tagsFromContent(content, category string) entities.StringList {
	lower := strings.ToLower(content)
	var tags entities.StringList
	for _, tag := range wellKnownTags {
		if strings.Contains(lower, tag) {
			tags = append(tags, tag)
		}
	}
	if len(tags) == 0 {
		tags = entities.StringList{strings.ToLower(category)}
	}
	return tags
}
