package markdown

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jeonck/tutoria/internal/entities"
)

const frontMatterDoc = `---
title: "React Hooks Deep Dive"
description: 'A thorough look at hooks'
category: React
difficulty: Advanced
duration: 90
tags: ["react", "hooks", "advanced"]
---

# React Hooks Deep Dive

Hooks let you use state in function components.`

func TestParseFrontMatter(t *testing.T) {
	tutorial := Parse(frontMatterDoc, "hooks.md")

	assert.Equal(t, "React Hooks Deep Dive", tutorial.Title)
	assert.Equal(t, "A thorough look at hooks", tutorial.Description)
	assert.Equal(t, "React", tutorial.Category)
	assert.Equal(t, entities.DifficultyAdvanced, tutorial.Difficulty)
	assert.Equal(t, 90, tutorial.Duration)
	assert.Equal(t, entities.StringList{"react", "hooks", "advanced"}, tutorial.Tags)
	assert.True(t, strings.HasPrefix(tutorial.Content, "# React Hooks Deep Dive"))

	assert.True(t, tutorial.IsImportedFromMarkdown)
	assert.Equal(t, "hooks.md", tutorial.OriginalFileName)
	assert.Equal(t, frontMatterDoc, tutorial.OriginalMarkdownContent)
}

func TestParseWithoutFrontMatter(t *testing.T) {
	doc := "# Getting Started with React\n\nThis guide walks you through building your first React component from scratch.\n\nMore text."
	tutorial := Parse(doc, "react-basics.md")

	assert.Equal(t, "Getting Started with React", tutorial.Title)
	assert.Contains(t, tutorial.Description, "This guide walks you through")
	assert.Equal(t, "React", tutorial.Category, "category inferred from filename")
	assert.Equal(t, entities.DifficultyBeginner, tutorial.Difficulty)
	assert.Equal(t, defaultDuration, tutorial.Duration)
	assert.Contains(t, tutorial.Tags, "react")
}

func TestParseTitleFallsBackToFilename(t *testing.T) {
	tutorial := Parse("just some text without headings", "my-notes.md")
	assert.Equal(t, "my-notes", tutorial.Title)
}

func TestParseBareContentGetsDefaults(t *testing.T) {
	tutorial := Parse("short", "notes.md")

	assert.Equal(t, defaultDescription, tutorial.Description)
	assert.Equal(t, "General", tutorial.Category)
	assert.Equal(t, entities.StringList{"general"}, tutorial.Tags, "falls back to the category tag")
}

func TestParseInvalidFrontMatterValues(t *testing.T) {
	doc := "---\ntitle: Valid Title\ndifficulty: Impossible\nduration: soon\n---\n\nBody."
	tutorial := Parse(doc, "x.md")

	assert.Equal(t, "Valid Title", tutorial.Title)
	assert.Equal(t, entities.DifficultyBeginner, tutorial.Difficulty, "unknown difficulty keeps default")
	assert.Equal(t, defaultDuration, tutorial.Duration, "unparseable duration keeps default")
}

func TestParseTagListWithoutBrackets(t *testing.T) {
	doc := "---\ntags: react, hooks , state\n---\n\nBody."
	tutorial := Parse(doc, "x.md")
	assert.Equal(t, entities.StringList{"react", "hooks", "state"}, tutorial.Tags)
}

func TestParseLongDescriptionTruncated(t *testing.T) {
	long := strings.Repeat("word ", 60)
	doc := "# Title\n\n" + long
	tutorial := Parse(doc, "x.md")

	assert.Len(t, tutorial.Description, maxDescriptionLen+3)
	assert.True(t, strings.HasSuffix(tutorial.Description, "..."))
}

func TestRenderImportedReturnsOriginal(t *testing.T) {
	tutorial := Parse(frontMatterDoc, "hooks.md")
	assert.Equal(t, frontMatterDoc, Render(tutorial))
}

func TestRenderGeneratesFrontMatter(t *testing.T) {
	tutorial := &entities.Tutorial{
		Title:       "Handwritten Tutorial",
		Description: "Made in the app",
		Category:    "React",
		Difficulty:  entities.DifficultyIntermediate,
		Duration:    45,
		Tags:        entities.StringList{"react", "hooks"},
		Content:     "# Handwritten Tutorial\n\nBody text.",
	}

	rendered := Render(tutorial)
	assert.True(t, strings.HasPrefix(rendered, "---\n"))
	assert.Contains(t, rendered, `title: "Handwritten Tutorial"`)
	assert.Contains(t, rendered, "duration: 45")
	assert.Contains(t, rendered, `tags: ["react", "hooks"]`)
	assert.True(t, strings.HasSuffix(rendered, "Body text."))
}

func TestRenderParseRoundTrip(t *testing.T) {
	original := &entities.Tutorial{
		Title:       "Round Trip",
		Description: "Survives a render and parse cycle",
		Category:    "TypeScript",
		Difficulty:  entities.DifficultyAdvanced,
		Duration:    60,
		Tags:        entities.StringList{"typescript", "types"},
		Content:     "Some body content.",
	}

	parsed := Parse(Render(original), "round-trip.md")
	assert.Equal(t, original.Title, parsed.Title)
	assert.Equal(t, original.Description, parsed.Description)
	assert.Equal(t, original.Category, parsed.Category)
	assert.Equal(t, original.Difficulty, parsed.Difficulty)
	assert.Equal(t, original.Duration, parsed.Duration)
	assert.Equal(t, original.Tags, parsed.Tags)
	assert.Equal(t, original.Content, parsed.Content)
}

func TestFilename(t *testing.T) {
	tutorial := &entities.Tutorial{Title: "React Hooks: A Deep Dive!"}
	assert.Equal(t, "react-hooks-a-deep-dive.md", Filename(tutorial))

	imported := Parse(frontMatterDoc, "hooks.md")
	assert.Equal(t, "hooks.md", Filename(imported))

	unnameable := &entities.Tutorial{Title: "??"}
	assert.Equal(t, "tutorial.md", Filename(unnameable))
}
