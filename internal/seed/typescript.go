package seed

import "github.com/jeonck/tutoria/internal/entities"

var typescriptTutorials = []entities.Tutorial{
	{
		Title:       "TypeScript Type System Essentials",
		Description: "Understand TypeScript's structural typing, unions, and generics",
		Category:    "TypeScript",
		Difficulty:  entities.DifficultyBeginner,
		Duration:    55,
		Tags:        entities.StringList{"typescript", "types", "generics"},
		Content:     "A tour of the TypeScript type system: primitives, unions, intersections, generics, and type narrowing.",
	},
	{
		Title:       "Advanced TypeScript Patterns",
		Description: "Conditional types, mapped types, and template literal types in practice",
		Category:    "TypeScript",
		Difficulty:  entities.DifficultyAdvanced,
		Duration:    90,
		Tags:        entities.StringList{"typescript", "conditional-types", "mapped-types"},
		Content:     "Use advanced type-level programming to model real-world constraints and build safer APIs.",
	},
	{
		Title:       "Migrating JavaScript to TypeScript",
		Description: "Incremental migration strategies for existing JavaScript codebases",
		Category:    "TypeScript",
		Difficulty:  entities.DifficultyIntermediate,
		Duration:    65,
		Tags:        entities.StringList{"typescript", "javascript", "migration"},
		Content:     "Adopt TypeScript gradually with allowJs, checkJs, and per-module strictness without halting feature work.",
	},
}
