package seed

import "github.com/jeonck/tutoria/internal/entities"

var reactTutorials = []entities.Tutorial{
	{
		Title:       "React Hooks Fundamentals",
		Description: "Learn the basics of React Hooks including useState, useEffect, and custom hooks",
		Category:    "React",
		Difficulty:  entities.DifficultyBeginner,
		Duration:    45,
		Tags:        entities.StringList{"react", "hooks", "javascript"},
		Content:     "This tutorial covers the fundamentals of React Hooks including useState for state management, useEffect for side effects, and how to create custom hooks for reusable logic.",
	},
	{
		Title:       "React Context API & State Management",
		Description: "Master global state management with React Context API and useReducer",
		Category:    "React",
		Difficulty:  entities.DifficultyIntermediate,
		Duration:    75,
		Tags:        entities.StringList{"react", "context", "state-management", "usereducer"},
		Content:     "Learn advanced state management patterns using React Context API and the useReducer hook for complex applications.",
	},
	{
		Title:       "React Performance Optimization",
		Description: "Optimize React applications for better performance and user experience",
		Category:    "React",
		Difficulty:  entities.DifficultyAdvanced,
		Duration:    95,
		Tags:        entities.StringList{"react", "performance", "optimization", "memo"},
		Content:     "Advanced React performance optimization techniques including React.memo, useMemo, useCallback, and code splitting.",
	},
	{
		Title:       "React Router v6 Navigation",
		Description: "Implement client-side routing with React Router v6",
		Category:    "React",
		Difficulty:  entities.DifficultyBeginner,
		Duration:    60,
		Tags:        entities.StringList{"react", "router", "navigation", "spa"},
		Content:     "Complete guide to React Router v6 including nested routes, protected routes, and navigation patterns.",
	},
	{
		Title:       "React Testing with Jest & RTL",
		Description: "Comprehensive testing strategies for React applications",
		Category:    "React",
		Difficulty:  entities.DifficultyIntermediate,
		Duration:    80,
		Tags:        entities.StringList{"react", "testing", "jest", "rtl"},
		Content:     "Learn testing best practices for React applications using Jest and React Testing Library.",
	},
}
