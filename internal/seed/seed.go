// Package seed holds the static catalog of sample tutorials and default tech
// stack collections loaded on first run or full schema rebuild. Everything
// here is pure, static and deterministic.
package seed

import "github.com/jeonck/tutoria/internal/entities"

// AllTutorials returns every sample tutorial across all categories.
func AllTutorials() []entities.Tutorial {
	var all []entities.Tutorial
	all = append(all, reactTutorials...)
	all = append(all, springBootTutorials...)
	all = append(all, typescriptTutorials...)
	all = append(all, backendTutorials...)
	all = append(all, databaseTutorials...)
	all = append(all, devopsTutorials...)
	all = append(all, securityTutorials...)
	all = append(all, aiTutorials...)
	return all
}

// Categories maps category names to their tutorial slices.
func Categories() map[string][]entities.Tutorial {
	return map[string][]entities.Tutorial{
		"React":       reactTutorials,
		"Spring Boot": springBootTutorials,
		"TypeScript":  typescriptTutorials,
		"Backend":     backendTutorials,
		"Database":    databaseTutorials,
		"DevOps":      devopsTutorials,
		"Security":    securityTutorials,
		"AI/ML":       aiTutorials,
	}
}

// Stats summarizes the seed catalog.
type Stats struct {
	TutorialCount   int
	CollectionCount int
	TotalDuration   int
}

func CatalogStats() Stats {
	tutorials := AllTutorials()
	total := 0
	for _, t := range tutorials {
		total += t.Duration
	}
	return Stats{
		TutorialCount:   len(tutorials),
		CollectionCount: len(DefaultCollections()),
		TotalDuration:   total,
	}
}
