// Package matching assigns tutorials to tech stack collections based on
// tag and category heuristics. All functions are pure: membership and order
// depend only on the input slice order, so repeated calls with the same
// inputs return identical results.
package matching

import (
	"strings"

	"github.com/jeonck/tutoria/internal/entities"
)

// springMarkerTags select the specialized Spring Boot matching strategy when
// present among a collection's tags.
var springMarkerTags = map[string]bool{
	"spring-boot":     true,
	"spring-security": true,
	"spring-data-jpa": true,
}

// synonymRules maps a collection tag to keyword substrings that should count
// as a match even without textual overlap.
var synonymRules = map[string][]string{
	"spring-boot":     {"spring", "boot"},
	"spring-security": {"security", "jwt", "auth"},
	"spring-data-jpa": {"jpa", "hibernate", "data"},
	"performance":     {"async", "cache", "optimization"},
	"testing":         {"test", "junit", "mock"},
	"deployment":      {"docker", "deploy", "container"},
}

// keywords builds the lowercased keyword set for a tutorial: category, tags
// and title, in that order.
func keywords(t entities.Tutorial) []string {
	words := make([]string, 0, len(t.Tags)+2)
	words = append(words, strings.ToLower(t.Category))
	for _, tag := range t.Tags {
		words = append(words, strings.ToLower(tag))
	}
	words = append(words, strings.ToLower(t.Title))
	return words
}

// MatchTutorialsToCollection returns the tutorials belonging to the
// collection, preserving input order. Collections tagged with one of the
// Spring marker tags use the specialized strategy; everything else uses
// plain bidirectional substring containment.
func MatchTutorialsToCollection(collection entities.TechStackCollection, tutorials []entities.Tutorial) []entities.Tutorial {
	for _, tag := range collection.Tags {
		if springMarkerTags[strings.ToLower(tag)] {
			return matchSpringTutorials(collection, tutorials)
		}
	}
	return matchGeneralTutorials(collection, tutorials)
}

// matchSpringTutorials first restricts to tutorials whose category or tags
// contain the "spring" root keyword, then applies exact, compound-tag and
// synonym rules per collection tag.
func matchSpringTutorials(collection entities.TechStackCollection, tutorials []entities.Tutorial) []entities.Tutorial {
	var matched []entities.Tutorial
	for _, tutorial := range tutorials {
		if !isSpringTutorial(tutorial) {
			continue
		}
		words := keywords(tutorial)
		if anyTagMatches(collection.Tags, words, matchSpringKeyword) {
			matched = append(matched, tutorial)
		}
	}
	return matched
}

func isSpringTutorial(t entities.Tutorial) bool {
	if strings.Contains(strings.ToLower(t.Category), "spring") {
		return true
	}
	for _, tag := range t.Tags {
		if strings.Contains(strings.ToLower(tag), "spring") {
			return true
		}
	}
	return false
}

func matchSpringKeyword(tag, keyword string) bool {
	if keyword == tag {
		return true
	}
	// Compound tags match their collapsed form: "rest-api" ~ "restapi".
	if strings.Contains(tag, "-") && strings.Contains(keyword, strings.ReplaceAll(tag, "-", "")) {
		return true
	}
	if strings.Contains(keyword, "-") && strings.Contains(tag, strings.ReplaceAll(keyword, "-", "")) {
		return true
	}
	for _, synonym := range synonymRules[tag] {
		if strings.Contains(keyword, synonym) {
			return true
		}
	}
	return false
}

// matchGeneralTutorials uses bidirectional substring containment between each
// collection tag and each tutorial keyword.
func matchGeneralTutorials(collection entities.TechStackCollection, tutorials []entities.Tutorial) []entities.Tutorial {
	var matched []entities.Tutorial
	for _, tutorial := range tutorials {
		words := keywords(tutorial)
		if anyTagMatches(collection.Tags, words, func(tag, keyword string) bool {
			return strings.Contains(keyword, tag) || strings.Contains(tag, keyword)
		}) {
			matched = append(matched, tutorial)
		}
	}
	return matched
}

func anyTagMatches(tags entities.StringList, words []string, match func(tag, keyword string) bool) bool {
	for _, collectionTag := range tags {
		tag := strings.ToLower(collectionTag)
		for _, keyword := range words {
			if match(tag, keyword) {
				return true
			}
		}
	}
	return false
}

// EstimatedDuration sums the durations of the matched tutorials.
func EstimatedDuration(matched []entities.Tutorial) int {
	total := 0
	for _, t := range matched {
		total += t.Duration
	}
	return total
}

// TutorialIDs projects the ids of the matched tutorials, preserving order.
func TutorialIDs(matched []entities.Tutorial) entities.IDList {
	ids := make(entities.IDList, 0, len(matched))
	for _, t := range matched {
		ids = append(ids, t.ID)
	}
	return ids
}

// ApplyMatches fills TutorialIDs and EstimatedDuration for each collection
// from the given tutorials. Computed once at seed or creation time; the
// stored values are not recomputed on later reads.
func ApplyMatches(collections []entities.TechStackCollection, tutorials []entities.Tutorial) []entities.TechStackCollection {
	result := make([]entities.TechStackCollection, len(collections))
	for i, collection := range collections {
		matched := MatchTutorialsToCollection(collection, tutorials)
		collection.TutorialIDs = TutorialIDs(matched)
		collection.EstimatedDuration = EstimatedDuration(matched)
		result[i] = collection
	}
	return result
}
