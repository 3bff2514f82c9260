package seed

import "github.com/jeonck/tutoria/internal/entities"

var databaseTutorials = []entities.Tutorial{
	{
		Title:       "SQL Joins and Aggregations",
		Description: "Master relational queries with joins, grouping, and window functions",
		Category:    "Database",
		Difficulty:  entities.DifficultyBeginner,
		Duration:    60,
		Tags:        entities.StringList{"sql", "database", "joins"},
		Content:     "Practice inner and outer joins, GROUP BY aggregations, and window functions on realistic datasets.",
	},
	{
		Title:       "Database Indexing Strategies",
		Description: "Design indexes that make queries fast without slowing writes",
		Category:    "Database",
		Difficulty:  entities.DifficultyIntermediate,
		Duration:    75,
		Tags:        entities.StringList{"database", "indexing", "performance", "sql"},
		Content:     "Understand B-tree and covering indexes, composite key ordering, and how to read query plans.",
	},
	{
		Title:       "NoSQL Data Modeling with MongoDB",
		Description: "Document-oriented modeling, denormalization, and aggregation pipelines",
		Category:    "Database",
		Difficulty:  entities.DifficultyIntermediate,
		Duration:    80,
		Tags:        entities.StringList{"nosql", "mongodb", "database"},
		Content:     "Model one-to-many and many-to-many relations in documents and query them with aggregation pipelines.",
	},
}
