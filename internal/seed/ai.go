package seed

import "github.com/jeonck/tutoria/internal/entities"

var aiTutorials = []entities.Tutorial{
	{
		Title:       "Machine Learning Foundations",
		Description: "Core concepts of supervised and unsupervised learning",
		Category:    "AI",
		Difficulty:  entities.DifficultyBeginner,
		Duration:    80,
		Tags:        entities.StringList{"machine-learning", "ai", "python"},
		Content:     "Cover regression, classification, clustering, and evaluation metrics with hands-on examples.",
	},
	{
		Title:       "Building Applications with LLM APIs",
		Description: "Integrate large language models into products via chat-completion APIs",
		Category:    "AI",
		Difficulty:  entities.DifficultyIntermediate,
		Duration:    70,
		Tags:        entities.StringList{"llm", "ai", "api", "prompt-engineering"},
		Content:     "Design prompts, stream responses, and handle rate limits when calling hosted language models.",
	},
	{
		Title:       "Retrieval-Augmented Generation",
		Description: "Ground model answers in your own documents with embeddings and vector search",
		Category:    "AI",
		Difficulty:  entities.DifficultyAdvanced,
		Duration:    95,
		Tags:        entities.StringList{"rag", "embeddings", "ai", "vector-search"},
		Content:     "Chunk documents, index embeddings, and combine retrieval with generation for accurate answers.",
	},
}
