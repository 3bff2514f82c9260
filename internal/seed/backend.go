package seed

import "github.com/jeonck/tutoria/internal/entities"

var backendTutorials = []entities.Tutorial{
	{
		Title:       "Node.js REST API with Express",
		Description: "Build backend APIs with Node.js, Express, and middleware patterns",
		Category:    "Backend",
		Difficulty:  entities.DifficultyBeginner,
		Duration:    70,
		Tags:        entities.StringList{"node", "express", "api", "backend"},
		Content:     "Create RESTful services with Express routing, middleware chains, and structured error handling.",
	},
	{
		Title:       "GraphQL API Fundamentals",
		Description: "Design and serve GraphQL schemas with resolvers and data loaders",
		Category:    "Backend",
		Difficulty:  entities.DifficultyIntermediate,
		Duration:    85,
		Tags:        entities.StringList{"graphql", "api", "backend", "schema"},
		Content:     "Model your domain as a GraphQL schema, implement resolvers, and avoid the N+1 problem with data loaders.",
	},
	{
		Title:       "Microservices Communication Patterns",
		Description: "Synchronous and asynchronous communication between microservices",
		Category:    "Backend",
		Difficulty:  entities.DifficultyAdvanced,
		Duration:    100,
		Tags:        entities.StringList{"microservices", "backend", "messaging", "api"},
		Content:     "Compare REST, gRPC, and message-broker integration styles, with guidance on retries and idempotency.",
	},
}
