package seed

import "github.com/jeonck/tutoria/internal/entities"

var springBootTutorials = []entities.Tutorial{
	{
		Title:       "Spring Boot REST API Design",
		Description: "Build production-ready RESTful APIs with Spring Boot controllers and validation",
		Category:    "Spring Boot",
		Difficulty:  entities.DifficultyIntermediate,
		Duration:    90,
		Tags:        entities.StringList{"spring-boot", "rest-api", "controller", "validation"},
		Content:     "Design and implement RESTful endpoints with Spring Boot, covering request validation, error handling, and response shaping.",
	},
	{
		Title:       "Spring Security with JWT Authentication",
		Description: "Secure Spring Boot applications using Spring Security and JSON Web Tokens",
		Category:    "Spring Boot",
		Difficulty:  entities.DifficultyAdvanced,
		Duration:    110,
		Tags:        entities.StringList{"spring-security", "jwt", "authentication"},
		Content:     "Implement stateless authentication with Spring Security filter chains, JWT issuance and verification, and role-based authorization.",
	},
	{
		Title:       "Spring Data JPA & Hibernate Mastery",
		Description: "Persist data effectively with Spring Data JPA repositories and Hibernate",
		Category:    "Spring Boot",
		Difficulty:  entities.DifficultyAdvanced,
		Duration:    100,
		Tags:        entities.StringList{"spring-data-jpa", "hibernate", "database"},
		Content:     "Master entity mapping, repository abstractions, query derivation, and transaction boundaries with Spring Data JPA.",
	},
	{
		Title:       "Spring Boot Async & Caching Performance",
		Description: "Speed up Spring Boot services with async processing and caching",
		Category:    "Spring Boot",
		Difficulty:  entities.DifficultyAdvanced,
		Duration:    85,
		Tags:        entities.StringList{"spring-boot", "async", "cache", "performance"},
		Content:     "Apply @Async, caching abstractions, and connection pool tuning to improve Spring Boot application throughput.",
	},
	{
		Title:       "Spring Boot Testing with JUnit & Mockito",
		Description: "Unit and integration testing strategies for Spring Boot applications",
		Category:    "Spring Boot",
		Difficulty:  entities.DifficultyIntermediate,
		Duration:    75,
		Tags:        entities.StringList{"spring-boot", "testing", "junit", "mockito"},
		Content:     "Write maintainable tests with JUnit 5, Mockito mocks, slice tests, and full-context integration tests.",
	},
	{
		Title:       "Spring Boot Docker Deployment",
		Description: "Containerize and deploy Spring Boot applications with Docker",
		Category:    "Spring Boot",
		Difficulty:  entities.DifficultyIntermediate,
		Duration:    70,
		Tags:        entities.StringList{"spring-boot", "docker", "deployment"},
		Content:     "Build layered Docker images for Spring Boot, externalize configuration, and deploy containers to production.",
	},
}
