package seed

import "github.com/jeonck/tutoria/internal/entities"

// DefaultCollections returns the built-in tech stack collections. TutorialIDs
// and EstimatedDuration are left zero; they are filled in by the matcher when
// the schema is built.
func DefaultCollections() []entities.TechStackCollection {
	return append(basicCollections(), springBootCollections()...)
}

func basicCollections() []entities.TechStackCollection {
	return []entities.TechStackCollection{
		{
			Name:        "Full-Stack React Development",
			Description: "Complete learning path for building modern React applications with backend integration",
			Icon:        "⚛️",
			Color:       "#61DAFB",
			Difficulty:  entities.DifficultyIntermediate,
			Tags:        entities.StringList{"react", "fullstack", "javascript", "frontend", "backend"},
		},
		{
			Name:        "Modern JavaScript Mastery",
			Description: "Master modern JavaScript features and best practices for professional development",
			Icon:        "🚀",
			Color:       "#F7DF1E",
			Difficulty:  entities.DifficultyIntermediate,
			Tags:        entities.StringList{"javascript", "es6", "async", "modules", "fundamentals"},
		},
		{
			Name:        "DevOps & Cloud Deployment",
			Description: "Learn containerization, CI/CD, and cloud deployment strategies",
			Icon:        "☁️",
			Color:       "#FF9900",
			Difficulty:  entities.DifficultyAdvanced,
			Tags:        entities.StringList{"devops", "docker", "kubernetes", "ci-cd"},
		},
		{
			Name:        "Database & Backend APIs",
			Description: "Build robust backend systems with databases and RESTful APIs",
			Icon:        "🗄️",
			Color:       "#336791",
			Difficulty:  entities.DifficultyIntermediate,
			Tags:        entities.StringList{"database", "api", "backend", "sql", "nosql"},
		},
		{
			Name:        "AI & Machine Learning",
			Description: "Introduction to AI/ML concepts and practical implementations",
			Icon:        "🤖",
			Color:       "#FF6F00",
			Difficulty:  entities.DifficultyAdvanced,
			Tags:        entities.StringList{"ai", "machine-learning", "llm", "data-science"},
		},
		{
			Name:        "Web Security Essentials",
			Description: "Essential security practices for web applications and APIs",
			Icon:        "🔒",
			Color:       "#DC143C",
			Difficulty:  entities.DifficultyIntermediate,
			Tags:        entities.StringList{"security", "authentication", "oauth", "web-security"},
		},
		{
			Name:        "TypeScript Professional",
			Description: "Advanced TypeScript patterns for large-scale applications",
			Icon:        "📘",
			Color:       "#3178C6",
			Difficulty:  entities.DifficultyAdvanced,
			Tags:        entities.StringList{"typescript", "types", "patterns", "advanced"},
		},
	}
}

// springBootCollections are matched with the specialized Spring strategy; each
// carries at least one of the Spring marker tags.
func springBootCollections() []entities.TechStackCollection {
	return []entities.TechStackCollection{
		{
			Name:        "Spring Boot Enterprise Development",
			Description: "Core Spring Boot technology stack for large-scale enterprise applications",
			Icon:        "🏢",
			Color:       "#6DB33F",
			Difficulty:  entities.DifficultyAdvanced,
			Tags:        entities.StringList{"spring-boot", "enterprise", "microservices", "security", "jpa"},
		},
		{
			Name:        "Spring Boot REST API Master",
			Description: "RESTful API design through deployment, ready for production use",
			Icon:        "🌐",
			Color:       "#6DB33F",
			Difficulty:  entities.DifficultyIntermediate,
			Tags:        entities.StringList{"spring-boot", "rest-api", "controller", "validation", "testing"},
		},
		{
			Name:        "Spring Boot Security & Authentication",
			Description: "Build a complete security system with Spring Security",
			Icon:        "🛡️",
			Color:       "#6DB33F",
			Difficulty:  entities.DifficultyAdvanced,
			Tags:        entities.StringList{"spring-security", "jwt", "oauth", "authentication", "authorization"},
		},
		{
			Name:        "Spring Boot Data Processing Expert",
			Description: "High-performance data handling with JPA, caching, and transactions",
			Icon:        "💾",
			Color:       "#6DB33F",
			Difficulty:  entities.DifficultyAdvanced,
			Tags:        entities.StringList{"spring-data-jpa", "caching", "transaction", "database", "performance"},
		},
		{
			Name:        "Spring Boot Performance Tuning",
			Description: "Improve application performance with async processing, caching, and monitoring",
			Icon:        "⚡",
			Color:       "#6DB33F",
			Difficulty:  entities.DifficultyAdvanced,
			Tags:        entities.StringList{"spring-boot", "performance", "async", "caching", "optimization"},
		},
		{
			Name:        "Spring Boot Testing Strategies",
			Description: "Complete testing guide from unit tests to integration tests",
			Icon:        "🧪",
			Color:       "#6DB33F",
			Difficulty:  entities.DifficultyIntermediate,
			Tags:        entities.StringList{"spring-boot", "testing", "junit", "mockito", "tdd"},
		},
		{
			Name:        "Spring Boot Operations & Deployment",
			Description: "Practical skills for deploying and operating in production environments",
			Icon:        "🚀",
			Color:       "#6DB33F",
			Difficulty:  entities.DifficultyAdvanced,
			Tags:        entities.StringList{"spring-boot", "deployment", "docker", "monitoring", "configuration"},
		},
	}
}
