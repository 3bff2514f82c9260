package seed

import "github.com/jeonck/tutoria/internal/entities"

var devopsTutorials = []entities.Tutorial{
	{
		Title:       "Docker Fundamentals",
		Description: "Build, run, and publish container images with Docker",
		Category:    "DevOps",
		Difficulty:  entities.DifficultyBeginner,
		Duration:    60,
		Tags:        entities.StringList{"docker", "containers", "devops"},
		Content:     "Learn images, containers, volumes, and networks, then publish your first image to a registry.",
	},
	{
		Title:       "Kubernetes Deployment Basics",
		Description: "Deploy and scale containerized workloads on Kubernetes",
		Category:    "DevOps",
		Difficulty:  entities.DifficultyIntermediate,
		Duration:    95,
		Tags:        entities.StringList{"kubernetes", "deploy", "devops", "containers"},
		Content:     "Define Deployments, Services, and ConfigMaps, and roll out updates safely with readiness probes.",
	},
	{
		Title:       "CI/CD Pipelines with GitHub Actions",
		Description: "Automate build, test, and release workflows",
		Category:    "DevOps",
		Difficulty:  entities.DifficultyIntermediate,
		Duration:    70,
		Tags:        entities.StringList{"ci-cd", "github-actions", "automation", "devops"},
		Content:     "Create pipelines that run tests on pull requests, build artifacts, and deploy on tagged releases.",
	},
}
