package seed

import "github.com/jeonck/tutoria/internal/entities"

var securityTutorials = []entities.Tutorial{
	{
		Title:       "Web Security Essentials",
		Description: "Defend web applications against XSS, CSRF, and injection attacks",
		Category:    "Security",
		Difficulty:  entities.DifficultyBeginner,
		Duration:    65,
		Tags:        entities.StringList{"security", "xss", "csrf", "web"},
		Content:     "Understand the OWASP Top 10 and apply input validation, output encoding, and same-site cookies.",
	},
	{
		Title:       "OAuth 2.0 and OpenID Connect",
		Description: "Implement delegated authorization and federated login flows",
		Category:    "Security",
		Difficulty:  entities.DifficultyAdvanced,
		Duration:    90,
		Tags:        entities.StringList{"oauth", "auth", "security", "jwt"},
		Content:     "Walk through authorization code flow with PKCE, token validation, and session handling.",
	},
	{
		Title:       "API Security Best Practices",
		Description: "Harden REST APIs with authentication, rate limiting, and auditing",
		Category:    "Security",
		Difficulty:  entities.DifficultyIntermediate,
		Duration:    75,
		Tags:        entities.StringList{"api", "security", "authentication", "rate-limiting"},
		Content:     "Secure API endpoints with token-based auth, scoped permissions, and abuse protection.",
	},
}
