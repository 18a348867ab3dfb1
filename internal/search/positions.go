package search

import "go-talent-backend/internal/domain"

// positionKeywords is the domain vocabulary used for position relevance
var positionKeywords = map[domain.Position][]string{
	domain.PositionFrontend: {
		"react", "vue", "angular", "javascript", "typescript", "html", "css", "sass",
		"tailwind", "next.js", "redux", "webpack", "vite", "responsive", "frontend", "ui",
	},
	domain.PositionBackend: {
		"node.js", "express", "go", "golang", "java", "spring", "python", "django",
		"api", "rest", "graphql", "sql", "postgresql", "mysql", "mongodb", "redis",
		"microservices", "backend",
	},
	domain.PositionFullstack: {
		"react", "vue", "node.js", "express", "javascript", "typescript", "api", "rest",
		"sql", "mongodb", "next.js", "docker", "fullstack", "full stack", "frontend", "backend",
	},
	domain.PositionMobile: {
		"android", "ios", "kotlin", "swift", "flutter", "dart", "react native", "mobile",
		"xcode", "android studio", "firebase", "jetpack compose", "swiftui",
	},
	domain.PositionDevOps: {
		"docker", "kubernetes", "aws", "azure", "gcp", "terraform", "ansible", "jenkins",
		"ci/cd", "github actions", "linux", "bash", "prometheus", "grafana", "nginx", "devops",
	},
	domain.PositionDataScience: {
		"python", "pandas", "numpy", "scikit-learn", "tensorflow", "pytorch", "machine learning",
		"deep learning", "statistics", "sql", "jupyter", "data analysis", "visualization",
		"nlp", "r", "spark",
	},
	domain.PositionUIUX: {
		"figma", "sketch", "adobe xd", "photoshop", "illustrator", "prototyping", "wireframe",
		"user research", "usability", "design system", "ui", "ux", "interaction design", "invision",
	},
}

// PositionKeywords returns the vocabulary for a position. Unknown positions yield an empty list.
func PositionKeywords(position domain.Position) []string {
	keywords, ok := positionKeywords[position]
	if !ok {
		return []string{}
	}
	out := make([]string, len(keywords))
	copy(out, keywords)
	return out
}
