package analysis

const (
	// Bounds for recommendation output. Only the first maxMissingConsidered
	// missing skills are looked up; final lists are capped after dedupe.
	maxMissingConsidered = 6
	maxCourses           = 5
	maxProjects          = 4

	placeholderCourse  = "Complete online courses for improving skills"
	placeholderProject = "Work on hands-on projects to build skills"
)

// courseCatalog maps lowercased skill keys to curated course recommendations.
var courseCatalog = []catalogEntry{
	{"python", "Python Bootcamp - Udemy (Jose Portilla)"},
	{"javascript", "The Complete JavaScript Course - Udemy (Jonas Schmedtmann)"},
	{"react", "React - The Complete Guide - Udemy (Maximilian Schwarzmüller)"},
	{"node.js", "Node.js Developer Course - Udemy (Andrew Mead)"},
	{"docker", "Docker & Kubernetes: The Complete Guide - Udemy"},
	{"aws", "AWS Certified Solutions Architect - A Cloud Guru"},
	{"sql", "Complete SQL Bootcamp - Udemy (Jose Portilla)"},
	{"mongodb", "MongoDB - The Complete Developer Guide - Udemy"},
	{"machine learning", "Machine Learning Specialization - Coursera (Andrew Ng)"},
	{"tensorflow", "TensorFlow Developer Certificate - Coursera"},
	{"kubernetes", "Certified Kubernetes Administrator - Linux Foundation"},
	{"typescript", "Understanding TypeScript - Udemy"},
	{"terraform", "HashiCorp Terraform Associate - Udemy"},
	{"git", "Git & GitHub Bootcamp - Udemy"},
	{"linux", "Linux Command Line Basics - Udemy"},
	{"leadership", "Effective Leadership Communication - Coursera"},
	{"project management", "Google Project Management Certificate - Coursera"},
}

// projectCatalog maps lowercased skill keys to curated project suggestions.
var projectCatalog = []catalogEntry{
	{"python", "Build a REST API with FastAPI and PostgreSQL"},
	{"javascript", "Create a real-time chat app with WebSockets"},
	{"react", "Build a full-stack e-commerce app with React"},
	{"node.js", "Build a microservices backend with Express"},
	{"docker", "Containerize a multi-service application with Docker Compose"},
	{"aws", "Deploy a scalable app on AWS with EC2 and RDS"},
	{"sql", "Design and query a relational database for an inventory system"},
	{"mongodb", "Build a blog platform with MongoDB and Mongoose"},
	{"machine learning", "Train a sentiment analysis model on product reviews"},
	{"kubernetes", "Deploy a microservices app on a Kubernetes cluster"},
	{"terraform", "Provision a multi-environment stack with Terraform modules"},
}

type catalogEntry struct {
	key   string
	value string
}

// Recommendations holds ordered course and project suggestions for missing skills.
type Recommendations struct {
	Courses  []string
	Projects []string
}

// Recommend maps missing skills to course and project suggestions. The first
// six missing skills are considered, looked up with the same substring
// equivalence the matcher uses; unrecognized skills get a synthesized generic
// suggestion. Lists are deduplicated and capped at 5 courses and 4 projects,
// and a placeholder is substituted when a list would otherwise be empty.
func Recommend(missingSkills []string) Recommendations {
	considered := missingSkills
	if len(considered) > maxMissingConsidered {
		considered = considered[:maxMissingConsidered]
	}

	courses := make([]string, 0, len(considered))
	projects := make([]string, 0, len(considered))
	for _, skill := range considered {
		if normalizeSkill(skill) == "" {
			continue
		}
		courses = append(courses, lookupCatalog(courseCatalog, skill, skill+" Masterclass (Udemy)"))
		projects = append(projects, lookupCatalog(projectCatalog, skill, "Build a "+skill+" project"))
	}

	courses = capList(dedupe(courses), maxCourses)
	projects = capList(dedupe(projects), maxProjects)

	if len(courses) == 0 {
		courses = []string{placeholderCourse}
	}
	if len(projects) == 0 {
		projects = []string{placeholderProject}
	}

	return Recommendations{Courses: courses, Projects: projects}
}

// lookupCatalog finds the first entry whose key is substring-equivalent to the
// skill, in catalog declaration order. Falls back to the synthesized generic.
func lookupCatalog(catalog []catalogEntry, skill, generic string) string {
	for _, entry := range catalog {
		if skillsEquivalent(skill, entry.key) {
			return entry.value
		}
	}
	return generic
}

func dedupe(items []string) []string {
	seen := make(map[string]struct{}, len(items))
	out := make([]string, 0, len(items))
	for _, item := range items {
		if _, ok := seen[item]; ok {
			continue
		}
		seen[item] = struct{}{}
		out = append(out, item)
	}
	return out
}

func capList(items []string, max int) []string {
	if len(items) > max {
		return items[:max]
	}
	return items
}
