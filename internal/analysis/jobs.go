package analysis

import "strings"

// JobProfile pairs a curated job title with its ranked required skills.
type JobProfile struct {
	Title  string
	Skills []string
}

// presetJobs is the high-detail table of curated roles. Exact title lookup
// against this table takes precedence over any remote resolution.
var presetJobs = []JobProfile{
	{"Backend Developer", []string{"Python", "Node.js", "SQL", "Docker", "AWS", "REST API", "Git", "PostgreSQL", "Redis", "Linux"}},
	{"Frontend Developer", []string{"React", "JavaScript", "TypeScript", "HTML", "CSS", "Tailwind CSS", "Git", "Webpack", "Testing", "Responsive Design"}},
	{"Full Stack Developer", []string{"React", "Node.js", "JavaScript", "TypeScript", "SQL", "MongoDB", "Docker", "Git", "REST API", "AWS"}},
	{"Data Scientist", []string{"Python", "Machine Learning", "Pandas", "NumPy", "SQL", "Statistics", "TensorFlow", "Jupyter", "Data Visualization", "R"}},
	{"Machine Learning Engineer", []string{"Python", "TensorFlow", "PyTorch", "Scikit-learn", "Docker", "Kubernetes", "AWS", "Git", "SQL", "Statistics"}},
	{"DevOps Engineer", []string{"Docker", "Kubernetes", "AWS", "CI/CD", "Linux", "Terraform", "Ansible", "Git", "Python", "Monitoring"}},
	{"Cloud Architect", []string{"AWS", "Azure", "GCP", "Docker", "Kubernetes", "Terraform", "Networking", "Security", "Cost Optimization", "Architecture Design"}},
	{"Mobile Developer", []string{"React Native", "Swift", "Kotlin", "JavaScript", "REST API", "Git", "Firebase", "App Store Deployment", "UI/UX", "Testing"}},
	{"Cybersecurity Analyst", []string{"Network Security", "Penetration Testing", "SIEM", "Python", "Linux", "Incident Response", "Firewalls", "Cryptography", "Compliance", "Risk Assessment"}},
	{"Product Manager", []string{"Agile", "Scrum", "Roadmapping", "User Research", "Data Analysis", "Jira", "Communication", "Stakeholder Management", "A/B Testing", "SQL"}},
	{"UI/UX Designer", []string{"Figma", "User Research", "Wireframing", "Prototyping", "Design Systems", "HTML", "CSS", "Accessibility", "A/B Testing", "Adobe XD"}},
	{"Data Engineer", []string{"Python", "Spark", "Kafka", "SQL", "Airflow", "AWS", "ETL", "Data Modeling", "Docker", "dbt"}},
}

// defaultJobSkills is the smaller fallback table used when a title is not a
// preset and remote resolution is unavailable. Keys are matched by substring
// containment against the lowercased title; first key wins in this order.
var defaultJobSkills = []JobProfile{
	{"frontend developer", []string{"JavaScript", "React", "HTML", "CSS", "Web Development", "Npm", "Git", "REST API"}},
	{"backend developer", []string{"Python", "Java", "SQL", "API Design", "Docker", "Git", "Database Design", "REST API"}},
	{"full stack developer", []string{"JavaScript", "React", "Node.js", "MongoDB", "SQL", "Git", "Docker", "REST API"}},
	{"data scientist", []string{"Python", "Data Science", "Machine Learning", "SQL", "Statistics", "TensorFlow", "Data Analysis", "Tableau"}},
	{"devops engineer", []string{"Docker", "Kubernetes", "AWS", "Linux", "CI/CD", "Git", "Jenkins", "Infrastructure"}},
	{"mobile developer", []string{"JavaScript", "React Native", "Swift", "Kotlin", "Mobile Development", "Git", "API Integration", "Testing"}},
	{"qa engineer", []string{"Testing", "Automation", "Debugging", "Git", "Problem Solving", "Documentation", "Communication", "Agile"}},
	{"project manager", []string{"Project Management", "Agile", "Leadership", "Communication", "Time Management", "Problem Solving", "Scrum", "Jira"}},
}

// genericSkills is the universal fallback. A resolved analysis never gets an
// empty required-skill set.
var genericSkills = []string{
	"Problem Solving", "Communication", "Teamwork", "Leadership",
	"Time Management", "Adaptability", "Critical Thinking", "Continuous Learning",
}

// PresetJobTitles returns the curated job titles in table order.
func PresetJobTitles() []string {
	titles := make([]string, len(presetJobs))
	for i, job := range presetJobs {
		titles[i] = job.Title
	}
	return titles
}

// LookupPresetSkills returns the curated required skills for an exact,
// case-sensitive job title match.
func LookupPresetSkills(title string) ([]string, bool) {
	for _, job := range presetJobs {
		if job.Title == title {
			return cloneSkills(job.Skills), true
		}
	}
	return nil, false
}

// DefaultSkillsForTitle resolves required skills for a title without any
// remote call: substring lookup against the default table first, generic
// soft skills otherwise. Never returns an empty set.
func DefaultSkillsForTitle(title string) []string {
	lowered := strings.ToLower(strings.TrimSpace(title))
	for _, job := range defaultJobSkills {
		if strings.Contains(lowered, job.Title) {
			return cloneSkills(job.Skills)
		}
	}
	return cloneSkills(genericSkills)
}

func cloneSkills(skills []string) []string {
	out := make([]string, len(skills))
	copy(out, skills)
	return out
}
