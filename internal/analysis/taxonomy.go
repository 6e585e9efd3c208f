package analysis

import (
	"regexp"
	"sort"
	"strings"
)

// skillKeywords maps canonical skill names to the keyword variants that signal
// them in resume text. Kept as plain data so the taxonomy can be audited and
// tested independently of the matching code.
var skillKeywords = map[string][]string{
	"Python":                      {"python", "py", "django", "flask", "fastapi", "pandas", "numpy"},
	"JavaScript":                  {"javascript", "js", "typescript", "node.js", "nodejs", "react", "angular", "vue.js", "express"},
	"Java":                        {"java", "spring boot", "maven", "gradle"},
	"C++":                         {"c++", "cpp", "c plus plus"},
	"C#":                          {"c#", "csharp", ".net", "dotnet"},
	"Web Development":             {"html", "css", "web development", "responsive design"},
	"React":                       {"react", "react.js", "jsx"},
	"Angular":                     {"angular", "angular.js"},
	"Vue.js":                      {"vue.js", "vue", "vuejs"},
	"Node.js":                     {"node.js", "nodejs", "node"},
	"Express.js":                  {"express", "express.js"},
	"MongoDB":                     {"mongodb", "mongo", "nosql database"},
	"SQL":                         {"sql", "mysql", "postgresql", "oracle"},
	"PostgreSQL":                  {"postgresql", "postgres", "psql"},
	"MySQL":                       {"mysql", "mariadb"},
	"Firebase":                    {"firebase", "firestore"},
	"AWS":                         {"aws", "amazon web services", "ec2", "s3", "lambda"},
	"Azure":                       {"azure", "microsoft azure"},
	"GCP":                         {"google cloud", "gcp", "cloud platform"},
	"Docker":                      {"docker", "containerization"},
	"Kubernetes":                  {"kubernetes", "k8s"},
	"Git":                         {"git", "github", "gitlab", "bitbucket", "version control"},
	"CI/CD":                       {"cicd", "ci/cd", "jenkins", "gitlab ci", "github actions"},
	"REST API":                    {"rest api", "restful", "api design"},
	"GraphQL":                     {"graphql"},
	"Machine Learning":            {"machine learning", "ml", "deep learning", "neural network"},
	"TensorFlow":                  {"tensorflow"},
	"Pytorch":                     {"pytorch", "torch"},
	"Data Science":                {"data science", "data analysis", "analytics"},
	"Data Analysis":               {"data analysis", "analytics", "tableau", "power bi"},
	"Tableau":                     {"tableau"},
	"Power BI":                    {"power bi", "powerbi"},
	"Excel":                       {"excel", "vba", "advanced excel"},
	"Linux":                       {"linux", "ubuntu", "centos", "shell scripting", "bash"},
	"Bash":                        {"bash", "shell scripting"},
	"Windows Server":              {"windows server", "active directory"},
	"Agile":                       {"agile", "scrum", "kanban", "sprint"},
	"Scrum":                       {"scrum", "scrum master", "sprint planning"},
	"Project Management":          {"project management", "pmp", "jira"},
	"Communication":               {"communication", "presentation"},
	"Leadership":                  {"leadership", "team lead", "management"},
	"Problem Solving":             {"problem solving", "logical thinking"},
	"Object Oriented Programming": {"oop", "object oriented", "design patterns"},
	"Functional Programming":      {"functional programming", "immutability"},
	"Test Driven Development":     {"tdd", "unit testing", "junit", "pytest"},
	"Security":                    {"security", "cybersecurity", "encryption"},
	"API":                         {"api", "integration"},
	"JSON":                        {"json"},
	"XML":                         {"xml"},
	"YAML":                        {"yaml"},
	"Webpack":                     {"webpack"},
	"Npm":                         {"npm", "package management"},
	"Yarn":                        {"yarn"},
	"Debugging":                   {"debugging", "troubleshooting"},
	"Performance Optimization":    {"performance optimization", "profiling"},
	"Mobile Development":          {"mobile development", "ios", "android"},
	"React Native":                {"react native"},
	"Flutter":                     {"flutter"},
	"Swift":                       {"swift"},
	"Kotlin":                      {"kotlin"},
	"Cloud Computing":             {"cloud computing", "cloud services"},
	"Microservices":               {"microservices", "microservice architecture"},
	"DevOps":                      {"devops", "infrastructure"},
	"System Design":               {"system design", "architecture"},
	"Networking":                  {"networking", "tcp/ip"},
}

// taxonomy holds the compiled variant patterns per canonical skill.
var taxonomy = compileTaxonomy(skillKeywords)

type skillEntry struct {
	name     string
	patterns []*regexp.Regexp
}

func compileTaxonomy(keywords map[string][]string) []skillEntry {
	entries := make([]skillEntry, 0, len(keywords))
	for name, variants := range keywords {
		entry := skillEntry{name: name, patterns: make([]*regexp.Regexp, 0, len(variants))}
		for _, variant := range variants {
			entry.patterns = append(entry.patterns, variantPattern(variant))
		}
		entries = append(entries, entry)
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].name < entries[j].name })
	return entries
}

// variantPattern compiles a case-insensitive whole-word pattern for a keyword
// variant. \b anchors only the edges that are word characters: a symbol edge
// ("c++", ".net", "ci/cd") is left unanchored, so ".net" is found inside
// "asp.net" and "c++" before punctuation.
func variantPattern(variant string) *regexp.Regexp {
	quoted := regexp.QuoteMeta(strings.ToLower(variant))

	prefix := `\b`
	if !isWordByte(variant[0]) {
		prefix = ``
	}
	suffix := `\b`
	if !isWordByte(variant[len(variant)-1]) {
		suffix = ``
	}

	return regexp.MustCompile(`(?i)` + prefix + quoted + suffix)
}

func isWordByte(b byte) bool {
	return b == '_' ||
		(b >= '0' && b <= '9') ||
		(b >= 'a' && b <= 'z') ||
		(b >= 'A' && b <= 'Z')
}

// ExtractSkills maps normalized text to the canonical skill taxonomy via
// case-insensitive whole-word keyword matching. A canonical skill appears at
// most once; output is sorted for deterministic results. Never fails.
func ExtractSkills(text string) []string {
	if strings.TrimSpace(text) == "" {
		return []string{}
	}

	lowered := strings.ToLower(text)
	found := make([]string, 0, 16)
	for _, entry := range taxonomy {
		for _, pattern := range entry.patterns {
			if pattern.MatchString(lowered) {
				found = append(found, entry.name)
				break
			}
		}
	}
	// Entries are pre-sorted, so found is already in canonical order.
	return found
}

// sortedSet deduplicates and sorts a skill list. Remote extractors promise
// no ordering or uniqueness, so their output passes through here before it
// joins the pipeline.
func sortedSet(skills []string) []string {
	seen := make(map[string]struct{}, len(skills))
	out := make([]string, 0, len(skills))
	for _, skill := range skills {
		if _, ok := seen[skill]; ok {
			continue
		}
		seen[skill] = struct{}{}
		out = append(out, skill)
	}
	sort.Strings(out)
	return out
}
