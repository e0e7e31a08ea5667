package skill

import (
	"regexp"
	"strings"
)

// synonyms maps common variations and abbreviations to a canonical form.
var synonyms = map[string]string{
	// Programming languages
	"js":      "javascript",
	"ts":      "typescript",
	"py":      "python",
	"c#":      "csharp",
	"c sharp": "csharp",
	"golang":  "go",
	"node":    "nodejs",
	"node.js": "nodejs",

	// Frameworks
	"react.js":      "react",
	"reactjs":       "react",
	"vue.js":        "vue",
	"vuejs":         "vue",
	"angular.js":    "angular",
	"angularjs":     "angular",
	"next.js":       "nextjs",
	"nuxt.js":       "nuxtjs",
	"express.js":    "express",
	"expressjs":     "express",
	"spring boot":   "springboot",
	"spring-boot":   "springboot",
	"fast api":      "fastapi",
	"fast-api":      "fastapi",
	"ruby on rails": "rails",
	"ror":           "rails",
	".net":          "dotnet",
	"asp.net":       "aspnet",

	// Databases
	"postgres":             "postgresql",
	"mongo":                "mongodb",
	"ms sql":               "mssql",
	"sql server":           "mssql",
	"microsoft sql server": "mssql",
	"maria db":             "mariadb",

	// Cloud & DevOps
	"amazon web services":   "aws",
	"google cloud":          "gcp",
	"google cloud platform": "gcp",
	"azure cloud":           "azure",
	"microsoft azure":       "azure",
	"k8s":                   "kubernetes",
	"kube":                  "kubernetes",
	"ci/cd":                 "cicd",
	"ci cd":                 "cicd",

	// AI/ML
	"machine learning":        "ml",
	"deep learning":           "dl",
	"artificial intelligence": "ai",
	"nlp":                     "natural language processing",
	"tensorflow":              "tf",
	"scikit-learn":            "sklearn",
	"scikit learn":            "sklearn",

	// Others
	"rest api":           "restapi",
	"rest-api":           "restapi",
	"restful":            "restapi",
	"git hub":            "github",
	"git lab":            "gitlab",
	"vs code":            "vscode",
	"visual studio code": "vscode",
}

var categories = map[string][]string{
	"programming_languages": {
		"python", "java", "javascript", "typescript", "csharp", "cpp", "c",
		"go", "rust", "ruby", "php", "swift", "kotlin", "scala", "r",
	},
	"web_frontend": {
		"react", "vue", "angular", "html", "css", "sass", "tailwind",
		"bootstrap", "jquery", "nextjs", "nuxtjs", "svelte", "webpack",
	},
	"web_backend": {
		"nodejs", "express", "django", "flask", "fastapi", "spring",
		"springboot", "rails", "laravel", "aspnet", "nestjs",
	},
	"mobile": {
		"android", "ios", "react native", "flutter", "swift", "kotlin",
	},
	"databases": {
		"sql", "mysql", "postgresql", "mongodb", "redis", "elasticsearch",
		"cassandra", "dynamodb", "oracle", "mssql", "sqlite",
	},
	"cloud_platforms": {
		"aws", "azure", "gcp", "heroku", "digitalocean", "vercel",
	},
	"devops": {
		"docker", "kubernetes", "jenkins", "gitlab", "github actions",
		"terraform", "ansible", "cicd", "prometheus", "grafana",
	},
	"data_ml": {
		"ml", "dl", "ai", "tf", "pytorch", "keras", "sklearn",
		"pandas", "numpy", "spark", "hadoop",
	},
	"tools": {
		"git", "github", "gitlab", "jira", "linux", "bash", "nginx",
	},
}

var cleanPattern = regexp.MustCompile(`[^\w\s\-.#+]`)

// Dictionary canonicalizes free-text skill tokens. It is immutable after
// construction and safe for concurrent reads; the app shares a single
// instance across all requests.
type Dictionary struct {
	synonyms        map[string]string
	skillToCategory map[string]string
	allSkills       map[string]struct{}
}

func NewDictionary() *Dictionary {
	d := &Dictionary{
		synonyms:        synonyms,
		skillToCategory: make(map[string]string),
		allSkills:       make(map[string]struct{}),
	}
	for category, skills := range categories {
		for _, s := range skills {
			s = strings.ToLower(s)
			d.allSkills[s] = struct{}{}
			d.skillToCategory[s] = category
		}
	}
	return d
}

// Normalize maps a raw skill token to its canonical form. Unknown skills
// pass through cleaned but otherwise unchanged.
func (d *Dictionary) Normalize(raw string) string {
	s := strings.ToLower(strings.TrimSpace(raw))
	s = cleanPattern.ReplaceAllString(s, "")

	if canonical, ok := d.synonyms[s]; ok {
		return canonical
	}

	// "node.js" and "nodejs" style variants collapse once dots are gone.
	noDots := strings.ReplaceAll(s, ".", "")
	if canonical, ok := d.synonyms[noDots]; ok {
		return canonical
	}

	return s
}

// Category reports the category of a skill, if it is a known one.
func (d *Dictionary) Category(raw string) (string, bool) {
	c, ok := d.skillToCategory[d.Normalize(raw)]
	return c, ok
}

func (d *Dictionary) IsKnown(raw string) bool {
	_, ok := d.allSkills[d.Normalize(raw)]
	return ok
}

func (d *Dictionary) AreSimilar(a, b string) bool {
	return d.Normalize(a) == d.Normalize(b)
}

// NormalizeAll normalizes a list of skills, dropping blanks and duplicates
// while keeping first-seen order.
func (d *Dictionary) NormalizeAll(skills []string) []string {
	seen := make(map[string]struct{}, len(skills))
	out := make([]string, 0, len(skills))
	for _, s := range skills {
		if strings.TrimSpace(s) == "" {
			continue
		}
		n := d.Normalize(s)
		if n == "" {
			continue
		}
		if _, ok := seen[n]; ok {
			continue
		}
		seen[n] = struct{}{}
		out = append(out, n)
	}
	return out
}

// FindMatches computes the skill overlap between a candidate and a job
// after normalizing both sides: matched = intersection, missing = job
// minus candidate, extra = candidate minus job. Order within each list
// follows first appearance in the input.
func (d *Dictionary) FindMatches(cvSkills, jdSkills []string) (matched, missing, extra []string) {
	cvNorm := d.NormalizeAll(cvSkills)
	jdNorm := d.NormalizeAll(jdSkills)

	cvSet := make(map[string]struct{}, len(cvNorm))
	for _, s := range cvNorm {
		cvSet[s] = struct{}{}
	}
	jdSet := make(map[string]struct{}, len(jdNorm))
	for _, s := range jdNorm {
		jdSet[s] = struct{}{}
	}

	matched = make([]string, 0, len(jdNorm))
	missing = make([]string, 0, len(jdNorm))
	extra = make([]string, 0, len(cvNorm))

	for _, s := range jdNorm {
		if _, ok := cvSet[s]; ok {
			matched = append(matched, s)
		} else {
			missing = append(missing, s)
		}
	}
	for _, s := range cvNorm {
		if _, ok := jdSet[s]; !ok {
			extra = append(extra, s)
		}
	}
	return matched, missing, extra
}
