package skill

import (
	"regexp"
	"sort"
)

// Pattern list is ordered roughly by domain: languages, frontend, backend,
// mobile, databases, cloud/devops, data/ML, then general tooling. Word
// boundaries keep "go" from matching inside "mongodb".
var extractPatterns = []string{
	// Programming languages
	`(?i)\b(python|java|javascript|typescript|c\+\+|c#|csharp|ruby|php|go|golang|rust|swift|kotlin|scala|r|matlab|perl)\b`,

	// Web frontend
	`(?i)\b(react|reactjs|react\.js|vue|vuejs|vue\.js|angular|angularjs|svelte|nextjs|next\.js|nuxtjs|nuxt\.js)\b`,
	`(?i)\b(html5?|css3?|sass|scss|less|tailwind|bootstrap|jquery|webpack|vite|babel)\b`,
	`(?i)\b(redux|mobx|vuex|pinia|graphql|apollo)\b`,

	// Web backend
	`(?i)\b(nodejs|node\.js|express|expressjs|django|flask|fastapi|spring|springboot|spring boot)\b`,
	`(?i)\b(rails|ruby on rails|laravel|symfony|asp\.net|aspnet|\.net|dotnet|nestjs)\b`,

	// Mobile
	`(?i)\b(android|ios|react native|flutter|xamarin|ionic|swift|swiftui|kotlin)\b`,

	// Databases
	`(?i)\b(sql|mysql|postgresql|postgres|mongodb|mongo|redis|elasticsearch|cassandra)\b`,
	`(?i)\b(dynamodb|oracle|mssql|sql server|sqlite|mariadb|neo4j|firebase)\b`,

	// Cloud & DevOps
	`(?i)\b(aws|amazon web services|azure|gcp|google cloud|heroku|digitalocean|vercel|netlify)\b`,
	`(?i)\b(docker|kubernetes|k8s|jenkins|gitlab|github actions|circleci|travis)\b`,
	`(?i)\b(terraform|ansible|puppet|chef|vagrant|helm|argocd)\b`,
	`(?i)\b(ci/cd|cicd|devops|sre|linux|unix|bash|shell|powershell)\b`,
	`(?i)\b(nginx|apache|prometheus|grafana|elk|datadog|splunk)\b`,

	// Data & ML
	`(?i)\b(machine learning|deep learning|ml|dl|ai|artificial intelligence)\b`,
	`(?i)\b(tensorflow|pytorch|keras|scikit-learn|sklearn|pandas|numpy|scipy)\b`,
	`(?i)\b(spark|hadoop|airflow|kafka|flink|hive|presto|snowflake|databricks)\b`,
	`(?i)\b(nlp|computer vision|opencv|huggingface|transformers|bert|gpt)\b`,

	// Tools & others
	`(?i)\b(git|github|gitlab|bitbucket|svn|mercurial)\b`,
	`(?i)\b(jira|confluence|trello|asana|slack|notion)\b`,
	`(?i)\b(figma|sketch|adobe xd|photoshop|illustrator)\b`,
	`(?i)\b(rest|restful|api|microservices|grpc|websocket|soap)\b`,
	`(?i)\b(agile|scrum|kanban|waterfall|lean)\b`,
	`(?i)\b(tdd|bdd|unit testing|integration testing|e2e|selenium|cypress|jest|pytest)\b`,
}

// Extractor scans free text for technical skills using a fixed pattern
// set and normalizes hits through the dictionary. Regex over NER keeps
// extraction deterministic; the vocabulary is closed and domain-specific,
// so the recall tradeoff is acceptable.
type Extractor struct {
	dict     *Dictionary
	patterns []*regexp.Regexp
}

func NewExtractor(dict *Dictionary) *Extractor {
	if dict == nil {
		dict = NewDictionary()
	}
	compiled := make([]*regexp.Regexp, 0, len(extractPatterns))
	for _, p := range extractPatterns {
		compiled = append(compiled, regexp.MustCompile(p))
	}
	return &Extractor{dict: dict, patterns: compiled}
}

// Extract returns the sorted, deduplicated set of normalized skills found
// in text. Empty input yields an empty slice.
func (e *Extractor) Extract(text string) []string {
	if text == "" {
		return []string{}
	}

	found := make(map[string]struct{})
	for _, p := range e.patterns {
		for _, m := range p.FindAllString(text, -1) {
			n := e.dict.Normalize(m)
			if n != "" {
				found[n] = struct{}{}
			}
		}
	}

	out := make([]string, 0, len(found))
	for s := range found {
		out = append(out, s)
	}
	sort.Strings(out)
	return out
}

// ExtractByCategory groups extracted skills by dictionary category.
// Skills without a known category land under "other". Every skill
// Extract finds appears in exactly one bucket.
func (e *Extractor) ExtractByCategory(text string) map[string][]string {
	skills := e.Extract(text)

	out := make(map[string][]string)
	other := make([]string, 0)
	for _, s := range skills {
		if category, ok := e.dict.Category(s); ok {
			out[category] = append(out[category], s)
		} else {
			other = append(other, s)
		}
	}
	if len(other) > 0 {
		out["other"] = other
	}
	return out
}

// Count reports how many distinct skills appear in text.
func (e *Extractor) Count(text string) int {
	return len(e.Extract(text))
}
