package search

var Synonyms = map[string][]string{
	"frontend":   {"front end", "react", "ui developer"},
	"backend":    {"back end", "server developer", "nodejs"},
	"full stack": {"fullstack", "full stack engineer"},
	"devops":     {"cicd", "docker", "kubernetes"},
	"cloud":      {"aws", "devops"},
	"js":         {"javascript"},
	"ts":         {"typescript"},
	"k8s":        {"kubernetes"},
	"node":       {"nodejs"},
}

func GetSynonyms(query string) []string {
	if query == "" {
		return []string{}
	}
	if v, ok := Synonyms[query]; ok {
		out := make([]string, 0, len(v))
		out = append(out, v...)
		return out
	}
	return []string{}
}
