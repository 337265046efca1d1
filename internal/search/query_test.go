package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeQuery(t *testing.T) {
	assert.Equal(t, "nodejs developer", NormalizeQuery("  Node.js   Developer!! "))
	assert.Equal(t, "cicd", NormalizeQuery("CI/CD"))
	assert.Equal(t, "", NormalizeQuery("   "))
}

func TestExpandQuery(t *testing.T) {
	assert.Equal(t, []string{"frontend", "front end", "react", "ui developer"}, ExpandQuery("frontend"))
	assert.Contains(t, ExpandQuery("fullstack"), "full stack")
	assert.Contains(t, ExpandQuery("js remote"), "javascript remote")
	assert.Empty(t, ExpandQuery(""))
}

func TestQueryMatches(t *testing.T) {
	q := ProcessQuery("Node.js")
	assert.True(t, q.Matches("Full Stack Engineer", "StartupXYZ", "React", "Node.js"))
	assert.False(t, q.Matches("React Developer", "FinTech Solutions", "Redux"))

	assert.True(t, ProcessQuery("frontend").Matches("Senior React Developer"))
	assert.True(t, ProcessQuery("").Matches())
	assert.True(t, ProcessQuery("techcorp").Matches("Senior Frontend Developer", "TechCorp India"))
}
