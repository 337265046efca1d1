package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(p, []byte(content), 0o600))
	return p
}

func TestRunWithProfileFile(t *testing.T) {
	profile := writeFile(t, "me.json", `[
		{"name": "React", "proficiency": 85, "category": "technical"},
		{"name": "TypeScript", "proficiency": 80},
		{"name": "AWS", "proficiency": 45, "category": "tools"},
		{"name": "CI/CD", "proficiency": 55, "category": "tool"}
	]`)
	jd := writeFile(t, "jd.txt", "React TypeScript AWS required for this cloud devops role")

	res, err := run(context.Background(), options{file: jd, profilePath: profile})
	require.NoError(t, err)
	assert.Equal(t, 50, res.Score)
	assert.Equal(t, []string{"AWS", "Docker"}, res.MissingSkills)

	var out bytes.Buffer
	printReport(&out, res)
	assert.Contains(t, out.String(), "Match score: 50% (Needs Improvement)")
	assert.Contains(t, out.String(), "Recommended courses:")
}

func TestRunRequiresOneSource(t *testing.T) {
	_, err := run(context.Background(), options{})
	require.Error(t, err)

	_, err = run(context.Background(), options{text: "React", url: "https://example.com"})
	require.Error(t, err)
}

func TestLoadProfile(t *testing.T) {
	p, err := loadProfile("")
	require.NoError(t, err)
	assert.Zero(t, p.Len())

	_, err = loadProfile(writeFile(t, "bad.json", `[{"name":"Go","proficiency":120}]`))
	require.Error(t, err)

	_, err = loadProfile(writeFile(t, "broken.json", `{`))
	require.Error(t, err)
}

func TestRunInvalidCandidate(t *testing.T) {
	_, err := run(context.Background(), options{text: "React", candidate: "not-a-uuid"})
	require.Error(t, err)
}
