package version

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestString(t *testing.T) {
	GitCommit = "abc123"
	GitBranch = "main"
	GitUpstream = "origin/main"
	BuildDate = "2026-01-01"
	Version = "v0.1.0"

	s := String()
	assert.Contains(t, s, "git commit: abc123")
	assert.Contains(t, s, "git branch: main")
	assert.Contains(t, s, "version: v0.1.0")
}

func TestLogFields(t *testing.T) {
	GitCommit = "abc123"
	Version = "v0.1.0"

	fields := LogFields()
	assert.Len(t, fields, 10)

	m := make(map[string]interface{})
	for i := 0; i < len(fields); i += 2 {
		key, ok := fields[i].(string)
		assert.True(t, ok, "field key at index %d is not a string", i)
		m[key] = fields[i+1]
	}
	assert.Equal(t, "abc123", m["GitCommit"])
	assert.Equal(t, "v0.1.0", m["Version"])
}
