package version

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVersionCommand(t *testing.T) {
	var buf bytes.Buffer
	Cmd.SetOut(&buf)
	Cmd.SetArgs([]string{})

	err := Cmd.Execute()
	require.NoError(t, err)

	out := buf.String()
	for _, want := range []string{"git commit:", "git branch:", "git upstream:", "build date:", "version:"} {
		assert.Contains(t, out, want)
	}
}
