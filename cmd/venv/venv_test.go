package venv

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVenvArgs(t *testing.T) {
	assert.NoError(t, Cmd.Args(Cmd, []string{}))
	assert.Error(t, Cmd.Args(Cmd, []string{"extra"}))
}
