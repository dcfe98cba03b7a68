package sync

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSyncArgs(t *testing.T) {
	assert.NoError(t, Cmd.Args(Cmd, []string{}))
	assert.Error(t, Cmd.Args(Cmd, []string{"extra"}))
}
