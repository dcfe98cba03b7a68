package doctor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDoctorArgs(t *testing.T) {
	assert.NoError(t, Cmd.Args(Cmd, []string{}))
	assert.Error(t, Cmd.Args(Cmd, []string{"extra"}))
}

func TestDoctorInstallFlag(t *testing.T) {
	flag := Cmd.Flags().Lookup("install")
	require.NotNil(t, flag)
	assert.Equal(t, "false", flag.DefValue)
}
