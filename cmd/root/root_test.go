package root

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitRegistersPersistentFlags(t *testing.T) {
	Init()

	for _, name := range []string{"input", "output", "format"} {
		flag := Cmd.PersistentFlags().Lookup(name)
		require.NotNil(t, flag, "flag %q must be registered", name)
	}
}

func TestRootCommandMetadata(t *testing.T) {
	assert.Equal(t, "vypiska-csv", Cmd.Use)
	assert.NotEmpty(t, Cmd.Short)
	assert.NotEmpty(t, Cmd.Long)
}
