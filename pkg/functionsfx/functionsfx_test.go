package functionsfx

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/joeydtaylor/steeze-functions/pkg/functions"
)

func TestProvideRegistry(t *testing.T) {
	reg := ProvideRegistry(zap.NewNop())
	require.NotNil(t, reg)

	_, err := reg.Register("greet", functions.KindHTTP, nil)
	require.NoError(t, err)

	d, ok := reg.Lookup("greet")
	require.True(t, ok)
	assert.Equal(t, functions.KindHTTP, d.Kind())
}
