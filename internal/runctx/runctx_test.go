package runctx_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/darrenclark/dang/internal/runctx"
	"github.com/darrenclark/dang/lang/machine"
)

func TestSourceReturnsValue(t *testing.T) {
	th := machine.NewThread()
	result, err := runctx.Source(context.Background(), th, []byte("return 1 + 2;"))
	require.NoError(t, err)
	require.Equal(t, machine.Int(3), result.Value)
}

func TestSourceSharesGlobalsAcrossCalls(t *testing.T) {
	th := machine.NewThread()

	_, err := runctx.Source(context.Background(), th, []byte("let x = 41;"))
	require.NoError(t, err)

	result, err := runctx.Source(context.Background(), th, []byte("return x + 1;"))
	require.NoError(t, err)
	require.Equal(t, machine.Int(42), result.Value)
}

func TestSourcePropagatesParseError(t *testing.T) {
	th := machine.NewThread()
	_, err := runctx.Source(context.Background(), th, []byte("let = 1;"))
	require.Error(t, err)
}

func TestSourcePropagatesRuntimeError(t *testing.T) {
	th := machine.NewThread()
	_, err := runctx.Source(context.Background(), th, []byte(`return 1 / 0;`))
	require.Error(t, err)
}
