package token

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTokenString(t *testing.T) {
	for tok := Token(0); tok <= maxToken; tok++ {
		if tok.String() == "" {
			t.Errorf("missing string representation of token %d", tok)
		}
	}
}

func TestLookupIdent(t *testing.T) {
	for tok := Token(0); tok < maxToken; tok++ {
		isKw := tok >= RETURN && tok <= NULL
		if !isKw {
			continue
		}
		val := LookupIdent(tok.String())
		require.Equal(t, tok, val)
	}
	require.Equal(t, IDENT, LookupIdent("notakeyword"))
	require.Equal(t, IDENT, LookupIdent("x"))
}

func TestGoString(t *testing.T) {
	require.Equal(t, "identifier", IDENT.GoString())
	require.Equal(t, "'let'", LET.GoString())
	require.Equal(t, "';'", SEMI.GoString())
}

func TestLiteral(t *testing.T) {
	val := Value{Raw: "x"}
	require.Equal(t, "x", IDENT.Literal(val))
	require.Equal(t, "x", INT.Literal(val))
	require.Equal(t, "x", DOUBLE.Literal(val))
	require.Equal(t, `"x"`, STRING.Literal(val))
	require.Equal(t, "", LET.Literal(val))
	require.Equal(t, "", SEMI.Literal(val))
}

func TestTokenAndValueEqual(t *testing.T) {
	a := TokenAndValue{Token: INT, Value: Value{Raw: "1", Pos: MakePos(1, 1)}}
	b := TokenAndValue{Token: INT, Value: Value{Raw: "1", Pos: MakePos(2, 5)}}
	c := TokenAndValue{Token: INT, Value: Value{Raw: "2", Pos: MakePos(1, 1)}}

	require.True(t, a.Equal(b))
	require.False(t, a.Equal(c))
}
