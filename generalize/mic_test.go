package generalize

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/ipdr/literal"
)

func TestMICDropsEveryLiteralWhenAllDownCallsSucceed(t *testing.T) {
	reg := literal.NewRegistry()
	s := cube(reg, "a", "b", "c")

	seq := &fakeSequence{
		intersectsInit: func(literal.Cube) bool { return false },
		responses: []inductiveResponse{
			{ok: true}, {ok: true}, {ok: true},
		},
	}

	res, err := MIC(seq, s, 1, DefaultMICRetries)
	require.NoError(t, err)
	require.Equal(t, 0, res.Cube.Len(), "every literal's drop succeeded, so the minimised cube is empty")
	require.False(t, res.HitLimit)
}

func TestMICKeepsALiteralWhenItsDropFails(t *testing.T) {
	reg := literal.NewRegistry()
	a := reg.MustDeclare("a")
	b := reg.MustDeclare("b")
	s := literal.NewCube(literal.Cur(a), literal.Cur(b))

	// Canonical order is a, b (by Var id). Dropping a (trying {b}) fails by
	// intersecting init; dropping b (trying {a}) succeeds.
	seq := &fakeSequence{
		intersectsInit: func(c literal.Cube) bool {
			return c.Len() == 1 && c.Literals()[0].Var() == b
		},
		responses: []inductiveResponse{{ok: true}},
	}

	res, err := MIC(seq, s, 1, DefaultMICRetries)
	require.NoError(t, err)
	require.Equal(t, 1, res.Cube.Len())
	require.Equal(t, a, res.Cube.Literals()[0].Var())
}

func TestMICReportsHitLimit(t *testing.T) {
	reg := literal.NewRegistry()
	a := reg.MustDeclare("a")
	b := reg.MustDeclare("b")
	s := literal.NewCube(literal.Cur(a), literal.Cur(b))
	empty := literal.NewCube()

	seq := &fakeSequence{
		// only the literal-{a} trial (dropping b) intersects init; it's
		// reached after the {b} trial (dropping a) aborts on retry limit.
		intersectsInit: func(c literal.Cube) bool {
			return c.Len() == 1 && c.Literals()[0].Var() == a
		},
		responses: []inductiveResponse{
			// dropping a: trying {b}, shrinks once to {} then hits retry limit 1
			{ok: false, witness: empty},
			{ok: false, witness: empty},
		},
	}

	res, err := MIC(seq, s, 1, 1)
	require.NoError(t, err)
	require.True(t, res.HitLimit)
	require.True(t, res.Cube.Equal(s), "neither literal was actually dropped")
}
