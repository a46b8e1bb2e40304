package quadtree_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/lvlgen/quadtree"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// actor is a minimal non-Rect HitBoxer, the way collision code stores entities.
type actor struct {
	name string
	box  quadtree.Rect
}

func (a actor) HitBox() quadtree.Rect { return a.box }

// TestRect_Intersects covers overlap, containment, edge touching and empty boxes.
func TestRect_Intersects(t *testing.T) {
	base := quadtree.Rect{X: 0, Y: 0, W: 4, H: 4}
	cases := []struct {
		name string
		o    quadtree.Rect
		want bool
	}{
		{"Identical", base, true},
		{"Inside", quadtree.Rect{X: 1, Y: 1, W: 1, H: 1}, true},
		{"PartialOverlap", quadtree.Rect{X: 3, Y: 3, W: 4, H: 4}, true},
		{"TouchRightEdge", quadtree.Rect{X: 4, Y: 0, W: 2, H: 4}, false},
		{"TouchBottomEdge", quadtree.Rect{X: 0, Y: 4, W: 4, H: 2}, false},
		{"TouchCorner", quadtree.Rect{X: 4, Y: 4, W: 1, H: 1}, false},
		{"Disjoint", quadtree.Rect{X: 10, Y: 10, W: 2, H: 2}, false},
		{"NegativeSide", quadtree.Rect{X: -2, Y: -2, W: 3, H: 3}, true},
		{"EmptyWidth", quadtree.Rect{X: 1, Y: 1, W: 0, H: 3}, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, base.Intersects(tc.o))
			assert.Equal(t, tc.want, tc.o.Intersects(base), "Intersects must be symmetric")
		})
	}
}

// TestRect_Contains checks full containment including shared edges.
func TestRect_Contains(t *testing.T) {
	outer := quadtree.Rect{X: 0, Y: 0, W: 10, H: 10}
	assert.True(t, outer.Contains(quadtree.Rect{X: 0, Y: 0, W: 10, H: 10}))
	assert.True(t, outer.Contains(quadtree.Rect{X: 5, Y: 5, W: 5, H: 5}))
	assert.False(t, outer.Contains(quadtree.Rect{X: 5, Y: 5, W: 6, H: 5}))
	assert.False(t, outer.Contains(quadtree.Rect{X: -1, Y: 0, W: 2, H: 2}))
}

// TestNew_Errors verifies option and bounds validation.
func TestNew_Errors(t *testing.T) {
	_, err := quadtree.New[quadtree.Rect](quadtree.Rect{W: 0, H: 5})
	assert.ErrorIs(t, err, quadtree.ErrEmptyBounds)

	_, err = quadtree.New[quadtree.Rect](quadtree.Rect{W: 5, H: 5}, quadtree.WithCapacity(0))
	assert.ErrorIs(t, err, quadtree.ErrInvalidCapacity)

	_, err = quadtree.New[quadtree.Rect](quadtree.Rect{W: 5, H: 5}, quadtree.WithMaxDepth(-1))
	assert.ErrorIs(t, err, quadtree.ErrInvalidDepth)
}

// TestQuery_Basic inserts three rooms and queries around them.
func TestQuery_Basic(t *testing.T) {
	tr, err := quadtree.New[quadtree.Rect](quadtree.Rect{W: 100, H: 100})
	require.NoError(t, err)

	a := quadtree.Rect{X: 1, Y: 1, W: 3, H: 3}
	b := quadtree.Rect{X: 11, Y: 1, W: 5, H: 3}
	c := quadtree.Rect{X: 51, Y: 51, W: 7, H: 5}
	tr.Insert(a)
	tr.Insert(b)
	tr.Insert(c)
	assert.Equal(t, 3, tr.Len())

	assert.Equal(t, []quadtree.Rect{a, b}, tr.Query(quadtree.Rect{X: 0, Y: 0, W: 20, H: 5}))
	assert.Equal(t, []quadtree.Rect{c}, tr.Query(quadtree.Rect{X: 57, Y: 55, W: 3, H: 3}))
	assert.Empty(t, tr.Query(quadtree.Rect{X: 4, Y: 1, W: 7, H: 3}), "gap between a and b must be empty")
	assert.True(t, tr.Collides(quadtree.Rect{X: 3, Y: 3, W: 1, H: 1}))
	assert.False(t, tr.Collides(quadtree.Rect{X: 4, Y: 4, W: 1, H: 1}))
}

// TestInsert_OutsideBounds ensures values beyond the extent are still found.
func TestInsert_OutsideBounds(t *testing.T) {
	tr, err := quadtree.New[actor](quadtree.Rect{W: 10, H: 10})
	require.NoError(t, err)

	far := actor{"far", quadtree.Rect{X: 50, Y: 50, W: 2, H: 2}}
	straddle := actor{"straddle", quadtree.Rect{X: 8, Y: 8, W: 5, H: 5}}
	tr.Insert(far)
	tr.Insert(straddle)

	got := tr.Query(quadtree.Rect{X: 9, Y: 9, W: 50, H: 50})
	require.Len(t, got, 2)
	assert.Equal(t, "far", got[0].name)
	assert.Equal(t, "straddle", got[1].name)
}

// TestInsert_Splits confirms that exceeding capacity subdivides the root.
func TestInsert_Splits(t *testing.T) {
	tr, err := quadtree.New[quadtree.Rect](quadtree.Rect{W: 64, H: 64}, quadtree.WithCapacity(2))
	require.NoError(t, err)
	for i := 0; i < 8; i++ {
		tr.Insert(quadtree.Rect{X: i * 8, Y: i * 8, W: 2, H: 2})
	}
	assert.Greater(t, tr.NodeCount(), 1)

	tr.Clear()
	assert.Zero(t, tr.Len())
	assert.Equal(t, 1, tr.NodeCount())
	assert.Empty(t, tr.Query(tr.Bounds()))
}

// TestInsert_MaxDepthZero keeps everything in the root but stays correct.
func TestInsert_MaxDepthZero(t *testing.T) {
	tr, err := quadtree.New[quadtree.Rect](quadtree.Rect{W: 32, H: 32},
		quadtree.WithCapacity(1), quadtree.WithMaxDepth(0))
	require.NoError(t, err)
	for i := 0; i < 5; i++ {
		tr.Insert(quadtree.Rect{X: i * 6, Y: 0, W: 3, H: 3})
	}
	assert.Equal(t, 1, tr.NodeCount())
	assert.Len(t, tr.Query(quadtree.Rect{X: 0, Y: 0, W: 32, H: 1}), 5)
}

// TestQueryOverlaps filters an explicit candidate list.
func TestQueryOverlaps(t *testing.T) {
	tr, err := quadtree.New[actor](quadtree.Rect{W: 20, H: 20})
	require.NoError(t, err)

	cands := []actor{
		{"a", quadtree.Rect{X: 0, Y: 0, W: 5, H: 5}},
		{"b", quadtree.Rect{X: 5, Y: 0, W: 5, H: 5}},
		{"c", quadtree.Rect{X: 2, Y: 2, W: 5, H: 5}},
	}
	got := tr.QueryOverlaps(quadtree.Rect{X: 4, Y: 4, W: 1, H: 1}, cands)
	require.Len(t, got, 2)
	assert.Equal(t, "a", got[0].name)
	assert.Equal(t, "c", got[1].name)
	assert.Empty(t, tr.QueryOverlaps(quadtree.Rect{X: 4, Y: 4, W: 1, H: 1}, nil))
}

// TestQuery_MatchesBruteForce compares the tree against a linear scan on random input.
func TestQuery_MatchesBruteForce(t *testing.T) {
	r := rand.New(rand.NewSource(3))
	bounds := quadtree.Rect{W: 200, H: 150}
	tr, err := quadtree.New[quadtree.Rect](bounds, quadtree.WithCapacity(4), quadtree.WithMaxDepth(6))
	require.NoError(t, err)

	var all []quadtree.Rect
	for i := 0; i < 400; i++ {
		// Some values deliberately poke outside the bounds.
		rc := quadtree.Rect{X: r.Intn(220) - 10, Y: r.Intn(170) - 10, W: 1 + r.Intn(12), H: 1 + r.Intn(12)}
		all = append(all, rc)
		tr.Insert(rc)
	}

	for i := 0; i < 200; i++ {
		q := quadtree.Rect{X: r.Intn(220) - 10, Y: r.Intn(170) - 10, W: 1 + r.Intn(30), H: 1 + r.Intn(30)}
		var want []quadtree.Rect
		for _, rc := range all {
			if rc.Intersects(q) {
				want = append(want, rc)
			}
		}
		got := tr.Query(q)
		if len(want) == 0 {
			assert.Empty(t, got, "query %+v", q)
		} else {
			assert.Equal(t, want, got, "query %+v", q)
		}
		assert.Equal(t, len(want) > 0, tr.Collides(q), "collides %+v", q)
		assert.Equal(t, len(want), len(tr.QueryOverlaps(q, all)), "overlaps %+v", q)
	}
}
