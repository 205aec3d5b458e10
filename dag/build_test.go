package dag

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vk/calcgraph/model"
	"github.com/vk/calcgraph/nodeid"
)

var (
	nameA = nodeid.New("a")
	nameB = nodeid.New("b")
	nameC = nodeid.New("c")
	nameD = nodeid.New("d")
	nameE = nodeid.New("e")
)

func opaque(args []any) (any, error) { return nil, nil }

// calcTable declares c = a*b, d = c+1, e = a+c+d with a and b left free.
func calcTable() model.Table {
	return model.Table{
		nameC: model.NewDecl(opaque, nameA, nameB),
		nameD: model.NewDecl(opaque, nameC),
		nameE: model.NewDecl(opaque, nameA, nameC, nameD),
	}
}

func TestCompile(t *testing.T) {
	ctx := context.Background()

	t.Run("builds both relation indices", func(t *testing.T) {
		g, err := Compile(ctx, calcTable())
		require.NoError(t, err)

		deps, err := g.Dependencies(nameC)
		require.NoError(t, err)
		assert.Equal(t, []nodeid.Name{nameA, nameB}, deps)

		deps, err = g.Dependencies(nameE)
		require.NoError(t, err)
		assert.Equal(t, []nodeid.Name{nameA, nameC, nameD}, deps)

		dependents, err := g.Dependents(nameC)
		require.NoError(t, err)
		assert.Equal(t, []nodeid.Name{nameD, nameE}, dependents)

		// Leaves referenced only as dependencies are part of the relation.
		deps, err = g.Dependencies(nameA)
		require.NoError(t, err)
		assert.Empty(t, deps)
	})

	t.Run("unknown name is an error", func(t *testing.T) {
		g, err := Compile(ctx, calcTable())
		require.NoError(t, err)

		_, err = g.Dependencies(nodeid.New("dne"))
		assert.ErrorContains(t, err, "node not found")
		_, err = g.Dependents(nodeid.New("dne"))
		assert.ErrorContains(t, err, "node not found")
	})

	t.Run("empty table compiles", func(t *testing.T) {
		g, err := Compile(ctx, model.Table{})
		require.NoError(t, err)
		assert.Empty(t, g.Names())
		assert.Empty(t, g.Order())
	})

	t.Run("does not mutate the table", func(t *testing.T) {
		table := calcTable()
		_, err := Compile(ctx, table)
		require.NoError(t, err)
		assert.Len(t, table, 3)
		assert.Equal(t, []nodeid.Name{nameA, nameB}, table[nameC].Deps)
	})
}

func TestCompile_Cycles(t *testing.T) {
	ctx := context.Background()

	t.Run("direct cycle is rejected", func(t *testing.T) {
		table := model.Table{
			nodeid.New("x"): model.NewDecl(opaque, nodeid.New("y")),
			nodeid.New("y"): model.NewDecl(opaque, nodeid.New("x")),
		}
		g, err := Compile(ctx, table)
		assert.Nil(t, g)
		var cyclic *CyclicError
		require.ErrorAs(t, err, &cyclic)
		assert.Contains(t, []nodeid.Name{nodeid.New("x"), nodeid.New("y")}, cyclic.Name)
	})

	t.Run("longer cycle is rejected", func(t *testing.T) {
		table := model.Table{
			nameA: model.NewDecl(opaque, nameD),
			nameB: model.NewDecl(opaque, nameA),
			nameC: model.NewDecl(opaque, nameB),
			nameD: model.NewDecl(opaque, nameC),
		}
		g, err := Compile(ctx, table)
		assert.Nil(t, g)
		var cyclic *CyclicError
		assert.ErrorAs(t, err, &cyclic)
	})

	t.Run("self-reference is rejected", func(t *testing.T) {
		table := model.Table{
			nameA: model.NewDecl(opaque, nameA),
		}
		g, err := Compile(ctx, table)
		assert.Nil(t, g)
		var cyclic *CyclicError
		require.ErrorAs(t, err, &cyclic)
		assert.Equal(t, nameA, cyclic.Name)
	})

	t.Run("acyclic table with transitive edges passes", func(t *testing.T) {
		table := model.Table{
			nameB: model.NewDecl(opaque, nameA),
			nameC: model.NewDecl(opaque, nameA, nameB),
			nameD: model.NewDecl(opaque, nameC),
		}
		_, err := Compile(ctx, table)
		assert.NoError(t, err)
	})
}

func TestCompile_Idempotence(t *testing.T) {
	ctx := context.Background()

	g1, err := Compile(ctx, calcTable())
	require.NoError(t, err)
	g2, err := Compile(ctx, calcTable())
	require.NoError(t, err)

	assert.Equal(t, g1.Names(), g2.Names())
	assert.Equal(t, g1.Order(), g2.Order())
	for _, name := range g1.Names() {
		d1, err := g1.Dependencies(name)
		require.NoError(t, err)
		d2, err := g2.Dependencies(name)
		require.NoError(t, err)
		assert.Equal(t, d1, d2)

		d1, err = g1.Dependents(name)
		require.NoError(t, err)
		d2, err = g2.Dependents(name)
		require.NoError(t, err)
		assert.Equal(t, d1, d2)
	}
}

func TestGraph_Order(t *testing.T) {
	ctx := context.Background()

	t.Run("dependencies precede dependents", func(t *testing.T) {
		g, err := Compile(ctx, calcTable())
		require.NoError(t, err)

		order := g.Order()
		position := make(map[nodeid.Name]int, len(order))
		for i, name := range order {
			position[name] = i
		}

		assert.Len(t, order, 5)
		for _, name := range g.Names() {
			deps, err := g.Dependencies(name)
			require.NoError(t, err)
			for _, dep := range deps {
				assert.Less(t, position[dep], position[name],
					"%s must precede %s", dep, name)
			}
		}
	})

	t.Run("independent names are ordered lexicographically", func(t *testing.T) {
		table := model.Table{
			nodeid.New("z"): model.NewDecl(opaque),
			nodeid.New("m"): model.NewDecl(opaque),
			nodeid.New("a"): model.NewDecl(opaque),
		}
		g, err := Compile(ctx, table)
		require.NoError(t, err)
		assert.Equal(t, []nodeid.Name{nodeid.New("a"), nodeid.New("m"), nodeid.New("z")}, g.Order())
	})

	t.Run("returned slice is a copy", func(t *testing.T) {
		g, err := Compile(ctx, calcTable())
		require.NoError(t, err)
		order := g.Order()
		order[0] = nodeid.New("tampered")
		assert.NotEqual(t, order[0], g.Order()[0])
	})
}
