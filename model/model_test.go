// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vk/calcgraph/nodeid"
)

func TestTable_Names(t *testing.T) {
	table := Table{
		nodeid.New("z"):               NewDecl(nil),
		nodeid.Qualified("a", "x"):    NewDecl(nil),
		nodeid.New("a"):               NewDecl(nil),
		nodeid.Qualified("a.v2", "x"): NewDecl(nil),
	}
	assert.Equal(t, []nodeid.Name{
		nodeid.New("a"),
		nodeid.New("z"),
		nodeid.Qualified("a", "x"),
		nodeid.Qualified("a.v2", "x"),
	}, table.Names())
}

func TestTable_Clone(t *testing.T) {
	orig := Table{
		nodeid.New("c"): NewDecl(nil, nodeid.New("a"), nodeid.New("b")),
	}
	clone := orig.Clone()
	require.Equal(t, orig.Names(), clone.Names())

	// Mutating the clone's dependency slice must not reach the original.
	clone[nodeid.New("c")].Deps[0] = nodeid.New("tampered")
	assert.Equal(t, nodeid.New("a"), orig[nodeid.New("c")].Deps[0])
}

func TestMerge(t *testing.T) {
	t.Run("key-wise union", func(t *testing.T) {
		left := Table{nodeid.New("a"): NewDecl(nil)}
		right := Table{nodeid.New("b"): NewDecl(nil, nodeid.New("a"))}
		merged := Merge(left, right)
		assert.Len(t, merged, 2)
	})

	t.Run("last writer wins on duplicate keys", func(t *testing.T) {
		key := nodeid.New("a")
		left := Table{key: NewDecl(nil, nodeid.New("x"))}
		right := Table{key: NewDecl(nil, nodeid.New("y"))}
		merged := Merge(left, right)
		assert.Equal(t, []nodeid.Name{nodeid.New("y")}, merged[key].Deps)
	})

	t.Run("inputs are not mutated", func(t *testing.T) {
		left := Table{nodeid.New("a"): NewDecl(nil)}
		merged := Merge(left)
		merged[nodeid.New("b")] = NewDecl(nil)
		assert.Len(t, left, 1)
	})
}
