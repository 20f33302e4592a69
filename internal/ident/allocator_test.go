package ident

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAlphabeticSuffix_BijectiveBase26(t *testing.T) {
	cases := []struct {
		index int
		want  string
	}{
		{0, "A"},
		{1, "B"},
		{25, "Z"},
		{26, "AA"},
		{27, "AB"},
		{51, "AZ"},
		{52, "BA"},
		{701, "ZZ"},
		{702, "AAA"},
	}
	for _, tc := range cases {
		require.Equal(t, tc.want, AlphabeticSuffix(tc.index), "index %d", tc.index)
	}
}

func TestAlphabeticSuffix_NegativeIndex_Panics(t *testing.T) {
	require.Panics(t, func() { AlphabeticSuffix(-1) })
}

func TestNamespace_Slug_SuffixesOnCollision(t *testing.T) {
	ns := NewNamespace()
	require.Equal(t, "alpha", ns.Slug("alpha"))
	require.Equal(t, "alpha-a", ns.Slug("alpha"))
	require.Equal(t, "alpha-b", ns.Slug("alpha"))
	require.Equal(t, "beta", ns.Slug("beta"))
	require.Equal(t, "alpha-c", ns.Slug("alpha"))
}

func TestNamespace_ID_SuffixesOnCollision(t *testing.T) {
	ns := NewNamespace()
	require.Equal(t, "Alpha", ns.ID("Alpha"))
	require.Equal(t, "AlphaA", ns.ID("Alpha"))
	require.Equal(t, "AlphaB", ns.ID("Alpha"))
}

func TestNamespace_Slug_SkipsExplicitlyIssuedCandidate(t *testing.T) {
	ns := NewNamespace()
	require.Equal(t, "alpha-a", ns.Slug("alpha-a"))
	require.Equal(t, "alpha", ns.Slug("alpha"))
	// The natural candidate alpha-a is taken, so the allocator moves on.
	require.Equal(t, "alpha-b", ns.Slug("alpha"))
}

func TestNamespace_EmptyBase_UsesPlaceholder(t *testing.T) {
	ns := NewNamespace()
	require.Equal(t, "document", ns.Slug(""))
	require.Equal(t, "document-a", ns.Slug(""))
	require.Equal(t, "Document", ns.ID(""))
	require.Equal(t, "DocumentA", ns.ID(""))
}

func TestNamespace_SharesIssuedNamesAcrossStyles(t *testing.T) {
	ns := NewNamespace()
	require.Equal(t, "alpha", ns.Slug("alpha"))
	// Same namespace: the plain name is taken regardless of allocation style.
	require.Equal(t, "alphaA", ns.ID("alpha"))
}

func TestNamespace_SeparateNamespaces_DoNotInterfere(t *testing.T) {
	slugs := NewNamespace()
	ids := NewNamespace()
	require.Equal(t, "alpha", slugs.Slug("alpha"))
	require.Equal(t, "alpha", ids.ID("alpha"))
}
