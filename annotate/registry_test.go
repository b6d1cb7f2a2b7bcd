package annotate

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tsawler/wordfields/uia/uiatest"
)

func TestTypeRegistryCachesIDs(t *testing.T) {
	registrar := uiatest.NewRegistrar()
	reg := NewTypeRegistry(registrar)

	first := reg.ID(TypeDraftComment)
	second := reg.ID(TypeDraftComment)

	require.NotEqual(t, UnsupportedTypeID, first)
	assert.Equal(t, first, second)
	assert.Equal(t, 1, registrar.Calls)
}

func TestTypeRegistryDistinctGUIDs(t *testing.T) {
	reg := NewTypeRegistry(uiatest.NewRegistrar())

	draft := reg.ID(TypeDraftComment)
	resolved := reg.ID(TypeResolvedComment)

	assert.NotEqual(t, draft, resolved)
}

func TestTypeRegistryWithoutCapability(t *testing.T) {
	reg := NewTypeRegistry(nil)
	assert.Equal(t, UnsupportedTypeID, reg.ID(TypeBookmark))
}

func TestTypeRegistryRegistrationFailure(t *testing.T) {
	registrar := uiatest.NewRegistrar()
	registrar.Err = errors.New("rpc unavailable")
	reg := NewTypeRegistry(registrar)

	assert.Equal(t, UnsupportedTypeID, reg.ID(TypeDraftComment))
	// The failure is cached; the platform is not retried per lookup.
	assert.Equal(t, UnsupportedTypeID, reg.ID(TypeDraftComment))
	assert.Equal(t, 1, registrar.Calls)
}

func TestGlobalRegistry(t *testing.T) {
	first := Registry()
	require.NotNil(t, first)
	assert.Same(t, first, Registry())

	// Installing a registrar after first use has no effect.
	SetRegistrar(uiatest.NewRegistrar())
	assert.Equal(t, UnsupportedTypeID, Registry().ID(TypeBookmark))
}
