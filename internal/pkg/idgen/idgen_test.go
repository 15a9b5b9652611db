package idgen_test

import (
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/rpg-compendium/internal/pkg/idgen"
)

func TestUUIDGenerator(t *testing.T) {
	gen := idgen.NewUUID(idgen.PrefixCampaign)

	id := gen.Generate()
	require.True(t, strings.HasPrefix(id, "camp_"))

	_, err := uuid.Parse(strings.TrimPrefix(id, "camp_"))
	assert.NoError(t, err)
	assert.NotEqual(t, id, gen.Generate())
}

func TestUUIDGenerator_NoPrefix(t *testing.T) {
	_, err := uuid.Parse(idgen.NewUUID("").Generate())
	assert.NoError(t, err)
}

func TestSequentialGenerator(t *testing.T) {
	gen := idgen.NewSequential(idgen.PrefixCharacter)
	assert.Equal(t, "char_1", gen.Generate())
	assert.Equal(t, "char_2", gen.Generate())

	assert.Equal(t, "1", idgen.NewSequential("").Generate())
}
