package graphfile_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pthm/prereq"
	"github.com/pthm/prereq/internal/graphfile"
)

const fixture = `reflexive: false
requirements:
  Kyle: [Jack]
  Jack: [John]
  Joe: [John]
`

func TestParse(t *testing.T) {
	store, err := graphfile.Parse([]byte(fixture))
	require.NoError(t, err)

	assert.False(t, store.Reflexive())
	assert.Equal(t, 3, store.Len())
	assert.True(t, store.Exists("Kyle", "Jack"))
	assert.True(t, store.Requires("Kyle", "John"))
}

func TestParseReflexive(t *testing.T) {
	doc := `reflexive: true
requirements:
  Harry: [Joe]
  Joe: [Harry]
`
	store, err := graphfile.Parse([]byte(doc))
	require.NoError(t, err)

	assert.True(t, store.Reflexive())
	assert.True(t, store.Exists("Harry", "Joe"))
	assert.True(t, store.Exists("Joe", "Harry"))
}

func TestParseRejectsMutualWithoutReflexive(t *testing.T) {
	doc := `requirements:
  Harry: [Joe]
  Joe: [Harry]
`
	_, err := graphfile.Parse([]byte(doc))
	require.Error(t, err)
	assert.True(t, prereq.IsOppositeRequirementErr(err))
}

func TestParseRejectsSelfRequirement(t *testing.T) {
	doc := `requirements:
  Harry: [Harry]
`
	_, err := graphfile.Parse([]byte(doc))
	require.Error(t, err)
	assert.True(t, prereq.IsSelfRequirementErr(err))
}

func TestParseRejectsUnknownField(t *testing.T) {
	doc := `requirments:
  Harry: [Joe]
`
	_, err := graphfile.Parse([]byte(doc))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing graph document")
}

func TestParseEmptyDocument(t *testing.T) {
	store, err := graphfile.Parse([]byte("requirements: {}\n"))
	require.NoError(t, err)
	assert.True(t, store.Empty())
}

func TestLoadAndSaveRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "requirements.yaml")
	require.NoError(t, os.WriteFile(path, []byte(fixture), 0o644))

	store, err := graphfile.Load(path)
	require.NoError(t, err)

	out := filepath.Join(dir, "out.yaml")
	require.NoError(t, graphfile.Save(out, store))

	reloaded, err := graphfile.Load(out)
	require.NoError(t, err)
	assert.Equal(t, store.Get(), reloaded.Get())
	assert.Equal(t, store.Reflexive(), reloaded.Reflexive())
}

func TestLoadMissingFile(t *testing.T) {
	_, err := graphfile.Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reading graph document")
}

func TestObjects(t *testing.T) {
	store, err := graphfile.Parse([]byte(fixture))
	require.NoError(t, err)

	assert.Equal(t, []string{"Jack", "Joe", "John", "Kyle"}, graphfile.Objects(store))
}
