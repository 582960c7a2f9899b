package cli

import (
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/require"
)

// Regenerate with:
//
//	go test ./internal/cli -run TestGolden -update
func TestGoldenTable(t *testing.T) {
	out, _, err := executeRoot(t, "table")
	require.NoError(t, err)

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, "table", []byte(out))
}

func TestGoldenTags(t *testing.T) {
	out, _, err := executeRoot(t, "tags")
	require.NoError(t, err)

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, "tags", []byte(out))
}
