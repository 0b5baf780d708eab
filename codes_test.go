package kursdoc_test

import (
	"testing"

	"github.com/hfal/kursdoc"
	"github.com/stretchr/testify/require"
)

func TestExtractCodes(t *testing.T) {
	t.Parallel()

	t.Run("finds course codes", func(t *testing.T) {
		t.Parallel()

		got := kursdoc.ExtractCodes("Vad handlar DVA117 om?")
		require.Equal(t, []string{"dva117"}, got.CourseCodes)
		require.Empty(t, got.ProgramCodes)
		require.Equal(t, 1, got.Count())
	})

	t.Run("finds program codes when no course code is present", func(t *testing.T) {
		t.Parallel()

		got := kursdoc.ExtractCodes("Berätta om programmet GKV02")
		require.Empty(t, got.CourseCodes)
		require.Equal(t, []string{"gkv02"}, got.ProgramCodes)
		require.Equal(t, 1, got.Count())
	})

	t.Run("course codes take precedence over program codes", func(t *testing.T) {
		t.Parallel()

		got := kursdoc.ExtractCodes("Ingår DVA117 i GKV02?")
		require.Equal(t, []string{"dva117"}, got.CourseCodes)
		require.Empty(t, got.ProgramCodes)
	})

	t.Run("finds multiple codes", func(t *testing.T) {
		t.Parallel()

		got := kursdoc.ExtractCodes("Jämför dva117 och mat101")
		require.Equal(t, []string{"dva117", "mat101"}, got.CourseCodes)
		require.Equal(t, 2, got.Count())
	})

	t.Run("ignores tokens that are not codes", func(t *testing.T) {
		t.Parallel()

		got := kursdoc.ExtractCodes("Vilka kurser ges under hösten 2024?")
		require.Empty(t, got.CourseCodes)
		require.Empty(t, got.ProgramCodes)
		require.Zero(t, got.Count())
	})
}
