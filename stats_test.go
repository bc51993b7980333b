package scriptview_test

import (
	"testing"

	"github.com/fwojciec/scriptview"
	"github.com/stretchr/testify/assert"
)

func TestCollectStats(t *testing.T) {
	t.Parallel()

	t.Run("counts each line as exactly one kind", func(t *testing.T) {
		t.Parallel()

		script := "#!/bin/bash\n\n# comment\necho hi\n"

		stats := scriptview.CollectStats(script)

		assert.Equal(t, 4, stats.TotalLines)
		assert.Equal(t, 2, stats.CommentLines) // shebang counts as a comment line
		assert.Equal(t, 1, stats.BlankLines)
		assert.Equal(t, 1, stats.CodeLines)
		assert.Equal(t, len(script), stats.TotalChars)
	})

	t.Run("line kinds always sum to the total", func(t *testing.T) {
		t.Parallel()

		scripts := []string{
			"",
			"\n",
			"#!/bin/sh\necho hi\n",
			"   \n\t\n# x\ncode\n",
			"no trailing newline",
		}

		for _, script := range scripts {
			stats := scriptview.CollectStats(script)
			sum := stats.CodeLines + stats.CommentLines + stats.BlankLines
			assert.Equal(t, stats.TotalLines, sum, "script: %q", script)
		}
	})

	t.Run("whitespace-only lines are blank", func(t *testing.T) {
		t.Parallel()

		stats := scriptview.CollectStats("   \n\t\n")

		assert.Equal(t, 2, stats.BlankLines)
		assert.Equal(t, 0, stats.CodeLines)
	})

	t.Run("empty text has no lines", func(t *testing.T) {
		t.Parallel()

		stats := scriptview.CollectStats("")

		assert.Zero(t, stats.TotalLines)
		assert.Zero(t, stats.TotalChars)
	})
}
