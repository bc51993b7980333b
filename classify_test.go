package scriptview_test

import (
	"testing"

	"github.com/fwojciec/scriptview"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassify(t *testing.T) {
	t.Parallel()

	t.Run("classifies by shebang interpreter", func(t *testing.T) {
		t.Parallel()

		cases := []struct {
			script string
			want   scriptview.ScriptType
		}{
			{"#!/bin/bash\necho 'test'\n", scriptview.Shell},
			{"#!/bin/sh\necho hi\n", scriptview.Shell},
			{"#!/usr/bin/zsh\n", scriptview.Shell},
			{"#!/usr/bin/python\n", scriptview.Python},
			{"#!/usr/bin/perl\nprint \"hi\";\n", scriptview.Perl},
			{"#!/usr/bin/ruby\nputs 'hi'\n", scriptview.Ruby},
		}

		for _, tc := range cases {
			assert.Equal(t, tc.want, scriptview.Classify(tc.script), "script: %q", tc.script)
		}
	})

	t.Run("shebang takes priority over content heuristics", func(t *testing.T) {
		t.Parallel()

		// Content would read as shell, but the env shebang names python.
		got := scriptview.Classify("#!/usr/bin/env python3\nprint('x')\n")

		assert.Equal(t, scriptview.Python, got)
	})

	t.Run("classifies by content when shebang is absent", func(t *testing.T) {
		t.Parallel()

		cases := []struct {
			name   string
			script string
			want   scriptview.ScriptType
		}{
			{"python import", "import os\nos.remove('x')\n", scriptview.Python},
			{"python print call", "print('hello')\n", scriptview.Python},
			{"perl pragma", "use strict;\nmy $x = 1;\n", scriptview.Perl},
			{"ruby require", "require 'json'\nputs 'hi'\n", scriptview.Ruby},
			{"shell test", "if [ -f x ]; then\n:\nfi\n", scriptview.Shell},
			{"shell echo", "echo hello\n", scriptview.Shell},
		}

		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				t.Parallel()
				assert.Equal(t, tc.want, scriptview.Classify(tc.script))
			})
		}
	})

	t.Run("python markers win over ruby markers", func(t *testing.T) {
		t.Parallel()

		// "def " appears in both rule sets; the python rule is checked first.
		got := scriptview.Classify("def foo\nend\n")

		assert.Equal(t, scriptview.Python, got)
	})

	t.Run("defaults to shell for free-form text", func(t *testing.T) {
		t.Parallel()

		got := scriptview.Classify("ls -la\n")

		assert.Equal(t, scriptview.Shell, got)
	})

	t.Run("classification is deterministic", func(t *testing.T) {
		t.Parallel()

		script := "#!/usr/bin/env ruby\nputs 'hi'\n"

		first := scriptview.Classify(script)
		second := scriptview.Classify(script)

		assert.Equal(t, first, second)
	})
}

func TestClassifyShebang(t *testing.T) {
	t.Parallel()

	t.Run("matches interpreter substrings", func(t *testing.T) {
		t.Parallel()

		typ, ok := scriptview.ClassifyShebang("#!/usr/bin/env python3\n")

		require.True(t, ok)
		assert.Equal(t, scriptview.Python, typ)
	})

	t.Run("returns false without a shebang", func(t *testing.T) {
		t.Parallel()

		_, ok := scriptview.ClassifyShebang("echo hi\n")

		assert.False(t, ok)
	})

	t.Run("returns false for unrecognized interpreters", func(t *testing.T) {
		t.Parallel()

		typ, ok := scriptview.ClassifyShebang("#!/usr/bin/awk -f\n")

		assert.False(t, ok)
		assert.Equal(t, scriptview.Unknown, typ)
	})
}
