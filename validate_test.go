package scriptview_test

import (
	"errors"
	"testing"

	"github.com/fwojciec/scriptview"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// reason extracts the ValidationReason from a Validate error.
func reason(t *testing.T, err error) scriptview.ValidationReason {
	t.Helper()
	var verr *scriptview.ValidationError
	require.ErrorAs(t, err, &verr)
	return verr.Reason
}

func TestValidate_Quotes(t *testing.T) {
	t.Parallel()

	t.Run("accepts balanced quotes", func(t *testing.T) {
		t.Parallel()

		assert.NoError(t, scriptview.Validate("echo 'hello world'", scriptview.Unknown))
		assert.NoError(t, scriptview.Validate(`echo "hello world"`, scriptview.Unknown))
	})

	t.Run("rejects an unterminated quote", func(t *testing.T) {
		t.Parallel()

		err := scriptview.Validate("echo 'hello world", scriptview.Unknown)

		assert.Equal(t, scriptview.ReasonUnbalancedQuotes, reason(t, err))
	})

	t.Run("ignores the other quote kind inside a region", func(t *testing.T) {
		t.Parallel()

		assert.NoError(t, scriptview.Validate(`echo "it's fine"`, scriptview.Unknown))
	})

	t.Run("honors backslash escapes", func(t *testing.T) {
		t.Parallel()

		assert.NoError(t, scriptview.Validate(`echo "a \" b"`, scriptview.Unknown))
		err := scriptview.Validate(`echo "a \"`, scriptview.Unknown)
		assert.Equal(t, scriptview.ReasonUnbalancedQuotes, reason(t, err))
	})
}

func TestValidate_Brackets(t *testing.T) {
	t.Parallel()

	t.Run("accepts balanced brackets", func(t *testing.T) {
		t.Parallel()

		assert.NoError(t, scriptview.Validate("if [ test ]; then echo 'ok'; fi", scriptview.Unknown))
		assert.NoError(t, scriptview.Validate("array=(one two three)", scriptview.Unknown))
	})

	t.Run("rejects an unclosed bracket", func(t *testing.T) {
		t.Parallel()

		err := scriptview.Validate("if [ test; then echo 'ok'; fi", scriptview.Unknown)
		assert.Equal(t, scriptview.ReasonUnbalancedBrackets, reason(t, err))

		err = scriptview.Validate("array=(one two three", scriptview.Unknown)
		assert.Equal(t, scriptview.ReasonUnbalancedBrackets, reason(t, err))
	})

	t.Run("fails fast on a closer without an opener", func(t *testing.T) {
		t.Parallel()

		err := scriptview.Validate("] [", scriptview.Unknown)

		assert.Equal(t, scriptview.ReasonUnbalancedBrackets, reason(t, err))
	})

	t.Run("ignores brackets inside quoted regions", func(t *testing.T) {
		t.Parallel()

		assert.NoError(t, scriptview.Validate(`echo "[" '('`, scriptview.Unknown))
	})
}

func TestValidate_Shebang(t *testing.T) {
	t.Parallel()

	t.Run("accepts a script without a shebang", func(t *testing.T) {
		t.Parallel()

		assert.NoError(t, scriptview.Validate("echo hi\n", scriptview.Unknown))
	})

	t.Run("rejects a shebang with no interpreter", func(t *testing.T) {
		t.Parallel()

		err := scriptview.Validate("#!\necho hi\n", scriptview.Unknown)
		assert.Equal(t, scriptview.ReasonMalformedShebang, reason(t, err))

		err = scriptview.Validate("#!   \n", scriptview.Unknown)
		assert.Equal(t, scriptview.ReasonMalformedShebang, reason(t, err))
	})
}

func TestValidate_Structure(t *testing.T) {
	t.Parallel()

	t.Run("shell openers must match closers", func(t *testing.T) {
		t.Parallel()

		assert.NoError(t, scriptview.Validate("if [ 1 ]; then\necho ok\nfi\n", scriptview.Shell))
		assert.NoError(t, scriptview.Validate("for f in a b; do\necho $f\ndone\n", scriptview.Shell))

		err := scriptview.Validate("if [ 1 ]; then\necho ok\n", scriptview.Shell)
		assert.Equal(t, scriptview.ReasonStructuralMismatch, reason(t, err))

		err = scriptview.Validate("for f in a b; do\necho $f\n", scriptview.Shell)
		assert.Equal(t, scriptview.ReasonStructuralMismatch, reason(t, err))
	})

	t.Run("shell closers must be alone on their line", func(t *testing.T) {
		t.Parallel()

		// "fi" embedded in another line does not count as a closer.
		err := scriptview.Validate("if [ 1 ]; then echo ok; fi\n", scriptview.Shell)

		assert.Equal(t, scriptview.ReasonStructuralMismatch, reason(t, err))
	})

	t.Run("python always passes the structural check", func(t *testing.T) {
		t.Parallel()

		assert.NoError(t, scriptview.Validate("def f():\n    return 1\n", scriptview.Python))
	})

	t.Run("perl braces must balance even inside strings", func(t *testing.T) {
		t.Parallel()

		assert.NoError(t, scriptview.Validate("sub hi {\n    print \"hi\";\n}\n", scriptview.Perl))

		// The bracket check skips quoted braces, but the perl tally does not.
		err := scriptview.Validate("print \"{\";\n", scriptview.Perl)
		assert.Equal(t, scriptview.ReasonStructuralMismatch, reason(t, err))
	})

	t.Run("ruby block openers must match end lines", func(t *testing.T) {
		t.Parallel()

		assert.NoError(t, scriptview.Validate("def foo\nputs 'x'\nend\n", scriptview.Ruby))
		assert.NoError(t, scriptview.Validate("begin\nputs 'x'\nend\n", scriptview.Ruby))

		err := scriptview.Validate("def foo\nputs 'x'\n", scriptview.Ruby)
		assert.Equal(t, scriptview.ReasonStructuralMismatch, reason(t, err))
	})

	t.Run("unknown scripts pass the structural check", func(t *testing.T) {
		t.Parallel()

		assert.NoError(t, scriptview.Validate("fi\n", scriptview.Unknown))
	})
}

func TestValidationError_Error(t *testing.T) {
	t.Parallel()

	err := scriptview.Validate("echo 'oops", scriptview.Shell)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "unbalanced_quotes")
}

func TestValid(t *testing.T) {
	t.Parallel()

	assert.True(t, scriptview.Valid("#!/bin/bash\necho 'hello world'\n"))
	assert.False(t, scriptview.Valid("#!/bin/bash\necho 'unclosed quote\n"))
}

func TestValidate_ErrorsAreErrors(t *testing.T) {
	t.Parallel()

	err := scriptview.Validate("echo 'oops", scriptview.Shell)

	var verr *scriptview.ValidationError
	assert.True(t, errors.As(err, &verr))
}
