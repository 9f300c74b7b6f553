package clipboard_test

import (
	"testing"

	atotto "github.com/atotto/clipboard"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen11/oktaorginfo/internal/platform/clipboard"
)

// Not parallel: toggles the package-level flag in atotto/clipboard.
func TestSystem_WriteAll_Unsupported(t *testing.T) {
	prev := atotto.Unsupported
	atotto.Unsupported = true
	t.Cleanup(func() { atotto.Unsupported = prev })

	err := clipboard.System{}.WriteAll("00o1abcd")
	require.ErrorIs(t, err, clipboard.ErrUnsupported)
	assert.EqualError(t, err, "clipboard: no clipboard utility available")
}
