package flash

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"tokokue.com/admin/pkg/view"
)

func TestRoundTrip(t *testing.T) {
	c := NewCodec([]byte("k"), "flash", false)
	v, err := c.Encode(view.Flash{Kind: view.FlashSuccess, Message: "Saved to server."})
	require.NoError(t, err)

	f, err := c.Decode(v)
	require.NoError(t, err)
	require.Equal(t, &view.Flash{Kind: view.FlashSuccess, Message: "Saved to server."}, f)
}

func TestDecodeRejectsTampering(t *testing.T) {
	c := NewCodec([]byte("k"), "flash", false)
	v, err := c.Encode(view.Flash{Kind: view.FlashInfo, Message: "hi"})
	require.NoError(t, err)

	payload := strings.Split(v, ".")[0]
	_, err = c.Decode(payload + ".AAAA")
	require.ErrorIs(t, err, ErrInvalid)

	_, err = NewCodec([]byte("other"), "flash", false).Decode(v)
	require.ErrorIs(t, err, ErrInvalid)

	empty, err := c.Encode(view.Flash{Kind: view.FlashInfo, Message: "  "})
	require.NoError(t, err)
	_, err = c.Decode(empty)
	require.ErrorIs(t, err, ErrInvalid)

	badKind, err := c.Encode(view.Flash{Kind: "shout", Message: "x"})
	require.NoError(t, err)
	_, err = c.Decode(badKind)
	require.ErrorIs(t, err, ErrInvalid)
}
