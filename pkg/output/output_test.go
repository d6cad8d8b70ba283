package output

import (
	"bytes"
	"errors"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestWriter() (*Writer, *bytes.Buffer, *[]string) {
	var stdout bytes.Buffer
	var copied []string
	w := &Writer{
		Stdout: &stdout,
		Fs:     afero.NewMemMapFs(),
		Clipboard: func(s string) error {
			copied = append(copied, s)
			return nil
		},
		Logger: zap.NewNop(),
	}
	return w, &stdout, &copied
}

func TestDeliverStdout(t *testing.T) {
	w, stdout, copied := newTestWriter()

	require.NoError(t, w.Deliver("File: a", "-", false))
	assert.Equal(t, "File: a\n", stdout.String())
	assert.Empty(t, *copied)
}

func TestDeliverFile(t *testing.T) {
	w, stdout, _ := newTestWriter()

	require.NoError(t, w.Deliver("File: a", "out/prompts/p.txt", false))
	assert.Empty(t, stdout.String())

	b, err := afero.ReadFile(w.Fs, "out/prompts/p.txt")
	require.NoError(t, err)
	assert.Equal(t, "File: a", string(b))
}

func TestDeliverCopy(t *testing.T) {
	w, _, copied := newTestWriter()

	require.NoError(t, w.Deliver("File: a", "", true))
	assert.Equal(t, []string{"File: a"}, *copied)
}

func TestDeliverCopyFailure(t *testing.T) {
	w, stdout, _ := newTestWriter()
	w.Clipboard = func(string) error { return errors.New("no clipboard utility") }

	err := w.Deliver("File: a", "-", true)
	assert.ErrorIs(t, err, ErrClipboard)
	assert.Equal(t, "File: a\n", stdout.String())
}

func TestDeliverFileFailure(t *testing.T) {
	w, _, _ := newTestWriter()
	w.Fs = afero.NewReadOnlyFs(afero.NewMemMapFs())

	assert.Error(t, w.Deliver("File: a", "out/p.txt", false))
}
