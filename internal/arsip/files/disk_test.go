package files

import (
	"context"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDiskStoreSaveOpenRemove(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	s, err := NewDiskStore(t.TempDir())
	require.NoError(t, err)

	ref, err := s.Save(ctx, "scan.pdf", strings.NewReader("letter body"))
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(ref, RefPrefix))
	require.True(t, strings.HasSuffix(ref, ".pdf"))

	rc, err := s.Open(ctx, ref)
	require.NoError(t, err)
	data, err := io.ReadAll(rc)
	require.NoError(t, err)
	require.NoError(t, rc.Close())
	require.Equal(t, "letter body", string(data))

	require.NoError(t, s.Remove(ctx, ref))
	_, err = s.Open(ctx, ref)
	require.ErrorIs(t, err, ErrNotFound)
}

func TestDiskStoreRemoveMissingIsSuccess(t *testing.T) {
	t.Parallel()

	s, err := NewDiskStore(t.TempDir())
	require.NoError(t, err)
	require.NoError(t, s.Remove(context.Background(), RefPrefix+"file-nope.pdf"))
}

func TestDiskStoreRefsAreUnique(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	s, err := NewDiskStore(t.TempDir())
	require.NoError(t, err)

	a, err := s.Save(ctx, "scan.pdf", strings.NewReader("a"))
	require.NoError(t, err)
	b, err := s.Save(ctx, "scan.pdf", strings.NewReader("b"))
	require.NoError(t, err)
	require.NotEqual(t, a, b)
}

func TestDiskStoreRejectsTraversal(t *testing.T) {
	t.Parallel()

	s, err := NewDiskStore(t.TempDir())
	require.NoError(t, err)

	// Base-name mapping keeps lookups inside the store directory.
	_, err = s.Open(context.Background(), RefPrefix+"../../etc/passwd")
	require.ErrorIs(t, err, ErrNotFound)
}

func TestSanitizeExt(t *testing.T) {
	t.Parallel()

	require.Equal(t, ".pdf", sanitizeExt("Surat Masuk.PDF"))
	require.Equal(t, "", sanitizeExt("no-extension"))
	require.Equal(t, "", sanitizeExt("weird."+strings.Repeat("x", 20)))
}
