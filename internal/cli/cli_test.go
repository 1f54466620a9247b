package cli

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"tokokue.com/admin/internal/modules/catalog"
	"tokokue.com/admin/internal/storage"
)

func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := NewRootCmd()
	cmd.SetArgs(args)
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetIn(strings.NewReader(stdin))
	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func seed(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	repo := catalog.NewRepo(storage.NewLocal(dir))
	ctx := context.Background()

	_, err := repo.AddProduct(ctx, catalog.ProductInput{Name: "Bolu", Price: "Rp 30.000", Img: "data:image/png;base64,AAAA"})
	require.NoError(t, err)
	_, err = repo.AddProduct(ctx, catalog.ProductInput{Name: "Nastar", Price: "Rp 80.000"})
	require.NoError(t, err)
	_, err = repo.AddSlide(ctx, "data:image/jpeg;base64,AAAAAAAA")
	require.NoError(t, err)
	return dir
}

func TestProductsList(t *testing.T) {
	dir := seed(t)

	out, err := run(t, "", "products", "list", "--store-dir", dir)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 3)
	require.Contains(t, lines[1], "Bolu")
	require.Contains(t, lines[1], "image/png 4B")
	require.Contains(t, lines[2], "Nastar")
	require.True(t, strings.HasSuffix(lines[2], "-"))
}

func TestSlidesList(t *testing.T) {
	dir := seed(t)

	out, err := run(t, "", "slides", "list", "--store-dir", dir)
	require.NoError(t, err)
	require.Contains(t, out, "image/jpeg 8B")
}

func TestSyncPush(t *testing.T) {
	dir := seed(t)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	t.Cleanup(srv.Close)

	out, err := run(t, "", "sync", "push", "--store-dir", dir, "--save-url", srv.URL)
	require.NoError(t, err)
	require.Equal(t, "Saved to server.\n", out)

	out, err = run(t, "", "sync", "push", "--store-dir", dir, "--save-url", "")
	require.ErrorIs(t, err, errSavedLocally)
	require.Contains(t, out, "saved locally")

	_, err = storage.NewLocal(dir).Get(context.Background(), storage.KeySiteData)
	require.NoError(t, err)
}

func TestSyncPullFallsBackToMirror(t *testing.T) {
	dir := seed(t)
	_, err := run(t, "", "sync", "push", "--store-dir", dir)
	require.Error(t, err)

	srv := httptest.NewServer(http.NotFoundHandler())
	t.Cleanup(srv.Close)

	out, err := run(t, "", "sync", "pull", "--store-dir", dir, "--data-url", srv.URL+"/data.json")
	require.NoError(t, err)
	require.Equal(t, "loaded from mirror\n", out)
}

func TestPasswordHash(t *testing.T) {
	out, err := run(t, "rahasia\n", "password", "hash")
	require.NoError(t, err)
	require.NoError(t, bcrypt.CompareHashAndPassword([]byte(strings.TrimSpace(out)), []byte("rahasia")))

	_, err = run(t, "", "password", "hash")
	require.Error(t, err)
}

func TestDescribeImage(t *testing.T) {
	require.Equal(t, "-", describeImage(""))
	require.Equal(t, "?", describeImage("https://example.com/a.png"))
	require.Equal(t, "image/gif 3B", describeImage("data:image/gif;base64,abc"))
}
