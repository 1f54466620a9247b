package catalog

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"tokokue.com/admin/internal/shared/apperr"
	"tokokue.com/admin/internal/storage"
)

func newTestRepo(t *testing.T) (*Repo, *storage.Memory) {
	t.Helper()
	store := storage.NewMemory()
	r := NewRepo(store)
	n := 0
	r.newID = func() string {
		n++
		return fmt.Sprintf("id-%d", n)
	}
	return r, store
}

func slideSrcs(t *testing.T, r *Repo) []string {
	t.Helper()
	list, err := r.Slides(context.Background())
	require.NoError(t, err)
	out := make([]string, 0, len(list))
	for _, s := range list {
		out = append(out, s.Src)
	}
	return out
}

func seedSlides(t *testing.T, r *Repo, srcs ...string) {
	t.Helper()
	for _, s := range srcs {
		_, err := r.AddSlide(context.Background(), s)
		require.NoError(t, err)
	}
}

func TestAddProductRequiresNameAndPrice(t *testing.T) {
	ctx := context.Background()
	r, store := newTestRepo(t)

	cases := []ProductInput{
		{Name: "", Price: "Rp 10.000"},
		{Name: "Bolu", Price: ""},
		{Name: "   ", Price: "  "},
	}
	for _, in := range cases {
		_, err := r.AddProduct(ctx, in)
		require.True(t, apperr.IsKind(err, apperr.Invalid))
		require.Equal(t, "Fill in the product name and price.", apperr.PublicMessage(err))
	}

	_, err := store.Get(ctx, storage.KeyProducts)
	require.ErrorIs(t, err, storage.ErrNotFound, "rejected adds must not write")
}

func TestAddProductImageOptional(t *testing.T) {
	ctx := context.Background()
	r, _ := newTestRepo(t)

	p, err := r.AddProduct(ctx, ProductInput{Name: " Bolu Pandan ", Price: " Rp 35.000 "})
	require.NoError(t, err)
	require.Equal(t, Product{ID: "id-1", Name: "Bolu Pandan", Price: "Rp 35.000"}, p)

	list, err := r.Products(ctx)
	require.NoError(t, err)
	require.Equal(t, []Product{p}, list)
}

func TestRemoveUndoesAdd(t *testing.T) {
	ctx := context.Background()
	r, _ := newTestRepo(t)

	for _, n := range []string{"Lapis", "Brownies"} {
		_, err := r.AddProduct(ctx, ProductInput{Name: n, Price: "Rp 1"})
		require.NoError(t, err)
	}
	before, err := r.Products(ctx)
	require.NoError(t, err)

	added, err := r.AddProduct(ctx, ProductInput{Name: "Nastar", Price: "Rp 2", Img: "data:image/png;base64,AA=="})
	require.NoError(t, err)

	removed, err := r.RemoveProduct(ctx, len(before))
	require.NoError(t, err)
	require.Equal(t, added, removed)

	after, err := r.Products(ctx)
	require.NoError(t, err)
	require.Equal(t, before, after)
}

func TestUpdateProductMergesFields(t *testing.T) {
	ctx := context.Background()
	r, _ := newTestRepo(t)

	_, err := r.AddProduct(ctx, ProductInput{Name: "Lapis", Price: "Rp 1", Img: "data:image/png;base64,AA=="})
	require.NoError(t, err)

	p, err := r.UpdateProduct(ctx, 0, ProductPatch{Price: "Rp 2"})
	require.NoError(t, err)
	require.Equal(t, Product{ID: "id-1", Name: "Lapis", Price: "Rp 2", Img: "data:image/png;base64,AA=="}, p)

	p, err = r.UpdateProduct(ctx, 0, ProductPatch{Name: "Lapis Legit", Img: "data:image/gif;base64,BB=="})
	require.NoError(t, err)
	require.Equal(t, "Lapis Legit", p.Name)
	require.Equal(t, "Rp 2", p.Price)
	require.Equal(t, "data:image/gif;base64,BB==", p.Img)
}

func TestOutOfRangeIndexIsNotFound(t *testing.T) {
	ctx := context.Background()
	r, _ := newTestRepo(t)
	seedSlides(t, r, "A")

	_, err := r.UpdateProduct(ctx, 0, ProductPatch{Name: "x"})
	require.True(t, apperr.IsKind(err, apperr.NotFound))
	_, err = r.RemoveProduct(ctx, -1)
	require.True(t, apperr.IsKind(err, apperr.NotFound))
	_, err = r.RemoveSlide(ctx, 1)
	require.True(t, apperr.IsKind(err, apperr.NotFound))
	require.True(t, apperr.IsKind(r.MoveSlideUp(ctx, 5), apperr.NotFound))

	require.Equal(t, []string{"A"}, slideSrcs(t, r))
}

func TestMoveSlideBoundariesAreNoOps(t *testing.T) {
	ctx := context.Background()
	r, _ := newTestRepo(t)
	seedSlides(t, r, "A", "B", "C")

	require.NoError(t, r.MoveSlideUp(ctx, 0))
	require.Equal(t, []string{"A", "B", "C"}, slideSrcs(t, r))

	require.NoError(t, r.MoveSlideDown(ctx, 2))
	require.Equal(t, []string{"A", "B", "C"}, slideSrcs(t, r))
}

func TestMoveSlideScenario(t *testing.T) {
	ctx := context.Background()
	r, _ := newTestRepo(t)
	seedSlides(t, r, "A", "B", "C")

	require.NoError(t, r.MoveSlideDown(ctx, 0))
	require.Equal(t, []string{"B", "A", "C"}, slideSrcs(t, r))

	require.NoError(t, r.MoveSlideUp(ctx, 2))
	require.Equal(t, []string{"B", "C", "A"}, slideSrcs(t, r))
}

func TestMoveUpThenDownRestoresOrder(t *testing.T) {
	ctx := context.Background()
	for n := 2; n <= 6; n++ {
		for i := 1; i < n; i++ {
			r, _ := newTestRepo(t)
			srcs := make([]string, n)
			for k := range srcs {
				srcs[k] = fmt.Sprintf("s%d", k)
			}
			seedSlides(t, r, srcs...)

			require.NoError(t, r.MoveSlideUp(ctx, i))
			require.NoError(t, r.MoveSlideDown(ctx, i-1))
			require.Equal(t, srcs, slideSrcs(t, r), "n=%d i=%d", n, i)
		}
	}
}

func TestCorruptStoredCollectionsReadEmpty(t *testing.T) {
	ctx := context.Background()
	r, store := newTestRepo(t)
	require.NoError(t, store.Set(ctx, storage.KeyProducts, []byte(`{not json`)))
	require.NoError(t, store.Set(ctx, storage.KeySlides, []byte(`[1,2`)))

	ps, err := r.Products(ctx)
	require.NoError(t, err)
	require.Empty(t, ps)

	ss, err := r.Slides(ctx)
	require.NoError(t, err)
	require.Empty(t, ss)
}

func TestLegacyRecordsGetStableIDs(t *testing.T) {
	ctx := context.Background()
	r, store := newTestRepo(t)
	require.NoError(t, store.Set(ctx, storage.KeySlides, []byte(`["data:image/png;base64,AA==","data:image/png;base64,BB=="]`)))
	require.NoError(t, store.Set(ctx, storage.KeyProducts, []byte(`[{"name":"Bolu","price":"Rp 1","img":""}]`)))

	first, err := r.Slides(ctx)
	require.NoError(t, err)
	require.Equal(t, []Slide{
		{ID: "id-1", Src: "data:image/png;base64,AA=="},
		{ID: "id-2", Src: "data:image/png;base64,BB=="},
	}, first)

	again, err := r.Slides(ctx)
	require.NoError(t, err)
	require.Equal(t, first, again)

	i, err := r.SlideIndex(ctx, "id-2")
	require.NoError(t, err)
	require.Equal(t, 1, i)

	i, err = r.ProductIndex(ctx, "id-3")
	require.NoError(t, err)
	require.Equal(t, 0, i)

	_, err = r.ProductIndex(ctx, "missing")
	require.True(t, apperr.IsKind(err, apperr.NotFound))
}

func TestReplaceCollections(t *testing.T) {
	ctx := context.Background()
	r, _ := newTestRepo(t)
	seedSlides(t, r, "old")

	require.NoError(t, r.ReplaceSlides(ctx, []Slide{{Src: "new1"}, {ID: "keep", Src: "new2"}}))
	list, err := r.Slides(ctx)
	require.NoError(t, err)
	require.Equal(t, []Slide{{ID: "id-2", Src: "new1"}, {ID: "keep", Src: "new2"}}, list)

	require.NoError(t, r.ReplaceProducts(ctx, nil))
	ps, err := r.Products(ctx)
	require.NoError(t, err)
	require.Empty(t, ps)
}

func TestAddSlideRequiresImage(t *testing.T) {
	_, err := (&Repo{store: storage.NewMemory()}).AddSlide(context.Background(), " ")
	require.True(t, apperr.IsKind(err, apperr.Invalid))
	require.Equal(t, "Choose a slide image first.", apperr.PublicMessage(err))
}

func TestIDOperationsFollowTheRecord(t *testing.T) {
	ctx := context.Background()
	r, _ := newTestRepo(t)
	for _, n := range []string{"A", "B", "C"} {
		_, err := r.AddProduct(ctx, ProductInput{Name: n, Price: "1"})
		require.NoError(t, err)
	}

	// Another request removes A after this one looked at the list: B is
	// still addressed by its id, not by its old position.
	_, err := r.RemoveProductByID(ctx, "id-1")
	require.NoError(t, err)
	removed, err := r.RemoveProductByID(ctx, "id-2")
	require.NoError(t, err)
	require.Equal(t, "B", removed.Name)

	ps, err := r.Products(ctx)
	require.NoError(t, err)
	require.Equal(t, []Product{{ID: "id-3", Name: "C", Price: "1"}}, ps)

	updated, err := r.UpdateProductByID(ctx, "id-3", ProductPatch{Price: "2"})
	require.NoError(t, err)
	require.Equal(t, "2", updated.Price)

	_, err = r.UpdateProductByID(ctx, "id-1", ProductPatch{Name: "gone"})
	require.True(t, apperr.IsKind(err, apperr.NotFound))
	_, err = r.RemoveProductByID(ctx, "id-1")
	require.True(t, apperr.IsKind(err, apperr.NotFound))

	seedSlides(t, r, "a", "b", "c") // id-4, id-5, id-6
	require.NoError(t, r.MoveSlideDownByID(ctx, "id-4"))
	require.Equal(t, []string{"b", "a", "c"}, slideSrcs(t, r))
	require.NoError(t, r.MoveSlideUpByID(ctx, "id-6"))
	require.Equal(t, []string{"b", "c", "a"}, slideSrcs(t, r))
	require.NoError(t, r.MoveSlideUpByID(ctx, "id-5"))
	require.Equal(t, []string{"b", "c", "a"}, slideSrcs(t, r))

	s, err := r.RemoveSlideByID(ctx, "id-6")
	require.NoError(t, err)
	require.Equal(t, "c", s.Src)
	require.Equal(t, []string{"b", "a"}, slideSrcs(t, r))

	require.True(t, apperr.IsKind(r.MoveSlideDownByID(ctx, "id-6"), apperr.NotFound))
	_, err = r.RemoveSlideByID(ctx, "id-6")
	require.True(t, apperr.IsKind(err, apperr.NotFound))
}

func TestNullEntriesAreDropped(t *testing.T) {
	ctx := context.Background()
	r, store := newTestRepo(t)
	require.NoError(t, store.Set(ctx, storage.KeySlides, []byte(`[null,"data:image/png;base64,AA==",{"id":"x","src":""}]`)))
	require.NoError(t, store.Set(ctx, storage.KeyProducts, []byte(`[null,{"name":"Bolu","price":"Rp 1"}]`)))

	ss, err := r.Slides(ctx)
	require.NoError(t, err)
	require.Equal(t, []Slide{{ID: "id-1", Src: "data:image/png;base64,AA=="}}, ss)

	raw, err := store.Get(ctx, storage.KeySlides)
	require.NoError(t, err)
	require.JSONEq(t, `[{"id":"id-1","src":"data:image/png;base64,AA=="}]`, string(raw))

	ps, err := r.Products(ctx)
	require.NoError(t, err)
	require.Equal(t, []Product{{ID: "id-2", Name: "Bolu", Price: "Rp 1"}}, ps)
}
