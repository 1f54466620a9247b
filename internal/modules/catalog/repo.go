package catalog

import (
	"context"
	"strings"
	"sync"

	"github.com/google/uuid"

	"tokokue.com/admin/internal/shared/apperr"
	"tokokue.com/admin/internal/storage"
)

// Repo is the products and slides catalog. Every mutation reads the stored
// list, changes it and writes the whole list back.
type Repo struct {
	store storage.Store
	newID func() string

	mu sync.Mutex
}

func NewRepo(store storage.Store) *Repo {
	return &Repo{store: store, newID: uuid.NewString}
}

var (
	errProductNotFound = apperr.NotFoundErr("Product not found.")
	errSlideNotFound   = apperr.NotFoundErr("Slide not found.")
)

// ---- products ----

func (r *Repo) Products(ctx context.Context) ([]Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return products.load(ctx, r)
}

func (r *Repo) ProductIndex(ctx context.Context, id string) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	list, err := products.load(ctx, r)
	if err != nil {
		return -1, err
	}
	i := products.indexOf(list, id)
	if i < 0 {
		return -1, errProductNotFound
	}
	return i, nil
}

// AddProduct appends a product. Name and price are required.
func (r *Repo) AddProduct(ctx context.Context, in ProductInput) (Product, error) {
	name := strings.TrimSpace(in.Name)
	price := strings.TrimSpace(in.Price)

	fields := map[string]string{}
	if name == "" {
		fields["name"] = "Name is required."
	}
	if price == "" {
		fields["price"] = "Price is required."
	}
	if len(fields) > 0 {
		return Product{}, apperr.InvalidErr("Fill in the product name and price.", fields)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	list, err := products.load(ctx, r)
	if err != nil {
		return Product{}, err
	}
	p := Product{ID: r.newID(), Name: name, Price: price, Img: in.Img}
	list = append(list, p)
	if err := products.save(ctx, r, list); err != nil {
		return Product{}, err
	}
	return p, nil
}

func (r *Repo) UpdateProduct(ctx context.Context, index int, patch ProductPatch) (Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	list, err := products.load(ctx, r)
	if err != nil {
		return Product{}, err
	}
	return r.updateProductAt(ctx, list, index, patch)
}

// UpdateProductByID is UpdateProduct for the product with id. The lookup and
// the write happen under one lock, so a concurrent edit cannot shift the target.
func (r *Repo) UpdateProductByID(ctx context.Context, id string, patch ProductPatch) (Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	list, err := products.load(ctx, r)
	if err != nil {
		return Product{}, err
	}
	return r.updateProductAt(ctx, list, products.indexOf(list, id), patch)
}

func (r *Repo) updateProductAt(ctx context.Context, list []Product, index int, patch ProductPatch) (Product, error) {
	if !inRange(len(list), index) {
		return Product{}, errProductNotFound
	}

	p := &list[index]
	if v := strings.TrimSpace(patch.Name); v != "" {
		p.Name = v
	}
	if v := strings.TrimSpace(patch.Price); v != "" {
		p.Price = v
	}
	if patch.Img != "" {
		p.Img = patch.Img
	}
	if err := products.save(ctx, r, list); err != nil {
		return Product{}, err
	}
	return *p, nil
}

func (r *Repo) RemoveProduct(ctx context.Context, index int) (Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	list, err := products.load(ctx, r)
	if err != nil {
		return Product{}, err
	}
	return r.removeProductAt(ctx, list, index)
}

func (r *Repo) RemoveProductByID(ctx context.Context, id string) (Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	list, err := products.load(ctx, r)
	if err != nil {
		return Product{}, err
	}
	return r.removeProductAt(ctx, list, products.indexOf(list, id))
}

func (r *Repo) removeProductAt(ctx context.Context, list []Product, index int) (Product, error) {
	if !inRange(len(list), index) {
		return Product{}, errProductNotFound
	}
	removed := list[index]
	list = removeAt(list, index)
	if err := products.save(ctx, r, list); err != nil {
		return Product{}, err
	}
	return removed, nil
}

// ReplaceProducts overwrites the whole collection.
func (r *Repo) ReplaceProducts(ctx context.Context, list []Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return products.save(ctx, r, products.withIDs(r, list))
}

// ---- slides ----

func (r *Repo) Slides(ctx context.Context) ([]Slide, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return slides.load(ctx, r)
}

func (r *Repo) SlideIndex(ctx context.Context, id string) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	list, err := slides.load(ctx, r)
	if err != nil {
		return -1, err
	}
	i := slides.indexOf(list, id)
	if i < 0 {
		return -1, errSlideNotFound
	}
	return i, nil
}

func (r *Repo) AddSlide(ctx context.Context, src string) (Slide, error) {
	if strings.TrimSpace(src) == "" {
		return Slide{}, apperr.InvalidErr("Choose a slide image first.", map[string]string{"image": "Image is required."})
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	list, err := slides.load(ctx, r)
	if err != nil {
		return Slide{}, err
	}
	s := Slide{ID: r.newID(), Src: src}
	list = append(list, s)
	if err := slides.save(ctx, r, list); err != nil {
		return Slide{}, err
	}
	return s, nil
}

func (r *Repo) RemoveSlide(ctx context.Context, index int) (Slide, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	list, err := slides.load(ctx, r)
	if err != nil {
		return Slide{}, err
	}
	return r.removeSlideAt(ctx, list, index)
}

func (r *Repo) RemoveSlideByID(ctx context.Context, id string) (Slide, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	list, err := slides.load(ctx, r)
	if err != nil {
		return Slide{}, err
	}
	return r.removeSlideAt(ctx, list, slides.indexOf(list, id))
}

func (r *Repo) removeSlideAt(ctx context.Context, list []Slide, index int) (Slide, error) {
	if !inRange(len(list), index) {
		return Slide{}, errSlideNotFound
	}
	removed := list[index]
	list = removeAt(list, index)
	if err := slides.save(ctx, r, list); err != nil {
		return Slide{}, err
	}
	return removed, nil
}

// MoveSlideUp swaps the slide with the one before it. No-op for the first slide.
func (r *Repo) MoveSlideUp(ctx context.Context, index int) error {
	return r.moveSlide(ctx, func([]Slide) int { return index }, -1)
}

// MoveSlideDown swaps the slide with the one after it. No-op for the last slide.
func (r *Repo) MoveSlideDown(ctx context.Context, index int) error {
	return r.moveSlide(ctx, func([]Slide) int { return index }, +1)
}

func (r *Repo) MoveSlideUpByID(ctx context.Context, id string) error {
	return r.moveSlide(ctx, func(list []Slide) int { return slides.indexOf(list, id) }, -1)
}

func (r *Repo) MoveSlideDownByID(ctx context.Context, id string) error {
	return r.moveSlide(ctx, func(list []Slide) int { return slides.indexOf(list, id) }, +1)
}

// moveSlide resolves the slide on the freshly loaded list and swaps it with
// its neighbour at offset by, all under r.mu.
func (r *Repo) moveSlide(ctx context.Context, at func([]Slide) int, by int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	list, err := slides.load(ctx, r)
	if err != nil {
		return err
	}
	i := at(list)
	j := i + by
	if !inRange(len(list), i) {
		return errSlideNotFound
	}
	if !inRange(len(list), j) {
		return nil
	}
	list[i], list[j] = list[j], list[i]
	return slides.save(ctx, r, list)
}

func (r *Repo) ReplaceSlides(ctx context.Context, list []Slide) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return slides.save(ctx, r, slides.withIDs(r, list))
}
