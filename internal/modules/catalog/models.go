package catalog

import (
	"bytes"
	"encoding/json"
)

// Product is a catalog entry. Price is display text ("Rp 25.000"), not a number.
type Product struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Price string `json:"price"`
	Img   string `json:"img"` // data-URL or empty
}

type ProductInput struct {
	Name  string
	Price string
	Img   string
}

// ProductPatch merges into an existing product; empty fields keep the current value.
type ProductPatch struct {
	Name  string
	Price string
	Img   string
}

// Slide is one slideshow image. Position in the list is the display order.
type Slide struct {
	ID  string `json:"id"`
	Src string `json:"src"` // data-URL
}

// UnmarshalJSON also accepts the bare data-URL string slides were stored as
// before they carried ids.
// A null entry decodes to the zero Slide.
func (s *Slide) UnmarshalJSON(b []byte) error {
	if string(bytes.TrimSpace(b)) == "null" {
		*s = Slide{}
		return nil
	}
	var src string
	if err := json.Unmarshal(b, &src); err == nil {
		*s = Slide{Src: src}
		return nil
	}

	type plain Slide
	var p plain
	if err := json.Unmarshal(b, &p); err != nil {
		return err
	}
	*s = Slide(p)
	return nil
}
