package site

import (
	"encoding/json"

	"tokokue.com/admin/internal/modules/catalog"
)

// Settings is the site text and branding. It is always written whole.
type Settings struct {
	Title        string `json:"title"`
	Tagline      string `json:"tagline"`
	Logo         string `json:"logo"` // data-URL
	HeroHeadline string `json:"heroHeadline"`
	HeroSub      string `json:"heroSub"`
	ContactPhone string `json:"contactPhone"`
	ContactEmail string `json:"contactEmail"`
	About        string `json:"about"`
}

// Payload is what gets pushed to the remote endpoint and read back from it.
type Payload struct {
	Site     SiteBlock         `json:"site"`
	Hero     HeroBlock         `json:"hero"`
	Contact  ContactBlock      `json:"contact"`
	About    string            `json:"about"`
	Slides   []catalog.Slide   `json:"slides"`
	Products []catalog.Product `json:"products"`
}

type SiteBlock struct {
	Title   string `json:"title"`
	Tagline string `json:"tagline"`
	Logo    string `json:"logo"`
}

type HeroBlock struct {
	Headline string `json:"headline"`
	Sub      string `json:"sub"`
}

type ContactBlock struct {
	Phone string `json:"phone"`
	Email string `json:"email"`
}

func NewPayload(s Settings, slides []catalog.Slide, products []catalog.Product) Payload {
	if slides == nil {
		slides = []catalog.Slide{}
	}
	if products == nil {
		products = []catalog.Product{}
	}
	return Payload{
		Site:     SiteBlock{Title: s.Title, Tagline: s.Tagline, Logo: s.Logo},
		Hero:     HeroBlock{Headline: s.HeroHeadline, Sub: s.HeroSub},
		Contact:  ContactBlock{Phone: s.ContactPhone, Email: s.ContactEmail},
		About:    s.About,
		Slides:   slides,
		Products: products,
	}
}

// MarshalJSON writes slides as bare data-URL strings, the shape the
// storefront's data.json has always had. Slide ids stay in the local store.
func (p Payload) MarshalJSON() ([]byte, error) {
	type plain Payload
	var srcs []string
	if p.Slides != nil {
		srcs = make([]string, 0, len(p.Slides))
		for _, s := range p.Slides {
			srcs = append(srcs, s.Src)
		}
	}
	return json.Marshal(struct {
		plain
		Slides []string `json:"slides"`
	}{plain: plain(p), Slides: srcs})
}

func (p Payload) Settings() Settings {
	return Settings{
		Title:        p.Site.Title,
		Tagline:      p.Site.Tagline,
		Logo:         p.Site.Logo,
		HeroHeadline: p.Hero.Headline,
		HeroSub:      p.Hero.Sub,
		ContactPhone: p.Contact.Phone,
		ContactEmail: p.Contact.Email,
		About:        p.About,
	}
}

// Source tells where Bootstrap found its data.
type Source string

const (
	SourceRemote Source = "remote"
	SourceMirror Source = "mirror"
	SourceNone   Source = "none"
)

type SaveResult struct {
	Remote  bool
	Message string
}

const (
	MsgSavedRemote = "Saved to server."
	MsgSavedLocal  = "Server unreachable, changes saved locally."
)
