package view

import "html/template"

type PreviewProduct struct {
	Anchor string
	Name   string
	Price  string
	Img    string
}

type PreviewPage struct {
	Title        string
	Tagline      string
	Logo         string
	HeroHeadline string
	HeroSub      string
	ContactPhone string
	ContactEmail string
	About        template.HTML
	Slides       []string
	Products     []PreviewProduct
}
