package view

type SettingsForm struct {
	Title        string
	Tagline      string
	Logo         string
	HeroHeadline string
	HeroSub      string
	ContactPhone string
	ContactEmail string
	About        string
}

type AdminProductRow struct {
	Index int
	ID    string
	Name  string
	Price string
	Img   string
}

type AdminSlideRow struct {
	Index int
	ID    string
	Src   string
	First bool
	Last  bool
}

type AdminPage struct {
	Title    string
	Flash    *Flash
	Settings SettingsForm
	Products []AdminProductRow
	Slides   []AdminSlideRow
}

type LoginPage struct {
	Title    string
	Flash    *Flash
	Disabled bool   // no admin password configured
	Error    string // page-level message
	ReturnTo string
	Fields   map[string]string
}

type ErrorPage struct {
	Title     string
	Status    int
	Message   string
	RequestID string
}
