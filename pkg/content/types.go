package content

// Site is the complete content set rendered by the site.
type Site struct {
	Brand        Brand               `json:"brand" yaml:"brand"`
	Contact      Contact             `json:"contact" yaml:"contact"`
	Hero         Hero                `json:"hero" yaml:"hero"`
	About        About               `json:"about" yaml:"about"`
	Booking      Booking             `json:"booking" yaml:"booking"`
	Pages        map[string]PageCopy `json:"pages" yaml:"pages"`
	Services     []Service           `json:"services" yaml:"services"`
	Testimonials []Testimonial       `json:"testimonials" yaml:"testimonials"`
	Tiers        []Tier              `json:"tiers" yaml:"tiers"`
}

// RichText is a fragment that may carry inline markup. It is sanitised
// before rendering.
type RichText string

type Brand struct {
	Name     string `json:"name" yaml:"name"`
	Owner    string `json:"owner" yaml:"owner"`
	Logo     string `json:"logo" yaml:"logo"`
	LogoAlt  string `json:"logoAlt" yaml:"logoAlt"`
	ChatIcon string `json:"chatIcon" yaml:"chatIcon"`
}

type Contact struct {
	// Phone is the chat destination in international format, digits only.
	Phone        string `json:"phone" yaml:"phone"`
	DisplayPhone string `json:"displayPhone" yaml:"displayPhone"`
	Email        string `json:"email" yaml:"email"`
	Location     string `json:"location" yaml:"location"`
	Disclaimer   string `json:"disclaimer" yaml:"disclaimer"`
	FormNote     string `json:"formNote" yaml:"formNote"`
}

type Hero struct {
	Eyebrow  string   `json:"eyebrow" yaml:"eyebrow"`
	Headline string   `json:"headline" yaml:"headline"`
	Lead     string   `json:"lead" yaml:"lead"`
	Note     string   `json:"note" yaml:"note"`
	CTA      string   `json:"cta" yaml:"cta"`
	Offering Offering `json:"offering" yaml:"offering"`
}

type Offering struct {
	Label       string   `json:"label" yaml:"label"`
	Title       string   `json:"title" yaml:"title"`
	Text        string   `json:"text" yaml:"text"`
	Points      []string `json:"points" yaml:"points"`
	CalendarURL string   `json:"calendarUrl" yaml:"calendarUrl"`
}

type About struct {
	Preview         []RichText `json:"preview" yaml:"preview"`
	Essence         []string   `json:"essence" yaml:"essence"`
	Paragraphs      []RichText `json:"paragraphs" yaml:"paragraphs"`
	Philosophy      []string   `json:"philosophy" yaml:"philosophy"`
	PhilosophyLabel string     `json:"philosophyLabel" yaml:"philosophyLabel"`
	EssenceLabel    string     `json:"essenceLabel" yaml:"essenceLabel"`
}

type Booking struct {
	Steps          []string `json:"steps" yaml:"steps"`
	Note           string   `json:"note" yaml:"note"`
	ConfirmMessage string   `json:"confirmMessage" yaml:"confirmMessage"`
}

// PageCopy is the per-page heading, introduction and prefilled chat message.
type PageCopy struct {
	Title       string `json:"title" yaml:"title"`
	Intro       string `json:"intro" yaml:"intro"`
	ChatMessage string `json:"chatMessage" yaml:"chatMessage"`
}

type Service struct {
	Slug        string `json:"slug" yaml:"slug"`
	Title       string `json:"title" yaml:"title"`
	Icon        string `json:"icon" yaml:"icon"`
	IconAlt     string `json:"iconAlt" yaml:"iconAlt"`
	Summary     string `json:"summary" yaml:"summary"`
	Description string `json:"description" yaml:"description"`
}

type Testimonial struct {
	Initials string `json:"initials" yaml:"initials"`
	Name     string `json:"name" yaml:"name"`
	Location string `json:"location" yaml:"location"`
	Text     string `json:"text" yaml:"text"`
}

// Tier is a bookable session length.
type Tier struct {
	Minutes     int    `json:"minutes" yaml:"minutes"`
	IdealFor    string `json:"idealFor" yaml:"idealFor"`
	PriceINR    int64  `json:"priceInr" yaml:"priceInr"`
	CalendarURL string `json:"calendarUrl" yaml:"calendarUrl"`
}

// Page returns the copy for slug, or the zero value when missing.
func (s *Site) Page(slug string) PageCopy {
	if s == nil || s.Pages == nil {
		return PageCopy{}
	}
	return s.Pages[slug]
}
