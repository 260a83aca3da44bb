package nav

// Mode selects how the rendering runtime presents a route.
type Mode string

const (
	// ModeScreen presents the route as a full page replacing the one below it.
	ModeScreen Mode = "screen"
	// ModeModal presents the route as an overlay above the page below it.
	// Modal affects the transition style only; header visibility and title
	// still resolve through the normal merge.
	ModeModal Mode = "modal"
)

// PresentationOptions are the resolved presentation rules for one route.
type PresentationOptions struct {
	Mode        Mode
	HeaderShown bool
	Title       string
}

// HeaderOptions are the resolved header theme values for one route.
type HeaderOptions struct {
	Background string
	Tint       string
	TitleBold  bool
}

// Defaults is the fallback applied to every route unless overridden per entry.
// Theme values are passed in explicitly at configure time; there is no
// package-level theme state.
type Defaults struct {
	Presentation PresentationOptions
	Header       HeaderOptions
}

// Overrides carries per-route deviations from the configured defaults.
// Zero-valued fields inherit; HeaderShown uses a pointer because false is a
// meaningful override.
type Overrides struct {
	Mode        Mode
	HeaderShown *bool
	Title       string
	Header      *HeaderOverrides
}

// HeaderOverrides carries per-route header theme deviations.
type HeaderOverrides struct {
	Background string
	Tint       string
	TitleBold  *bool
}

// Bool returns a pointer for use in Overrides literals.
func Bool(v bool) *bool { return &v }

func (o Overrides) resolve(d Defaults) (PresentationOptions, HeaderOptions) {
	p := d.Presentation
	if o.Mode != "" {
		p.Mode = o.Mode
	}
	if o.HeaderShown != nil {
		p.HeaderShown = *o.HeaderShown
	}
	if o.Title != "" {
		p.Title = o.Title
	}
	h := d.Header
	if o.Header != nil {
		if o.Header.Background != "" {
			h.Background = o.Header.Background
		}
		if o.Header.Tint != "" {
			h.Tint = o.Header.Tint
		}
		if o.Header.TitleBold != nil {
			h.TitleBold = *o.Header.TitleBold
		}
	}
	return p, h
}
