package cache

// Keyer generates cache keys.
type Keyer interface {
	// LayoutKey returns the key for the layout of a word list with the given
	// hash. Extraction settings are already reflected in the words.
	LayoutKey(wordsHash string, opts LayoutKeyOpts) string

	// ArtifactKey returns the key for a rendering of a layout document.
	ArtifactKey(layoutHash string, opts ArtifactKeyOpts) string
}

// LayoutKeyOpts holds the settings that change where tags are placed.
type LayoutKeyOpts struct {
	Layouter  string   `json:"layouter"`
	RayCount  int      `json:"rays"`
	Radius    string   `json:"radius"`
	CenterX   int      `json:"cx"`
	CenterY   int      `json:"cy"`
	Sizing    string   `json:"sizing"`
	MinSize   int      `json:"min_size"`
	Scale     float64  `json:"scale"`
	CharWidth float64  `json:"char_width"`
	MaxWords  int      `json:"max_words"`
	Extra     []string `json:"extra,omitempty"`
}

// ArtifactKeyOpts holds the settings that change how a layout looks.
type ArtifactKeyOpts struct {
	Format         string  `json:"format"`
	Background     string  `json:"background"`
	MainColor      string  `json:"main_color"`
	SecondaryColor string  `json:"secondary_color"`
	Gradient       bool    `json:"gradient"`
	Font           string  `json:"font"`
	FontStyle      string  `json:"font_style"`
	Padding        int     `json:"padding"`
	Outlines       bool    `json:"outlines"`
	PNGScale       float64 `json:"png_scale"`
}

// DefaultKeyer produces "layout:<sha256>" and "artifact:<sha256>" keys.
type DefaultKeyer struct{}

// NewDefaultKeyer creates the default keyer.
func NewDefaultKeyer() Keyer { return DefaultKeyer{} }

func (DefaultKeyer) LayoutKey(wordsHash string, opts LayoutKeyOpts) string {
	return hashKey("layout", wordsHash, opts)
}

func (DefaultKeyer) ArtifactKey(layoutHash string, opts ArtifactKeyOpts) string {
	return hashKey("artifact", layoutHash, opts)
}
