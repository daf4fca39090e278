package config

// Settings is the complete, format-agnostic configuration of a render run.
type Settings struct {
	Sources Sources
	Chart   Chart

	// Formats lists the output encodings, e.g. "png" and "pdf".
	Formats []string
	// Begin is the first 0-based time step to plot.
	Begin int
	// Jobs is the number of attributes rendered at the same time.
	Jobs int

	LogLevel  string
	LogFormat string
}

// Sources describes where result files are read from and where charts go.
type Sources struct {
	FusionDir    string
	ReferenceDir string
	OutputDir    string
	// Exclude lists fusion directory entries that are never attributes.
	Exclude []string
}

// Chart holds the figure layout.
type Chart struct {
	WidthInches  float64
	HeightInches float64
	DPI          float64

	YMin     float64
	YMax     float64
	XPadding float64

	LineWidth float64
	Colors    []string
	Dashes    []string

	TopLabel    string
	BottomLabel string
	XLabel      string
}

// Default returns the settings that reproduce the classic tempo-fusion layout
// when run from inside the fusion results directory.
func Default() Settings {
	return Settings{
		Sources: Sources{
			FusionDir:    ".",
			ReferenceDir: "../tempo-fusion-temoin",
			OutputDir:    "images",
			Exclude:      []string{"images", "printAll.py"},
		},
		Chart: Chart{
			WidthInches:  14,
			HeightInches: 7,
			DPI:          100,
			YMin:         -0.1,
			YMax:         1.1,
			XPadding:     5,
			LineWidth:    2,
			Colors:       []string{"b", "g", "r", "c", "m", "y", "k"},
			Dashes:       []string{"-", "--", ":", "-."},
			TopLabel:     "Mass (no tempo)",
			BottomLabel:  "Mass (tempo)",
			XLabel:       "Time",
		},
		Formats:   []string{"png", "pdf"},
		Begin:     0,
		Jobs:      1,
		LogLevel:  "info",
		LogFormat: "text",
	}
}
