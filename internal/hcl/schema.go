package hcl

// fileRoot decodes every top-level block and attribute of a config file.
type fileRoot struct {
	Sources *sourcesBlock `hcl:"sources,block"`
	Chart   *chartBlock   `hcl:"chart,block"`
	Log     *logBlock     `hcl:"log,block"`

	Formats []string `hcl:"formats,optional"`
	Begin   *int     `hcl:"begin,optional"`
	Jobs    *int     `hcl:"jobs,optional"`
}

type sourcesBlock struct {
	FusionDir    *string  `hcl:"fusion_dir,optional"`
	ReferenceDir *string  `hcl:"reference_dir,optional"`
	OutputDir    *string  `hcl:"output_dir,optional"`
	Exclude      []string `hcl:"exclude,optional"`
}

type chartBlock struct {
	Width       *float64 `hcl:"width,optional"`
	Height      *float64 `hcl:"height,optional"`
	DPI         *float64 `hcl:"dpi,optional"`
	YMin        *float64 `hcl:"y_min,optional"`
	YMax        *float64 `hcl:"y_max,optional"`
	XPadding    *float64 `hcl:"x_padding,optional"`
	LineWidth   *float64 `hcl:"line_width,optional"`
	Colors      []string `hcl:"colors,optional"`
	Dashes      []string `hcl:"dashes,optional"`
	TopLabel    *string  `hcl:"top_label,optional"`
	BottomLabel *string  `hcl:"bottom_label,optional"`
	XLabel      *string  `hcl:"x_label,optional"`
}

type logBlock struct {
	Level  *string `hcl:"level,optional"`
	Format *string `hcl:"format,optional"`
}
