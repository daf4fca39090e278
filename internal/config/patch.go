package config

// Patch is a partial Settings. Nil fields leave the target untouched.
type Patch struct {
	FusionDir    *string
	ReferenceDir *string
	OutputDir    *string
	Exclude      []string

	WidthInches  *float64
	HeightInches *float64
	DPI          *float64
	YMin         *float64
	YMax         *float64
	XPadding     *float64
	LineWidth    *float64
	Colors       []string
	Dashes       []string
	TopLabel     *string
	BottomLabel  *string
	XLabel       *string

	Formats   []string
	Begin     *int
	Jobs      *int
	LogLevel  *string
	LogFormat *string
}

// Apply copies every field set in p onto s. A nil slice is unset; an empty
// non-nil slice clears the target list.
func (p *Patch) Apply(s *Settings) {
	if p == nil {
		return
	}

	setString(&s.Sources.FusionDir, p.FusionDir)
	setString(&s.Sources.ReferenceDir, p.ReferenceDir)
	setString(&s.Sources.OutputDir, p.OutputDir)
	setStrings(&s.Sources.Exclude, p.Exclude)

	setFloat(&s.Chart.WidthInches, p.WidthInches)
	setFloat(&s.Chart.HeightInches, p.HeightInches)
	setFloat(&s.Chart.DPI, p.DPI)
	setFloat(&s.Chart.YMin, p.YMin)
	setFloat(&s.Chart.YMax, p.YMax)
	setFloat(&s.Chart.XPadding, p.XPadding)
	setFloat(&s.Chart.LineWidth, p.LineWidth)
	setStrings(&s.Chart.Colors, p.Colors)
	setStrings(&s.Chart.Dashes, p.Dashes)
	setString(&s.Chart.TopLabel, p.TopLabel)
	setString(&s.Chart.BottomLabel, p.BottomLabel)
	setString(&s.Chart.XLabel, p.XLabel)

	setStrings(&s.Formats, p.Formats)
	if p.Begin != nil {
		s.Begin = *p.Begin
	}
	if p.Jobs != nil {
		s.Jobs = *p.Jobs
	}
	setString(&s.LogLevel, p.LogLevel)
	setString(&s.LogFormat, p.LogFormat)
}

func setString(dst *string, v *string) {
	if v != nil {
		*dst = *v
	}
}

func setFloat(dst *float64, v *float64) {
	if v != nil {
		*dst = *v
	}
}

func setStrings(dst *[]string, v []string) {
	if v != nil {
		*dst = append([]string{}, v...)
	}
}
