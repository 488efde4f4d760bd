package schema

// Palette holds the chart colours as hex strings (with or without a leading '#').
type Palette struct {
	Background string `json:"background"`
	Primary    string `json:"primary"`
	Secondary  string `json:"secondary"`
	Light      string `json:"light"`
	Border     string `json:"border"`
	Highlight  string `json:"highlight"` // Gaelic subjects and the no-record markers
}

// DefaultPalette returns the warm palette used for every chart unless overridden.
func DefaultPalette() Palette {
	return Palette{
		Background: "#F2EDD5",
		Primary:    "#3E4031",
		Secondary:  "#8C8B79",
		Light:      "#D9D5C1",
		Border:     "#BFBCAA",
		Highlight:  "#D9534F",
	}
}
