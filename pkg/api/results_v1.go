// pkg/api/results_v1.go
package api

// BlockV1 is the stable schema for one rate block. Coordinates are original
// alignment positions. Keep fields, names, and types stable; add new fields
// only with ",omitempty".
type BlockV1 struct {
	Start int `json:"start"`
	End   int `json:"end"`
	B1    int `json:"b1"`
}

// BarV1 is the stable schema for one surviving bar of the final barcode.
// Generators renders the death-cycle vertex pairs as "u-v" terms joined
// with ";". Start/End are the bar's interval in alignment coordinates.
type BarV1 struct {
	Dim        int     `json:"dim"`
	Birth      float64 `json:"birth"`
	Death      float64 `json:"death"`
	Generators string  `json:"generators,omitempty"`
	Start      int     `json:"start"`
	End        int     `json:"end"`
}

// ResultV1 is the stable schema for a whole run.
type ResultV1 struct {
	Labels          []string  `json:"labels"`
	Sites           []int     `json:"sites"`
	Blocks          []BlockV1 `json:"blocks"`
	Bars            []BarV1   `json:"bars,omitempty"`
	Breakpoints     []int     `json:"breakpoints,omitempty"`
	NoRecombination bool      `json:"no_recombination"`
	Windows         int       `json:"windows"`
	UniqueClouds    int       `json:"unique_clouds"`
	FailedWindows   int       `json:"failed_windows,omitempty"`
}
