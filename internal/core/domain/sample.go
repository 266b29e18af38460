package domain

// Location metadata keys read from a raw sample.
const (
	FieldLocation  = "Location"
	FieldState     = "State"
	FieldDistrict  = "District"
	FieldYear      = "Year"
	FieldLatitude  = "Latitude"
	FieldLongitude = "Longitude"
)

// UnknownLocation is substituted for absent location metadata.
const UnknownLocation = "Unknown"

// MissingValueSentinel denotes "no measurement taken", distinct from zero.
const MissingValueSentinel = "-"

// RawSample is a loosely typed sample record: field name to value.
// Values may be strings, any numeric kind, or nil.
type RawSample map[string]any

// CleanedSample maps element symbols to concentrations in canonical units.
// It never holds entries for absent or unparseable measurements.
type CleanedSample map[string]float64

// RecognizedField ties a raw measurement key to an element and its input unit.
type RecognizedField struct {
	// Key is the internal field name, e.g. "Fe (ppm)".
	Key string

	// Element is the rule table symbol, e.g. "Fe".
	Element string

	// Unit is the unit the raw value is reported in.
	Unit string

	// ExternalKey is the outward-facing name, e.g. "Fe_ppm".
	ExternalKey string
}

var recognizedFields = []RecognizedField{
	{Key: "Fe (ppm)", Element: "Fe", Unit: "ppm", ExternalKey: "Fe_ppm"},
	{Key: "As (ppb)", Element: "As", Unit: "ppb", ExternalKey: "As_ppb"},
	{Key: "U (ppb)", Element: "U", Unit: "ppb", ExternalKey: "U_ppb"},
	{Key: "Pb (ppm)", Element: "Pb", Unit: "ppm", ExternalKey: "Pb_ppm"},
	{Key: "Cd (ppb)", Element: "Cd", Unit: "ppb", ExternalKey: "Cd_ppb"},
	{Key: "Cr (ppm)", Element: "Cr", Unit: "ppm", ExternalKey: "Cr_ppm"},
	{Key: "Hg (ppb)", Element: "Hg", Unit: "ppb", ExternalKey: "Hg_ppb"},
}

// RecognizedFields returns the fixed, ordered list of measurement fields.
func RecognizedFields() []RecognizedField {
	out := make([]RecognizedField, len(recognizedFields))
	copy(out, recognizedFields)
	return out
}

// Coordinates holds an optional geographic position.
// Latitude and Longitude are independently nullable.
type Coordinates struct {
	Latitude  *float64 `json:"Latitude"`
	Longitude *float64 `json:"Longitude"`
}
