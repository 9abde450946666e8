package field

// Codec encodes/decodes values V to the text of a single tabular field.
// Encode is total. Decode returns a *DecodeError for malformed text.
type Codec[V any] interface {
	Encode(V) string
	Decode(string) (V, error)
}

// Reserved separators. None of them can appear inside a rendered number
// of the supported types, so no escaping exists.
const (
	SequenceSep   = "_" // elements of a sequence
	MatrixSep     = "|" // rows of a matrix
	DimensionSep  = "x" // width and height
	CoordinateSep = ";" // latitude and longitude
)
