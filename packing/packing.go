// Package packing decodes GRIB2 Section 5/7 data-representation templates
// into a dense float32 field of physical values, with a shared sentinel for
// missing cells.
package packing

// Missing is the sentinel value used for missing or invalid cells in a
// decoded field. Any decoded value less than -900 is treated as missing by
// downstream consumers (the color mapper, through IsMissing).
const Missing float32 = -999.0

// Representation is a GRIB2 Data Representation Template (Section 5),
// capable of unpacking its paired Section 7 data into a dense field.
type Representation interface {
	// TemplateNumber returns the data representation template number
	// (Table 5.0).
	TemplateNumber() int

	// NumDataValues returns the number of data values to be unpacked.
	NumDataValues() uint32

	// Decode unpacks packedData (the raw Section 7 bytes) into a
	// []float32 of length NumDataValues(), in grid scan order.
	Decode(packedData []byte) ([]float32, error)

	// String returns a human-readable description.
	String() string
}

// IsMissing reports whether a decoded value should be treated as the
// sentinel, per spec: anything below -900. The color mapper calls it rather
// than repeating the threshold, so the threshold lives in one place.
func IsMissing(v float32) bool {
	return v < -900
}
