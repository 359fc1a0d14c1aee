package formstate

import "errors"

var (
	// ErrUnknownField is returned when a map-based update names a key that is
	// not part of the record's field set.
	ErrUnknownField = errors.New("formstate: unknown field")
	// ErrFieldType is returned when a map-based update carries a value of the
	// wrong type for the named field.
	ErrFieldType = errors.New("formstate: invalid field type")
	// ErrDuplicateField is returned when a map-based update sets the same
	// field twice, for example through its canonical and legacy names.
	ErrDuplicateField = errors.New("formstate: duplicate field")
)
