package impact

import "errors"

// Lookup and validation failures. All are caller errors: the submitted value
// sits outside the configured enumeration and retrying cannot help.
var (
	ErrInvalidPurchaseInput = errors.New("invalid purchase input")
	ErrUnknownCategory      = errors.New("unknown product category")
	ErrUnknownOrigin        = errors.New("unknown origin")
	ErrUnknownTransportMode = errors.New("unknown transport mode")
	ErrInvalidTables        = errors.New("invalid impact tables")
)
