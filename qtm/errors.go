package qtm

import "errors"

// ErrUnknownCountry is returned when a country is not present in a table.
var ErrUnknownCountry = errors.New("unknown country")
