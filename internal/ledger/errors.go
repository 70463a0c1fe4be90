package ledger

import "errors"

// ErrNotACollection is returned when a whole input collection is not a
// JSON array. Individual malformed records are not errors, they degrade
// to defaults during normalization.
var ErrNotACollection = errors.New("the input is not a collection of records")
