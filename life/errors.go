package life

import "errors"

// ErrNonPositiveRounds is returned by (*Universe).Rounds when asked to
// advance by zero or a negative number of generations.
var ErrNonPositiveRounds = errors.New("hashlife: rounds must be positive")
