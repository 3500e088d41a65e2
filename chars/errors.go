package chars

import "errors"

// ErrFailedExpectation is returned by View.Expect/ExpectByte when the
// expected literal is not present at the cursor.
var ErrFailedExpectation = errors.New("chars: expectation failed")
