package wavl

import "errors"

// ErrStaleCursor is returned when a Cursor or Entry operation is attempted
// after the node it was positioned on has been removed from the tree by a
// separate deletion.
var ErrStaleCursor = errors.New("wavl: cursor is stale")

// ErrKeyOrderViolation is returned by InsertBefore/InsertAfter when the
// supplied key does not sort strictly between the cursor's neighboring
// keys.
var ErrKeyOrderViolation = errors.New("wavl: key violates position order")

// ErrInvalidRange is returned by Range when both bounds are given and
// start sorts after end.
var ErrInvalidRange = errors.New("wavl: range start sorts after end")

// ErrConsumedRange is returned by First/Last on a Range that has already
// been destructively consumed by Delete or Drain.
var ErrConsumedRange = errors.New("wavl: range was already consumed")
