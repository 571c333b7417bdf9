package pierce

import "errors"

// ErrIndexBusy is returned when a caller attempts to mutate or query the
// persistent index while another goroutine holds it. The index enforces a
// single-writer contract explicitly rather than silently serializing
// contending callers.
var ErrIndexBusy = errors.New("pierce: index is in use by another caller")
