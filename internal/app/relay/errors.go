package relay

import "errors"

// ErrNameInUse is returned when a session with the same name is already connected.
var ErrNameInUse = errors.New("name is already in use")
