package selection

import "errors"

// ErrBlankCustomName rejects AddCustom with an empty name. The caller keeps
// its form state so the user can correct and resubmit.
var ErrBlankCustomName = errors.New("custom deliverable name must not be blank")
