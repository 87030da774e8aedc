package section

import "errors"

// ErrUnsupportedGridTemplate is wrapped into the error ParseSection3 returns
// when Section 3's grid definition template number falls outside the
// supported set ({0, 30}). Callers can distinguish this from a generic
// malformed-section error with errors.Is.
var ErrUnsupportedGridTemplate = errors.New("unsupported grid definition template")

// ErrUnsupportedPackingTemplate is wrapped into the error ParseSection5
// returns when Section 5's data representation template number falls
// outside the supported set ({0, 40, 41, 200}). Callers can distinguish
// this from a generic malformed-section error with errors.Is.
var ErrUnsupportedPackingTemplate = errors.New("unsupported data representation template")
