// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "errors"

// ErrEmptyInput reports that one of the three input blobs was empty or
// contained only panel furniture, so there is nothing to render. Callers
// match it with errors.Is to show nothing-to-do feedback instead of an
// empty document.
var ErrEmptyInput = errors.New("empty input")

// ErrBadTimestamp reports that a token matched neither the unit-word
// form ("1 hr 2 min 3 sec") nor the colon form ("HH:MM:SS"). The parsers
// recover from it locally by skipping the enclosing group; it never
// aborts a whole parse.
var ErrBadTimestamp = errors.New("unrecognized timestamp")
