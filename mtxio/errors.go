// SPDX-License-Identifier: MIT

package mtxio

import "errors"

// ErrMalformed is returned when a coordinate file does not follow the format.
var ErrMalformed = errors.New("mtxio: malformed coordinate file")
