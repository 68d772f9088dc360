// SPDX-License-Identifier: MIT

package codec

import (
	"fmt"

	"github.com/Mearman/Academic-Explorer-sub005/core"
)

var (
	// ErrUnknownFormat reports an unsupported extension or format.
	ErrUnknownFormat = fmt.Errorf("codec: unknown format: %w", core.ErrInvalidInput)

	// ErrMalformed reports input that does not parse or validate.
	ErrMalformed = fmt.Errorf("codec: malformed input: %w", core.ErrInvalidInput)
)
