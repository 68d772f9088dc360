// SPDX-License-Identifier: MIT

package cli

import (
	"fmt"
	"strings"

	"github.com/Mearman/Academic-Explorer-sub005/core"
)

func parseDirection(s string) (core.Direction, error) {
	switch strings.ToLower(s) {
	case "out", "":
		return core.Out, nil
	case "in":
		return core.In, nil
	case "both":
		return core.Both, nil
	}
	return core.Out, fmt.Errorf("unknown direction %q (want out, in or both): %w", s, core.ErrInvalidInput)
}
