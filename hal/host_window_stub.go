//go:build !tinygo && !cgo

package hal

import (
	"errors"

	"github.com/rs/zerolog"
)

func RunWindow(_ zerolog.Logger, _ func(h HAL) func() error) error {
	return errors.New("window mode requires cgo (build/run with CGO_ENABLED=1); try --terminal or --headless")
}
