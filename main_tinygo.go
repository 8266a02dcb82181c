//go:build tinygo && baremetal

package main

import (
	"exacto/app"
	"exacto/hal"
)

func main() {
	app.Run(hal.New())
}
