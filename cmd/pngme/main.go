package main

import (
	"github.com/nspcc-dev/pngme/cmd/internal/cmderr"
	"github.com/nspcc-dev/pngme/cmd/pngme/modules"
)

func main() {
	cmderr.ExitOnErr(modules.Execute())
}
