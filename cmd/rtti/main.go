package main

import (
	"context"

	"github.com/scott-cotton/cli"
	"github.com/signadot/tony-format/go-rtti/internal/sample"
	"github.com/signadot/tony-format/go-rtti/meta"
)

func main() {
	meta.MustRegister(sample.Definitions()...)
	if err := meta.Freeze(); err != nil {
		panic(err)
	}
	cli.MainContext(context.Background(), MainCommand())
}
