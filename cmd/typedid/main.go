package main

import (
	"fmt"

	"github.com/alecthomas/kong"
	"github.com/broady/typedid/cmd/typedid/internal/check"
	"github.com/broady/typedid/cmd/typedid/internal/gen"
)

type CLI struct {
	Gen     gen.Cmd    `cmd:"" help:"Generate identifier types from annotated declarations."`
	Check   check.Cmd  `cmd:"" help:"Verify generated files are up to date without writing."`
	Version VersionCmd `cmd:"" help:"Print version information."`
}

type VersionCmd struct{}

func (c *VersionCmd) Run() error {
	fmt.Println(Version())
	return nil
}

func main() {
	cli := &CLI{}
	ctx := kong.Parse(cli,
		kong.Name("typedid"),
		kong.Description("Generates strongly typed identifier wrappers from annotated placeholder declarations."),
		kong.UsageOnError(),
	)
	err := ctx.Run()
	ctx.FatalIfErrorf(err)
}
