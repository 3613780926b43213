package main

import (
	"context"
	"io/ioutil"
	"log"
	"os"
	"strings"

	"github.com/bodgit/snesgfx"
	"github.com/urfave/cli/v2"
)

const defaultWorkers = 10

func init() {
	cli.VersionFlag = &cli.BoolFlag{
		Name:    "version",
		Aliases: []string{"V"},
		Usage:   "print the version",
	}
}

func direction(c *cli.Context, in, out string) (snesgfx.Direction, error) {
	switch {
	case c.Bool("from-snes") && c.Bool("to-snes"):
		return 0, cli.NewExitError("--from-snes and --to-snes are mutually exclusive", 1)
	case c.Bool("from-snes"):
		return snesgfx.FromConsole, nil
	case c.Bool("to-snes"):
		return snesgfx.ToConsole, nil
	}
	d, err := snesgfx.InferDirection(in, out)
	if err != nil {
		return 0, cli.NewExitError("Can't infer conversion direction! Please use flags --from-snes or --to-snes to specify.", 1)
	}
	return d, nil
}

func converter(c *cli.Context) *snesgfx.Converter {
	logger := log.New(ioutil.Discard, "", 0)
	if c.Bool("verbose") {
		logger.SetOutput(os.Stderr)
	}

	return snesgfx.New(logger, snesgfx.WithPalette(c.String("palette")))
}

var directionFlags = []cli.Flag{
	&cli.BoolFlag{
		Name:  "from-snes",
		Usage: "convert from the console format",
	},
	&cli.BoolFlag{
		Name:  "to-snes",
		Usage: "convert to the console format",
	},
}

func main() {
	app := cli.NewApp()

	app.Name = "snesgfx"
	app.Usage = "Converts to and from various retro graphics formats"
	app.Version = "0.1.0"

	app.Flags = []cli.Flag{
		&cli.StringFlag{
			Name:    "palette",
			EnvVars: []string{"SNESGFX_PALETTE"},
			Value:   "palette.png",
			Usage:   "palette image used when converting paletted graphics from the console format",
		},
		&cli.BoolFlag{
			Name:    "verbose",
			Aliases: []string{"v"},
			Usage:   "increase verbosity",
		},
	}

	app.Commands = []*cli.Command{
		{
			Name:        "convert",
			Usage:       "Convert a single file",
			Description: "MODE is one of " + strings.Join(snesgfx.Modes(), ", "),
			ArgsUsage:   "MODE INPUT OUTPUT",
			Flags:       directionFlags,
			Action: func(c *cli.Context) error {
				if c.NArg() < 3 {
					cli.ShowCommandHelpAndExit(c, c.Command.FullName(), 1)
				}

				mode, err := snesgfx.ParseMode(c.Args().Get(0))
				if err != nil {
					return cli.NewExitError(err, 1)
				}

				in, out := c.Args().Get(1), c.Args().Get(2)

				dir, err := direction(c, in, out)
				if err != nil {
					return err
				}

				if err := converter(c).Convert(mode, dir, in, out); err != nil {
					return cli.NewExitError(err, 1)
				}

				return nil
			},
		},
		{
			Name:        "batch",
			Usage:       "Convert every file in a directory tree",
			Description: "MODE is one of " + strings.Join(snesgfx.Modes(), ", "),
			ArgsUsage:   "MODE DIRECTORY",
			Flags: append([]cli.Flag{
				&cli.IntFlag{
					Name:  "workers",
					Value: defaultWorkers,
					Usage: "number of concurrent conversions",
				},
			}, directionFlags...),
			Action: func(c *cli.Context) error {
				if c.NArg() < 2 {
					cli.ShowCommandHelpAndExit(c, c.Command.FullName(), 1)
				}

				mode, err := snesgfx.ParseMode(c.Args().Get(0))
				if err != nil {
					return cli.NewExitError(err, 1)
				}

				if c.Bool("from-snes") == c.Bool("to-snes") {
					return cli.NewExitError("exactly one of --from-snes or --to-snes is required", 1)
				}
				dir := snesgfx.FromConsole
				if c.Bool("to-snes") {
					dir = snesgfx.ToConsole
				}

				if err := converter(c).Batch(context.Background(), mode, dir, c.Args().Get(1), c.Int("workers")); err != nil {
					return cli.NewExitError(err, 1)
				}

				return nil
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
