// Command ratcalc evaluates exact rational arithmetic, from the command
// line, using any of the supported backing integer types.
//
// Examples:
//
//	ratcalc parse -- 6/4 -10/4
//	ratcalc --type int8 eval --checked 100 + 100
//	ratcalc --json approx 3.14159265
//	ratcalc --type big cf 415/93
//	ratcalc --places 2 round -- -5/8
package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/joeycumines/go-ratio/internal/calc"
	"github.com/joeycumines/go-utilpkg/jsonenc"
	"github.com/joeycumines/logiface"
	"github.com/joeycumines/stumpy"
	"github.com/urfave/cli/v2"
)

type (
	application struct {
		stdout    io.Writer
		stderr    io.Writer
		newLogger func(w io.Writer, level logiface.Level) *logiface.Logger[logiface.Event]
	}

	command struct {
		engine  calc.Engine
		options *options
		out     io.Writer
	}
)

func main() {
	os.Exit(run(os.Args, os.Stdout, os.Stderr, newLogger))
}

func newLogger(w io.Writer, level logiface.Level) *logiface.Logger[logiface.Event] {
	return stumpy.L.New(
		stumpy.L.WithStumpy(stumpy.WithWriter(w)),
		stumpy.L.WithLevel(level),
	).Logger()
}

func run(args []string, stdout, stderr io.Writer, newLogger func(w io.Writer, level logiface.Level) *logiface.Logger[logiface.Event]) int {
	a := &application{
		stdout:    stdout,
		stderr:    stderr,
		newLogger: newLogger,
	}
	if err := a.cli().Run(args); err != nil {
		a.newLogger(a.stderr, logiface.LevelError).Err().
			Err(err).
			Log(`ratcalc: command failed`)
		return 1
	}
	return 0
}

func (a *application) cli() *cli.App {
	app := cli.NewApp()
	app.Name = `ratcalc`
	app.Usage = `exact rational arithmetic`
	app.Writer = a.stdout
	app.ErrWriter = a.stderr
	app.Flags = []cli.Flag{
		&cli.StringFlag{
			Name:    `type`,
			Aliases: []string{`t`},
			Value:   `int64`,
			Usage:   `the backing integer type, one of ` + strings.Join(calc.Types, `, `),
		},
		&cli.StringFlag{
			Name:    `config`,
			Aliases: []string{`c`},
			Usage:   `a TOML config file, explicitly set flags take precedence`,
		},
		&cli.IntFlag{
			Name:    `places`,
			Aliases: []string{`p`},
			Value:   defaultPlaces,
			Usage:   `decimal places, for decimal output`,
		},
		&cli.Float64Flag{
			Name:  `max-error`,
			Usage: `the maximum error, for approx, defaults to 10e-20`,
		},
		&cli.IntFlag{
			Name:  `max-iterations`,
			Usage: `the maximum number of iterations, for approx, defaults to 30`,
		},
		&cli.BoolFlag{
			Name:  `json`,
			Usage: `write output as JSON`,
		},
		&cli.StringFlag{
			Name:  `log-level`,
			Value: defaultLogLevel.String(),
			Usage: `the log level, e.g. err, warning, info, debug, trace`,
		},
	}
	app.Commands = []*cli.Command{
		{
			Name:      `parse`,
			Usage:     `Parse and reduce a ratio`,
			ArgsUsage: `<ratio>...`,
			Action:    a.action(-1, parseCmd),
		},
		{
			Name:      `eval`,
			Usage:     `Evaluate a binary operation, one of + - * / %`,
			ArgsUsage: `<ratio> <op> <ratio>`,
			Action:    a.action(3, evalCmd),
			Flags: []cli.Flag{
				&cli.BoolFlag{
					Name:  `checked`,
					Usage: `fail on overflow, rather than wrapping`,
				},
			},
		},
		{
			Name:      `cmp`,
			Usage:     `Compare two ratios, writing -1, 0, or 1`,
			ArgsUsage: `<ratio> <ratio>`,
			Action:    a.action(2, cmpCmd),
		},
		{
			Name:      `approx`,
			Usage:     `Approximate a float as a ratio`,
			ArgsUsage: `<float>`,
			Action:    a.action(1, approxCmd),
		},
		{
			Name:      `cf`,
			Usage:     `Write the continued fraction terms of a ratio`,
			ArgsUsage: `<ratio>`,
			Action:    a.action(1, cfCmd),
		},
		{
			Name:      `round`,
			Usage:     `Round a ratio, using each of the supported modes`,
			ArgsUsage: `<ratio>`,
			Action:    a.action(1, roundCmd),
		},
	}
	return app
}

func (a *application) action(nargs int, fn func(c *cli.Context, cmd *command) error) cli.ActionFunc {
	return func(c *cli.Context) error {
		// negative nargs means one or more
		if nargs < 0 && c.NArg() == 0 {
			return fmt.Errorf(`ratcalc: %s: expected at least 1 argument`, c.Command.Name)
		} else if nargs >= 0 && c.NArg() != nargs {
			return fmt.Errorf(`ratcalc: %s: expected %d argument(s), got %d`, c.Command.Name, nargs, c.NArg())
		}

		opts, err := loadOptions(c)
		if err != nil {
			return err
		}

		logger := a.newLogger(a.stderr, opts.logLevel)
		opts.calc.Logger = logger

		engine, err := calc.New(opts.calc)
		if err != nil {
			return err
		}

		logger.Debug().
			Str(`command`, c.Command.Name).
			Str(`type`, opts.calc.Type).
			Int(`places`, opts.calc.Places).
			Log(`ratcalc: running command`)

		return fn(c, &command{
			engine:  engine,
			options: opts,
			out:     c.App.Writer,
		})
	}
}

func parseCmd(c *cli.Context, cmd *command) error {
	for i, arg := range c.Args().Slice() {
		r, err := cmd.engine.Parse(arg)
		if err != nil {
			return err
		}
		if i != 0 && !cmd.options.json {
			if err := cmd.write(nil); err != nil {
				return err
			}
		}
		if err := cmd.writeResult(r); err != nil {
			return err
		}
	}
	return nil
}

func evalCmd(c *cli.Context, cmd *command) error {
	args := c.Args()
	r, err := cmd.engine.Eval(args.Get(0), args.Get(1), args.Get(2), c.Bool(`checked`))
	if err != nil {
		return err
	}
	return cmd.writeResult(r)
}

func cmpCmd(c *cli.Context, cmd *command) error {
	v, err := cmd.engine.Cmp(c.Args().Get(0), c.Args().Get(1))
	if err != nil {
		return err
	}
	var b []byte
	if cmd.options.json {
		b = append(b, `{"cmp":`...)
		b = strconv.AppendInt(b, int64(v), 10)
		b = append(b, '}')
	} else {
		b = strconv.AppendInt(b, int64(v), 10)
	}
	return cmd.write(b)
}

func approxCmd(c *cli.Context, cmd *command) error {
	v, err := strconv.ParseFloat(c.Args().Get(0), 64)
	if err != nil {
		return fmt.Errorf(`ratcalc: approx: %w`, err)
	}
	r, err := cmd.engine.Approx(v)
	if err != nil {
		return err
	}
	return cmd.writeResult(r)
}

func cfCmd(c *cli.Context, cmd *command) error {
	terms, err := cmd.engine.Terms(c.Args().Get(0))
	if err != nil {
		return err
	}
	var b []byte
	if cmd.options.json {
		b = append(b, '[')
		for i, term := range terms {
			if i != 0 {
				b = append(b, ',')
			}
			b = jsonenc.AppendString(b, term)
		}
		b = append(b, ']')
	} else {
		b = append(b, '[')
		for i, term := range terms {
			switch i {
			case 0:
			case 1:
				b = append(b, `; `...)
			default:
				b = append(b, `, `...)
			}
			b = append(b, term...)
		}
		b = append(b, ']')
	}
	return cmd.write(b)
}

func roundCmd(c *cli.Context, cmd *command) error {
	r, err := cmd.engine.Round(c.Args().Get(0))
	if err != nil {
		return err
	}
	if cmd.options.json {
		return cmd.write(r.AppendJSON(nil))
	}
	return cmd.write(appendFields(nil,
		`ratio`, r.Ratio,
		`floor`, r.Floor,
		`ceil`, r.Ceil,
		`trunc`, r.Trunc,
		`round`, r.Round,
		`half_even`, r.HalfEven,
	))
}

func (x *command) writeResult(r *calc.Result) error {
	if x.options.json {
		return x.write(r.AppendJSON(nil))
	}
	b := appendFields(nil,
		`ratio`, r.Ratio,
		`decimal`, r.Decimal,
	)
	if r.Exact != `` {
		b = appendFields(append(b, '\n'), `exact`, r.Exact)
	}
	b = appendFields(append(b, '\n'), `float`, strconv.FormatFloat(r.Float, 'g', -1, 64))
	return x.write(b)
}

func (x *command) write(b []byte) error {
	_, err := x.out.Write(append(b, '\n'))
	return err
}

// appendFields appends key-value pairs, one per line, without a trailing
// newline.
func appendFields(b []byte, kv ...string) []byte {
	for i := 0; i+1 < len(kv); i += 2 {
		if i != 0 {
			b = append(b, '\n')
		}
		b = append(b, kv[i]...)
		b = append(b, `: `...)
		b = append(b, kv[i+1]...)
	}
	return b
}
