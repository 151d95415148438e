package main

import (
	"fmt"

	log "github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"

	"github.com/katalvlaran/lvlinear/utmatrix"
	"github.com/katalvlaran/lvlinear/vector"
)

// vectorOp describes one `lvlinear vector <name>` subcommand.
type vectorOp struct {
	name   string
	usage  string
	binary bool // requires --b
	run    func(a, b *vector.Vector[float64], s float64) (any, error)
}

var vectorOps = []vectorOp{
	{name: "add", usage: "a + b", binary: true, run: func(a, b *vector.Vector[float64], _ float64) (any, error) {
		return a.Add(b)
	}},
	{name: "sub", usage: "a - b", binary: true, run: func(a, b *vector.Vector[float64], _ float64) (any, error) {
		return a.Sub(b)
	}},
	{name: "dot", usage: "a · b", binary: true, run: func(a, b *vector.Vector[float64], _ float64) (any, error) {
		return a.Dot(b)
	}},
	{name: "equal", usage: "a == b", binary: true, run: func(a, b *vector.Vector[float64], _ float64) (any, error) {
		return a.Equal(b), nil
	}},
	{name: "add-scalar", usage: "a + scalar", run: func(a, _ *vector.Vector[float64], s float64) (any, error) {
		return a.AddScalar(s), nil
	}},
	{name: "sub-scalar", usage: "a - scalar", run: func(a, _ *vector.Vector[float64], s float64) (any, error) {
		return a.SubScalar(s), nil
	}},
	{name: "mul-scalar", usage: "a * scalar", run: func(a, _ *vector.Vector[float64], s float64) (any, error) {
		return a.MulScalar(s), nil
	}},
}

// matrixOp describes one `lvlinear matrix <name>` subcommand.
type matrixOp struct {
	name  string
	usage string
	run   func(a, b *utmatrix.Matrix[float64]) (any, error)
}

var matrixOps = []matrixOp{
	{name: "add", usage: "a + b", run: func(a, b *utmatrix.Matrix[float64]) (any, error) { return a.Add(b) }},
	{name: "sub", usage: "a - b", run: func(a, b *utmatrix.Matrix[float64]) (any, error) { return a.Sub(b) }},
	{name: "equal", usage: "a == b", run: func(a, b *utmatrix.Matrix[float64]) (any, error) { return a.Equal(b), nil }},
}

// Flags are built per command: urfave/cli flag values keep parse state.
func vectorFlags() []cli.Flag {
	return []cli.Flag{
		&cli.Float64SliceFlag{Name: "a", Usage: "left operand, comma separated", Required: true},
		&cli.Float64SliceFlag{Name: "b", Usage: "right operand, comma separated"},
		&cli.Float64Flag{Name: "scalar", Aliases: []string{"s"}, Usage: "scalar operand"},
		&cli.IntFlag{Name: "start", Usage: "start index of the operands"},
	}
}

func matrixFlags() []cli.Flag {
	return []cli.Flag{
		&cli.IntFlag{Name: "size", Aliases: []string{"n"}, Usage: "dimension of a (and of b unless --b-size)", Required: true},
		&cli.IntFlag{Name: "b-size", Usage: "dimension of b"},
		&cli.Float64Flag{Name: "a-fill", Usage: "value of every stored cell of a"},
		&cli.Float64Flag{Name: "b-fill", Usage: "value of every stored cell of b"},
	}
}

func (r *runner) vectorCommand() *cli.Command {
	sub := make([]*cli.Command, 0, len(vectorOps))
	for _, op := range vectorOps {
		sub = append(sub, &cli.Command{
			Name:   op.name,
			Usage:  op.usage,
			Flags:  vectorFlags(),
			Action: r.vectorAction(op),
		})
	}

	return &cli.Command{
		Name:        "vector",
		Aliases:     []string{"v"},
		Usage:       "Vector operations",
		Subcommands: sub,
	}
}

func (r *runner) matrixCommand() *cli.Command {
	sub := make([]*cli.Command, 0, len(matrixOps))
	for _, op := range matrixOps {
		sub = append(sub, &cli.Command{
			Name:   op.name,
			Usage:  op.usage,
			Flags:  matrixFlags(),
			Action: r.matrixAction(op),
		})
	}

	return &cli.Command{
		Name:        "matrix",
		Aliases:     []string{"m"},
		Usage:       "Upper-triangular matrix operations",
		Subcommands: sub,
	}
}

func (r *runner) vectorAction(op vectorOp) cli.ActionFunc {
	return func(cCtx *cli.Context) error {
		entry := r.log.WithFields(log.Fields{"op": "vector " + op.name})
		opts := append(r.cfg.VectorOptions(), vector.WithStartIndex(cCtx.Int("start")))

		a, err := vector.FromSlice(cCtx.Float64Slice("a"), opts...)
		if err != nil {
			return r.fail(entry, fmt.Errorf("operand a: %w", err))
		}
		var b *vector.Vector[float64]
		if op.binary {
			if !cCtx.IsSet("b") {
				return r.fail(entry, fmt.Errorf("operand b: --b is required for %s", op.name))
			}
			if b, err = vector.FromSlice(cCtx.Float64Slice("b"), opts...); err != nil {
				return r.fail(entry, fmt.Errorf("operand b: %w", err))
			}
		}

		entry.WithField("size", a.Size()).Debug("running")
		res, err := op.run(a, b, cCtx.Float64("scalar"))
		if err != nil {
			return r.fail(entry, err)
		}
		fmt.Fprintln(cCtx.App.Writer, res)
		entry.Debug("done")

		return nil
	}
}

func (r *runner) matrixAction(op matrixOp) cli.ActionFunc {
	return func(cCtx *cli.Context) error {
		entry := r.log.WithFields(log.Fields{"op": "matrix " + op.name})
		n, bn := cCtx.Int("size"), cCtx.Int("size")
		if cCtx.IsSet("b-size") {
			bn = cCtx.Int("b-size")
		}

		a, err := r.filledMatrix(n, cCtx.Float64("a-fill"))
		if err != nil {
			return r.fail(entry, fmt.Errorf("operand a: %w", err))
		}
		b, err := r.filledMatrix(bn, cCtx.Float64("b-fill"))
		if err != nil {
			return r.fail(entry, fmt.Errorf("operand b: %w", err))
		}

		entry.WithFields(log.Fields{"size": n, "bSize": bn}).Debug("running")
		res, err := op.run(a, b)
		if err != nil {
			return r.fail(entry, err)
		}
		fmt.Fprint(cCtx.App.Writer, res)
		if _, ok := res.(bool); ok {
			fmt.Fprintln(cCtx.App.Writer)
		}
		entry.Debug("done")

		return nil
	}
}

func (r *runner) filledMatrix(n int, val float64) (*utmatrix.Matrix[float64], error) {
	m, err := utmatrix.New[float64](n, r.cfg.MatrixOptions()...)
	if err != nil {
		return nil, err
	}
	m.Fill(val)

	return m, nil
}

// fail logs err and converts it to a non-zero exit.
func (r *runner) fail(entry *log.Entry, err error) error {
	entry.WithError(err).Error("operation failed")

	return cli.Exit(err.Error(), 1)
}
