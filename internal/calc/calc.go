// Package calc implements the operations of the ratcalc command, over any
// of the supported backing integer types, selected at runtime.
package calc

import (
	"errors"
	"fmt"
	"math/big"
	"slices"

	"github.com/joeycumines/go-ratio"
	"github.com/joeycumines/go-ratio/integer"
	"github.com/joeycumines/logiface"
)

// Types lists the supported values for [Config.Type].
var Types = []string{
	`int8`, `int16`, `int32`, `int64`,
	`uint8`, `uint16`, `uint32`, `uint64`,
	`big`,
}

var (
	// ErrUnknownType is returned by [New] for an unsupported type.
	ErrUnknownType = errors.New(`calc: unknown type`)

	// ErrUnknownOperator is returned by [Engine.Eval].
	ErrUnknownOperator = errors.New(`calc: unknown operator`)

	// ErrOverflow is returned by [Engine.Eval], in checked mode.
	ErrOverflow = errors.New(`calc: overflow`)

	// ErrNoApproximation is returned by [Engine.Approx].
	ErrNoApproximation = errors.New(`calc: no approximation`)
)

type (
	// Config models the options for [New].
	Config struct {
		// Logger is optional.
		Logger *logiface.Logger[logiface.Event]

		// Type is the backing integer type, one of [Types].
		Type string

		// Places is the number of decimal places for rendering.
		Places int

		MaxError      float64
		MaxIterations int
	}

	// Engine is implemented for each backing type.
	Engine interface {
		Parse(s string) (*Result, error)
		Eval(a, op, b string, checked bool) (*Result, error)
		Cmp(a, b string) (int, error)
		Approx(v float64) (*Result, error)
		Terms(s string) ([]string, error)
		Round(s string) (*Rounding, error)
	}

	engine[T any, I ratio.Integer[T]] struct {
		config Config
	}
)

// New returns the [Engine] for config.Type.
func New(config Config) (Engine, error) {
	switch config.Type {
	case `int8`:
		return newEngine[int8, integer.Int8](config), nil
	case `int16`:
		return newEngine[int16, integer.Int16](config), nil
	case `int32`:
		return newEngine[int32, integer.Int32](config), nil
	case `int64`, ``:
		return newEngine[int64, integer.Int64](config), nil
	case `uint8`:
		return newEngine[uint8, integer.Uint8](config), nil
	case `uint16`:
		return newEngine[uint16, integer.Uint16](config), nil
	case `uint32`:
		return newEngine[uint32, integer.Uint32](config), nil
	case `uint64`:
		return newEngine[uint64, integer.Uint64](config), nil
	case `big`:
		return newEngine[*big.Int, integer.Big](config), nil
	default:
		return nil, fmt.Errorf(`%w: %q (expected one of %v)`, ErrUnknownType, config.Type, Types)
	}
}

func newEngine[T any, I ratio.Integer[T]](config Config) *engine[T, I] {
	if config.Type == `` {
		config.Type = `int64`
	}
	return &engine[T, I]{config: config}
}

// ValidType reports whether s is one of [Types].
func ValidType(s string) bool { return slices.Contains(Types, s) }
