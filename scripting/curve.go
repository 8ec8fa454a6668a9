// Package scripting lets callers define custom transfer curves as
// JavaScript expressions, for vendor curves that ship as formulas
// rather than as calibration tables.
package scripting

import (
	"fmt"
	"math"
	"sync"

	"github.com/dop251/goja"
)

// Curve is a transfer function whose encode and decode branches are
// JavaScript expressions of the variable x. It satisfies the
// transfer.Function interface.
type Curve struct {
	name string

	// goja runtimes are not safe for concurrent use.
	mu     sync.Mutex
	vm     *goja.Runtime
	encode goja.Callable
	decode goja.Callable
}

// NewCurve compiles the encode and decode expressions. The expressions
// see the variable x and the JavaScript Math object, e.g.
// "Math.pow(x, 1/2.4)".
func NewCurve(name, encodeExpr, decodeExpr string) (*Curve, error) {
	vm := goja.New()

	encode, err := compileExpr(vm, encodeExpr)
	if err != nil {
		return nil, fmt.Errorf("encode expression: %w", err)
	}
	decode, err := compileExpr(vm, decodeExpr)
	if err != nil {
		return nil, fmt.Errorf("decode expression: %w", err)
	}

	return &Curve{name: name, vm: vm, encode: encode, decode: decode}, nil
}

func compileExpr(vm *goja.Runtime, expr string) (goja.Callable, error) {
	v, err := vm.RunString("(function(x) { return (" + expr + "); })")
	if err != nil {
		return nil, err
	}
	fn, ok := goja.AssertFunction(v)
	if !ok {
		return nil, fmt.Errorf("expression did not compile to a function")
	}
	return fn, nil
}

func (c *Curve) Name() string { return c.name }

// Encode evaluates the encode expression at x. Runtime errors and
// non-numeric results yield NaN.
func (c *Curve) Encode(x float64) float64 { return c.call(c.encode, x) }

// Decode evaluates the decode expression at v. Runtime errors and
// non-numeric results yield NaN.
func (c *Curve) Decode(v float64) float64 { return c.call(c.decode, v) }

func (c *Curve) call(fn goja.Callable, x float64) float64 {
	c.mu.Lock()
	defer c.mu.Unlock()

	res, err := fn(goja.Undefined(), c.vm.ToValue(x))
	if err != nil {
		return math.NaN()
	}
	return res.ToFloat()
}
