package interp

import (
	"context"
	"fmt"
	"strings"

	"github.com/dop251/goja"
	"github.com/vk/pagehostgo/internal/console"
	"github.com/vk/pagehostgo/internal/ctxlog"
	"github.com/vk/pagehostgo/internal/display"
	"github.com/vk/pagehostgo/internal/pyval"
	"github.com/vk/pagehostgo/internal/script"
)

// Goja is the goja-backed Runtime. One instance serves one page, so
// definitions made by an earlier block are visible to later blocks and to
// event handlers.
type Goja struct {
	vm   *goja.Runtime
	host Host

	// Execution context of the statement currently running. Rebound by
	// RunBlock and Call; current is nil outside block context.
	ctx     context.Context
	current *script.Block
}

// NewGoja creates a runtime bound to the given host and installs the
// page-facing builtins.
func NewGoja(host Host) (*Goja, error) {
	g := &Goja{vm: goja.New(), host: host, ctx: context.Background()}

	if err := g.vm.Set("display", g.builtinDisplay); err != nil {
		return nil, fmt.Errorf("failed to install display builtin: %w", err)
	}
	if err := g.vm.Set("tuple", g.builtinTuple); err != nil {
		return nil, fmt.Errorf("failed to install tuple builtin: %w", err)
	}
	if err := g.vm.Set("print", g.builtinPrint); err != nil {
		return nil, fmt.Errorf("failed to install print builtin: %w", err)
	}

	consoleObj := g.vm.NewObject()
	for level, name := range map[console.Level]string{
		console.LevelLog:   "log",
		console.LevelWarn:  "warn",
		console.LevelError: "error",
	} {
		level, name := level, name
		if err := consoleObj.Set(name, func(fc goja.FunctionCall) goja.Value {
			g.host.Console(level, g.joinArgs(fc))
			return goja.Undefined()
		}); err != nil {
			return nil, fmt.Errorf("failed to install console.%s: %w", name, err)
		}
	}
	if err := g.vm.Set("console", consoleObj); err != nil {
		return nil, fmt.Errorf("failed to install console object: %w", err)
	}

	return g, nil
}

// RunBlock executes b's source with b as the implicit target.
func (g *Goja) RunBlock(ctx context.Context, b *script.Block) error {
	g.enter(ctx, b)
	defer g.leave()

	ctxlog.FromContext(ctx).Debug("Executing script block.", "id", b.ID, "ordinal", b.Ordinal)
	if _, err := g.vm.RunString(b.Source); err != nil {
		return fmt.Errorf("script block %s failed: %w", b.ID, err)
	}
	return nil
}

// Call evaluates a handler expression as a discrete task with no block
// context.
func (g *Goja) Call(ctx context.Context, expr string) error {
	g.enter(ctx, nil)
	defer g.leave()

	ctxlog.FromContext(ctx).Debug("Evaluating handler expression.", "expr", expr)
	if _, err := g.vm.RunString(expr); err != nil {
		return fmt.Errorf("handler expression %q failed: %w", expr, err)
	}
	return nil
}

func (g *Goja) enter(ctx context.Context, b *script.Block) {
	g.ctx = ctx
	g.current = b
}

func (g *Goja) leave() {
	g.ctx = context.Background()
	g.current = nil
}

// builtinDisplay implements display(v1, v2, ..., opts?). A trailing plain
// object whose keys are only target/append is the options argument:
// display('hi', {target: 'out', append: false}). Append defaults to true.
// Host errors are thrown into the script as exceptions.
func (g *Goja) builtinDisplay(fc goja.FunctionCall) goja.Value {
	args := fc.Arguments
	target := ""
	appendMode := true

	if len(args) > 0 {
		if t, app, ok := g.optionsFrom(args[len(args)-1]); ok {
			target = t
			appendMode = app
			args = args[:len(args)-1]
		}
	}

	values := make([]pyval.Value, len(args))
	for i, a := range args {
		values[i] = FromGoja(a)
	}

	call := display.Call{Values: values, Target: target, Append: appendMode}
	if err := g.host.Display(g.ctx, call, g.current); err != nil {
		panic(g.vm.NewGoError(err))
	}
	return goja.Undefined()
}

// builtinTuple constructs a fixed-size tuple value; the script language has
// no native tuple literal.
func (g *Goja) builtinTuple(fc goja.FunctionCall) goja.Value {
	items := make([]pyval.Value, len(fc.Arguments))
	for i, a := range fc.Arguments {
		items[i] = FromGoja(a)
	}
	return g.vm.ToValue(pyval.Tuple(items...))
}

// builtinPrint writes to the console channel only; it never touches the
// page.
func (g *Goja) builtinPrint(fc goja.FunctionCall) goja.Value {
	g.host.Print(g.joinArgs(fc))
	return goja.Undefined()
}

func (g *Goja) joinArgs(fc goja.FunctionCall) string {
	parts := make([]string, len(fc.Arguments))
	for i, a := range fc.Arguments {
		parts[i] = FromGoja(a).Display()
	}
	return strings.Join(parts, " ")
}

// optionsFrom recognizes the trailing options object: a plain object with
// at least one key, all keys among target/append. Anything else - arrays,
// tuples, objects carrying data keys - is a displayed value.
func (g *Goja) optionsFrom(v goja.Value) (target string, appendMode bool, ok bool) {
	appendMode = true

	obj, isObj := v.(*goja.Object)
	if !isObj || obj.ClassName() != "Object" {
		return "", appendMode, false
	}
	if _, wrapped := obj.Export().(pyval.Value); wrapped {
		return "", appendMode, false
	}

	keys := obj.Keys()
	if len(keys) == 0 {
		return "", appendMode, false
	}
	for _, k := range keys {
		if k != "target" && k != "append" {
			return "", appendMode, false
		}
	}

	if tv := obj.Get("target"); tv != nil && !goja.IsUndefined(tv) && !goja.IsNull(tv) {
		target = tv.String()
	}
	if av := obj.Get("append"); av != nil && !goja.IsUndefined(av) {
		appendMode = av.ToBoolean()
	}
	return target, appendMode, true
}
