package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/chzyer/readline"
	"github.com/emirpasic/gods/lists/arraylist"
	"github.com/pterm/pterm"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/timtadh/lexmachine"

	"github.com/hamishmack/hnix/nexpr"
	"github.com/hamishmack/hnix/nexpr/mk"
)

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2020–2023 Hamish Mackenzie

*/

// main() starts an interactive CLI where users synthesize Nix expression
// trees on a value stack: literal commands push leaf nodes, operator and
// container commands pop their operands and push the combined tree.
// Inspection commands ('tree', 'free', 'hash') examine the top of the stack.
// nexsh is intended as a sandbox for experiments during development of
// generators and rewriters built on the hnix builder API.
//
// Please refer to packages "nexpr" and "nexpr/mk".
//
func main() {
	// set up logging
	initDisplay()
	gtrace.SyntaxTracer = gologadapter.New()
	tlevel := flag.String("trace", "Info", "Trace level [Debug|Info|Error]")
	initf := flag.String("init", "", "Initial load")
	flag.Parse()
	tracer().SetTraceLevel(tracing.TraceLevelFromString(*tlevel))
	pterm.Info.Println("Welcome to nexsh")
	tracer().Infof("Trace level is %s", *tlevel)
	//
	lexer, err := newLineLexer()
	if err != nil {
		tracer().Errorf("%v", err)
		os.Exit(3)
	}
	repl, err := readline.New("nexsh> ")
	if err != nil {
		tracer().Errorf(err.Error())
		os.Exit(3)
	}
	intp := &Intp{
		lexer: lexer,
		repl:  repl,
		stack: arraylist.New(),
	}
	//
	// load an init file and start receiving commands
	tracer().Infof("Quit with <ctrl>D")
	intp.loadInitFile(*initf)
	intp.REPL()
}

// We use pterm for moderately fancy output.
func initDisplay() {
	pterm.EnableDebugMessages()
	pterm.Info.Prefix = pterm.Prefix{
		Text:  "  >>",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  "  Error",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
}

// Intp is our interpreter object
type Intp struct {
	lexer *lexmachine.Lexer
	repl  *readline.Instance
	stack *arraylist.List // of nexpr.Expr and nexpr.Binding values
}

func (intp *Intp) loadInitFile(filename string) {
	if filename == "" {
		return
	}
	f, err := os.Open(filename)
	if err != nil {
		tracer().Errorf("Unable to open init file: %s", filename)
		return
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	lineno := 1
	for scanner.Scan() {
		line := scanner.Text()
		if line = strings.TrimSpace(line); line == "" {
			continue
		}
		if _, err := intp.Execute(line); err != nil {
			tracer().Errorf("Error line %d: "+err.Error(), lineno)
		}
		lineno++
	}
	if err := scanner.Err(); err != nil {
		tracer().Errorf("Error while reading init file: " + err.Error())
	}
}

// REPL starts interactive mode.
func (intp *Intp) REPL() {
	for {
		line, err := intp.repl.Readline()
		if err != nil { // io.EOF
			break
		}
		if line = strings.TrimSpace(line); line == "" {
			continue
		}
		quit, err := intp.Execute(line)
		if err != nil {
			pterm.Error.Println(err.Error())
			continue
		}
		if quit {
			break
		}
	}
	println("Good bye!")
}

// --- Stack ------------------------------------------------------------------

func (intp *Intp) push(v interface{}) {
	intp.stack.Add(v)
}

func (intp *Intp) pop() (interface{}, error) {
	n := intp.stack.Size()
	if n == 0 {
		return nil, fmt.Errorf("stack is empty")
	}
	v, _ := intp.stack.Get(n - 1)
	intp.stack.Remove(n - 1)
	return v, nil
}

func (intp *Intp) popExpr() (nexpr.Expr, error) {
	v, err := intp.pop()
	if err != nil {
		return nil, err
	}
	e, ok := v.(nexpr.Expr)
	if !ok {
		intp.push(v)
		return nil, fmt.Errorf("top of stack is not an expression (is %T)", v)
	}
	return e, nil
}

func (intp *Intp) popExprs(n int) ([]nexpr.Expr, error) {
	out := make([]nexpr.Expr, n)
	for i := n - 1; i >= 0; i-- { // TOS is the last operand
		e, err := intp.popExpr()
		if err != nil {
			return nil, err
		}
		out[i] = e
	}
	return out, nil
}

func (intp *Intp) popBindings(n int) ([]nexpr.Binding, error) {
	out := make([]nexpr.Binding, n)
	for i := n - 1; i >= 0; i-- {
		v, err := intp.pop()
		if err != nil {
			return nil, err
		}
		b, ok := v.(nexpr.Binding)
		if !ok {
			intp.push(v)
			return nil, fmt.Errorf("top of stack is not a binding (is %T)", v)
		}
		out[i] = b
	}
	return out, nil
}

func (intp *Intp) top() (interface{}, error) {
	n := intp.stack.Size()
	if n == 0 {
		return nil, fmt.Errorf("stack is empty")
	}
	v, _ := intp.stack.Get(n - 1)
	return v, nil
}

// --- Command execution ------------------------------------------------------

var binaryCommands = map[string]func(l, r nexpr.Expr) *nexpr.Binary{
	"add":    mk.Add,
	"sub":    mk.Sub,
	"mul":    mk.Mul,
	"div":    mk.Div,
	"app":    mk.App,
	"update": mk.Update,
	"concat": mk.Concat,
	"lt":     mk.Lt,
	"lte":    mk.Lte,
	"gt":     mk.Gt,
	"gte":    mk.Gte,
	"eq":     mk.Eq,
	"neq":    mk.NEq,
	"and":    mk.And,
	"or":     mk.Or,
	"impl":   mk.Impl,
}

// Execute runs a single command line. The structural transformers panic on
// shape mismatch by contract; the sandbox converts that into a printed error
// so a session survives experimentation.
func (intp *Intp) Execute(line string) (quit bool, err error) {
	defer func() {
		if r := recover(); r != nil {
			quit, err = false, fmt.Errorf("%v", r)
		}
	}()
	toks := scanLine(intp.lexer, line, func(e error) {
		tracer().Errorf("scan: %v", e)
	})
	if len(toks) == 0 {
		return false, nil
	}
	if toks[0].typ != tokWord {
		return false, fmt.Errorf("expected a command word, have %q", toks[0].text)
	}
	cmd, args := toks[0].text, toks[1:]
	if op, ok := binaryCommands[cmd]; ok {
		ops, err := intp.popExprs(2)
		if err != nil {
			return false, err
		}
		intp.push(op(ops[0], ops[1]))
		return false, nil
	}
	switch cmd {
	case "quit", "exit":
		return true, nil
	case "help":
		printHelp()
	case "null":
		intp.push(mk.Null())
	case "bool":
		w, err := wordArg(args)
		if err != nil {
			return false, err
		}
		intp.push(mk.Bool(w == "true"))
	case "int":
		n, err := intArg(args)
		if err != nil {
			return false, err
		}
		intp.push(mk.Int(n))
	case "float":
		f, err := floatArg(args)
		if err != nil {
			return false, err
		}
		intp.push(mk.Float(f))
	case "str":
		s, err := stringArg(args)
		if err != nil {
			return false, err
		}
		intp.push(mk.Str(s))
	case "istr":
		if len(args) != 2 || args[0].typ != tokInt || args[1].typ != tokString {
			return false, fmt.Errorf("usage: istr WIDTH \"TEXT\"")
		}
		w, _ := strconv.Atoi(args[0].text)
		intp.push(mk.IndentedStr(w, unquote(args[1].text)))
	case "sym":
		w, err := wordArg(args)
		if err != nil {
			return false, err
		}
		intp.push(mk.Sym(w))
	case "hole":
		w, err := wordArg(args)
		if err != nil {
			return false, err
		}
		intp.push(mk.SynHole(w))
	case "path":
		if len(args) != 1 {
			return false, fmt.Errorf("usage: path ./some/path | path <channel>")
		}
		switch args[0].typ {
		case tokEnvPath:
			intp.push(mk.EnvPath(strings.Trim(args[0].text, "<>")))
		case tokPath:
			intp.push(mk.RelPath(args[0].text))
		default:
			return false, fmt.Errorf("not a path form: %q", args[0].text)
		}
	case "not", "neg":
		x, err := intp.popExpr()
		if err != nil {
			return false, err
		}
		if cmd == "not" {
			intp.push(mk.Not(x))
		} else {
			intp.push(mk.Neg(x))
		}
	case "dot":
		w, err := wordArg(args)
		if err != nil {
			return false, err
		}
		obj, err := intp.popExpr()
		if err != nil {
			return false, err
		}
		intp.push(mk.Dot(obj, w))
	case "dotor": // obj … default on top
		w, err := wordArg(args)
		if err != nil {
			return false, err
		}
		ops, err := intp.popExprs(2)
		if err != nil {
			return false, err
		}
		intp.push(mk.DotOr(ops[0], w, ops[1]))
	case "bind":
		w, err := wordArg(args)
		if err != nil {
			return false, err
		}
		v, err := intp.popExpr()
		if err != nil {
			return false, err
		}
		intp.push(mk.Bind(w, v))
	case "inherit":
		names, err := wordArgs(args)
		if err != nil {
			return false, err
		}
		intp.push(mk.Inherit(names...))
	case "from": // source expression on top of stack
		names, err := wordArgs(args)
		if err != nil {
			return false, err
		}
		src, err := intp.popExpr()
		if err != nil {
			return false, err
		}
		intp.push(mk.InheritFrom(src, names...))
	case "set", "recset":
		n, err := intArg(args)
		if err != nil {
			return false, err
		}
		bindings, err := intp.popBindings(int(n))
		if err != nil {
			return false, err
		}
		intp.push(mk.Set(cmd == "recset", bindings...))
	case "list":
		n, err := intArg(args)
		if err != nil {
			return false, err
		}
		elems, err := intp.popExprs(int(n))
		if err != nil {
			return false, err
		}
		intp.push(mk.List(elems...))
	case "let": // body on top, N bindings below
		n, err := intArg(args)
		if err != nil {
			return false, err
		}
		body, err := intp.popExpr()
		if err != nil {
			return false, err
		}
		bindings, err := intp.popBindings(int(n))
		if err != nil {
			return false, err
		}
		intp.push(mk.LetIn(bindings, body))
	case "with", "assert":
		ops, err := intp.popExprs(2)
		if err != nil {
			return false, err
		}
		if cmd == "with" {
			intp.push(mk.With(ops[0], ops[1]))
		} else {
			intp.push(mk.Assert(ops[0], ops[1]))
		}
	case "if":
		ops, err := intp.popExprs(3)
		if err != nil {
			return false, err
		}
		intp.push(mk.If(ops[0], ops[1], ops[2]))
	case "lambda":
		w, err := wordArg(args)
		if err != nil {
			return false, err
		}
		body, err := intp.popExpr()
		if err != nil {
			return false, err
		}
		intp.push(mk.Func(mk.Param(w), body))
	case "append": // value on top, container below
		w, err := wordArg(args)
		if err != nil {
			return false, err
		}
		v, err := intp.popExpr()
		if err != nil {
			return false, err
		}
		tree, err := intp.popExpr()
		if err != nil {
			return false, err
		}
		intp.push(mk.AppendBindings(tree, mk.Bind(w, v)))
	case "wrapbody": // assert the function body, a quick ModifyFunctionBody demo
		fn, err := intp.popExpr()
		if err != nil {
			return false, err
		}
		intp.push(mk.ModifyFunctionBody(fn, func(body nexpr.Expr) nexpr.Expr {
			return mk.Assert(mk.Bool(true), body)
		}))
	case "show":
		v, err := intp.top()
		if err != nil {
			return false, err
		}
		pterm.Info.Println(fmt.Sprintf("%v", v))
	case "tree":
		v, err := intp.top()
		if err != nil {
			return false, err
		}
		e, ok := v.(nexpr.Expr)
		if !ok {
			return false, fmt.Errorf("top of stack is not an expression (is %T)", v)
		}
		renderTree(e)
	case "free":
		e, err := intp.topExpr()
		if err != nil {
			return false, err
		}
		pterm.Info.Println(strings.Join(nexpr.FreeVars(e), " "))
	case "syms":
		e, err := intp.topExpr()
		if err != nil {
			return false, err
		}
		pterm.Info.Println(strings.Join(nexpr.Symbols(e), " "))
	case "hash":
		e, err := intp.topExpr()
		if err != nil {
			return false, err
		}
		h, err := nexpr.Fingerprint(e)
		if err != nil {
			return false, err
		}
		pterm.Info.Println(h)
	case "dup":
		v, err := intp.top()
		if err != nil {
			return false, err
		}
		intp.push(v) // safe: trees are immutable
	case "pop":
		if _, err := intp.pop(); err != nil {
			return false, err
		}
	case "clear":
		intp.stack.Clear()
	case "stack":
		it := intp.stack.Iterator()
		for it.Next() {
			pterm.Info.Println(fmt.Sprintf("%3d: %v", it.Index(), it.Value()))
		}
	default:
		return false, fmt.Errorf("unknown command %q (try 'help')", cmd)
	}
	return false, nil
}

func (intp *Intp) topExpr() (nexpr.Expr, error) {
	v, err := intp.top()
	if err != nil {
		return nil, err
	}
	e, ok := v.(nexpr.Expr)
	if !ok {
		return nil, fmt.Errorf("top of stack is not an expression (is %T)", v)
	}
	return e, nil
}

// --- Argument helpers -------------------------------------------------------

func wordArg(args []token) (string, error) {
	if len(args) != 1 || args[0].typ != tokWord {
		return "", fmt.Errorf("expected a single name argument")
	}
	return args[0].text, nil
}

func wordArgs(args []token) ([]string, error) {
	if len(args) == 0 {
		return nil, fmt.Errorf("expected name arguments")
	}
	names := make([]string, len(args))
	for i, a := range args {
		if a.typ != tokWord {
			return nil, fmt.Errorf("expected a name, have %q", a.text)
		}
		names[i] = a.text
	}
	return names, nil
}

func intArg(args []token) (int64, error) {
	if len(args) != 1 || args[0].typ != tokInt {
		return 0, fmt.Errorf("expected a single integer argument")
	}
	return strconv.ParseInt(args[0].text, 10, 64)
}

func floatArg(args []token) (float64, error) {
	if len(args) != 1 || (args[0].typ != tokFloat && args[0].typ != tokInt) {
		return 0, fmt.Errorf("expected a single number argument")
	}
	return strconv.ParseFloat(args[0].text, 64)
}

func stringArg(args []token) (string, error) {
	if len(args) != 1 || args[0].typ != tokString {
		return "", fmt.Errorf("expected a single quoted string argument")
	}
	return unquote(args[0].text), nil
}

func unquote(text string) string {
	return strings.Trim(text, `"`)
}

func printHelp() {
	pterm.Info.Println(`push:    null | bool B | int N | float F | str "…" | istr W "…" | sym X | hole X | path P
combine: not neg add sub mul div app update concat lt lte gt gte eq neq and or impl
         dot KEY | dotor KEY | bind X | inherit X… | from X… | set N | recset N
         list N | let N | with | assert | if | lambda X | append X | wrapbody
inspect: show | tree | free | syms | hash | stack
stack:   dup | pop | clear | quit`)
}
