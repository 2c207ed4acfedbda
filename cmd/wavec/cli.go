package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/muesli/termenv"

	"github.com/wave-lang/wavec/internal/ast"
	"github.com/wave-lang/wavec/internal/diag"
	"github.com/wave-lang/wavec/internal/lexer"
	"github.com/wave-lang/wavec/internal/parser"
	"github.com/wave-lang/wavec/internal/printer"
	"github.com/wave-lang/wavec/internal/vfs"
)

const (
	exitOK       = 0
	exitDiags    = 1
	exitInternal = 2
)

type cliOptions struct {
	stdin          bool
	assumeFilename string
	debugTokens    bool
	debugAST       bool
	sexpr          bool
	noColor        bool
	path           string
}

func run(stdin io.Reader, stdout, stderr io.Writer, args []string) int {
	opts, usage, err := parseArgs(args)
	if err != nil {
		writef(stderr, "wavec: %v\n\n%s", err, usage)
		return exitInternal
	}

	src, path, err := readInput(stdin, opts)
	if err != nil {
		writef(stderr, "wavec: %v\n", err)
		return exitInternal
	}

	store := vfs.NewStore()
	file := store.AddFile(path, string(src))
	tree := parser.Parse(file, src)

	if opts.debugTokens {
		dumpTokens(stdout, tree)
	}
	if opts.debugAST {
		dumpAST(stdout, tree)
	}
	if opts.sexpr {
		if out := printer.Print(tree); out != "" {
			writef(stdout, "%s\n", out)
		}
	}

	var renderOpts []termenv.OutputOption
	if opts.noColor {
		renderOpts = append(renderOpts, termenv.WithProfile(termenv.Ascii))
	}
	diag.NewRenderer(stderr, store, renderOpts...).EmitAll(tree.Diagnostics)

	if diag.HasErrors(tree.Diagnostics) {
		return exitDiags
	}
	return exitOK
}

func parseArgs(args []string) (cliOptions, string, error) {
	var opts cliOptions
	fs := flag.NewFlagSet("wavec", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.BoolVar(&opts.stdin, "stdin", false, "read source from stdin")
	fs.StringVar(&opts.assumeFilename, "assume-filename", "", "filename used for diagnostics with --stdin")
	fs.BoolVar(&opts.debugTokens, "debug-tokens", false, "dump the token stream")
	fs.BoolVar(&opts.debugAST, "debug-ast", false, "dump the node arrays")
	fs.BoolVar(&opts.sexpr, "sexpr", false, "print declarations as S-expressions")
	fs.BoolVar(&opts.noColor, "no-color", false, "disable ANSI styling in diagnostics")

	usage := cliUsage(fs)
	if err := fs.Parse(args); err != nil {
		return cliOptions{}, usage, err
	}

	rest := fs.Args()
	switch {
	case opts.stdin && len(rest) > 0:
		return cliOptions{}, usage, errors.New("positional file path is not allowed with --stdin")
	case !opts.stdin && len(rest) == 0:
		return cliOptions{}, usage, errors.New("exactly one input file path is required (or use --stdin)")
	case !opts.stdin && len(rest) != 1:
		return cliOptions{}, usage, errors.New("parsing multiple files in one invocation is not supported")
	}
	if !opts.stdin {
		opts.path = rest[0]
	}
	return opts, usage, nil
}

func cliUsage(fs *flag.FlagSet) string {
	var b strings.Builder
	b.WriteString("Usage:\n")
	b.WriteString("  wavec [flags] path/to/file.wave\n")
	b.WriteString("  wavec --stdin [--assume-filename foo.wave] [flags]\n\n")
	b.WriteString("Flags:\n")
	fs.VisitAll(func(f *flag.Flag) {
		writef(&b, "  --%s\t%s\n", f.Name, f.Usage)
	})
	return b.String()
}

func readInput(stdin io.Reader, opts cliOptions) ([]byte, string, error) {
	if opts.stdin {
		src, err := io.ReadAll(stdin)
		if err != nil {
			return nil, "", fmt.Errorf("read stdin: %w", err)
		}
		path := opts.assumeFilename
		if path == "" {
			path = "stdin.wave"
		}
		return src, path, nil
	}
	//nolint:gosec // CLI intentionally reads user-provided file paths.
	src, err := os.ReadFile(opts.path)
	if err != nil {
		return nil, "", fmt.Errorf("read %s: %w", opts.path, err)
	}
	return src, opts.path, nil
}

func dumpTokens(w io.Writer, tree *parser.Ast) {
	writef(w, "TOKENS\n")
	for i := 0; i < tree.Tokens.Len(); i++ {
		k, start := tree.Tokens.At(uint32(i)) //nolint:gosec // stream length fits uint32 by construction
		writef(w, "[%d] kind=%s start=%d text=%q\n", i, k, start, lexer.Text(tree.Src, k, start))
	}
}

func dumpAST(w io.Writer, tree *parser.Ast) {
	writef(w, "NODES root=0 decls=%v\n", tree.Decls)
	for i := 0; i < tree.Nodes.Len(); i++ {
		idx := ast.Index(i) //nolint:gosec // node count fits uint32 by construction
		n := tree.Nodes.Get(idx)
		writef(w, "[%d] kind=%s token=%d data={%d,%d}\n", i, n.Kind, n.Token, n.Data.A, n.Data.B)
	}
}

func writef(w io.Writer, format string, args ...any) {
	_, _ = fmt.Fprintf(w, format, args...)
}
