// Command hydrac compiles a Hydra chain expression into a SPIR-V fragment
// shader binary. The input is a JSON-encoded expression (or a JSON array
// of them, for a multi-statement pipeline) by default, or Lua source
// using `:`-chain syntax with -lua.
//
// Usage:
//
//	hydrac [options] <input>
//
// Examples:
//
//	hydrac chain.json                    # Compile to stdout
//	hydrac -o shader.spv chain.json       # Compile to file
//	hydrac -lua chain.lua                 # Compile a Lua chain script
//	hydrac -version                       # Print version
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"runtime/debug"

	"github.com/gogpu/hydraspv"
	"github.com/gogpu/hydraspv/ast"
	"github.com/gogpu/hydraspv/luabridge"
)

var (
	output      = flag.String("o", "", "output file (default: stdout)")
	spirvMinor  = flag.Int("spirv-minor", 3, "SPIR-V 1.x minor version to target")
	luaInput    = flag.Bool("lua", false, "parse the input as a Lua chain script instead of JSON")
	debugFlag   = flag.Bool("debug", false, "include OpName debug info")
	validate    = flag.Bool("validate", true, "run the internal IR structural self-check")
	versionFlag = flag.Bool("version", false, "print version")
)

func version() string {
	if info, ok := debug.ReadBuildInfo(); ok {
		if info.Main.Version != "" && info.Main.Version != "(devel)" {
			return info.Main.Version
		}
	}
	return "dev"
}

func main() {
	flag.Usage = usage
	flag.Parse()

	if *versionFlag {
		fmt.Printf("hydrac version %s\n", version())
		return
	}

	args := flag.Args()
	if len(args) < 1 {
		fmt.Fprintln(os.Stderr, "Error: no input file specified")
		usage()
		os.Exit(1)
	}

	source, err := os.ReadFile(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading file: %v\n", err)
		os.Exit(1)
	}

	var exprs []*ast.Expr
	if *luaInput {
		exprs, err = luabridge.Compile(string(source))
	} else {
		exprs, err = parseStatements(source)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing input: %v\n", err)
		os.Exit(1)
	}

	opts := hydraspv.DefaultOptions()
	opts.SPIRVVersion.Minor = uint8(*spirvMinor)
	opts.Debug = *debugFlag
	opts.Validate = *validate

	spirvBytes, err := hydraspv.EmitPipeline(exprs, opts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Compilation error: %v\n", err)
		os.Exit(1)
	}

	if *output != "" {
		if err := os.WriteFile(*output, spirvBytes, 0644); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing output: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Successfully compiled %s to %s (%d bytes)\n", args[0], *output, len(spirvBytes))
		return
	}

	if _, err := os.Stdout.Write(spirvBytes); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing output: %v\n", err)
		os.Exit(1)
	}
}

// parseStatements accepts either a single JSON chain-expression object or
// a JSON array of them, so a one-liner chain and a multi-statement
// pipeline use the same input format.
func parseStatements(data []byte) ([]*ast.Expr, error) {
	var rawArray []json.RawMessage
	if err := json.Unmarshal(data, &rawArray); err == nil {
		exprs := make([]*ast.Expr, 0, len(rawArray))
		for i, raw := range rawArray {
			expr, err := ast.DecodeJSON(raw)
			if err != nil {
				return nil, fmt.Errorf("statement %d: %w", i, err)
			}
			exprs = append(exprs, expr)
		}
		return exprs, nil
	}

	expr, err := ast.DecodeJSON(data)
	if err != nil {
		return nil, err
	}
	return []*ast.Expr{expr}, nil
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: hydrac [options] <input.json>\n\n")
	fmt.Fprintf(os.Stderr, "Options:\n")
	flag.PrintDefaults()
	fmt.Fprintf(os.Stderr, "\nExamples:\n")
	fmt.Fprintf(os.Stderr, "  hydrac chain.json               Compile to stdout\n")
	fmt.Fprintf(os.Stderr, "  hydrac -o shader.spv chain.json Compile to file\n")
}
