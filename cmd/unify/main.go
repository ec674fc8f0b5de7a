package main

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/spf13/pflag"
	"golang.org/x/crypto/ssh/terminal"

	"github.com/karasawa/unify"
	"github.com/karasawa/unify/engine"
)

// Version is a version of this build.
var Version = "unify/0.1"

func main() {
	var verbose, lowercase bool
	pflag.BoolVarP(&verbose, "verbose", "v", false, `echo parsed terms before unifying`)
	pflag.BoolVar(&lowercase, "lowercase", false, `treat all-lowercase identifiers as variables`)
	pflag.Parse()

	var opts []unify.ParseOption
	if lowercase {
		opts = append(opts, unify.WithVarFunc(func(name string) bool {
			return name == strings.ToLower(name) && name != strings.ToUpper(name)
		}))
	}

	if args := pflag.Args(); len(args) > 0 {
		if len(args)%2 != 0 {
			log.Fatal("expressions must come in pairs")
		}
		for i := 0; i < len(args); i += 2 {
			report(os.Stdout, args[i], args[i+1], opts, verbose)
		}
		return
	}

	oldState, err := terminal.MakeRaw(0)
	if err != nil {
		log.Panicf("failed to enter raw mode: %v", err)
	}
	restore := func() {
		_ = terminal.Restore(0, oldState)
	}
	defer restore()

	t := terminal.NewTerminal(os.Stdin, "?- ")
	defer fmt.Printf("\r\n")

	log.SetOutput(t)

	for {
		switch err := handlePair(t, opts, verbose); err {
		case nil:
		case io.EOF:
			return
		default:
			log.Panic(err)
		}
	}
}

func handlePair(t *terminal.Terminal, opts []unify.ParseOption, verbose bool) error {
	t.SetPrompt("?- ")
	x, err := readExpr(t)
	if err != nil {
		return err
	}
	if x == "" {
		return nil
	}

	t.SetPrompt("|  ")
	y, err := readExpr(t)
	if err != nil {
		return err
	}

	report(t, x, y, opts, verbose)
	return nil
}

func readExpr(t *terminal.Terminal) (string, error) {
	line, err := t.ReadLine()
	if err != nil {
		return "", err
	}
	line = strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(line), "."))
	if line == "halt" {
		return "", io.EOF
	}
	return line, nil
}

func report(w io.Writer, x, y string, opts []unify.ParseOption, verbose bool) {
	if verbose {
		log.Printf("unifying %s with %s", x, y)
	}

	sol, err := unify.Unify(x, y, opts...)
	if err != nil {
		var occursErr *engine.OccursError
		var mismatchErr *engine.MismatchError
		switch {
		case errors.As(err, &occursErr), errors.As(err, &mismatchErr):
			if _, err := fmt.Fprintf(w, "false. %% %v\n", err); err != nil {
				log.Printf("failed to write: %v", err)
			}
		default:
			log.Printf("%v", err)
		}
		return
	}

	vars := sol.Vars()
	if len(vars) == 0 {
		if _, err := fmt.Fprintf(w, "%t.\n", true); err != nil {
			log.Printf("failed to write: %v", err)
		}
		return
	}

	m := map[string]engine.Term{}
	if err := sol.Scan(m); err != nil {
		log.Printf("failed to scan: %v", err)
		return
	}

	ls := make([]string, 0, len(vars))
	for _, n := range vars {
		ls = append(ls, fmt.Sprintf("%s = %s", n, m[n]))
	}
	if _, err := fmt.Fprintf(w, "%s.\n", strings.Join(ls, ",\n")); err != nil {
		log.Printf("failed to write: %v", err)
	}
}
