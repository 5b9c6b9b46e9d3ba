package main

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/alecthomas/kong"
	"github.com/alecthomas/repr"
	"github.com/mattn/go-isatty"
	"github.com/peterh/liner"
	"github.com/theridder/sep"
)

const version = "0.01"

var cli struct {
	File    string `arg:"" optional:"" type:"existingfile" help:"Read expressions from file, one per line."`
	AST     string `name:"ast" enum:"none,tree,repr" default:"none" help:"Print the syntax tree of each line (${enum}) instead of evaluating it."`
	History string `type:"path" env:"SEP_HISTORY" default:"~/.sep_history" help:"History file of the interactive prompt."`
	Prompt  string `default:">>> " help:"Prompt of the interactive loop."`
}

// lineSource is satisfied by *liner.State.
type lineSource interface {
	Prompt(prompt string) (string, error)
	AppendHistory(item string)
}

type turnFunc func(w io.Writer, line string) error

func evaluate(w io.Writer, line string) error {
	node, err := sep.Parse(line)
	if err != nil {
		var perr *sep.ParseError
		if errors.As(err, &perr) {
			fmt.Fprintln(w, perr.Caret())
		}
		_, err = fmt.Fprintln(w, err)
		return err
	}
	_, err = fmt.Fprintln(w, sep.Format(sep.Eval(node)))
	return err
}

func dumpTree(w io.Writer, line string) error {
	node, err := sep.Parse(line)
	if err != nil {
		_, err = fmt.Fprintln(w, err)
		return err
	}
	return node.Print(w)
}

func dumpRepr(w io.Writer, line string) error {
	node, err := sep.Parse(line)
	if err != nil {
		_, err = fmt.Fprintln(w, err)
		return err
	}
	repr.New(w, repr.Indent("  "), repr.OmitEmpty(true)).Println(node)
	return nil
}

func turnFor(format string) turnFunc {
	switch format {
	case "tree":
		return dumpTree
	case "repr":
		return dumpRepr
	}
	return evaluate
}

func repl(src lineSource, w io.Writer, prompt string, turn turnFunc) error {
	for {
		line, err := src.Prompt(prompt)
		if err != nil {
			if err == io.EOF || err == liner.ErrPromptAborted {
				fmt.Fprintln(w)
				return nil
			}
			return err
		}
		if strings.TrimSpace(line) == "" {
			continue
		}
		src.AppendHistory(line)
		if err := turn(w, line); err != nil {
			return err
		}
	}
}

func runRepl(histPath, prompt string, turn turnFunc) error {
	fmt.Printf("Interactive Sep Version %s\n", version)
	fmt.Println("Press Ctrl+c to Exit")
	fmt.Println()

	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	sigc := make(chan os.Signal, 1)
	signal.Notify(sigc, syscall.SIGTERM, syscall.SIGHUP)
	defer signal.Stop(sigc)
	go func() {
		<-sigc
		ln.Close()
		os.Exit(130)
	}()

	if f, err := os.Open(histPath); err == nil {
		_, _ = ln.ReadHistory(f)
		f.Close()
	}
	defer func() {
		f, err := os.Create(histPath)
		if err != nil {
			log.Print(err)
			return
		}
		defer f.Close()
		if _, err := ln.WriteHistory(f); err != nil {
			log.Print(err)
		}
	}()

	return repl(ln, os.Stdout, prompt, turn)
}

func batch(r io.Reader, w io.Writer, format string) error {
	if format == "none" {
		return sep.Run(r, w)
	}
	turn := turnFor(format)
	return sep.EachLine(r, func(line string) error {
		return turn(w, line)
	})
}

func main() {
	log.SetFlags(0)
	log.SetPrefix("sep: ")

	kctx := kong.Parse(&cli,
		kong.Name("sep"),
		kong.Description(`Evaluate prefix arithmetic expressions such as "+ 1 (* 2 3)".`),
	)

	if cli.File == "" && isatty.IsTerminal(os.Stdin.Fd()) {
		kctx.FatalIfErrorf(runRepl(cli.History, cli.Prompt, turnFor(cli.AST)))
		return
	}

	f := os.Stdin
	if cli.File != "" {
		var err error
		f, err = os.Open(cli.File)
		if err != nil {
			log.Fatal(err)
		}
		defer f.Close()
	}
	if err := batch(f, os.Stdout, cli.AST); err != nil {
		log.Fatal(err)
	}
}
