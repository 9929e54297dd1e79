package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"io/ioutil"
	"os"
	"path/filepath"
	"strings"

	"github.com/graeme-hill/sexpr-go/lib"
	"github.com/peterh/liner"
)

const (
	appName     = "sexprtok"
	historyFile = ".sexprtok_history"
	prompt      = "tok> "
)

const (
	exitOK        = 0
	exitError     = 1
	exitTruncated = 2
)

type options struct {
	eval   string
	dir    string
	db     string
	asJSON bool
}

func main() {
	var opts options
	flag.StringVar(&opts.eval, "e", "", "Tokenize the given text and exit")
	flag.StringVar(&opts.dir, "dir", "", "Tokenize every .sexp file in a directory")
	flag.StringVar(&opts.db, "db", "", "Postgres connection string to record -dir scans in")
	flag.BoolVar(&opts.asJSON, "json", false, "Print tokens as JSON")
	flag.Parse()

	args := flag.Args()

	switch {
	case opts.eval != "":
		os.Exit(runText(os.Stdout, opts, "-e", opts.eval))
	case opts.dir != "":
		os.Exit(runDir(os.Stdout, opts))
	case len(args) > 0:
		os.Exit(runFiles(os.Stdout, opts, args))
	default:
		os.Exit(runREPL(opts))
	}
}

func runFiles(w io.Writer, opts options, paths []string) int {
	status := exitOK
	for _, path := range paths {
		bytes, err := ioutil.ReadFile(path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s: cannot read %s: %v\n", appName, path, err)
			return exitError
		}
		text := strings.TrimRight(string(bytes), "\r\n")
		if code := runText(w, opts, path, text); code > status {
			status = code
		}
	}
	return status
}

func runDir(w io.Writer, opts options) int {
	sources, err := lib.ReadSourceDir(opts.dir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", appName, err)
		return exitError
	}

	status := exitOK
	for _, src := range sources {
		fmt.Fprintf(w, "# %s\n", src.Name)
		if code := runText(w, opts, src.Name, src.Text); code > status {
			status = code
		}
	}

	if opts.db != "" {
		if err := lib.RecordScans(context.Background(), opts.db, sources); err != nil {
			fmt.Fprintf(os.Stderr, "%s: %v\n", appName, err)
			return exitError
		}
	}
	return status
}

func runText(w io.Writer, opts options, name string, text string) int {
	res := lib.Scan(text)
	if err := printTokens(w, res.Tokens, opts.asJSON); err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", appName, err)
		return exitError
	}
	if !res.Complete {
		fmt.Fprintf(os.Stderr, "%s: %s: stopped at %q (byte %d)\n", appName, name, res.Stop, res.Offset)
		return exitTruncated
	}
	return exitOK
}

func printTokens(w io.Writer, tokens []lib.Token, asJSON bool) error {
	if asJSON {
		if err := lib.MarshalTokens(w, tokens, true); err != nil {
			return err
		}
		_, err := fmt.Fprintln(w)
		return err
	}
	for _, tok := range tokens {
		if _, err := fmt.Fprintln(w, tok); err != nil {
			return err
		}
	}
	return nil
}

func runREPL(opts options) int {
	home, _ := os.UserHomeDir()
	histPath := filepath.Join(home, historyFile)

	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	if f, err := os.Open(histPath); err == nil {
		_, _ = ln.ReadHistory(f)
		_ = f.Close()
	}

	for {
		line, err := ln.Prompt(prompt)
		if err == liner.ErrPromptAborted {
			continue
		}
		if err != nil {
			// EOF
			fmt.Println()
			break
		}
		if strings.TrimSpace(line) == "" {
			continue
		}
		ln.AppendHistory(line)
		runText(os.Stdout, opts, "input", line)
	}

	if f, err := os.Create(histPath); err == nil {
		_, _ = ln.WriteHistory(f)
		_ = f.Close()
	}
	return exitOK
}
