package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/peterh/liner"
	"github.com/takoeight0821/lumen/driver"
	"github.com/takoeight0821/lumen/utils"
)

func main() {
	const (
		inputUsage = "input file or directory"
		dumpUsage  = "what to print for each file: tokens, ast or none"
		jobsUsage  = "number of files parsed in parallel (0 means GOMAXPROCS)"
		watchUsage = "re-parse the input whenever it changes"
		statsUsage = "print file and node counts after parsing"
	)
	var (
		inputPath string
		dump      string
		jobs      int
		watch     bool
		stats     bool
	)
	flag.StringVar(&inputPath, "input", "", inputUsage)
	flag.StringVar(&inputPath, "i", "", inputUsage+" (shorthand)")
	flag.StringVar(&dump, "dump", "ast", dumpUsage)
	flag.IntVar(&jobs, "j", 0, jobsUsage)
	flag.BoolVar(&watch, "watch", false, watchUsage)
	flag.BoolVar(&watch, "w", false, watchUsage+" (shorthand)")
	flag.BoolVar(&stats, "stats", false, statsUsage)

	flag.Parse()

	switch dump {
	case "tokens", "ast", "none":
	default:
		fmt.Fprintf(os.Stderr, "invalid -dump %q: want tokens, ast or none\n", dump)
		os.Exit(2)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	var err error
	switch {
	case inputPath == "":
		err = RunPrompt()
	case watch:
		err = RunWatch(ctx, inputPath, dump, jobs)
	default:
		err = RunFiles(ctx, inputPath, dump, jobs, stats)
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}

var history = filepath.Join(xdg.DataHome, "lumen", ".lumen_history")

func RunPrompt() error {
	line := liner.NewLiner()
	defer func() {
		if err := os.MkdirAll(filepath.Dir(history), os.ModePerm); err != nil {
			fmt.Fprintln(os.Stderr, err)
		}
		if f, err := os.Create(history); err == nil {
			defer f.Close()
			if _, err := line.WriteHistory(f); err != nil {
				fmt.Fprintln(os.Stderr, err)
			}
		}
		line.Close()
	}()

	if f, err := os.Open(history); err == nil {
		defer f.Close()
		if _, err := line.ReadHistory(f); err != nil {
			fmt.Fprintln(os.Stderr, err)
		}
	}

	for {
		input, err := line.Prompt("> ")
		if err != nil {
			if err == liner.ErrPromptAborted {
				return nil
			}
			return err
		}
		line.AppendHistory(input)
		unit, err := driver.ParseLine(input)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			continue
		}
		if unit.File != nil {
			for _, decl := range unit.File.Decls {
				fmt.Println(decl)
			}
		}
		for _, stmt := range unit.Stmts {
			fmt.Println(stmt)
		}
	}
}

// RunFiles parses the file at path, or every source file below it, and prints
// the requested dump and all diagnostics.
func RunFiles(ctx context.Context, path, dump string, jobs int, stats bool) error {
	paths, err := utils.FindSourceFiles(path)
	if err != nil {
		return err
	}

	units, err := driver.ParseFiles(ctx, paths, driver.Options{Jobs: jobs})
	if err != nil {
		return err
	}

	runner := driver.NewPassRunner()
	runner.AddPass(driver.SpanCheck{})
	counts := &driver.Stats{}
	if stats {
		runner.AddPass(counts)
	}
	for _, unit := range units {
		report(unit, dump)
		if unit.Err() != nil {
			continue
		}
		if _, err := runner.Run(unit.File); err != nil {
			log.Panicf("%s: %v", unit.Path, err)
		}
	}
	if stats {
		fmt.Fprintf(os.Stderr, "%d files, %d nodes\n", counts.Files, counts.Nodes)
	}

	return driver.Errs(units)
}

// RunWatch parses the input once and then again on every change until ctx is
// cancelled.
func RunWatch(ctx context.Context, path, dump string, jobs int) error {
	if err := RunFiles(ctx, path, dump, jobs, false); err != nil {
		fmt.Fprintln(os.Stderr, err)
	}

	paths, err := utils.FindSourceFiles(path)
	if err != nil {
		return err
	}
	w, err := driver.NewWatcher(paths)
	if err != nil {
		return err
	}
	defer w.Close()

	return w.Run(ctx, func(unit *driver.Unit) {
		fmt.Printf("== %s\n", unit.Path)
		report(unit, dump)
	})
}

func report(unit *driver.Unit, dump string) {
	switch dump {
	case "tokens":
		for _, t := range unit.Tokens {
			fmt.Println(t)
		}
	case "ast":
		fmt.Println(unit.File)
	}
	for _, d := range unit.Sink.Diagnostics() {
		fmt.Fprintln(os.Stderr, d.Error())
	}
}
