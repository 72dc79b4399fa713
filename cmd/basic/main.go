package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/charmbracelet/log"

	"lnbasic/internal/logger"
	"lnbasic/internal/repl"
	"lnbasic/pkg/color"
)

// Main entry point for the line-numbered BASIC interpreter.
func main() {
	options := repl.REPL{}

	flag.BoolVar(&options.Help, "h", false, "Show help")
	flag.BoolVar(&options.Verbose, "v", false, "Verbose mode")
	flag.BoolVar(&options.NoColor, "n", false, "No color")
	flag.BoolVar(&options.RunAndExit, "r", false, "Run the program file and exit")
	flag.BoolVar(&options.Dump, "d", false, "Dump interpreter state on exit")
	flag.IntVar(&options.MaxSteps, "s", 0, "Maximum lines executed per RUN (0 = unlimited)")
	flag.IntVar(&options.MaxDepth, "depth", 0, "Maximum FOR/GOSUB nesting (0 = unlimited)")

	flag.Parse()
	args := flag.Args()

	logger.Init(options.Verbose, options.NoColor)
	if options.Help {
		fmt.Printf("Usage: %s [options] [program]\n", os.Args[0])
		fmt.Println("Options:")
		flag.PrintDefaults()
		return
	}

	if options.NoColor {
		color.EnableColor(false)
	}

	if len(args) > 0 {
		options.SourceFile = args[0]
	}

	if options.RunAndExit && options.SourceFile == "" {
		log.Fatal("No program file provided", "help", fmt.Sprintf("%s -h", os.Args[0]))
	}

	if err := options.Start(); err != nil {
		log.Fatal("Interpreter failed", "error", err)
	}
}
