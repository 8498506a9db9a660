// Command logview follows a log file (or stdin) in the terminal, recoloring
// each line by the severity its text mentions.
//
// # Usage
//
//	logview [flags] [logfile]
//
// # Flags
//
//	-n int    maximum lines kept in memory (default 500)
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"

	tea "charm.land/bubbletea/v2"

	"go.jacobcolvin.com/qlog"
)

func main() {
	os.Exit(run0())
}

func run0() int {
	maxLines := flag.Int("n", 500, "maximum lines kept in memory")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: logview [flags] [logfile]\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
	}

	flag.Parse()

	if flag.NArg() > 1 {
		flag.Usage()

		return 1
	}

	var (
		input  io.Reader = os.Stdin
		source           = "stdin"
	)

	if flag.NArg() == 1 {
		f, err := os.Open(flag.Arg(0))
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)

			return 1
		}

		defer f.Close()

		input = f
		source = flag.Arg(0)
	}

	fan := qlog.NewFanout(qlog.WithBufferSize(*maxLines))
	sub := fan.Subscribe()

	go pump(input, fan)

	p := tea.NewProgram(newModel(sub, source, *maxLines))

	_, err := p.Run()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)

		return 1
	}

	return 0
}

// pump copies input into the fanout, one line per entry. Closing the fanout
// when the input is exhausted closes every subscription channel, which the
// model observes as end of input.
func pump(input io.Reader, fan *qlog.Fanout) {
	scanner := bufio.NewScanner(input)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	for scanner.Scan() {
		//nolint:errcheck // Fanout writes cannot fail.
		fan.Write(scanner.Bytes())
	}

	fan.Close()
}
