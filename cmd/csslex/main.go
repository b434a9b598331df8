// Command csslex tokenizes a CSS source file (or stdin) and prints one
// line per token. It is a thin demonstration harness over the css package's
// Cursor, not a CSS parser: it never pairs brackets or interprets selector
// grammar.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/lukehoban/csslex/css"
	"github.com/lukehoban/csslex/log"
)

func main() {
	verbose := flag.Bool("verbose", false, "log recoverable lexical errors (bad strings/URLs) to stderr")
	flag.Parse()

	if *verbose {
		log.SetLevel(log.InfoLevel)
	} else {
		log.SetLevel(log.ErrorLevel)
	}

	input, err := readInput(flag.Args())
	if err != nil {
		fmt.Fprintf(os.Stderr, "csslex: %v\n", err)
		os.Exit(1)
	}

	run(os.Stdout, input)
}

// readInput reads CSS source from the named file, or from stdin when no
// file argument is given.
func readInput(args []string) (string, error) {
	if len(args) == 0 {
		content, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("reading stdin: %w", err)
		}
		return string(content), nil
	}
	content, err := os.ReadFile(args[0])
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", args[0], err)
	}
	return string(content), nil
}

// run tokenizes input to completion, printing one line per token to w and
// logging a warning for every recovery token encountered.
func run(w io.Writer, input string) {
	c := css.NewCursor(input)
	for {
		tok := c.Next()
		if tok.Type == css.EOF {
			return
		}
		if tok.Type == css.BadString || tok.Type == css.BadUrl {
			log.Warnf("recovered from %s", tok.Type)
		}
		fmt.Fprintln(w, tok.String())
	}
}
