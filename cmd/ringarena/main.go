// Command ringarena is the interactive ring-arena solver shell.
//
// It reads commands from stdin (try "help"), optionally after running a
// setup script or a one-shot command given on the command line.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"

	"github.com/yourusername/ringarena/pkg/arena"
	"github.com/yourusername/ringarena/pkg/shell"
)

func main() {
	script := flag.String("script", "", "Setup script to run before the prompt")
	oneShot := flag.String("c", "", "Run a single command and exit")
	flag.Parse()

	a := arena.NewSolvableArena()

	if *script != "" {
		out, err := shell.LoadScript(a, *script)
		if out != "" {
			fmt.Println(out)
		}
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	}

	if *oneShot != "" {
		out, err := shell.Exec(a, *oneShot)
		if out != "" {
			fmt.Println(out)
		}
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		return
	}

	fmt.Println(a)
	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			break
		}
		out, err := shell.Exec(a, scanner.Text())
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			continue
		}
		if out != "" {
			fmt.Println(out)
		}
	}
	if err := scanner.Err(); err != nil {
		fmt.Fprintf(os.Stderr, "failed to read command line: %v\n", err)
		os.Exit(1)
	}
}
