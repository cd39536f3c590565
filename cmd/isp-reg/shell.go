package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/chzyer/readline"
)

// runShell reads commands interactively until quit or EOF.
func runShell(s *Session, prompt string) error {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          prompt,
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
		AutoComplete:    s.completer(),
	})
	if err != nil {
		return fmt.Errorf("failed to create readline: %w", err)
	}
	defer rl.Close()

	s.out = rl.Stdout()
	s.printHelp()

	for {
		line, err := rl.Readline()
		if err != nil {
			if err == readline.ErrInterrupt {
				continue
			}
			return nil
		}

		err = s.Exec(strings.Fields(line))
		if errors.Is(err, errQuit) {
			return nil
		}
		if err != nil {
			fmt.Fprintf(rl.Stderr(), "Error: %v\n", err)
		}
	}
}

// runScript executes one command per input line. Blank lines and lines
// starting with '#' are skipped. The first failing command stops the script.
func runScript(s *Session, in io.Reader) error {
	scanner := bufio.NewScanner(in)
	n := 0
	for scanner.Scan() {
		n++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		err := s.Exec(strings.Fields(line))
		if errors.Is(err, errQuit) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("line %d: %s: %w", n, line, err)
		}
	}
	return scanner.Err()
}

// completer completes command names and register paths.
func (s *Session) completer() readline.AutoCompleter {
	paths := readline.PcItemDynamic(s.completePaths)
	blocks := readline.PcItemDynamic(s.completeBlocks)
	return readline.NewPrefixCompleter(
		readline.PcItem("read", paths),
		readline.PcItem("write", paths),
		readline.PcItem("lut",
			readline.PcItem("load", paths),
			paths,
		),
		readline.PcItem("dump", blocks),
		readline.PcItem("changed", blocks),
		readline.PcItem("reset", blocks),
		readline.PcItem("save"),
		readline.PcItem("restore"),
		readline.PcItem("diff"),
		readline.PcItem("blocks"),
		readline.PcItem("info"),
		readline.PcItem("ping"),
		readline.PcItem("help"),
		readline.PcItem("quit"),
	)
}

func (s *Session) completeBlocks(string) []string {
	var out []string
	for _, b := range s.inspector.Registry().Blocks() {
		out = append(out, b.Name)
	}
	return out
}

// completePaths offers "block/" for the first path segment and the field
// and table names of the block once a slash has been typed.
func (s *Session) completePaths(line string) []string {
	word := ""
	if fields := strings.Fields(line); len(fields) > 0 && !strings.HasSuffix(line, " ") {
		word = fields[len(fields)-1]
	}

	block, prefix, ok := strings.Cut(word, "/")
	if !ok {
		var out []string
		for _, name := range s.completeBlocks("") {
			out = append(out, name+"/")
		}
		return out
	}

	var out []string
	for _, name := range s.inspector.CompleteNames(block, prefix) {
		out = append(out, block+"/"+name)
	}
	return out
}
