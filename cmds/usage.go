package cmds

import (
	"fmt"
	"maps"
	"os"
	"slices"
	"strings"
)

func (p *Executor) PrintUsage() {
	fmt.Fprintf(os.Stderr, "commands:\n")
	p.printCommands("  ", p.commands)
}

func (p *Executor) printCommands(indent string, commands map[string]*Command) {
	printed := make(map[*Command]bool)
	for _, name := range slices.Sorted(maps.Keys(commands)) {
		command := commands[name]
		if command == nil || printed[command] {
			continue
		}
		printed[command] = true

		line := indent + name
		if len(command.Aliases) > 0 {
			line += " (" + strings.Join(command.Aliases, ", ") + ")"
		}
		if command.Description != "" {
			line += "\n" + indent + "  " + command.Description
		}
		fmt.Fprintln(os.Stderr, line)

		if len(command.Subs) > 0 {
			p.printCommands(indent+"  ", command.Subs)
		}
	}
}
