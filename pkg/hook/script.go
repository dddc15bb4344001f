package hook

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/blairham/hooksmith/pkg/config"
)

const (
	// Shebang is the interpreter line of every generated hook
	Shebang = "#!/bin/sh"
	// Marker identifies scripts written by hooksmith
	Marker = "# hooksmith: managed hook, regenerate with 'hooksmith install'"

	// Each command becomes a brace group whose status is checked on the
	// closing line, so a failure anywhere in an && or || list stops the script
	groupOpen  = "{ "
	groupClose = "} || exit $?"

	// markerSearchLines bounds how far into a file IsManaged looks
	markerSearchLines = 5
)

// scriptHeader is everything Render writes before the first command
var scriptHeader = []string{Shebang, Marker}

// Render generates the hook script for def. The output depends only on the
// definition, so rendering the same definition twice yields identical bytes.
//
// Git passes its hook arguments to the script, where they are the positional
// parameters of every command line ($1, "$@"). The script stops with the
// status of the first command that exits non-zero, as Runner.Run does.
func Render(def config.HookDefinition) string {
	var b strings.Builder
	for _, line := range scriptHeader {
		b.WriteString(line)
		b.WriteByte('\n')
	}
	for _, command := range def.Commands {
		b.WriteString(groupOpen)
		b.WriteString(command)
		b.WriteByte('\n')
		b.WriteString(groupClose)
		b.WriteByte('\n')
	}
	return b.String()
}

// IsManaged reports whether content carries the hooksmith marker near the
// top of the file. Hooks without it belong to the user or another tool.
// Scripts written by older releases carry the same marker.
func IsManaged(content []byte) bool {
	scanner := bufio.NewScanner(strings.NewReader(string(content)))
	for i := 0; i < markerSearchLines && scanner.Scan(); i++ {
		if strings.TrimRight(scanner.Text(), "\r") == Marker {
			return true
		}
	}
	return false
}

// ParseScript returns the command lines of a script produced by Render,
// verbatim and in order. It fails when the content does not start with the
// hooksmith header or a command is not wrapped the way Render wraps it.
func ParseScript(content string) ([]string, error) {
	rest := content
	for _, want := range scriptHeader {
		line, tail, found := strings.Cut(rest, "\n")
		if !found || line != want {
			return nil, fmt.Errorf("not a hooksmith script: expected %q", want)
		}
		rest = tail
	}

	commands := []string{}
	if rest == "" {
		return commands, nil
	}
	if !strings.HasSuffix(rest, "\n") {
		return nil, fmt.Errorf("not a hooksmith script: missing trailing newline")
	}

	lines := strings.Split(strings.TrimSuffix(rest, "\n"), "\n")
	if len(lines)%2 != 0 {
		return nil, fmt.Errorf("not a hooksmith script: unterminated command %q", lines[len(lines)-1])
	}
	for i := 0; i < len(lines); i += 2 {
		command, ok := strings.CutPrefix(lines[i], groupOpen)
		if !ok || lines[i+1] != groupClose {
			return nil, fmt.Errorf("not a hooksmith script: unexpected line %q", lines[i])
		}
		commands = append(commands, command)
	}
	return commands, nil
}
