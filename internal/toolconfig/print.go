package toolconfig

import (
	"fmt"
	"io"
	"strings"
)

// Print writes a human readable dump of every tool and environment entry.
// Nothing is written when a tool record has no path.
func (l *Loader) Print(w io.Writer) error {
	var b strings.Builder

	b.WriteString("=== Tool Configuration ===\n")
	fmt.Fprintf(&b, "\nProject Root: %s\n", l.root)
	fmt.Fprintf(&b, "Config File: %s\n", l.path)

	b.WriteString("\nTools:\n")
	for _, name := range l.ToolNames() {
		path, err := l.ToolPath(name)
		if err != nil {
			return err
		}
		fmt.Fprintf(&b, "  %s: %s\n", strings.ToUpper(name), path)
	}

	b.WriteString("\nEnvironment Variables:\n")
	for _, name := range l.EnvNames() {
		fmt.Fprintf(&b, "  %s: %s\n", name, l.cfg.Environment[name])
	}
	b.WriteString("\n")

	_, err := io.WriteString(w, b.String())
	return err
}

// ExampleCommands assembles sample invocations from the configured tool paths.
// It fails on the first tool that is not configured.
func (l *Loader) ExampleCommands() ([]string, error) {
	examples := []struct {
		label  string
		lookup func() (string, error)
		args   string
	}{
		{"Maven build", l.Maven, "clean package"},
		{"Java run", l.Java, "-version"},
		{"MySQL connect", l.MySQL, "-u root -p"},
		{"GitHub CLI", l.GitHubCLI, "repo view"},
	}

	out := make([]string, 0, len(examples))
	for _, ex := range examples {
		path, err := ex.lookup()
		if err != nil {
			return nil, err
		}
		out = append(out, fmt.Sprintf("%s: %s %s", ex.label, path, ex.args))
	}
	return out, nil
}
