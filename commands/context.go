package commands

import "strings"

type Context interface {
	WriteString(string)
	Format(string) error
	Query(statement string, args ...interface{})
	Quit()
}

type Command interface {
	Execute(context Context, arguments string)
}

var cmds = map[string]Command{
	".q":         Quit{},
	".quit":      Quit{},
	".exit":      Quit{},
	".h":         Help{},
	".help":      Help{},
	".?":         Help{},
	".f":         Format{},
	".format":    Format{},
	".tables":    Tables{},
	".databases": Databases{},
	".describe":  Describe{},
	".d":         Describe{},
}

// Lookup finds the command for a line starting with '.' and splits off its
// arguments. It returns nil for an unknown command.
func Lookup(line string) (Command, string) {
	args := ""
	cmd := strings.TrimSpace(line)
	parts := strings.SplitN(cmd, " ", 2)

	if len(parts) == 2 {
		cmd = parts[0]
		args = strings.TrimSpace(strings.TrimRight(parts[1], "; \t"))
	}
	cmd = strings.TrimRight(cmd, ";")
	return cmds[strings.ToLower(cmd)], args
}
