package main

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/karlseguin/mssql/commands"
	"github.com/karlseguin/mssql/driver"
	"github.com/karlseguin/mssql/options"
	"github.com/karlseguin/mssql/outputs"

	"github.com/peterh/liner"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/pflag"
)

func main() {
	configureLogging(os.Getenv("MSSQL_LOG"))

	resolver := options.New(options.OSFiles{}, options.AbsPaths{})
	if err := resolver.Init(os.Args[1:]); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			fmt.Fprintf(os.Stdout, "usage: mssql [flags]\n%s", options.Usage())
			return
		}
		log.WithFields(log.Fields{"context": "parse arguments"}).Fatal(err)
	}

	info, err := resolver.ConnectionInfo()
	if err != nil {
		log.WithFields(log.Fields{"context": "load config"}).Fatal(err)
	}

	args := resolver.Args()
	format, _ := args.String("format")
	if format != "" && !outputs.Valid(format) {
		log.WithFields(log.Fields{"context": "format", "format": format}).Fatalf("valid formats are: %s", strings.Join(outputs.Formats(), ", "))
	}

	preferences := loadPreferences()
	log.WithFields(log.Fields{"context": "preferences dump"}).Infof("historyFile = %s", preferences.historyFile)
	log.WithFields(log.Fields{"context": "preferences dump"}).Infof("passwordFile = %s", preferences.passwordFile)

	prompt := liner.NewLiner()
	defer prompt.Close()
	prompt.SetCtrlCAborts(true)

	if info.Password == "" {
		info.Password = getPassword(prompt, preferences, fmt.Sprintf("%s:%s:%s:%s:", info.Server, info.Port, info.Database, info.User))
	}

	config, err := driver.NewConfig(info)
	if err != nil {
		log.WithFields(log.Fields{"context": "connection settings"}).Fatal(err)
	}

	conn, err := driver.Open(config)
	if err != nil {
		log.WithFields(log.Fields{
			"host":    config.Host,
			"context": "connect to database",
		}).Fatal(err)
	}

	context := NewContext(conn, os.Stdout, format)
	defer context.Close()

	if query, ok := args.String("query"); ok {
		run(context, query)
		if context.failed {
			// deferred closes don't run on os.Exit
			context.Close()
			prompt.Close()
			os.Exit(1)
		}
		return
	}

	repl(prompt, context, preferences)
}

func configureLogging(level string) {
	log.SetOutput(os.Stderr)
	log.SetLevel(log.ErrorLevel)
	if level == "" {
		return
	}
	parsed, err := log.ParseLevel(level)
	if err != nil {
		log.WithFields(log.Fields{"context": "MSSQL_LOG", "level": level}).Error(err)
		return
	}
	log.SetLevel(parsed)
}

// run executes a single -q argument: either a dot-command or a batch which
// is sent to the server as-is.
func run(context *Context, query string) {
	query = strings.TrimSpace(query)
	if strings.HasPrefix(query, ".") {
		command(context, query)
		return
	}
	context.Query(query)
}

func repl(prompt *liner.State, context *Context, preferences Preferences) {
	if preferences.historyFile != "" {
		if f, err := os.Open(preferences.historyFile); err == nil {
			prompt.ReadHistory(f)
			f.Close()
		}
		defer saveHistory(prompt, preferences.historyFile)
	}

	s := &state{}
	for !context.quit {
		leftPrompt := "mssql> "
		if s.Len() > 0 {
			leftPrompt = "    -> "
		}

		line, err := prompt.Prompt(leftPrompt)
		if err != nil {
			if err == liner.ErrPromptAborted {
				// ^C discards the statement being typed
				s.Reset()
				continue
			}
			if err != io.EOF {
				log.WithFields(log.Fields{"context": "Prompt"}).Error(err)
			}
			return
		}

		for _, statement := range process(context, s, line) {
			prompt.AppendHistory(statement)
		}
	}
}

func saveHistory(prompt *liner.State, path string) {
	f, err := os.Create(path)
	if err != nil {
		log.WithFields(log.Fields{"context": "save history", "path": path}).Error(err)
		return
	}
	defer f.Close()
	if _, err := prompt.WriteHistory(f); err != nil {
		log.WithFields(log.Fields{"context": "save history", "path": path}).Error(err)
	}
}

// process handles one line of interactive input and returns what should be
// added to the history. Lines starting with '.' are commands, but only when
// no statement is in progress. Everything else accumulates into a statement
// until it is terminated.
func process(context *Context, s *state, line string) []string {
	trimmed := strings.TrimSpace(line)
	if s.Len() == 0 {
		if trimmed == "" {
			return nil
		}
		if trimmed[0] == '.' {
			command(context, trimmed)
			return []string{trimmed}
		}
	}

	var executed []string
	line += "\n"
	for {
		complete, rest := s.add(line)
		if !complete {
			return executed
		}
		statement := strings.TrimSpace(s.String())
		s.Reset()
		if statement != "" {
			executed = append(executed, statement)
			context.Query(statement)
		}
		if strings.TrimSpace(rest) == "" {
			return executed
		}
		line = rest
	}
}

// Commands are processed by this client itself. They're always single-lined.
func command(context *Context, line string) {
	c, args := commands.Lookup(line)
	if c == nil {
		context.failed = true
		log.Error("invalid command, type .help for a list of commands")
		return
	}
	c.Execute(context, args)
}

// Tracks the state of our statement parsing
type state struct {
	// Accumulates the statement (one line at a time)
	bytes.Buffer

	// The literal delimiter: ' or " or ] for a [bracketed] identifier, or 0
	// if we're not in one. This is the character we're looking for to end
	// the literal. T-SQL escapes a delimiter by doubling it, which closes and
	// reopens the literal, so no extra handling is needed.
	literal byte

	// inside a /* */ comment
	comment bool
}

// We have a line from the user. A statement ends at a semi-colon which isn't
// inside a literal or comment, or at a line containing only GO. Returns
// whether a full statement is now buffered, and any input following it on
// the same line.
func (s *state) add(line string) (bool, string) {
	if s.literal == 0 && !s.comment && strings.EqualFold(strings.TrimSpace(line), "go") {
		return true, ""
	}

	for i := 0; i < len(line); i++ {
		c := line[i]

		if s.comment {
			if c == '*' && i+1 < len(line) && line[i+1] == '/' {
				s.comment = false
				i++
			}
			continue
		}

		if s.literal != 0 {
			if c == s.literal {
				s.literal = 0
			}
			continue
		}

		switch c {
		case '\'', '"':
			s.literal = c
		case '[':
			s.literal = ']'
		case '-':
			if i+1 < len(line) && line[i+1] == '-' {
				// rest of the line is a comment, semi-colons in it don't count
				s.WriteString(line)
				return false, ""
			}
		case '/':
			if i+1 < len(line) && line[i+1] == '*' {
				s.comment = true
				i++
			}
		case ';':
			s.WriteString(line[:i+1])
			return true, line[i+1:]
		}
	}

	// We don't have a full statement, add the line to our buffer as-is and get
	// more from the user
	s.WriteString(line)
	return false, ""
}

func (s *state) Reset() {
	s.Buffer.Reset()
	s.literal = 0
	s.comment = false
}

func handleDriverError(err error) {
	fields := log.Fields{"context": "query"}
	var driverErr driver.Error
	if errors.As(err, &driverErr) {
		fields["source"] = driverErr.Source
	}
	log.WithFields(fields).Error(err)
}
