package options

import (
	"fmt"
	"io/ioutil"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/pflag"
)

const (
	DEFAULT_SERVER = "localhost"
	DEFAULT_USER   = "sa"
)

// Parsed command line values, keyed by the canonical flag name. Only flags
// which were actually given are present. String flags hold a string, -e
// holds true.
type RawArgs map[string]interface{}

func (a RawArgs) String(name string) (string, bool) {
	value, ok := a[name].(string)
	return value, ok
}

func (a RawArgs) Bool(name string) bool {
	value, _ := a[name].(bool)
	return value
}

type ConnectionInfo struct {
	User     string            `json:"user,omitempty"`
	Password string            `json:"password,omitempty"`
	Server   string            `json:"server,omitempty"`
	Database string            `json:"database,omitempty"`
	Port     string            `json:"port,omitempty"`
	Timeout  string            `json:"timeout,omitempty"`
	Options  ConnectionOptions `json:"options"`
}

type ConnectionOptions struct {
	TDSVersion string `json:"tdsVersion,omitempty"`
	Encrypt    bool   `json:"encrypt"`
}

// Resolver merges the command line, an optional JSON config file and the
// built-in defaults, in that order of precedence.
type Resolver struct {
	files Files
	paths PathResolver
	args  RawArgs
}

func New(files Files, paths PathResolver) *Resolver {
	return &Resolver{
		files: files,
		paths: paths,
		args:  RawArgs{},
	}
}

// Init parses the command line. Unknown flags and positional arguments are
// ignored. A config file explicitly named with -c must exist.
func (r *Resolver) Init(argv []string) error {
	fs := newFlagSet()
	if err := fs.Parse(argv); err != nil {
		return err
	}

	args := RawArgs{}
	for _, f := range flags {
		if !fs.Changed(f.name) {
			continue
		}
		if f.kind == boolFlag {
			// presence-only: --encrypt=false is the same as leaving it out
			if on, _ := fs.GetBool(f.name); on {
				args[f.name] = true
			}
			continue
		}
		value, _ := fs.GetString(f.name)
		args[f.name] = value
	}

	if path, ok := args.String("config"); ok && !r.files.Exists(path) {
		return ConfigNotFound{Path: path}
	}

	r.args = args
	return nil
}

func (r *Resolver) Args() RawArgs {
	args := make(RawArgs, len(r.args))
	for k, v := range r.args {
		args[k] = v
	}
	return args
}

// ConnectionInfo resolves the connection settings. The config file is read
// on every call, a missing implicit config file is the same as an empty one.
func (r *Resolver) ConnectionInfo() (ConnectionInfo, error) {
	config, err := r.loadConfig()
	if err != nil {
		return ConnectionInfo{}, err
	}

	return ConnectionInfo{
		User:     r.pick("user", config.User, DEFAULT_USER),
		Password: r.pick("pass", config.Pass, ""),
		Server:   r.pick("server", config.Server, DEFAULT_SERVER),
		Database: r.pick("database", config.Database, ""),
		Port:     r.pick("port", config.Port, ""),
		Timeout:  r.pick("timeout", config.Timeout, ""),
		Options: ConnectionOptions{
			TDSVersion: r.pick("tdsVersion", config.TDSVersion, ""),
			Encrypt:    r.args.Bool("encrypt") || bool(config.Encrypt),
		},
	}, nil
}

func (r *Resolver) pick(name string, configured looseValue, fallback string) string {
	if value, ok := r.args.String(name); ok {
		return value
	}
	if configured != "" {
		return string(configured)
	}
	return fallback
}

func (r *Resolver) loadConfig() (ConfigFile, error) {
	name, ok := r.args.String("config")
	if !ok {
		name = DEFAULT_CONFIG_FILE
	}

	path, err := r.paths.Resolve(name)
	if err != nil {
		return ConfigFile{}, fmt.Errorf("resolve config file '%s': %w", name, err)
	}

	if !r.files.Exists(path) {
		log.WithFields(log.Fields{"context": "config file", "path": path}).Info("no config file")
		return ConfigFile{}, nil
	}

	data, err := r.files.ReadFile(path)
	if err != nil {
		return ConfigFile{}, fmt.Errorf("read config file '%s': %w", path, err)
	}

	config, err := parseConfigFile(data)
	if err != nil {
		return ConfigFile{}, fmt.Errorf("parse config file '%s': %w", path, err)
	}
	log.WithFields(log.Fields{"context": "config file", "path": path}).Info("loaded config file")
	return config, nil
}

// Usage describes the supported flags
func Usage() string {
	return newFlagSet().FlagUsages()
}

func newFlagSet() *pflag.FlagSet {
	fs := pflag.NewFlagSet("mssql", pflag.ContinueOnError)
	fs.ParseErrorsWhitelist.UnknownFlags = true
	fs.SetOutput(ioutil.Discard)
	for _, f := range flags {
		switch f.kind {
		case boolFlag:
			fs.BoolP(f.name, f.short, false, f.help)
		default:
			fs.StringP(f.name, f.short, "", f.help)
		}
	}
	return fs
}
