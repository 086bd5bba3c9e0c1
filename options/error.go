package options

import "fmt"

// ConfigNotFound is returned by Init when the config file named with -c
// does not exist. The message is relied upon by scripts, keep it stable.
type ConfigNotFound struct {
	Path string
}

func (e ConfigNotFound) Error() string {
	return fmt.Sprintf("config file '%s' does not exist.", e.Path)
}
