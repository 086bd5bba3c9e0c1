package options

import (
	"bytes"
	"encoding/json"
	"strconv"
)

const DEFAULT_CONFIG_FILE = "mssql-conf.json"

// The on-disk config. Every key is optional. Note that the password is
// stored under "pass", same as the command line flag. Values of the wrong
// type are treated as absent rather than failing the whole file.
type ConfigFile struct {
	Server     looseValue `json:"server"`
	User       looseValue `json:"user"`
	Pass       looseValue `json:"pass"`
	Database   looseValue `json:"database"`
	Port       looseValue `json:"port"`
	Timeout    looseValue `json:"timeout"`
	TDSVersion looseValue `json:"tdsVersion"`
	Encrypt    looseBool  `json:"encrypt"`
}

// Everything is a string on the command line, but people write ports and
// timeouts as numbers in the config file. Scalars keep their literal text,
// null, objects and arrays are absent.
type looseValue string

func (v *looseValue) UnmarshalJSON(data []byte) error {
	*v = ""
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return nil
	}
	switch data[0] {
	case '"':
		var s string
		if json.Unmarshal(data, &s) == nil {
			*v = looseValue(s)
		}
	case 't', 'f':
		*v = looseValue(data)
	case '-', '0', '1', '2', '3', '4', '5', '6', '7', '8', '9':
		var n json.Number
		if json.Unmarshal(data, &n) == nil {
			*v = looseValue(n.String())
		}
	}
	return nil
}

// true, or a string such as "true" or "1"
type looseBool bool

func (b *looseBool) UnmarshalJSON(data []byte) error {
	var value looseValue
	value.UnmarshalJSON(data)
	parsed, err := strconv.ParseBool(string(value))
	*b = looseBool(err == nil && parsed)
	return nil
}

func parseConfigFile(data []byte) (ConfigFile, error) {
	var config ConfigFile
	if len(bytes.TrimSpace(data)) == 0 {
		return config, nil
	}
	err := json.Unmarshal(data, &config)
	return config, err
}
