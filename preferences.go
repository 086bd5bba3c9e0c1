package main

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"strings"
	"unicode"

	log "github.com/sirupsen/logrus"
)

type Preferences struct {
	historyFile  string
	passwordFile string
}

func loadPreferences() Preferences {
	userConfigDir, err := os.UserConfigDir()
	if err != nil {
		log.WithFields(log.Fields{"context": "failed to load config dir"}).Error(err)
		return Preferences{}
	}

	configDir := filepath.Join(userConfigDir, "mssql")
	os.Mkdir(configDir, 0750)
	configFile := filepath.Join(configDir, "pref")

	preferences := Preferences{
		historyFile:  filepath.Join(configDir, "history"),
		passwordFile: filepath.Join(configDir, ".pass"),
	}

	file, err := ioutil.ReadFile(configFile)
	if err != nil {
		if os.IsNotExist(err) {
			log.WithFields(log.Fields{"context": configFile}).Info("no preference file")
		} else {
			log.WithFields(log.Fields{"context": "read preference file", "path": configFile}).Error(err)
		}
		return preferences
	}
	return parsePreferences(configFile, string(file), preferences)
}

// key=value per line, # starts a comment
func parsePreferences(configFile string, data string, preferences Preferences) Preferences {
	lines := strings.Split(data, "\n")
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" || line[0] == '#' {
			continue
		}
		parts := strings.SplitN(line, "=", 2)
		if len(parts) != 2 {
			log.WithFields(log.Fields{"context": configFile, "line": line}).Info("invalid property")
			continue
		}

		value := stripComment(strings.TrimSpace(parts[1]))
		switch strings.TrimSpace(parts[0]) {
		case "historyFile":
			preferences.historyFile = value
		case "passwordFile":
			preferences.passwordFile = value
		default:
			log.WithFields(log.Fields{"context": configFile, "key": parts[0]}).Info("unknown preference key")
		}
	}

	return preferences
}

func stripComment(source string) string {
	if cut := strings.IndexAny(source, "#"); cut >= 0 {
		return strings.TrimRightFunc(source[:cut], unicode.IsSpace)
	}
	return source
}
