package main

import (
	"bytes"
	"io/ioutil"
	"os"

	log "github.com/sirupsen/logrus"
)

type passwordPrompter interface {
	PasswordPrompt(prompt string) (string, error)
}

// getPassword is only used when neither the command line nor the config
// file supplied a password. The password file holds lines of
// server:port:database:user:password
func getPassword(prompt passwordPrompter, preferences Preferences, prefix string) string {
	file := preferences.passwordFile
	if file == "" {
		return promptPassword(prompt)
	}

	data, err := ioutil.ReadFile(file)
	if err != nil {
		if !os.IsNotExist(err) {
			log.WithFields(log.Fields{"context": "read password file", "file": file}).Error(err)
		}
		return promptPassword(prompt)
	}

	fingerprint := []byte(prefix)
	lines := bytes.Split(data, []byte("\n"))
	for i, line := range lines {
		if bytes.HasPrefix(line, fingerprint) {
			log.WithFields(log.Fields{"line": i, "file": file}).Info("Found password")
			return string(bytes.TrimSpace(line[len(fingerprint):]))
		}
	}
	log.WithFields(log.Fields{"prefix": prefix, "file": file}).Info("No password found")
	return promptPassword(prompt)
}

func promptPassword(prompt passwordPrompter) string {
	password, err := prompt.PasswordPrompt("Password: ")
	if err != nil {
		// not a terminal, or ^C: carry on without one
		log.WithFields(log.Fields{"context": "password prompt"}).Info(err)
		return ""
	}
	return password
}
