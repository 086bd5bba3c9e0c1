package commands

import (
	log "github.com/sirupsen/logrus"
)

type Format struct {
}

func (cmd Format) Execute(context Context, args string) {
	if args == "" {
		log.Error("usage: .format FORMAT")
		return
	}
	if err := context.Format(args); err != nil {
		log.Error(err)
		return
	}
	context.WriteString("Output format is " + args + "\n")
}
