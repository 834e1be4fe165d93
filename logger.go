package main

import (
	"io"

	log "github.com/sirupsen/logrus"

	"github.com/a-bouts/nav-geo/latlon"
)

type Logger struct {
	*log.Entry
}

func newLogger(out io.Writer, debug bool) *Logger {
	l := log.New()
	l.SetOutput(out)
	l.SetFormatter(&log.TextFormatter{DisableTimestamp: true})
	if debug {
		l.SetLevel(log.DebugLevel)
	}
	return &Logger{Entry: l.WithField("app", "nav-geo")}
}

func (l *Logger) withPlace(role string, p latlon.LatLon) *log.Entry {
	return l.WithFields(log.Fields{
		"role": role,
		"name": p.Name,
		"lat":  p.Lat,
		"lon":  p.Lon,
	})
}
