package logging

import (
	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

// New builds the error logger: JSON entries appended to a rolling log
// file so failed operations can be diagnosed after the fact.
func New(path string) *logrus.Logger {
	log := logrus.New()
	log.SetFormatter(&logrus.JSONFormatter{})
	log.SetLevel(logrus.ErrorLevel)
	log.SetOutput(&lumberjack.Logger{
		Filename:   path,
		MaxSize:    10, // megabytes
		MaxBackups: 3,
		MaxAge:     28, // days
	})
	return log
}

// LogError records a failed operation with the offending input and the
// underlying error.
func LogError(log *logrus.Logger, operation string, input any, err error) {
	if log == nil {
		return
	}
	fields := logrus.Fields{"operation": operation}
	if input != nil {
		fields["input"] = input
	}
	log.WithFields(fields).Error(err.Error())
}
