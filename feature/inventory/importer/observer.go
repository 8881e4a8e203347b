package importer

import "go.uber.org/zap"

// Observer receives advisory progress messages. It must not mutate parser input.
type Observer interface {
	OnProgress(message string)
}

// ObserverFunc adapts a function to Observer. A nil func is a no-op.
type ObserverFunc func(message string)

// OnProgress implements Observer.
func (f ObserverFunc) OnProgress(message string) {
	if f != nil {
		f(message)
	}
}

// LogObserver writes progress messages at debug level.
func LogObserver(l *zap.Logger) Observer {
	return ObserverFunc(func(message string) {
		l.Debug(message)
	})
}

func notify(o Observer, message string) {
	if o != nil {
		o.OnProgress(message)
	}
}
