package golurk

import "github.com/go-logr/logr"

// Discards everything until a logger is set
var internalLogger = logr.Discard()

func SetInternalLogger(logger logr.Logger) {
	internalLogger = logger.WithName("golurk")
}

var (
	damageLogger = func() logr.Logger {
		return internalLogger.WithName("damage")
	}
	modifierLogger = func() logr.Logger {
		return internalLogger.WithName("modifiers")
	}
	targetLogger = func() logr.Logger {
		return internalLogger.WithName("targeting")
	}
	composerLogger = func() logr.Logger {
		return internalLogger.WithName("composer")
	}
	dataLogger = func() logr.Logger {
		return internalLogger.WithName("data")
	}
)
