package bootstrap

import (
	"strings"

	"go.uber.org/fx/fxevent"

	"github.com/MKhiriev/vote-monitor/internal/logger"
)

// eventLogger writes fx container events to the application logger.
// Successful steps are logged at debug level, failures at error level.
type eventLogger struct {
	logger *logger.Logger
}

func newEventLogger(log *logger.Logger) fxevent.Logger {
	return &eventLogger{logger: log}
}

func (l *eventLogger) LogEvent(event fxevent.Event) {
	switch e := event.(type) {
	case *fxevent.OnStartExecuted:
		if e.Err != nil {
			l.logger.Err(e.Err).Str("callee", e.FunctionName).Str("caller", e.CallerName).Msg("OnStart hook failed")
			return
		}
		l.logger.Debug().Str("callee", e.FunctionName).Dur("runtime", e.Runtime).Msg("OnStart hook executed")
	case *fxevent.OnStopExecuted:
		if e.Err != nil {
			l.logger.Err(e.Err).Str("callee", e.FunctionName).Str("caller", e.CallerName).Msg("OnStop hook failed")
			return
		}
		l.logger.Debug().Str("callee", e.FunctionName).Dur("runtime", e.Runtime).Msg("OnStop hook executed")
	case *fxevent.Supplied:
		if e.Err != nil {
			l.logger.Err(e.Err).Str("type", e.TypeName).Str("module", e.ModuleName).Msg("error encountered while applying options")
			return
		}
		l.logger.Debug().Str("type", e.TypeName).Str("module", e.ModuleName).Msg("supplied")
	case *fxevent.Provided:
		if e.Err != nil {
			l.logger.Err(e.Err).Str("constructor", e.ConstructorName).Str("module", e.ModuleName).Msg("error encountered while applying options")
			return
		}
		l.logger.Debug().
			Str("constructor", e.ConstructorName).
			Str("module", e.ModuleName).
			Str("types", strings.Join(e.OutputTypeNames, ", ")).
			Msg("provided")
	case *fxevent.Invoked:
		if e.Err != nil {
			l.logger.Err(e.Err).Str("function", e.FunctionName).Str("module", e.ModuleName).Str("stack", e.Trace).Msg("invoke failed")
			return
		}
		l.logger.Debug().Str("function", e.FunctionName).Str("module", e.ModuleName).Msg("invoked")
	case *fxevent.Stopping:
		l.logger.Info().Str("signal", strings.ToUpper(e.Signal.String())).Msg("received signal")
	case *fxevent.Stopped:
		if e.Err != nil {
			l.logger.Err(e.Err).Msg("stop failed")
		}
	case *fxevent.RollingBack:
		l.logger.Err(e.StartErr).Msg("start failed, rolling back")
	case *fxevent.RolledBack:
		if e.Err != nil {
			l.logger.Err(e.Err).Msg("rollback failed")
		}
	case *fxevent.Started:
		if e.Err != nil {
			l.logger.Err(e.Err).Msg("start failed")
			return
		}
		l.logger.Info().Msg("application started")
	case *fxevent.LoggerInitialized:
		if e.Err != nil {
			l.logger.Err(e.Err).Msg("custom logger initialization failed")
		}
	}
}
