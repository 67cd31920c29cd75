package middleware

import (
	"errors"
	"io"
	"time"

	"hotel-manager/controllers"
	apperrors "hotel-manager/errors"
	"hotel-manager/utils"
)

// HandlerFunc is one menu action.
type HandlerFunc func(p controllers.Prompter) error

// Logger records the name, latency and outcome of every action.
func Logger(action string, next HandlerFunc) HandlerFunc {
	return func(p controllers.Prompter) error {
		start := time.Now()
		utils.LogDebug("action=%q started", action)
		err := next(p)
		latency := time.Since(start)

		switch {
		case err == nil:
			utils.LogInfo("action=%q latency=%s ok", action, latency)
		case errors.Is(err, io.EOF):
			utils.LogInfo("action=%q latency=%s input closed", action, latency)
		default:
			utils.LogError("action=%q latency=%s code=%s err=%v", action, latency, apperrors.Code(err), err)
		}
		return err
	}
}
