package middleware

import (
	"fmt"
	"runtime/debug"

	"hotel-manager/controllers"
	"hotel-manager/utils"
)

// Recovery turns a panic inside an action into an error so the menu keeps running.
func Recovery(action string, next HandlerFunc) HandlerFunc {
	return func(p controllers.Prompter) (err error) {
		defer func() {
			if r := recover(); r != nil {
				utils.LogError("action=%q panic: %v\n%s", action, r, debug.Stack())
				fmt.Fprintf(p.Out(), "\n Internal error in %s, no changes were made.\n", action)
				err = fmt.Errorf("action %s panicked: %v", action, r)
			}
		}()
		return next(p)
	}
}
