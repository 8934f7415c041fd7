package http

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	er "github.com/mcorbin/corbierror"
)

func jsonError(logger *slog.Logger, c echo.Context, status int, messages ...string) {
	err := c.JSON(status, er.Error{
		Messages: messages,
	})
	if err != nil {
		logger.Error(err.Error())
		c.Response().Status = http.StatusInternalServerError
	}
}

func errorHandler(logger *slog.Logger) func(err error, c echo.Context) {
	return func(err error, c echo.Context) {
		// ctx.Error() can be called with nil in a middleware
		if err == nil {
			return
		}
		errLoggedMsg := err.Error() + " on " + c.Request().Method + " " + c.Request().URL.Path
		corbiError, ok := err.(*er.Error)
		if ok {
			if corbiError.Type == er.NotFound {
				logger.Warn(errLoggedMsg)
			} else {
				logger.Error(errLoggedMsg)
			}
			finalErr, status := er.HTTPError(*corbiError)
			err := c.JSON(status, finalErr)
			if err != nil {
				logger.Error(err.Error())
				c.Response().Status = http.StatusInternalServerError
			}
			return
		}
		logger.Error(errLoggedMsg)
		echoError, ok := err.(*echo.HTTPError)
		if ok {
			if internal := echoError.Internal; internal != nil {
				if jsonTypeError, ok := internal.(*json.UnmarshalTypeError); ok {
					jsonError(logger, c, http.StatusBadRequest, fmt.Sprintf("invalid JSON payload, field %s is incorrect", jsonTypeError.Field))
					return
				}
			}
			if echoError.Code == http.StatusBadRequest && strings.Contains(echoError.Error(), "Field validation") {
				jsonError(logger, c, http.StatusBadRequest, strings.Split(fmt.Sprintf("%+v", echoError.Message), "\n")...)
				return
			}
			if echoError.Code == http.StatusMethodNotAllowed {
				jsonError(logger, c, http.StatusMethodNotAllowed, "method not allowed")
				return
			}
			if echoError.Code == http.StatusNotFound {
				jsonError(logger, c, http.StatusNotFound, "not found")
				return
			}
		}
		jsonError(logger, c, http.StatusInternalServerError, "internal server error")
	}
}
