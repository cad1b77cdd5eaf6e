package helpers

import (
	"fmt"
	"os"
	"strings"

	"github.com/abhissng/versename/utils/constant"
	"github.com/abhissng/versename/utils/types"
)

// IsEmpty reports whether the given string is empty after trimming whitespace.
func IsEmpty(s string) bool {
	return strings.TrimSpace(s) == ""
}

// GetEnvironment returns the runtime environment (e.g. "dev", "prod").
func GetEnvironment() string {
	return os.Getenv(constant.Environment)
}

// IsProdEnvironment reports whether the service is running in production mode.
func IsProdEnvironment() bool {
	return strings.EqualFold(GetEnvironment(), "prod")
}

// GetServiceName returns the configured service name or the default one.
func GetServiceName() string {
	if name := os.Getenv(constant.ServiceName); !IsEmpty(name) {
		return name
	}
	return constant.DefaultServiceName
}

// FetchErrorStrings converts a slice of errors into their string representations.
func FetchErrorStrings(errs []error) []string {
	out := make([]string, 0, len(errs))
	for _, err := range errs {
		if err != nil {
			out = append(out, err.Error())
		}
	}
	return out
}

// FetchErrorStack joins the error strings of the given causes into one stack line.
func FetchErrorStack(errs []error) string {
	return strings.Join(FetchErrorStrings(errs), ": ")
}

// Println prints a colored console line for the given log mode.
// It is meant for bootstrap paths where the structured logger is not ready yet.
func Println(mode types.LogMode, args ...any) {
	color := constant.GreenColor
	switch mode {
	case constant.ERROR:
		color = constant.RedColor
	case constant.WARN:
		color = constant.YellowColor
	case constant.DEBUG:
		color = constant.BlueColor
	}
	fmt.Println(color + strings.ToUpper(mode.String()) + constant.ResetColor + " " + fmt.Sprint(args...))
}
