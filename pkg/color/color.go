package color

import (
	"os"

	"github.com/muesli/termenv"
)

// ANSI palette indices
const (
	Red       = "1"
	Green     = "2"
	Yellow    = "3"
	Cyan      = "6"
	Gray      = "8"
	BrightRed = "9"
)

var output = newOutput(!termenv.EnvNoColor())

func newOutput(enable bool) *termenv.Output {
	if !enable {
		return termenv.NewOutput(os.Stdout, termenv.WithProfile(termenv.Ascii))
	}
	return termenv.NewOutput(os.Stdout)
}

func EnableColor(enable bool) {
	output = newOutput(enable)
}

func IsColorEnabled() bool {
	return output.Profile != termenv.Ascii
}

func Colorize(color, text string) string {
	return output.String(text).Foreground(output.Color(color)).String()
}

func BrightRedText(text string) string {
	return Colorize(BrightRed, text)
}

func GrayText(text string) string {
	return Colorize(Gray, text)
}

func BoldText(text string) string {
	return output.String(text).Bold().String()
}

// Error formats an immediate-mode failure as "Error: <message>"
func Error(message string) string {
	return BrightRedText("Error:") + " " + message
}
