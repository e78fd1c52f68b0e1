package logger

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/rs/zerolog"

	"github.com/dvcrn/clientes-client/internal/env"
)

const (
	colorRed     = 31
	colorGreen   = 32
	colorYellow  = 33
	colorMagenta = 35

	colorBold = 1
)

var (
	once   sync.Once
	logger *zerolog.Logger
)

// Get returns the process-wide logger, building it from ENV and LOG_LEVEL on
// first use.
func Get() *zerolog.Logger {
	once.Do(func() {
		if err := SetLevel(env.GetOrDefault("LOG_LEVEL", "info")); err != nil {
			fmt.Fprintf(os.Stderr, "%v; defaulting to 'info'\n", err)
			zerolog.SetGlobalLevel(zerolog.InfoLevel)
		}
		logger = New(os.Stderr, isDevelopment(env.GetOrDefault("ENV", "")))
	})
	return logger
}

// SetLevel changes the global log level. Unknown names are rejected and leave
// the current level in place.
func SetLevel(level string) error {
	parsed, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(level)))
	if err != nil {
		return fmt.Errorf("invalid LOG_LEVEL %q", level)
	}
	zerolog.SetGlobalLevel(parsed)
	return nil
}

// New builds a logger writing to w: colored console output when development is
// true, JSON lines with UNIX timestamps otherwise.
func New(w io.Writer, development bool) *zerolog.Logger {
	if development {
		return newDevelopment(w)
	}
	return newProduction(w)
}

func isDevelopment(name string) bool {
	return name == "" || name == "development" || name == "dev"
}

func colorize(s interface{}, c int) string {
	return fmt.Sprintf("\x1b[%dm%v\x1b[0m", c, s)
}

func formatLevel(i interface{}) string {
	ll, ok := i.(string)
	if !ok {
		return strings.ToUpper(fmt.Sprintf("%-3.3s", i))
	}
	switch ll {
	case "trace":
		return colorize("TRC", colorMagenta)
	case "debug":
		return colorize("DBG", colorYellow)
	case "info":
		return colorize("INF", colorGreen)
	case "warn":
		return colorize("WRN", colorRed)
	case "error":
		return colorize("ERR", colorRed)
	case "fatal":
		return colorize("FTL", colorRed)
	case "panic":
		return colorize("PNC", colorRed)
	default:
		return colorize(strings.ToUpper(fmt.Sprintf("%-3.3s", ll)), colorBold)
	}
}

func newDevelopment(w io.Writer) *zerolog.Logger {
	output := zerolog.ConsoleWriter{
		Out:         w,
		TimeFormat:  "2006-01-02 15:04:05",
		FormatLevel: formatLevel,
	}

	zl := zerolog.New(output).With().Timestamp().Logger()
	return &zl
}

func newProduction(w io.Writer) *zerolog.Logger {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	zl := zerolog.New(w).With().Timestamp().Logger()
	return &zl
}
