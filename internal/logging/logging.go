package logging

import (
	"os"

	"github.com/rs/zerolog"
)

// New はアプリ全体で共有するロガーを作る。
// devではコンソール向けの読みやすい出力、それ以外はJSON。
func New(env string) zerolog.Logger {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix

	if env == "dev" {
		out := zerolog.ConsoleWriter{Out: os.Stderr}
		return zerolog.New(out).With().Timestamp().Logger()
	}

	return zerolog.New(os.Stderr).With().Timestamp().Logger()
}
