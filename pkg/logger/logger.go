package logger

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Options 日志初始化参数
type Options struct {
	Level  string // debug/info/warn/error
	Format string // console/json
}

// Init 初始化全局zerolog Logger
// console格式用于本地开发，json格式用于生产环境日志采集
func Init(opts Options) {
	InitWithWriter(opts, os.Stderr)
}

// InitWithWriter 输出到指定Writer（测试用）
func InitWithWriter(opts Options, w io.Writer) {
	zerolog.TimeFieldFormat = time.RFC3339Nano

	level, err := zerolog.ParseLevel(opts.Level)
	if err != nil || opts.Level == "" {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)

	out := w
	if opts.Format == "console" {
		out = zerolog.ConsoleWriter{Out: w, TimeFormat: time.DateTime}
	}
	log.Logger = zerolog.New(out).With().Timestamp().Str("service", "libraryapi").Logger()
}
