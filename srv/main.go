package main

import (
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"github.com/typesmith/json2type/corpus"
	"github.com/typesmith/json2type/logging"
	"github.com/typesmith/json2type/synth"
)

func main() {
	if err := run(); err != nil {
		slog.Error("server failed", "err", err)
		os.Exit(1)
	}
}

func run() error {
	_ = godotenv.Load()

	host := flag.String("h", getEnv("J2T_HOST", ""), "the host to listen on")
	port := flag.String("p", getEnv("J2T_PORT", "8080"), "the port to listen on")
	level := flag.String("log", getEnv("J2T_LOG", "info"), "log level")
	flag.Parse()

	cleanup, err := logging.Setup(*level, getEnv("J2T_LOG_FILE", ""))
	if err != nil {
		return fmt.Errorf("could not init logging: %w", err)
	}
	defer cleanup()

	s := newServer(
		corpus.Options{
			MaxLines:     getEnvInt("J2T_MAX_LINES", 0),
			MaxLineBytes: getEnvInt("J2T_MAX_LINE_BYTES", 0),
		},
		getEnvInt("J2T_LITERAL_LIMIT", synth.DefaultLiteralLimit),
		int64(getEnvInt("J2T_MAX_BODY_BYTES", 64*1024*1024)),
	)

	addr := fmt.Sprintf("%s:%s", *host, *port)
	slog.Info("listening", "addr", addr)
	return http.ListenAndServe(addr, s.router)
}

func getEnv(key, fallback string) string {
	if val, ok := os.LookupEnv(key); ok {
		return val
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if val, ok := os.LookupEnv(key); ok {
		if i, err := strconv.Atoi(val); err == nil {
			return i
		}
	}
	return fallback
}
