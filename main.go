package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"github.com/typesmith/json2type/corpus"
	"github.com/typesmith/json2type/logging"
	"github.com/typesmith/json2type/render"
	"github.com/typesmith/json2type/synth"
)

func main() {
	if err := run(); err != nil {
		slog.Error("inference failed", "err", err)
		os.Exit(1)
	}
}

func run() error {
	_ = godotenv.Load()

	fname := flag.String("r", "", "Filename to read from, overrides stdin")
	target := flag.String("t", getEnv("J2T_TARGET", "python"), "Render target: python, go or openapi")
	limit := flag.Int("n", getEnvInt("J2T_LITERAL_LIMIT", synth.DefaultLiteralLimit), "Max distinct values for literal collapse")
	rootName := flag.String("name", getEnv("J2T_ROOT_NAME", "Root"), "Name of the root record type")
	strict := flag.Bool("strict", false, "Fail on merge conflicts instead of widening")
	level := flag.String("log", getEnv("J2T_LOG", "info"), "Log level")
	flag.Parse()

	cleanup, err := logging.Setup(*level, getEnv("J2T_LOG_FILE", ""))
	if err != nil {
		return fmt.Errorf("could not init logging: %w", err)
	}
	defer cleanup()

	var in io.Reader = os.Stdin
	if *fname != "" {
		f, err := os.Open(*fname)
		if err != nil {
			return err
		}
		defer f.Close()
		in = f
	}

	elem, stats, err := corpus.Collect(in, corpus.Options{
		Strict:       *strict,
		MaxLines:     getEnvInt("J2T_MAX_LINES", 0),
		MaxLineBytes: getEnvInt("J2T_MAX_LINE_BYTES", 0),
	})
	if err != nil {
		return err
	}
	slog.Debug("corpus read", "lines", stats.Lines, "records", stats.Records, "bytes", stats.Bytes)

	res := synth.Synthesize(elem, synth.Options{
		LiteralLimit: *limit,
		RootName:     *rootName,
	})

	out, err := render.Render(res, render.Target(*target))
	if err != nil {
		return err
	}

	_, err = os.Stdout.Write(out)
	return err
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
