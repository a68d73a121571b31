package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"runtime/debug"
	"syscall"
	"time"

	"github.com/lixenwraith/hawktui/audio"
	"github.com/lixenwraith/hawktui/config"
	"github.com/lixenwraith/hawktui/screen"
	"github.com/lixenwraith/hawktui/telemetry"
	"github.com/lixenwraith/hawktui/terminal"
)

var (
	configFlag = flag.String("config", "", "Path to a TOML config file")
	debugFlag  = flag.Bool("debug", false, "Write a debug log to logs/hawktui.log")
	audioFlag  = flag.Bool("audio", false, "Play a tone on mouse press and release")
	mouseFlag  = flag.String("mouse", config.MouseMotion, "Mouse reporting: none, click, drag, motion")
	traceFlag  = flag.String("trace", "", "OTLP/HTTP endpoint for trace export")
	ttyFlag    = flag.String("tty", "", "Run on this tty device instead of the controlling terminal")
)

func main() {
	os.Exit(run())
}

// loadConfig reads the config file and applies flags given on the command line
func loadConfig() (config.Config, error) {
	cfg, err := config.Load(*configFlag)
	if err != nil {
		return cfg, err
	}
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "debug":
			cfg.Debug = *debugFlag
		case "audio":
			cfg.Audio = *audioFlag
		case "mouse":
			cfg.Mouse = *mouseFlag
		case "trace":
			cfg.TraceEndpoint = *traceFlag
		}
	})
	return cfg, cfg.Validate()
}

func newDriver() (*terminal.TcellDriver, error) {
	if *ttyFlag != "" {
		return terminal.NewTcellOnDevice(*ttyFlag)
	}
	return terminal.NewTcell()
}

func run() (code int) {
	flag.Parse()

	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "hawktui: %v\n", err)
		return 2
	}

	if f := setupLogging(cfg.Debug); f != nil {
		defer f.Close()
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	tp, err := telemetry.Setup(ctx, cfg.TraceEndpoint)
	if err != nil {
		fmt.Fprintf(os.Stderr, "hawktui: %v\n", err)
		return 1
	}
	defer func() {
		sctx, scancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer scancel()
		if err := tp.Shutdown(sctx); err != nil {
			log.Printf("telemetry shutdown: %v", err)
		}
	}()

	drv, err := newDriver()
	if err != nil {
		fmt.Fprintf(os.Stderr, "hawktui: %v\n", err)
		return 1
	}
	scr, err := screen.New(drv,
		screen.WithQuit(cfg.QuitBinding()),
		screen.WithMouseMode(cfg.MouseMode()),
	)
	if err != nil {
		fmt.Fprintf(os.Stderr, "hawktui: %v\n", err)
		return 1
	}
	defer scr.Close()

	// Restore the terminal before the crash report so it stays readable
	defer func() {
		if r := recover(); r != nil {
			scr.Close()
			terminal.EmergencyReset(os.Stdout)
			fmt.Fprintf(os.Stderr, "\r\n\x1b[31mHAWKTUI CRASHED: %v\x1b[0m\r\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\r\n%s\r\n", debug.Stack())
			code = 1
		}
	}()

	var sound feedback
	if cfg.Audio {
		fb := audio.NewFeedback()
		if err := fb.Initialize(); err != nil {
			log.Printf("audio disabled: %v", err)
		} else {
			defer fb.Cleanup()
			sound = fb
		}
	}

	if _, err := buildDemo(scr, sound); err != nil {
		scr.Close()
		fmt.Fprintf(os.Stderr, "hawktui: %v\n", err)
		return 1
	}

	if err := scr.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		scr.Close()
		fmt.Fprintf(os.Stderr, "hawktui: %v\n", err)
		return 1
	}
	return 0
}
