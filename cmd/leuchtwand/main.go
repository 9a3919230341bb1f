package main

import (
	"context"
	"errors"
	"flag"
	"io/fs"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"periph.io/x/conn/v3/physic"

	"github.com/coreman2200/leuchtwand/internal/app"
	"github.com/coreman2200/leuchtwand/internal/button"
	"github.com/coreman2200/leuchtwand/internal/config"
	"github.com/coreman2200/leuchtwand/internal/font"
	"github.com/coreman2200/leuchtwand/internal/led"
	"github.com/coreman2200/leuchtwand/internal/screen"
	"github.com/coreman2200/leuchtwand/internal/sim"
)

func main() {
	var (
		configPath  = flag.String("config", "leuchtwand.yaml", "path to the YAML config")
		driver      = flag.String("driver", "", "output: ws2801 | nrzled | console | sim (overrides config)")
		simOnly     = flag.Bool("sim", false, "run in the terminal simulator")
		fps         = flag.Int("fps", 0, "frames per second (overrides config)")
		spiDev      = flag.String("spi", "", "SPI port, e.g. SPI0.0 (overrides config)")
		fontName    = flag.String("font", "", "glyph source: "+strings.Join(font.Names, " | ")+" (overrides config)")
		logPath     = flag.String("log", "leuchtwand.log", "log file used while the simulator owns the terminal")
		verbose     = flag.Bool("v", false, "debug logging")
		writeConfig = flag.Bool("write-config", false, "write the effective config to -config and exit")
	)
	flag.Parse()

	// ---- Logging ----
	zerolog.TimeFieldFormat = time.RFC3339
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if *verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.Kitchen})

	// ---- Config (optional file, flags win) ----
	cfg := config.Default()
	if c, err := config.Load(*configPath); err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			log.Fatal().Err(err).Str("path", *configPath).Msg("config")
		}
		log.Warn().Str("path", *configPath).Msg("no config file; using defaults")
	} else {
		cfg = c
	}
	if *driver != "" {
		cfg.Driver = *driver
	}
	if *simOnly {
		cfg.Driver = "sim"
	}
	if *fps > 0 {
		cfg.FPS = *fps
	}
	if *spiDev != "" {
		cfg.SPI.Dev = *spiDev
	}
	if *fontName != "" {
		cfg.Font.Name = *fontName
		cfg.Font.Path = ""
	}
	if err := cfg.Validate(); err != nil {
		log.Fatal().Err(err).Msg("config")
	}
	if *writeConfig {
		if err := config.Save(*configPath, cfg); err != nil {
			log.Fatal().Err(err).Msg("write config")
		}
		log.Info().Str("path", *configPath).Msg("config written")
		return
	}

	theme, err := cfg.Theme.Resolve()
	if err != nil {
		log.Fatal().Err(err).Msg("theme")
	}
	src, err := font.Load(cfg.Font.Name, cfg.Font.Path, cfg.Font.Size)
	if err != nil {
		log.Fatal().Err(err).Msg("font")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// ---- Output and input ----
	layout := cfg.Layout()
	var (
		drv     led.Driver
		buttons button.Device
		gpio    *button.GPIO
	)
	if cfg.Driver == "sim" {
		f, err := os.OpenFile(*logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			log.Fatal().Err(err).Str("path", *logPath).Msg("open log file")
		}
		defer f.Close()
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: f, NoColor: true, TimeFormat: time.Kitchen})

		s, err := sim.New(layout)
		if err != nil {
			log.Fatal().Err(err).Msg("simulator")
		}
		go s.Run()
		go func() {
			<-s.Done()
			stop()
		}()
		drv, buttons = s, s
	} else {
		if err := led.InitHost(); err != nil {
			log.Fatal().Err(err).Msg("host")
		}
		d, err := led.Open(cfg.Driver, cfg.SPI.Dev, layout.Count(),
			physic.Frequency(cfg.SPI.SpeedHz)*physic.Hertz,
			time.Duration(cfg.SPI.LatchUs)*time.Microsecond)
		if err != nil {
			log.Fatal().Err(err).
				Str("driver", cfg.Driver).
				Str("dev", cfg.SPI.Dev).
				Int("speed_hz", cfg.SPI.SpeedHz).
				Msg("open strip")
		}
		drv = d

		switch cfg.Buttons.Input {
		case "gpio":
			g, err := button.OpenGPIO(cfg.Buttons.Pins, cfg.Buttons.LEDs, time.Duration(cfg.Buttons.DebounceMs)*time.Millisecond)
			if err != nil {
				_ = drv.Close()
				log.Fatal().Err(err).Msg("buttons")
			}
			gpio, buttons = g, g
		default:
			buttons = &button.Base{}
		}
	}
	log.Info().
		Str("driver", cfg.Driver).
		Str("buttons", cfg.Buttons.Input).
		Int("width", cfg.Width).
		Int("height", cfg.Height).
		Int("fps", cfg.FPS).
		Msg("starting")

	scr, err := screen.New(drv, layout, cfg.Limiter())
	if err != nil {
		_ = drv.Close()
		log.Fatal().Err(err).Msg("screen")
	}
	ctrl, err := app.NewController(scr, buttons, src, theme)
	if err != nil {
		_ = scr.Close()
		log.Fatal().Err(err).Msg("controller")
	}
	buttons.OnEvent(ctrl.Post)
	if gpio != nil {
		go gpio.Run(ctx)
	}

	ctrl.Run(ctx, cfg.FPS)

	// ---- Shutdown ----
	log.Info().Msg("shutting down")
	if err := scr.Clear(); err != nil {
		log.Warn().Err(err).Msg("blank strip")
	}
	if gpio != nil {
		if err := gpio.Close(); err != nil {
			log.Warn().Err(err).Msg("release buttons")
		}
	}
}

