// Command striptest lists the SPI ports and plays diagnostic patterns on the
// LED strip to check wiring, color order and serpentine layout.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"periph.io/x/conn/v3/physic"
	"periph.io/x/conn/v3/spi/spireg"

	"github.com/coreman2200/leuchtwand/internal/config"
	"github.com/coreman2200/leuchtwand/internal/led"
	"github.com/coreman2200/leuchtwand/internal/ledtest"
)

var (
	boxStyle   = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("63")).Padding(0, 1)
	titleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("81")).Bold(true)
	keyStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("243"))
)

func main() {
	var (
		configPath = flag.String("config", "leuchtwand.yaml", "path to the YAML config")
		driver     = flag.String("driver", "ws2801", "strip: ws2801 | nrzled | console")
		dev        = flag.String("spi", "", "SPI port (empty: config or first port)")
		speedHz    = flag.Int("speed", 0, "SPI clock in Hz (0: config)")
		pattern    = flag.String("pattern", string(ledtest.Colors), "pattern: "+kindNames())
		interval   = flag.Duration("interval", time.Second, "time per frame")
		list       = flag.Bool("list", false, "list SPI ports and exit")
	)
	flag.Parse()

	zerolog.TimeFieldFormat = time.RFC3339
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})

	if err := led.InitHost(); err != nil {
		log.Fatal().Err(err).Msg("host")
	}
	printPorts()
	if *list {
		return
	}

	cfg := config.Default()
	if c, err := config.Load(*configPath); err == nil {
		cfg = c
	}
	if *dev != "" {
		cfg.SPI.Dev = *dev
	}
	if *speedHz > 0 {
		cfg.SPI.SpeedHz = *speedHz
	}
	kind, err := ledtest.ParseKind(*pattern)
	if err != nil {
		log.Fatal().Err(err).Msg("pattern")
	}

	layout := cfg.Layout()
	drv, err := led.Open(*driver, cfg.SPI.Dev, layout.Count(),
		physic.Frequency(cfg.SPI.SpeedHz)*physic.Hertz,
		time.Duration(cfg.SPI.LatchUs)*time.Microsecond)
	if err != nil {
		log.Fatal().Err(err).Str("driver", *driver).Str("dev", cfg.SPI.Dev).Msg("open strip")
	}
	log.Info().Str("driver", *driver).Str("pattern", string(kind)).Int("leds", layout.Count()).Msg("running; Ctrl-C to stop")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	run(ctx, drv, layout, ledtest.NewRunner(kind), *interval)

	if err := drv.Write(make([]byte, layout.Count()*3)); err != nil {
		log.Warn().Err(err).Msg("blank strip")
	}
	if err := drv.Close(); err != nil {
		log.Warn().Err(err).Msg("close strip")
	}
}

func run(ctx context.Context, drv led.Driver, layout led.Layout, r *ledtest.Runner, interval time.Duration) {
	rgb := make([]byte, layout.Count()*3)
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for r.Next(layout, rgb) {
		if err := drv.Write(rgb); err != nil {
			log.Error().Err(err).Int("step", r.Step()).Msg("write")
			return
		}
		log.Info().Int("step", r.Step()).Msg("frame")
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
	log.Info().Msg("pattern complete")
}

func printPorts() {
	refs := spireg.All()
	if len(refs) == 0 {
		fmt.Println(boxStyle.Render(titleStyle.Render("no SPI ports found")))
		return
	}
	for _, ref := range refs {
		lines := []string{titleStyle.Render("SPI port " + ref.Name)}
		lines = append(lines, row("number", fmt.Sprint(ref.Number)))
		if len(ref.Aliases) > 0 {
			lines = append(lines, row("aliases", strings.Join(ref.Aliases, ", ")))
		}
		p, err := ref.Open()
		if err != nil {
			lines = append(lines, row("open", err.Error()))
		} else {
			lines = append(lines, row("driver", p.String()))
			_ = p.Close()
		}
		fmt.Println(boxStyle.Render(lipgloss.JoinVertical(lipgloss.Left, lines...)))
	}
}

func row(k, v string) string {
	return keyStyle.Render(fmt.Sprintf("%-8s", k)) + " " + v
}

func kindNames() string {
	names := make([]string, len(ledtest.Kinds))
	for i, k := range ledtest.Kinds {
		names[i] = string(k)
	}
	return strings.Join(names, " | ")
}
