// Command fretboard prints an N-EDO fretboard to the terminal.
//
//	fretboard -system 24tet -scale rast -root 0 -mode interval
//	fretboard -system 19tet -instrument banjo5 -chord min -style letters
//
// Settings come from the YAML config (see package config) and are then
// overridden by any flag given on the command line.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/katalvlaran/edofret"
	"github.com/katalvlaran/edofret/board"
	"github.com/katalvlaran/edofret/config"
	"github.com/katalvlaran/edofret/label"
	"github.com/katalvlaran/edofret/pitch"
	"github.com/katalvlaran/edofret/semantics"
)

// logger is the command's structured logger; initLogger replaces it.
var logger = slog.Default()

// initLogger installs a text handler on stderr and shares it with the
// engine packages.
func initLogger(debug bool) {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	h := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level:     level,
		AddSource: debug,
	})
	logger = slog.New(h)
	slog.SetDefault(logger)
	edofret.SetLogger(logger)
}

func main() {
	cfgPath := flag.String("config", "", "YAML config file (default: user config dir)")
	system := flag.String("system", "", "tuning system id, e.g. 12tet, 24tet, 53tet")
	instrument := flag.String("instrument", "", "instrument id: guitar, guitar-dropd, bass, ukulele, banjo5")
	frets := flag.Int("frets", 0, "number of frets")
	root := flag.String("root", "", "root as pitch class number or note name")
	scale := flag.String("scale", "", `scale type ("none" to hide)`)
	chord := flag.String("chord", "", `chord type ("none" to hide)`)
	mode := flag.String("mode", "", "cell text: note, degree, interval, step, fret")
	style := flag.String("style", "", "fret notation: fractions, letters, accidentals")
	flat := flag.Bool("flat", false, "prefer flat spellings")
	left := flag.Bool("left", false, "left-handed (mirrored) board")
	all := flag.Bool("all", false, "label every cell, not only scale and chord tones")
	save := flag.Bool("save", false, "write the resulting settings back to the config file")
	list := flag.Bool("list", false, "list systems, instruments, scales and chords, then exit")
	debug := flag.Bool("debug", false, "enable debug logging (adds source location)")
	flag.Parse()

	initLogger(*debug)

	if *list {
		printCatalogs(os.Stdout)
		return
	}

	path := *cfgPath
	if path == "" {
		p, err := config.DefaultPath()
		if err != nil {
			logger.Warn("config dir unavailable, using defaults", "err", err)
		}
		path = p
	}
	cfg := config.DefaultConfig()
	if path != "" {
		c, err := config.Load(path)
		if err != nil {
			logger.Error("config load failed", "path", path, "err", err)
			os.Exit(1)
		}
		cfg = c
	}
	settings, err := cfg.Settings()
	if err != nil {
		logger.Error("config invalid", "path", path, "err", err)
		os.Exit(1)
	}

	set := map[string]bool{}
	flag.Visit(func(f *flag.Flag) { set[f.Name] = true })

	if set["system"] {
		settings = settings.WithSystem(*system)
	}
	if set["instrument"] {
		settings = settings.WithInstrument(*instrument)
	}
	if set["frets"] {
		settings = settings.WithFrets(*frets)
	}
	if set["scale"] {
		settings = settings.WithScale(noneToEmpty(*scale))
	}
	if set["chord"] {
		settings = settings.WithChord(noneToEmpty(*chord))
	}
	if set["mode"] {
		m, err := semantics.ParseMode(*mode)
		if err != nil {
			fail(err)
		}
		settings = settings.WithMode(m)
	}
	if set["style"] {
		st, err := label.ParseStyle(*style)
		if err != nil {
			fail(err)
		}
		settings = settings.WithStyle(st)
	}
	if set["flat"] {
		acc := pitch.Sharp
		if *flat {
			acc = pitch.Flat
		}
		settings = settings.WithAccidental(acc)
	}
	if set["left"] {
		settings = settings.WithLeftHanded(*left)
	}
	if set["root"] {
		pc, err := parseRoot(*root, settings.System)
		if err != nil {
			fail(err)
		}
		settings = settings.WithRoot(pc)
	}

	b, err := board.Build(settings)
	if err != nil {
		fail(err)
	}
	logger.Debug("board built",
		"system", b.System.ID,
		"instrument", b.Instrument.ID,
		"frets", b.Layout.Frets,
		"width", b.Layout.Width,
		"height", b.Layout.Height,
	)

	fmt.Fprintln(os.Stdout, render(b, renderOptions{All: *all}))

	if *save {
		if path == "" {
			fail(fmt.Errorf("no config path to save to"))
		}
		if err := config.FromSettings(settings).Save(path); err != nil {
			fail(err)
		}
		logger.Info("config saved", "path", path)
	}
}

func fail(err error) {
	logger.Error("fretboard failed", "err", err)
	os.Exit(1)
}

func noneToEmpty(s string) string {
	if strings.EqualFold(s, "none") {
		return ""
	}
	return s
}

// parseRoot accepts a pitch class number or a note name spelled with
// either accidental preference, e.g. "9", "A", "Bb", "C+".
func parseRoot(s, systemID string) (int, error) {
	if pc, err := strconv.Atoi(s); err == nil {
		return pc, nil
	}
	sys, err := pitch.Resolve(systemID)
	if err != nil {
		return 0, err
	}
	for pc := 0; pc < sys.Divisions; pc++ {
		for _, pref := range []pitch.Accidental{pitch.Sharp, pitch.Flat} {
			if strings.EqualFold(sys.NameForPc(pc, pref), s) {
				return pc, nil
			}
		}
	}
	return 0, fmt.Errorf("root %q is not a note of %s", s, sys.ID)
}
