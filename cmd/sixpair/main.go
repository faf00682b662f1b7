// Command sixpair views and changes the paired host MAC address of Sony
// motion-game controllers (PS3 Sixaxis, Move Motion, PS4 DualShock 4)
// over USB.
//
// Usage:
//
//	sixpair [flags] get
//	sixpair [flags] pair <mac>
//	sixpair [flags] info
//	sixpair [flags] -interactive
//
// Flags:
//
//	-config string      Configuration file path (default ~/.config/sixpair.yaml)
//	-device vid:pid     Open this exact USB device instead of scanning for
//	                    known controllers (requires -protocol)
//	-protocol string    Pairing protocol: sixaxis or dualshock4
//	-serial             Include the serial number in device names
//	-verify             Read back and verify after pairing (default true)
//	-log-level string   Log level: debug, info, warn, error (default "info")
//	-log-file string    Append CBOR pairing events to this file
//	-interactive        Enter the interactive command loop
//	-version            Print the version and exit
//
// Examples:
//
//	# Print the MAC the controller is currently paired to
//	sixpair get
//
//	# Pair the controller to the host's Bluetooth adapter address
//	sixpair pair 00:1B:DC:F2:1C:29
//
//	# Pair an unrecognized controller that speaks the DualShock 4 protocol
//	sixpair -device 054c:09cc -protocol dualshock4 pair 00:1B:DC:F2:1C:29
package main

import (
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/sixpair/sixpair-go/pkg/config"
	"github.com/sixpair/sixpair-go/pkg/controller"
	"github.com/sixpair/sixpair-go/pkg/log"
	"github.com/sixpair/sixpair-go/pkg/mac"
	"github.com/sixpair/sixpair-go/pkg/registry"
	"github.com/sixpair/sixpair-go/pkg/report"
	"github.com/sixpair/sixpair-go/pkg/transport"
	"github.com/sixpair/sixpair-go/pkg/version"
)

type cliFlags struct {
	ConfigFile  string
	Device      string
	Protocol    string
	Serial      bool
	Verify      bool
	LogLevel    string
	LogFile     string
	Interactive bool
	Version     bool
}

var flags cliFlags

func init() {
	flag.StringVar(&flags.ConfigFile, "config", "", "Configuration file path")
	flag.StringVar(&flags.Device, "device", "", "Open this exact USB device (vid:pid hex), requires -protocol")
	flag.StringVar(&flags.Protocol, "protocol", "", "Pairing protocol: sixaxis or dualshock4")
	flag.BoolVar(&flags.Serial, "serial", false, "Include the serial number in device names")
	flag.BoolVar(&flags.Verify, "verify", true, "Read back and verify after pairing")
	flag.StringVar(&flags.LogLevel, "log-level", "", "Log level: debug, info, warn, error")
	flag.StringVar(&flags.LogFile, "log-file", "", "Append CBOR pairing events to this file")
	flag.BoolVar(&flags.Interactive, "interactive", false, "Enter the interactive command loop")
	flag.BoolVar(&flags.Version, "version", false, "Print the version and exit")
}

func main() {
	flag.Parse()

	if flags.Version {
		fmt.Printf("sixpair %s\n", version.Current)
		return
	}

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	args := flag.Args()
	if !flags.Interactive && len(args) == 0 {
		flag.Usage()
		os.Exit(2)
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	logger, cleanup, err := setupLogging(cfg)
	if err != nil {
		return err
	}
	defer cleanup()

	opts, err := sessionOptions(cfg, logger)
	if err != nil {
		return err
	}

	hidapi, err := transport.NewHIDAPI()
	if err != nil {
		return err
	}
	defer hidapi.Close()

	session, err := controller.Open(hidapi, opts)
	if err != nil {
		return err
	}
	defer session.Close()

	if flags.Interactive {
		return runInteractive(session, flags.Serial, flags.Verify)
	}

	switch args[0] {
	case "get":
		addr, err := session.GetPairedMAC()
		if err != nil {
			return err
		}
		fmt.Printf("Current MAC address: %s\n", addr)
		return nil

	case "pair":
		if len(args) != 2 {
			return errors.New("usage: sixpair pair <mac>")
		}
		addr, err := mac.Parse(args[1])
		if err != nil {
			return err
		}
		if err := session.Pair(addr, flags.Verify); err != nil {
			return err
		}
		fmt.Printf("Successfully paired %s to MAC address: %s\n",
			session.GetDisplayName(flags.Serial), addr)
		return nil

	case "info":
		fmt.Printf("Device:   %s\n", session.GetDisplayName(flags.Serial))
		fmt.Printf("USB ID:   %s\n", session.DeviceInfo().ID)
		fmt.Printf("Protocol: %s\n", session.Protocol())
		return nil

	default:
		return fmt.Errorf("unknown command %q (want get, pair, or info)", args[0])
	}
}

// loadConfig reads the config file. Without -config, the default path is
// probed and a missing file falls back to defaults.
func loadConfig() (*config.Config, error) {
	path := flags.ConfigFile
	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return config.Default(), nil
		}
		path = filepath.Join(home, ".config", "sixpair.yaml")
	}

	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}

	// Flags win over file values.
	if flags.LogLevel != "" {
		cfg.Logging.Level = flags.LogLevel
	}
	if flags.LogFile != "" {
		cfg.Logging.File = flags.LogFile
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// setupLogging builds the event logger: console via slog, plus an
// optional CBOR event file.
func setupLogging(cfg *config.Config) (log.Logger, func(), error) {
	level := slog.LevelInfo
	switch strings.ToLower(cfg.Logging.Level) {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}

	console := log.NewSlogAdapter(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})))

	if cfg.Logging.File == "" {
		return console, func() {}, nil
	}

	file, err := log.NewFileLogger(cfg.Logging.File)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open log file: %w", err)
	}
	return log.NewMultiLogger(console, file), func() { file.Close() }, nil
}

// sessionOptions merges -device/-protocol flags with the config file's
// pinned device into matcher options.
func sessionOptions(cfg *config.Config, logger log.Logger) (controller.Options, error) {
	opts := controller.Options{Logger: logger}

	var err error
	opts.ID, err = cfg.DeviceID()
	if err != nil {
		return opts, err
	}
	opts.Protocol, err = cfg.Protocol()
	if err != nil {
		return opts, err
	}

	if flags.Device != "" {
		id, err := registry.ParseDeviceID(flags.Device)
		if err != nil {
			return opts, err
		}
		opts.ID = &id
	}
	if flags.Protocol != "" {
		p, err := report.ParseProtocol(flags.Protocol)
		if err != nil {
			return opts, err
		}
		opts.Protocol = &p
	}
	return opts, nil
}
