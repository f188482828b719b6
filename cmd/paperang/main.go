package main

import (
	"bufio"
	"encoding/hex"
	"flag"
	"fmt"
	"image/png"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"paperang/config"
	"paperang/logging"
	"paperang/printer"
	"paperang/protocol"
	"paperang/raster"
	"paperang/serial"
)

var (
	configPath = flag.String("config", "", "Path to YAML config file")
	device     = flag.String("device", "", "Serial device path (overrides config)")
	verbose    = flag.Bool("verbose", false, "Enable debug logging")
)

func main() {
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if *verbose {
		cfg.Logger.Level = "debug"
	}
	if *device != "" {
		cfg.Printer.Device = *device
	}
	if err := logging.Setup(&cfg.Logger); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	serialCfg := &serial.Config{
		Device:      cfg.Printer.Device,
		Baud:        cfg.Printer.Baud,
		ReadTimeout: time.Duration(cfg.Printer.ReadTimeoutSeconds) * time.Second,
	}

	logrus.WithField("device", serialCfg.Device).Info("connecting to printer")
	transport, err := serial.Open(serialCfg)
	if err != nil {
		logrus.WithError(err).Fatal("failed to open serial device")
	}
	defer transport.Close()

	session, err := printer.New(transport,
		printer.WithFeedPadding(uint16(cfg.Printer.FeedPadding)),
		printer.WithLogger(logrus.WithField("component", "session")),
	)
	if err != nil {
		logrus.WithError(err).Fatal("failed to establish printer session")
	}
	logrus.Info("connected")

	if err := session.SetHeatDensity(uint8(cfg.Printer.HeatDensity)); err != nil {
		logrus.WithError(err).Warn("failed to apply configured heat density")
	}

	runLoop(session)
}

func runLoop(session *printer.Session) {
	fmt.Println("Enter commands (type 'help' for available commands, 'quit' to exit):")
	scanner := bufio.NewScanner(os.Stdin)

	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			break
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		parts := strings.Fields(line)

		switch parts[0] {
		case "quit", "exit", "q":
			return

		case "help", "?":
			printHelp()

		case "print":
			if len(parts) < 2 {
				fmt.Println("usage: print <image.png>")
				continue
			}
			if err := printImage(session, parts[1]); err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			}

		case "testpage":
			report(session.PrintTestPage())

		case "feed":
			withUint16Arg(parts, session.FeedLine)

		case "feedhead":
			withUint16Arg(parts, session.FeedToHeadLine)

		case "density":
			if len(parts) < 2 {
				showReply(session.QueryHeatDensity())
				continue
			}
			n, err := strconv.ParseUint(parts[1], 10, 8)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				continue
			}
			report(session.SetHeatDensity(uint8(n)))

		case "papertype":
			if len(parts) < 2 {
				fmt.Println("usage: papertype <0|1>")
				continue
			}
			n, err := strconv.ParseUint(parts[1], 10, 8)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				continue
			}
			report(session.SetPaperType(uint8(n)))

		case "poweroff":
			if len(parts) < 2 {
				showReply(session.QueryPowerOffTime())
				continue
			}
			withUint16Arg(parts, session.SetPowerOffTime)

		case "battery":
			showReply(session.QueryBatteryStatus())

		case "sn":
			showReply(session.QuerySerialNumber())

		case "info":
			showReply(session.QueryHardwareInfo())

		default:
			fmt.Printf("Unknown command: %s (type 'help' for available commands)\n", parts[0])
		}
	}

	if err := scanner.Err(); err != nil {
		fmt.Fprintf(os.Stderr, "Error reading input: %v\n", err)
		os.Exit(1)
	}
}

func printImage(session *printer.Session, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	img, err := png.Decode(f)
	if err != nil {
		return fmt.Errorf("decoding %s: %w", path, err)
	}
	if w := img.Bounds().Dx(); w != raster.Width {
		return fmt.Errorf("image is %d px wide, printer expects %d", w, raster.Width)
	}

	data, err := raster.Pack(raster.FromImage(img))
	if err != nil {
		return err
	}
	return session.PrintImage(data)
}

func withUint16Arg(parts []string, fn func(uint16) error) {
	if len(parts) < 2 {
		fmt.Println("usage:", parts[0], "<n>")
		return
	}
	n, err := strconv.ParseUint(parts[1], 10, 16)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return
	}
	report(fn(uint16(n)))
}

func report(err error) {
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return
	}
	fmt.Println("ok")
}

func showReply(frames []protocol.Frame, err error) {
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return
	}
	if len(frames) == 0 {
		fmt.Println("no reply")
		return
	}
	for _, f := range frames {
		fmt.Printf("%s: %s\n", f.Command, hex.EncodeToString(f.Payload))
	}
}

func printHelp() {
	fmt.Println("\nAvailable commands:")
	fmt.Println("  print <image.png>  - Print a 384px-wide PNG")
	fmt.Println("  testpage           - Print the built-in test page")
	fmt.Println("  feed <n>           - Feed n lines")
	fmt.Println("  feedhead <n>       - Feed to the next label head mark")
	fmt.Println("  density [n]        - Query or set heat density (0-100)")
	fmt.Println("  papertype <0|1>    - Select plain (0) or label (1) paper")
	fmt.Println("  poweroff [n]       - Query or set auto power-off delay")
	fmt.Println("  battery            - Query battery status")
	fmt.Println("  sn                 - Query serial number")
	fmt.Println("  info               - Query hardware info")
	fmt.Println("  quit/exit/q        - Exit")
	fmt.Println()
}
