package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	log "github.com/sirupsen/logrus"
	"gopkg.in/alecthomas/kingpin.v2"

	"github.com/example/touchring/internal/engine"
	"github.com/example/touchring/internal/render"
	"github.com/example/touchring/internal/strip"
	"github.com/example/touchring/internal/telemetry"
	"github.com/example/touchring/internal/touch"
)

var (
	app        = kingpin.New("touchring", "Touch reactive LED ring")
	debug      = app.Flag("debug", "Turn on debug logging.").Bool()
	configFile = app.Flag("config", "Configuration file to use.").Default("touchring.yaml").String()
	start      = app.Command("start", "Start the ring")
)

func main() {
	cmd, err := app.Parse(os.Args[1:])
	if err != nil {
		fmt.Printf("%v: Try --help\n", err.Error())
		os.Exit(1)
	}

	log.SetFormatter(&log.TextFormatter{
		TimestampFormat: "2006-01-02T15:04:05.000Z07:00",
	})
	if *debug {
		log.Info("Enabling debug output...")
		log.SetLevel(log.DebugLevel)
	}

	switch cmd {
	case start.FullCommand():
		startRing()
	default:
		kingpin.FatalUsage("Unrecognized command")
	}
}

func startRing() {
	signalChan := make(chan os.Signal, 1)
	signal.Notify(signalChan, syscall.SIGINT, syscall.SIGTERM)

	conf, err := getConfig(*configFile)
	if err != nil {
		log.Fatal("Unable to read configuration: ", err)
	}

	// Without the touch board there is nothing to react to; this is the one
	// fatal condition, and there is no retry.
	sensors, err := touch.NewSensors(conf.I2C, conf.ExpanderAddress, conf.AdcAddress)
	if err != nil {
		log.Fatal("Unable to initialize the touch board: ", err)
	}
	defer sensors.Close()

	leds, err := strip.NewStrip(conf.Brightness)
	if err != nil {
		log.Fatal("Unable to initialize the LED ring: ", err)
	}
	defer leds.Close()

	var reporter *telemetry.Reporter
	if conf.SerialDevice != "" {
		reporter, err = telemetry.OpenSerial(conf.SerialDevice, conf.SerialBaud)
		if err != nil {
			log.Fatal("Unable to open the telemetry port: ", err)
		}
		defer reporter.Close()
	} else {
		log.Info("No serial device configured, telemetry is off")
	}

	mode, err := render.ParseMode(conf.Mode)
	if err != nil {
		log.Fatal(err)
	}

	stop := make(chan struct{})
	go func() {
		<-signalChan
		close(stop)
	}()

	if err := engine.New(leds, sensors, reporter, mode).Run(stop); err != nil {
		log.Fatal("Frame loop failed: ", err)
	}

	log.Info("Done...")
}
