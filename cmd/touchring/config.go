package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/example/touchring/internal/render"
)

const (
	defaultExpanderAddress = 0x20
	defaultAdcAddress      = 0x48
	defaultSerialBaud      = 115200
	defaultBrightness      = 90
)

type Config struct {
	I2C             string `yaml:"i2c"`
	ExpanderAddress uint16 `yaml:"expanderAddress"`
	AdcAddress      uint16 `yaml:"adcAddress"`
	SerialDevice    string `yaml:"serialDevice"`
	SerialBaud      int    `yaml:"serialBaud"`
	Mode            string `yaml:"mode"`
	Brightness      int    `yaml:"brightness"`
}

func getConfig(file string) (*Config, error) {
	content, err := os.ReadFile(file)
	if err != nil {
		return nil, err
	}
	return parseConfig(content)
}

func parseConfig(content []byte) (*Config, error) {
	c := &Config{}
	err := yaml.Unmarshal(content, c)
	if err != nil {
		return nil, err
	}

	if c.ExpanderAddress == 0 {
		c.ExpanderAddress = defaultExpanderAddress
	}
	if c.AdcAddress == 0 {
		c.AdcAddress = defaultAdcAddress
	}
	if c.SerialBaud <= 0 {
		c.SerialBaud = defaultSerialBaud
	}
	if c.Mode == "" {
		c.Mode = render.ModeRainbow.String()
	}
	if _, err := render.ParseMode(c.Mode); err != nil {
		return nil, err
	}
	if c.Brightness == 0 {
		c.Brightness = defaultBrightness
	}
	if c.Brightness < 1 || c.Brightness > 255 {
		return nil, fmt.Errorf("brightness %d out of range 1-255", c.Brightness)
	}

	return c, nil
}
