package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseConfig(t *testing.T) {
	content := []byte(`
i2c: "1"
expanderAddress: 0x21
serialDevice: /dev/ttyUSB0
mode: spread
`)

	c, err := parseConfig(content)
	require.NoError(t, err)

	assert.Equal(t, "1", c.I2C)
	assert.Equal(t, uint16(0x21), c.ExpanderAddress)
	assert.Equal(t, uint16(0x48), c.AdcAddress, "adc address should default")
	assert.Equal(t, "/dev/ttyUSB0", c.SerialDevice)
	assert.Equal(t, 115200, c.SerialBaud, "baud should default")
	assert.Equal(t, "spread", c.Mode)
	assert.Equal(t, 90, c.Brightness, "brightness should default")
}

func TestParseConfigRejectsBadValues(t *testing.T) {
	tt := []struct {
		name    string
		content string
	}{
		{"unknown mode", "mode: disco"},
		{"brightness too high", "brightness: 300"},
		{"not yaml", ": ["},
	}

	for _, tc := range tt {
		t.Run(tc.name, func(t *testing.T) {
			_, err := parseConfig([]byte(tc.content))
			assert.Error(t, err)
		})
	}
}
