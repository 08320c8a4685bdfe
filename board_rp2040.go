//go:build rp2040 || rp2350

package main

import (
	"io"
	"machine"
	"time"

	"tinygo.org/x/drivers"
	"tinygo.org/x/drivers/ssd1306"

	uartx "github.com/jangala-dev/tinygo-uartx/uartx"

	"envnode-go/display"
	"envnode-go/drivers/aht20"
	"envnode-go/errcode"
	"envnode-go/services/monitor"
	"envnode-go/x/fmtx"
	"envnode-go/x/mathx"
)

// Pico wiring. The AHT20 and the SSD1306 panel share i2c0.
const (
	pinSDA    = machine.GP4
	pinSCL    = machine.GP5
	pinLight  = machine.GP26 // ADC0, photoresistor divider
	pinButton = machine.GP15
	pinBuzzer = machine.GP16
	pinTX     = machine.GP0
	pinRX     = machine.GP1
)

func buildBoard() board {
	// Allow USB CDC to enumerate before anything prints.
	time.Sleep(2 * time.Second)
	println("boot")

	diag := console()

	bus := machine.I2C0
	_ = bus.Configure(machine.I2CConfig{
		Frequency: 400 * machine.KHz,
		SDA:       pinSDA,
		SCL:       pinSCL,
	})

	pinButton.Configure(machine.PinConfig{Mode: machine.PinInputPulldown})
	pinBuzzer.Configure(machine.PinConfig{Mode: machine.PinOutput})
	pinBuzzer.Low()

	machine.InitADC()
	adc := machine.ADC{Pin: pinLight}
	adc.Configure(machine.ADCConfig{})

	return board{
		Sampler: monitor.NewPort(newEnvPort(bus), lightADC{adc}),
		Alarm:   outPin{pinBuzzer},
		Button:  inPin{pinButton},
		Display: newPanel(bus, diag),
		Diag:    diag,
	}
}

// console brings up UART0 and makes it the default diagnostic sink.
func console() io.Writer {
	u := uartx.UART0
	_ = u.Configure(uartx.UARTConfig{
		BaudRate: 115200,
		TX:       pinTX,
		RX:       pinRX,
	})
	fmtx.DefaultOutput = u
	return u
}

func newPanel(bus drivers.I2C, diag io.Writer) monitor.Display {
	dev := ssd1306.NewI2C(bus)
	dev.Configure(ssd1306.Config{Width: 128, Height: 64, Address: 0x3C})
	dev.ClearBuffer()
	if err := dev.Display(); err != nil {
		// The node keeps sampling and alarming on a dead panel.
		e := &errcode.E{C: errcode.DisplayInit, Op: "ssd1306", Err: err}
		fmtx.Fprintf(diag, "[env] %s\n", e.Error())
	}
	return display.NewPanel(&dev)
}

// ---- sensor backings ----

// envPort folds AHT20 driver failures into stable codes. The device is
// calibrated once here; each read is a full bounded conversion.
type envPort struct {
	dev aht20.Device
}

func newEnvPort(bus drivers.I2C) *envPort {
	dev := aht20.New(bus)
	dev.Configure()
	return &envPort{dev: dev}
}

func (p *envPort) ReadEnv() (float32, float32, error) {
	m, err := p.dev.Read()
	if err != nil {
		return 0, 0, &errcode.E{C: envCode(err), Op: "aht20.read", Err: err}
	}
	return m.Celsius(), m.RelHumidity(), nil
}

func envCode(err error) errcode.Code {
	switch err {
	case aht20.ErrTimeout:
		return errcode.SensorTimeout
	case aht20.ErrNotReady:
		return errcode.SensorNotReady
	default:
		return errcode.SensorBus
	}
}

// lightADC scales the 16-bit ADC reading into the 12-bit raw range.
type lightADC struct{ adc machine.ADC }

func (l lightADC) ReadRaw() uint16 {
	return mathx.MapU16(l.adc.Get(), 0, 0xFFFF, 0, monitor.LightMax)
}

// ---- pin backings ----

type inPin struct{ p machine.Pin }

func (i inPin) Get() bool { return i.p.Get() }

type outPin struct{ p machine.Pin }

func (o outPin) Set(level bool) { o.p.Set(level) }
