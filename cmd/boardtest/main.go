// cmd/boardtest/main.go
//go:build rp2040 || rp2350

package main

import (
	"machine"
	"time"

	"tinygo.org/x/drivers"
	"tinygo.org/x/drivers/ssd1306"

	uartx "github.com/jangala-dev/tinygo-uartx/uartx"

	"envnode-go/display"
	"envnode-go/drivers/aht20"
	"envnode-go/services/monitor"
	"envnode-go/x/fmtx"
	"envnode-go/x/mathx"
	"envnode-go/x/strconvx"
)

// Staged bring-up check for a freshly wired node. Each stage reports over
// the console, then the sensor stages loop forever so values can be watched
// while probing the board.

const (
	pinSDA    = machine.GP4
	pinSCL    = machine.GP5
	pinLight  = machine.GP26
	pinButton = machine.GP15
	pinBuzzer = machine.GP16
	pinTX     = machine.GP0
	pinRX     = machine.GP1

	buttonEchoWindow = 5 * time.Second
	chirp            = 100 * time.Millisecond
	watchEvery       = 2 * time.Second
)

func main() {
	// Allow USB CDC to enumerate before we print.
	time.Sleep(2 * time.Second)
	println("boardtest: boot")

	u := uartx.UART0
	_ = u.Configure(uartx.UARTConfig{BaudRate: 115200, TX: pinTX, RX: pinRX})
	fmtx.DefaultOutput = u
	fmtx.Printf("[bt] envnode boardtest\n")

	bus := machine.I2C0
	if err := bus.Configure(machine.I2CConfig{
		Frequency: 400 * machine.KHz,
		SDA:       pinSDA,
		SCL:       pinSCL,
	}); err != nil {
		fmtx.Printf("[bt] i2c0 FAIL: %s\n", err.Error())
	} else {
		fmtx.Printf("[bt] i2c0 PASS\n")
	}

	dev := aht20.New(bus)
	dev.Configure()
	if st, err := dev.Status(); err != nil {
		fmtx.Printf("[bt] aht20 status FAIL: %s\n", err.Error())
	} else {
		fmtx.Printf("[bt] aht20 status=0x%x PASS\n", st)
	}

	panel := panelTest(bus)
	buzzerTest()
	buttonEcho()

	machine.InitADC()
	adc := machine.ADC{Pin: pinLight}
	adc.Configure(machine.ADCConfig{})

	watch(&dev, adc, panel)
}

// panelTest initializes the panel and paints one frame exercising every row.
func panelTest(bus drivers.I2C) *display.Panel {
	dev := ssd1306.NewI2C(bus)
	dev.Configure(ssd1306.Config{Width: 128, Height: 64, Address: 0x3C})
	p := display.NewPanel(&dev)
	p.Clear()
	for r := 0; r < p.Rows(); r++ {
		p.WriteLine(r, "row "+strconvx.Itoa(r)+" 0123456789")
	}
	if err := p.Flush(); err != nil {
		fmtx.Printf("[bt] display FAIL: %s\n", err.Error())
		return nil
	}
	fmtx.Printf("[bt] display rows=%d PASS\n", p.Rows())
	return p
}

func buzzerTest() {
	pinBuzzer.Configure(machine.PinConfig{Mode: machine.PinOutput})
	pinBuzzer.High()
	time.Sleep(chirp)
	pinBuzzer.Low()
	fmtx.Printf("[bt] buzzer chirped\n")
}

// buttonEcho counts debounced presses inside a fixed window.
func buttonEcho() {
	pinButton.Configure(machine.PinConfig{Mode: machine.PinInputPulldown})
	deb := monitor.NewDebouncer(50 * time.Millisecond)
	fmtx.Printf("[bt] press BTN1 within %ds\n", int(buttonEchoWindow/time.Second))

	presses := 0
	deadline := time.Now().Add(buttonEchoWindow)
	for time.Now().Before(deadline) {
		if deb.Poll(pinButton.Get(), time.Now()) {
			presses++
			fmtx.Printf("[bt] press %d\n", presses)
		}
		time.Sleep(5 * time.Millisecond)
	}
	if presses == 0 {
		fmtx.Printf("[bt] button: no presses seen\n")
	} else {
		fmtx.Printf("[bt] button PASS (%d presses)\n", presses)
	}
}

// watch loops forever, printing sensor values and mirroring them on the
// panel when one came up.
func watch(dev *aht20.Device, adc machine.ADC, panel *display.Panel) {
	n := 0
	for {
		n++
		light := mathx.MapU16(adc.Get(), 0, 0xFFFF, 0, monitor.LightMax)

		m, err := dev.Read()
		if err != nil {
			fmtx.Printf("[bt] n=%d aht20 FAIL: %s light=%d\n", n, err.Error(), light)
		} else {
			fmtx.Printf("[bt] n=%d t=%.2fC rh=%.2f%% light=%d\n",
				n, m.Celsius(), m.RelHumidity(), light)
		}

		if panel != nil {
			panel.Clear()
			panel.WriteLine(0, "BOARDTEST")
			if err != nil {
				panel.WriteLine(1, "T: ERR")
				panel.WriteLine(2, "H: ERR")
			} else {
				panel.WriteLine(1, "T: "+strconvx.FormatFloat(float64(m.Celsius()), 'f', 2, 32))
				panel.WriteLine(2, "H: "+strconvx.FormatFloat(float64(m.RelHumidity()), 'f', 2, 32))
			}
			panel.WriteLine(3, "L: "+strconvx.Itoa(int(light)))
			panel.WriteLine(4, "n: "+strconvx.Itoa(n))
			_ = panel.Flush()
		}

		time.Sleep(watchEvery)
	}
}
