// Package aht20 drives the AHT20 temperature/humidity sensor over I2C.
// Measurements are two-phase at the wire level:
//
//	err := d.Trigger()       // start a conversion (fast register write)
//	m, err := d.Collect()    // fetch when ready; ErrNotReady while busy
//
// d.Read() wraps both with bounded polling and returns the measurement, which
// is what a periodic sampling loop wants: one call, one result, one deadline.
//
// NOTE: the I2C bus MUST perform a write followed by a repeated-start read
// when both buffers are provided, without releasing the bus.
package aht20

import (
	"errors"
	"time"

	"tinygo.org/x/drivers"
)

// I2C address.
const Address = 0x38

// Commands and status bits (per datasheet/common driver practice).
const (
	cmdTrigger    = 0xAC
	cmdInitialize = 0xBE
	cmdSoftReset  = 0xBA
	cmdStatus     = 0x71

	statusBusy       = 0x80
	statusCalibrated = 0x08
)

// Errors returned by the driver.
var (
	ErrTimeout  = errors.New("aht20: timeout")
	ErrNotReady = errors.New("aht20: not ready")
	ErrProtocol = errors.New("aht20: protocol error")
)

// Config controls non-hardware behaviour. All fields are optional.
type Config struct {
	// Address defaults to 0x38 if zero.
	Address uint16
	// PollInterval is used by Read() between Collect() attempts. Default 15 ms.
	PollInterval time.Duration
	// CollectTimeout bounds the total wait in Read(). Default 250 ms.
	CollectTimeout time.Duration
	// VerifyCRC rejects frames whose trailing CRC byte does not match.
	// Off by default: some clone parts ship a junk CRC.
	VerifyCRC bool
}

// Device wraps an I2C connection to an AHT20.
type Device struct {
	bus     drivers.I2C
	Address uint16

	cfg Config
	buf [7]byte // reused to avoid per-read allocations
}

// New creates the Device object only; it does not touch the hardware.
// The I2C bus must already be configured.
func New(bus drivers.I2C) Device {
	return Device{
		bus:     bus,
		Address: Address,
	}
}

// Configure applies optional config and initialises the sensor if its
// calibration bit is clear. Safe to call more than once.
func (d *Device) Configure(cfgs ...Config) {
	if len(cfgs) > 0 {
		c := cfgs[0]
		if c.Address != 0 {
			d.Address = c.Address
		}
		if c.PollInterval <= 0 {
			c.PollInterval = 15 * time.Millisecond
		}
		if c.CollectTimeout <= 0 {
			c.CollectTimeout = 250 * time.Millisecond
		}
		d.cfg = c
	} else {
		d.cfg = Config{
			Address:        d.Address,
			PollInterval:   15 * time.Millisecond,
			CollectTimeout: 250 * time.Millisecond,
		}
	}

	st, _ := d.Status() // ignore error; will attempt init anyway
	if st&statusCalibrated != 0 {
		return // already initialised
	}

	// Force initialisation; tolerate devices that do not ACK immediately.
	_ = d.bus.Tx(d.Address, []byte{cmdInitialize, 0x08, 0x00}, nil)
	// Small guard delay; callers should not expect an immediate ready sample.
	time.Sleep(10 * time.Millisecond)
}

// Reset issues a soft reset. Give the device ~20ms afterwards before using.
func (d *Device) Reset() {
	_ = d.bus.Tx(d.Address, []byte{cmdSoftReset}, nil)
}

// Status reads and returns the status byte.
func (d *Device) Status() (byte, error) {
	data := []byte{0}
	if err := d.bus.Tx(d.Address, []byte{cmdStatus}, data); err != nil {
		return 0, err
	}
	return data[0], nil
}

// Trigger starts a conversion. It is a quick register write with no blocking.
// The part needs roughly 80 ms before Collect will succeed.
func (d *Device) Trigger() error {
	if d.cfg.PollInterval == 0 {
		d.Configure()
	}
	return d.bus.Tx(d.Address, []byte{cmdTrigger, 0x33, 0x00}, nil)
}

// Collect fetches one measurement. ErrNotReady while the conversion is still
// running; bus errors are returned as-is.
func (d *Device) Collect() (Measurement, error) {
	data := d.buf[:]
	if err := d.bus.Tx(d.Address, nil, data); err != nil {
		return Measurement{}, err
	}
	// Status bits live in byte 0.
	if (data[0]&statusCalibrated) == 0 || (data[0]&statusBusy) != 0 {
		return Measurement{}, ErrNotReady
	}
	if d.cfg.VerifyCRC && crc8(data[:6]) != data[6] {
		return Measurement{}, ErrProtocol
	}
	hraw := (uint32(data[1]) << 12) | (uint32(data[2]) << 4) | (uint32(data[3]) >> 4)
	traw := (uint32(data[3]&0x0F) << 16) | (uint32(data[4]) << 8) | uint32(data[5])
	return Measurement{RawHumidity: hraw, RawTemp: traw}, nil
}

// Read performs a full cycle: Trigger followed by bounded polling until
// Collect succeeds or the timeout elapses.
func (d *Device) Read() (Measurement, error) {
	if err := d.Trigger(); err != nil {
		return Measurement{}, err
	}
	deadline := time.Now().Add(d.cfg.CollectTimeout)
	for {
		m, err := d.Collect()
		switch err {
		case nil:
			return m, nil
		case ErrNotReady:
			if time.Now().After(deadline) {
				return Measurement{}, ErrTimeout
			}
			time.Sleep(d.cfg.PollInterval)
		default:
			return Measurement{}, err
		}
	}
}

// Measurement holds one raw conversion result.
type Measurement struct {
	RawHumidity uint32
	RawTemp     uint32
}

// Celsius returns °C.
func (m Measurement) Celsius() float32 {
	return (float32(m.RawTemp)*200.0)/0x100000 - 50
}

// RelHumidity returns relative humidity in percent.
func (m Measurement) RelHumidity() float32 {
	return (float32(m.RawHumidity) * 100) / 0x100000
}

// Fixed-point forms, tenths of a unit. Prefer these when shipping values
// over a wire protocol.

func (m Measurement) DeciCelsius() int32 {
	return ((int32(m.RawTemp) * 2000) / 0x100000) - 500
}

func (m Measurement) DeciRelHumidity() int32 {
	return (int32(m.RawHumidity) * 1000) / 0x100000
}

// crc8 is the AHT20 frame checksum: poly 0x31, init 0xFF, MSB first.
func crc8(data []byte) byte {
	crc := byte(0xFF)
	for _, b := range data {
		crc ^= b
		for i := 0; i < 8; i++ {
			if crc&0x80 != 0 {
				crc = crc<<1 ^ 0x31
			} else {
				crc <<= 1
			}
		}
	}
	return crc
}
