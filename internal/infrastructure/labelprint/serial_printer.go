package labelprint

import (
	"fmt"
	"sort"

	"go.bug.st/serial"

	"idnt/internal/domain/ports"
)

// SerialLabelPrinter implements ports.LabelPrinter over a serial line.
// Print opens the port, writes the name as one CRLF-terminated line and
// closes again: label devices often hang off shared COM ports, so the
// port is not held between prints.
type SerialLabelPrinter struct {
	portName string
	baud     int
	log      ports.Logger
}

// NewSerialLabelPrinter creates a printer for the given port. An empty
// port name produces a disabled printer whose Print returns ErrNoPort.
func NewSerialLabelPrinter(portName string, baud int, log ports.Logger) *SerialLabelPrinter {
	if baud <= 0 {
		baud = 9600
	}
	return &SerialLabelPrinter{portName: portName, baud: baud, log: log}
}

// Print sends one name to the device.
func (p *SerialLabelPrinter) Print(name string) error {
	if p.portName == "" {
		return ErrNoPort
	}
	if name == "" {
		return ErrEmptyName
	}

	mode := &serial.Mode{
		BaudRate: p.baud,
		DataBits: 8,
		Parity:   serial.NoParity,
		StopBits: serial.OneStopBit,
	}

	port, err := serial.Open(p.portName, mode)
	if err != nil {
		return fmt.Errorf("open %s: %w", p.portName, err)
	}
	defer port.Close()

	if _, err := port.Write([]byte(name + "\r\n")); err != nil {
		return fmt.Errorf("write to %s: %w", p.portName, err)
	}

	p.log.Info("Sent %q to label printer on %s", name, p.portName)
	return nil
}

// Ports lists the system serial ports, sorted for stable dropdowns.
func (p *SerialLabelPrinter) Ports() []string {
	ports, err := serial.GetPortsList()
	if err != nil {
		p.log.Warn("Serial port enumeration failed: %v", err)
		return nil
	}
	sort.Strings(ports)
	return ports
}
