package alerts

import (
	"fmt"
	"sync/atomic"
	"time"

	"github.com/stianeikeland/go-rpio/v4"

	"FATIGUE_MONITOR/go-backend/internal/models"
)

// GPIONotifier signals alerts on a status LED and a piezo buzzer. The blink
// and beep pattern scales with severity. Patterns run on their own goroutine
// with the same busy-skip semantics as the voice channel.
type GPIONotifier struct {
	led    rpio.Pin
	buzzer rpio.Pin

	busy atomic.Bool
}

// NewGPIONotifier maps the GPIO memory range and claims the two pins. The
// caller should treat an error as "no GPIO on this host" and run without
// this channel.
func NewGPIONotifier(ledPin, buzzerPin int) (*GPIONotifier, error) {
	if err := rpio.Open(); err != nil {
		return nil, fmt.Errorf("gpio open: %w", err)
	}
	g := &GPIONotifier{
		led:    rpio.Pin(ledPin),
		buzzer: rpio.Pin(buzzerPin),
	}
	g.led.Output()
	g.buzzer.Output()
	g.led.Low()
	g.buzzer.Low()
	return g, nil
}

// pattern returns pulse count and on/off interval for a severity.
func pattern(severity string) (pulses int, interval time.Duration, buzz bool) {
	switch severity {
	case SeverityCritical:
		return 6, 120 * time.Millisecond, true
	case SeverityWarning:
		return 3, 200 * time.Millisecond, true
	default:
		return 2, 300 * time.Millisecond, false
	}
}

func (g *GPIONotifier) Notify(alert models.Alert) error {
	if !g.busy.CompareAndSwap(false, true) {
		return nil
	}
	pulses, interval, buzz := pattern(alert.Severity)
	go func() {
		defer g.busy.Store(false)
		for i := 0; i < pulses; i++ {
			g.led.High()
			if buzz {
				g.buzzer.High()
			}
			time.Sleep(interval)
			g.led.Low()
			g.buzzer.Low()
			time.Sleep(interval)
		}
	}()
	return nil
}

// Close releases the pins and unmaps GPIO memory.
func (g *GPIONotifier) Close() error {
	g.led.Low()
	g.buzzer.Low()
	return rpio.Close()
}
