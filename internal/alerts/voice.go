package alerts

import (
	"log"
	"os/exec"
	"sync/atomic"

	"FATIGUE_MONITOR/go-backend/internal/models"
)

// VoiceNotifier speaks alert messages through a text-to-speech subprocess
// (espeak by default). Speech runs on its own goroutine; an alert arriving
// while a previous one is still being spoken is skipped rather than queued,
// so a burst of conditions never builds a backlog of stale speech.
type VoiceNotifier struct {
	command string
	args    []string

	speaking atomic.Bool
}

func NewVoiceNotifier(command string, args ...string) *VoiceNotifier {
	return &VoiceNotifier{command: command, args: args}
}

func (v *VoiceNotifier) Notify(alert models.Alert) error {
	if !v.speaking.CompareAndSwap(false, true) {
		return nil
	}
	go func() {
		defer v.speaking.Store(false)
		args := append(append([]string{}, v.args...), alert.Message)
		if err := exec.Command(v.command, args...).Run(); err != nil {
			log.Printf("voice: %s failed: %v", v.command, err)
		}
	}()
	return nil
}
