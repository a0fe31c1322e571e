package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	HTTPPort    string
	CameraURL   string
	DetectorURL string
	CORSOrigins string
	DBPath      string

	// Fatigue
	EARThreshold     float64
	PerclosThreshold float64
	PerclosWindowSec int
	MicrosleepSec    float64
	BlinkRateLow     int
	BlinkRateHigh    int

	// Distance
	FaceWidthCM        float64
	EyeDistCM          float64
	FocalLengthPx      float64
	DistanceAlpha      float64
	TooCloseCM         float64
	DistanceSustainSec int

	// Posture
	HeadDownDeg       float64
	HeadUpDeg         float64
	PostureSustainSec int
	PoseFailureReset  int

	// Alerts
	CooldownSec  int
	VoiceEnabled bool
	VoiceCommand string
	GPIOEnabled  bool
	LEDPin       int
	BuzzerPin    int
}

func (c *Config) PerclosWindow() time.Duration {
	return time.Duration(c.PerclosWindowSec) * time.Second
}

func (c *Config) MicrosleepAfter() time.Duration {
	return time.Duration(c.MicrosleepSec * float64(time.Second))
}

func (c *Config) DistanceSustain() time.Duration {
	return time.Duration(c.DistanceSustainSec) * time.Second
}

func (c *Config) PostureSustain() time.Duration {
	return time.Duration(c.PostureSustainSec) * time.Second
}

func (c *Config) Cooldown() time.Duration {
	return time.Duration(c.CooldownSec) * time.Second
}

func LoadConfig() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	cfg := &Config{
		HTTPPort:    getEnv("HTTP_PORT", "8081"),
		CameraURL:   getEnv("CAMERA_URL", "http://localhost:8080/?action=stream"),
		DetectorURL: getEnv("DETECTOR_URL", "localhost:50051"),
		CORSOrigins: getEnv("CORS_ORIGINS", "*"),
		DBPath:      getEnv("DB_PATH", "monitor.db"),

		EARThreshold:     getEnvFloat("EAR_THRESHOLD", 0.25),
		PerclosThreshold: getEnvFloat("PERCLOS_THRESHOLD", 0.15),
		PerclosWindowSec: getEnvInt("PERCLOS_WINDOW_SEC", 60),
		MicrosleepSec:    getEnvFloat("MICROSLEEP_SEC", 2.0),
		BlinkRateLow:     getEnvInt("BLINK_RATE_LOW", 10),
		BlinkRateHigh:    getEnvInt("BLINK_RATE_HIGH", 30),

		FaceWidthCM:        getEnvFloat("FACE_WIDTH_CM", 14.5),
		EyeDistCM:          getEnvFloat("EYE_DIST_CM", 6.3),
		FocalLengthPx:      getEnvFloat("FOCAL_LENGTH_PX", 600),
		DistanceAlpha:      getEnvFloat("DISTANCE_ALPHA", 0.3),
		TooCloseCM:         getEnvFloat("TOO_CLOSE_CM", 50),
		DistanceSustainSec: getEnvInt("DISTANCE_SUSTAIN_SEC", 30),

		HeadDownDeg:       getEnvFloat("HEAD_DOWN_DEG", 12),
		HeadUpDeg:         getEnvFloat("HEAD_UP_DEG", -8),
		PostureSustainSec: getEnvInt("POSTURE_SUSTAIN_SEC", 60),
		PoseFailureReset:  getEnvInt("POSE_FAILURE_RESET", 30),

		CooldownSec:  getEnvInt("ALERT_COOLDOWN_SEC", 300),
		VoiceEnabled: getEnvBool("VOICE_ENABLED", true),
		VoiceCommand: getEnv("VOICE_COMMAND", "espeak"),
		GPIOEnabled:  getEnvBool("GPIO_ENABLED", false),
		LEDPin:       getEnvInt("LED_PIN", 17),
		BuzzerPin:    getEnvInt("BUZZER_PIN", 27),
	}

	return cfg
}

// Validate rejects out-of-range tunables before anything starts. A bad
// threshold must stop the process, not produce silently wrong metrics.
func (c *Config) Validate() error {
	if c.EARThreshold <= 0 || c.EARThreshold >= 1 {
		return fmt.Errorf("EAR_THRESHOLD must be in (0, 1), got %v", c.EARThreshold)
	}
	if c.PerclosThreshold <= 0 || c.PerclosThreshold >= 1 {
		return fmt.Errorf("PERCLOS_THRESHOLD must be in (0, 1), got %v", c.PerclosThreshold)
	}
	if c.PerclosWindowSec <= 0 {
		return fmt.Errorf("PERCLOS_WINDOW_SEC must be positive, got %d", c.PerclosWindowSec)
	}
	if c.MicrosleepSec <= 0 {
		return fmt.Errorf("MICROSLEEP_SEC must be positive, got %v", c.MicrosleepSec)
	}
	if c.BlinkRateLow < 0 || c.BlinkRateHigh <= c.BlinkRateLow {
		return fmt.Errorf("blink rate bounds invalid: low=%d high=%d", c.BlinkRateLow, c.BlinkRateHigh)
	}
	if c.FaceWidthCM <= 0 || c.EyeDistCM <= 0 || c.FocalLengthPx <= 0 {
		return fmt.Errorf("distance model constants must be positive")
	}
	if c.DistanceAlpha <= 0 || c.DistanceAlpha > 1 {
		return fmt.Errorf("DISTANCE_ALPHA must be in (0, 1], got %v", c.DistanceAlpha)
	}
	if c.TooCloseCM <= 0 || c.DistanceSustainSec <= 0 {
		return fmt.Errorf("proximity threshold and sustain must be positive")
	}
	if c.HeadDownDeg <= 0 {
		return fmt.Errorf("HEAD_DOWN_DEG must be positive, got %v", c.HeadDownDeg)
	}
	if c.HeadUpDeg >= 0 {
		return fmt.Errorf("HEAD_UP_DEG must be negative, got %v", c.HeadUpDeg)
	}
	if c.PostureSustainSec <= 0 || c.PoseFailureReset <= 0 {
		return fmt.Errorf("posture sustain and failure reset must be positive")
	}
	if c.CooldownSec <= 0 {
		return fmt.Errorf("ALERT_COOLDOWN_SEC must be positive, got %d", c.CooldownSec)
	}
	return nil
}

func getEnv(key string, defaultVal string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultVal
}

func getEnvInt(key string, defaultVal int) int {
	if v := os.Getenv(key); v != "" {
		if intVal, err := strconv.Atoi(v); err == nil {
			return intVal
		}
	}
	return defaultVal
}

func getEnvFloat(key string, defaultVal float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return defaultVal
}

func getEnvBool(key string, defaultVal bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return defaultVal
}
