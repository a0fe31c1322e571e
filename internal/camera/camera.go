// Package camera reads JPEG frames from an MJPEG-over-HTTP stream, the
// interface mjpg-streamer exposes on the Pi.
package camera

import (
	"bytes"
	"context"
	"fmt"
	"image/jpeg"
	"io"
	"log"
	"mime"
	"mime/multipart"
	"net/http"
	"sync"
	"time"

	"FATIGUE_MONITOR/go-backend/internal/pipeline"
)

// Client implements pipeline.Camera over a multipart MJPEG stream. It
// reconnects with backoff on stream errors; only Close makes it permanent.
type Client struct {
	url  string
	http *http.Client

	mu     sync.Mutex
	closed bool
	body   io.ReadCloser
	parts  *multipart.Reader
}

func NewClient(url string) *Client {
	return &Client{
		url: url,
		// The stream body is long-lived; only the dial phase is bounded.
		http: &http.Client{
			Transport: &http.Transport{
				ResponseHeaderTimeout: 5 * time.Second,
			},
		},
	}
}

// connect opens the stream and parses the multipart boundary.
func (c *Client) connect(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return fmt.Errorf("camera request: %w", err)
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("camera connect: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		return fmt.Errorf("camera stream returned %s", resp.Status)
	}

	mediaType, params, err := mime.ParseMediaType(resp.Header.Get("Content-Type"))
	if err != nil || params["boundary"] == "" {
		resp.Body.Close()
		return fmt.Errorf("camera stream is not multipart: %q", resp.Header.Get("Content-Type"))
	}
	if mediaType != "multipart/x-mixed-replace" {
		log.Printf("camera: unexpected media type %q, trying anyway", mediaType)
	}

	c.body = resp.Body
	c.parts = multipart.NewReader(resp.Body, params["boundary"])
	return nil
}

func (c *Client) disconnect() {
	if c.body != nil {
		c.body.Close()
		c.body = nil
		c.parts = nil
	}
}

// ReadFrame returns the next frame. Transient stream failures surface as
// pipeline.ErrNoSignal after one reconnect attempt; a closed client always
// returns pipeline.ErrCameraClosed.
func (c *Client) ReadFrame(ctx context.Context) (pipeline.Frame, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return pipeline.Frame{}, pipeline.ErrCameraClosed
	}

	if c.parts == nil {
		if err := c.connect(ctx); err != nil {
			return pipeline.Frame{}, fmt.Errorf("%w: %v", pipeline.ErrNoSignal, err)
		}
	}

	part, err := c.parts.NextPart()
	if err != nil {
		// Stream broke; drop the connection so the next call redials.
		c.disconnect()
		return pipeline.Frame{}, fmt.Errorf("%w: %v", pipeline.ErrNoSignal, err)
	}
	data, err := io.ReadAll(part)
	part.Close()
	if err != nil {
		c.disconnect()
		return pipeline.Frame{}, fmt.Errorf("%w: %v", pipeline.ErrNoSignal, err)
	}

	cfg, err := jpeg.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return pipeline.Frame{}, fmt.Errorf("%w: bad jpeg: %v", pipeline.ErrNoSignal, err)
	}

	return pipeline.Frame{
		JPEG:      data,
		Width:     cfg.Width,
		Height:    cfg.Height,
		Timestamp: time.Now(),
	}, nil
}

// Close permanently shuts the camera down.
func (c *Client) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.closed = true
	c.disconnect()
	return nil
}
