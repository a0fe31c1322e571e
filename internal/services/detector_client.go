package services

import (
	"context"
	"fmt"
	"log"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/keepalive"

	"FATIGUE_MONITOR/go-backend/internal/geometry"
	"FATIGUE_MONITOR/go-backend/internal/landmarks"
	pb "FATIGUE_MONITOR/go-backend/pkg/pb"
)

// DetectorClient talks to the Python FaceMesh sidecar over gRPC. Detect maps
// the wire result onto a landmark Set, with nil meaning "frame processed, no
// face present".
type DetectorClient struct {
	conn   *grpc.ClientConn
	client pb.FaceLandmarkerClient
	url    string
}

func NewDetectorClient(url string) (*DetectorClient, error) {
	log.Printf("Connecting to landmark detector at %s", url)

	opts := []grpc.DialOption{
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithDefaultCallOptions(
			grpc.MaxCallRecvMsgSize(50*1024*1024),
			grpc.MaxCallSendMsgSize(50*1024*1024),
		),
		grpc.WithKeepaliveParams(keepalive.ClientParameters{
			Time:                10 * time.Second,
			Timeout:             3 * time.Second,
			PermitWithoutStream: true,
		}),
	}

	conn, err := grpc.Dial(url, opts...)
	if err != nil {
		return nil, fmt.Errorf("could not connect to landmark detector at %s: %w", url, err)
	}

	return &DetectorClient{
		conn:   conn,
		client: pb.NewFaceLandmarkerClient(conn),
		url:    url,
	}, nil
}

// Detect sends one JPEG frame and returns its landmark set. A nil Set with a
// nil error means the detector processed the frame but found no face.
func (dc *DetectorClient) Detect(ctx context.Context, jpeg []byte, width, height int, ts time.Time) (*landmarks.Set, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	result, err := dc.client.Detect(ctx, &pb.DetectRequest{
		JpegData:    jpeg,
		TimestampMs: ts.UnixMilli(),
		Width:       int32(width),
		Height:      int32(height),
	})
	if err != nil {
		return nil, fmt.Errorf("detect: %w", err)
	}
	if !result.FaceDetected {
		return nil, nil
	}

	points := make([]geometry.Point3, len(result.Landmarks))
	for i, lm := range result.Landmarks {
		points[i] = geometry.Point3{X: float64(lm.X), Y: float64(lm.Y), Z: float64(lm.Z)}
	}
	set, err := landmarks.NewSet(points)
	if err != nil {
		return nil, fmt.Errorf("detect: %w", err)
	}
	return set, nil
}

func (dc *DetectorClient) HealthCheck() bool {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	status, err := dc.client.Health(ctx, &pb.Empty{})
	return err == nil && status.Healthy
}

func (dc *DetectorClient) Close() error {
	if dc.conn != nil {
		return dc.conn.Close()
	}
	return nil
}
