package integration

import (
	"context"
	"net"
	"testing"
	"time"

	"google.golang.org/grpc"

	"FATIGUE_MONITOR/go-backend/internal/landmarks"
	"FATIGUE_MONITOR/go-backend/internal/services"
	"FATIGUE_MONITOR/go-backend/pkg/pb"
)

// fakeLandmarker stands in for the Python FaceMesh sidecar. An empty frame
// is answered with a no-face result, anything else with a full landmark set.
type fakeLandmarker struct {
	pb.UnimplementedFaceLandmarkerServer
}

func (fakeLandmarker) Detect(ctx context.Context, req *pb.DetectRequest) (*pb.LandmarkFrame, error) {
	if len(req.JpegData) == 0 {
		return &pb.LandmarkFrame{FaceDetected: false, TimestampMs: req.TimestampMs}, nil
	}

	points := make([]*pb.Landmark, landmarks.NumLandmarks)
	for i := range points {
		points[i] = &pb.Landmark{X: 0.5, Y: 0.5, Z: 0}
	}
	return &pb.LandmarkFrame{
		FaceDetected: true,
		Landmarks:    points,
		TimestampMs:  req.TimestampMs,
		InferenceMs:  1.5,
	}, nil
}

func (fakeLandmarker) Health(ctx context.Context, _ *pb.Empty) (*pb.HealthStatus, error) {
	return &pb.HealthStatus{Healthy: true, ModelVersion: "test"}, nil
}

func startFakeDetector(t *testing.T) string {
	t.Helper()

	lis, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("listen failed: %v", err)
	}

	server := grpc.NewServer()
	pb.RegisterFaceLandmarkerServer(server, fakeLandmarker{})
	go server.Serve(lis)
	t.Cleanup(server.Stop)

	return lis.Addr().String()
}

func TestDetectorClientDetect(t *testing.T) {
	addr := startFakeDetector(t)

	client, err := services.NewDetectorClient(addr)
	if err != nil {
		t.Fatalf("did not connect: %v", err)
	}
	defer client.Close()

	set, err := client.Detect(context.Background(), []byte("jpeg bytes"), 640, 480, time.Now())
	if err != nil {
		t.Fatalf("Detect failed: %v", err)
	}
	if set == nil {
		t.Fatalf("expected a landmark set, got no face")
	}
	if got := set.Point(landmarks.NoseTip); got.X != 0.5 {
		t.Errorf("unexpected nose landmark: %+v", got)
	}
}

func TestDetectorClientNoFace(t *testing.T) {
	addr := startFakeDetector(t)

	client, err := services.NewDetectorClient(addr)
	if err != nil {
		t.Fatalf("did not connect: %v", err)
	}
	defer client.Close()

	set, err := client.Detect(context.Background(), nil, 640, 480, time.Now())
	if err != nil {
		t.Fatalf("Detect failed: %v", err)
	}
	if set != nil {
		t.Fatalf("expected no face, got a landmark set")
	}
}

func TestDetectorClientHealth(t *testing.T) {
	addr := startFakeDetector(t)

	client, err := services.NewDetectorClient(addr)
	if err != nil {
		t.Fatalf("did not connect: %v", err)
	}
	defer client.Close()

	if !client.HealthCheck() {
		t.Errorf("expected healthy detector")
	}
}
