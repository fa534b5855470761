package thumbs

import (
	"encoding/base64"
	"fmt"
	"image"
	"strings"
	"testing"
)

func TestTransmitImageFromPNG_SmallImage(t *testing.T) {
	pngData := createTestPNG(t, 10, 10)

	cmd, err := TransmitImageFromPNG(pngData, 1)
	if err != nil {
		t.Fatalf("TransmitImageFromPNG() error: %v", err)
	}

	if !strings.HasPrefix(cmd, escStart) {
		t.Errorf("command should start with escStart")
	}
	if !strings.HasSuffix(cmd, escEnd) {
		t.Errorf("command should end with escEnd")
	}
	for _, param := range []string{"a=t", "f=100", "i=1", "q=2", "m=0"} {
		if !strings.Contains(cmd, param) {
			t.Errorf("command should contain %s", param)
		}
	}
}

func TestTransmitImageFromPNG_LargeData_Chunked(t *testing.T) {
	pngData := make([]byte, 4000) // >5300 base64 chars
	for i := range pngData {
		pngData[i] = byte(i % 256)
	}

	cmd, err := TransmitImageFromPNG(pngData, 42)
	if err != nil {
		t.Fatalf("TransmitImageFromPNG() error: %v", err)
	}

	if n := strings.Count(cmd, escStart); n < 2 {
		t.Errorf("expected multiple chunks for large data, got %d", n)
	}

	firstChunk, rest, found := strings.Cut(cmd, escEnd)
	if !found {
		t.Fatal("could not find escEnd in command")
	}
	if !strings.Contains(firstChunk, "i=42") || !strings.Contains(firstChunk, "m=1") {
		t.Errorf("first chunk = %q, want image ID and m=1", firstChunk[:40])
	}
	if strings.Contains(rest, "i=") {
		t.Error("subsequent chunks should not contain image ID")
	}

	lastChunk := cmd[strings.LastIndex(cmd, escStart):]
	if !strings.Contains(lastChunk, "m=0") {
		t.Error("last chunk should have m=0")
	}
}

func TestTransmitImageFromPNG_Base64Encoded(t *testing.T) {
	pngData := createTestPNG(t, 4, 4)

	cmd, err := TransmitImageFromPNG(pngData, 1)
	if err != nil {
		t.Fatalf("TransmitImageFromPNG() error: %v", err)
	}

	_, payload, _ := strings.Cut(cmd, ";")
	payload = strings.TrimSuffix(payload, escEnd)
	decoded, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		t.Fatalf("payload is not base64: %v", err)
	}
	if string(decoded) != string(pngData) {
		t.Error("decoded payload differs from PNG data")
	}
}

func TestTransmitImage(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 3, 3))
	cmd, err := TransmitImage(img, 9)
	if err != nil {
		t.Fatalf("TransmitImage() error: %v", err)
	}
	if !strings.Contains(cmd, "i=9") {
		t.Error("command should contain i=9")
	}
}

func TestPlaceImage(t *testing.T) {
	cmd := PlaceImage(7, 3, 5, 20, 10)

	if !strings.HasPrefix(cmd, "\x1b[s\x1b[3;5H") {
		t.Errorf("command should save cursor and move to 3;5, got %q", cmd)
	}
	for _, param := range []string{"a=p", "i=7", "c=20", "r=10", "C=1"} {
		if !strings.Contains(cmd, param) {
			t.Errorf("command should contain %s", param)
		}
	}
	if !strings.HasSuffix(cmd, "\x1b[u") {
		t.Error("command should restore cursor")
	}
}

func TestDeleteImage(t *testing.T) {
	want := fmt.Sprintf("%sa=d,d=I,i=%d,q=2;%s", escStart, 12, escEnd)
	if got := DeleteImage(12); got != want {
		t.Errorf("DeleteImage() = %q, want %q", got, want)
	}
}

func TestKittyProtocol_TargetPixelSize(t *testing.T) {
	w, h := KittyProtocol{}.TargetPixelSize(10, 5)
	if w != 80 || h != 80 {
		t.Errorf("TargetPixelSize(10, 5) = %dx%d, want 80x80", w, h)
	}
}

func TestKittyProtocol_ClearPlacements(t *testing.T) {
	cmd := KittyProtocol{}.ClearPlacements()
	if !strings.Contains(cmd, "a=d,d=a") {
		t.Errorf("ClearPlacements() = %q, want delete-all-placements", cmd)
	}
}
