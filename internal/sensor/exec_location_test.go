package sensor

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"
)

func TestParseLocationOutput(t *testing.T) {
	loc, err := ParseLocationOutput([]byte(`{"latitude": 50.4501, "longitude": 30.5234, "altitude": 179.0}`))
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if loc.Latitude != 50.4501 || loc.Longitude != 30.5234 {
		t.Errorf("wrong coordinates parsed: %+v", loc)
	}
}

func TestParseLocationOutputRejectsGarbage(t *testing.T) {
	if _, err := ParseLocationOutput([]byte("GPS not available")); err == nil {
		t.Fatal("non-JSON output should fail")
	}
	if _, err := ParseLocationOutput(nil); err == nil {
		t.Fatal("empty output should fail")
	}
}

func TestParseLocationOutputRejectsOutOfRange(t *testing.T) {
	_, err := ParseLocationOutput([]byte(`{"latitude": 120.0, "longitude": 30.0}`))
	if err == nil {
		t.Fatal("latitude 120 should be rejected")
	}
	if !strings.Contains(err.Error(), "out of range") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestParseLocationOutputZeroZero(t *testing.T) {
	// 0,0 is a real (if unlikely) position, not a failure
	loc, err := ParseLocationOutput([]byte(`{"latitude": 0, "longitude": 0}`))
	if err != nil {
		t.Fatalf("0,0 should parse: %v", err)
	}
	if !loc.Valid() {
		t.Error("0,0 should be valid")
	}
}

func TestResolveEmptyCommand(t *testing.T) {
	p := NewExecLocationProvider("", time.Second)
	if _, err := p.Resolve(context.Background()); !errors.Is(err, ErrUnsupported) {
		t.Fatalf("empty command should report ErrUnsupported, got %v", err)
	}
}

func TestResolveMissingCommand(t *testing.T) {
	p := NewExecLocationProvider("threatlink-no-such-command-xyz", time.Second)
	if _, err := p.Resolve(context.Background()); !errors.Is(err, ErrUnsupported) {
		t.Fatalf("missing binary should report ErrUnsupported, got %v", err)
	}
}

func TestResolveDefaultTimeout(t *testing.T) {
	p := NewExecLocationProvider("termux-location", 0)
	if p.Timeout != 10*time.Second {
		t.Errorf("zero timeout should default to 10s, got %v", p.Timeout)
	}
}

func TestIsPermissionOutput(t *testing.T) {
	cases := []struct {
		out  string
		want bool
	}{
		{"Location permission not granted", true},
		{"access denied by user", true},
		{"operation not allowed", true},
		{"GPS hardware failure", false},
		{"", false},
	}
	for _, tc := range cases {
		if got := isPermissionOutput([]byte(tc.out)); got != tc.want {
			t.Errorf("isPermissionOutput(%q) = %v, want %v", tc.out, got, tc.want)
		}
	}
}

func TestFakeLocationProviderHonorsContext(t *testing.T) {
	p := &FakeLocationProvider{Delay: time.Minute}
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	_, err := p.Resolve(ctx)
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("expected deadline exceeded, got %v", err)
	}
}
