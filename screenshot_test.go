package dragscroll

import "testing"

func TestSanitizeLabel(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"hello", "hello"},
		{"after-drag", "after-drag"},
		{"frame.01", "frame.01"},
		{"has spaces", "has_spaces"},
		{"path/to/thing", "path_to_thing"},
		{"back\\slash", "back_slash"},
		{"special!@#$%", "special_____"},
		{"", "unlabeled"},
		{"   ", "unlabeled"},
		{"MixedCase123", "MixedCase123"},
	}
	for _, tt := range tests {
		got := sanitizeLabel(tt.in)
		if got != tt.want {
			t.Errorf("sanitizeLabel(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestScreenshotQueueAppend(t *testing.T) {
	h := NewHost(10, 10)
	h.Screenshot("a")
	h.Screenshot("b")
	h.Screenshot("c")
	if len(h.screenshotQueue) != 3 {
		t.Fatalf("queue len = %d, want 3", len(h.screenshotQueue))
	}
	if h.screenshotQueue[0] != "a" || h.screenshotQueue[1] != "b" || h.screenshotQueue[2] != "c" {
		t.Errorf("queue = %v, want [a b c]", h.screenshotQueue)
	}
}

func TestScreenshotDirDefault(t *testing.T) {
	h := NewHost(10, 10)
	if h.ScreenshotDir != "screenshots" {
		t.Errorf("ScreenshotDir = %q, want %q", h.ScreenshotDir, "screenshots")
	}
}

func TestUnpremultiply(t *testing.T) {
	pixels := []byte{
		255, 128, 0, 255,   // opaque: unchanged
		64, 32, 0, 128,     // half alpha: doubled
		0, 0, 0, 0,         // transparent: unchanged
		200, 200, 200, 100, // clamps at 255
	}
	img := unpremultiply(pixels, 2, 2)
	want := []byte{
		255, 128, 0, 255,
		127, 63, 0, 128,
		0, 0, 0, 0,
		255, 255, 255, 100,
	}
	for i := range want {
		if img.Pix[i] != want[i] {
			t.Errorf("Pix[%d] = %d, want %d", i, img.Pix[i], want[i])
		}
	}
}
