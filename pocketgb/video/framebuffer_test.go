package video

import "testing"

func TestFrameBufferGrayMapping(t *testing.T) {
	var f FrameBuffer
	for i, want := range shades {
		f.set(0, 0, uint8(i))
		if got := f.Gray(0, 0); got != want {
			t.Errorf("Gray(index %d) = %02X, want %02X", i, got, want)
		}
	}
}

func TestFrameBufferSetMasksToTwoBits(t *testing.T) {
	var f FrameBuffer
	f.set(5, 5, 0xFF)
	if got := f.Index(5, 5); got != 0x03 {
		t.Errorf("Index = %02X, want 03 (masked to 2 bits)", got)
	}
}

func TestFrameBufferClear(t *testing.T) {
	var f FrameBuffer
	f.set(10, 10, 3)
	f.Clear()
	if got := f.Index(10, 10); got != 0 {
		t.Errorf("Index after Clear = %d, want 0", got)
	}
}

func TestFrameBufferSnapshotIsACopy(t *testing.T) {
	var f FrameBuffer
	f.set(0, 0, 2)
	snap := f.Snapshot()

	f.set(0, 0, 1)

	if snap[0] != 2 {
		t.Errorf("snapshot mutated after later writes: got %d, want 2", snap[0])
	}
	if got := f.Index(0, 0); got != 1 {
		t.Errorf("live buffer = %d, want 1", got)
	}
}
