package texture

import "testing"

func TestSampleInBounds(t *testing.T) {
	tex := New(2, 2)
	tex.Texels[0] = 0x11111111
	tex.Texels[1] = 0x22222222
	tex.Texels[2] = 0x33333333
	tex.Texels[3] = 0x44444444

	if got := tex.Sample(0, 0); got != 0x11111111 {
		t.Errorf("Sample(0,0) = %x, want 0x11111111", got)
	}
	if got := tex.Sample(1, 1); got != 0x44444444 {
		t.Errorf("Sample(1,1) = %x, want 0x44444444", got)
	}
}

func TestSampleClampsToEdge(t *testing.T) {
	tex := New(2, 2)
	tex.Texels[0] = 0xAAAAAAAA
	tex.Texels[3] = 0xBBBBBBBB

	if got := tex.Sample(-5, -5); got != 0xAAAAAAAA {
		t.Errorf("Sample(-5,-5) = %x, want 0xAAAAAAAA", got)
	}
	if got := tex.Sample(50, 50); got != 0xBBBBBBBB {
		t.Errorf("Sample(50,50) = %x, want 0xBBBBBBBB", got)
	}
}
