package probe

import (
	"fmt"
	"image"
	"image/color"
	"time"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

const defaultSampleWindow = 120

// FrameStats measures frame times between Begin and End calls and keeps a
// rolling window of samples. Begin opens the measurement window before the
// frame is rendered; End closes it after rendering, producing one sample.
// Mismatched calls only corrupt the displayed statistic, nothing else.
type FrameStats struct {
	samples []time.Duration
	next    int
	count   int

	frameStart time.Time
	open       bool
}

func NewFrameStats(window int) *FrameStats {
	if window <= 0 {
		window = defaultSampleWindow
	}
	return &FrameStats{
		samples: make([]time.Duration, window),
	}
}

func (s *FrameStats) Begin() {
	s.frameStart = time.Now()
	s.open = true
}

func (s *FrameStats) End() {
	if !s.open {
		return
	}
	s.open = false
	s.record(time.Since(s.frameStart))
}

func (s *FrameStats) record(d time.Duration) {
	s.samples[s.next] = d
	s.next = (s.next + 1) % len(s.samples)
	if s.count < len(s.samples) {
		s.count++
	}
}

func (s *FrameStats) SampleCount() int {
	return s.count
}

func (s *FrameStats) Last() time.Duration {
	if s.count == 0 {
		return 0
	}
	last := s.next - 1
	if last < 0 {
		last = len(s.samples) - 1
	}
	return s.samples[last]
}

func (s *FrameStats) Avg() time.Duration {
	if s.count == 0 {
		return 0
	}
	var sum time.Duration
	for i := 0; i < s.count; i++ {
		sum += s.samples[i]
	}
	return sum / time.Duration(s.count)
}

func (s *FrameStats) Min() time.Duration {
	if s.count == 0 {
		return 0
	}
	min := s.samples[0]
	for i := 1; i < s.count; i++ {
		if s.samples[i] < min {
			min = s.samples[i]
		}
	}
	return min
}

func (s *FrameStats) Max() time.Duration {
	if s.count == 0 {
		return 0
	}
	max := s.samples[0]
	for i := 1; i < s.count; i++ {
		if s.samples[i] > max {
			max = s.samples[i]
		}
	}
	return max
}

func (s *FrameStats) FPS() float64 {
	avg := s.Avg()
	if avg <= 0 {
		return 0
	}
	return float64(time.Second) / float64(avg)
}

// Text renders the one-line readout the overlay displays.
func (s *FrameStats) Text() string {
	return fmt.Sprintf("frame %.2fms avg %.2fms min %.2fms max %.2fms %.1f fps",
		float64(s.Last())/float64(time.Millisecond),
		float64(s.Avg())/float64(time.Millisecond),
		float64(s.Min())/float64(time.Millisecond),
		float64(s.Max())/float64(time.Millisecond),
		s.FPS(),
	)
}

// RenderOverlay rasterizes the readout into dst at (x, y) for hosts that
// blit a HUD layer. The baseline sits one glyph height below y.
func (s *FrameStats) RenderOverlay(dst *image.RGBA, x, y int) {
	face := basicfont.Face7x13
	drawer := font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(color.RGBA{R: 255, G: 255, B: 255, A: 255}),
		Face: face,
		Dot:  fixed.P(x, y+face.Height),
	}
	drawer.DrawString(s.Text())
}
