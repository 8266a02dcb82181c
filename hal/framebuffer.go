package hal

import "sync"

// MemoryFramebuffer is an RGB565 little-endian framebuffer in RAM. Present
// hands the buffer to an optional sink (a panel driver on the device, nothing
// on the host where the window or terminal samples the buffer itself).
type MemoryFramebuffer struct {
	mu      sync.Mutex
	width   int
	height  int
	stride  int
	buf     []byte
	present func(buf []byte, width, height int) error
}

// NewMemoryFramebuffer allocates a width×height framebuffer.
func NewMemoryFramebuffer(width, height int, present func(buf []byte, width, height int) error) *MemoryFramebuffer {
	stride := width * 2
	return &MemoryFramebuffer{
		width:   width,
		height:  height,
		stride:  stride,
		buf:     make([]byte, stride*height),
		present: present,
	}
}

func (f *MemoryFramebuffer) Width() int          { return f.width }
func (f *MemoryFramebuffer) Height() int         { return f.height }
func (f *MemoryFramebuffer) Format() PixelFormat { return PixelFormatRGB565 }
func (f *MemoryFramebuffer) StrideBytes() int    { return f.stride }
func (f *MemoryFramebuffer) Buffer() []byte      { return f.buf }

func (f *MemoryFramebuffer) Present() error {
	if f.present == nil {
		return nil
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.present(f.buf, f.width, f.height)
}

func (f *MemoryFramebuffer) ClearRGB(r, g, b uint8) {
	f.mu.Lock()
	defer f.mu.Unlock()

	pixel := rgb565(r, g, b)
	lo := byte(pixel)
	hi := byte(pixel >> 8)
	for i := 0; i < len(f.buf); i += 2 {
		f.buf[i] = lo
		f.buf[i+1] = hi
	}
}

func (f *MemoryFramebuffer) snapshotRGB565(dst []byte) {
	f.mu.Lock()
	defer f.mu.Unlock()
	copy(dst, f.buf)
}
