package debug

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"time"
)

// SaveScreenshot writes RGBA pixels read back from GL as a PNG under dir,
// named with a timestamp. The rows are flipped because GL reads with the
// origin at the bottom-left. Returns the written path.
func SaveScreenshot(dir string, pixels []byte, width, height int) (string, error) {
	if len(pixels) != width*height*4 {
		return "", fmt.Errorf("debug: screenshot pixel size %d, want %d", len(pixels), width*height*4)
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("debug: screenshot dir: %w", err)
	}

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	stride := width * 4
	for y := 0; y < height; y++ {
		src := pixels[(height-1-y)*stride : (height-y)*stride]
		copy(img.Pix[y*stride:(y+1)*stride], src)
	}

	path := filepath.Join(dir, fmt.Sprintf("sceneview-%s.png", time.Now().Format("20060102-150405")))
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("debug: screenshot create: %w", err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		return "", fmt.Errorf("debug: screenshot encode: %w", err)
	}
	return path, nil
}
