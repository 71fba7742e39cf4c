// This program generates a small sample dataset for trying imgaug by hand:
//
//	go run testdata/generate.go && imgaug testdata/samples /tmp/augmented
//
//go:build ignore

package main

import (
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"log"
	"math"
	"os"
	"path/filepath"
)

func main() {
	dir := filepath.Join("testdata", "samples")
	if err := os.MkdirAll(dir, 0755); err != nil {
		log.Fatal(err)
	}

	// A blue sky over green ground
	generateSkyGround(filepath.Join(dir, "landscape.jpg"))

	// Horizontal color bands, useful for checking the shade gradients
	generateSunset(filepath.Join(dir, "sunset.png"))

	// A checkerboard with hard edges, useful for checking sharpness
	generateChecker(filepath.Join(dir, "checker.png"))

	// Tagged as final: copied, never augmented
	generateSolidColor(filepath.Join(dir, "red_object_0.jpg"), color.RGBA{220, 30, 30, 255})

	// A JPEG cut off mid-scan, decoded best-effort with the missing rows filled
	writeTruncated(filepath.Join(dir, "cutoff.jpg"), generateSkyGround)

	// A PNG cut off mid-stream, reported as a decode failure
	writeTruncated(filepath.Join(dir, "truncated.png"), generateChecker)

	// A non-image file for skip testing
	os.WriteFile(filepath.Join(dir, "readme.txt"), []byte("not an image"), 0644)
}

func generateSkyGround(path string) {
	img := image.NewRGBA(image.Rect(0, 0, 224, 224))
	for y := 0; y < 224; y++ {
		for x := 0; x < 224; x++ {
			if y < 112 {
				b := uint8(180 + y/3)
				img.Set(x, y, color.RGBA{100, 150, b, 255})
			} else {
				g := uint8(100 + (224-y)/3)
				img.Set(x, y, color.RGBA{50, g, 30, 255})
			}
		}
	}
	saveJPEG(path, img)
}

func generateSunset(path string) {
	img := image.NewRGBA(image.Rect(0, 0, 224, 160))
	for y := 0; y < 160; y++ {
		for x := 0; x < 224; x++ {
			r := uint8(255 - y/3)
			g := uint8(100 + int(80*math.Sin(float64(y)/30)))
			b := uint8(50 + y/4)
			img.Set(x, y, color.RGBA{r, g, b, 255})
		}
	}
	savePNG(path, img)
}

func generateChecker(path string) {
	img := image.NewRGBA(image.Rect(0, 0, 128, 128))
	for y := 0; y < 128; y++ {
		for x := 0; x < 128; x++ {
			if (x/16+y/16)%2 == 0 {
				img.Set(x, y, color.RGBA{240, 240, 240, 255})
			} else {
				img.Set(x, y, color.RGBA{20, 20, 20, 255})
			}
		}
	}
	savePNG(path, img)
}

func generateSolidColor(path string, c color.RGBA) {
	img := image.NewRGBA(image.Rect(0, 0, 96, 96))
	for y := 0; y < 96; y++ {
		for x := 0; x < 96; x++ {
			img.Set(x, y, c)
		}
	}
	saveJPEG(path, img)
}

func writeTruncated(path string, generate func(string)) {
	tmp := path + ".full" + filepath.Ext(path)
	generate(tmp)
	data, err := os.ReadFile(tmp)
	if err != nil {
		log.Fatal(err)
	}
	os.Remove(tmp)
	os.WriteFile(path, data[:len(data)*2/3], 0644)
}

func saveJPEG(path string, img image.Image) {
	f, _ := os.Create(path)
	defer f.Close()
	jpeg.Encode(f, img, &jpeg.Options{Quality: 90})
}

func savePNG(path string, img image.Image) {
	f, _ := os.Create(path)
	defer f.Close()
	png.Encode(f, img)
}
