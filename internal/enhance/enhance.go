// Package enhance implements the four classic image-enhancement operators.
//
// Each operator blends the input with a "degenerate" version of it:
//
//	out = degenerate + factor*(in - degenerate)
//
// so a factor of 1.0 returns the input unchanged, 0.0 returns the degenerate
// image and larger factors push the attribute past the original. Results are
// clamped and truncated to 8 bits per channel.
package enhance

import (
	"image"

	"github.com/bagtoad/imgaug/internal/pixbuf"
	"github.com/disintegration/imaging"
)

// smoothKernel is the 3x3 low-pass filter used as the sharpness baseline.
var smoothKernel = [9]float64{
	1, 1, 1,
	1, 5, 1,
	1, 1, 1,
}

// Color adjusts saturation. Factor 0 yields a grayscale image.
func Color(img image.Image, factor float64) (*image.NRGBA, error) {
	return blendWith(img, imaging.Grayscale(img), factor)
}

// Brightness scales intensity. Factor 0 yields a black image.
func Brightness(img image.Image, factor float64) (*image.NRGBA, error) {
	src, err := pixbuf.FromImage(img)
	if err != nil {
		return nil, err
	}
	for i, v := range src.Pix {
		src.Pix[i] = factor * v
	}
	return src.ToImage(), nil
}

// Contrast adjusts contrast around the mean luma. Factor 0 yields a solid
// gray image at that mean.
func Contrast(img image.Image, factor float64) (*image.NRGBA, error) {
	src, err := pixbuf.FromImage(img)
	if err != nil {
		return nil, err
	}
	mean := MeanLuma(img)
	for i, v := range src.Pix {
		src.Pix[i] = mean + factor*(v-mean)
	}
	return src.ToImage(), nil
}

// Sharpness adjusts edge definition. Factor 0 yields a smoothed image,
// factors above 1 sharpen.
func Sharpness(img image.Image, factor float64) (*image.NRGBA, error) {
	smoothed := imaging.Convolve3x3(img, smoothKernel, &imaging.ConvolveOptions{Normalize: true})
	return blendWith(img, smoothed, factor)
}

// MeanLuma returns the mean grayscale level of img rounded to the nearest
// integer.
func MeanLuma(img image.Image) float64 {
	gray := imaging.Grayscale(img)
	b := gray.Bounds()
	n := b.Dx() * b.Dy()
	if n == 0 {
		return 0
	}
	var sum int
	for y := 0; y < b.Dy(); y++ {
		row := gray.Pix[y*gray.Stride:]
		for x := 0; x < b.Dx(); x++ {
			sum += int(row[x*4])
		}
	}
	return float64((2*sum + n) / (2 * n))
}

func blendWith(img, degenerate image.Image, factor float64) (*image.NRGBA, error) {
	src, err := pixbuf.FromImage(img)
	if err != nil {
		return nil, err
	}
	deg, err := pixbuf.FromImage(degenerate)
	if err != nil {
		return nil, err
	}
	for i, v := range src.Pix {
		d := deg.Pix[i]
		src.Pix[i] = d + factor*(v-d)
	}
	return src.ToImage(), nil
}
