// Command fbdemo exercises the glfb render-target pipeline on the
// in-memory software backend and saves the result as a PNG.
//
// It renders four colored tiles into an offscreen framebuffer, blits
// them into the default framebuffer with scaling, and reads the final
// pixels back.
package main

import (
	"flag"
	"image"
	"image/png"
	"log"
	"os"

	"github.com/gogpu/gputypes"

	"github.com/gogpu/glfb"
	"github.com/gogpu/glfb/memgl"
)

func main() {
	var (
		width  = flag.Int("width", 512, "image width")
		height = flag.Int("height", 512, "image height")
		output = flag.String("output", "fbdemo.png", "output file")
	)
	flag.Parse()

	dev := memgl.New(memgl.WithSize(*width, *height))
	ctx, err := glfb.NewContext(glfb.WithAPI(dev))
	if err != nil {
		log.Fatalf("Failed to create context: %v", err)
	}

	fb := makeOffscreen(ctx, dev, *width/2, *height/2)
	defer fb.Delete()

	drawTiles(ctx, fb, *width/2, *height/2)
	compose(ctx, fb, *width, *height)

	img, err := readback(ctx, *width, *height)
	if err != nil {
		log.Fatalf("Failed to read pixels: %v", err)
	}

	if err := savePNG(*output, img); err != nil {
		log.Fatalf("Failed to save: %v", err)
	}

	log.Printf("Demo saved to %s (%dx%d)\n", *output, *width, *height)
}

// makeOffscreen builds a complete offscreen target with a color texture.
func makeOffscreen(ctx *glfb.Context, dev *memgl.Device, w, h int) *glfb.Framebuffer {
	fb, err := ctx.NewFramebuffer()
	if err != nil {
		log.Fatalf("Failed to create framebuffer: %v", err)
	}

	tex := dev.NewTexture2D(w, h, gputypes.TextureFormatRGBA8Unorm)
	fb.AttachTexture2D(glfb.TargetReadDraw, glfb.ColorSlot(0), tex, 0)
	fb.MapForDraw([]int{0})
	fb.MapForRead(0)

	if err := fb.CheckStatus(glfb.TargetReadDraw); err != nil {
		log.Fatalf("Offscreen target incomplete: %v", err)
	}
	return fb
}

// drawTiles clears each quadrant of the offscreen target to its own color
// using scissor-free per-quadrant blits of single-color fills.
func drawTiles(ctx *glfb.Context, fb *glfb.Framebuffer, w, h int) {
	fb.Bind(glfb.TargetDraw)
	ctx.SetClearColor(glfb.RGB(0.15, 0.15, 0.2))
	ctx.ClearBuffers(glfb.ClearColor)

	colors := []glfb.Color{
		glfb.RGB(0.9, 0.3, 0.3),
		glfb.RGB(0.3, 0.9, 0.3),
		glfb.RGB(0.3, 0.3, 0.9),
		glfb.RGB(0.9, 0.8, 0.2),
	}
	for i, c := range colors {
		tile := tileTarget(ctx, c, w/4, h/4)
		tile.Bind(glfb.TargetRead)
		fb.Bind(glfb.TargetDraw)
		x := (i % 2) * w / 2
		y := (i / 2) * h / 2
		ctx.Blit(
			image.Rect(0, 0, w/4, h/4),
			image.Rect(x+w/8, y+h/8, x+3*w/8, y+3*h/8),
			glfb.BlitColor, glfb.FilterLinear)
		tile.Delete()
	}
}

// tileTarget returns a small single-color framebuffer used as a blit source.
func tileTarget(ctx *glfb.Context, c glfb.Color, w, h int) *glfb.Framebuffer {
	dev := ctx.API().(*memgl.Device)
	fb, err := ctx.NewFramebuffer()
	if err != nil {
		log.Fatalf("Failed to create tile: %v", err)
	}
	tex := dev.NewTexture2D(w, h, gputypes.TextureFormatRGBA8Unorm)
	fb.AttachTexture2D(glfb.TargetReadDraw, glfb.ColorSlot(0), tex, 0)
	fb.MapForDraw([]int{0})
	fb.MapForRead(0)

	fb.Bind(glfb.TargetDraw)
	ctx.SetClearColor(c)
	ctx.ClearBuffers(glfb.ClearColor)
	return fb
}

// compose scales the offscreen target into the default framebuffer.
func compose(ctx *glfb.Context, fb *glfb.Framebuffer, w, h int) {
	fb.Bind(glfb.TargetRead)
	ctx.BindDefault(glfb.TargetDraw)
	ctx.MapDefaultForDraw([]glfb.DefaultDrawAttachment{glfb.DefaultDrawBackLeft})

	ctx.SetClearColor(glfb.RGB(0, 0, 0))
	ctx.ClearBuffers(glfb.ClearColor)
	ctx.Blit(
		image.Rect(0, 0, w/2, h/2),
		image.Rect(0, 0, w, h),
		glfb.BlitColor, glfb.FilterLinear)
}

// readback pulls the default framebuffer's back buffer into an image.
func readback(ctx *glfb.Context, w, h int) (*image.RGBA, error) {
	ctx.BindDefault(glfb.TargetRead)
	ctx.MapDefaultForRead(glfb.DefaultReadBack)

	img := glfb.NewImage2D(glfb.ComponentsRGBA, glfb.ComponentUnsignedByte)
	if err := ctx.Read(image.Point{}, image.Pt(w, h), glfb.ComponentsRGBA, glfb.ComponentUnsignedByte, img); err != nil {
		return nil, err
	}

	// GL rows run bottom-up; image.RGBA runs top-down.
	out := image.NewRGBA(image.Rect(0, 0, w, h))
	src := img.Pix()
	for y := 0; y < h; y++ {
		copy(out.Pix[y*out.Stride:y*out.Stride+w*4], src[(h-1-y)*w*4:(h-y)*w*4])
	}
	return out, nil
}

func savePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return png.Encode(f, img)
}
