// This file is part of Gestencil.
//
// Gestencil is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gestencil is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gestencil.  If not, see <https://www.gnu.org/licenses/>.

package main

import (
	"errors"
	"fmt"
	"image"
	"io"
	"os"
	"runtime"
	"strings"

	"github.com/bradleyjkemp/memviz"
	"github.com/jetsetilly/gestencil/framebuffer"
	"github.com/jetsetilly/gestencil/hardware/memory"
	"github.com/jetsetilly/gestencil/hardware/memory/memorymap"
	"github.com/jetsetilly/gestencil/logger"
	"github.com/jetsetilly/gestencil/modalflag"
	"github.com/jetsetilly/gestencil/paths"
	"github.com/jetsetilly/gestencil/prefs"
	"github.com/jetsetilly/gestencil/render"
	"github.com/jetsetilly/gestencil/render/glrender"
	"github.com/jetsetilly/gestencil/render/softrender"
	"github.com/jetsetilly/gestencil/statsview"
	"github.com/jetsetilly/gestencil/stencil"
	"github.com/jetsetilly/gestencil/version"
	"golang.org/x/image/bmp"
)

// SDL and OpenGL must be used from the main thread.
func init() {
	runtime.LockOSThread()
}

// #mainthread
func main() {
	os.Exit(launch(os.Args[1:], os.Stdout))
}

// launch parses the command line and runs the selected mode. Returns the
// value to use with os.Exit().
func launch(args []string, output io.Writer) int {
	md := &modalflag.Modes{Output: output}
	md.NewArgs(args)
	md.AddSubModes("RUN", "GL", "VERSION")

	var stats *bool
	if statsview.Available() {
		stats = md.AddBool("statsview", false, fmt.Sprintf("run stats server (%s)", statsview.Address))
	}

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		return 0
	case modalflag.ParseError:
		fmt.Fprintf(output, "* error: %v\n", err)
		return 10
	}

	if stats != nil && *stats {
		stop := statsview.Launch(output)
		defer stop()
	}

	switch md.Mode() {
	case "RUN":
		err = upload(md, output, newSoftTarget)
	case "GL":
		err = upload(md, output, newGLTarget)
	case "VERSION":
		err = showVersion(md, output)
	}

	if err != nil {
		fmt.Fprintf(output, "* error in %s mode: %s\n", md, err)
		return 20
	}

	return 0
}

func showVersion(md *modalflag.Modes, output io.Writer) error {
	md.NewMode()
	revision := md.AddBool("revision", false, "display revision information")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	v, r, _ := version.Version()
	fmt.Fprintf(output, "%s %s\n", version.ApplicationName, v)
	if *revision {
		fmt.Fprintln(output, r)
	}

	return nil
}

// target is the render.Backend used by upload() along with the functions
// needed to create the native framebuffer and to inspect the result.
type target interface {
	render.Backend
	createFramebuffer(width, height int) (uint32, error)
	readStencil(fbo uint32) []uint8
	destroy() error
}

type softTarget struct {
	*softrender.Backend
}

func newSoftTarget(width, height int) (target, error) {
	return softTarget{Backend: softrender.NewBackend(width, height)}, nil
}

func (t softTarget) createFramebuffer(width, height int) (uint32, error) {
	return t.CreateFramebuffer(width, height), nil
}

func (t softTarget) readStencil(fbo uint32) []uint8 {
	return t.Stencil(fbo)
}

func (t softTarget) destroy() error {
	return nil
}

type glTarget struct {
	*glrender.Backend
	ctx *glrender.Context
}

func newGLTarget(width, height int) (target, error) {
	ctx, err := glrender.NewContext(width, height)
	if err != nil {
		return nil, err
	}

	b, err := glrender.NewBackend(width, height)
	if err != nil {
		return nil, errors.Join(err, ctx.Destroy())
	}

	return glTarget{Backend: b, ctx: ctx}, nil
}

func (t glTarget) createFramebuffer(width, height int) (uint32, error) {
	return t.CreateFramebuffer(width, height)
}

func (t glTarget) readStencil(fbo uint32) []uint8 {
	return t.ReadStencil(fbo)
}

func (t glTarget) destroy() error {
	t.Destroy()
	return t.ctx.Destroy()
}

const uploadHelp = `The raw file is loaded into emulated memory at the address given by -addr and
a single render target is registered at that address. The stencil buffer of
the render target is reconstructed from the alpha channel of the raw data.`

// name of the preferences file in the resource directory.
const prefsFilename = "preferences"

// upload implements the RUN and GL modes.
func upload(md *modalflag.Modes, output io.Writer, newTarget func(width, height int) (target, error)) error {
	md.NewMode()
	md.AdditionalHelp(uploadHelp)

	format := formatFlag(framebuffer.Format8888)
	md.AddVar(&format, "format", "pixel format: 565, 5551, 4444, 8888")
	address := addressFlag(memorymap.OriginVRAM)
	md.AddVar(&address, "addr", "address of the framebuffer in emulated memory")
	var renderSize sizeFlag
	md.AddVar(&renderSize, "render", "render size (WxH) if different to the logical size")

	width := md.AddInt("width", 480, "width of framebuffer in pixels")
	height := md.AddInt("height", 272, "height of framebuffer in pixels")
	stride := md.AddInt("stride", 0, "stride of framebuffer in pixels (defaults to width)")
	prefsArg := md.AddString("prefs", "", "preferences to apply to the stencil upload (eg. \"stencil.strictPipeline::false\")")
	bmpFile := md.AddString("bmp", "", "save stencil buffer as a bitmap image")
	memvizFile := md.AddString("memviz", "", "save graph of render targets in dot format")
	saved := md.AddBool("saved", false, "load stencil preferences from (and save to) the resource directory")
	log := md.AddBool("log", false, "echo log to stdout")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if *log {
		logger.SetEcho(output)
		defer logger.SetEcho(nil)
	}

	switch len(md.RemainingArgs()) {
	case 0:
		return fmt.Errorf("raw stencil data required for %s mode", md)
	case 1:
	default:
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	data, err := os.ReadFile(md.GetArg(0))
	if err != nil {
		return err
	}

	if *prefsArg != "" {
		prefs.PushCommandLineStack(*prefsArg)
		defer func() {
			if unused := prefs.PopCommandLineStack(); unused != "" {
				fmt.Fprintf(output, "! unused preferences: %s\n", unused)
			}
		}()
	}

	vfb := &framebuffer.VirtualFramebuffer{
		Address:      uint32(address),
		Format:       framebuffer.Format(format),
		Width:        *width,
		Height:       *height,
		RenderWidth:  renderSize.width,
		RenderHeight: renderSize.height,
		Stride:       *stride,
	}
	if vfb.Stride == 0 {
		vfb.Stride = vfb.Width
	}

	reg := framebuffer.NewRegistry()
	err = reg.Add(vfb)
	if err != nil {
		return err
	}

	mem := memory.NewMemory()
	err = mem.Write(vfb.Address, data)
	if err != nil {
		return err
	}

	tgt, err := newTarget(vfb.RenderWidth, vfb.RenderHeight)
	if err != nil {
		return err
	}
	defer func() {
		if err := tgt.destroy(); err != nil {
			fmt.Fprintf(output, "! %v\n", err)
		}
	}()

	vfb.FBO, err = tgt.createFramebuffer(vfb.RenderWidth, vfb.RenderHeight)
	if err != nil {
		return err
	}

	var prefsFile string
	if *saved {
		prefsFile, err = paths.ResourcePath("", prefsFilename)
		if err != nil {
			return err
		}
	}

	pref, err := stencil.NewPreferences(prefsFile)
	if err != nil {
		return err
	}
	if *saved {
		defer func() {
			if err := pref.Save(); err != nil {
				fmt.Fprintf(output, "! %v\n", err)
			}
		}()
	}

	upl, err := stencil.NewUploader(tgt, reg, mem, pref)
	if err != nil {
		return err
	}

	res, err := upl.Upload(vfb.Address, len(data))
	fmt.Fprintf(output, "%s: %s\n", vfb, res)
	if err != nil {
		fmt.Fprintf(output, "! %v\n", err)
	}
	if res != stencil.Attempted {
		return nil
	}

	st := tgt.readStencil(vfb.FBO)
	printStencil(output, st, vfb.RenderWidth)

	if *bmpFile != "" {
		err = saveBMP(*bmpFile, st, vfb.RenderWidth, vfb.RenderHeight)
		if err != nil {
			return err
		}
	}

	if *memvizFile != "" {
		err = saveMemviz(*memvizFile, reg)
		if err != nil {
			return err
		}
	}

	return nil
}

// printStencil writes the stencil values in hex, one line per row.
func printStencil(output io.Writer, st []uint8, width int) {
	if width <= 0 {
		return
	}
	s := strings.Builder{}
	for i, v := range st {
		if i > 0 {
			if i%width == 0 {
				s.WriteString("\n")
			} else {
				s.WriteString(" ")
			}
		}
		s.WriteString(fmt.Sprintf("%02x", v))
	}
	s.WriteString("\n")
	io.WriteString(output, s.String())
}

func saveBMP(path string, st []uint8, width, height int) error {
	img := image.NewGray(image.Rect(0, 0, width, height))
	copy(img.Pix, st)

	f, err := os.Create(path)
	if err != nil {
		return err
	}

	err = bmp.Encode(f, img)
	if err != nil {
		_ = f.Close()
		return err
	}

	return f.Close()
}

func saveMemviz(path string, reg *framebuffer.Registry) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	memviz.Map(f, reg)
	return f.Close()
}
