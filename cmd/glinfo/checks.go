// SPDX-License-Identifier: Unlicense OR MIT

package main

import (
	"bytes"
	"context"
	"encoding/binary"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"math/bits"
	"os"
	"path/filepath"
	"time"

	"gioui.org/shader/gio"
	"golang.org/x/image/math/f32"

	"glutils.org/gl"
	"glutils.org/glsl"
)

var errSkipped = errors.New("skipped")

// Result is the outcome of one check.
type Result struct {
	Name string
	Info string
	Err  error
}

func (r Result) Status() string {
	switch {
	case errors.Is(r.Err, errSkipped):
		return "skipped"
	case r.Err != nil:
		return "FAILED"
	default:
		return "ok"
	}
}

func (r Result) Detail() string {
	if r.Err != nil && !errors.Is(r.Err, errSkipped) {
		return r.Err.Error()
	}
	return r.Info
}

func failed(results []Result) int {
	n := 0
	for _, r := range results {
		if r.Status() == "FAILED" {
			n++
		}
	}
	return n
}

type check struct {
	name string
	run  func(ctx context.Context, f gl.Functions, cfg Config) (string, error)
}

var checks = []check{
	{"buffer", checkBuffer},
	{"texture", checkTexture},
	{"vertex array", checkVertexArray},
	{"gio program", checkGioProgram},
	{"glsl program", checkGLSLProgram},
	{"wgsl shader", checkWGSL},
	{"fence", checkFence},
}

// runChecks runs every check in order. A check that leaves a driver
// error pending fails.
func runChecks(ctx context.Context, f gl.Functions, cfg Config, log *slog.Logger) []Result {
	if cfg.Debug {
		gl.InsertDebugMessage(f, 1, gl.DEBUG_SEVERITY_NOTIFICATION, "glinfo: running checks")
	}
	results := make([]Result, 0, len(checks))
	for _, c := range checks {
		info, err := c.run(ctx, f, cfg)
		if err == nil {
			err = gl.CheckError(f, c.name)
		}
		switch {
		case errors.Is(err, errSkipped):
			log.Debug("check skipped", "check", c.name, "reason", info)
		case err != nil:
			log.Error("check failed", "check", c.name, "err", err)
		default:
			log.Info("check passed", "check", c.name, "detail", info)
		}
		results = append(results, Result{Name: c.name, Info: info, Err: err})
	}
	return results
}

// driverError returns the pending driver error for op, or a generic one.
func driverError(f gl.Functions, op string) error {
	if err := gl.CheckError(f, op); err != nil {
		return err
	}
	return fmt.Errorf("%s failed", op)
}

var quad = []f32.Vec2{{-1, -1}, {1, -1}, {-1, 1}, {1, 1}}

func vertexBytes(v []f32.Vec2) []byte {
	b := make([]byte, 0, len(v)*8)
	for _, p := range v {
		for _, c := range p {
			b = binary.NativeEndian.AppendUint32(b, math.Float32bits(c))
		}
	}
	return b
}

func matrixBytes(m f32.Mat4) []byte {
	b := make([]byte, 0, len(m)*4)
	for _, v := range m {
		b = binary.NativeEndian.AppendUint32(b, math.Float32bits(v))
	}
	return b
}

func checkBuffer(_ context.Context, f gl.Functions, _ Config) (string, error) {
	obj := gl.Own(f, gl.CreateBuffer(f))
	defer obj.Release()
	buf := obj.Handle()
	buf.SetLabel(f, "glinfo vertices")

	data := vertexBytes(quad)
	if err := buf.AllocateImmutable(f, len(data), gl.StorageDynamic|gl.StorageMapRead, data); err != nil {
		return "", err
	}
	if err := gl.CheckError(f, "NamedBufferStorage"); err != nil {
		return "", err
	}
	half := len(data) / 2
	if err := buf.Range(half, half).Write(f, data[:half]); err != nil {
		return "", err
	}
	want := append(data[:half:half], data[:half]...)
	got := make([]byte, len(data))
	buf.Read(f, 0, got)
	if !bytes.Equal(got, want) {
		return "", errors.New("read back differs from written data")
	}
	m := buf.MapRange(f, 0, len(data), gl.MapRead)
	if m == nil {
		return "", driverError(f, "MapNamedBufferRange")
	}
	same := bytes.Equal(m, want)
	if err := buf.Unmap(f); err != nil {
		return "", err
	}
	if !same {
		return "", errors.New("mapping differs from written data")
	}
	return fmt.Sprintf("%d bytes, immutable=%t", buf.Size(f), buf.Immutable(f)), nil
}

func checkerboard(w, h int) []byte {
	pix := make([]byte, 0, w*h*4)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			v := byte(0x20)
			if (x/8+y/8)%2 == 0 {
				v = 0xe0
			}
			pix = append(pix, v, v, v, 0xff)
		}
	}
	return pix
}

func checkTexture(_ context.Context, f gl.Functions, cfg Config) (string, error) {
	tex, err := gl.CreateTexture(f, gl.Texture2D)
	if err != nil {
		return "", err
	}
	defer gl.Own(f, tex).Release()
	tex.SetLabel(f, "glinfo checkerboard")

	w, h := cfg.Width, cfg.Height
	levels := bits.Len(uint(max(w, h)))
	tex.SetStorage2D(f, levels, gl.FormatRGBA8, w, h)
	tex.UpdateImage2D(f, 0, 0, 0, w, h, gl.PixelRGBA, gl.PixelUnsignedByte, checkerboard(w, h))
	tex.SetParameter(f, gl.TEXTURE_MIN_FILTER, gl.LINEAR_MIPMAP_LINEAR)
	tex.SetParameter(f, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
	tex.GenerateMipmap(f)
	tex.BindUnit(f, 0)
	defer gl.BindTextureUnit(f, 0, gl.Texture{})
	if err := gl.CheckError(f, "texture setup"); err != nil {
		return "", err
	}
	top := levels - 1
	tw, th := tex.LevelParameter(f, top, gl.TEXTURE_WIDTH), tex.LevelParameter(f, top, gl.TEXTURE_HEIGHT)
	if tw != 1 || th != 1 {
		return "", fmt.Errorf("level %d is %dx%d, expected 1x1", top, tw, th)
	}
	return fmt.Sprintf("%dx%d RGBA8, %d levels", w, h, levels), nil
}

func checkVertexArray(_ context.Context, f gl.Functions, _ Config) (string, error) {
	vao, err := gl.CreateVertexArray(f)
	if err != nil {
		return "", err
	}
	defer vao.Delete(f)
	vao.SetLabel(f, "glinfo quad")

	vbo := gl.Own(f, gl.CreateBuffer(f))
	defer vbo.Release()
	data := vertexBytes(quad)
	if err := vbo.Handle().Allocate(f, len(data), gl.StaticDraw, data); err != nil {
		return "", err
	}
	ibo := gl.Own(f, gl.CreateBuffer(f))
	defer ibo.Release()
	var indices []byte
	for _, i := range []uint16{0, 1, 2, 2, 1, 3} {
		indices = binary.NativeEndian.AppendUint16(indices, i)
	}
	if err := ibo.Handle().Allocate(f, len(indices), gl.StaticDraw, indices); err != nil {
		return "", err
	}

	const pos gl.Attrib = 0
	format := gl.FormatOf[f32.Vec2]()
	vao.BindVertexBuffer(f, 0, vbo.Handle(), 0, format.Stride())
	vao.BindElementBuffer(f, ibo.Handle())
	vao.SetAttribFormat(f, pos, format.Size, format.Type, false, 0)
	vao.BindAttribute(f, pos, 0)
	vao.EnableAttribute(f, pos)
	vao.Bind(f)
	gl.VertexArray{}.Bind(f)
	return fmt.Sprintf("%d vertices, %d indices, stride %d", len(quad), len(indices)/2, format.Stride()), nil
}

func checkGioProgram(_ context.Context, f gl.Functions, _ Config) (string, error) {
	vs, fs := gio.Shader_intersect_vert, gio.Shader_intersect_frag
	p, err := gl.NewProgramSources(f, vs, fs)
	if err != nil {
		return "", err
	}
	defer p.Delete(f)
	p.SetLabel(f, vs.Name)
	// Identity uvTransform and subUVTransform.
	block := vertexBytes([]f32.Vec2{{1, 1}, {0, 0}, {1, 1}, {0, 0}})
	if err := p.Upload(f, block, nil); err != nil {
		return "", err
	}
	inputs := p.Interface(f, gl.InterfaceProgramInput, gl.ACTIVE_RESOURCES)
	return fmt.Sprintf("%s + %s, %d inputs, %d uniforms", vs.Name, fs.Name, inputs, len(p.Vert.Locations)), nil
}

// glslSources prints a vertex and fragment shader pair with a
// transform uniform block and a tint uniform.
func glslSources() (vert, frag string) {
	block := glsl.Block(glsl.Uniform, "Transform", "xform", glsl.Var(glsl.StorageNone, glsl.Mat4, "mvp"))
	block.Layout.Memory = glsl.Std140
	block.Layout.Binding = glsl.At(0)
	pos := glsl.Var(glsl.In, glsl.Vec2, "pos")
	pos.Layout.Location = glsl.At(0)
	vert = glsl.Source{Version: 460, Profile: glsl.Core, Decls: []glsl.Decl{block, pos}}.String() +
		"void main() {\n  gl_Position = xform.mvp * vec4(pos, 0.0, 1.0);\n}\n"

	tint := glsl.Var(glsl.Uniform, glsl.Vec4, "tint")
	color := glsl.Var(glsl.Out, glsl.Vec4, "color")
	color.Layout.Location = glsl.At(0)
	frag = glsl.Source{Version: 460, Profile: glsl.Core, Decls: []glsl.Decl{tint, color}}.String() +
		"void main() {\n  color = tint;\n}\n"
	return vert, frag
}

func checkGLSLProgram(_ context.Context, f gl.Functions, _ Config) (string, error) {
	vsrc, fsrc := glslSources()
	vs, err := gl.NewShader(f, gl.VertexShader, vsrc)
	if err != nil {
		return "", err
	}
	defer vs.Delete(f)
	fs, err := gl.NewShader(f, gl.FragmentShader, fsrc)
	if err != nil {
		return "", err
	}
	defer fs.Delete(f)
	p, err := gl.NewProgram(f, vs, fs)
	if err != nil {
		return "", err
	}
	defer p.Delete(f)

	block, err := gl.LookupUniformBlock(f, p, "Transform")
	if err != nil {
		return "", err
	}
	block.SetBinding(f, 1)
	ubo := gl.Own(f, gl.CreateBuffer(f))
	defer ubo.Release()
	mvp := matrixBytes(f32.Mat4{1, 0, 0, 0, 0, 1, 0, 0, 0, 0, 1, 0, 0, 0, 0, 1})
	if err := ubo.Handle().Allocate(f, len(mvp), gl.DynamicDraw, mvp); err != nil {
		return "", err
	}
	ubo.Handle().Range(0, len(mvp)).Bind(f, gl.UNIFORM_BUFFER, int(block.Binding))

	tint, err := p.UniformLocation(f, "tint")
	if err != nil {
		return "", err
	}
	if err := p.SetVec4(f, tint, f32.Vec4{1, 0.5, 0.25, 1}); err != nil {
		return "", err
	}
	p.Use(f)
	gl.Program{}.Use(f)
	return fmt.Sprintf("block %s at binding %d", block.Name, block.Binding), nil
}

func checkWGSL(_ context.Context, f gl.Functions, cfg Config) (string, error) {
	if cfg.WGSL == "" {
		return "no WGSL file given", errSkipped
	}
	src, err := os.ReadFile(cfg.WGSL)
	if err != nil {
		return "", err
	}
	s, err := gl.NewShaderWGSL(f, gl.ComputeShader, string(src), "main")
	if err != nil {
		return "", err
	}
	defer s.Delete(f)
	p, err := gl.NewProgram(f, s)
	if err != nil {
		return "", err
	}
	p.Delete(f)
	return fmt.Sprintf("%s linked from SPIR-V", filepath.Base(cfg.WGSL)), nil
}

func checkFence(ctx context.Context, f gl.Functions, cfg Config) (string, error) {
	s, err := gl.FenceSync(f)
	if err != nil {
		return "", err
	}
	defer s.Delete(f)
	s.Wait(f)

	ctx, cancel := context.WithTimeout(ctx, cfg.FenceTimeout.Duration)
	defer cancel()
	start := time.Now()
	if err := s.Await(ctx, f, time.Millisecond); err != nil {
		return "", err
	}
	return fmt.Sprintf("signaled after %s", time.Since(start).Round(time.Microsecond)), nil
}
