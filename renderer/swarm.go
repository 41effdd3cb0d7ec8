package renderer

import (
	_ "embed"
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/ethereal/components"
	"github.com/pthm-cable/ethereal/sprite"
	"github.com/pthm-cable/ethereal/systems"
)

//go:embed shaders/swarm.vs
var swarmVS string

//go:embed shaders/swarm.fs
var swarmFS string

// SwarmRenderer draws the particle field as one instanced batch of textured quads.
type SwarmRenderer struct {
	shader   rl.Shader
	material rl.Material
	mesh     rl.Mesh
	texture  rl.Texture2D
	hasTex   bool

	quadSize float32
	mask     *sprite.Mask

	// Reused every frame, grown on demand
	matrices []rl.Matrix
	face     rl.Matrix

	initialized bool
}

// NewSwarmRenderer creates a renderer for quads of the given side length.
func NewSwarmRenderer(quadSize float32) *SwarmRenderer {
	return &SwarmRenderer{quadSize: quadSize}
}

// Init loads the shader, material and quad mesh (must be called after raylib window is created).
func (s *SwarmRenderer) Init() {
	if s.initialized {
		return
	}

	s.shader = rl.LoadShaderFromMemory(swarmVS, swarmFS)
	s.shader.UpdateLocation(rl.ShaderLocMatrixMvp, rl.GetShaderLocation(s.shader, "mvp"))
	s.shader.UpdateLocation(rl.ShaderLocMatrixModel, rl.GetShaderLocationAttrib(s.shader, "instanceTransform"))

	s.material = rl.LoadMaterialDefault()
	s.material.Shader = s.shader

	// GenMeshPlane lies in XZ; rotate each instance so the quad faces +Z like a sprite
	s.mesh = rl.GenMeshPlane(s.quadSize, s.quadSize, 1, 1)
	s.face = rl.MatrixRotateX(math.Pi / 2)

	s.initialized = true
}

// SetMask uploads a new sprite mask as the quad texture. Same mask is a no-op.
func (s *SwarmRenderer) SetMask(m *sprite.Mask) {
	if !s.initialized {
		s.Init()
	}
	if m == s.mask {
		return
	}
	s.mask = m

	if s.hasTex {
		rl.UnloadTexture(s.texture)
		s.hasTex = false
	}
	if m == nil || m.Size() == 0 {
		return
	}

	img := rl.NewImageFromImage(m.NRGBA())
	s.texture = rl.LoadTextureFromImage(img)
	rl.UnloadImage(img)
	rl.SetTextureFilter(s.texture, rl.FilterBilinear)
	s.hasTex = true

	s.material.GetMap(rl.MapDiffuse).Texture = s.texture
}

// Prepare rebuilds the instance matrices and material for one frame.
// group is the ambient rotation applied to the whole swarm.
func (s *SwarmRenderer) Prepare(frame systems.Frame, group rl.Vector3) {
	if !s.initialized {
		s.Init()
	}
	s.SetMask(frame.Mask)

	n := len(frame.Transforms)
	if cap(s.matrices) < n {
		s.matrices = make([]rl.Matrix, n)
	}
	s.matrices = s.matrices[:n]

	groupRot := rl.MatrixRotateXYZ(group)
	for i := range frame.Transforms {
		s.matrices[i] = instanceMatrix(&frame.Transforms[i], s.face, groupRot)
	}

	s.material.GetMap(rl.MapDiffuse).Color = tintColor(frame.Tint)
}

// Draw issues the single instanced draw call for the prepared frame.
// Must be called inside BeginMode3D.
func (s *SwarmRenderer) Draw() {
	n := len(s.matrices)
	if !s.initialized || n == 0 || !s.hasTex {
		return
	}

	rl.BeginBlendMode(rl.BlendAdditive)
	rl.DisableDepthMask()
	rl.DisableBackfaceCulling()

	rl.DrawMeshInstanced(s.mesh, s.material, s.matrices, n)

	rl.EnableBackfaceCulling()
	rl.EnableDepthMask()
	rl.EndBlendMode()
}

// instanceMatrix composes scale, facing, particle rotation, translation, then the group rotation.
func instanceMatrix(t *components.InstanceTransform, face, group rl.Matrix) rl.Matrix {
	m := rl.MatrixMultiply(rl.MatrixScale(t.Scale, t.Scale, t.Scale), face)
	m = rl.MatrixMultiply(m, rl.MatrixRotateXYZ(rl.Vector3{X: t.Rotation.X, Y: t.Rotation.Y, Z: t.Rotation.Z}))
	m = rl.MatrixMultiply(m, rl.MatrixTranslate(t.Position.X, t.Position.Y, t.Position.Z))
	return rl.MatrixMultiply(m, group)
}

func tintColor(t components.Tint) rl.Color {
	return rl.Color{R: t.R, G: t.G, B: t.B, A: t.A}
}

// Unload frees resources.
func (s *SwarmRenderer) Unload() {
	if !s.initialized {
		return
	}
	if s.hasTex {
		rl.UnloadTexture(s.texture)
		s.hasTex = false
	}
	rl.UnloadMesh(&s.mesh)
	// The material only borrows the shader and texture, so they are freed individually
	rl.UnloadShader(s.shader)
	s.mask = nil
	s.initialized = false
}
