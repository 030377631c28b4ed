package probe

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
)

// PanelBinding is one mutable row of the parameter panel. Read renders the
// current value; Write parses and applies a new one, surfacing collaborator
// rejections synchronously. A nil Write makes the row read-only.
type PanelBinding struct {
	Name  string
	Read  func() string
	Write func(value string) error
}

// Panel is the parameter inspector model: an ordered list of named bindings
// over renderer/physics/camera state. The widget drawing it is the host's
// concern; Rows supplies header and rows in table form.
type Panel struct {
	Title    string
	bindings []PanelBinding
}

func NewPanel(title string) *Panel {
	return &Panel{Title: title}
}

func (p *Panel) Bind(bindings ...PanelBinding) {
	p.bindings = append(p.bindings, bindings...)
}

func (p *Panel) Bindings() []PanelBinding {
	return p.bindings
}

// Rows returns the panel contents as name/value string pairs.
func (p *Panel) Rows() [][]string {
	rows := make([][]string, 0, len(p.bindings))
	for _, b := range p.bindings {
		rows = append(rows, []string{b.Name, b.Read()})
	}
	return rows
}

// Set writes a value through the named binding.
func (p *Panel) Set(name, value string) error {
	for _, b := range p.bindings {
		if b.Name == name {
			if b.Write == nil {
				return fmt.Errorf("panel binding %q is read-only", name)
			}
			return b.Write(value)
		}
	}
	return fmt.Errorf("no panel binding named %q", name)
}

// Get reads the named binding's current value.
func (p *Panel) Get(name string) (string, error) {
	for _, b := range p.bindings {
		if b.Name == name {
			return b.Read(), nil
		}
	}
	return "", fmt.Errorf("no panel binding named %q", name)
}

// StandardBindings builds the default inspector rows over the render and
// physics collaborators: clear color, shadows, camera FOV and position,
// world gravity. An FOV write requests a projection recompute.
func StandardBindings(settings RenderSettings, physics PhysicsSource) []PanelBinding {
	return []PanelBinding{
		{
			Name: "clear color",
			Read: func() string {
				c := settings.ClearColor()
				return fmt.Sprintf("%g %g %g", c[0], c[1], c[2])
			},
			Write: func(value string) error {
				var c [3]float32
				if _, err := fmt.Sscanf(value, "%f %f %f", &c[0], &c[1], &c[2]); err != nil {
					return fmt.Errorf("clear color wants \"r g b\": %w", err)
				}
				return settings.SetClearColor(c)
			},
		},
		{
			Name: "shadows",
			Read: func() string {
				return fmt.Sprintf("%v", settings.ShadowsEnabled())
			},
			Write: func(value string) error {
				var enabled bool
				if _, err := fmt.Sscanf(value, "%t", &enabled); err != nil {
					return fmt.Errorf("shadows wants true/false: %w", err)
				}
				settings.SetShadowsEnabled(enabled)
				return nil
			},
		},
		{
			Name: "camera fov",
			Read: func() string {
				return fmt.Sprintf("%g", settings.CameraFOV())
			},
			Write: func(value string) error {
				var fov float32
				if _, err := fmt.Sscanf(value, "%f", &fov); err != nil {
					return fmt.Errorf("camera fov wants degrees: %w", err)
				}
				settings.SetCameraFOV(fov)
				settings.RecomputeProjection()
				return nil
			},
		},
		{
			Name: "camera position",
			Read: func() string {
				p := settings.CameraPosition()
				return fmt.Sprintf("%g %g %g", p.X(), p.Y(), p.Z())
			},
			Write: func(value string) error {
				var x, y, z float32
				if _, err := fmt.Sscanf(value, "%f %f %f", &x, &y, &z); err != nil {
					return fmt.Errorf("camera position wants \"x y z\": %w", err)
				}
				settings.SetCameraPosition(mgl32.Vec3{x, y, z})
				return nil
			},
		},
		{
			Name: "gravity",
			Read: func() string {
				g := physics.Gravity()
				return fmt.Sprintf("%g %g %g", g.X(), g.Y(), g.Z())
			},
			Write: func(value string) error {
				var x, y, z float32
				if _, err := fmt.Sscanf(value, "%f %f %f", &x, &y, &z); err != nil {
					return fmt.Errorf("gravity wants \"x y z\": %w", err)
				}
				physics.SetGravity(mgl32.Vec3{x, y, z})
				return nil
			},
		},
	}
}
