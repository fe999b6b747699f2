package prefabs

import (
	"fmt"
	"path/filepath"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/milk9111/isocam/camera"
	"gopkg.in/yaml.v3"
)

const (
	CameraFile = "camera.yaml"
	SceneFile  = "scene.yaml"
)

func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}

	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}

	return spec, nil
}

type TransformSpec struct {
	X          float64 `yaml:"x"`
	Y          float64 `yaml:"y"`
	Z          float64 `yaml:"z"`
	YawDegrees float64 `yaml:"yaw_degrees"`
}

func (t TransformSpec) Transform() camera.Transform {
	return camera.Transform{
		Position: mgl64.Vec3{t.X, t.Y, t.Z},
		Yaw:      mgl64.DegToRad(t.YawDegrees),
	}
}

// ControllerSpec mirrors camera.Settings. Omitted keys keep their defaults.
type ControllerSpec struct {
	EdgeMargin        *float64 `yaml:"edge_margin"`
	PanSpeed          *float64 `yaml:"pan_speed"`
	DragSpeed         *float64 `yaml:"drag_speed"`
	ZoomMin           *float64 `yaml:"zoom_min"`
	ZoomMax           *float64 `yaml:"zoom_max"`
	ZoomStep          *float64 `yaml:"zoom_step"`
	ZoomSmoothTime    *float64 `yaml:"zoom_smooth_time"`
	RotateSensitivity *float64 `yaml:"rotate_sensitivity"`
}

func (c ControllerSpec) Settings() camera.Settings {
	s := camera.DefaultSettings()
	set := func(dst *float64, src *float64) {
		if src != nil {
			*dst = *src
		}
	}
	set(&s.EdgeMargin, c.EdgeMargin)
	set(&s.PanSpeed, c.PanSpeed)
	set(&s.DragSpeed, c.DragSpeed)
	set(&s.ZoomMin, c.ZoomMin)
	set(&s.ZoomMax, c.ZoomMax)
	set(&s.ZoomStep, c.ZoomStep)
	set(&s.ZoomSmoothTime, c.ZoomSmoothTime)
	set(&s.RotateSensitivity, c.RotateSensitivity)
	return s
}

type CameraSpec struct {
	Name         string         `yaml:"name"`
	Transform    TransformSpec  `yaml:"transform"`
	Size         float64        `yaml:"size"`
	PitchDegrees float64        `yaml:"pitch_degrees"`
	Controller   ControllerSpec `yaml:"controller"`
}

// Rig builds the initial camera rig, clamping the size into the zoom range.
func (s *CameraSpec) Rig() *camera.Rig {
	settings := s.Controller.Settings()
	size := s.Size
	if size == 0 {
		size = (settings.ZoomMin + settings.ZoomMax) / 2
	}
	if size < settings.ZoomMin {
		size = settings.ZoomMin
	}
	if size > settings.ZoomMax {
		size = settings.ZoomMax
	}
	return &camera.Rig{Transform: s.Transform.Transform(), Size: size}
}

func (s *CameraSpec) Pitch() float64 {
	if s.PitchDegrees == 0 {
		return camera.IsometricPitch
	}
	return mgl64.DegToRad(s.PitchDegrees)
}

func LoadCameraSpec() (*CameraSpec, error) {
	spec, err := LoadSpec[CameraSpec](CameraFile)
	if err != nil {
		return nil, err
	}
	if err := spec.Controller.Settings().Validate(); err != nil {
		return nil, fmt.Errorf("prefabs: %s: %w", CameraFile, err)
	}
	if spec.PitchDegrees < 0 || spec.PitchDegrees >= 90 {
		return nil, fmt.Errorf("prefabs: %s: pitch %v out of range [0, 90)", CameraFile, spec.PitchDegrees)
	}
	return &spec, nil
}

type SceneSpec struct {
	Name     string  `yaml:"name"`
	Width    int     `yaml:"width"`
	Depth    int     `yaml:"depth"`
	TileSize float64 `yaml:"tile_size"`
	Script   string  `yaml:"script"`
}

func LoadSceneSpec() (*SceneSpec, error) {
	spec, err := LoadSpec[SceneSpec](SceneFile)
	if err != nil {
		return nil, err
	}
	if spec.Width <= 0 || spec.Depth <= 0 {
		return nil, fmt.Errorf("prefabs: %s: grid %dx%d must be positive", SceneFile, spec.Width, spec.Depth)
	}
	if spec.TileSize <= 0 {
		spec.TileSize = 1
	}
	return &spec, nil
}

// PoseSpec is the shape the current view is copied to the clipboard in, so it
// can be pasted straight into camera.yaml.
type PoseSpec struct {
	Transform TransformSpec `yaml:"transform"`
	Size      float64       `yaml:"size"`
}

func MarshalPose(rig *camera.Rig) ([]byte, error) {
	if rig == nil {
		return nil, fmt.Errorf("prefabs: marshal pose: nil rig")
	}
	pos := rig.Transform.Position
	pose := PoseSpec{
		Transform: TransformSpec{
			X:          pos.X(),
			Y:          pos.Y(),
			Z:          pos.Z(),
			YawDegrees: mgl64.RadToDeg(rig.Transform.Yaw),
		},
		Size: rig.Size,
	}
	data, err := yaml.Marshal(pose)
	if err != nil {
		return nil, fmt.Errorf("prefabs: marshal pose: %w", err)
	}
	return data, nil
}

// Kind tells which prefab a changed path belongs to.
func Kind(path string) string {
	name := filepath.Base(path)
	switch {
	case name == CameraFile:
		return CameraFile
	case name == SceneFile, isScriptFile(name):
		return SceneFile
	default:
		return ""
	}
}
