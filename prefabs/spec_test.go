package prefabs

import (
	"math"
	"strings"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/milk9111/isocam/camera"
	"gopkg.in/yaml.v3"
)

func TestLoadCameraSpec(t *testing.T) {
	spec, err := LoadCameraSpec()
	if err != nil {
		t.Fatalf("LoadCameraSpec: %v", err)
	}

	if got, want := spec.Controller.Settings(), camera.DefaultSettings(); got != want {
		t.Fatalf("embedded controller settings drifted from defaults:\n got %+v\nwant %+v", got, want)
	}

	rig := spec.Rig()
	if rig.Size != 40 {
		t.Fatalf("expected size 40, got %v", rig.Size)
	}
	if math.Abs(rig.Transform.Yaw-math.Pi/4) > 1e-9 {
		t.Fatalf("expected yaw pi/4, got %v", rig.Transform.Yaw)
	}
	if math.Abs(spec.Pitch()-camera.IsometricPitch) > 1e-4 {
		t.Fatalf("expected isometric pitch, got %v", spec.Pitch())
	}
}

func TestControllerSpecKeepsDefaults(t *testing.T) {
	var spec CameraSpec
	src := "controller:\n  pan_speed: 80\n  zoom_max: 90\n"
	if err := yaml.Unmarshal([]byte(src), &spec); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	want := camera.DefaultSettings()
	want.PanSpeed = 80
	want.ZoomMax = 90
	if got := spec.Controller.Settings(); got != want {
		t.Fatalf("expected %+v, got %+v", want, got)
	}
	if got := spec.Pitch(); got != camera.IsometricPitch {
		t.Fatalf("missing pitch should fall back to isometric, got %v", got)
	}
}

func TestCameraSpecRigSize(t *testing.T) {
	cases := []struct {
		name string
		size float64
		want float64
	}{
		{"unset_uses_midpoint", 0, 40},
		{"below_min", 5, 20},
		{"above_max", 100, 60},
		{"inside", 30, 30},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			spec := CameraSpec{Size: c.size}
			if got := spec.Rig().Size; got != c.want {
				t.Fatalf("expected %v, got %v", c.want, got)
			}
		})
	}
}

func TestLoadSceneSpec(t *testing.T) {
	spec, err := LoadSceneSpec()
	if err != nil {
		t.Fatalf("LoadSceneSpec: %v", err)
	}
	if spec.Width <= 0 || spec.Depth <= 0 || spec.TileSize <= 0 {
		t.Fatalf("expected a positive grid, got %+v", spec)
	}

	src, err := LoadScript(spec.Script)
	if err != nil {
		t.Fatalf("LoadScript(%q): %v", spec.Script, err)
	}
	if !strings.Contains(string(src), "place(") {
		t.Fatalf("scene script does not place anything")
	}
}

func TestMarshalPosePastesIntoCameraSpec(t *testing.T) {
	rig := &camera.Rig{
		Transform: camera.Transform{Position: mgl64.Vec3{3, 0, -7.5}, Yaw: math.Pi / 2},
		Size:      35,
	}
	data, err := MarshalPose(rig)
	if err != nil {
		t.Fatalf("MarshalPose: %v", err)
	}

	var spec CameraSpec
	if err := yaml.Unmarshal(data, &spec); err != nil {
		t.Fatalf("pose is not a valid camera spec fragment: %v", err)
	}
	got := spec.Rig()
	if got.Size != 35 || !got.Transform.Position.ApproxEqual(rig.Transform.Position) {
		t.Fatalf("expected %+v, got %+v", rig, got)
	}
	if math.Abs(got.Transform.Yaw-rig.Transform.Yaw) > 1e-9 {
		t.Fatalf("expected yaw %v, got %v", rig.Transform.Yaw, got.Transform.Yaw)
	}

	if _, err := MarshalPose(nil); err == nil {
		t.Fatalf("expected error for nil rig")
	}
}

func TestKind(t *testing.T) {
	cases := []struct {
		path string
		want string
	}{
		{"prefabs/camera.yaml", CameraFile},
		{"/abs/prefabs/scene.yaml", SceneFile},
		{"prefabs/scripts/scene.tengo", SceneFile},
		{"prefabs/notes.yaml", ""},
		{"prefabs/readme.md", ""},
	}

	for _, c := range cases {
		t.Run(c.path, func(t *testing.T) {
			if got := Kind(c.path); got != c.want {
				t.Fatalf("Kind(%q) = %q, want %q", c.path, got, c.want)
			}
		})
	}
}

func TestCleanScriptPath(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"scene.tengo", "scripts/scene.tengo"},
		{"scripts/scene.tengo", "scripts/scene.tengo"},
		{"prefabs/scripts/scene.tengo", "scripts/scene.tengo"},
		{"prefabs/scene.tengo", "scripts/scene.tengo"},
		{"", ""},
	}

	for _, c := range cases {
		t.Run(c.in, func(t *testing.T) {
			if got := cleanScriptPath(c.in); got != c.want {
				t.Fatalf("cleanScriptPath(%q) = %q, want %q", c.in, got, c.want)
			}
		})
	}
}
