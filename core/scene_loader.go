package core

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/yuceelege/GNN-TAMP/model"
)

// SceneSummary is a small summary of what was loaded. It's mainly useful
// for logging from main().
type SceneSummary struct {
	BlockIDs []string
	Format   string // "json" or "g"
}

// internal JSON shapes – kept unexported so we're free to evolve them.
type sceneJSON struct {
	Blocks []blockJSON `json:"blocks"`
}

type blockJSON struct {
	ID       string            `json:"id"`
	Parent   string            `json:"parent"` // empty = rests on the base
	Position []float64         `json:"position,omitempty"`
	Relative []float64         `json:"relative,omitempty"` // translation in the parent frame
	Size     []float64         `json:"size"`
	Staged   []float64         `json:"staged,omitempty"` // waiting position before assembly
	Attrs    map[string]string `json:"attrs,omitempty"`  // color etc., passed through
}

// LoadScene reads a JSON scene description from r and returns the
// SceneDescription plus a summary. Structural problems (undefined parent,
// bad vector arity) surface as ErrMalformedScene; support-cycle detection
// is left to BuildTarget, which sees the whole graph.
func LoadScene(r io.Reader) (SceneDescription, *SceneSummary, error) {
	var payload sceneJSON
	dec := json.NewDecoder(r)
	if err := dec.Decode(&payload); err != nil {
		return SceneDescription{}, nil, fmt.Errorf("%w: decode failed: %v", ErrMalformedScene, err)
	}

	desc := SceneDescription{Blocks: make([]BlockDescription, 0, len(payload.Blocks))}
	summary := &SceneSummary{Format: "json"}

	for _, jb := range payload.Blocks {
		if jb.ID == "" {
			return SceneDescription{}, nil, fmt.Errorf("%w: block with empty id", ErrMalformedScene)
		}

		b := BlockDescription{
			ID:       jb.ID,
			ParentID: jb.Parent,
			Relative: model.IdentityTransform(),
			Attrs:    jb.Attrs,
		}

		switch {
		case len(jb.Position) >= 3:
			b.Position = model.Vec3{X: jb.Position[0], Y: jb.Position[1], Z: jb.Position[2]}
			b.HasAbsolute = true
		case len(jb.Relative) >= 3:
			b.Relative.Translation = model.Vec3{X: jb.Relative[0], Y: jb.Relative[1], Z: jb.Relative[2]}
		default:
			return SceneDescription{}, nil, fmt.Errorf("%w: block %q has neither position nor relative transform", ErrMalformedScene, jb.ID)
		}

		if len(jb.Size) >= 3 {
			b.Size = model.Vec3{X: jb.Size[0], Y: jb.Size[1], Z: jb.Size[2]}
		}
		if len(jb.Staged) >= 3 {
			b.Staged = model.Pose{
				Position:    model.Vec3{X: jb.Staged[0], Y: jb.Staged[1], Z: jb.Staged[2]},
				Orientation: model.IdentityQuat(),
			}
		}

		desc.Blocks = append(desc.Blocks, b)
		summary.BlockIDs = append(summary.BlockIDs, jb.ID)
	}

	stageDescription(&desc)
	return desc, summary, nil
}

// The .g line format of the upstream dataset generator:
//
//	object3: { X: [x, y, z, qw, qx, qy, qz], shape: ssBox, size: [...], color: [...] }
//	object4(object3): { Q: "t(tx ty tz) d(deg ax ay az)", shape: ssBox, size: [...], color: [...] }
var (
	gBasePattern    = regexp.MustCompile(`^object(\d+):\s*\{.*?X:\s*\[([^\]]+)\]`)
	gStackedPattern = regexp.MustCompile(`^object(\d+)\(object(\d+)\):\s*\{.*?Q:\s*"([^"]+)"`)
	gSizePattern    = regexp.MustCompile(`size:\s*\[([^\]]+)\]`)
	gColorPattern   = regexp.MustCompile(`color:\s*\[([^\]]+)\]`)
	gTransPattern   = regexp.MustCompile(`t\(([^)]*)\)`)
	gRotPattern     = regexp.MustCompile(`d\(([^)]*)\)`)
)

// LoadGScene reads the .g scene-file format. Only identity, parent,
// transform, and size are interpreted; shape and color ride along as
// attributes.
func LoadGScene(r io.Reader) (SceneDescription, *SceneSummary, error) {
	desc := SceneDescription{}
	summary := &SceneSummary{Format: "g"}

	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		var b BlockDescription

		if m := gStackedPattern.FindStringSubmatch(line); m != nil {
			b.ID = "object" + m[1]
			b.ParentID = "object" + m[2]
			tr, err := parseGTransform(m[3])
			if err != nil {
				return SceneDescription{}, nil, fmt.Errorf("%w: line %d: %v", ErrMalformedScene, lineNo, err)
			}
			b.Relative = tr
		} else if m := gBasePattern.FindStringSubmatch(line); m != nil {
			b.ID = "object" + m[1]
			vals, err := parseFloats(m[2])
			if err != nil || len(vals) < 3 {
				return SceneDescription{}, nil, fmt.Errorf("%w: line %d: bad X vector", ErrMalformedScene, lineNo)
			}
			b.Position = model.Vec3{X: vals[0], Y: vals[1], Z: vals[2]}
			b.HasAbsolute = true
			b.Relative = model.IdentityTransform()
		} else {
			// Robot and frame definitions in .g files are not blocks.
			continue
		}

		if m := gSizePattern.FindStringSubmatch(line); m != nil {
			vals, err := parseFloats(m[1])
			if err != nil || len(vals) < 3 {
				return SceneDescription{}, nil, fmt.Errorf("%w: line %d: bad size vector", ErrMalformedScene, lineNo)
			}
			b.Size = model.Vec3{X: vals[0], Y: vals[1], Z: vals[2]}
		}
		if m := gColorPattern.FindStringSubmatch(line); m != nil {
			b.Attrs = map[string]string{"color": strings.TrimSpace(m[1])}
		}

		desc.Blocks = append(desc.Blocks, b)
		summary.BlockIDs = append(summary.BlockIDs, b.ID)
	}
	if err := scanner.Err(); err != nil {
		return SceneDescription{}, nil, fmt.Errorf("%w: read failed: %v", ErrMalformedScene, err)
	}
	if len(desc.Blocks) == 0 {
		return SceneDescription{}, nil, fmt.Errorf("%w: no object definitions found", ErrMalformedScene)
	}

	stageDescription(&desc)
	return desc, summary, nil
}

// parseGTransform turns a Q string like `t(0.05 0.02 0.8) d(45 0 0 1)`
// into a Transform. The d(...) component is an angle in degrees about an
// axis.
func parseGTransform(q string) (model.Transform, error) {
	tr := model.IdentityTransform()

	m := gTransPattern.FindStringSubmatch(q)
	if m == nil {
		return tr, fmt.Errorf("transform %q has no t(...) component", q)
	}
	vals, err := parseFloats(m[1])
	if err != nil || len(vals) < 3 {
		return tr, fmt.Errorf("unparsable translation in %q", q)
	}
	tr.Translation = model.Vec3{X: vals[0], Y: vals[1], Z: vals[2]}

	if m := gRotPattern.FindStringSubmatch(q); m != nil {
		vals, err := parseFloats(m[1])
		if err != nil || len(vals) < 4 {
			return tr, fmt.Errorf("unparsable rotation in %q", q)
		}
		tr.Rotation = axisAngleQuat(vals[0], model.Vec3{X: vals[1], Y: vals[2], Z: vals[3]})
	}

	return tr, nil
}

// axisAngleQuat builds a quaternion from an angle in degrees and an axis.
func axisAngleQuat(deg float64, axis model.Vec3) model.Quat {
	n := math.Sqrt(axis.X*axis.X + axis.Y*axis.Y + axis.Z*axis.Z)
	if n == 0 {
		return model.IdentityQuat()
	}
	half := deg * math.Pi / 360.0
	s := math.Sin(half) / n
	return model.Quat{
		W: math.Cos(half),
		X: axis.X * s,
		Y: axis.Y * s,
		Z: axis.Z * s,
	}
}

// parseFloats splits a comma- or space-separated list of numbers.
func parseFloats(s string) ([]float64, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t'
	})
	out := make([]float64, 0, len(fields))
	for _, f := range fields {
		v, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

// Staging-row layout of the upstream dataset scenes: blocks wait in front
// of the robot at table height, evenly spaced along x.
const (
	stageStartX  = -3.0
	stageY       = -1.3
	stageZ       = 0.74
	stageSpacing = 1.2
)

// stageDescription assigns the default staging-row pose, in file order, to
// every block the scene did not stage explicitly.
func stageDescription(desc *SceneDescription) {
	ids := make([]string, len(desc.Blocks))
	for i, b := range desc.Blocks {
		ids[i] = b.ID
	}
	poses := StagePoses(ids, stageStartX, stageY, stageZ, stageSpacing)
	for i := range desc.Blocks {
		if desc.Blocks[i].Staged.IsZero() {
			desc.Blocks[i].Staged = poses[desc.Blocks[i].ID]
		}
	}
}

// StagePoses lays the pending blocks out on a staging row in front of the
// robot, matching the upstream scene initialisation: evenly spaced along x
// at a fixed y.
func StagePoses(ids []string, startX, y, z, spacing float64) map[string]model.Pose {
	out := make(map[string]model.Pose, len(ids))
	for i, id := range ids {
		out[id] = model.Pose{
			Position:    model.Vec3{X: startX + float64(i)*spacing, Y: y, Z: z},
			Orientation: model.IdentityQuat(),
		}
	}
	return out
}
