// internal/defs/loader.go
package defs

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
)

var (
	// ErrUnknownKind — вид фигуры, который сборщик сцены не знает
	ErrUnknownKind = errors.New("unknown shape kind")
	// ErrUnknownBehavior — неизвестный тип поведения
	ErrUnknownBehavior = errors.New("unknown behavior type")
	// ErrInvalidScene — структурно сломанное описание сцены
	ErrInvalidScene = errors.New("invalid scene definition")
)

var knownKinds = map[ShapeKind]bool{
	KindCircle: true, KindRing: true, KindPolygon: true, KindSquare: true,
	KindTriangle: true, KindCustomPolygon: true, KindCurvedPolygon: true,
	KindRectangleRing: true, KindBezier: true, KindQuadratic: true,
	KindGrid: true, KindQuadrantGrid: true, KindLinearGradient: true,
	KindRadialGradient: true, KindText: true, KindImage: true,
	KindWave: true, KindParticles: true, KindHexGrid: true,
	KindText3D: true, KindSegmentedLine: true, KindCursor: true,
	KindRadialRect: true, KindCenterGradient: true,
}

var knownBehaviors = map[BehaviorType]bool{
	BehaviorBounce: true, BehaviorCollide: true, BehaviorPulse: true,
	BehaviorGravity: true, BehaviorOrbit: true, BehaviorSpin: true,
	BehaviorSway: true,
}

// LoadScene reads the scene configuration file and validates it.
func LoadScene(path string) (*SceneDefinition, error) {
	file, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scene file: %w", err)
	}
	def, err := ParseScene(file)
	if err != nil {
		return nil, fmt.Errorf("scene %s: %w", path, err)
	}
	log.Printf("Loaded scene %q: %d shapes, %d spawn groups", def.Name, len(def.Shapes), len(def.Spawns))
	return def, nil
}

// ParseScene decodes and validates a scene definition.
func ParseScene(data []byte) (*SceneDefinition, error) {
	var def SceneDefinition
	if err := json.Unmarshal(data, &def); err != nil {
		return nil, fmt.Errorf("failed to unmarshal scene definition: %w", err)
	}
	if err := def.Validate(); err != nil {
		return nil, err
	}
	return &def, nil
}

// Validate — проверка видов фигур, типов поведения и групп спавна
func (d *SceneDefinition) Validate() error {
	for i, s := range d.Shapes {
		if !knownKinds[s.Kind] {
			return fmt.Errorf("shape %d: %w: %q", i, ErrUnknownKind, s.Kind)
		}
		if err := validateBehaviors(s.Behaviors); err != nil {
			return fmt.Errorf("shape %d (%s): %w", i, s.Kind, err)
		}
	}
	for i, g := range d.Spawns {
		if g.Count < 0 {
			return fmt.Errorf("spawn group %d: %w: negative count %d", i, ErrInvalidScene, g.Count)
		}
		if g.Count > 0 && len(g.Entries) == 0 {
			return fmt.Errorf("spawn group %d: %w: no entries", i, ErrInvalidScene)
		}
		if g.MaxRadius < g.MinRadius {
			return fmt.Errorf("spawn group %d: %w: maxRadius %v below minRadius %v", i, ErrInvalidScene, g.MaxRadius, g.MinRadius)
		}
		for _, e := range g.Entries {
			if !knownKinds[e.Kind] {
				return fmt.Errorf("spawn group %d: %w: %q", i, ErrUnknownKind, e.Kind)
			}
			if e.Weight < 0 {
				return fmt.Errorf("spawn group %d: %w: negative weight for %s", i, ErrInvalidScene, e.Kind)
			}
		}
		if err := validateBehaviors(g.Behaviors); err != nil {
			return fmt.Errorf("spawn group %d: %w", i, err)
		}
	}
	return nil
}

func validateBehaviors(bs []BehaviorDefinition) error {
	for _, b := range bs {
		if !knownBehaviors[b.Type] {
			return fmt.Errorf("%w: %q", ErrUnknownBehavior, b.Type)
		}
	}
	return nil
}
