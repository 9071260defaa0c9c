package scene

import (
	"errors"
	"fmt"
)

var (
	ErrEmptyCatalog  = errors.New("catalog has no bodies")
	ErrDuplicateBody = errors.New("duplicate body key")
	ErrUnknownBody   = errors.New("unknown body key")
)

// SkillSpec is one satellite entry of a body
type SkillSpec struct {
	Name   string    `toml:"name"`
	Level  int       `toml:"level"`
	Colors [2]uint32 `toml:"colors"`
}

// BodySpec describes one orbiting body and its satellites
type BodySpec struct {
	Key    string      `toml:"key"`
	Name   string      `toml:"name"`
	Radius float64     `toml:"radius"`
	Orbit  float64     `toml:"orbit"`
	Speed  float64     `toml:"speed"`
	Colors [3]uint32   `toml:"colors"`
	Skills []SkillSpec `toml:"skill"`
}

// Catalog is the ordered list of bodies shown in the solar view
type Catalog []BodySpec

// Validate checks keys are unique and geometry is usable
func (c Catalog) Validate() error {
	if len(c) == 0 {
		return ErrEmptyCatalog
	}
	seen := make(map[string]bool, len(c))
	for i, b := range c {
		if b.Key == "" || b.Key == ViewSolar.String() {
			return fmt.Errorf("body %d: invalid key %q", i, b.Key)
		}
		if seen[b.Key] {
			return fmt.Errorf("%w: %s", ErrDuplicateBody, b.Key)
		}
		seen[b.Key] = true
		if b.Radius <= 0 || b.Orbit <= 0 {
			return fmt.Errorf("body %s: radius and orbit must be positive", b.Key)
		}
		if b.Speed <= 0 {
			return fmt.Errorf("body %s: speed must be positive", b.Key)
		}
		for j, s := range b.Skills {
			if s.Level < 0 || s.Level > 100 {
				return fmt.Errorf("body %s skill %d (%s): level %d outside 0-100", b.Key, j, s.Name, s.Level)
			}
		}
	}
	return nil
}

// Keys returns body keys in catalog order
func (c Catalog) Keys() []string {
	keys := make([]string, len(c))
	for i, b := range c {
		keys[i] = b.Key
	}
	return keys
}

// paint assigns gradient pairs to skills, cycling through colors
func paint(colors [][2]uint32, list []SkillSpec) []SkillSpec {
	for i := range list {
		list[i].Colors = colors[i%len(colors)]
	}
	return list
}

// DefaultCatalog returns the built-in skills system
func DefaultCatalog() Catalog {
	return Catalog{
		{
			Key: "frontend", Name: "Frontend", Radius: 1.2, Orbit: 14, Speed: 0.3,
			Colors: [3]uint32{0x00d4ff, 0x0051ff, 0xa855f7},
			Skills: paint([][2]uint32{
				{0x60a5fa, 0xa855f7}, {0xa78bfa, 0xec4899}, {0xf472b6, 0x8b5cf6},
				{0x34d399, 0x06b6d4}, {0xfbbf24, 0xf97316}, {0x38bdf8, 0x6366f1},
				{0xc084fc, 0xf43f5e}, {0xfb7185, 0xa855f7},
			}, []SkillSpec{
				{Name: "JavaScript", Level: 95}, {Name: "TypeScript", Level: 90}, {Name: "React", Level: 92}, {Name: "Next.js", Level: 90},
				{Name: "Angular", Level: 80}, {Name: "Redux", Level: 85}, {Name: "Zustand", Level: 95}, {Name: "Tailwind CSS", Level: 90},
				{Name: "Shadcn UI", Level: 95},
			}),
		},
		{
			Key: "backend", Name: "Backend", Radius: 1.4, Orbit: 22, Speed: 0.2,
			Colors: [3]uint32{0xff6b6b, 0xff00aa, 0xffa500},
			Skills: paint([][2]uint32{
				{0xfb923c, 0xf43f5e}, {0xa3e635, 0x22d3ee}, {0x2dd4bf, 0x818cf8},
				{0xe879f9, 0xf472b6}, {0x60a5fa, 0x34d399}, {0xf472b6, 0xfbbf24},
				{0xfbbf24, 0xef4444}, {0x4ade80, 0x06b6d4}, {0x38bdf8, 0xa855f7},
				{0xc084fc, 0x22d3ee},
			}, []SkillSpec{
				{Name: "Python", Level: 90}, {Name: "Java", Level: 95}, {Name: "Go", Level: 80}, {Name: "Node.js", Level: 100},
				{Name: "Spring Boot", Level: 85}, {Name: "Express.js", Level: 85}, {Name: "FastAPI", Level: 85}, {Name: "PostgreSQL", Level: 85},
				{Name: "MongoDB", Level: 80}, {Name: "Redis", Level: 80},
			}),
		},
		{
			Key: "devops", Name: "DevOps", Radius: 1.1, Orbit: 28, Speed: 0.45,
			Colors: [3]uint32{0x4ecdc4, 0x00ff88, 0x00a8ff},
			Skills: paint([][2]uint32{
				{0xf97316, 0xeab308}, {0x84cc16, 0x22d3ee}, {0x06b6d4, 0x8b5cf6},
				{0xd946ef, 0xf43f5e}, {0x3b82f6, 0x06b6d4}, {0xec4899, 0xa855f7},
				{0xeab308, 0x22c55e}, {0x22c55e, 0x0ea5e9},
			}, []SkillSpec{
				{Name: "AWS", Level: 85}, {Name: "Kubernetes", Level: 85}, {Name: "Docker", Level: 85}, {Name: "Terraform", Level: 80},
				{Name: "GitHub Actions", Level: 80}, {Name: "Linux", Level: 85}, {Name: "Jenkins", Level: 80}, {Name: "GCP", Level: 75},
			}),
		},
		{
			Key: "tools", Name: "Tools", Radius: 1.0, Orbit: 35, Speed: 0.25,
			Colors: [3]uint32{0xffe66d, 0xff6b6b, 0xff00aa},
			Skills: paint([][2]uint32{
				{0xef4444, 0xf97316}, {0x8b5cf6, 0xec4899}, {0x14b8a6, 0x3b82f6},
				{0xf43f5e, 0xfbbf24}, {0x6366f1, 0x06b6d4}, {0x10b981, 0x84cc16},
			}, []SkillSpec{
				{Name: "Git", Level: 100}, {Name: "VS Code", Level: 100}, {Name: "IntelliJ", Level: 90}, {Name: "Postman", Level: 100},
				{Name: "Jupyter", Level: 80}, {Name: "Selenium", Level: 75},
			}),
		},
	}
}
