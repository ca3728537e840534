package listlayout

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Script is a recorded sequence of batch updates replayed against an engine.
type Script struct {
	Config         Config
	Viewport       Viewport
	InitialCount   int
	InitialHeights map[int]float64
	Batches        []Batch
}

// Batch is one step of a Script.
type Batch struct {
	Name    string
	Updates []Update
	// Heights are measured heights by row index after the batch.
	Heights  map[int]float64
	ScrollBy float64
	Resize   *Size
}

// Snapshot is the state of the engine after a step.
type Snapshot struct {
	Name          string
	Items         []Item
	ContentHeight float64
	Viewport      Viewport
	Result        BatchResult
}

type scriptFile struct {
	EstimatedItemHeight *float64 `yaml:"estimated_item_height"`
	Spacing             *float64 `yaml:"spacing"`
	Viewport            struct {
		Width       float64 `yaml:"width"`
		Height      float64 `yaml:"height"`
		InsetTop    float64 `yaml:"inset_top"`
		InsetBottom float64 `yaml:"inset_bottom"`
	} `yaml:"viewport"`
	InitialCount   int             `yaml:"initial_count"`
	InitialHeights map[int]float64 `yaml:"initial_heights"`
	Batches        []scriptBatch   `yaml:"batches"`
}

type scriptBatch struct {
	Name     string          `yaml:"name"`
	Updates  []scriptUpdate  `yaml:"updates"`
	Heights  map[int]float64 `yaml:"heights"`
	ScrollBy float64         `yaml:"scroll_by"`
	Resize   *struct {
		Width  float64 `yaml:"width"`
		Height float64 `yaml:"height"`
	} `yaml:"resize"`
}

type scriptUpdate struct {
	Delete *int `yaml:"delete"`
	Insert *int `yaml:"insert"`
	Reload *int `yaml:"reload"`
	Move   *struct {
		From int `yaml:"from"`
		To   int `yaml:"to"`
	} `yaml:"move"`
}

func (u scriptUpdate) toUpdate() (Update, error) {
	var out []Update
	if u.Delete != nil {
		out = append(out, DeleteAt(*u.Delete))
	}
	if u.Insert != nil {
		out = append(out, InsertAt(*u.Insert))
	}
	if u.Reload != nil {
		out = append(out, ReloadAt(*u.Reload))
	}
	if u.Move != nil {
		out = append(out, MoveFrom(u.Move.From, u.Move.To))
	}
	if len(out) != 1 {
		return Update{}, fmt.Errorf("%w: expected exactly one of delete, insert, reload or move", ErrInvalidUpdate)
	}
	return out[0], nil
}

// LoadScript reads a YAML layout script from disk. Geometry the script does
// not set is taken from defaults.
func LoadScript(path string, defaults Config) (*Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read script: %w", err)
	}
	return ParseScript(data, defaults)
}

func ParseScript(data []byte, defaults Config) (*Script, error) {
	var file scriptFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse script: %w", err)
	}

	cfg := defaults
	if file.EstimatedItemHeight != nil {
		cfg.EstimatedItemHeight = *file.EstimatedItemHeight
	}
	if file.Spacing != nil {
		cfg.Spacing = *file.Spacing
	}
	if file.InitialCount < 0 {
		return nil, fmt.Errorf("%w: negative initial_count %d", ErrInvalidUpdate, file.InitialCount)
	}

	script := &Script{
		Config: cfg,
		Viewport: Viewport{
			Width:       file.Viewport.Width,
			Height:      file.Viewport.Height,
			InsetTop:    file.Viewport.InsetTop,
			InsetBottom: file.Viewport.InsetBottom,
		},
		InitialCount:   file.InitialCount,
		InitialHeights: file.InitialHeights,
	}

	for n, raw := range file.Batches {
		batch := Batch{
			Name:     raw.Name,
			Heights:  raw.Heights,
			ScrollBy: raw.ScrollBy,
		}
		if batch.Name == "" {
			batch.Name = fmt.Sprintf("batch %d", n+1)
		}
		if raw.Resize != nil {
			batch.Resize = &Size{Width: raw.Resize.Width, Height: raw.Resize.Height}
		}
		for _, ru := range raw.Updates {
			u, err := ru.toUpdate()
			if err != nil {
				return nil, fmt.Errorf("%s: %w", batch.Name, err)
			}
			batch.Updates = append(batch.Updates, u)
		}
		script.Batches = append(script.Batches, batch)
	}

	return script, nil
}

func heightsSizer(heights map[int]float64) Sizer {
	if len(heights) == 0 {
		return nil
	}
	return func(index int) (float64, bool) {
		h, ok := heights[index]
		return h, ok
	}
}

// Run replays the script on a fresh engine. The first snapshot is the
// initial layout, followed by one per batch.
func (s *Script) Run() []Snapshot {
	host := NewHost(NewEngine(s.Config), s.Viewport)

	var result BatchResult
	result.Invalidations = host.Load(s.InitialCount, heightsSizer(s.InitialHeights))
	snapshots := []Snapshot{snapshot("initial", host, result)}

	for _, batch := range s.Batches {
		result := BatchResult{}
		if len(batch.Updates) > 0 || len(batch.Heights) > 0 {
			result = host.PerformBatchUpdates(batch.Updates, heightsSizer(batch.Heights))
		}
		if batch.Resize != nil {
			if inv := host.Resize(*batch.Resize); inv.ContentOffsetAdjustment != 0 {
				result.Invalidations = append(result.Invalidations, inv)
			}
		}
		if batch.ScrollBy != 0 {
			host.ScrollBy(batch.ScrollBy)
		}
		snapshots = append(snapshots, snapshot(batch.Name, host, result))
	}
	return snapshots
}

func snapshot(name string, host *Host, result BatchResult) Snapshot {
	return Snapshot{
		Name:          name,
		Items:         host.Engine.Items(),
		ContentHeight: host.Engine.ContentHeight(),
		Viewport:      host.Viewport,
		Result:        result,
	}
}
