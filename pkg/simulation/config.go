package simulation

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"image/color"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v5"
	"gopkg.in/yaml.v3"
)

//go:embed config.schema.json
var embeddedSchema string

// ErrInvalidConfig is returned for configurations the simulation cannot run.
var ErrInvalidConfig = errors.New("invalid config")

// RGBA is a JSON friendly color.
type RGBA struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
	A uint8 `json:"a"`
}

// Color converts to the image/color type used by renderers.
func (c RGBA) Color() color.RGBA {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: c.A}
}

type Config struct {
	// World Dimensions
	WorldWidth  int `json:"worldWidth"`
	WorldHeight int `json:"worldHeight"`

	// Agents
	NumAgents  int     `json:"numAgents"`
	AgentSpeed float64 `json:"agentSpeed"` // distance per unit of time
	AgentSize  float64 `json:"agentSize"`
	AgentColor RGBA    `json:"agentColor"`

	// Objects
	NumObjects      int     `json:"numObjects"`
	ObjectSize      float64 `json:"objectSize"`
	ObjectColor     RGBA    `json:"objectColor"`
	BroadcastRadius float64 `json:"broadcastRadius"` // exclusive upper bound of the emission rings

	// Time
	TimeStep      float64 `json:"timeStep"`
	AvailableTime float64 `json:"availableTime"`

	// Seed for the random source, 0 picks one at random.
	Seed uint64 `json:"seed"`
}

func DefaultConfig() *Config {
	return &Config{
		WorldWidth:      640,
		WorldHeight:     480,
		NumAgents:       100,
		AgentSpeed:      20,
		AgentSize:       5,
		AgentColor:      RGBA{R: 255, G: 0, B: 0, A: 51},
		NumObjects:      200,
		ObjectSize:      3,
		ObjectColor:     RGBA{R: 0, G: 128, B: 0, A: 255},
		BroadcastRadius: 20,
		TimeStep:        1,
		AvailableTime:   100000,
	}
}

// Validate rejects configurations that would break the simulation invariants.
func (c *Config) Validate() error {
	switch {
	case c.WorldWidth <= 0 || c.WorldHeight <= 0:
		return fmt.Errorf("%w: world must be at least 1x1, got %dx%d", ErrInvalidConfig, c.WorldWidth, c.WorldHeight)
	case c.NumAgents <= 0:
		return fmt.Errorf("%w: numAgents must be positive, got %d", ErrInvalidConfig, c.NumAgents)
	case c.NumObjects <= 0:
		return fmt.Errorf("%w: numObjects must be positive, got %d", ErrInvalidConfig, c.NumObjects)
	case c.TimeStep <= 0:
		return fmt.Errorf("%w: timeStep must be positive, got %v", ErrInvalidConfig, c.TimeStep)
	case c.AvailableTime < 0:
		return fmt.Errorf("%w: availableTime must not be negative, got %v", ErrInvalidConfig, c.AvailableTime)
	case c.AgentSpeed < 0:
		return fmt.Errorf("%w: agentSpeed must not be negative, got %v", ErrInvalidConfig, c.AgentSpeed)
	case c.AgentSize < 0 || c.ObjectSize < 0:
		return fmt.Errorf("%w: sizes must not be negative", ErrInvalidConfig)
	}

	span := float64(min(c.WorldWidth, c.WorldHeight))
	if c.BroadcastRadius <= 0 || c.BroadcastRadius > span {
		return fmt.Errorf("%w: broadcastRadius must be in (0, %v], got %v", ErrInvalidConfig, span, c.BroadcastRadius)
	}
	// positions are wrapped with a single correction, so one step may not cross the world twice
	if step := c.AgentSpeed * c.TimeStep; step > span || math.IsInf(step, 0) {
		return fmt.Errorf("%w: agentSpeed*timeStep = %v exceeds the world span %v", ErrInvalidConfig, step, span)
	}
	return nil
}

// LoadConfig loads configuration from a JSON or YAML file and validates it against the schema.
// An empty schemaFile uses the schema embedded in the binary.
// Fields missing from the file keep their DefaultConfig values.
func LoadConfig(configFile string, schemaFile string) (*Config, error) {
	// 1. Compile Schema
	sch, err := compileSchema(schemaFile)
	if err != nil {
		return nil, fmt.Errorf("failed to compile schema: %w", err)
	}

	// 2. Read Config File
	raw, err := os.ReadFile(configFile)
	if err != nil {
		return nil, fmt.Errorf("failed to open config file: %w", err)
	}

	// YAML is normalised to JSON so both formats share one validation path.
	ext := strings.ToLower(filepath.Ext(configFile))
	if ext == ".yaml" || ext == ".yml" {
		var doc map[string]interface{}
		if err := yaml.Unmarshal(raw, &doc); err != nil {
			return nil, fmt.Errorf("failed to decode config yaml: %w", err)
		}
		if raw, err = json.Marshal(doc); err != nil {
			return nil, fmt.Errorf("failed to convert config yaml: %w", err)
		}
	}

	// 3. Validate
	var v interface{}
	if err := json.Unmarshal(raw, &v); err != nil {
		return nil, fmt.Errorf("failed to decode config json: %w", err)
	}
	if err := sch.Validate(v); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	// 4. Unmarshal into Struct
	cfg := DefaultConfig()
	if err := json.Unmarshal(raw, cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func compileSchema(schemaFile string) (*jsonschema.Schema, error) {
	if schemaFile == "" {
		return jsonschema.CompileString("config.schema.json", embeddedSchema)
	}
	return jsonschema.Compile(schemaFile)
}
