package simulation

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadConfig_JSON(t *testing.T) {
	path := writeFile(t, "config.json", `{
		"worldWidth": 300,
		"worldHeight": 200,
		"numAgents": 10,
		"agentSpeed": 4,
		"numObjects": 30,
		"broadcastRadius": 12.5,
		"agentColor": {"r": 1, "g": 2, "b": 3, "a": 4},
		"seed": 99
	}`)

	cfg, err := LoadConfig(path, "")
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}

	want := DefaultConfig()
	want.WorldWidth = 300
	want.WorldHeight = 200
	want.NumAgents = 10
	want.AgentSpeed = 4
	want.NumObjects = 30
	want.BroadcastRadius = 12.5
	want.AgentColor = RGBA{R: 1, G: 2, B: 3, A: 4}
	want.Seed = 99
	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Errorf("config mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadConfig_YAML(t *testing.T) {
	path := writeFile(t, "config.yaml", `
worldWidth: 120
worldHeight: 80
numAgents: 5
numObjects: 9
broadcastRadius: 6
timeStep: 0.5
availableTime: 40
objectColor: {r: 10, g: 20, b: 30, a: 255}
`)

	cfg, err := LoadConfig(path, "")
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}

	want := DefaultConfig()
	want.WorldWidth = 120
	want.WorldHeight = 80
	want.NumAgents = 5
	want.NumObjects = 9
	want.BroadcastRadius = 6
	want.TimeStep = 0.5
	want.AvailableTime = 40
	want.ObjectColor = RGBA{R: 10, G: 20, B: 30, A: 255}
	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Errorf("config mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadConfig_ShippedFiles(t *testing.T) {
	for _, name := range []string{"config.json", "config.yaml"} {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join("..", "..", "configs", name)
			schema := filepath.Join("..", "..", "configs", "config.schema.json")
			if _, err := LoadConfig(path, schema); err != nil {
				t.Errorf("LoadConfig(%s): %v", name, err)
			}
		})
	}
}

// configs/config.schema.json is the copy users edit and pass with -schema;
// it must not drift from the schema compiled into the binary.
func TestEmbeddedSchema_MatchesShipped(t *testing.T) {
	shipped, err := os.ReadFile("../../configs/config.schema.json")
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(string(shipped), embeddedSchema); diff != "" {
		t.Errorf("embedded schema differs from configs/config.schema.json (-shipped +embedded):\n%s", diff)
	}
}

func TestLoadConfig_Rejects(t *testing.T) {
	tests := []struct {
		name, file, content string
		invalid             bool // a semantic error rather than a schema one
	}{
		{name: "unknown property", file: "c.json", content: `{"numAnts": 3}`},
		{name: "wrong type", file: "c.json", content: `{"numAgents": "many"}`},
		{name: "zero agents", file: "c.json", content: `{"numAgents": 0}`},
		{name: "color out of range", file: "c.json", content: `{"agentColor": {"r": 300, "g": 0, "b": 0, "a": 0}}`},
		{name: "broken json", file: "c.json", content: `{"numAgents": `},
		{name: "broken yaml", file: "c.yaml", content: "numAgents: [1"},
		{name: "broadcast wider than the world", file: "c.json", content: `{"worldWidth": 50, "worldHeight": 50, "broadcastRadius": 60}`, invalid: true},
		{name: "step crosses the world", file: "c.yml", content: "worldWidth: 30\nworldHeight: 30\nagentSpeed: 40\nbroadcastRadius: 5\n", invalid: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeFile(t, tt.file, tt.content)
			_, err := LoadConfig(path, "")
			if err == nil {
				t.Fatal("LoadConfig() succeeded; want an error")
			}
			if got := errors.Is(err, ErrInvalidConfig); got != tt.invalid {
				t.Errorf("errors.Is(err, ErrInvalidConfig) = %v; want %v (err: %v)", got, tt.invalid, err)
			}
		})
	}
}

func TestLoadConfig_MissingFiles(t *testing.T) {
	if _, err := LoadConfig(filepath.Join(t.TempDir(), "nope.json"), ""); err == nil {
		t.Error("missing config file accepted")
	}
	path := writeFile(t, "c.json", `{}`)
	if _, err := LoadConfig(path, filepath.Join(t.TempDir(), "nope.schema.json")); err == nil {
		t.Error("missing schema file accepted")
	}
}

func TestDefaultConfig_IsValid(t *testing.T) {
	if err := DefaultConfig().Validate(); err != nil {
		t.Errorf("DefaultConfig().Validate() = %v", err)
	}
}
