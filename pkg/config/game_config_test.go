package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/decker502/farmstead/pkg/types"
	"github.com/go-gl/mathgl/mgl64"
	"gopkg.in/yaml.v3"
)

// TestDefaultGameConfig 测试内置默认配置可以通过校验并正确解析枚举
func TestDefaultGameConfig(t *testing.T) {
	cfg := DefaultGameConfig()

	wantTools := []types.Tool{types.ToolHoe, types.ToolAxe, types.ToolWater}
	if len(cfg.ToolList()) != len(wantTools) {
		t.Fatalf("ToolList() = %v, want %v", cfg.ToolList(), wantTools)
	}
	for i, tool := range wantTools {
		if cfg.ToolList()[i] != tool {
			t.Errorf("ToolList()[%d] = %v, want %v", i, cfg.ToolList()[i], tool)
		}
	}

	if got := cfg.SeedList(); len(got) != 2 || got[0] != types.SeedCorn || got[1] != types.SeedTomato {
		t.Errorf("SeedList() = %v, want [corn tomato]", got)
	}

	if got := cfg.ToolOffset(types.FacingLeft); got != (mgl64.Vec2{-50, 40}) {
		t.Errorf("ToolOffset(left) = %v", got)
	}

	order := cfg.LayerOrder()
	if order[0] != types.LayerWater || order[len(order)-1] != types.LayerRainDrops {
		t.Errorf("unexpected layer order: %v", order)
	}
}

// TestShippedConfigMatchesDefaults 测试 data/game.yaml 与内置默认值一致
func TestShippedConfigMatchesDefaults(t *testing.T) {
	path := filepath.Join("..", "..", "data", "game.yaml")
	if _, err := os.Stat(path); err != nil {
		t.Skipf("shipped config not found: %v", err)
	}

	cfg, err := LoadGameConfig(path)
	if err != nil {
		t.Fatalf("LoadGameConfig() error = %v", err)
	}
	def := DefaultGameConfig()

	if cfg.TileSize != def.TileSize || cfg.Screen != def.Screen {
		t.Errorf("screen/tile mismatch: %+v/%v vs %+v/%v", cfg.Screen, cfg.TileSize, def.Screen, def.TileSize)
	}
	if cfg.Timers != def.Timers {
		t.Errorf("timers mismatch: %+v vs %+v", cfg.Timers, def.Timers)
	}
	if cfg.Tree.Health != def.Tree.Health {
		t.Errorf("tree health mismatch: %d vs %d", cfg.Tree.Health, def.Tree.Health)
	}
	for _, f := range types.AllFacings() {
		if cfg.ToolOffset(f) != def.ToolOffset(f) {
			t.Errorf("offset for %v mismatch: %v vs %v", f, cfg.ToolOffset(f), def.ToolOffset(f))
		}
	}
}

// TestGameConfigValidate 测试配置错误在加载时被拒绝
func TestGameConfigValidate(t *testing.T) {
	tests := []struct {
		name        string
		mutate      func(m map[string]interface{})
		errContains string
	}{
		{
			name:        "missing tool offset",
			mutate:      func(m map[string]interface{}) { delete(m["toolOffsets"].(map[string]interface{}), "up") },
			errContains: `missing offset for facing "up"`,
		},
		{
			name:        "unknown tool",
			mutate:      func(m map[string]interface{}) { m["tools"] = []string{"hoe", "sickle"} },
			errContains: `unknown tool "sickle"`,
		},
		{
			name:        "unknown seed",
			mutate:      func(m map[string]interface{}) { m["seeds"] = []string{"wheat"} },
			errContains: `unknown seed "wheat"`,
		},
		{
			name:        "duplicate layer",
			mutate:      func(m map[string]interface{}) { m["layers"] = []string{"main", "main"} },
			errContains: "listed twice",
		},
		{
			name:        "non-positive tile size",
			mutate:      func(m map[string]interface{}) { m["tileSize"] = 0 },
			errContains: "tileSize must be positive",
		},
		{
			name: "hitbox not smaller than sprite",
			mutate: func(m map[string]interface{}) {
				m["player"].(map[string]interface{})["hitboxInflate"] = map[string]interface{}{"w": 0, "h": -10}
			},
			errContains: "hitboxInflate must shrink",
		},
		{
			name: "object hitbox larger than sprite",
			mutate: func(m map[string]interface{}) {
				m["objects"].(map[string]interface{})["hitboxInflateRatio"] = map[string]interface{}{"x": 0.2, "y": -0.75}
			},
			errContains: "objects.hitboxInflateRatio.x must be within (-1, 0]",
		},
		{
			name: "object hitbox collapses",
			mutate: func(m map[string]interface{}) {
				m["objects"].(map[string]interface{})["hitboxInflateRatio"] = map[string]interface{}{"x": -0.2, "y": -1}
			},
			errContains: "objects.hitboxInflateRatio.y must be within (-1, 0]",
		},
		{
			name:        "wildflower grows horizontally",
			mutate:      func(m map[string]interface{}) { m["objects"].(map[string]interface{})["wildflowerInflateW"] = 4 },
			errContains: "wildflowerInflateW must not grow",
		},
		{
			name:        "wildflower ratio positive",
			mutate:      func(m map[string]interface{}) { m["objects"].(map[string]interface{})["wildflowerInflateRatioH"] = 0.5 },
			errContains: "wildflowerInflateRatioH must be within (-1, 0]",
		},
		{
			name:        "stump grows horizontally",
			mutate:      func(m map[string]interface{}) { m["tree"].(map[string]interface{})["stumpHitboxInflateW"] = 10 },
			errContains: "stumpHitboxInflateW must not grow",
		},
		{
			name:        "stump ratio out of range",
			mutate:      func(m map[string]interface{}) { m["tree"].(map[string]interface{})["stumpHitboxInflateRatio"] = -1.5 },
			errContains: "stumpHitboxInflateRatio must be within (-1, 0]",
		},
		{
			name: "stump narrower than its shrink",
			mutate: func(m map[string]interface{}) {
				sizes := m["tree"].(map[string]interface{})["sizes"].(map[string]interface{})
				sizes["Small"].(map[string]interface{})["stump"] = map[string]interface{}{"w": 8, "h": 48}
			},
			errContains: "tree.sizes.Small: stumpHitboxInflateW leaves an empty hitbox",
		},
		{
			name: "zero fruit size",
			mutate: func(m map[string]interface{}) {
				sizes := m["tree"].(map[string]interface{})["sizes"].(map[string]interface{})
				sizes["Large"].(map[string]interface{})["fruitSize"] = map[string]interface{}{"w": 0, "h": 12}
			},
			errContains: "tree.sizes.Large.fruitSize must be positive",
		},
		{
			name:        "unknown control",
			mutate:      func(m map[string]interface{}) { m["keyBindings"] = map[string][]string{"jump": {"Space"}} },
			errContains: `unknown control "jump"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := defaultAsMap(t)
			tt.mutate(m)
			data, err := yaml.Marshal(m)
			if err != nil {
				t.Fatalf("marshal: %v", err)
			}

			_, err = ParseGameConfig(data)
			if err == nil {
				t.Fatal("expected validation error, got nil")
			}
			if !strings.Contains(err.Error(), tt.errContains) {
				t.Errorf("error %q does not contain %q", err.Error(), tt.errContains)
			}
		})
	}
}

// TestParseGameConfigMalformed 测试非法 YAML
func TestParseGameConfigMalformed(t *testing.T) {
	if _, err := ParseGameConfig([]byte("screen: [unclosed")); err == nil {
		t.Error("expected parse error")
	}
}

// defaultAsMap 将默认配置序列化为通用 map，便于逐项篡改
func defaultAsMap(t *testing.T) map[string]interface{} {
	t.Helper()
	data, err := yaml.Marshal(DefaultGameConfig())
	if err != nil {
		t.Fatalf("marshal default config: %v", err)
	}
	var m map[string]interface{}
	if err := yaml.Unmarshal(data, &m); err != nil {
		t.Fatalf("unmarshal default config: %v", err)
	}
	return m
}
