package config

// DefaultGameConfig 返回内置默认配置（与 data/game.yaml 保持一致）
// 主要用于测试和无配置文件启动
func DefaultGameConfig() *GameConfig {
	cfg := &GameConfig{
		Screen:        SizeConfig{W: 1280, H: 720},
		TileSize:      64,
		MaxFrameDelta: 0.1,
		Layers: []string{
			"water", "ground", "soil", "soil_water", "rain_floor", "house_bottom",
			"ground_plant", "main", "house_top", "fruit", "rain_drops",
		},
		Tools: []string{"hoe", "axe", "water"},
		Seeds: []string{"corn", "tomato"},
		ToolOffsets: map[string]OffsetConfig{
			"left":  {X: -50, Y: 40},
			"right": {X: 50, Y: 40},
			"up":    {X: 0, Y: -10},
			"down":  {X: 0, Y: 50},
		},
		Player: PlayerConfig{
			Speed:         200,
			AnimationFPS:  4,
			Size:          SizeConfig{W: 192, H: 192},
			HitboxInflate: SizeConfig{W: -126, H: -70},
		},
		Timers: TimerConfig{
			ToolUseMs:    350,
			ToolSwitchMs: 200,
			SeedUseMs:    350,
			SeedSwitchMs: 200,
		},
		Tree: TreeConfig{
			Health:                  5,
			FruitChance:             2.0 / 11.0,
			StumpHitboxInflateW:     -10,
			StumpHitboxInflateRatio: -0.6,
			Sizes: map[string]TreeSizeConfig{
				"Small": {
					FruitSlots: []OffsetConfig{{18, 17}, {30, 37}, {12, 50}, {30, 45}, {20, 30}, {30, 10}},
					Stump:      SizeConfig{W: 64, H: 48},
					FruitSize:  SizeConfig{W: 12, H: 12},
				},
				"Large": {
					FruitSlots: []OffsetConfig{{30, 24}, {60, 65}, {50, 50}, {16, 40}, {45, 50}, {42, 70}},
					Stump:      SizeConfig{W: 64, H: 64},
					FruitSize:  SizeConfig{W: 12, H: 12},
				},
			},
		},
		Particles: ParticleConfig{FruitMs: 200, TreeMs: 300, HarvestMs: 300},
		Soil: SoilConfig{
			GrowSpeed:    map[string]float64{"corn": 1, "tomato": 0.7},
			MaxAge:       map[string]int{"corn": 3, "tomato": 3},
			PlantYOffset: map[string]float64{"corn": -16, "tomato": -8},
		},
		Day:     DayConfig{RainChance: 3.0 / 11.0, TransitionSeconds: 2},
		Overlay: OverlayConfig{Tool: OffsetConfig{X: 40, Y: 705}, Seed: OffsetConfig{X: 70, Y: 715}},
		Sounds: SoundConfig{
			Axe:     "axe",
			Success: "success",
			Hoe:     "hoe",
			Water:   "water",
			Plant:   "plant",
			Music:   "music",
		},
		Objects: ObjectConfig{
			HitboxInflateRatio:      OffsetConfig{X: -0.2, Y: -0.75},
			WildflowerInflateW:      -20,
			WildflowerInflateRatioH: -0.9,
			WaterAnimationFPS:       5,
		},
		Assets: AssetsConfig{GraphicsDir: "assets/graphics", AudioDir: "assets/audio"},
		KeyBindings: map[string][]string{
			"up":          {"ArrowUp", "W"},
			"down":        {"ArrowDown", "S"},
			"left":        {"ArrowLeft", "A"},
			"right":       {"ArrowRight", "D"},
			"use_tool":    {"Space"},
			"switch_tool": {"Q"},
			"use_seed":    {"ControlLeft"},
			"switch_seed": {"E"},
			"interact":    {"Enter"},
		},
	}

	if err := cfg.Validate(); err != nil {
		// 内置默认值无效属于编程错误
		panic("default game config is invalid: " + err.Error())
	}
	return cfg
}
