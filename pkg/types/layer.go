// Package types 定义共享的基础类型
// 这个包不依赖任何其他业务包，用于解决循环引用问题
package types

import "fmt"

// Layer 绘制层级
// 数值越大越靠上绘制；同层内再按纵向中心排序
type Layer int

const (
	LayerWater Layer = iota
	LayerGround
	LayerSoil
	LayerSoilWater
	LayerRainFloor
	LayerHouseBottom
	LayerGroundPlant
	LayerMain
	LayerHouseTop
	LayerFruit
	LayerRainDrops
)

var layerNames = [...]string{
	LayerWater:       "water",
	LayerGround:      "ground",
	LayerSoil:        "soil",
	LayerSoilWater:   "soil_water",
	LayerRainFloor:   "rain_floor",
	LayerHouseBottom: "house_bottom",
	LayerGroundPlant: "ground_plant",
	LayerMain:        "main",
	LayerHouseTop:    "house_top",
	LayerFruit:       "fruit",
	LayerRainDrops:   "rain_drops",
}

// AllLayers 返回全部层级（按默认绘制顺序）
func AllLayers() []Layer {
	layers := make([]Layer, len(layerNames))
	for i := range layerNames {
		layers[i] = Layer(i)
	}
	return layers
}

// String 返回层级名称
func (l Layer) String() string {
	if l < 0 || int(l) >= len(layerNames) {
		return fmt.Sprintf("Layer(%d)", int(l))
	}
	return layerNames[l]
}

// ParseLayer 将配置中的层级名称转换为 Layer
func ParseLayer(name string) (Layer, error) {
	for i, n := range layerNames {
		if n == name {
			return Layer(i), nil
		}
	}
	return 0, fmt.Errorf("unknown layer %q", name)
}
