package components

import "github.com/hajimehoshi/ebiten/v2"

// SpriteComponent 存储实体的视觉表现(当前绘制的图像)
// Image 可以为 nil（例如资源加载失败且没有占位图），渲染时跳过
type SpriteComponent struct {
	Image *ebiten.Image
}
