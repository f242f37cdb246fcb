package components

import "github.com/hajimehoshi/ebiten/v2"

// AnimationComponent 管理循环帧动画
//
// 帧索引按 FPS × dt 递增，越界后回到 0（循环而非停在最后一帧），
// 当前帧 = Frames[State][floor(FrameIndex)]。
// 某个状态缺少帧时保持 SpriteComponent 中的当前图像（占位图）。
type AnimationComponent struct {
	Frames     map[string][]*ebiten.Image // 状态名 -> 帧序列
	State      string                     // 当前状态名（如 "down_idle"）
	FrameIndex float64                    // 当前帧索引（可为小数）
	FPS        float64                    // 每秒前进的帧数
}
