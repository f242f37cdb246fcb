package utils

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Rect 轴对齐矩形（世界坐标，左上角 + 尺寸）
// 同时用于视觉边界和碰撞盒
type Rect struct {
	X, Y float64
	W, H float64
}

// NewRect 以左上角和尺寸创建矩形
func NewRect(x, y, w, h float64) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// NewRectMidBottom 以底边中点为锚点创建矩形
// 树木变成树桩时使用，保证树桩落在原来的地面位置
func NewRectMidBottom(midBottom mgl64.Vec2, w, h float64) Rect {
	return Rect{X: midBottom.X() - w/2, Y: midBottom.Y() - h, W: w, H: h}
}

func (r Rect) Left() float64    { return r.X }
func (r Rect) Right() float64   { return r.X + r.W }
func (r Rect) Top() float64     { return r.Y }
func (r Rect) Bottom() float64  { return r.Y + r.H }
func (r Rect) CenterX() float64 { return r.X + r.W/2 }
func (r Rect) CenterY() float64 { return r.Y + r.H/2 }

// Center 返回中心点
func (r Rect) Center() mgl64.Vec2 {
	return mgl64.Vec2{r.CenterX(), r.CenterY()}
}

// TopLeft 返回左上角
func (r Rect) TopLeft() mgl64.Vec2 {
	return mgl64.Vec2{r.X, r.Y}
}

// MidBottom 返回底边中点
func (r Rect) MidBottom() mgl64.Vec2 {
	return mgl64.Vec2{r.CenterX(), r.Bottom()}
}

func (r *Rect) SetLeft(x float64)   { r.X = x }
func (r *Rect) SetRight(x float64)  { r.X = x - r.W }
func (r *Rect) SetTop(y float64)    { r.Y = y }
func (r *Rect) SetBottom(y float64) { r.Y = y - r.H }

// SetCenterX 水平移动矩形使其中心位于 x
func (r *Rect) SetCenterX(x float64) { r.X = x - r.W/2 }

// SetCenterY 垂直移动矩形使其中心位于 y
func (r *Rect) SetCenterY(y float64) { r.Y = y - r.H/2 }

// SetCenter 移动矩形使其中心位于 c
func (r *Rect) SetCenter(c mgl64.Vec2) {
	r.SetCenterX(c.X())
	r.SetCenterY(c.Y())
}

// Inflate 保持中心不变，宽高分别增加 dw、dh（负值为收缩）
// 结果尺寸不会小于 0
func (r Rect) Inflate(dw, dh float64) Rect {
	w := math.Max(0, r.W+dw)
	h := math.Max(0, r.H+dh)
	return Rect{
		X: r.CenterX() - w/2,
		Y: r.CenterY() - h/2,
		W: w,
		H: h,
	}
}

// Overlaps 判断两个矩形是否重叠
// 仅边缘接触不算重叠，这样碰撞推出后紧贴障碍物的位置是稳定的
func (r Rect) Overlaps(o Rect) bool {
	return r.Left() < o.Right() &&
		r.Right() > o.Left() &&
		r.Top() < o.Bottom() &&
		r.Bottom() > o.Top()
}

// ContainsPoint 判断点是否在矩形内（左闭右开）
func (r Rect) ContainsPoint(p mgl64.Vec2) bool {
	return p.X() >= r.Left() && p.X() < r.Right() &&
		p.Y() >= r.Top() && p.Y() < r.Bottom()
}

// ContainsRect 判断 o 是否完全位于 r 内（允许边缘重合）
func (r Rect) ContainsRect(o Rect) bool {
	return o.Left() >= r.Left() && o.Right() <= r.Right() &&
		o.Top() >= r.Top() && o.Bottom() <= r.Bottom()
}
