package utils

// 缓动函数
//
// 接受进度 t ∈ [0, 1]，返回缓动后的值 ∈ [0, 1]。
// 日夜切换的渐黑/渐亮使用这些曲线。

// EaseLinear 线性（匀速）
func EaseLinear(t float64) float64 {
	return Clamp01(t)
}

// EaseInQuad 二次方缓入：开始慢，结束快
func EaseInQuad(t float64) float64 {
	t = Clamp01(t)
	return t * t
}

// EaseOutQuad 二次方缓出：开始快，结束慢
func EaseOutQuad(t float64) float64 {
	t = Clamp01(t)
	return 1 - (1-t)*(1-t)
}

// Lerp 线性插值，t=0 返回 a，t=1 返回 b
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// Clamp01 把 t 限制在 [0, 1]
func Clamp01(t float64) float64 {
	switch {
	case t < 0:
		return 0
	case t > 1:
		return 1
	default:
		return t
	}
}
