package components

// ParticleComponent 标记短暂的视觉粒子
//
// 粒子以源图像的剪影（纯白轮廓）绘制，
// 生命周期由同一实体上的 LifetimeComponent 控制。
type ParticleComponent struct {
	Silhouette bool // 是否以纯白剪影绘制
}
