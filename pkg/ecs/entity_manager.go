package ecs

import (
	"reflect"
	"sort"
)

// EntityID 实体句柄
// 0 表示"没有实体"，句柄单调递增且永不复用，因此旧句柄不会指向新实体
type EntityID uint64

// componentSet 一个实体上挂载的组件，按组件类型索引
type componentSet map[reflect.Type]any

// EntityManager 实体仓库
//
// 实体只是整数句柄，数据全部挂在组件上。
// 渲染、碰撞、交互等"分组"由组件组合表达（见 pkg/components），
// 所以销毁实体就等于一次性退出所有分组。
//
// 销毁是延迟的：DestroyEntity 只登记，帧末 RemoveMarkedEntities 统一清理，
// 同一帧内其他系统仍能读取被登记实体的组件。
type EntityManager struct {
	lastID   EntityID
	entities map[EntityID]componentSet
	doomed   map[EntityID]struct{}
}

// NewEntityManager 创建空的实体仓库
func NewEntityManager() *EntityManager {
	return &EntityManager{
		entities: make(map[EntityID]componentSet),
		doomed:   make(map[EntityID]struct{}),
	}
}

// CreateEntity 分配新句柄
func (em *EntityManager) CreateEntity() EntityID {
	em.lastID++
	em.entities[em.lastID] = make(componentSet)
	return em.lastID
}

// Exists 句柄是否仍指向实体（已登记销毁但未清理的实体仍然存在）
func (em *EntityManager) Exists(id EntityID) bool {
	_, ok := em.entities[id]
	return ok
}

// DestroyEntity 登记销毁，重复登记和未知句柄都会被忽略
func (em *EntityManager) DestroyEntity(id EntityID) {
	if !em.Exists(id) {
		return
	}
	em.doomed[id] = struct{}{}
}

// IsMarkedForDestroy 实体是否已登记销毁
func (em *EntityManager) IsMarkedForDestroy(id EntityID) bool {
	_, ok := em.doomed[id]
	return ok
}

// RemoveMarkedEntities 清理所有已登记的实体，帧编排者每帧末尾调用一次
func (em *EntityManager) RemoveMarkedEntities() {
	for id := range em.doomed {
		delete(em.entities, id)
		delete(em.doomed, id)
	}
}

// EntityCount 存在的实体数
func (em *EntityManager) EntityCount() int {
	return len(em.entities)
}

// AddComponent 挂载组件，同类型的旧组件被替换
func (em *EntityManager) AddComponent(id EntityID, component any) {
	if set, ok := em.entities[id]; ok {
		set[reflect.TypeOf(component)] = component
	}
}

// RemoveComponent 卸下指定类型的组件
func (em *EntityManager) RemoveComponent(id EntityID, componentType reflect.Type) {
	if set, ok := em.entities[id]; ok {
		delete(set, componentType)
	}
}

// GetComponent 读取指定类型的组件
func (em *EntityManager) GetComponent(id EntityID, componentType reflect.Type) (any, bool) {
	comp, ok := em.entities[id][componentType]
	return comp, ok
}

// HasComponent 实体是否挂有指定类型的组件
func (em *EntityManager) HasComponent(id EntityID, componentType reflect.Type) bool {
	_, ok := em.entities[id][componentType]
	return ok
}

// GetEntitiesWith 挂有全部指定组件类型的实体，按句柄升序
// 升序保证每帧的遍历顺序确定（碰撞、砍树的"第一个命中"依赖于此）
func (em *EntityManager) GetEntitiesWith(componentTypes ...reflect.Type) []EntityID {
	var result []EntityID
	for id, set := range em.entities {
		if set.hasAll(componentTypes) {
			result = append(result, id)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i] < result[j] })
	return result
}

func (s componentSet) hasAll(types []reflect.Type) bool {
	for _, t := range types {
		if _, ok := s[t]; !ok {
			return false
		}
	}
	return true
}
