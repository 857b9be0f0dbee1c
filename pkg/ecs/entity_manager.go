// Package ecs 实体组件存储
//
// 组件按 reflect.Type 索引，约定以指针形式存入，系统拿到指针后直接修改。
// 销毁是延迟的：DestroyEntity 只做标记，帧末 RemoveMarkedEntities 统一清理。
package ecs

import "reflect"

// EntityID 实体标识，0 保留为无效值
type EntityID uint64

type componentSet map[reflect.Type]any

// EntityManager 实体与组件的唯一持有者，非并发安全
type EntityManager struct {
	nextID     EntityID
	components map[EntityID]componentSet

	pending []EntityID
	marked  map[EntityID]struct{}
}

func NewEntityManager() *EntityManager {
	return &EntityManager{
		nextID:     1,
		components: make(map[EntityID]componentSet),
		marked:     make(map[EntityID]struct{}),
	}
}

// CreateEntity 分配一个新的空实体
func (em *EntityManager) CreateEntity() EntityID {
	id := em.nextID
	em.nextID++
	em.components[id] = make(componentSet)
	return id
}

// DestroyEntity 标记实体待移除，重复标记无副作用
func (em *EntityManager) DestroyEntity(id EntityID) {
	if _, dup := em.marked[id]; dup {
		return
	}
	em.marked[id] = struct{}{}
	em.pending = append(em.pending, id)
}

func (em *EntityManager) IsMarkedForDestroy(id EntityID) bool {
	_, ok := em.marked[id]
	return ok
}

// IsAlive 实体存在且本帧未被标记移除
func (em *EntityManager) IsAlive(id EntityID) bool {
	_, ok := em.components[id]
	return ok && !em.IsMarkedForDestroy(id)
}

// AddComponent 以组件的动态类型为键写入，已存在时覆盖
// 对不存在的实体静默忽略
func (em *EntityManager) AddComponent(id EntityID, component any) {
	em.put(id, reflect.TypeOf(component), component)
}

func (em *EntityManager) put(id EntityID, t reflect.Type, component any) {
	if set, ok := em.components[id]; ok {
		set[t] = component
	}
}

func (em *EntityManager) RemoveComponent(id EntityID, componentType reflect.Type) {
	if set, ok := em.components[id]; ok {
		delete(set, componentType)
	}
}

func (em *EntityManager) GetComponent(id EntityID, componentType reflect.Type) (any, bool) {
	comp, ok := em.components[id][componentType]
	return comp, ok
}

func (em *EntityManager) HasComponent(id EntityID, componentType reflect.Type) bool {
	_, ok := em.components[id][componentType]
	return ok
}

// RemoveMarkedEntities 移除本帧所有被标记的实体
func (em *EntityManager) RemoveMarkedEntities() {
	for _, id := range em.pending {
		delete(em.components, id)
		delete(em.marked, id)
	}
	em.pending = em.pending[:0]
}

// Clear 移除全部实体，ID 继续递增不复用
func (em *EntityManager) Clear() {
	clear(em.components)
	clear(em.marked)
	em.pending = em.pending[:0]
}

// EntityCount 实体数量，包含已标记但尚未移除的实体
func (em *EntityManager) EntityCount() int {
	return len(em.components)
}

// GetEntitiesWith 返回同时拥有全部给定组件类型的实体，顺序不确定
func (em *EntityManager) GetEntitiesWith(componentTypes ...reflect.Type) []EntityID {
	var result []EntityID
next:
	for id, set := range em.components {
		for _, t := range componentTypes {
			if _, ok := set[t]; !ok {
				continue next
			}
		}
		result = append(result, id)
	}
	return result
}
