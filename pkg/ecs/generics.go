package ecs

import (
	"reflect"
	"slices"
)

// typeOf 返回泛型参数 T 对应的 reflect.Type
// 组件约定以指针形式存储（如 *components.HealthComponent）
func typeOf[T any]() reflect.Type {
	return reflect.TypeOf((*T)(nil)).Elem()
}

// AddComponent 泛型版本：为实体添加组件
func AddComponent[T any](em *EntityManager, id EntityID, component T) {
	em.put(id, typeOf[T](), component)
}

// GetComponent 泛型版本：获取实体的特定类型组件
//
// 示例：
//
//	health, ok := ecs.GetComponent[*components.HealthComponent](em, id)
func GetComponent[T any](em *EntityManager, id EntityID) (T, bool) {
	typed, ok := em.components[id][typeOf[T]()].(T)
	return typed, ok
}

// HasComponent 泛型版本：检查实体是否拥有特定类型组件
func HasComponent[T any](em *EntityManager, id EntityID) bool {
	return em.HasComponent(id, typeOf[T]())
}

// RemoveComponent 泛型版本：从实体移除指定类型的组件
func RemoveComponent[T any](em *EntityManager, id EntityID) {
	em.RemoveComponent(id, typeOf[T]())
}

// GetEntitiesWith1 查询拥有组件 T1 的所有实体（按ID升序）
func GetEntitiesWith1[T1 any](em *EntityManager) []EntityID {
	return em.sortedEntitiesWith(typeOf[T1]())
}

// GetEntitiesWith2 查询同时拥有 T1、T2 的所有实体（按ID升序）
func GetEntitiesWith2[T1, T2 any](em *EntityManager) []EntityID {
	return em.sortedEntitiesWith(typeOf[T1](), typeOf[T2]())
}

// GetEntitiesWith3 查询同时拥有 T1、T2、T3 的所有实体（按ID升序）
func GetEntitiesWith3[T1, T2, T3 any](em *EntityManager) []EntityID {
	return em.sortedEntitiesWith(typeOf[T1](), typeOf[T2](), typeOf[T3]())
}

// GetEntitiesWith4 查询同时拥有 T1..T4 的所有实体（按ID升序）
func GetEntitiesWith4[T1, T2, T3, T4 any](em *EntityManager) []EntityID {
	return em.sortedEntitiesWith(typeOf[T1](), typeOf[T2](), typeOf[T3](), typeOf[T4]())
}

// sortedEntitiesWith 固定查询结果顺序，保证每帧系统处理顺序确定
func (em *EntityManager) sortedEntitiesWith(types ...reflect.Type) []EntityID {
	result := em.GetEntitiesWith(types...)
	slices.Sort(result)
	return result
}
