package ecs

import (
	"reflect"
	"slices"
)

// EntityID 是实体的唯一标识符
type EntityID uint64

// EntityManager 管理所有实体和组件
type EntityManager struct {
	nextID uint64
	// EntityID -> 组件类型 -> 组件实例
	components map[EntityID]map[reflect.Type]any
	// 待删除的实体ID列表
	entitiesToDestroy []EntityID
}

// NewEntityManager 创建一个新的 EntityManager 实例
func NewEntityManager() *EntityManager {
	return &EntityManager{
		nextID:     1, // 0 保留为无效ID
		components: make(map[EntityID]map[reflect.Type]any),
	}
}

// CreateEntity 创建新实体并返回唯一ID
func (em *EntityManager) CreateEntity() EntityID {
	id := EntityID(em.nextID)
	em.nextID++
	em.components[id] = make(map[reflect.Type]any)
	return id
}

// DestroyEntity 标记实体待删除(不立即删除)
func (em *EntityManager) DestroyEntity(id EntityID) {
	em.entitiesToDestroy = append(em.entitiesToDestroy, id)
}

// RemoveMarkedEntities 清理所有标记删除的实体
func (em *EntityManager) RemoveMarkedEntities() {
	for _, id := range em.entitiesToDestroy {
		delete(em.components, id)
	}
	em.entitiesToDestroy = em.entitiesToDestroy[:0]
}

// EntityCount 返回当前存活的实体数量
func (em *EntityManager) EntityCount() int {
	return len(em.components)
}

func (em *EntityManager) add(id EntityID, t reflect.Type, component any) {
	if compMap, exists := em.components[id]; exists {
		compMap[t] = component
	}
}

func (em *EntityManager) get(id EntityID, t reflect.Type) (any, bool) {
	compMap, exists := em.components[id]
	if !exists {
		return nil, false
	}
	comp, found := compMap[t]
	return comp, found
}

// AddComponent 为实体添加组件，同类型组件会被覆盖
func AddComponent[T any](em *EntityManager, id EntityID, component T) {
	em.add(id, reflect.TypeFor[T](), component)
}

// GetComponent 获取实体的 T 类型组件
func GetComponent[T any](em *EntityManager, id EntityID) (T, bool) {
	comp, ok := em.get(id, reflect.TypeFor[T]())
	if !ok {
		var zero T
		return zero, false
	}
	return comp.(T), true
}

// HasComponent 检查实体是否拥有 T 类型组件
func HasComponent[T any](em *EntityManager, id EntityID) bool {
	_, ok := em.get(id, reflect.TypeFor[T]())
	return ok
}

// RemoveComponent 从实体移除 T 类型组件
func RemoveComponent[T any](em *EntityManager, id EntityID) {
	if compMap, exists := em.components[id]; exists {
		delete(compMap, reflect.TypeFor[T]())
	}
}

// GetEntitiesWith1 查询拥有 T1 组件的实体
//
// 结果按 EntityID 升序返回，保证每帧的绘制顺序稳定。
func GetEntitiesWith1[T1 any](em *EntityManager) []EntityID {
	return em.entitiesWith(reflect.TypeFor[T1]())
}

// GetEntitiesWith2 查询同时拥有 T1、T2 组件的实体
func GetEntitiesWith2[T1, T2 any](em *EntityManager) []EntityID {
	return em.entitiesWith(reflect.TypeFor[T1](), reflect.TypeFor[T2]())
}

// GetEntitiesWith3 查询同时拥有 T1、T2、T3 组件的实体
func GetEntitiesWith3[T1, T2, T3 any](em *EntityManager) []EntityID {
	return em.entitiesWith(reflect.TypeFor[T1](), reflect.TypeFor[T2](), reflect.TypeFor[T3]())
}

func (em *EntityManager) entitiesWith(required ...reflect.Type) []EntityID {
	result := make([]EntityID, 0)

	for id, compMap := range em.components {
		hasAll := true
		for _, ct := range required {
			if _, found := compMap[ct]; !found {
				hasAll = false
				break
			}
		}
		if hasAll {
			result = append(result, id)
		}
	}

	slices.Sort(result)
	return result
}
