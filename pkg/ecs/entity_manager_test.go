package ecs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// 测试组件类型定义
type testPositionComponent struct {
	X, Y float64
}

type testRadiusComponent struct {
	R float64
}

type testTagComponent struct{}

func TestCreateEntity(t *testing.T) {
	em := NewEntityManager()
	id1 := em.CreateEntity()
	id2 := em.CreateEntity()

	assert.NotEqual(t, id1, id2, "Entity IDs should be unique")
	assert.Equal(t, EntityID(1), id1, "First entity ID should be 1")
	assert.Equal(t, EntityID(2), id2)
	assert.Equal(t, 2, em.EntityCount())
}

func TestAddAndGetComponent(t *testing.T) {
	em := NewEntityManager()
	id := em.CreateEntity()

	AddComponent(em, id, &testPositionComponent{X: 100, Y: 200})

	pos, found := GetComponent[*testPositionComponent](em, id)
	require.True(t, found)
	assert.Equal(t, 100.0, pos.X)
	assert.Equal(t, 200.0, pos.Y)

	// 同一实体上的指针修改对后续查询可见
	pos.X = 150
	again, _ := GetComponent[*testPositionComponent](em, id)
	assert.Equal(t, 150.0, again.X)
}

func TestGetComponentMissing(t *testing.T) {
	em := NewEntityManager()
	id := em.CreateEntity()

	pos, found := GetComponent[*testPositionComponent](em, id)
	assert.False(t, found)
	assert.Nil(t, pos)

	_, found = GetComponent[*testPositionComponent](em, EntityID(999))
	assert.False(t, found, "unknown entity should not have components")
}

func TestHasAndRemoveComponent(t *testing.T) {
	em := NewEntityManager()
	id := em.CreateEntity()

	assert.False(t, HasComponent[*testPositionComponent](em, id))
	AddComponent(em, id, &testPositionComponent{})
	assert.True(t, HasComponent[*testPositionComponent](em, id))

	RemoveComponent[*testPositionComponent](em, id)
	assert.False(t, HasComponent[*testPositionComponent](em, id))
}

func TestDestroyEntity(t *testing.T) {
	em := NewEntityManager()
	id := em.CreateEntity()
	AddComponent(em, id, &testPositionComponent{})

	em.DestroyEntity(id)
	assert.True(t, HasComponent[*testPositionComponent](em, id), "Entity should still exist before cleanup")

	em.RemoveMarkedEntities()
	assert.False(t, HasComponent[*testPositionComponent](em, id), "Entity should be removed after cleanup")
	assert.Equal(t, 0, em.EntityCount())
}

func TestGetEntitiesWith(t *testing.T) {
	em := NewEntityManager()

	id1 := em.CreateEntity()
	AddComponent(em, id1, &testPositionComponent{})
	AddComponent(em, id1, &testRadiusComponent{})

	id2 := em.CreateEntity()
	AddComponent(em, id2, &testPositionComponent{})

	id3 := em.CreateEntity()
	AddComponent(em, id3, &testRadiusComponent{})

	both := GetEntitiesWith2[*testPositionComponent, *testRadiusComponent](em)
	assert.Equal(t, []EntityID{id1}, both)

	positions := GetEntitiesWith1[*testPositionComponent](em)
	assert.Equal(t, []EntityID{id1, id2}, positions, "result should be sorted by id")

	assert.Empty(t, GetEntitiesWith3[*testPositionComponent, *testRadiusComponent, *testTagComponent](em))
	AddComponent(em, id1, &testTagComponent{})
	assert.Equal(t, []EntityID{id1}, GetEntitiesWith3[*testPositionComponent, *testRadiusComponent, *testTagComponent](em))
}

func TestDestroyMultipleEntities(t *testing.T) {
	em := NewEntityManager()

	ids := []EntityID{em.CreateEntity(), em.CreateEntity(), em.CreateEntity()}
	for _, id := range ids {
		AddComponent(em, id, &testPositionComponent{})
	}

	em.DestroyEntity(ids[0])
	em.DestroyEntity(ids[2])
	em.RemoveMarkedEntities()

	assert.Equal(t, []EntityID{ids[1]}, GetEntitiesWith1[*testPositionComponent](em))
}
