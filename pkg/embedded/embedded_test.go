package embedded

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testFS() fstest.MapFS {
	return fstest.MapFS{
		"data/scene.yaml":                  {Data: []byte("circle: {radius: 80}\n")},
		"data/shaders/blur.kage":           {Data: []byte("package main\n")},
		"data/shaders/sweep_gradient.kage": {Data: []byte("package main\n")},
	}
}

// TestIsInitialized 测试初始化状态检测
func TestIsInitialized(t *testing.T) {
	Reset()
	assert.False(t, IsInitialized())

	Init(testFS())
	assert.True(t, IsInitialized())

	Init(nil)
	assert.False(t, IsInitialized(), "nil filesystem is not a valid init")
	Reset()
}

// TestNotInitialized 测试未初始化时访问
func TestNotInitialized(t *testing.T) {
	Reset()

	_, err := Open("data/scene.yaml")
	assert.ErrorIs(t, err, ErrNotInitialized)

	_, err = ReadFile("data/scene.yaml")
	assert.ErrorIs(t, err, ErrNotInitialized)

	_, err = Glob("data/*.yaml")
	assert.ErrorIs(t, err, ErrNotInitialized)

	assert.False(t, Exists("data/scene.yaml"))
}

func TestReadFile(t *testing.T) {
	Init(testFS())
	defer Reset()

	data, err := ReadFile("data/scene.yaml")
	require.NoError(t, err)
	assert.Equal(t, "circle: {radius: 80}\n", string(data))

	// 带 "./" 前缀
	data, err = ReadFile("./data/scene.yaml")
	require.NoError(t, err)
	assert.NotEmpty(t, data)

	_, err = ReadFile("assets/scene.yaml")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "unknown resource path prefix")

	_, err = ReadFile("data/missing.yaml")
	assert.Error(t, err)
}

func TestExistsAndGlob(t *testing.T) {
	Init(testFS())
	defer Reset()

	assert.True(t, Exists("data/shaders/blur.kage"))
	assert.False(t, Exists("data/shaders/missing.kage"))

	matches, err := Glob("data/shaders/*.kage")
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"data/shaders/blur.kage", "data/shaders/sweep_gradient.kage"}, matches)
}
