package utils

import (
	"testing"

	"github.com/decker502/gooey/pkg/gesture"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"
)

type fakePointerSource struct {
	touches     map[ebiten.TouchID][2]int
	justPressed []ebiten.TouchID
	mouse       bool
	cursor      [2]int
}

func (f *fakePointerSource) TouchIDs() []ebiten.TouchID {
	ids := make([]ebiten.TouchID, 0, len(f.touches))
	for id := range f.touches {
		ids = append(ids, id)
	}
	return ids
}

func (f *fakePointerSource) JustPressedTouchIDs() []ebiten.TouchID { return f.justPressed }

func (f *fakePointerSource) TouchPosition(id ebiten.TouchID) (int, int) {
	p := f.touches[id]
	return p[0], p[1]
}

func (f *fakePointerSource) MousePressed() bool         { return f.mouse }
func (f *fakePointerSource) CursorPosition() (int, int) { return f.cursor[0], f.cursor[1] }

func TestPointerTrackerMouse(t *testing.T) {
	src := &fakePointerSource{cursor: [2]int{10, 20}}
	tracker := NewPointerTrackerWithSource(src)

	assert.Equal(t, gesture.PointerSample{Pressed: false, X: 10, Y: 20, ID: gesture.MousePointerID}, tracker.Sample())

	src.mouse = true
	src.cursor = [2]int{30, 40}
	assert.Equal(t, gesture.PointerSample{Pressed: true, X: 30, Y: 40, ID: gesture.MousePointerID}, tracker.Sample())
	assert.False(t, tracker.IsTouchTracking())
}

func TestPointerTrackerTouchLifecycle(t *testing.T) {
	src := &fakePointerSource{touches: map[ebiten.TouchID][2]int{}}
	tracker := NewPointerTrackerWithSource(src)

	// 按下
	src.touches[3] = [2]int{100, 200}
	src.justPressed = []ebiten.TouchID{3}
	assert.Equal(t, gesture.PointerSample{Pressed: true, X: 100, Y: 200, ID: 3}, tracker.Sample())
	assert.True(t, tracker.IsTouchTracking())

	// 移动
	src.justPressed = nil
	src.touches[3] = [2]int{120, 230}
	assert.Equal(t, gesture.PointerSample{Pressed: true, X: 120, Y: 230, ID: 3}, tracker.Sample())

	// 抬起：位置保持最后一次触摸位置
	delete(src.touches, 3)
	src.cursor = [2]int{0, 0}
	assert.Equal(t, gesture.PointerSample{Pressed: false, X: 120, Y: 230, ID: 3}, tracker.Sample())
	assert.False(t, tracker.IsTouchTracking())
}

func TestPointerTrackerIgnoresSecondTouch(t *testing.T) {
	src := &fakePointerSource{touches: map[ebiten.TouchID][2]int{}}
	tracker := NewPointerTrackerWithSource(src)

	src.touches[1] = [2]int{50, 50}
	src.justPressed = []ebiten.TouchID{1}
	tracker.Sample()

	// 第二根手指按下
	src.touches[2] = [2]int{300, 300}
	src.justPressed = []ebiten.TouchID{2}
	sample := tracker.Sample()
	assert.Equal(t, 1, sample.ID)
	assert.Equal(t, 50.0, sample.X)
}
