// verify_spring 在不打开窗口的情况下复现一次拖拽 + 回弹，并打印每帧坐标
//
// 用法:
//
//	go run ./cmd/verify_spring
//	go run ./cmd/verify_spring --dx 50 --dy -20 --damping 10
//	go run ./cmd/verify_spring --config my_scene.yaml --verbose
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/decker502/gooey/pkg/animation"
	"github.com/decker502/gooey/pkg/components"
	"github.com/decker502/gooey/pkg/config"
	"github.com/decker502/gooey/pkg/ecs"
	"github.com/decker502/gooey/pkg/entities"
	"github.com/decker502/gooey/pkg/gesture"
	"github.com/decker502/gooey/pkg/systems"
	"github.com/decker502/gooey/pkg/types"
	"github.com/sirupsen/logrus"
)

var (
	verbose    = flag.Bool("verbose", false, "显示详细调试信息")
	configPath = flag.String("config", "", "场景配置文件路径（默认使用内置默认值）")
	dx         = flag.Float64("dx", 50, "拖拽的水平位移")
	dy         = flag.Float64("dy", -20, "拖拽的垂直位移")
	damping    = flag.Float64("damping", -1, "覆盖弹簧阻尼（<0 表示使用配置值）")
	maxFrames  = flag.Int("frames", 600, "最多模拟的帧数")
)

const deltaTime = 1.0 / 60.0

func main() {
	flag.Parse()

	if *verbose {
		logrus.SetLevel(logrus.DebugLevel)
	} else {
		logrus.SetLevel(logrus.WarnLevel)
	}

	cfg := config.DefaultSceneConfig()
	if *configPath != "" {
		loaded, err := config.LoadSceneConfig(*configPath)
		if err != nil {
			logrus.Fatalf("加载配置失败: %v", err)
		}
		cfg = loaded
	}
	if *damping >= 0 {
		cfg.Spring.Damping = *damping
		if err := cfg.Spring.Validate(); err != nil {
			logrus.Fatalf("弹簧参数无效: %v", err)
		}
	}

	em := ecs.NewEntityManager()
	animator := animation.NewAnimator()
	center := cfg.Screen.Center()
	id := entities.NewDraggableCircleEntity(em, center, center, cfg.Circle.Radius)
	controller := systems.NewDragSpringSystem(em, animator, id, cfg.Spring)
	springs := systems.NewSpringSystem(animator)

	fmt.Printf("spring: mass=%.2f stiffness=%.2f damping=%.2f ω=%.3f ζ=%.3f\n",
		cfg.Spring.Mass, cfg.Spring.Stiffness, cfg.Spring.Damping,
		cfg.Spring.AngularFrequency(), cfg.Spring.DampingRatio())

	controller.OnStart(gesture.Event{Phase: gesture.PhaseStart, X: center.X, Y: center.Y})
	controller.OnActive(gesture.Event{Phase: gesture.PhaseMove, DX: *dx, DY: *dy})
	released := position(em, id)
	fmt.Printf("release at %s\n", released)
	controller.OnEnd(gesture.Event{Phase: gesture.PhaseEnd, DX: *dx, DY: *dy})

	overshoot := 0.0
	for frame := 1; frame <= *maxFrames; frame++ {
		springs.Update(deltaTime)
		p := position(em, id)
		fmt.Printf("%4d  %8.3f  %8.3f\n", frame, p.X, p.Y)

		overshoot = max(overshoot, pastTarget(released.X, center.X, p.X), pastTarget(released.Y, center.Y, p.Y))
		if springs.ActiveSprings() == 0 {
			fmt.Printf("settled at %s after %d frames (%.2fs), max overshoot %.3f\n",
				p, frame, float64(frame)*deltaTime, overshoot)
			return
		}
	}

	fmt.Printf("not settled after %d frames\n", *maxFrames)
	os.Exit(1)
}

func position(em *ecs.EntityManager, id ecs.EntityID) types.ScreenPoint {
	store, ok := ecs.GetComponent[*components.CoordinateStoreComponent](em, id)
	if !ok {
		logrus.Fatalf("实体 %d 没有坐标存储", id)
	}
	return store.Get()
}

// pastTarget 返回 cur 越过 target 的距离（从 from 出发），没有越过时为 0
func pastTarget(from, target, cur float64) float64 {
	switch {
	case from > target && cur < target:
		return target - cur
	case from < target && cur > target:
		return cur - target
	default:
		return 0
	}
}
