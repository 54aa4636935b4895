package effects

import (
	"fmt"

	"github.com/decker502/gooey/pkg/embedded"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/sirupsen/logrus"
)

// 着色器源码路径
const (
	SweepGradientShaderPath = "data/shaders/sweep_gradient.kage"
	BlurShaderPath          = "data/shaders/blur.kage"
)

// Shaders 图层绘制用到的 Kage 着色器
type Shaders struct {
	SweepGradient *ebiten.Shader
	Blur          *ebiten.Shader
}

// LoadShaders 从嵌入资源编译着色器
func LoadShaders() (*Shaders, error) {
	gradient, err := compileShader(SweepGradientShaderPath)
	if err != nil {
		return nil, err
	}
	blur, err := compileShader(BlurShaderPath)
	if err != nil {
		gradient.Deallocate()
		return nil, err
	}
	return &Shaders{SweepGradient: gradient, Blur: blur}, nil
}

func compileShader(path string) (*ebiten.Shader, error) {
	src, err := embedded.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read shader %s: %w", path, err)
	}
	shader, err := ebiten.NewShader(src)
	if err != nil {
		return nil, fmt.Errorf("failed to compile shader %s: %w", path, err)
	}
	logrus.Debugf("[Effects] 着色器已编译: %s", path)
	return shader, nil
}
