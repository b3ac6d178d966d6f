// Package capture 提供视频帧来源: 采集卡设备或屏幕截图。
// 两种来源统一输出配置尺寸的 RGBA 帧。
package capture

import (
	"context"
	"image"
	"time"

	"github.com/kartrec/kartrec/internal/logger"
)

// Source 帧来源
type Source interface {
	// Frame 取一帧，尺寸为构造时指定的宽高
	Frame() (*image.RGBA, error)
	Close() error
}

// 取帧失败后的重试间隔，避免设备断开时空转
const retryDelay = 500 * time.Millisecond

// Run 持续取帧并写入 frames，直到 ctx 取消。
// 通道容量有限，消费端处理不过来时这里会阻塞，自然形成背压。
// 退出时关闭 frames。
func Run(ctx context.Context, source Source, frames chan<- *image.RGBA) {
	defer close(frames)

	for {
		if ctx.Err() != nil {
			return
		}

		frame, err := source.Frame()
		if err != nil {
			logger.Error("取帧失败: %v", err)
			select {
			case <-ctx.Done():
				return
			case <-time.After(retryDelay):
			}
			continue
		}

		select {
		case <-ctx.Done():
			return
		case frames <- frame:
		}
	}
}
