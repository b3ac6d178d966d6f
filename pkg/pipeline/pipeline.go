// Package pipeline 把取帧、画面分类和战绩聚合串联起来。
// 聚合只由这里的消费循环一个 goroutine 改写，界面编辑通过
// 通道送进来，更新通过通道广播出去。
package pipeline

import (
	"context"
	"image"
	"os"
	"time"

	"github.com/shirou/gopsutil/v4/process"

	"github.com/kartrec/kartrec/internal/logger"
	"github.com/kartrec/kartrec/pkg/mogi"
)

// Detector 画面分类协作方
type Detector interface {
	Step(frame *image.RGBA, res *mogi.MogiResult) error
	EnterRaceFinish()
}

// Options 消费循环的依赖
type Options struct {
	Machine Detector
	Store   *mogi.Store
	Result  *mogi.MogiResult
	Frames  <-chan *image.RGBA
	// Edits 界面编辑后的完整聚合，逐帧非阻塞轮询
	Edits <-chan *mogi.MogiResult
	// Updates 聚合变化广播。容量满时丢弃旧值补发新值，
	// 界面只关心最新状态
	Updates chan *mogi.MogiResult
}

const (
	fpsLogEvery   = 30
	statsInterval = time.Minute
)

// Run 执行消费循环直到 ctx 取消或帧通道关闭。
// 返回非 nil 错误说明持久化副作用失败，进程应当退出。
func Run(ctx context.Context, opts Options) error {
	res := opts.Result
	last := res.Clone()
	broadcast(opts.Updates, res)

	stats := time.NewTicker(statsInterval)
	defer stats.Stop()

	frameCount := 0
	fpsMark := time.Now()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-stats.C:
			reportSelfStats()
		case frame, ok := <-opts.Frames:
			if !ok {
				return nil
			}

			frameCount++
			if frameCount%fpsLogEvery == 0 {
				elapsed := time.Since(fpsMark)
				fpsMark = time.Now()
				if elapsed > 0 {
					logger.Trace("fps: %.1f", float64(fpsLogEvery)/elapsed.Seconds())
				}
			}

			select {
			case edited := <-opts.Edits:
				if res.CurrentCourse == nil && edited.CurrentCourse != nil {
					logger.Info("赛道已手工补录: %s", edited.CurrentCourse)
					opts.Machine.EnterRaceFinish()
				}
				res = edited
			default:
			}

			if err := opts.Machine.Step(frame, res); err != nil {
				return err
			}

			if res.Equal(last) {
				continue
			}
			logger.Debug("战绩变化: %s", res)
			if err := opts.Store.Save(res); err != nil {
				return err
			}
			last = res.Clone()
			broadcast(opts.Updates, res)
		}
	}
}

// broadcast 非阻塞发送聚合克隆，通道满时顶掉旧值
func broadcast(updates chan *mogi.MogiResult, res *mogi.MogiResult) {
	if updates == nil {
		return
	}
	clone := res.Clone()
	for {
		select {
		case updates <- clone:
			return
		default:
			select {
			case <-updates:
			default:
			}
		}
	}
}

// reportSelfStats 记录自身进程的 CPU 与内存占用，
// 长时间运行时便于从日志里发现泄漏
func reportSelfStats() {
	proc, err := process.NewProcess(int32(os.Getpid()))
	if err != nil {
		return
	}
	cpu, _ := proc.CPUPercent()
	mem, err := proc.MemoryInfo()
	if err != nil || mem == nil {
		return
	}
	logger.Debug("进程状态: cpu=%.1f%% rss=%.1fMB", cpu, float64(mem.RSS)/1024/1024)
}
