package capture

import (
	"context"
	"fmt"
	"image"
	"testing"
	"time"
)

type fakeSource struct {
	frames int
	fail   bool
}

func (f *fakeSource) Frame() (*image.RGBA, error) {
	if f.fail {
		return nil, fmt.Errorf("模拟设备故障")
	}
	f.frames++
	return image.NewRGBA(image.Rect(0, 0, 4, 4)), nil
}

func (f *fakeSource) Close() error { return nil }

func TestRunForwardsFramesAndClosesChannel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	frames := make(chan *image.RGBA, 10)

	done := make(chan struct{})
	go func() {
		Run(ctx, &fakeSource{}, frames)
		close(done)
	}()

	for i := 0; i < 3; i++ {
		select {
		case frame := <-frames:
			if frame == nil {
				t.Fatalf("第 %d 帧为 nil", i+1)
			}
		case <-time.After(time.Second):
			t.Fatalf("等待第 %d 帧超时", i+1)
		}
	}

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("取消后生产者未退出")
	}

	// 排空后通道应已关闭
	for {
		if _, ok := <-frames; !ok {
			return
		}
	}
}

func TestRunStopsWhileRetrying(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	frames := make(chan *image.RGBA, 1)

	done := make(chan struct{})
	go func() {
		Run(ctx, &fakeSource{fail: true}, frames)
		close(done)
	}()

	time.Sleep(50 * time.Millisecond)
	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("故障重试期间取消后未退出")
	}
}
