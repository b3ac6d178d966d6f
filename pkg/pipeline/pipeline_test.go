package pipeline

import (
	"context"
	"image"
	"path/filepath"
	"testing"
	"time"

	"github.com/kartrec/kartrec/pkg/course"
	"github.com/kartrec/kartrec/pkg/mogi"
)

// stubDetector 第 commitAt 帧时提交一条名次记录
type stubDetector struct {
	frames   int
	commitAt int
	resyncs  int
}

func (d *stubDetector) Step(frame *image.RGBA, res *mogi.MogiResult) error {
	d.frames++
	if d.frames == d.commitAt {
		res.SetCurrentPosition(mogi.First)
	}
	return nil
}

func (d *stubDetector) EnterRaceFinish() {
	d.resyncs++
}

func testCourse(t *testing.T) course.Course {
	t.Helper()
	c, ok := course.Default().ByDisplay("GC ヨッシーサーキット")
	if !ok {
		t.Fatal("赛道不存在")
	}
	return c
}

func TestRunPersistsAndBroadcastsOnChange(t *testing.T) {
	res := mogi.New()
	res.SetCurrentCourse(testCourse(t))

	store := mogi.NewStore(filepath.Join(t.TempDir(), "result.json"))
	frames := make(chan *image.RGBA, 10)
	updates := make(chan *mogi.MogiResult, 1)
	stub := &stubDetector{commitAt: 3}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- Run(ctx, Options{
			Machine: stub,
			Store:   store,
			Result:  res,
			Frames:  frames,
			Edits:   make(chan *mogi.MogiResult),
			Updates: updates,
		})
	}()

	// 启动时先广播一次初始状态
	select {
	case initial := <-updates:
		if len(initial.Races) != 0 {
			t.Fatalf("初始广播不应包含比赛记录: %+v", initial.Races)
		}
	case <-time.After(time.Second):
		t.Fatal("等待初始广播超时")
	}

	for i := 0; i < 5; i++ {
		frames <- image.NewRGBA(image.Rect(0, 0, 4, 4))
	}

	select {
	case updated := <-updates:
		if len(updated.Races) != 1 || updated.Races[0].Position != mogi.First {
			t.Fatalf("广播内容不正确: %+v", updated.Races)
		}
	case <-time.After(time.Second):
		t.Fatal("等待变化广播超时")
	}

	cancel()
	if err := <-done; err != nil {
		t.Fatalf("Run 返回错误: %v", err)
	}

	loaded, err := store.Load()
	if err != nil {
		t.Fatalf("读取持久化结果失败: %v", err)
	}
	if loaded == nil || len(loaded.Races) != 1 {
		t.Fatalf("持久化结果不正确: %+v", loaded)
	}
}

func TestRunResyncsDetectorOnManualCourseEdit(t *testing.T) {
	store := mogi.NewStore(filepath.Join(t.TempDir(), "result.json"))
	frames := make(chan *image.RGBA, 10)
	edits := make(chan *mogi.MogiResult, 1)
	stub := &stubDetector{commitAt: -1}

	// 当前没有赛道，编辑补录一条
	edited := mogi.New()
	edited.SetCurrentCourse(testCourse(t))
	edits <- edited

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- Run(ctx, Options{
			Machine: stub,
			Store:   store,
			Result:  mogi.New(),
			Frames:  frames,
			Edits:   edits,
			Updates: nil,
		})
	}()

	frames <- image.NewRGBA(image.Rect(0, 0, 4, 4))
	close(frames)
	if err := <-done; err != nil {
		t.Fatalf("Run 返回错误: %v", err)
	}
	cancel()

	if stub.resyncs != 1 {
		t.Fatalf("补录赛道后应重建比赛结束判定, resyncs=%d", stub.resyncs)
	}
}
