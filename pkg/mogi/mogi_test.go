package mogi

import (
	"testing"

	"github.com/kartrec/kartrec/pkg/course"
)

func TestPositionScore(t *testing.T) {
	tests := []struct {
		index int
		want  int
	}{
		{0, 15},
		{1, 12},
		{2, 10},
		{3, 9},
		{11, 1},
	}

	for _, tt := range tests {
		got := FromIndex(tt.index).Score()
		if got != tt.want {
			t.Errorf("FromIndex(%d).Score() = %d, 期望 %d", tt.index, got, tt.want)
		}
	}
}

func TestFromIndexOutOfRange(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("越界行号应 panic")
		}
	}()
	FromIndex(12)
}

func TestMogiResult(t *testing.T) {
	m := New()
	m.SetCurrentCourse(course.Course{Name: "ドルフィンみさき", Series: course.SeriesNew})
	m.SetCurrentPosition(First)
	if len(m.Races) != 1 {
		t.Fatalf("记录名次后应有 1 场比赛, 实际 %d", len(m.Races))
	}
	if m.CurrentCourse != nil {
		t.Error("记录名次后 CurrentCourse 应清空")
	}

	m.SetCurrentCourse(course.Course{Name: "ヨッシーアイランド", Series: course.SeriesNew})
	m.SetCurrentPosition(Second)
	if got := m.TotalScore(); got != 27 {
		t.Errorf("TotalScore() = %d, 期望 27", got)
	}
}

func TestSetCurrentPositionWithoutCourse(t *testing.T) {
	m := New()
	m.SetCurrentPosition(First)
	if len(m.Races) != 0 {
		t.Errorf("无 CurrentCourse 时记录名次应为 no-op, 实际追加了 %d 场", len(m.Races))
	}
}

func TestResetCurrentCourse(t *testing.T) {
	m := New()
	m.SetCurrentCourse(course.Course{Name: "ドルフィンみさき", Series: course.SeriesNew})
	m.ResetCurrentCourse()
	if m.CurrentCourse != nil {
		t.Error("重置后 CurrentCourse 应为 nil")
	}
}

func TestCloneIsDeep(t *testing.T) {
	m := New()
	m.SetCurrentCourse(course.Course{Name: "スカイガーデン", Series: course.SeriesNew})
	m.SetCurrentPosition(Third)

	clone := m.Clone()
	if !m.Equal(clone) {
		t.Fatal("克隆后应与原聚合相等")
	}

	clone.SetPosition(0, Twelfth)
	if m.Races[0].Position != Third {
		t.Error("修改克隆不应影响原聚合")
	}
	if m.Equal(clone) {
		t.Error("修改克隆后不应再相等")
	}
}

func TestStoreRoundtrip(t *testing.T) {
	dir := t.TempDir()
	store := NewStore(dir + "/result.json")

	loaded, err := store.Load()
	if err != nil {
		t.Fatalf("加载失败: %v", err)
	}
	if loaded != nil {
		t.Fatal("文件不存在时 Load 应返回 nil")
	}

	m := New()
	m.SetCurrentCourse(course.Course{Name: "ヨッシーサーキット", Series: course.SeriesGC})
	m.SetCurrentPosition(Second)
	m.SetCurrentCourse(course.Course{Name: "レインボーロード", Series: course.SeriesWii})

	if err := store.Save(m); err != nil {
		t.Fatalf("保存失败: %v", err)
	}

	loaded, err = store.Load()
	if err != nil {
		t.Fatalf("加载失败: %v", err)
	}
	if loaded == nil {
		t.Fatal("保存后 Load 不应返回 nil")
	}
	if len(loaded.Races) != 1 {
		t.Fatalf("恢复后应有 1 场比赛, 实际 %d", len(loaded.Races))
	}
	if loaded.Races[0].Course == nil || loaded.Races[0].Course.Series != course.SeriesGC {
		t.Error("恢复后赛道系列不一致")
	}
	if loaded.Races[0].Position != Second {
		t.Errorf("恢复后名次不一致: %v", loaded.Races[0].Position)
	}
	if loaded.CurrentCourse == nil || loaded.CurrentCourse.Name != "レインボーロード" {
		t.Error("恢复后 CurrentCourse 不一致")
	}
	if loaded.TotalScore() != 12 {
		t.Errorf("恢复后总分不一致: %d", loaded.TotalScore())
	}
}
