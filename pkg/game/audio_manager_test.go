package game

import "testing"

// TestAudioManagerMissingSound 测试资源缺失时播放返回 false 且只尝试加载一次
func TestAudioManagerMissingSound(t *testing.T) {
	rm := NewResourceManager(nil)
	am := NewAudioManager(rm, nil, t.TempDir())

	if am.PlaySound("axe") {
		t.Error("PlaySound should fail without audio files")
	}
	if !am.missing["axe"] {
		t.Error("missing sound should be remembered")
	}
	if am.PlaySound("axe") {
		t.Error("second PlaySound should also fail")
	}
}

// TestAudioManagerEmptyID 测试空ID不触发加载
func TestAudioManagerEmptyID(t *testing.T) {
	am := NewAudioManager(NewResourceManager(nil), nil, t.TempDir())
	if am.PlaySound("") {
		t.Error("PlaySound(\"\") should return false")
	}
	if len(am.missing) != 0 {
		t.Errorf("empty ID should not be recorded, got %v", am.missing)
	}
}

// TestAudioManagerSoundDisabled 测试关闭音效时直接返回
func TestAudioManagerSoundDisabled(t *testing.T) {
	sm, _ := NewSettingsManager(nil)
	sm.SetSoundEnabled(false)
	am := NewAudioManager(NewResourceManager(nil), sm, t.TempDir())

	if am.PlaySound("hoe") {
		t.Error("PlaySound should return false when sound is disabled")
	}
	if am.missing["hoe"] {
		t.Error("disabled sound should not attempt loading")
	}
}

// TestAudioManagerMusicDisabled 测试关闭音乐时不播放
func TestAudioManagerMusicDisabled(t *testing.T) {
	sm, _ := NewSettingsManager(nil)
	sm.SetMusicEnabled(false)
	am := NewAudioManager(NewResourceManager(nil), sm, t.TempDir())

	if am.PlayMusic("music") {
		t.Error("PlayMusic should return false when music is disabled")
	}
}
