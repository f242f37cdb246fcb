package game

import (
	"log"
	"path/filepath"

	"github.com/hajimehoshi/ebiten/v2/audio"
)

// audioExtensions 按顺序尝试的音频扩展名
var audioExtensions = []string{".mp3", ".ogg"}

// AudioManager 音频管理器
//
// 音效和音乐都按资源ID播放，ID 映射到 audioDir 下的同名文件（.mp3 或 .ogg）。
// 加载失败的ID会被记住，之后的播放请求直接返回 false，不再重复读盘。
type AudioManager struct {
	resourceManager *ResourceManager
	settingsManager *SettingsManager // 可为 nil（使用默认音量）
	audioDir        string

	soundPlayers   map[string]*audio.Player // 资源ID -> 音效播放器
	musicPlayers   map[string]*audio.Player // 资源ID -> 音乐播放器
	missing        map[string]bool          // 加载失败的资源ID
	currentMusic   *audio.Player
	currentMusicID string
}

// NewAudioManager 创建新的音频管理器
//
// 参数：
//   - rm: ResourceManager 实例（用于加载音频文件）
//   - sm: SettingsManager 实例（用于读取音量设置，可为 nil）
//   - audioDir: 音频文件目录
func NewAudioManager(rm *ResourceManager, sm *SettingsManager, audioDir string) *AudioManager {
	return &AudioManager{
		resourceManager: rm,
		settingsManager: sm,
		audioDir:        audioDir,
		soundPlayers:    make(map[string]*audio.Player),
		musicPlayers:    make(map[string]*audio.Player),
		missing:         make(map[string]bool),
	}
}

// PlaySound 播放音效
//
// 返回：
//   - bool: 是否成功播放（音效关闭或资源缺失时返回 false）
func (am *AudioManager) PlaySound(soundID string) bool {
	if soundID == "" {
		return false
	}
	if am.settingsManager != nil && !am.settingsManager.GetSettings().SoundEnabled {
		return false
	}

	player := am.load(soundID, am.soundPlayers, false)
	if player == nil {
		return false
	}

	player.SetVolume(am.getSoundVolume())
	if err := player.Rewind(); err != nil {
		log.Printf("[AudioManager] Warning: Failed to rewind sound %s: %v", soundID, err)
	}
	player.Play()
	return true
}

// PlayMusic 循环播放背景音乐，同一时间只有一首
func (am *AudioManager) PlayMusic(musicID string) bool {
	if am.settingsManager != nil && !am.settingsManager.GetSettings().MusicEnabled {
		return false
	}
	if am.currentMusicID == musicID && am.currentMusic != nil && am.currentMusic.IsPlaying() {
		return true
	}

	am.StopMusic()

	player := am.load(musicID, am.musicPlayers, true)
	if player == nil {
		return false
	}

	volume := am.getMusicVolume()
	player.SetVolume(volume)
	if err := player.Rewind(); err != nil {
		log.Printf("[AudioManager] Warning: Failed to rewind music %s: %v", musicID, err)
	}
	player.Play()

	am.currentMusic = player
	am.currentMusicID = musicID
	log.Printf("[AudioManager] Playing music: %s (volume: %.2f)", musicID, volume)
	return true
}

// StopMusic 停止当前背景音乐
func (am *AudioManager) StopMusic() {
	if am.currentMusic != nil {
		am.currentMusic.Pause()
		am.currentMusic = nil
		am.currentMusicID = ""
	}
}

// SetMusicVolume 设置音乐音量并立即应用到当前音乐
func (am *AudioManager) SetMusicVolume(volume float64) {
	if am.settingsManager != nil {
		am.settingsManager.SetMusicVolume(volume)
	}
	if am.currentMusic != nil {
		am.currentMusic.SetVolume(am.getMusicVolume())
	}
}

// SetSoundVolume 设置音效音量（影响后续播放）
func (am *AudioManager) SetSoundVolume(volume float64) {
	if am.settingsManager != nil {
		am.settingsManager.SetSoundVolume(volume)
	}
}

// PreloadSounds 预加载音效，避免首次播放时卡顿
func (am *AudioManager) PreloadSounds(soundIDs []string) {
	loaded := 0
	for _, soundID := range soundIDs {
		if am.load(soundID, am.soundPlayers, false) != nil {
			loaded++
		}
	}
	log.Printf("[AudioManager] Preloaded %d/%d sounds", loaded, len(soundIDs))
}

// load 获取或加载播放器
func (am *AudioManager) load(id string, cache map[string]*audio.Player, loop bool) *audio.Player {
	if player, ok := cache[id]; ok {
		return player
	}
	if am.missing[id] || am.resourceManager == nil {
		return nil
	}

	for _, ext := range audioExtensions {
		path := filepath.Join(am.audioDir, id+ext)
		var (
			player *audio.Player
			err    error
		)
		if loop {
			player, err = am.resourceManager.LoadAudio(path)
		} else {
			player, err = am.resourceManager.LoadSoundEffect(path)
		}
		if err == nil {
			cache[id] = player
			return player
		}
		log.Printf("[AudioManager] Warning: %v", err)
	}

	am.missing[id] = true
	return nil
}

func (am *AudioManager) getMusicVolume() float64 {
	if am.settingsManager != nil {
		return am.settingsManager.GetSettings().MusicVolume
	}
	return DefaultSettings().MusicVolume
}

func (am *AudioManager) getSoundVolume() float64 {
	if am.settingsManager != nil {
		return am.settingsManager.GetSettings().SoundVolume
	}
	return DefaultSettings().SoundVolume
}
