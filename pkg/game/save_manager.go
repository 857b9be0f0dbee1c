package game

import (
	"fmt"
	"time"

	"github.com/decker502/starrust/pkg/logger"
	"github.com/google/uuid"
	"github.com/quasilyte/gdata/v2"
)

// ScoreRecord 一次关卡运行的结果
type ScoreRecord struct {
	RunID      string    `yaml:"runId"`
	LevelID    string    `yaml:"levelId"`
	Score      int       `yaml:"score"`
	FinishedAt time.Time `yaml:"finishedAt"`
}

// ScoreData 持久化的得分数据
type ScoreData struct {
	Best *ScoreRecord `yaml:"best,omitempty"`
	Last *ScoreRecord `yaml:"last,omitempty"`
	Runs int          `yaml:"runs"`
}

// 存储路径常量
const (
	scoresObject   = "scores"
	scoresProperty = "records"
)

// SaveManager 管理最高分与最近一次运行记录
// gdataManager 为 nil 时只在内存中保存
type SaveManager struct {
	gdataManager *gdata.Manager
	data         ScoreData
}

// NewSaveManager 创建存档管理器并加载已有记录
func NewSaveManager(gdataManager *gdata.Manager) *SaveManager {
	sm := &SaveManager{gdataManager: gdataManager}
	if err := sm.Load(); err != nil {
		logger.L().Warnw("[SaveManager] failed to load score records", "error", err)
	}
	return sm
}

// Load 从 gdata 读取记录，不存在时保持空记录
func (sm *SaveManager) Load() error {
	sm.data = ScoreData{}
	var data ScoreData
	found, err := loadProp(sm.gdataManager, scoresObject, scoresProperty, &data)
	if err != nil {
		return fmt.Errorf("failed to load score records: %w", err)
	}
	if found {
		sm.data = data
	}
	return nil
}

// RecordRun 记录一次关卡结果，返回记录以及是否刷新了最高分
func (sm *SaveManager) RecordRun(levelID string, score int, finishedAt time.Time) (ScoreRecord, bool, error) {
	record := ScoreRecord{
		RunID:      uuid.NewString(),
		LevelID:    levelID,
		Score:      score,
		FinishedAt: finishedAt.UTC(),
	}

	newBest := sm.data.Best == nil || score > sm.data.Best.Score
	if newBest {
		best := record
		sm.data.Best = &best
	}
	last := record
	sm.data.Last = &last
	sm.data.Runs++

	logger.L().Infow("[SaveManager] run recorded",
		"run", record.RunID, "level", levelID, "score", score, "newBest", newBest)

	if err := sm.save(); err != nil {
		return record, newBest, err
	}
	return record, newBest, nil
}

// HighScore 当前最高分，无记录时为 0
func (sm *SaveManager) HighScore() int {
	if sm.data.Best == nil {
		return 0
	}
	return sm.data.Best.Score
}

// Data 返回当前记录的副本
func (sm *SaveManager) Data() ScoreData {
	return sm.data
}

func (sm *SaveManager) save() error {
	if err := saveProp(sm.gdataManager, scoresObject, scoresProperty, &sm.data); err != nil {
		return fmt.Errorf("failed to save score records: %w", err)
	}
	return nil
}
