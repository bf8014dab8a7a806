package questions

import (
	"gorm.io/gorm"
)

type logRepository struct {
	db *gorm.DB
}

func NewLogRepository(db *gorm.DB) LogRepository {
	return &logRepository{db: db}
}

// Record upserts by session so repeated turns in one session keep a
// single row with the latest exchange.
func (r *logRepository) Record(log *PromptLog) error {
	if log.SessionID == "" {
		return r.db.Create(log).Error
	}
	return r.db.
		Where("session_id = ?", log.SessionID).
		Assign(map[string]interface{}{
			"user_id":       log.UserID,
			"model":         log.Model,
			"last_prompt":   log.LastPrompt,
			"last_response": log.LastResponse,
		}).
		FirstOrCreate(log).Error
}
