package audit

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/exam-ai-app/backend/internal/config"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// maskedActor replaces the superadmin uid in audit rows so the root
// account never appears in queryable logs.
const maskedActor = "SYSTEM_ROOT"

// AdminAction is one append-only audit row. Rows are never updated or
// deleted.
type AdminAction struct {
	ID        uuid.UUID      `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	ActorUID  string         `gorm:"type:text;not null;index" json:"actorUid"`
	Action    string         `gorm:"type:text;not null" json:"action"`
	Target    string         `gorm:"type:text" json:"target"`
	Details   datatypes.JSON `gorm:"type:jsonb" json:"details"`
	CreatedAt time.Time      `gorm:"autoCreateTime" json:"createdAt"`
}

type Entry struct {
	ActorUID string
	Action   string
	Target   string
	Details  map[string]interface{}
}

type Recorder interface {
	Log(ctx context.Context, e Entry) error
}

type recorder struct {
	db *gorm.DB
}

func NewRecorder(db *gorm.DB) Recorder {
	return &recorder{db: db}
}

func (r *recorder) Log(ctx context.Context, e Entry) error {
	row, err := buildAction(e, os.Getenv("SUPERADMIN_UID"))
	if err != nil {
		return err
	}
	if err := r.db.Create(row).Error; err != nil {
		return fmt.Errorf("audit write: %w", err)
	}
	return nil
}

func buildAction(e Entry, superadminUID string) (*AdminAction, error) {
	actor := e.ActorUID
	if superadminUID != "" && actor == superadminUID {
		actor = maskedActor
	}

	row := &AdminAction{
		ActorUID: actor,
		Action:   e.Action,
		Target:   e.Target,
	}
	if e.Details != nil {
		data, err := json.Marshal(e.Details)
		if err != nil {
			return nil, fmt.Errorf("audit details: %w", err)
		}
		row.Details = datatypes.JSON(data)
	}
	return row, nil
}

// Try logs and swallows the error; audit trails must not fail the
// operation they describe.
func Try(ctx context.Context, r Recorder, e Entry) {
	if r == nil {
		return
	}
	if err := r.Log(ctx, e); err != nil {
		config.WithContext(ctx).WithError(err).Warn("Audit log write failed")
	}
}
