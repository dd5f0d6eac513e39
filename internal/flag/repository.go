package flag

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Repository interface {
	Toggle(userID, targetID uuid.UUID, kind TargetKind) (flagged bool, err error)
	FindByUser(userID uuid.UUID) ([]Flag, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

// Toggle rimuove il preferito se esiste, altrimenti lo inserisce. Due toggle
// concorrenti da stato non marcato convergono sullo stato marcato con una
// sola riga: entrambe le delete non trovano nulla e il conflitto tra le due
// insert viene assorbito dal vincolo unico, non tradotto in una rimozione.
func (r *repository) Toggle(userID, targetID uuid.UUID, kind TargetKind) (bool, error) {
	flagged := false
	err := r.db.Transaction(func(tx *gorm.DB) error {
		res := tx.
			Where("user_id = ? AND target_id = ?", userID, targetID).
			Delete(&Flag{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected > 0 {
			return nil
		}
		if err := insertAbsorbingConflict(tx, userID, targetID, kind); err != nil {
			return err
		}
		flagged = true
		return nil
	})
	if err != nil {
		return false, err
	}
	return flagged, nil
}

// insertAbsorbingConflict inserisce il preferito. Un conflitto sul vincolo
// (user_id, target_id) significa che un toggle concorrente l'ha appena
// inserito: lo stato finale è comunque marcato, quindi il conflitto è un
// successo senza effetto.
func insertAbsorbingConflict(tx *gorm.DB, userID, targetID uuid.UUID, kind TargetKind) error {
	return tx.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "target_id"}},
		DoNothing: true,
	}).Create(&Flag{
		ID:       uuid.New(),
		UserID:   userID,
		TargetID: targetID,
		Kind:     kind,
	}).Error
}

func (r *repository) FindByUser(userID uuid.UUID) ([]Flag, error) {
	var flags []Flag
	if err := r.db.
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&flags).Error; err != nil {
		return nil, err
	}
	return flags, nil
}
