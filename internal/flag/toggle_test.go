package flag

import (
	"fmt"
	"testing"

	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newFlagDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		t.Fatalf("apertura del database di test: %v", err)
	}
	if err := db.AutoMigrate(&Flag{}); err != nil {
		t.Fatalf("migrazione dello schema di test: %v", err)
	}
	return db
}

// Rigioca l'interleaving di due toggle in gara da stato non marcato:
// entrambe le delete non trovano nulla, poi la insert del perdente va in
// conflitto con la riga appena scritta dal vincente. Il conflitto deve
// essere assorbito come successo senza effetto, non tradotto in una
// rimozione: lo stato finale è marcato, con esattamente una riga.
func TestToggleRaceLoserAbsorbsConflict(t *testing.T) {
	db := newFlagDB(t)
	repo := NewRepository(db)
	userID := uuid.New()
	targetID := uuid.New()

	// Il vincente completa il proprio toggle per intero.
	flagged, err := repo.Toggle(userID, targetID, TargetKindExerciseCard)
	if err != nil {
		t.Fatalf("toggle del vincente: %v", err)
	}
	if !flagged {
		t.Fatal("il toggle da stato non marcato deve marcare")
	}

	// Il perdente ha già eseguito la delete senza trovare nulla: resta la
	// sua insert, ora in conflitto con la riga del vincente.
	if err := insertAbsorbingConflict(db, userID, targetID, TargetKindExerciseCard); err != nil {
		t.Fatalf("l'insert in conflitto deve riuscire senza effetto: %v", err)
	}

	var count int64
	if err := db.Model(&Flag{}).
		Where("user_id = ? AND target_id = ?", userID, targetID).
		Count(&count).Error; err != nil {
		t.Fatalf("conteggio dei preferiti: %v", err)
	}
	if count != 1 {
		t.Fatalf("attesa esattamente una riga (stato marcato), trovate %d", count)
	}
}
