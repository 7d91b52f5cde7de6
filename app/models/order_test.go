package models_test

import (
	"testing"

	"github.com/jfcardenas/panapp/app/models"
)

func TestStatusNext(t *testing.T) {
	next, ok := models.StatusPending.Next()
	if !ok || next != models.StatusInProgress {
		t.Errorf("pending should advance to in-progress, got %s (%v)", next, ok)
	}

	next, ok = models.StatusInProgress.Next()
	if !ok || next != models.StatusCompleted {
		t.Errorf("in-progress should advance to completed, got %s (%v)", next, ok)
	}
}

func TestStatusCompletedIsTerminal(t *testing.T) {
	if _, ok := models.StatusCompleted.Next(); ok {
		t.Error("completed must offer no further transition")
	}
}

func TestStatusValid(t *testing.T) {
	for _, s := range []models.OrderStatus{models.StatusPending, models.StatusInProgress, models.StatusCompleted} {
		if !s.Valid() {
			t.Errorf("expected %s to be valid", s)
		}
	}
	if models.OrderStatus("shipped").Valid() {
		t.Error("unknown status must not be valid")
	}
}
