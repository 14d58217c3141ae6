// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package memory_test

import (
	"context"
	"testing"

	"github.com/mdhender/olympians/model"
	"github.com/mdhender/olympians/stores/memory"
	"github.com/mdhender/olympians/stores/storetest"
)

func TestMemoryStore(t *testing.T) {
	storetest.Run(t, func() (model.Store, error) {
		return memory.New(), nil
	})
}

func TestMemoryStore_ReturnsCopies(t *testing.T) {
	ctx := context.Background()
	s := memory.New()

	r := model.NewEntrant("Zeus").Record()
	id, err := s.InsertOlympian(ctx, r)
	if err != nil {
		t.Fatalf("insert: %v", err)
	}
	r.Name = "changed after insert"

	got, err := s.GetOlympian(ctx, id)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	got.Energy = -1

	again, err := s.GetOlympian(ctx, id)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if again.Name != "Zeus" || again.Energy != 100.0 {
		t.Errorf("get: want {Zeus 100}, got {%s %v}", again.Name, again.Energy)
	}
}
