// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package store_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/mdhender/olympians/model"
	store "github.com/mdhender/olympians/stores/sqlite"
	"github.com/mdhender/olympians/stores/storetest"
)

func TestSQLiteStore(t *testing.T) {
	storetest.Run(t, func() (model.Store, error) {
		return store.NewSQLiteStore()
	})
}

func TestSQLiteStore_FileLifecycle(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "olympians.db")

	if _, err := store.NewSQLiteStoreWithConfig(store.StoreConfig{Path: path}); err == nil {
		t.Fatalf("open missing file: want error, got nil")
	}
	if err := store.InitDatabase(path); err != nil {
		t.Fatalf("init: %v", err)
	}
	if err := store.InitDatabase(path); err == nil {
		t.Errorf("init existing file: want error, got nil")
	}

	s, err := store.NewSQLiteStoreWithConfig(store.StoreConfig{Path: path})
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	id, err := s.InsertOlympian(ctx, model.NewEntrant("Demeter").Record())
	if err != nil {
		t.Fatalf("insert: %v", err)
	}
	if err := s.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}

	if err := store.CompactDatabase(path); err != nil {
		t.Fatalf("compact: %v", err)
	}

	s, err = store.NewSQLiteStoreWithConfig(store.StoreConfig{Path: path})
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer s.Close()
	got, err := s.GetOlympian(ctx, id)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Name != "Demeter" || got.Energy != 100.0 {
		t.Errorf("get: want {Demeter 100}, got {%s %v}", got.Name, got.Energy)
	}
}
