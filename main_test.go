package main

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/danielhkuo/food-selector/cliparse"
	"github.com/danielhkuo/food-selector/store"
)

func TestOpenStore(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name string
		cfg  cliparse.Config
	}{
		{"memory", cliparse.Config{StoreType: store.TypeMemory}},
		{"file", cliparse.Config{StoreType: store.TypeFile, DataDir: filepath.Join(dir, "data")}},
		{"sqlite", cliparse.Config{StoreType: store.TypeSQLite, DatabaseURL: filepath.Join(dir, "food.db")}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()

			st, err := openStore(ctx, tt.cfg)
			if err != nil {
				t.Fatalf("openStore failed: %v", err)
			}
			defer st.Close()

			if _, ok := st.(*store.Instrumented); !ok {
				t.Errorf("Expected instrumented store, got %T", st)
			}

			if _, err := st.Get(ctx, "missing"); !errors.Is(err, store.ErrNotFound) {
				t.Errorf("Expected ErrNotFound, got %v", err)
			}
			if err := st.Set(ctx, "doc", []byte(`{"a":1}`)); err != nil {
				t.Fatalf("Set failed: %v", err)
			}
			if _, err := st.Get(ctx, "doc"); err != nil {
				t.Errorf("Get after Set failed: %v", err)
			}
		})
	}
}

func TestOpenStore_Errors(t *testing.T) {
	tests := []struct {
		name string
		cfg  cliparse.Config
	}{
		{"unknown type", cliparse.Config{StoreType: "floppy"}},
		{"file without dir", cliparse.Config{StoreType: store.TypeFile}},
		{"minio without endpoint", cliparse.Config{StoreType: store.TypeMinIO, MinIOBucket: "b"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := openStore(context.Background(), tt.cfg); err == nil {
				t.Error("Expected error")
			}
		})
	}
}
