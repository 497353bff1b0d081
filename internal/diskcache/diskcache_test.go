package diskcache

import "testing"

func TestStoreAndLoadRoundTrip(t *testing.T) {
	dir := t.TempDir()
	cache, err := New(dir)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	hash := HashROM([]byte("a fake rom image"))
	entry := &Entry{
		ROMHash:    hash,
		Labels:     map[int]string{0x8000: "GameStart"},
		DataLabels: map[int]string{0x9000: "SpriteTable"},
	}
	if err := cache.Store(entry); err != nil {
		t.Fatalf("Store: %v", err)
	}

	got, ok := cache.Load(hash)
	if !ok {
		t.Fatal("expected cached entry to load")
	}
	if got.Labels[0x8000] != "GameStart" {
		t.Errorf("got label %q, want GameStart", got.Labels[0x8000])
	}
	if got.DataLabels[0x9000] != "SpriteTable" {
		t.Errorf("got data label %q, want SpriteTable", got.DataLabels[0x9000])
	}
}

func TestLoadMissesUnknownHash(t *testing.T) {
	dir := t.TempDir()
	cache, err := New(dir)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if _, ok := cache.Load("never-stored"); ok {
		t.Fatal("expected a miss for an unstored hash")
	}
}
