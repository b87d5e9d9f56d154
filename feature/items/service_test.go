package items

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"
	"unsafe"

	"sptid/core/storage"
	"sptid/core/storage/mocks"
	"sptid/feature/items/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const (
	keyID   = "507f1f77bcf86cd799439011"
	ammoID  = "5e023e53d4353e3302577c4c"
	otherID = "5c94bbff86f7747ee735c08f"
)

func writeTables(t *testing.T, files map[string]string) storage.Client {
	t.Helper()
	dir := t.TempDir()
	for name, content := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
	}
	client, err := storage.NewClient(dir)
	require.NoError(t, err)
	return client
}

func testStores(t *testing.T) (storage.Client, storage.Client) {
	tables := writeTables(t, map[string]string{
		"en.json": `{"` + keyID + `": {"Name": "Rusty Key", "ShortName": "RK", "Type": "KEY"}, "` + ammoID + `": {"Name": "12/70 flechette", "ShortName": "flechette", "Damage": 45}}`,
		"fr.json": `{"` + keyID + `": {"Name": "Clé rouillée", "ShortName": "CR"}}`,
		"ru.json": `{not json`,
	})
	translations := writeTables(t, map[string]string{
		"en.json": `{"Damage:": "Damage:", "Weight:": "Weight:"}`,
		"fr.json": `{"Damage:": "Dégâts :"}`,
	})
	return tables, translations
}

func TestService_Load(t *testing.T) {
	tables, translations := testStores(t)
	ctx := context.Background()

	t.Run("Requested language", func(t *testing.T) {
		svc := NewService(tables, translations, zap.NewNop())
		svc.Load(ctx, "fr")

		rec, ok := svc.Lookup(keyID)
		require.True(t, ok)
		assert.Equal(t, "Clé rouillée", rec.Name)
		assert.Equal(t, "fr", svc.Language())
		assert.Equal(t, "Dégâts :", svc.Translate("Damage:"))
	})

	t.Run("Missing table falls back to English", func(t *testing.T) {
		svc := NewService(tables, translations, zap.NewNop())
		svc.Load(ctx, "ge")

		rec, ok := svc.Lookup(keyID)
		require.True(t, ok)
		assert.Equal(t, "Rusty Key", rec.Name)
		assert.Equal(t, "ge", svc.Language())
		assert.Equal(t, "en", svc.Stats().TableLanguage)
		assert.Equal(t, "Weight:", svc.Translate("Weight:"))
	})

	t.Run("Malformed table falls back to English", func(t *testing.T) {
		svc := NewService(tables, translations, zap.NewNop())
		svc.Load(ctx, "ru")

		_, ok := svc.Lookup(ammoID)
		assert.True(t, ok)
	})

	t.Run("Missing English yields empty layer", func(t *testing.T) {
		empty := writeTables(t, nil)
		svc := NewService(empty, empty, zap.NewNop())
		svc.Load(ctx, "en")

		_, ok := svc.Lookup(keyID)
		assert.False(t, ok)
		assert.Empty(t, svc.ListKnownIDs())
		assert.Equal(t, "en", svc.Language())
		assert.Equal(t, "", svc.Stats().TableLanguage)
	})

	t.Run("Store errors are not surfaced", func(t *testing.T) {
		client := new(mocks.Client)
		client.On("GetObject", mock.Anything, mock.Anything).Return(nil, errors.New("permission denied"))

		svc := NewService(client, nil, zap.NewNop())
		assert.NotPanics(t, func() { svc.Load(ctx, "fr") })
		assert.Empty(t, svc.ListKnownIDs())
		client.AssertNumberOfCalls(t, "GetObject", 2)
	})
}

func TestService_LookupBeforeLoad(t *testing.T) {
	svc := NewService(nil, nil, zap.NewNop())
	_, ok := svc.Lookup(keyID)
	assert.False(t, ok)
	assert.Equal(t, "", svc.Language())
	assert.Equal(t, "Damage:", svc.Translate("Damage:"))
}

func TestService_CustomLayerShadowsStatic(t *testing.T) {
	tables, translations := testStores(t)
	svc := NewService(tables, translations, zap.NewNop())
	svc.Load(context.Background(), "en")

	custom := models.Table{
		keyID:   {Name: "Workspace Key", ShortName: "WK"},
		otherID: {Name: "Custom only", ShortName: "CO"},
	}
	svc.SetCustomLayer(custom)

	rec, ok := svc.Lookup(keyID)
	require.True(t, ok)
	assert.Equal(t, "Workspace Key", rec.Name)

	rec, ok = svc.Lookup(ammoID)
	require.True(t, ok)
	assert.Equal(t, "12/70 flechette", rec.Name)

	assert.Len(t, svc.ListKnownIDs(), 3)

	delete(custom, otherID)
	_, ok = svc.Lookup(otherID)
	assert.True(t, ok, "published layer is a copy")

	stats := svc.Stats()
	assert.Equal(t, 2, stats.StaticItems)
	assert.Equal(t, 2, stats.CustomItems)
	assert.Equal(t, 3, stats.TotalItems)

	svc.ClearCustomLayer()
	rec, ok = svc.Lookup(keyID)
	require.True(t, ok)
	assert.Equal(t, "Rusty Key", rec.Name)
	_, ok = svc.Lookup(otherID)
	assert.False(t, ok)
}

func TestService_Translate(t *testing.T) {
	tables, translations := testStores(t)
	svc := NewService(tables, translations, zap.NewNop())
	svc.Load(context.Background(), "en")

	assert.Equal(t, "Damage:", svc.Translate("Damage:"))
	assert.Equal(t, "Unknown label", svc.Translate("Unknown label"))
}

func TestService_TableMemo(t *testing.T) {
	client := new(mocks.Client)
	client.On("GetObject", mock.Anything, "en.json").Return([]byte(`{"`+keyID+`": {"Name": "Rusty Key", "ShortName": "RK"}}`), nil)
	client.On("GetObject", mock.Anything, "fr.json").Return([]byte(`{"`+keyID+`": {"Name": "Clé", "ShortName": "Clé"}}`), nil)

	svc := NewService(client, nil, zap.NewNop(), WithCache(4, time.Minute))
	ctx := context.Background()
	svc.Load(ctx, "en")
	svc.Load(ctx, "fr")
	svc.Load(ctx, "en")
	svc.Load(ctx, "fr")

	client.AssertNumberOfCalls(t, "GetObject", 2)
	assert.Equal(t, 2, svc.Stats().CachedTables)

	svc.Purge()
	svc.Load(ctx, "en")
	client.AssertNumberOfCalls(t, "GetObject", 3)
}

func TestService_ConcurrentReads(t *testing.T) {
	tables, translations := testStores(t)
	svc := NewService(tables, translations, zap.NewNop())
	ctx := context.Background()
	svc.Load(ctx, "en")

	var wg sync.WaitGroup
	stop := make(chan struct{})

	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for {
				select {
				case <-stop:
					return
				default:
				}
				rec, ok := svc.Lookup(keyID)
				if assert.True(t, ok) {
					assert.NotEmpty(t, rec.Name)
				}
				svc.ListKnownIDs()
				svc.Translate("Damage:")
			}
		}()
	}

	for i := 0; i < 50; i++ {
		lang := "en"
		if i%2 == 0 {
			lang = "fr"
		}
		svc.Load(ctx, lang)
		svc.SetCustomLayer(models.Table{otherID: {Name: fmt.Sprintf("Custom %d", i)}})
	}
	close(stop)
	wg.Wait()
}

func TestService_LoadKeepsOwnLanguageCopy(t *testing.T) {
	tables, translations := testStores(t)
	svc := NewService(tables, translations, zap.NewNop())

	buf := []byte("fr")
	svc.Load(context.Background(), unsafe.String(&buf[0], len(buf)))
	copy(buf, "zz")

	assert.Equal(t, "fr", svc.Language())
	assert.Equal(t, "fr", svc.Stats().TableLanguage)
	_, ok := svc.cache.Get("fr")
	assert.True(t, ok)
}
