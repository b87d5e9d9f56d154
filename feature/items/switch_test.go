package items

import (
	"context"
	"testing"

	"sptid/core/language"
	"sptid/feature/items/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestSwitchLanguage(t *testing.T) {
	tables, translations := testStores(t)
	svc := NewService(tables, translations, zap.NewNop())
	rescanner := &stubRescanner{svc: svc, layer: models.Table{}}
	ctx := context.Background()

	require.NoError(t, SwitchLanguage(ctx, svc, rescanner, "fr"))
	assert.Equal(t, "fr", svc.Language())
	assert.Equal(t, 1, rescanner.switches)

	err := SwitchLanguage(ctx, svc, rescanner, "klingon")
	assert.ErrorIs(t, err, language.ErrUnsupported)
	assert.Equal(t, "fr", svc.Language())
	assert.Equal(t, 1, rescanner.switches)

	require.NoError(t, SwitchLanguage(ctx, svc, nil, "en"))
	assert.Equal(t, "en", svc.Language())
}
