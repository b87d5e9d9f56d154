package items

import (
	"context"

	"sptid/core/language"
	"sptid/feature/overrides"
)

// Rescanner rebuilds the custom layer from the workspace.
type Rescanner interface {
	Rescan(ctx context.Context) overrides.Result
	OnLanguageChange(ctx context.Context) overrides.Result
}

// SwitchLanguage validates lang, reloads the static layer and rescans the
// workspace so the custom layer serves the same language. rescanner may be
// nil when no workspace is attached.
func SwitchLanguage(ctx context.Context, svc *Service, rescanner Rescanner, lang string) error {
	if err := language.Validate(lang); err != nil {
		return err
	}

	svc.switchMu.Lock()
	defer svc.switchMu.Unlock()

	svc.Load(ctx, lang)
	if rescanner != nil {
		rescanner.OnLanguageChange(ctx)
	}
	return nil
}
