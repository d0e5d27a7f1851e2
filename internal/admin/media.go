package admin

import (
	"context"
	"errors"
	"fmt"
	"os"

	contextPkg "PortfolioGolang/pkg/context"

	"github.com/sirupsen/logrus"
)

// PutMedia uploads a local file under key, e.g. the resume referenced by the profile.
func (a *Admin) PutMedia(ctx context.Context, key, path string) error {
	requestID := contextPkg.GetRequestID(ctx)

	if a.media == nil {
		return errors.New("media storage is not configured")
	}

	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := a.media.Put(ctx, key, f); err != nil {
		a.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"key":        key,
			"error":      err.Error(),
		}).Error("Failed to upload media")
		return fmt.Errorf("put %s: %w", key, err)
	}

	fmt.Fprintf(a.out, "%s -> %s\n", path, a.media.URL(key))
	return nil
}
